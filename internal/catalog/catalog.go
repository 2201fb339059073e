// Package catalog holds the fixed set of tradeable assets. The catalog is
// immutable for the lifetime of the process and safe for concurrent reads.
package catalog

import "github.com/shopspring/decimal"

type Asset struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

type Catalog struct {
	assets []Asset
	byName map[string]Asset
}

// New builds a catalog from the given assets, preserving their order.
func New(assets []Asset) *Catalog {
	byName := make(map[string]Asset, len(assets))
	for _, a := range assets {
		byName[a.Name] = a
	}
	return &Catalog{assets: assets, byName: byName}
}

// Default returns the catalog of fixed assets offered to clients.
func Default() *Catalog {
	return New([]Asset{
		{Name: "Ação XYZ", Value: decimal.RequireFromString("150.75")},
		{Name: "Fundo ABC", Value: decimal.RequireFromString("320.50")},
		{Name: "Tesouro Direto IPCA+ 2045", Value: decimal.RequireFromString("105.22")},
		{Name: "CDB Liquidez Diária BankX", Value: decimal.RequireFromString("100.00")},
	})
}

// List returns the assets in catalog order.
func (c *Catalog) List() []Asset {
	out := make([]Asset, len(c.assets))
	copy(out, c.assets)
	return out
}

// Lookup finds an asset by exact name.
func (c *Catalog) Lookup(name string) (Asset, bool) {
	a, ok := c.byName[name]
	return a, ok
}

// Has reports whether the named asset exists in the catalog.
func (c *Catalog) Has(name string) bool {
	_, ok := c.byName[name]
	return ok
}
