// Package enrich joins a client's allocations against the asset catalog to
// derive the valuation fields returned on read.
package enrich

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"anka-backend/internal/catalog"
	"anka-backend/internal/models"
	"anka-backend/internal/store"
)

type Service struct {
	allocations store.Allocations
	catalog     *catalog.Catalog
}

func NewService(allocations store.Allocations, cat *catalog.Catalog) *Service {
	return &Service{allocations: allocations, catalog: cat}
}

// ListForClient returns the client's allocations, newest first, each carrying
// the asset's current value and the computed total.
func (s *Service) ListForClient(ctx context.Context, clientID uuid.UUID) ([]models.EnrichedAllocation, error) {
	allocs, err := s.allocations.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return Enrich(allocs, s.catalog), nil
}

// Enrich computes currentAssetValue and totalValue for each allocation,
// preserving input order. An asset name missing from the catalog values the
// allocation at zero rather than failing; stored names were valid against
// the catalog when the allocation was created.
func Enrich(allocs []models.Allocation, cat *catalog.Catalog) []models.EnrichedAllocation {
	enriched := make([]models.EnrichedAllocation, 0, len(allocs))
	for _, alloc := range allocs {
		value := decimal.Zero
		if asset, ok := cat.Lookup(alloc.AssetName); ok {
			value = asset.Value
		}
		enriched = append(enriched, models.EnrichedAllocation{
			Allocation:        alloc,
			CurrentAssetValue: value,
			TotalValue:        value.Mul(alloc.Quantity),
		})
	}
	return enriched
}
