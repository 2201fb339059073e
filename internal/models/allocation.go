package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Allocation records that a client holds a quantity of a named catalog asset.
// The asset name is checked against the catalog when the allocation is
// created; it is not a live foreign key.
type Allocation struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	ClientID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"clientId"`
	AssetName   string          `gorm:"size:255;not null" json:"assetName"`
	Quantity    decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"quantity"`
	AllocatedAt time.Time       `json:"allocatedAt"`
}

// EnrichedAllocation is an allocation plus the valuation fields computed at
// read time. Never persisted.
type EnrichedAllocation struct {
	Allocation
	CurrentAssetValue decimal.Decimal `json:"currentAssetValue"`
	TotalValue        decimal.Decimal `json:"totalValue"`
}
