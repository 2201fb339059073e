package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// The API serializes decimals as plain JSON numbers; the frontend
	// consumes them as such.
	decimal.MarshalJSONWithoutQuotes = true
}

type ClientStatus string

const (
	StatusActive   ClientStatus = "ACTIVE"
	StatusInactive ClientStatus = "INACTIVE"
)

type Client struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string       `gorm:"size:255;not null" json:"name"`
	Email     string       `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Status    ClientStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`

	// Deleting a client removes its allocations with it.
	Allocations []Allocation `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
