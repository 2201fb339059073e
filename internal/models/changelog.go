package models

import (
	"time"

	"github.com/google/uuid"
)

// ChangeLog is an append-only record of mutations to clients and
// allocations. Entries are written best-effort; a failed write never fails
// the request that produced it.
type ChangeLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	Entity   string    `gorm:"size:50;not null" json:"entity"` // "client", "allocation"
	EntityID uuid.UUID `gorm:"type:uuid;not null" json:"entityId"`
	Action   string    `gorm:"size:50;not null" json:"action"` // "create", "update", "delete"
	Details  string    `gorm:"type:text" json:"details"`
}
