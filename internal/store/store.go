// Package store is the persistence layer: plain GORM-backed stores for
// clients, allocations and the change log. Uniqueness is enforced by the
// database (unique index on email), not by check-then-act in application
// code; violations come back as ErrEmailInUse.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"anka-backend/internal/models"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrEmailInUse = errors.New("email already in use")
)

// ClientUpdate carries a partial update; nil fields are left unchanged.
type ClientUpdate struct {
	Name   *string
	Email  *string
	Status *models.ClientStatus
}

type Clients interface {
	Create(ctx context.Context, client *models.Client) error
	List(ctx context.Context) ([]models.Client, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Client, error)
	Update(ctx context.Context, id uuid.UUID, upd ClientUpdate) (*models.Client, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Allocations interface {
	Create(ctx context.Context, alloc *models.Allocation) error
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]models.Allocation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ChangeLogs interface {
	// Record appends a change log entry. Best-effort: failures are logged,
	// never returned.
	Record(ctx context.Context, entity string, entityID uuid.UUID, action, details string)
	List(ctx context.Context, limit int) ([]models.ChangeLog, error)
}
