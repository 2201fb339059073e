package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"anka-backend/internal/models"
)

type allocationStore struct {
	db *gorm.DB
}

func NewAllocations(db *gorm.DB) Allocations {
	return &allocationStore{db: db}
}

func (s *allocationStore) Create(ctx context.Context, alloc *models.Allocation) error {
	if alloc.ID == uuid.Nil {
		alloc.ID = uuid.New()
	}
	if alloc.AllocatedAt.IsZero() {
		alloc.AllocatedAt = time.Now().UTC()
	}
	return s.db.WithContext(ctx).Create(alloc).Error
}

func (s *allocationStore) ListByClient(ctx context.Context, clientID uuid.UUID) ([]models.Allocation, error) {
	allocs := []models.Allocation{}
	err := s.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("allocated_at desc").
		Find(&allocs).Error
	return allocs, err
}

func (s *allocationStore) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&models.Allocation{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
