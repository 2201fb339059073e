package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"anka-backend/internal/models"
)

type changeLogStore struct {
	db *gorm.DB
}

func NewChangeLogs(db *gorm.DB) ChangeLogs {
	return &changeLogStore{db: db}
}

func (s *changeLogStore) Record(ctx context.Context, entity string, entityID uuid.UUID, action, details string) {
	entry := models.ChangeLog{
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
		Details:  details,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"entity": entity,
			"action": action,
		}).Warn("failed to write change log entry")
	}
}

func (s *changeLogStore) List(ctx context.Context, limit int) ([]models.ChangeLog, error) {
	if limit <= 0 {
		limit = 100
	}
	entries := []models.ChangeLog{}
	err := s.db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
