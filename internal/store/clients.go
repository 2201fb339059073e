package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"anka-backend/internal/models"
)

type clientStore struct {
	db *gorm.DB
}

func NewClients(db *gorm.DB) Clients {
	return &clientStore{db: db}
}

func (s *clientStore) Create(ctx context.Context, client *models.Client) error {
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	if client.Status == "" {
		client.Status = models.StatusActive
	}

	err := s.db.WithContext(ctx).Create(client).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrEmailInUse
	}
	return err
}

func (s *clientStore) List(ctx context.Context) ([]models.Client, error) {
	clients := []models.Client{}
	err := s.db.WithContext(ctx).Order("created_at desc").Find(&clients).Error
	return clients, err
}

func (s *clientStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	var client models.Client
	err := s.db.WithContext(ctx).First(&client, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *clientStore) Update(ctx context.Context, id uuid.UUID, upd ClientUpdate) (*models.Client, error) {
	client, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := map[string]interface{}{}
	if upd.Name != nil {
		changes["name"] = *upd.Name
	}
	if upd.Email != nil {
		changes["email"] = *upd.Email
	}
	if upd.Status != nil {
		changes["status"] = *upd.Status
	}
	if len(changes) == 0 {
		return client, nil
	}

	err = s.db.WithContext(ctx).Model(client).Updates(changes).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrEmailInUse
	}
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (s *clientStore) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&models.Client{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
