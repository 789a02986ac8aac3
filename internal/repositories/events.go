package repositories

import (
	"context"
	"errors"

	"github.com/evently-hq/evently/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventStore abstracts event persistence for the handlers and the tests.
type EventStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Event, error)
	// FindByOwner returns the owner's events sorted by date ascending.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type gormEventStore struct {
	db *gorm.DB
}

func NewEventStore(db *gorm.DB) EventStore {
	return &gormEventStore{db: db}
}

func (s *gormEventStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	var event models.Event
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *gormEventStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Event, error) {
	events := []models.Event{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("date ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (s *gormEventStore) Create(ctx context.Context, event *models.Event) error {
	return s.db.WithContext(ctx).Create(event).Error
}

func (s *gormEventStore) Update(ctx context.Context, event *models.Event) error {
	return s.db.WithContext(ctx).Save(event).Error
}

func (s *gormEventStore) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&models.Event{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
