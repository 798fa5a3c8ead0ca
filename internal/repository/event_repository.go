package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ejderhub-api/internal/domain"
)

// EventRepository defines the interface for calendar event data access.
// Only non-task events live in this table; task calendar entries are
// projected from the tasks table by the service layer.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	FindAll(ctx context.Context) ([]*domain.Event, error)
	Update(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
	ClearIdeaRefs(ctx context.Context, ideaID uuid.UUID) error
}

type eventRepositoryImpl struct {
	db *gorm.DB
}

// NewEventRepository creates a new instance of EventRepository
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepositoryImpl{db: db}
}

func (r *eventRepositoryImpl) Create(ctx context.Context, event *domain.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	var event domain.Event
	if err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Event, error) {
	var events []*domain.Event
	if err := r.db.WithContext(ctx).
		Order("date ASC, created_at ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepositoryImpl) Update(ctx context.Context, event *domain.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *eventRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Event{}, "id = ?", id).Error
}

// ClearIdeaRefs detaches all events from a deleted idea without deleting
// the events themselves.
func (r *eventRepositoryImpl) ClearIdeaRefs(ctx context.Context, ideaID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&domain.Event{}).
		Where("idea_id = ?", ideaID).
		Update("idea_id", nil).Error
}
