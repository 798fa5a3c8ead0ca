package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ejderhub-api/internal/domain"
)

// IdeaRepository defines the interface for idea data access
type IdeaRepository interface {
	Create(ctx context.Context, idea *domain.Idea) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Idea, error)
	FindAll(ctx context.Context) ([]*domain.Idea, error)
	Update(ctx context.Context, idea *domain.Idea) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ideaRepositoryImpl struct {
	db *gorm.DB
}

// NewIdeaRepository creates a new instance of IdeaRepository
func NewIdeaRepository(db *gorm.DB) IdeaRepository {
	return &ideaRepositoryImpl{db: db}
}

func (r *ideaRepositoryImpl) Create(ctx context.Context, idea *domain.Idea) error {
	return r.db.WithContext(ctx).Create(idea).Error
}

func (r *ideaRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Idea, error) {
	var idea domain.Idea
	if err := r.db.WithContext(ctx).Preload("Author").First(&idea, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &idea, nil
}

func (r *ideaRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Idea, error) {
	var ideas []*domain.Idea
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC").
		Find(&ideas).Error; err != nil {
		return nil, err
	}
	return ideas, nil
}

func (r *ideaRepositoryImpl) Update(ctx context.Context, idea *domain.Idea) error {
	return r.db.WithContext(ctx).Save(idea).Error
}

func (r *ideaRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Idea{}, "id = ?", id).Error
}
