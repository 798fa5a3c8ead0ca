package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ejderhub-api/internal/domain"
)

// ResourceRepository defines the interface for resource data access
type ResourceRepository interface {
	Create(ctx context.Context, resource *domain.Resource) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Resource, error)
	FindAll(ctx context.Context) ([]*domain.Resource, error)
	Update(ctx context.Context, resource *domain.Resource) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByDepartment(ctx context.Context, departmentID uuid.UUID) (int64, error)
}

type resourceRepositoryImpl struct {
	db *gorm.DB
}

// NewResourceRepository creates a new instance of ResourceRepository
func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &resourceRepositoryImpl{db: db}
}

func (r *resourceRepositoryImpl) Create(ctx context.Context, resource *domain.Resource) error {
	return r.db.WithContext(ctx).Create(resource).Error
}

func (r *resourceRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Resource, error) {
	var resource domain.Resource
	if err := r.db.WithContext(ctx).Preload("Department").First(&resource, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &resource, nil
}

func (r *resourceRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Resource, error) {
	var resources []*domain.Resource
	if err := r.db.WithContext(ctx).
		Preload("Department").
		Order("name ASC").
		Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

func (r *resourceRepositoryImpl) Update(ctx context.Context, resource *domain.Resource) error {
	return r.db.WithContext(ctx).Save(resource).Error
}

func (r *resourceRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Resource{}, "id = ?", id).Error
}

func (r *resourceRepositoryImpl) CountByDepartment(ctx context.Context, departmentID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Resource{}).
		Where("department_id = ?", departmentID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
