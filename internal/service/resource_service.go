package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"ejderhub-api/internal/domain"
	"ejderhub-api/internal/dto"
	"ejderhub-api/internal/repository"
	"ejderhub-api/internal/response"
)

// ResourceService defines the interface for resource business logic
type ResourceService interface {
	CreateResource(ctx context.Context, req *dto.CreateResourceRequest) (*domain.Resource, error)
	GetResource(ctx context.Context, resourceID uuid.UUID) (*domain.Resource, error)
	ListResources(ctx context.Context) ([]*domain.Resource, error)
	UpdateResource(ctx context.Context, resourceID uuid.UUID, req *dto.UpdateResourceRequest) (*domain.Resource, error)
	DeleteResource(ctx context.Context, resourceID uuid.UUID) error
}

type resourceServiceImpl struct {
	resourceRepo repository.ResourceRepository
	logger       *zap.Logger
}

// NewResourceService creates a new instance of ResourceService
func NewResourceService(resourceRepo repository.ResourceRepository, logger *zap.Logger) ResourceService {
	return &resourceServiceImpl{
		resourceRepo: resourceRepo,
		logger:       logger,
	}
}

// CreateResource creates a new resource, deriving initials from the name
// when they are not supplied
func (s *resourceServiceImpl) CreateResource(ctx context.Context, req *dto.CreateResourceRequest) (*domain.Resource, error) {
	initials := req.Initials
	if initials == "" {
		initials = domain.DeriveInitials(req.Name)
	}

	weeklyHours := 40.0
	if req.WeeklyHours != nil {
		weeklyHours = *req.WeeklyHours
	}
	if weeklyHours <= 0 {
		return nil, response.NewValidationError("Weekly hours must be positive", "")
	}

	resource := &domain.Resource{
		Name:         req.Name,
		Initials:     initials,
		Position:     req.Position,
		DepartmentID: req.DepartmentID,
		Email:        req.Email,
		Phone:        req.Phone,
		StartDate:    req.StartDate,
		Skills:       datatypes.JSONSlice[string](req.Skills),
		WeeklyHours:  weeklyHours,
		ManagerID:    req.ManagerID,
		Bio:          req.Bio,
	}
	if req.CurrentLoad != nil {
		resource.CurrentLoad = *req.CurrentLoad
	}

	if err := s.resourceRepo.Create(ctx, resource); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create resource", err.Error())
	}

	s.logger.Info("resource created",
		zap.String("resource_id", resource.ID.String()),
		zap.String("name", resource.Name),
	)

	return resource, nil
}

// GetResource returns a single resource by id
func (s *resourceServiceImpl) GetResource(ctx context.Context, resourceID uuid.UUID) (*domain.Resource, error) {
	resource, err := s.resourceRepo.FindByID(ctx, resourceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Resource not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load resource", err.Error())
	}
	return resource, nil
}

// ListResources returns all resources ordered by name
func (s *resourceServiceImpl) ListResources(ctx context.Context) ([]*domain.Resource, error) {
	resources, err := s.resourceRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list resources", err.Error())
	}
	return resources, nil
}

// UpdateResource applies a partial update to a resource. Self-management is
// rejected; deeper reporting-chain cycles stay the caller's responsibility.
func (s *resourceServiceImpl) UpdateResource(ctx context.Context, resourceID uuid.UUID, req *dto.UpdateResourceRequest) (*domain.Resource, error) {
	resource, err := s.resourceRepo.FindByID(ctx, resourceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Resource not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load resource", err.Error())
	}

	if req.ManagerID != nil && *req.ManagerID == resourceID {
		return nil, response.NewValidationError("A resource cannot manage itself", "")
	}

	if req.Name != nil {
		resource.Name = *req.Name
		if req.Initials == nil {
			resource.Initials = domain.DeriveInitials(resource.Name)
		}
	}
	if req.Initials != nil {
		resource.Initials = *req.Initials
	}
	if req.Position != nil {
		resource.Position = *req.Position
	}
	if req.DepartmentID != nil {
		resource.DepartmentID = req.DepartmentID
	}
	if req.Email != nil {
		resource.Email = *req.Email
	}
	if req.Phone != nil {
		resource.Phone = *req.Phone
	}
	if req.StartDate != nil {
		resource.StartDate = *req.StartDate
	}
	if req.Skills != nil {
		resource.Skills = datatypes.JSONSlice[string](*req.Skills)
	}
	if req.WeeklyHours != nil {
		if *req.WeeklyHours <= 0 {
			return nil, response.NewValidationError("Weekly hours must be positive", "")
		}
		resource.WeeklyHours = *req.WeeklyHours
	}
	if req.CurrentLoad != nil {
		resource.CurrentLoad = *req.CurrentLoad
	}
	if req.ManagerID != nil {
		resource.ManagerID = req.ManagerID
	}
	if req.Bio != nil {
		resource.Bio = *req.Bio
	}
	if req.EarnedBadges != nil {
		resource.EarnedBadges = datatypes.JSONSlice[string](*req.EarnedBadges)
	}

	if err := s.resourceRepo.Update(ctx, resource); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update resource", err.Error())
	}
	return resource, nil
}

// DeleteResource removes a resource
func (s *resourceServiceImpl) DeleteResource(ctx context.Context, resourceID uuid.UUID) error {
	if _, err := s.resourceRepo.FindByID(ctx, resourceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Resource not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load resource", err.Error())
	}
	if err := s.resourceRepo.Delete(ctx, resourceID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete resource", err.Error())
	}
	s.logger.Info("resource deleted", zap.String("resource_id", resourceID.String()))
	return nil
}
