package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ejderhub-api/internal/domain"
	"ejderhub-api/internal/dto"
	"ejderhub-api/internal/repository"
	"ejderhub-api/internal/response"
)

// DepartmentService defines the interface for department business logic
type DepartmentService interface {
	CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (*domain.Department, error)
	GetDepartment(ctx context.Context, departmentID uuid.UUID) (*domain.Department, error)
	ListDepartments(ctx context.Context) ([]*domain.Department, error)
	UpdateDepartment(ctx context.Context, departmentID uuid.UUID, req *dto.UpdateDepartmentRequest) (*domain.Department, error)
	DeleteDepartment(ctx context.Context, departmentID uuid.UUID) error
}

type departmentServiceImpl struct {
	departmentRepo repository.DepartmentRepository
	resourceRepo   repository.ResourceRepository
	logger         *zap.Logger
}

// NewDepartmentService creates a new instance of DepartmentService
func NewDepartmentService(
	departmentRepo repository.DepartmentRepository,
	resourceRepo repository.ResourceRepository,
	logger *zap.Logger,
) DepartmentService {
	return &departmentServiceImpl{
		departmentRepo: departmentRepo,
		resourceRepo:   resourceRepo,
		logger:         logger,
	}
}

// CreateDepartment creates a new department
func (s *departmentServiceImpl) CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (*domain.Department, error) {
	department := &domain.Department{
		Name:      req.Name,
		ParentID:  req.ParentID,
		ManagerID: req.ManagerID,
	}
	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create department", err.Error())
	}
	s.logger.Info("department created",
		zap.String("department_id", department.ID.String()),
		zap.String("name", department.Name),
	)
	return department, nil
}

// GetDepartment returns a single department by id
func (s *departmentServiceImpl) GetDepartment(ctx context.Context, departmentID uuid.UUID) (*domain.Department, error) {
	department, err := s.departmentRepo.FindByID(ctx, departmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Department not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load department", err.Error())
	}
	return department, nil
}

// ListDepartments returns all departments ordered by name
func (s *departmentServiceImpl) ListDepartments(ctx context.Context) ([]*domain.Department, error) {
	departments, err := s.departmentRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list departments", err.Error())
	}
	return departments, nil
}

// UpdateDepartment applies a partial update to a department
func (s *departmentServiceImpl) UpdateDepartment(ctx context.Context, departmentID uuid.UUID, req *dto.UpdateDepartmentRequest) (*domain.Department, error) {
	department, err := s.departmentRepo.FindByID(ctx, departmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Department not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load department", err.Error())
	}

	if req.ParentID != nil && *req.ParentID == departmentID {
		return nil, response.NewValidationError("A department cannot be its own parent", "")
	}

	if req.Name != nil {
		department.Name = *req.Name
	}
	if req.ParentID != nil {
		department.ParentID = req.ParentID
	}
	if req.ManagerID != nil {
		department.ManagerID = req.ManagerID
	}

	if err := s.departmentRepo.Update(ctx, department); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update department", err.Error())
	}
	return department, nil
}

// DeleteDepartment removes a department. Departments that still have
// resources assigned cannot be deleted.
func (s *departmentServiceImpl) DeleteDepartment(ctx context.Context, departmentID uuid.UUID) error {
	if _, err := s.departmentRepo.FindByID(ctx, departmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Department not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load department", err.Error())
	}

	count, err := s.resourceRepo.CountByDepartment(ctx, departmentID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to count department resources", err.Error())
	}
	if count > 0 {
		return response.NewConflictError(
			"Department still has resources assigned",
			fmt.Sprintf("%d resources reference this department", count),
		)
	}

	if err := s.departmentRepo.Delete(ctx, departmentID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete department", err.Error())
	}
	s.logger.Info("department deleted", zap.String("department_id", departmentID.String()))
	return nil
}
