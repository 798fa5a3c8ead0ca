package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"ejderhub-api/internal/domain"
	"ejderhub-api/internal/dto"
	"ejderhub-api/internal/metrics"
	"ejderhub-api/internal/repository"
	"ejderhub-api/internal/response"
)

// ProjectService defines the interface for project business logic
type ProjectService interface {
	CreateProject(ctx context.Context, userID uuid.UUID, req *dto.CreateProjectRequest) (*domain.Project, error)
	GetProject(ctx context.Context, projectID uuid.UUID) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]*domain.Project, error)
	UpdateProject(ctx context.Context, projectID uuid.UUID, req *dto.UpdateProjectRequest) (*domain.Project, error)
	DeleteProject(ctx context.Context, projectID uuid.UUID) error
	GenerateProjectCode(ctx context.Context) (string, error)
}

type projectServiceImpl struct {
	projectRepo repository.ProjectRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewProjectService creates a new instance of ProjectService
func NewProjectService(projectRepo repository.ProjectRepository, m *metrics.Metrics, logger *zap.Logger) ProjectService {
	return &projectServiceImpl{
		projectRepo: projectRepo,
		metrics:     m,
		logger:      logger,
	}
}

// CreateProject creates a new project. A project code is generated when the
// caller does not provide one.
func (s *projectServiceImpl) CreateProject(ctx context.Context, userID uuid.UUID, req *dto.CreateProjectRequest) (*domain.Project, error) {
	if err := validateDateRange(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	code := req.Code
	if code == "" {
		generated, err := s.GenerateProjectCode(ctx)
		if err != nil {
			return nil, err
		}
		code = generated
	}

	status := req.Status
	if status == "" {
		status = domain.ProjectStatusPlanning
	}
	priority := req.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	managerID := req.ManagerID
	if managerID == nil {
		managerID = &userID
	}

	project := &domain.Project{
		Name:      req.Name,
		Code:      code,
		Status:    status,
		Priority:  priority,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		ManagerID: managerID,
		Team:      datatypes.JSONSlice[string](req.Team),
		Budget:    req.Budget,
		Color:     req.Color,
		Files:     datatypes.JSONSlice[string](req.Files),
	}
	if req.Progress != nil {
		project.Progress = clampProgress(*req.Progress)
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewConflictError("Project code already in use", code)
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create project", err.Error())
	}

	s.metrics.IncrementProjectCreated()
	s.logger.Info("project created",
		zap.String("project_id", project.ID.String()),
		zap.String("code", project.Code),
	)

	return project, nil
}

// GetProject returns a single project by id
func (s *projectServiceImpl) GetProject(ctx context.Context, projectID uuid.UUID) (*domain.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Project not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load project", err.Error())
	}
	return project, nil
}

// ListProjects returns all projects in creation order
func (s *projectServiceImpl) ListProjects(ctx context.Context) ([]*domain.Project, error) {
	projects, err := s.projectRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list projects", err.Error())
	}
	return projects, nil
}

// UpdateProject applies a partial update to a project
func (s *projectServiceImpl) UpdateProject(ctx context.Context, projectID uuid.UUID, req *dto.UpdateProjectRequest) (*domain.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Project not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load project", err.Error())
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Code != nil {
		project.Code = *req.Code
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.Priority != nil {
		project.Priority = *req.Priority
	}
	if req.StartDate != nil {
		project.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		project.EndDate = *req.EndDate
	}
	if err := validateDateRange(project.StartDate, project.EndDate); err != nil {
		return nil, err
	}
	if req.Progress != nil {
		project.Progress = clampProgress(*req.Progress)
	}
	if req.ManagerID != nil {
		project.ManagerID = req.ManagerID
	}
	if req.Team != nil {
		project.Team = datatypes.JSONSlice[string](*req.Team)
	}
	if req.Budget != nil {
		project.Budget = *req.Budget
	}
	if req.Color != nil {
		project.Color = *req.Color
	}
	if req.Files != nil {
		project.Files = datatypes.JSONSlice[string](*req.Files)
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewConflictError("Project code already in use", project.Code)
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update project", err.Error())
	}

	return project, nil
}

// DeleteProject removes a project
func (s *projectServiceImpl) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Project not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load project", err.Error())
	}
	if err := s.projectRepo.Delete(ctx, projectID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete project", err.Error())
	}
	s.logger.Info("project deleted", zap.String("project_id", projectID.String()))
	return nil
}

// GenerateProjectCode builds the next sequential code in the
// PRJ-<year>-<seq> format
func (s *projectServiceImpl) GenerateProjectCode(ctx context.Context) (string, error) {
	count, err := s.projectRepo.Count(ctx)
	if err != nil {
		return "", response.NewAppError(response.ErrCodeInternal, "Failed to count projects", err.Error())
	}
	return fmt.Sprintf("PRJ-%d-%03d", time.Now().Year(), count+1), nil
}
