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
	"ejderhub-api/internal/metrics"
	"ejderhub-api/internal/repository"
	"ejderhub-api/internal/response"
)

// TaskService defines the interface for task business logic. Tasks also back
// the task-typed calendar entries served by the event service.
type TaskService interface {
	CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*domain.Task, error)
	GetTask(ctx context.Context, taskID uuid.UUID) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]*domain.Task, error)
	ListTasksByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error)
	UpdateTask(ctx context.Context, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*domain.Task, error)
	UpdateTaskStatus(ctx context.Context, taskID uuid.UUID, status domain.TaskStatus) (*domain.Task, error)
	UpdateTaskProgress(ctx context.Context, taskID uuid.UUID, progress int) (*domain.Task, error)
	DeleteTask(ctx context.Context, taskID uuid.UUID) error
}

type taskServiceImpl struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewTaskService creates a new instance of TaskService
func NewTaskService(
	taskRepo repository.TaskRepository,
	projectRepo repository.ProjectRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) TaskService {
	return &taskServiceImpl{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		metrics:     m,
		logger:      logger,
	}
}

// CreateTask creates a new task reported by the acting user
func (s *taskServiceImpl) CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*domain.Task, error) {
	if err := validateDateRange(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	if req.ProjectID != nil {
		if _, err := s.projectRepo.FindByID(ctx, *req.ProjectID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NewNotFoundError("Project not found", req.ProjectID.String())
			}
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify project", err.Error())
		}
	}

	status := req.Status
	if status == "" {
		status = domain.TaskStatusToDo
	}
	priority := req.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	reporterID := req.ReporterID
	if reporterID == nil {
		reporterID = &userID
	}

	task := &domain.Task{
		Title:          req.Title,
		Description:    req.Description,
		Status:         status,
		Priority:       priority,
		AssigneeID:     req.AssigneeID,
		ReporterID:     reporterID,
		ProjectID:      req.ProjectID,
		Category:       req.Category,
		EstimatedHours: req.EstimatedHours,
		SpentHours:     req.SpentHours,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Dependencies:   datatypes.JSONSlice[string](req.Dependencies),
		Tags:           datatypes.JSONSlice[string](req.Tags),
		Notes:          req.Notes,
		Files:          datatypes.JSONSlice[string](req.Files),
	}
	if req.Progress != nil {
		task.Progress = clampProgress(*req.Progress)
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create task", err.Error())
	}

	s.metrics.IncrementTaskCreated()
	s.logger.Info("task created",
		zap.String("task_id", task.ID.String()),
		zap.String("title", task.Title),
	)

	return task, nil
}

// GetTask returns a single task by id
func (s *taskServiceImpl) GetTask(ctx context.Context, taskID uuid.UUID) (*domain.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Task not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load task", err.Error())
	}
	return task, nil
}

// ListTasks returns all tasks in creation order
func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := s.taskRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list tasks", err.Error())
	}
	return tasks, nil
}

// ListTasksByProject returns the tasks attached to one project
func (s *taskServiceImpl) ListTasksByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error) {
	tasks, err := s.taskRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list project tasks", err.Error())
	}
	return tasks, nil
}

// UpdateTask applies a partial update to a task
func (s *taskServiceImpl) UpdateTask(ctx context.Context, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*domain.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Task not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load task", err.Error())
	}

	applyTaskUpdate(task, req)
	if err := validateDateRange(task.StartDate, task.EndDate); err != nil {
		return nil, err
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update task", err.Error())
	}
	return task, nil
}

// UpdateTaskStatus moves a task to another kanban column. Status changes have
// no side effects on other fields; the original board behaves the same way.
func (s *taskServiceImpl) UpdateTaskStatus(ctx context.Context, taskID uuid.UUID, status domain.TaskStatus) (*domain.Task, error) {
	switch status {
	case domain.TaskStatusToDo, domain.TaskStatusInProgress, domain.TaskStatusDone:
	default:
		return nil, response.NewValidationError("Invalid task status", string(status))
	}

	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Task not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load task", err.Error())
	}

	task.Status = status
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update task status", err.Error())
	}
	return task, nil
}

// UpdateTaskProgress sets a task's completion percentage
func (s *taskServiceImpl) UpdateTaskProgress(ctx context.Context, taskID uuid.UUID, progress int) (*domain.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Task not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load task", err.Error())
	}

	task.Progress = clampProgress(progress)
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update task progress", err.Error())
	}
	return task, nil
}

// DeleteTask removes a task. Its calendar projection disappears with it.
func (s *taskServiceImpl) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
	if _, err := s.taskRepo.FindByID(ctx, taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Task not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load task", err.Error())
	}
	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete task", err.Error())
	}
	s.logger.Info("task deleted", zap.String("task_id", taskID.String()))
	return nil
}

func applyTaskUpdate(task *domain.Task, req *dto.UpdateTaskRequest) {
	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.AssigneeID != nil {
		task.AssigneeID = req.AssigneeID
	}
	if req.ReporterID != nil {
		task.ReporterID = req.ReporterID
	}
	if req.ProjectID != nil {
		task.ProjectID = req.ProjectID
	}
	if req.Category != nil {
		task.Category = *req.Category
	}
	if req.EstimatedHours != nil {
		task.EstimatedHours = *req.EstimatedHours
	}
	if req.SpentHours != nil {
		task.SpentHours = *req.SpentHours
	}
	if req.StartDate != nil {
		task.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		task.EndDate = *req.EndDate
	}
	if req.CompletionDate != nil {
		task.CompletionDate = *req.CompletionDate
	}
	if req.Dependencies != nil {
		task.Dependencies = datatypes.JSONSlice[string](*req.Dependencies)
	}
	if req.Tags != nil {
		task.Tags = datatypes.JSONSlice[string](*req.Tags)
	}
	if req.Progress != nil {
		task.Progress = clampProgress(*req.Progress)
	}
	if req.Notes != nil {
		task.Notes = *req.Notes
	}
	if req.Files != nil {
		task.Files = datatypes.JSONSlice[string](*req.Files)
	}
}
