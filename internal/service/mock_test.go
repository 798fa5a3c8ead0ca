package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"ejderhub-api/internal/domain"
	"ejderhub-api/internal/metrics"
)

func newTestMetrics() *metrics.Metrics {
	return metrics.NewWithRegistry(prometheus.NewRegistry())
}

// MockProjectRepository is a mock implementation of ProjectRepository
type MockProjectRepository struct {
	CreateFunc   func(ctx context.Context, project *domain.Project) error
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	FindAllFunc  func(ctx context.Context) ([]*domain.Project, error)
	UpdateFunc   func(ctx context.Context, project *domain.Project) error
	DeleteFunc   func(ctx context.Context, id uuid.UUID) error
	CountFunc    func(ctx context.Context) (int64, error)
}

func (m *MockProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, project)
	}
	return nil
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProjectRepository) FindAll(ctx context.Context) ([]*domain.Project, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, project)
	}
	return nil
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockProjectRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockTaskRepository is a mock implementation of TaskRepository
type MockTaskRepository struct {
	CreateFunc          func(ctx context.Context, task *domain.Task) error
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	FindAllFunc         func(ctx context.Context) ([]*domain.Task, error)
	FindByProjectIDFunc func(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error)
	UpdateFunc          func(ctx context.Context, task *domain.Task) error
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error
}

func (m *MockTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTaskRepository) FindAll(ctx context.Context) ([]*domain.Task, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockTaskRepository) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error) {
	if m.FindByProjectIDFunc != nil {
		return m.FindByProjectIDFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *MockTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockEventRepository is a mock implementation of EventRepository
type MockEventRepository struct {
	CreateFunc        func(ctx context.Context, event *domain.Event) error
	FindByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	FindAllFunc       func(ctx context.Context) ([]*domain.Event, error)
	UpdateFunc        func(ctx context.Context, event *domain.Event) error
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	ClearIdeaRefsFunc func(ctx context.Context, ideaID uuid.UUID) error
}

func (m *MockEventRepository) Create(ctx context.Context, event *domain.Event) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, event)
	}
	return nil
}

func (m *MockEventRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockEventRepository) FindAll(ctx context.Context) ([]*domain.Event, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockEventRepository) Update(ctx context.Context, event *domain.Event) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, event)
	}
	return nil
}

func (m *MockEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockEventRepository) ClearIdeaRefs(ctx context.Context, ideaID uuid.UUID) error {
	if m.ClearIdeaRefsFunc != nil {
		return m.ClearIdeaRefsFunc(ctx, ideaID)
	}
	return nil
}

// MockIdeaRepository is a mock implementation of IdeaRepository
type MockIdeaRepository struct {
	CreateFunc   func(ctx context.Context, idea *domain.Idea) error
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Idea, error)
	FindAllFunc  func(ctx context.Context) ([]*domain.Idea, error)
	UpdateFunc   func(ctx context.Context, idea *domain.Idea) error
	DeleteFunc   func(ctx context.Context, id uuid.UUID) error
}

func (m *MockIdeaRepository) Create(ctx context.Context, idea *domain.Idea) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, idea)
	}
	return nil
}

func (m *MockIdeaRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Idea, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockIdeaRepository) FindAll(ctx context.Context) ([]*domain.Idea, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockIdeaRepository) Update(ctx context.Context, idea *domain.Idea) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, idea)
	}
	return nil
}

func (m *MockIdeaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockResourceRepository is a mock implementation of ResourceRepository
type MockResourceRepository struct {
	CreateFunc            func(ctx context.Context, resource *domain.Resource) error
	FindByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Resource, error)
	FindAllFunc           func(ctx context.Context) ([]*domain.Resource, error)
	UpdateFunc            func(ctx context.Context, resource *domain.Resource) error
	DeleteFunc            func(ctx context.Context, id uuid.UUID) error
	CountByDepartmentFunc func(ctx context.Context, departmentID uuid.UUID) (int64, error)
}

func (m *MockResourceRepository) Create(ctx context.Context, resource *domain.Resource) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, resource)
	}
	return nil
}

func (m *MockResourceRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Resource, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockResourceRepository) FindAll(ctx context.Context) ([]*domain.Resource, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockResourceRepository) Update(ctx context.Context, resource *domain.Resource) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, resource)
	}
	return nil
}

func (m *MockResourceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockResourceRepository) CountByDepartment(ctx context.Context, departmentID uuid.UUID) (int64, error) {
	if m.CountByDepartmentFunc != nil {
		return m.CountByDepartmentFunc(ctx, departmentID)
	}
	return 0, nil
}

// MockDepartmentRepository is a mock implementation of DepartmentRepository
type MockDepartmentRepository struct {
	CreateFunc   func(ctx context.Context, department *domain.Department) error
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Department, error)
	FindAllFunc  func(ctx context.Context) ([]*domain.Department, error)
	UpdateFunc   func(ctx context.Context, department *domain.Department) error
	DeleteFunc   func(ctx context.Context, id uuid.UUID) error
}

func (m *MockDepartmentRepository) Create(ctx context.Context, department *domain.Department) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, department)
	}
	return nil
}

func (m *MockDepartmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Department, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockDepartmentRepository) FindAll(ctx context.Context) ([]*domain.Department, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockDepartmentRepository) Update(ctx context.Context, department *domain.Department) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, department)
	}
	return nil
}

func (m *MockDepartmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	CreateFunc   func(ctx context.Context, comment *domain.Comment) error
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	FindAllFunc  func(ctx context.Context) ([]*domain.Comment, error)
	UpdateFunc   func(ctx context.Context, comment *domain.Comment) error
	DeleteFunc   func(ctx context.Context, id uuid.UUID) error
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCommentRepository) FindAll(ctx context.Context) ([]*domain.Comment, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockEvaluationRepository is a mock implementation of EvaluationRepository
type MockEvaluationRepository struct {
	CreateFunc   func(ctx context.Context, evaluation *domain.Evaluation) error
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Evaluation, error)
	FindAllFunc  func(ctx context.Context) ([]*domain.Evaluation, error)
	UpdateFunc   func(ctx context.Context, evaluation *domain.Evaluation) error
	DeleteFunc   func(ctx context.Context, id uuid.UUID) error
}

func (m *MockEvaluationRepository) Create(ctx context.Context, evaluation *domain.Evaluation) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, evaluation)
	}
	return nil
}

func (m *MockEvaluationRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Evaluation, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockEvaluationRepository) FindAll(ctx context.Context) ([]*domain.Evaluation, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockEvaluationRepository) Update(ctx context.Context, evaluation *domain.Evaluation) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, evaluation)
	}
	return nil
}

func (m *MockEvaluationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockNotificationRepository is a mock implementation of NotificationRepository
type MockNotificationRepository struct {
	CreateFunc              func(ctx context.Context, notification *domain.Notification) error
	FindByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	FindAllFunc             func(ctx context.Context) ([]*domain.Notification, error)
	UpdateFunc              func(ctx context.Context, notification *domain.Notification) error
	DeleteFunc              func(ctx context.Context, id uuid.UUID) error
	MarkAllReadFunc         func(ctx context.Context) (int64, error)
	CountUnreadFunc         func(ctx context.Context) (int64, error)
	DeleteReadOlderThanFunc func(ctx context.Context, cutoff time.Time) (int64, error)
}

func (m *MockNotificationRepository) Create(ctx context.Context, notification *domain.Notification) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, notification)
	}
	return nil
}

func (m *MockNotificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockNotificationRepository) FindAll(ctx context.Context) ([]*domain.Notification, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockNotificationRepository) Update(ctx context.Context, notification *domain.Notification) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, notification)
	}
	return nil
}

func (m *MockNotificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context) (int64, error) {
	if m.MarkAllReadFunc != nil {
		return m.MarkAllReadFunc(ctx)
	}
	return 0, nil
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context) (int64, error) {
	if m.CountUnreadFunc != nil {
		return m.CountUnreadFunc(ctx)
	}
	return 0, nil
}

func (m *MockNotificationRepository) DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	if m.DeleteReadOlderThanFunc != nil {
		return m.DeleteReadOlderThanFunc(ctx, cutoff)
	}
	return 0, nil
}
