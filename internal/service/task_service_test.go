package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ejderhub-api/internal/domain"
	"ejderhub-api/internal/dto"
	"ejderhub-api/internal/response"
)

func TestTaskService_CreateTask(t *testing.T) {
	projectID := uuid.New()
	userID := uuid.New()

	tests := []struct {
		name        string
		req         *dto.CreateTaskRequest
		mockProject func(*MockProjectRepository)
		mockTask    func(*MockTaskRepository)
		wantErr     bool
		wantErrCode string
		check       func(t *testing.T, got *domain.Task)
	}{
		{
			name: "success: defaults applied",
			req: &dto.CreateTaskRequest{
				Title: "Write onboarding doc",
			},
			mockProject: func(m *MockProjectRepository) {},
			mockTask: func(m *MockTaskRepository) {
				m.CreateFunc = func(ctx context.Context, task *domain.Task) error {
					task.ID = uuid.New()
					task.CreatedAt = time.Now()
					task.UpdatedAt = time.Now()
					return nil
				}
			},
			check: func(t *testing.T, got *domain.Task) {
				if got.Status != domain.TaskStatusToDo {
					t.Errorf("Status = %v, want %v", got.Status, domain.TaskStatusToDo)
				}
				if got.Priority != domain.PriorityMedium {
					t.Errorf("Priority = %v, want %v", got.Priority, domain.PriorityMedium)
				}
				if got.ReporterID == nil || *got.ReporterID != userID {
					t.Errorf("ReporterID = %v, want acting user %v", got.ReporterID, userID)
				}
			},
		},
		{
			name: "success: progress clamped to 100",
			req: &dto.CreateTaskRequest{
				Title:    "Load test",
				Progress: intPtr(250),
			},
			mockProject: func(m *MockProjectRepository) {},
			mockTask:    func(m *MockTaskRepository) {},
			check: func(t *testing.T, got *domain.Task) {
				if got.Progress != 100 {
					t.Errorf("Progress = %v, want 100", got.Progress)
				}
			},
		},
		{
			name: "failure: project does not exist",
			req: &dto.CreateTaskRequest{
				Title:     "Orphan task",
				ProjectID: &projectID,
			},
			mockProject: func(m *MockProjectRepository) {
				m.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
					return nil, gorm.ErrRecordNotFound
				}
			},
			mockTask:    func(m *MockTaskRepository) {},
			wantErr:     true,
			wantErrCode: response.ErrCodeNotFound,
		},
		{
			name: "failure: end date precedes start date",
			req: &dto.CreateTaskRequest{
				Title:     "Backwards schedule",
				StartDate: "2026-09-10",
				EndDate:   "2026-09-01",
			},
			mockProject: func(m *MockProjectRepository) {},
			mockTask:    func(m *MockTaskRepository) {},
			wantErr:     true,
			wantErrCode: response.ErrCodeValidation,
		},
		{
			name: "failure: db error on create",
			req: &dto.CreateTaskRequest{
				Title: "Doomed task",
			},
			mockProject: func(m *MockProjectRepository) {},
			mockTask: func(m *MockTaskRepository) {
				m.CreateFunc = func(ctx context.Context, task *domain.Task) error {
					return errors.New("database error")
				}
			},
			wantErr:     true,
			wantErrCode: response.ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			mockTaskRepo := &MockTaskRepository{}
			mockProjectRepo := &MockProjectRepository{}
			tt.mockTask(mockTaskRepo)
			tt.mockProject(mockProjectRepo)

			logger := zap.NewNop()
			service := NewTaskService(mockTaskRepo, mockProjectRepo, newTestMetrics(), logger)

			// When
			got, err := service.CreateTask(context.Background(), userID, tt.req)

			// Then
			if tt.wantErr {
				if err == nil {
					t.Error("CreateTask() error = nil, want error")
					return
				}
				if appErr, ok := err.(*response.AppError); ok {
					if appErr.Code != tt.wantErrCode {
						t.Errorf("CreateTask() error code = %v, want %v", appErr.Code, tt.wantErrCode)
					}
				}
				return
			}
			if err != nil {
				t.Errorf("CreateTask() unexpected error = %v", err)
				return
			}
			if got == nil {
				t.Error("CreateTask() returned nil task")
				return
			}
			if got.Title != tt.req.Title {
				t.Errorf("Title = %v, want %v", got.Title, tt.req.Title)
			}
			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}

func TestTaskService_UpdateTaskStatus(t *testing.T) {
	taskID := uuid.New()

	tests := []struct {
		name        string
		status      domain.TaskStatus
		mockTask    func(*MockTaskRepository)
		wantErr     bool
		wantErrCode string
	}{
		{
			name:   "success: move to InProgress",
			status: domain.TaskStatusInProgress,
			mockTask: func(m *MockTaskRepository) {
				m.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
					return &domain.Task{
						BaseModel: domain.BaseModel{ID: taskID},
						Title:     "Board task",
						Status:    domain.TaskStatusToDo,
					}, nil
				}
			},
		},
		{
			name:        "failure: unknown status rejected",
			status:      domain.TaskStatus("Blocked"),
			mockTask:    func(m *MockTaskRepository) {},
			wantErr:     true,
			wantErrCode: response.ErrCodeValidation,
		},
		{
			name:   "failure: task not found",
			status: domain.TaskStatusDone,
			mockTask: func(m *MockTaskRepository) {
				m.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
					return nil, gorm.ErrRecordNotFound
				}
			},
			wantErr:     true,
			wantErrCode: response.ErrCodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			mockTaskRepo := &MockTaskRepository{}
			tt.mockTask(mockTaskRepo)

			var updated *domain.Task
			mockTaskRepo.UpdateFunc = func(ctx context.Context, task *domain.Task) error {
				updated = task
				return nil
			}

			service := NewTaskService(mockTaskRepo, &MockProjectRepository{}, newTestMetrics(), zap.NewNop())

			// When
			got, err := service.UpdateTaskStatus(context.Background(), taskID, tt.status)

			// Then
			if tt.wantErr {
				if err == nil {
					t.Error("UpdateTaskStatus() error = nil, want error")
					return
				}
				if appErr, ok := err.(*response.AppError); ok {
					if appErr.Code != tt.wantErrCode {
						t.Errorf("UpdateTaskStatus() error code = %v, want %v", appErr.Code, tt.wantErrCode)
					}
				}
				if updated != nil {
					t.Error("UpdateTaskStatus() persisted a task despite the error")
				}
				return
			}
			if err != nil {
				t.Errorf("UpdateTaskStatus() unexpected error = %v", err)
				return
			}
			if got.Status != tt.status {
				t.Errorf("Status = %v, want %v", got.Status, tt.status)
			}
			if updated == nil || updated.Status != tt.status {
				t.Error("UpdateTaskStatus() did not persist the new status")
			}
		})
	}
}

func TestTaskService_UpdateTaskStatus_NoSideEffects(t *testing.T) {
	// Moving a task to Done changes only the status column. Progress and
	// completion date stay whatever they were.
	taskID := uuid.New()
	mockTaskRepo := &MockTaskRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
			return &domain.Task{
				BaseModel: domain.BaseModel{ID: taskID},
				Title:     "Half done",
				Status:    domain.TaskStatusInProgress,
				Progress:  40,
			}, nil
		},
	}

	service := NewTaskService(mockTaskRepo, &MockProjectRepository{}, newTestMetrics(), zap.NewNop())

	got, err := service.UpdateTaskStatus(context.Background(), taskID, domain.TaskStatusDone)
	if err != nil {
		t.Fatalf("UpdateTaskStatus() unexpected error = %v", err)
	}
	if got.Progress != 40 {
		t.Errorf("Progress = %v, want untouched 40", got.Progress)
	}
	if got.CompletionDate != "" {
		t.Errorf("CompletionDate = %q, want empty", got.CompletionDate)
	}
}

func TestTaskService_UpdateTaskProgress(t *testing.T) {
	taskID := uuid.New()

	tests := []struct {
		name         string
		progress     int
		wantProgress int
	}{
		{name: "plain value", progress: 55, wantProgress: 55},
		{name: "negative clamped to 0", progress: -10, wantProgress: 0},
		{name: "overshoot clamped to 100", progress: 140, wantProgress: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTaskRepo := &MockTaskRepository{
				FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
					return &domain.Task{BaseModel: domain.BaseModel{ID: taskID}, Title: "Tracked"}, nil
				},
			}
			service := NewTaskService(mockTaskRepo, &MockProjectRepository{}, newTestMetrics(), zap.NewNop())

			got, err := service.UpdateTaskProgress(context.Background(), taskID, tt.progress)
			if err != nil {
				t.Fatalf("UpdateTaskProgress() unexpected error = %v", err)
			}
			if got.Progress != tt.wantProgress {
				t.Errorf("Progress = %v, want %v", got.Progress, tt.wantProgress)
			}
		})
	}
}

func TestTaskService_DeleteTask(t *testing.T) {
	taskID := uuid.New()

	t.Run("success", func(t *testing.T) {
		deleted := false
		mockTaskRepo := &MockTaskRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
				return &domain.Task{BaseModel: domain.BaseModel{ID: taskID}}, nil
			},
			DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
				deleted = true
				return nil
			},
		}
		service := NewTaskService(mockTaskRepo, &MockProjectRepository{}, newTestMetrics(), zap.NewNop())

		if err := service.DeleteTask(context.Background(), taskID); err != nil {
			t.Fatalf("DeleteTask() unexpected error = %v", err)
		}
		if !deleted {
			t.Error("DeleteTask() never reached the repository")
		}
	})

	t.Run("failure: task not found", func(t *testing.T) {
		mockTaskRepo := &MockTaskRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		service := NewTaskService(mockTaskRepo, &MockProjectRepository{}, newTestMetrics(), zap.NewNop())

		err := service.DeleteTask(context.Background(), taskID)
		if err == nil {
			t.Fatal("DeleteTask() error = nil, want not found")
		}
		if appErr, ok := err.(*response.AppError); !ok || appErr.Code != response.ErrCodeNotFound {
			t.Errorf("DeleteTask() error = %v, want code %v", err, response.ErrCodeNotFound)
		}
	})
}

func intPtr(v int) *int { return &v }
