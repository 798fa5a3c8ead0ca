package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ejderhub-api/internal/domain"
	"ejderhub-api/internal/dto"
	"ejderhub-api/internal/response"
)

func TestProjectService_CreateProject(t *testing.T) {
	userID := uuid.New()
	managerID := uuid.New()

	tests := []struct {
		name        string
		req         *dto.CreateProjectRequest
		mockProject func(*MockProjectRepository)
		wantErr     bool
		wantErrCode string
		check       func(t *testing.T, got *domain.Project)
	}{
		{
			name: "success: code generated when omitted",
			req:  &dto.CreateProjectRequest{Name: "Platform revamp"},
			mockProject: func(m *MockProjectRepository) {
				m.CountFunc = func(ctx context.Context) (int64, error) { return 12, nil }
			},
			check: func(t *testing.T, got *domain.Project) {
				want := fmt.Sprintf("PRJ-%d-013", time.Now().Year())
				if got.Code != want {
					t.Errorf("Code = %v, want %v", got.Code, want)
				}
				if got.Status != domain.ProjectStatusPlanning {
					t.Errorf("Status = %v, want %v", got.Status, domain.ProjectStatusPlanning)
				}
				if got.ManagerID == nil || *got.ManagerID != userID {
					t.Errorf("ManagerID = %v, want acting user %v", got.ManagerID, userID)
				}
			},
		},
		{
			name: "success: explicit fields preserved",
			req: &dto.CreateProjectRequest{
				Name:      "Warehouse move",
				Code:      "PRJ-2026-900",
				Status:    domain.ProjectStatusActive,
				Priority:  domain.PriorityHigh,
				ManagerID: &managerID,
			},
			mockProject: func(m *MockProjectRepository) {
				m.CountFunc = func(ctx context.Context) (int64, error) {
					t.Error("code generation ran although a code was provided")
					return 0, nil
				}
			},
			check: func(t *testing.T, got *domain.Project) {
				if got.Code != "PRJ-2026-900" {
					t.Errorf("Code = %v, want PRJ-2026-900", got.Code)
				}
				if got.ManagerID == nil || *got.ManagerID != managerID {
					t.Errorf("ManagerID = %v, want %v", got.ManagerID, managerID)
				}
			},
		},
		{
			name:        "failure: malformed start date",
			req:         &dto.CreateProjectRequest{Name: "Bad dates", StartDate: "05/09/2026"},
			mockProject: func(m *MockProjectRepository) {},
			wantErr:     true,
			wantErrCode: response.ErrCodeValidation,
		},
		{
			name: "failure: duplicate project code",
			req:  &dto.CreateProjectRequest{Name: "Copycat", Code: "PRJ-2026-001"},
			mockProject: func(m *MockProjectRepository) {
				m.CreateFunc = func(ctx context.Context, project *domain.Project) error {
					return gorm.ErrDuplicatedKey
				}
			},
			wantErr:     true,
			wantErrCode: response.ErrCodeConflict,
		},
		{
			name: "failure: db error on create",
			req:  &dto.CreateProjectRequest{Name: "Doomed"},
			mockProject: func(m *MockProjectRepository) {
				m.CreateFunc = func(ctx context.Context, project *domain.Project) error {
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
			projectRepo := &MockProjectRepository{}
			tt.mockProject(projectRepo)
			service := NewProjectService(projectRepo, newTestMetrics(), zap.NewNop())

			// When
			got, err := service.CreateProject(context.Background(), userID, tt.req)

			// Then
			if tt.wantErr {
				if err == nil {
					t.Error("CreateProject() error = nil, want error")
					return
				}
				if appErr, ok := err.(*response.AppError); ok {
					if appErr.Code != tt.wantErrCode {
						t.Errorf("CreateProject() error code = %v, want %v", appErr.Code, tt.wantErrCode)
					}
				}
				return
			}
			if err != nil {
				t.Errorf("CreateProject() unexpected error = %v", err)
				return
			}
			if got.Name != tt.req.Name {
				t.Errorf("Name = %v, want %v", got.Name, tt.req.Name)
			}
			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}

func TestProjectService_UpdateProject_DateConsistency(t *testing.T) {
	projectID := uuid.New()
	projectRepo := &MockProjectRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
			return &domain.Project{
				BaseModel: domain.BaseModel{ID: projectID},
				Name:      "Scheduled",
				StartDate: "2026-09-01",
				EndDate:   "2026-12-01",
			}, nil
		},
	}
	service := NewProjectService(projectRepo, newTestMetrics(), zap.NewNop())

	// Pulling the end date before the stored start date must fail even
	// though the request on its own looks harmless
	badEnd := "2026-08-01"
	_, err := service.UpdateProject(context.Background(), projectID, &dto.UpdateProjectRequest{
		EndDate: &badEnd,
	})
	if err == nil {
		t.Fatal("UpdateProject() error = nil, want validation error")
	}
	if appErr, ok := err.(*response.AppError); !ok || appErr.Code != response.ErrCodeValidation {
		t.Errorf("UpdateProject() error = %v, want code %v", err, response.ErrCodeValidation)
	}
}

func TestProjectService_GenerateProjectCode(t *testing.T) {
	projectRepo := &MockProjectRepository{
		CountFunc: func(ctx context.Context) (int64, error) { return 0, nil },
	}
	service := NewProjectService(projectRepo, newTestMetrics(), zap.NewNop())

	code, err := service.GenerateProjectCode(context.Background())
	if err != nil {
		t.Fatalf("GenerateProjectCode() unexpected error = %v", err)
	}
	want := fmt.Sprintf("PRJ-%d-001", time.Now().Year())
	if code != want {
		t.Errorf("GenerateProjectCode() = %v, want %v", code, want)
	}
}
