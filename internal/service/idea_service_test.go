package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"ejderhub-api/internal/domain"
	"ejderhub-api/internal/dto"
	"ejderhub-api/internal/response"
)

func newIdeaServiceForTest(
	ideaRepo *MockIdeaRepository,
	resourceRepo *MockResourceRepository,
	eventRepo *MockEventRepository,
	projectRepo *MockProjectRepository,
) IdeaService {
	m := newTestMetrics()
	logger := zap.NewNop()
	projectService := NewProjectService(projectRepo, m, logger)
	return NewIdeaService(ideaRepo, resourceRepo, eventRepo, projectService, m, logger)
}

func TestIdeaService_CreateIdea_AwardsBadge(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		author     *domain.Resource
		wantUpdate bool
	}{
		{
			name:       "first idea earns the badge",
			author:     &domain.Resource{BaseModel: domain.BaseModel{ID: userID}, Name: "Deniz"},
			wantUpdate: true,
		},
		{
			name: "repeat author keeps a single badge",
			author: &domain.Resource{
				BaseModel:    domain.BaseModel{ID: userID},
				Name:         "Deniz",
				EarnedBadges: datatypes.JSONSlice[string]{domain.BadgeIdeaStarter},
			},
			wantUpdate: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			var updatedBadges []string
			resourceRepo := &MockResourceRepository{
				FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Resource, error) {
					return tt.author, nil
				},
				UpdateFunc: func(ctx context.Context, resource *domain.Resource) error {
					updatedBadges = resource.EarnedBadges
					return nil
				},
			}
			service := newIdeaServiceForTest(&MockIdeaRepository{}, resourceRepo, &MockEventRepository{}, &MockProjectRepository{})

			// When
			got, err := service.CreateIdea(context.Background(), userID, &dto.CreateIdeaRequest{Name: "Dark mode"})

			// Then
			if err != nil {
				t.Fatalf("CreateIdea() unexpected error = %v", err)
			}
			if got.AuthorID != userID {
				t.Errorf("AuthorID = %v, want %v", got.AuthorID, userID)
			}
			if got.Status != domain.IdeaStatusNew {
				t.Errorf("Status = %v, want %v", got.Status, domain.IdeaStatusNew)
			}
			if tt.wantUpdate {
				if len(updatedBadges) != 1 || updatedBadges[0] != domain.BadgeIdeaStarter {
					t.Errorf("badges after award = %v, want exactly [%s]", updatedBadges, domain.BadgeIdeaStarter)
				}
			} else if updatedBadges != nil {
				t.Errorf("badge award ran again for a repeat author: %v", updatedBadges)
			}
		})
	}
}

func TestIdeaService_CreateIdea_BadgeFailureIsNonFatal(t *testing.T) {
	userID := uuid.New()
	resourceRepo := &MockResourceRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Resource, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	service := newIdeaServiceForTest(&MockIdeaRepository{}, resourceRepo, &MockEventRepository{}, &MockProjectRepository{})

	got, err := service.CreateIdea(context.Background(), userID, &dto.CreateIdeaRequest{Name: "Offline mode"})
	if err != nil {
		t.Fatalf("CreateIdea() unexpected error = %v", err)
	}
	if got == nil {
		t.Fatal("CreateIdea() returned nil idea")
	}
}

func TestIdeaService_DeleteIdea(t *testing.T) {
	ideaID := uuid.New()

	t.Run("success: calendar entries are detached, not deleted", func(t *testing.T) {
		var clearedIdeaID uuid.UUID
		ideaDeleted := false

		ideaRepo := &MockIdeaRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Idea, error) {
				return &domain.Idea{BaseModel: domain.BaseModel{ID: ideaID}, Name: "Old idea"}, nil
			},
			DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
				if clearedIdeaID == uuid.Nil {
					t.Error("idea deleted before its calendar entries were detached")
				}
				ideaDeleted = true
				return nil
			},
		}
		eventRepo := &MockEventRepository{
			ClearIdeaRefsFunc: func(ctx context.Context, id uuid.UUID) error {
				clearedIdeaID = id
				return nil
			},
			DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
				t.Error("a calendar entry was deleted during idea removal")
				return nil
			},
		}
		service := newIdeaServiceForTest(ideaRepo, &MockResourceRepository{}, eventRepo, &MockProjectRepository{})

		if err := service.DeleteIdea(context.Background(), ideaID); err != nil {
			t.Fatalf("DeleteIdea() unexpected error = %v", err)
		}
		if clearedIdeaID != ideaID {
			t.Errorf("ClearIdeaRefs called with %v, want %v", clearedIdeaID, ideaID)
		}
		if !ideaDeleted {
			t.Error("idea was never deleted")
		}
	})

	t.Run("failure: idea not found", func(t *testing.T) {
		ideaRepo := &MockIdeaRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Idea, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		service := newIdeaServiceForTest(ideaRepo, &MockResourceRepository{}, &MockEventRepository{}, &MockProjectRepository{})

		err := service.DeleteIdea(context.Background(), ideaID)
		if err == nil {
			t.Fatal("DeleteIdea() error = nil, want not found")
		}
		if appErr, ok := err.(*response.AppError); !ok || appErr.Code != response.ErrCodeNotFound {
			t.Errorf("DeleteIdea() error = %v, want code %v", err, response.ErrCodeNotFound)
		}
	})
}

func TestIdeaService_ConvertIdeaToProject(t *testing.T) {
	userID := uuid.New()
	ideaID := uuid.New()
	leaderID := uuid.New()

	t.Run("success: project seeded from the idea", func(t *testing.T) {
		idea := &domain.Idea{
			BaseModel:       domain.BaseModel{ID: ideaID},
			Name:            "Internal wiki",
			Status:          domain.IdeaStatusEvaluating,
			AuthorID:        userID,
			ProjectLeaderID: &leaderID,
			PotentialTeam:   datatypes.JSONSlice[string]{"alice", "bob"},
			TotalBudget:     25000,
			Priority:        domain.PriorityHigh,
		}

		var savedIdea *domain.Idea
		ideaRepo := &MockIdeaRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Idea, error) {
				return idea, nil
			},
			UpdateFunc: func(ctx context.Context, i *domain.Idea) error {
				savedIdea = i
				return nil
			},
		}
		projectRepo := &MockProjectRepository{
			CountFunc: func(ctx context.Context) (int64, error) { return 4, nil },
			CreateFunc: func(ctx context.Context, project *domain.Project) error {
				project.ID = uuid.New()
				return nil
			},
		}
		service := newIdeaServiceForTest(ideaRepo, &MockResourceRepository{}, &MockEventRepository{}, projectRepo)

		got, err := service.ConvertIdeaToProject(context.Background(), userID, ideaID)
		if err != nil {
			t.Fatalf("ConvertIdeaToProject() unexpected error = %v", err)
		}

		if got.Name != idea.Name {
			t.Errorf("Name = %v, want %v", got.Name, idea.Name)
		}
		if got.Status != domain.ProjectStatusPlanning {
			t.Errorf("Status = %v, want %v", got.Status, domain.ProjectStatusPlanning)
		}
		if got.Color != ConvertedProjectColor {
			t.Errorf("Color = %v, want %v", got.Color, ConvertedProjectColor)
		}
		if got.Budget != idea.TotalBudget {
			t.Errorf("Budget = %v, want %v", got.Budget, idea.TotalBudget)
		}
		if got.ManagerID == nil || *got.ManagerID != leaderID {
			t.Errorf("ManagerID = %v, want the idea's leader %v", got.ManagerID, leaderID)
		}
		wantCode := fmt.Sprintf("PRJ-%d-005", time.Now().Year())
		if got.Code != wantCode {
			t.Errorf("Code = %v, want %v", got.Code, wantCode)
		}

		start, err := time.Parse("2006-01-02", got.StartDate)
		if err != nil {
			t.Fatalf("StartDate %q does not parse: %v", got.StartDate, err)
		}
		end, err := time.Parse("2006-01-02", got.EndDate)
		if err != nil {
			t.Fatalf("EndDate %q does not parse: %v", got.EndDate, err)
		}
		if days := int(end.Sub(start).Hours() / 24); days != ConvertedProjectWindowDays {
			t.Errorf("schedule window = %d days, want %d", days, ConvertedProjectWindowDays)
		}

		// The idea survives with status Approved
		if savedIdea == nil || savedIdea.Status != domain.IdeaStatusApproved {
			t.Errorf("idea after conversion = %+v, want status %v", savedIdea, domain.IdeaStatusApproved)
		}
	})

	t.Run("success: defaults for a bare idea", func(t *testing.T) {
		ideaRepo := &MockIdeaRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Idea, error) {
				return &domain.Idea{BaseModel: domain.BaseModel{ID: ideaID}, Name: "Bare idea", AuthorID: userID}, nil
			},
		}
		service := newIdeaServiceForTest(ideaRepo, &MockResourceRepository{}, &MockEventRepository{}, &MockProjectRepository{})

		got, err := service.ConvertIdeaToProject(context.Background(), userID, ideaID)
		if err != nil {
			t.Fatalf("ConvertIdeaToProject() unexpected error = %v", err)
		}
		if got.ManagerID == nil || *got.ManagerID != userID {
			t.Errorf("ManagerID = %v, want the acting user %v", got.ManagerID, userID)
		}
		if len(got.Team) != 1 || got.Team[0] != userID.String() {
			t.Errorf("Team = %v, want just the acting user", got.Team)
		}
		if got.Priority != domain.PriorityMedium {
			t.Errorf("Priority = %v, want default %v", got.Priority, domain.PriorityMedium)
		}
	})

	t.Run("failure: idea not found", func(t *testing.T) {
		ideaRepo := &MockIdeaRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Idea, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		service := newIdeaServiceForTest(ideaRepo, &MockResourceRepository{}, &MockEventRepository{}, &MockProjectRepository{})

		_, err := service.ConvertIdeaToProject(context.Background(), userID, ideaID)
		if err == nil {
			t.Fatal("ConvertIdeaToProject() error = nil, want not found")
		}
		if appErr, ok := err.(*response.AppError); !ok || appErr.Code != response.ErrCodeNotFound {
			t.Errorf("ConvertIdeaToProject() error = %v, want code %v", err, response.ErrCodeNotFound)
		}
	})

	t.Run("failure: project creation error surfaces", func(t *testing.T) {
		ideaRepo := &MockIdeaRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Idea, error) {
				return &domain.Idea{BaseModel: domain.BaseModel{ID: ideaID}, Name: "Doomed"}, nil
			},
			UpdateFunc: func(ctx context.Context, i *domain.Idea) error {
				t.Error("idea status changed although project creation failed")
				return nil
			},
		}
		projectRepo := &MockProjectRepository{
			CreateFunc: func(ctx context.Context, project *domain.Project) error {
				return errors.New("database error")
			},
		}
		service := newIdeaServiceForTest(ideaRepo, &MockResourceRepository{}, &MockEventRepository{}, projectRepo)

		_, err := service.ConvertIdeaToProject(context.Background(), userID, ideaID)
		if err == nil {
			t.Fatal("ConvertIdeaToProject() error = nil, want error")
		}
	})
}
