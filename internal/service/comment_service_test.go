package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ejderhub-api/internal/domain"
	"ejderhub-api/internal/dto"
	"ejderhub-api/internal/response"
)

func newCommentServiceForTest(
	commentRepo *MockCommentRepository,
	evaluationRepo *MockEvaluationRepository,
	projectRepo *MockProjectRepository,
	ideaRepo *MockIdeaRepository,
) CommentService {
	return NewCommentService(commentRepo, evaluationRepo, projectRepo, ideaRepo, zap.NewNop())
}

func TestCommentService_CreateComment(t *testing.T) {
	projectID := uuid.New()
	ideaID := uuid.New()
	userID := uuid.New()

	tests := []struct {
		name        string
		req         *dto.CreateCommentRequest
		mockProject func(*MockProjectRepository)
		mockIdea    func(*MockIdeaRepository)
		wantErr     bool
		wantErrCode string
	}{
		{
			name: "success: comment on a project",
			req:  &dto.CreateCommentRequest{Text: "Looks good", ProjectID: &projectID},
			mockProject: func(m *MockProjectRepository) {
				m.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
					return &domain.Project{}, nil
				}
			},
			mockIdea: func(m *MockIdeaRepository) {},
		},
		{
			name:        "success: comment on an idea",
			req:         &dto.CreateCommentRequest{Text: "Worth exploring", IdeaID: &ideaID},
			mockProject: func(m *MockProjectRepository) {},
			mockIdea: func(m *MockIdeaRepository) {
				m.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Idea, error) {
					return &domain.Idea{}, nil
				}
			},
		},
		{
			name:        "failure: no parent at all",
			req:         &dto.CreateCommentRequest{Text: "Floating comment"},
			mockProject: func(m *MockProjectRepository) {},
			mockIdea:    func(m *MockIdeaRepository) {},
			wantErr:     true,
			wantErrCode: response.ErrCodeValidation,
		},
		{
			name:        "failure: both parents given",
			req:         &dto.CreateCommentRequest{Text: "Greedy comment", ProjectID: &projectID, IdeaID: &ideaID},
			mockProject: func(m *MockProjectRepository) {},
			mockIdea:    func(m *MockIdeaRepository) {},
			wantErr:     true,
			wantErrCode: response.ErrCodeValidation,
		},
		{
			name: "failure: project parent missing",
			req:  &dto.CreateCommentRequest{Text: "Orphan", ProjectID: &projectID},
			mockProject: func(m *MockProjectRepository) {
				m.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
					return nil, gorm.ErrRecordNotFound
				}
			},
			mockIdea:    func(m *MockIdeaRepository) {},
			wantErr:     true,
			wantErrCode: response.ErrCodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			projectRepo := &MockProjectRepository{}
			ideaRepo := &MockIdeaRepository{}
			tt.mockProject(projectRepo)
			tt.mockIdea(ideaRepo)
			service := newCommentServiceForTest(&MockCommentRepository{}, &MockEvaluationRepository{}, projectRepo, ideaRepo)

			// When
			got, err := service.CreateComment(context.Background(), userID, tt.req)

			// Then
			if tt.wantErr {
				if err == nil {
					t.Error("CreateComment() error = nil, want error")
					return
				}
				if appErr, ok := err.(*response.AppError); ok {
					if appErr.Code != tt.wantErrCode {
						t.Errorf("CreateComment() error code = %v, want %v", appErr.Code, tt.wantErrCode)
					}
				}
				return
			}
			if err != nil {
				t.Errorf("CreateComment() unexpected error = %v", err)
				return
			}
			if got.AuthorID != userID {
				t.Errorf("AuthorID = %v, want %v", got.AuthorID, userID)
			}
			if got.Timestamp.IsZero() {
				t.Error("Timestamp was not set")
			}
		})
	}
}

func TestCommentService_VoteOnComment(t *testing.T) {
	commentID := uuid.New()
	userID := uuid.New()

	service := func(stored *domain.Comment) CommentService {
		commentRepo := &MockCommentRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
				return stored, nil
			},
		}
		return newCommentServiceForTest(commentRepo, &MockEvaluationRepository{}, &MockProjectRepository{}, &MockIdeaRepository{})
	}

	t.Run("first vote is recorded", func(t *testing.T) {
		stored := &domain.Comment{BaseModel: domain.BaseModel{ID: commentID}, Text: "Vote on me"}

		got, err := service(stored).VoteOnComment(context.Background(), commentID, userID, domain.VoteSupports)
		if err != nil {
			t.Fatalf("VoteOnComment() unexpected error = %v", err)
		}
		if got.Votes.Data()[userID.String()] != domain.VoteSupports {
			t.Errorf("vote = %v, want %v", got.Votes.Data()[userID.String()], domain.VoteSupports)
		}
	})

	t.Run("changing stance replaces the vote", func(t *testing.T) {
		stored := &domain.Comment{BaseModel: domain.BaseModel{ID: commentID}}
		svc := service(stored)

		if _, err := svc.VoteOnComment(context.Background(), commentID, userID, domain.VoteSupports); err != nil {
			t.Fatalf("first vote failed: %v", err)
		}
		got, err := svc.VoteOnComment(context.Background(), commentID, userID, domain.VoteOpposed)
		if err != nil {
			t.Fatalf("second vote failed: %v", err)
		}
		votes := got.Votes.Data()
		if len(votes) != 1 || votes[userID.String()] != domain.VoteOpposed {
			t.Errorf("votes = %v, want single %v entry", votes, domain.VoteOpposed)
		}
	})

	t.Run("repeating the same stance removes the vote", func(t *testing.T) {
		stored := &domain.Comment{BaseModel: domain.BaseModel{ID: commentID}}
		svc := service(stored)

		if _, err := svc.VoteOnComment(context.Background(), commentID, userID, domain.VoteNeutral); err != nil {
			t.Fatalf("first vote failed: %v", err)
		}
		got, err := svc.VoteOnComment(context.Background(), commentID, userID, domain.VoteNeutral)
		if err != nil {
			t.Fatalf("second vote failed: %v", err)
		}
		if len(got.Votes.Data()) != 0 {
			t.Errorf("votes = %v, want empty after toggle", got.Votes.Data())
		}
	})

	t.Run("invalid stance is rejected", func(t *testing.T) {
		stored := &domain.Comment{BaseModel: domain.BaseModel{ID: commentID}}

		_, err := service(stored).VoteOnComment(context.Background(), commentID, userID, domain.VoteStatus("Meh"))
		if err == nil {
			t.Fatal("VoteOnComment() error = nil, want validation error")
		}
		if appErr, ok := err.(*response.AppError); !ok || appErr.Code != response.ErrCodeValidation {
			t.Errorf("VoteOnComment() error = %v, want code %v", err, response.ErrCodeValidation)
		}
	})
}

func TestCommentService_CreateEvaluation(t *testing.T) {
	ideaID := uuid.New()
	userID := uuid.New()

	t.Run("success: evaluation on an idea", func(t *testing.T) {
		ideaRepo := &MockIdeaRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Idea, error) {
				return &domain.Idea{}, nil
			},
		}
		service := newCommentServiceForTest(&MockCommentRepository{}, &MockEvaluationRepository{}, &MockProjectRepository{}, ideaRepo)

		got, err := service.CreateEvaluation(context.Background(), userID, &dto.CreateEvaluationRequest{
			Text:   "Strong business case",
			Vote:   domain.VoteSupports,
			IdeaID: &ideaID,
		})
		if err != nil {
			t.Fatalf("CreateEvaluation() unexpected error = %v", err)
		}
		if got.Vote != domain.VoteSupports {
			t.Errorf("Vote = %v, want %v", got.Vote, domain.VoteSupports)
		}
	})

	t.Run("failure: parent rule applies to evaluations too", func(t *testing.T) {
		service := newCommentServiceForTest(&MockCommentRepository{}, &MockEvaluationRepository{}, &MockProjectRepository{}, &MockIdeaRepository{})

		_, err := service.CreateEvaluation(context.Background(), userID, &dto.CreateEvaluationRequest{
			Text: "Parentless",
			Vote: domain.VoteNeutral,
		})
		if err == nil {
			t.Fatal("CreateEvaluation() error = nil, want validation error")
		}
		if appErr, ok := err.(*response.AppError); !ok || appErr.Code != response.ErrCodeValidation {
			t.Errorf("CreateEvaluation() error = %v, want code %v", err, response.ErrCodeValidation)
		}
	})
}
