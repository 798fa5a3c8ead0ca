package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"ejderhub-api/internal/domain"
	"ejderhub-api/internal/dto"
	"ejderhub-api/internal/repository"
	"ejderhub-api/internal/response"
)

// CommentService defines the interface for comment and evaluation business
// logic
type CommentService interface {
	CreateComment(ctx context.Context, userID uuid.UUID, req *dto.CreateCommentRequest) (*domain.Comment, error)
	ListComments(ctx context.Context) ([]*domain.Comment, error)
	UpdateComment(ctx context.Context, commentID uuid.UUID, req *dto.UpdateCommentRequest) (*domain.Comment, error)
	VoteOnComment(ctx context.Context, commentID uuid.UUID, userID uuid.UUID, vote domain.VoteStatus) (*domain.Comment, error)
	DeleteComment(ctx context.Context, commentID uuid.UUID) error

	CreateEvaluation(ctx context.Context, userID uuid.UUID, req *dto.CreateEvaluationRequest) (*domain.Evaluation, error)
	ListEvaluations(ctx context.Context) ([]*domain.Evaluation, error)
	UpdateEvaluation(ctx context.Context, evaluationID uuid.UUID, req *dto.UpdateEvaluationRequest) (*domain.Evaluation, error)
	DeleteEvaluation(ctx context.Context, evaluationID uuid.UUID) error
}

type commentServiceImpl struct {
	commentRepo    repository.CommentRepository
	evaluationRepo repository.EvaluationRepository
	projectRepo    repository.ProjectRepository
	ideaRepo       repository.IdeaRepository
	logger         *zap.Logger
}

// NewCommentService creates a new instance of CommentService
func NewCommentService(
	commentRepo repository.CommentRepository,
	evaluationRepo repository.EvaluationRepository,
	projectRepo repository.ProjectRepository,
	ideaRepo repository.IdeaRepository,
	logger *zap.Logger,
) CommentService {
	return &commentServiceImpl{
		commentRepo:    commentRepo,
		evaluationRepo: evaluationRepo,
		projectRepo:    projectRepo,
		ideaRepo:       ideaRepo,
		logger:         logger,
	}
}

// validateParent enforces that a comment or evaluation is attached to
// exactly one of a project or an idea, and that the parent exists
func (s *commentServiceImpl) validateParent(ctx context.Context, projectID, ideaID *uuid.UUID) error {
	if (projectID == nil) == (ideaID == nil) {
		return response.NewValidationError("Exactly one of projectId and ideaId is required", "")
	}
	if projectID != nil {
		if _, err := s.projectRepo.FindByID(ctx, *projectID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewNotFoundError("Project not found", projectID.String())
			}
			return response.NewAppError(response.ErrCodeInternal, "Failed to verify project", err.Error())
		}
		return nil
	}
	if _, err := s.ideaRepo.FindByID(ctx, *ideaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Idea not found", ideaID.String())
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to verify idea", err.Error())
	}
	return nil
}

// CreateComment attaches a comment to a project or an idea
func (s *commentServiceImpl) CreateComment(ctx context.Context, userID uuid.UUID, req *dto.CreateCommentRequest) (*domain.Comment, error) {
	if err := s.validateParent(ctx, req.ProjectID, req.IdeaID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		AuthorID:  userID,
		Text:      req.Text,
		Timestamp: time.Now().UTC(),
		ProjectID: req.ProjectID,
		IdeaID:    req.IdeaID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create comment", err.Error())
	}

	s.logger.Info("comment created",
		zap.String("comment_id", comment.ID.String()),
		zap.String("author_id", userID.String()),
	)
	return comment, nil
}

// ListComments returns all comments, oldest first
func (s *commentServiceImpl) ListComments(ctx context.Context) ([]*domain.Comment, error) {
	comments, err := s.commentRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list comments", err.Error())
	}
	return comments, nil
}

// UpdateComment edits a comment's text
func (s *commentServiceImpl) UpdateComment(ctx context.Context, commentID uuid.UUID, req *dto.UpdateCommentRequest) (*domain.Comment, error) {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Comment not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load comment", err.Error())
	}

	if req.Text != nil {
		comment.Text = *req.Text
	}
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update comment", err.Error())
	}
	return comment, nil
}

// VoteOnComment records the acting user's stance on a comment. Repeating the
// stance the user already holds removes the vote.
func (s *commentServiceImpl) VoteOnComment(ctx context.Context, commentID uuid.UUID, userID uuid.UUID, vote domain.VoteStatus) (*domain.Comment, error) {
	switch vote {
	case domain.VoteSupports, domain.VoteNeutral, domain.VoteOpposed:
	default:
		return nil, response.NewValidationError("Invalid vote", string(vote))
	}

	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Comment not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load comment", err.Error())
	}

	votes := comment.Votes.Data()
	if votes == nil {
		votes = make(map[string]domain.VoteStatus)
	}
	key := userID.String()
	if votes[key] == vote {
		delete(votes, key)
	} else {
		votes[key] = vote
	}
	comment.Votes = datatypes.NewJSONType(votes)

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to record vote", err.Error())
	}
	return comment, nil
}

// DeleteComment removes a comment
func (s *commentServiceImpl) DeleteComment(ctx context.Context, commentID uuid.UUID) error {
	if _, err := s.commentRepo.FindByID(ctx, commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Comment not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load comment", err.Error())
	}
	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete comment", err.Error())
	}
	return nil
}

// CreateEvaluation attaches a voted review to a project or an idea
func (s *commentServiceImpl) CreateEvaluation(ctx context.Context, userID uuid.UUID, req *dto.CreateEvaluationRequest) (*domain.Evaluation, error) {
	if err := s.validateParent(ctx, req.ProjectID, req.IdeaID); err != nil {
		return nil, err
	}

	evaluation := &domain.Evaluation{
		AuthorID:  userID,
		Text:      req.Text,
		Vote:      req.Vote,
		Timestamp: time.Now().UTC(),
		ProjectID: req.ProjectID,
		IdeaID:    req.IdeaID,
	}
	if err := s.evaluationRepo.Create(ctx, evaluation); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create evaluation", err.Error())
	}
	return evaluation, nil
}

// ListEvaluations returns all evaluations, oldest first
func (s *commentServiceImpl) ListEvaluations(ctx context.Context) ([]*domain.Evaluation, error) {
	evaluations, err := s.evaluationRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list evaluations", err.Error())
	}
	return evaluations, nil
}

// UpdateEvaluation edits an evaluation
func (s *commentServiceImpl) UpdateEvaluation(ctx context.Context, evaluationID uuid.UUID, req *dto.UpdateEvaluationRequest) (*domain.Evaluation, error) {
	evaluation, err := s.evaluationRepo.FindByID(ctx, evaluationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Evaluation not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load evaluation", err.Error())
	}

	if req.Text != nil {
		evaluation.Text = *req.Text
	}
	if req.Vote != nil {
		evaluation.Vote = *req.Vote
	}
	if err := s.evaluationRepo.Update(ctx, evaluation); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update evaluation", err.Error())
	}
	return evaluation, nil
}

// DeleteEvaluation removes an evaluation
func (s *commentServiceImpl) DeleteEvaluation(ctx context.Context, evaluationID uuid.UUID) error {
	if _, err := s.evaluationRepo.FindByID(ctx, evaluationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Evaluation not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load evaluation", err.Error())
	}
	if err := s.evaluationRepo.Delete(ctx, evaluationID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete evaluation", err.Error())
	}
	return nil
}
