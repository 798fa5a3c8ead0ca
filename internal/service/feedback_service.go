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

// FeedbackService defines the interface for feedback business logic
type FeedbackService interface {
	CreateFeedback(ctx context.Context, req *dto.CreateFeedbackRequest) (*domain.Feedback, error)
	ListFeedback(ctx context.Context) ([]*domain.Feedback, error)
	UpdateFeedback(ctx context.Context, feedbackID uuid.UUID, req *dto.UpdateFeedbackRequest) (*domain.Feedback, error)
	DeleteFeedback(ctx context.Context, feedbackID uuid.UUID) error
}

type feedbackServiceImpl struct {
	feedbackRepo repository.FeedbackRepository
	logger       *zap.Logger
}

// NewFeedbackService creates a new instance of FeedbackService
func NewFeedbackService(feedbackRepo repository.FeedbackRepository, logger *zap.Logger) FeedbackService {
	return &feedbackServiceImpl{
		feedbackRepo: feedbackRepo,
		logger:       logger,
	}
}

// CreateFeedback files a feedback entry. Bug reports go straight to
// InProgress; everything else starts Submitted. Anonymous reports leave
// AuthorID empty.
func (s *feedbackServiceImpl) CreateFeedback(ctx context.Context, req *dto.CreateFeedbackRequest) (*domain.Feedback, error) {
	if req.Rating < 0 || req.Rating > 5 {
		return nil, response.NewValidationError("Rating must be between 0 and 5", "")
	}

	status := domain.FeedbackSubmitted
	if req.Category == domain.FeedbackBugReport {
		status = domain.FeedbackInProgress
	}

	feedback := &domain.Feedback{
		AuthorID:             req.AuthorID,
		Category:             req.Category,
		Rating:               req.Rating,
		Subject:              req.Subject,
		Description:          req.Description,
		ContextURL:           req.ContextURL,
		UserAgent:            req.UserAgent,
		AssigneeDepartmentID: req.AssigneeDepartmentID,
		AssigneeProjectID:    req.AssigneeProjectID,
		AssigneeResourceID:   req.AssigneeResourceID,
		Timestamp:            time.Now().UTC(),
		Status:               status,
	}
	if req.Files != nil {
		feedback.Files = datatypes.NewJSONType(req.Files)
	}

	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create feedback", err.Error())
	}

	s.logger.Info("feedback created",
		zap.String("feedback_id", feedback.ID.String()),
		zap.String("category", string(feedback.Category)),
		zap.String("status", string(feedback.Status)),
	)
	return feedback, nil
}

// ListFeedback returns all feedback entries, newest first
func (s *feedbackServiceImpl) ListFeedback(ctx context.Context) ([]*domain.Feedback, error) {
	feedback, err := s.feedbackRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list feedback", err.Error())
	}
	return feedback, nil
}

// UpdateFeedback changes a feedback entry's triage state or assignment
func (s *feedbackServiceImpl) UpdateFeedback(ctx context.Context, feedbackID uuid.UUID, req *dto.UpdateFeedbackRequest) (*domain.Feedback, error) {
	feedback, err := s.feedbackRepo.FindByID(ctx, feedbackID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Feedback not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load feedback", err.Error())
	}

	if req.Status != nil {
		switch *req.Status {
		case domain.FeedbackSubmitted, domain.FeedbackInProgress, domain.FeedbackResolved, domain.FeedbackClosed:
			feedback.Status = *req.Status
		default:
			return nil, response.NewValidationError("Invalid feedback status", string(*req.Status))
		}
	}
	if req.AssigneeDepartmentID != nil {
		feedback.AssigneeDepartmentID = req.AssigneeDepartmentID
	}
	if req.AssigneeProjectID != nil {
		feedback.AssigneeProjectID = req.AssigneeProjectID
	}
	if req.AssigneeResourceID != nil {
		feedback.AssigneeResourceID = req.AssigneeResourceID
	}

	if err := s.feedbackRepo.Update(ctx, feedback); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update feedback", err.Error())
	}
	return feedback, nil
}

// DeleteFeedback removes a feedback entry
func (s *feedbackServiceImpl) DeleteFeedback(ctx context.Context, feedbackID uuid.UUID) error {
	if _, err := s.feedbackRepo.FindByID(ctx, feedbackID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Feedback not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load feedback", err.Error())
	}
	if err := s.feedbackRepo.Delete(ctx, feedbackID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete feedback", err.Error())
	}
	return nil
}
