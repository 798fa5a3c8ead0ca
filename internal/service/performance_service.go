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
	"ejderhub-api/internal/repository"
	"ejderhub-api/internal/response"
)

// PerformanceService defines the interface for performance evaluation
// business logic
type PerformanceService interface {
	CreateEvaluation(ctx context.Context, userID uuid.UUID, req *dto.CreatePerformanceEvaluationRequest) (*domain.PerformanceEvaluation, error)
	ListEvaluations(ctx context.Context) ([]*domain.PerformanceEvaluation, error)
	ListEvaluationsByResource(ctx context.Context, resourceID uuid.UUID) ([]*domain.PerformanceEvaluation, error)
	UpdateEvaluation(ctx context.Context, evaluationID uuid.UUID, req *dto.UpdatePerformanceEvaluationRequest) (*domain.PerformanceEvaluation, error)
	DeleteEvaluation(ctx context.Context, evaluationID uuid.UUID) error
}

type performanceServiceImpl struct {
	perfRepo     repository.PerformanceEvaluationRepository
	resourceRepo repository.ResourceRepository
	logger       *zap.Logger
}

// NewPerformanceService creates a new instance of PerformanceService
func NewPerformanceService(
	perfRepo repository.PerformanceEvaluationRepository,
	resourceRepo repository.ResourceRepository,
	logger *zap.Logger,
) PerformanceService {
	return &performanceServiceImpl{
		perfRepo:     perfRepo,
		resourceRepo: resourceRepo,
		logger:       logger,
	}
}

// CreateEvaluation files a performance evaluation. The acting user is the
// evaluator unless one is named explicitly.
func (s *performanceServiceImpl) CreateEvaluation(ctx context.Context, userID uuid.UUID, req *dto.CreatePerformanceEvaluationRequest) (*domain.PerformanceEvaluation, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, response.NewValidationError("Rating must be between 1 and 5", "")
	}

	if _, err := s.resourceRepo.FindByID(ctx, req.ResourceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Resource not found", req.ResourceID.String())
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify resource", err.Error())
	}

	evaluatorID := userID
	if req.EvaluatorID != nil {
		evaluatorID = *req.EvaluatorID
	}
	date := req.Date
	if date == "" {
		date = today()
	}

	evaluation := &domain.PerformanceEvaluation{
		ResourceID:  req.ResourceID,
		EvaluatorID: evaluatorID,
		Date:        date,
		Rating:      req.Rating,
		Comment:     req.Comment,
	}
	if req.Goals != nil {
		evaluation.Goals = datatypes.NewJSONType(req.Goals)
	}

	if err := s.perfRepo.Create(ctx, evaluation); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create performance evaluation", err.Error())
	}

	s.logger.Info("performance evaluation created",
		zap.String("evaluation_id", evaluation.ID.String()),
		zap.String("resource_id", req.ResourceID.String()),
	)
	return evaluation, nil
}

// ListEvaluations returns all performance evaluations, newest first
func (s *performanceServiceImpl) ListEvaluations(ctx context.Context) ([]*domain.PerformanceEvaluation, error) {
	evaluations, err := s.perfRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list performance evaluations", err.Error())
	}
	return evaluations, nil
}

// ListEvaluationsByResource returns one resource's evaluations, newest first
func (s *performanceServiceImpl) ListEvaluationsByResource(ctx context.Context, resourceID uuid.UUID) ([]*domain.PerformanceEvaluation, error) {
	evaluations, err := s.perfRepo.FindByResourceID(ctx, resourceID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list performance evaluations", err.Error())
	}
	return evaluations, nil
}

// UpdateEvaluation applies a partial update to a performance evaluation
func (s *performanceServiceImpl) UpdateEvaluation(ctx context.Context, evaluationID uuid.UUID, req *dto.UpdatePerformanceEvaluationRequest) (*domain.PerformanceEvaluation, error) {
	evaluation, err := s.perfRepo.FindByID(ctx, evaluationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Performance evaluation not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load performance evaluation", err.Error())
	}

	if req.Date != nil {
		evaluation.Date = *req.Date
	}
	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			return nil, response.NewValidationError("Rating must be between 1 and 5", "")
		}
		evaluation.Rating = *req.Rating
	}
	if req.Comment != nil {
		evaluation.Comment = *req.Comment
	}
	if req.Goals != nil {
		evaluation.Goals = datatypes.NewJSONType(*req.Goals)
	}

	if err := s.perfRepo.Update(ctx, evaluation); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update performance evaluation", err.Error())
	}
	return evaluation, nil
}

// DeleteEvaluation removes a performance evaluation
func (s *performanceServiceImpl) DeleteEvaluation(ctx context.Context, evaluationID uuid.UUID) error {
	if _, err := s.perfRepo.FindByID(ctx, evaluationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Performance evaluation not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load performance evaluation", err.Error())
	}
	if err := s.perfRepo.Delete(ctx, evaluationID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete performance evaluation", err.Error())
	}
	return nil
}
