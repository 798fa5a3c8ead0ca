package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ejderhub-api/internal/domain"
)

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	FindAll(ctx context.Context) ([]*domain.Comment, error)
	Update(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type commentRepositoryImpl struct {
	db *gorm.DB
}

// NewCommentRepository creates a new instance of CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepositoryImpl{db: db}
}

func (r *commentRepositoryImpl) Create(ctx context.Context, comment *domain.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	var comment domain.Comment
	if err := r.db.WithContext(ctx).Preload("Author").First(&comment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Order("timestamp ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepositoryImpl) Update(ctx context.Context, comment *domain.Comment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

func (r *commentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Comment{}, "id = ?", id).Error
}

// EvaluationRepository defines the interface for evaluation data access
type EvaluationRepository interface {
	Create(ctx context.Context, evaluation *domain.Evaluation) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Evaluation, error)
	FindAll(ctx context.Context) ([]*domain.Evaluation, error)
	Update(ctx context.Context, evaluation *domain.Evaluation) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type evaluationRepositoryImpl struct {
	db *gorm.DB
}

// NewEvaluationRepository creates a new instance of EvaluationRepository
func NewEvaluationRepository(db *gorm.DB) EvaluationRepository {
	return &evaluationRepositoryImpl{db: db}
}

func (r *evaluationRepositoryImpl) Create(ctx context.Context, evaluation *domain.Evaluation) error {
	return r.db.WithContext(ctx).Create(evaluation).Error
}

func (r *evaluationRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Evaluation, error) {
	var evaluation domain.Evaluation
	if err := r.db.WithContext(ctx).Preload("Author").First(&evaluation, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &evaluation, nil
}

func (r *evaluationRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Evaluation, error) {
	var evaluations []*domain.Evaluation
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Order("timestamp ASC").
		Find(&evaluations).Error; err != nil {
		return nil, err
	}
	return evaluations, nil
}

func (r *evaluationRepositoryImpl) Update(ctx context.Context, evaluation *domain.Evaluation) error {
	return r.db.WithContext(ctx).Save(evaluation).Error
}

func (r *evaluationRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Evaluation{}, "id = ?", id).Error
}
