package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ejderhub-api/internal/domain"
)

// NotificationRepository defines the interface for notification data access
type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	FindAll(ctx context.Context) ([]*domain.Notification, error)
	Update(ctx context.Context, notification *domain.Notification) error
	Delete(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context) (int64, error)
	CountUnread(ctx context.Context) (int64, error)
	DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type notificationRepositoryImpl struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new instance of NotificationRepository
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepositoryImpl{db: db}
}

func (r *notificationRepositoryImpl) Create(ctx context.Context, notification *domain.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	var notification domain.Notification
	if err := r.db.WithContext(ctx).First(&notification, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Notification, error) {
	var notifications []*domain.Notification
	if err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepositoryImpl) Update(ctx context.Context, notification *domain.Notification) error {
	return r.db.WithContext(ctx).Save(notification).Error
}

func (r *notificationRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Notification{}, "id = ?", id).Error
}

func (r *notificationRepositoryImpl) MarkAllRead(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("read = ?", false).
		Update("read", true)
	return result.RowsAffected, result.Error
}

func (r *notificationRepositoryImpl) CountUnread(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("read = ?", false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteReadOlderThan permanently removes read notifications older than the
// cutoff. Used by the scheduled cleanup job.
func (r *notificationRepositoryImpl) DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Unscoped().
		Where("read = ? AND timestamp < ?", true, cutoff).
		Delete(&domain.Notification{})
	return result.RowsAffected, result.Error
}

// AnnouncementRepository defines the interface for announcement data access
type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *domain.Announcement) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Announcement, error)
	FindAll(ctx context.Context) ([]*domain.Announcement, error)
	Update(ctx context.Context, announcement *domain.Announcement) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type announcementRepositoryImpl struct {
	db *gorm.DB
}

// NewAnnouncementRepository creates a new instance of AnnouncementRepository
func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepositoryImpl{db: db}
}

func (r *announcementRepositoryImpl) Create(ctx context.Context, announcement *domain.Announcement) error {
	return r.db.WithContext(ctx).Create(announcement).Error
}

func (r *announcementRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Announcement, error) {
	var announcement domain.Announcement
	if err := r.db.WithContext(ctx).Preload("Author").First(&announcement, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &announcement, nil
}

func (r *announcementRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Announcement, error) {
	var announcements []*domain.Announcement
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Order("timestamp DESC").
		Find(&announcements).Error; err != nil {
		return nil, err
	}
	return announcements, nil
}

func (r *announcementRepositoryImpl) Update(ctx context.Context, announcement *domain.Announcement) error {
	return r.db.WithContext(ctx).Save(announcement).Error
}

func (r *announcementRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Announcement{}, "id = ?", id).Error
}

// FeedbackRepository defines the interface for feedback data access
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *domain.Feedback) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Feedback, error)
	FindAll(ctx context.Context) ([]*domain.Feedback, error)
	Update(ctx context.Context, feedback *domain.Feedback) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type feedbackRepositoryImpl struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a new instance of FeedbackRepository
func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepositoryImpl{db: db}
}

func (r *feedbackRepositoryImpl) Create(ctx context.Context, feedback *domain.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *feedbackRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Feedback, error) {
	var feedback domain.Feedback
	if err := r.db.WithContext(ctx).First(&feedback, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (r *feedbackRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Feedback, error) {
	var feedback []*domain.Feedback
	if err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Find(&feedback).Error; err != nil {
		return nil, err
	}
	return feedback, nil
}

func (r *feedbackRepositoryImpl) Update(ctx context.Context, feedback *domain.Feedback) error {
	return r.db.WithContext(ctx).Save(feedback).Error
}

func (r *feedbackRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Feedback{}, "id = ?", id).Error
}

// PerformanceEvaluationRepository defines the interface for performance
// evaluation data access
type PerformanceEvaluationRepository interface {
	Create(ctx context.Context, evaluation *domain.PerformanceEvaluation) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.PerformanceEvaluation, error)
	FindAll(ctx context.Context) ([]*domain.PerformanceEvaluation, error)
	FindByResourceID(ctx context.Context, resourceID uuid.UUID) ([]*domain.PerformanceEvaluation, error)
	Update(ctx context.Context, evaluation *domain.PerformanceEvaluation) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type performanceEvaluationRepositoryImpl struct {
	db *gorm.DB
}

// NewPerformanceEvaluationRepository creates a new instance of PerformanceEvaluationRepository
func NewPerformanceEvaluationRepository(db *gorm.DB) PerformanceEvaluationRepository {
	return &performanceEvaluationRepositoryImpl{db: db}
}

func (r *performanceEvaluationRepositoryImpl) Create(ctx context.Context, evaluation *domain.PerformanceEvaluation) error {
	return r.db.WithContext(ctx).Create(evaluation).Error
}

func (r *performanceEvaluationRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.PerformanceEvaluation, error) {
	var evaluation domain.PerformanceEvaluation
	if err := r.db.WithContext(ctx).First(&evaluation, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &evaluation, nil
}

func (r *performanceEvaluationRepositoryImpl) FindAll(ctx context.Context) ([]*domain.PerformanceEvaluation, error) {
	var evaluations []*domain.PerformanceEvaluation
	if err := r.db.WithContext(ctx).
		Order("date DESC").
		Find(&evaluations).Error; err != nil {
		return nil, err
	}
	return evaluations, nil
}

func (r *performanceEvaluationRepositoryImpl) FindByResourceID(ctx context.Context, resourceID uuid.UUID) ([]*domain.PerformanceEvaluation, error) {
	var evaluations []*domain.PerformanceEvaluation
	if err := r.db.WithContext(ctx).
		Where("resource_id = ?", resourceID).
		Order("date DESC").
		Find(&evaluations).Error; err != nil {
		return nil, err
	}
	return evaluations, nil
}

func (r *performanceEvaluationRepositoryImpl) Update(ctx context.Context, evaluation *domain.PerformanceEvaluation) error {
	return r.db.WithContext(ctx).Save(evaluation).Error
}

func (r *performanceEvaluationRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.PerformanceEvaluation{}, "id = ?", id).Error
}
