package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ejderhub-api/internal/config"
	"ejderhub-api/internal/domain"
	"ejderhub-api/internal/dto"
	"ejderhub-api/internal/repository"
	"ejderhub-api/internal/response"
)

const unreadCountCacheKey = "notifications:unread_count"

// NotificationService defines the interface for notification business logic.
// The unread counter is cached in Redis and invalidated on every write.
type NotificationService interface {
	CreateNotification(ctx context.Context, userID uuid.UUID, req *dto.CreateNotificationRequest) (*domain.Notification, error)
	ListNotifications(ctx context.Context) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, notificationID uuid.UUID, read bool) (*domain.Notification, error)
	MarkAllRead(ctx context.Context) (int64, error)
	UnreadCount(ctx context.Context) (int64, error)
	DeleteNotification(ctx context.Context, notificationID uuid.UUID) error
	CleanupOldNotifications(ctx context.Context) (int64, error)
}

type notificationServiceImpl struct {
	notificationRepo repository.NotificationRepository
	redis            *redis.Client
	config           *config.Config
	logger           *zap.Logger
}

// NewNotificationService creates a new instance of NotificationService. The
// redis client may be nil; caching is skipped in that case.
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	redisClient *redis.Client,
	cfg *config.Config,
	logger *zap.Logger,
) NotificationService {
	return &notificationServiceImpl{
		notificationRepo: notificationRepo,
		redis:            redisClient,
		config:           cfg,
		logger:           logger,
	}
}

// CreateNotification pushes a notification into the tray
func (s *notificationServiceImpl) CreateNotification(ctx context.Context, userID uuid.UUID, req *dto.CreateNotificationRequest) (*domain.Notification, error) {
	authorID := userID
	if req.AuthorID != nil {
		authorID = *req.AuthorID
	}
	notifType := req.Type
	if notifType == "" {
		notifType = domain.NotificationInfo
	}

	notification := &domain.Notification{
		Message:   req.Message,
		Timestamp: time.Now().UTC(),
		Read:      false,
		AuthorID:  authorID,
		Type:      notifType,
		EventID:   req.EventID,
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create notification", err.Error())
	}

	s.invalidateUnreadCountCache(ctx)
	s.logger.Info("notification created",
		zap.String("notification_id", notification.ID.String()),
		zap.String("type", string(notification.Type)),
	)
	return notification, nil
}

// ListNotifications returns all notifications, newest first
func (s *notificationServiceImpl) ListNotifications(ctx context.Context) ([]*domain.Notification, error) {
	notifications, err := s.notificationRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list notifications", err.Error())
	}
	return notifications, nil
}

// MarkRead sets a notification's read flag
func (s *notificationServiceImpl) MarkRead(ctx context.Context, notificationID uuid.UUID, read bool) (*domain.Notification, error) {
	notification, err := s.notificationRepo.FindByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Notification not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load notification", err.Error())
	}

	notification.Read = read
	if err := s.notificationRepo.Update(ctx, notification); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update notification", err.Error())
	}

	s.invalidateUnreadCountCache(ctx)
	return notification, nil
}

// MarkAllRead marks every unread notification as read and reports how many
// rows changed
func (s *notificationServiceImpl) MarkAllRead(ctx context.Context) (int64, error) {
	count, err := s.notificationRepo.MarkAllRead(ctx)
	if err != nil {
		return 0, response.NewAppError(response.ErrCodeInternal, "Failed to mark notifications read", err.Error())
	}
	s.invalidateUnreadCountCache(ctx)
	return count, nil
}

// UnreadCount returns the number of unread notifications, serving from the
// Redis cache when it is warm
func (s *notificationServiceImpl) UnreadCount(ctx context.Context) (int64, error) {
	if s.redis != nil {
		cached, err := s.redis.Get(ctx, unreadCountCacheKey).Int64()
		if err == nil {
			return cached, nil
		}
	}

	count, err := s.notificationRepo.CountUnread(ctx)
	if err != nil {
		return 0, response.NewAppError(response.ErrCodeInternal, "Failed to count unread notifications", err.Error())
	}

	if s.redis != nil {
		ttl := time.Duration(s.config.App.CacheUnreadTTL) * time.Second
		s.redis.Set(ctx, unreadCountCacheKey, count, ttl)
	}
	return count, nil
}

// DeleteNotification removes a notification
func (s *notificationServiceImpl) DeleteNotification(ctx context.Context, notificationID uuid.UUID) error {
	if _, err := s.notificationRepo.FindByID(ctx, notificationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Notification not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load notification", err.Error())
	}
	if err := s.notificationRepo.Delete(ctx, notificationID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete notification", err.Error())
	}
	s.invalidateUnreadCountCache(ctx)
	return nil
}

// CleanupOldNotifications purges read notifications older than the configured
// retention window. The cron job calls this nightly.
func (s *notificationServiceImpl) CleanupOldNotifications(ctx context.Context) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -s.config.App.NotificationCleanupDays)
	count, err := s.notificationRepo.DeleteReadOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.logger.Info("old notifications purged",
			zap.Int64("count", count),
			zap.Time("cutoff", cutoff),
		)
	}
	return count, nil
}

func (s *notificationServiceImpl) invalidateUnreadCountCache(ctx context.Context) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, unreadCountCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate unread cache", zap.Error(err))
	}
}
