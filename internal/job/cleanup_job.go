package job

import (
	"context"

	"go.uber.org/zap"

	"ejderhub-api/internal/service"
)

// CleanupJob purges read notifications past their retention window. It
// satisfies cron.Job and is scheduled nightly from main.
type CleanupJob struct {
	notificationService service.NotificationService
	logger              *zap.Logger
}

// NewCleanupJob creates a new CleanupJob instance
func NewCleanupJob(notificationService service.NotificationService, logger *zap.Logger) *CleanupJob {
	return &CleanupJob{
		notificationService: notificationService,
		logger:              logger,
	}
}

// Run executes the cleanup job
func (j *CleanupJob) Run() {
	ctx := context.Background()

	j.logger.Info("Starting notification cleanup job")

	count, err := j.notificationService.CleanupOldNotifications(ctx)
	if err != nil {
		j.logger.Error("Notification cleanup failed", zap.Error(err))
		return
	}

	j.logger.Info("Notification cleanup completed", zap.Int64("deleted", count))
}
