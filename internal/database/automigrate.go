package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"ejderhub-api/internal/domain"
)

// models lists every domain model in migration order
func models() []interface{} {
	return []interface{}{
		&domain.Department{},
		&domain.Resource{},
		&domain.Project{},
		&domain.Task{},
		&domain.Event{},
		&domain.Idea{},
		&domain.Comment{},
		&domain.Evaluation{},
		&domain.PurchaseRequest{},
		&domain.Invoice{},
		&domain.Notification{},
		&domain.Announcement{},
		&domain.Feedback{},
		&domain.PerformanceEvaluation{},
	}
}

// AutoMigrate runs GORM auto-migration for all domain models
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models()...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}
	return nil
}

// SafeAutoMigrate migrates one table at a time, logging progress. Existing
// tables only receive schema additions; missing tables are created.
func SafeAutoMigrate(db *gorm.DB, logger *zap.Logger) error {
	migrator := db.Migrator()

	for _, m := range models() {
		tableExists := migrator.HasTable(m)

		if err := db.AutoMigrate(m); err != nil {
			logger.Error("Failed to migrate table",
				zap.String("model", fmt.Sprintf("%T", m)),
				zap.Bool("table_existed", tableExists),
				zap.Error(err),
			)
			return fmt.Errorf("failed to migrate %T: %w", m, err)
		}

		logger.Debug("Migrated table",
			zap.String("model", fmt.Sprintf("%T", m)),
			zap.Bool("was_existing", tableExists),
		)
	}

	logger.Info("Auto-migration completed", zap.Int("tables", len(models())))
	return nil
}
