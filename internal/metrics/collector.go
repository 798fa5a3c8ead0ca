package metrics

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"ejderhub-api/internal/domain"
)

// BusinessMetricsCollector periodically refreshes the entity count gauges
type BusinessMetricsCollector struct {
	db      *gorm.DB
	metrics *Metrics
	logger  *zap.Logger
	done    chan struct{}
}

// NewBusinessMetricsCollector creates a collector that is not yet running
func NewBusinessMetricsCollector(db *gorm.DB, metrics *Metrics, logger *zap.Logger) *BusinessMetricsCollector {
	return &BusinessMetricsCollector{
		db:      db,
		metrics: metrics,
		logger:  logger,
		done:    make(chan struct{}),
	}
}

// Start begins collection in a background goroutine
func (c *BusinessMetricsCollector) Start() {
	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()

		c.collect()
		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.done:
				return
			}
		}
	}()
}

// Stop halts collection
func (c *BusinessMetricsCollector) Stop() {
	close(c.done)
}

func (c *BusinessMetricsCollector) collect() {
	var projects, tasks, ideas int64

	if err := c.db.Model(&domain.Project{}).Count(&projects).Error; err != nil {
		c.logger.Warn("Failed to count projects for metrics", zap.Error(err))
		return
	}
	if err := c.db.Model(&domain.Task{}).Count(&tasks).Error; err != nil {
		c.logger.Warn("Failed to count tasks for metrics", zap.Error(err))
		return
	}
	if err := c.db.Model(&domain.Idea{}).Count(&ideas).Error; err != nil {
		c.logger.Warn("Failed to count ideas for metrics", zap.Error(err))
		return
	}

	c.metrics.SetProjectsTotal(projects)
	c.metrics.SetTasksTotal(tasks)
	c.metrics.SetIdeasTotal(ideas)
}
