package database

import (
	"time"

	"gorm.io/gorm"
)

// MetricsRecorder is an interface for recording database metrics
type MetricsRecorder interface {
	RecordDBQuery(operation, table string, duration time.Duration, err error)
	UpdateDBStats(stats interface{})
}

// RegisterMetricsCallbacks registers GORM callbacks for metrics collection
func RegisterMetricsCallbacks(db *gorm.DB, recorder MetricsRecorder) {
	timed := func(op string) (before func(*gorm.DB), after func(*gorm.DB)) {
		before = func(db *gorm.DB) {
			db.InstanceSet("query_start_time", time.Now())
		}
		after = func(db *gorm.DB) {
			if startTime, ok := db.InstanceGet("query_start_time"); ok {
				duration := time.Since(startTime.(time.Time))
				table := db.Statement.Table
				if table == "" {
					table = "unknown"
				}
				recorder.RecordDBQuery(op, table, duration, db.Error)
			}
		}
		return before, after
	}

	qb, qa := timed("select")
	db.Callback().Query().Before("gorm:query").Register("metrics:query_before", qb)
	db.Callback().Query().After("gorm:query").Register("metrics:query_after", qa)

	cb, ca := timed("insert")
	db.Callback().Create().Before("gorm:create").Register("metrics:create_before", cb)
	db.Callback().Create().After("gorm:create").Register("metrics:create_after", ca)

	ub, ua := timed("update")
	db.Callback().Update().Before("gorm:update").Register("metrics:update_before", ub)
	db.Callback().Update().After("gorm:update").Register("metrics:update_after", ua)

	delb, dela := timed("delete")
	db.Callback().Delete().Before("gorm:delete").Register("metrics:delete_before", delb)
	db.Callback().Delete().After("gorm:delete").Register("metrics:delete_after", dela)
}

// StartDBStatsCollector starts periodic DB stats collection
func StartDBStatsCollector(db *gorm.DB, recorder MetricsRecorder) chan struct{} {
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				sqlDB, err := db.DB()
				if err != nil {
					continue
				}
				recorder.UpdateDBStats(sqlDB.Stats())
			case <-done:
				return
			}
		}
	}()

	return done
}
