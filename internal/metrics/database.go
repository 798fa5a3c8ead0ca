package metrics

import (
	"database/sql"
	"time"
)

// UpdateDBStats refreshes the connection pool gauges from sql.DBStats
func (m *Metrics) UpdateDBStats(statsInterface interface{}) {
	stats, ok := statsInterface.(sql.DBStats)
	if !ok {
		return
	}
	m.DBConnectionsOpen.Set(float64(stats.OpenConnections))
	m.DBConnectionsInUse.Set(float64(stats.InUse))
	m.DBConnectionsIdle.Set(float64(stats.Idle))
}

// RecordDBQuery records one database query's duration and error state
func (m *Metrics) RecordDBQuery(operation, table string, duration time.Duration, err error) {
	m.DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		m.DBQueryErrors.WithLabelValues(operation, table).Inc()
	}
}
