package metrics

import (
	"database/sql"
	"strings"
	"time"
)

// UpdateDBStats updates database connection pool metrics
func (m *Metrics) UpdateDBStats(statsInterface interface{}) {
	m.safeExecute("UpdateDBStats", func() {
		stats, ok := statsInterface.(sql.DBStats)
		if !ok {
			return
		}
		m.DBConnectionsOpen.Set(float64(stats.OpenConnections))
		m.DBConnectionsInUse.Set(float64(stats.InUse))
		m.DBConnectionsIdle.Set(float64(stats.Idle))
		m.DBConnectionsMax.Set(float64(stats.MaxOpenConnections))

		// WaitCount and WaitDuration are running totals of the pool, the
		// counters only take what was added since the previous call
		m.statsMu.Lock()
		defer m.statsMu.Unlock()
		if stats.WaitCount < m.lastWaitCount || stats.WaitDuration < m.lastWaitDuration {
			// pool was replaced
			m.lastWaitCount, m.lastWaitDuration = 0, 0
		}
		if d := stats.WaitCount - m.lastWaitCount; d > 0 {
			m.DBConnectionWaitTotal.Add(float64(d))
		}
		if d := stats.WaitDuration - m.lastWaitDuration; d > 0 {
			m.DBConnectionWaitDuration.Add(d.Seconds())
		}
		m.lastWaitCount = stats.WaitCount
		m.lastWaitDuration = stats.WaitDuration
	})
}

// RecordDBQuery records database query metrics
func (m *Metrics) RecordDBQuery(operation, table string, duration time.Duration, err error) {
	m.safeExecute("RecordDBQuery", func() {
		operation = normalizeOperation(operation)
		m.DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())

		if err != nil {
			m.DBQueryErrors.WithLabelValues(operation, table).Inc()
		}
	})
}

// normalizeOperation converts operation to lowercase
func normalizeOperation(op string) string {
	return strings.ToLower(op)
}
