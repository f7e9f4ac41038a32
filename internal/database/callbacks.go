package database

import (
	"time"

	"gorm.io/gorm"
)

const startTimeKey = "metrics:start_time"

// MetricsRecorder is an interface for recording database metrics
type MetricsRecorder interface {
	RecordDBQuery(operation, table string, duration time.Duration, err error)
	UpdateDBStats(stats interface{})
}

// RegisterMetricsCallbacks times every create/query/update/delete statement
func RegisterMetricsCallbacks(db *gorm.DB, recorder MetricsRecorder) error {
	cb := db.Callback()
	hooks := []struct {
		operation string
		before    func(string, func(*gorm.DB)) error
		after     func(string, func(*gorm.DB)) error
	}{
		{"insert", cb.Create().Before("gorm:create").Register, cb.Create().After("gorm:create").Register},
		{"select", cb.Query().Before("gorm:query").Register, cb.Query().After("gorm:query").Register},
		{"update", cb.Update().Before("gorm:update").Register, cb.Update().After("gorm:update").Register},
		{"delete", cb.Delete().Before("gorm:delete").Register, cb.Delete().After("gorm:delete").Register},
	}

	for _, h := range hooks {
		operation := h.operation
		if err := h.before("metrics:"+operation+"_before", func(tx *gorm.DB) {
			tx.InstanceSet(startTimeKey, time.Now())
		}); err != nil {
			return err
		}
		if err := h.after("metrics:"+operation+"_after", func(tx *gorm.DB) {
			started, ok := tx.InstanceGet(startTimeKey)
			if !ok {
				return
			}
			table := tx.Statement.Table
			if table == "" {
				table = "unknown"
			}
			recorder.RecordDBQuery(operation, table, time.Since(started.(time.Time)), tx.Error)
		}); err != nil {
			return err
		}
	}
	return nil
}

// StartDBStatsCollector publishes pool stats every interval until done is closed
func StartDBStatsCollector(db *gorm.DB, recorder MetricsRecorder, interval time.Duration) chan struct{} {
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(interval)
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
