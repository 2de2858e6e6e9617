package database

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

const queryStartKey = "metrics:query_start_time"

// MetricsRecorder is an interface for recording database metrics
type MetricsRecorder interface {
	RecordDBQuery(operation, table string, duration time.Duration, err error)
	UpdateDBStats(stats interface{})
}

// RegisterMetricsCallbacks times every query, create, update, delete and raw statement
func RegisterMetricsCallbacks(db *gorm.DB, recorder MetricsRecorder) error {
	cb := db.Callback()
	return errors.Join(
		cb.Query().Before("gorm:query").Register("metrics:select_before", startTimer),
		cb.Query().After("gorm:query").Register("metrics:select_after", stopTimer("select", recorder)),
		cb.Create().Before("gorm:create").Register("metrics:insert_before", startTimer),
		cb.Create().After("gorm:create").Register("metrics:insert_after", stopTimer("insert", recorder)),
		cb.Update().Before("gorm:update").Register("metrics:update_before", startTimer),
		cb.Update().After("gorm:update").Register("metrics:update_after", stopTimer("update", recorder)),
		cb.Delete().Before("gorm:delete").Register("metrics:delete_before", startTimer),
		cb.Delete().After("gorm:delete").Register("metrics:delete_after", stopTimer("delete", recorder)),
		cb.Raw().Before("gorm:raw").Register("metrics:raw_before", startTimer),
		cb.Raw().After("gorm:raw").Register("metrics:raw_after", stopTimer("raw", recorder)),
	)
}

func startTimer(tx *gorm.DB) {
	tx.InstanceSet(queryStartKey, time.Now())
}

func stopTimer(operation string, recorder MetricsRecorder) func(*gorm.DB) {
	return func(tx *gorm.DB) {
		v, ok := tx.InstanceGet(queryStartKey)
		if !ok {
			return
		}
		start, ok := v.(time.Time)
		if !ok {
			return
		}
		table := tx.Statement.Table
		if table == "" {
			table = "unknown"
		}
		recorder.RecordDBQuery(operation, table, time.Since(start), tx.Error)
	}
}

// StartDBStatsCollector pushes sql.DBStats to recorder every interval until done is closed
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
