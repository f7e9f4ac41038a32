package metrics

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"goal-board-api/internal/domain"
)

const collectTimeout = 5 * time.Second

// BusinessMetricsCollector refreshes the business gauges from the database.
// It is driven by the job scheduler.
type BusinessMetricsCollector struct {
	db      *gorm.DB
	metrics *Metrics
	logger  *zap.Logger
}

// NewBusinessMetricsCollector creates a new collector
func NewBusinessMetricsCollector(db *gorm.DB, metrics *Metrics, logger *zap.Logger) *BusinessMetricsCollector {
	return &BusinessMetricsCollector{
		db:      db,
		metrics: metrics,
		logger:  logger,
	}
}

// Run collects once with its own timeout. It matches the cron.Job interface.
func (c *BusinessMetricsCollector) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), collectTimeout)
	defer cancel()
	c.Collect(ctx)
}

// Collect gathers business metrics. Failures are logged and the affected
// gauge keeps its previous value.
func (c *BusinessMetricsCollector) Collect(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Panic in business metrics collection",
				zap.Any("panic", r),
			)
		}
	}()

	db := c.db.WithContext(ctx)

	var boardCount int64
	if err := db.Model(&domain.Board{}).Where("is_deleted = ?", false).Count(&boardCount).Error; err != nil {
		c.logger.Error("Failed to count boards", zap.Error(err))
	} else {
		c.metrics.SetBoardsTotal(boardCount)
	}

	var categoryCount int64
	if err := db.Model(&domain.GoalCategory{}).Where("is_deleted = ?", false).Count(&categoryCount).Error; err != nil {
		c.logger.Error("Failed to count categories", zap.Error(err))
	} else {
		c.metrics.SetCategoriesTotal(categoryCount)
	}

	var rows []struct {
		Status domain.GoalStatus
		Count  int64
	}
	if err := db.Model(&domain.Goal{}).Select("status, COUNT(*) AS count").Group("status").Scan(&rows).Error; err != nil {
		c.logger.Error("Failed to count goals", zap.Error(err))
	} else {
		counts := make(map[domain.GoalStatus]int64, len(rows))
		for _, r := range rows {
			counts[r.Status] = r.Count
		}
		c.metrics.SetGoalsTotal(counts)
	}

	var commentCount int64
	if err := db.Model(&domain.Comment{}).Count(&commentCount).Error; err != nil {
		c.logger.Error("Failed to count comments", zap.Error(err))
	} else {
		c.metrics.SetCommentsTotal(commentCount)
	}
}
