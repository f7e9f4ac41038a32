package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"goal-board-api/internal/domain"
)

// models lists the domain models in dependency order
func models() []interface{} {
	return []interface{}{
		&domain.Board{},
		&domain.Participant{},
		&domain.GoalCategory{},
		&domain.Goal{},
		&domain.Comment{},
	}
}

// AutoMigrate creates or updates tables, indexes and foreign keys for all domain models
func AutoMigrate(db *gorm.DB, logger *zap.Logger) error {
	migrator := db.Migrator()

	for _, m := range models() {
		existed := migrator.HasTable(m)
		if err := db.AutoMigrate(m); err != nil {
			logger.Error("Failed to migrate table",
				zap.String("model", fmt.Sprintf("%T", m)),
				zap.Bool("table_existed", existed),
				zap.Error(err),
			)
			return fmt.Errorf("failed to migrate %T: %w", m, err)
		}
		logger.Debug("Migrated table",
			zap.String("model", fmt.Sprintf("%T", m)),
			zap.Bool("was_existing", existed),
		)
	}

	logger.Info("Auto-migration completed", zap.Int("tables", len(models())))
	return nil
}
