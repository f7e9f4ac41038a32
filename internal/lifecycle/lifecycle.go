// Package lifecycle applies the cascading state transitions of boards,
// categories and goals. Every operation commits as one unit of work.
package lifecycle

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"goal-board-api/internal/database"
	"goal-board-api/internal/domain"
	"goal-board-api/internal/repository"
)

// ErrAlreadyDeleted is returned when the conditional transition matched no row:
// the board or category was already deleted, or the goal already archived.
var ErrAlreadyDeleted = errors.New("already deleted")

// Result reports what a cascade changed
type Result struct {
	Categories int64
	Goals      int64
}

// Engine runs lifecycle cascades
type Engine struct {
	db         *gorm.DB
	isolation  sql.IsolationLevel
	boards     repository.BoardRepository
	categories repository.CategoryRepository
	goals      repository.GoalRepository
	logger     *zap.Logger
}

// NewEngine creates an Engine. isolation is applied to every cascade transaction.
func NewEngine(db *gorm.DB, isolation sql.IsolationLevel, logger *zap.Logger) *Engine {
	return &Engine{
		db:         db,
		isolation:  isolation,
		boards:     repository.NewBoardRepository(db),
		categories: repository.NewCategoryRepository(db),
		goals:      repository.NewGoalRepository(db),
		logger:     logger,
	}
}

// DeleteBoard soft-deletes a board, deletes all of its categories and
// archives all of their goals
func (e *Engine) DeleteBoard(ctx context.Context, boardID uuid.UUID) (Result, error) {
	var res Result

	err := database.NewUnitOfWork(e.db, e.isolation).
		Stage("mark board deleted", func(tx *gorm.DB) error {
			flipped, err := e.boards.WithTx(tx).MarkDeleted(ctx, boardID)
			if err != nil {
				return err
			}
			if !flipped {
				return ErrAlreadyDeleted
			}
			return nil
		}).
		Stage("delete categories", func(tx *gorm.DB) error {
			n, err := e.categories.WithTx(tx).MarkDeletedByBoard(ctx, boardID)
			res.Categories = n
			return err
		}).
		Stage("archive goals", func(tx *gorm.DB) error {
			n, err := e.goals.WithTx(tx).ArchiveByBoard(ctx, boardID)
			res.Goals = n
			return err
		}).
		Commit(ctx)
	if err != nil {
		return Result{}, err
	}

	e.logger.Info("Board deleted",
		zap.String("board_id", boardID.String()),
		zap.Int64("categories", res.Categories),
		zap.Int64("goals", res.Goals),
	)
	return res, nil
}

// DeleteCategory soft-deletes a category and archives its goals. The owning
// board is not touched.
func (e *Engine) DeleteCategory(ctx context.Context, categoryID uuid.UUID) (Result, error) {
	res := Result{Categories: 1}

	err := database.NewUnitOfWork(e.db, e.isolation).
		Stage("mark category deleted", func(tx *gorm.DB) error {
			flipped, err := e.categories.WithTx(tx).MarkDeleted(ctx, categoryID)
			if err != nil {
				return err
			}
			if !flipped {
				return ErrAlreadyDeleted
			}
			return nil
		}).
		Stage("archive goals", func(tx *gorm.DB) error {
			n, err := e.goals.WithTx(tx).ArchiveByCategory(ctx, categoryID)
			res.Goals = n
			return err
		}).
		Commit(ctx)
	if err != nil {
		return Result{}, err
	}

	e.logger.Info("Category deleted",
		zap.String("category_id", categoryID.String()),
		zap.Int64("goals", res.Goals),
	)
	return res, nil
}

// ArchiveGoal moves a goal to archived and returns it. Comments and every
// other field are kept.
func (e *Engine) ArchiveGoal(ctx context.Context, goalID uuid.UUID) (*domain.Goal, error) {
	var goal *domain.Goal

	err := database.NewUnitOfWork(e.db, e.isolation).
		Stage("archive goal", func(tx *gorm.DB) error {
			flipped, err := e.goals.WithTx(tx).Archive(ctx, goalID)
			if err != nil {
				return err
			}
			if !flipped {
				return ErrAlreadyDeleted
			}
			goal, err = e.goals.WithTx(tx).FindByID(ctx, goalID)
			return err
		}).
		Commit(ctx)
	if err != nil {
		return nil, err
	}
	return goal, nil
}
