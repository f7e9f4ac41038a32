package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"goal-board-api/internal/domain"
	"goal-board-api/internal/filter"
)

// GoalRepository defines the interface for goal data access
type GoalRepository interface {
	Create(ctx context.Context, goal *domain.Goal) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Goal, error)
	FindVisible(ctx context.Context, userID, id uuid.UUID) (*domain.Goal, error)
	ListVisible(ctx context.Context, userID uuid.UUID, q *filter.Query) ([]*domain.Goal, int64, error)
	BoardID(ctx context.Context, goalID uuid.UUID) (uuid.UUID, error)
	Update(ctx context.Context, goal *domain.Goal) error
	Archive(ctx context.Context, id uuid.UUID) (bool, error)
	ArchiveByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
	ArchiveByBoard(ctx context.Context, boardID uuid.UUID) (int64, error)
	WithTx(tx *gorm.DB) GoalRepository
}

type goalRepositoryImpl struct {
	db *gorm.DB
}

// NewGoalRepository creates a new instance of GoalRepository
func NewGoalRepository(db *gorm.DB) GoalRepository {
	return &goalRepositoryImpl{db: db}
}

func (r *goalRepositoryImpl) WithTx(tx *gorm.DB) GoalRepository {
	return &goalRepositoryImpl{db: tx}
}

func (r *goalRepositoryImpl) Create(ctx context.Context, goal *domain.Goal) error {
	return r.db.WithContext(ctx).Create(goal).Error
}

// FindByID finds a goal by ID, archived or not
func (r *goalRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Goal, error) {
	var goal domain.Goal
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *goalRepositoryImpl) FindVisible(ctx context.Context, userID, id uuid.UUID) (*domain.Goal, error) {
	var goal domain.Goal
	if err := r.db.WithContext(ctx).
		Select("goals.*").
		Scopes(VisibleGoals(userID)).
		Where("goals.id = ?", id).
		First(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *goalRepositoryImpl) ListVisible(ctx context.Context, userID uuid.UUID, q *filter.Query) ([]*domain.Goal, int64, error) {
	query := q.Where(r.db.WithContext(ctx).Model(&domain.Goal{}).Scopes(VisibleGoals(userID))).
		Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	goals := []*domain.Goal{}
	if err := q.OrderAndPage(query.Select("goals.*")).Find(&goals).Error; err != nil {
		return nil, 0, err
	}
	return goals, total, nil
}

// BoardID resolves the board owning a goal through its category
func (r *goalRepositoryImpl) BoardID(ctx context.Context, goalID uuid.UUID) (uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Table("goals").
		Joins("JOIN goal_categories ON goal_categories.id = goals.category_id").
		Where("goals.id = ?", goalID).
		Limit(1).
		Pluck("goal_categories.board_id", &ids).Error; err != nil {
		return uuid.Nil, err
	}
	if len(ids) == 0 {
		return uuid.Nil, gorm.ErrRecordNotFound
	}
	return ids[0], nil
}

// Update writes the mutable fields of a non-archived goal
func (r *goalRepositoryImpl) Update(ctx context.Context, goal *domain.Goal) error {
	result := r.db.WithContext(ctx).
		Model(goal).
		Where("status <> ?", domain.GoalStatusArchived).
		Select("category_id", "title", "description", "due_date", "status", "priority").
		Updates(goal)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Archive moves a goal to archived if it is not already. Other fields are untouched.
func (r *goalRepositoryImpl) Archive(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Goal{}).
		Where("id = ? AND status <> ?", id, domain.GoalStatusArchived).
		Update("status", domain.GoalStatusArchived)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *goalRepositoryImpl) ArchiveByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Goal{}).
		Where("category_id = ? AND status <> ?", categoryID, domain.GoalStatusArchived).
		Update("status", domain.GoalStatusArchived)
	return result.RowsAffected, result.Error
}

// ArchiveByBoard archives the goals of every category of the board
func (r *goalRepositoryImpl) ArchiveByBoard(ctx context.Context, boardID uuid.UUID) (int64, error) {
	categories := r.db.Model(&domain.GoalCategory{}).Select("id").Where("board_id = ?", boardID)
	result := r.db.WithContext(ctx).
		Model(&domain.Goal{}).
		Where("category_id IN (?) AND status <> ?", categories, domain.GoalStatusArchived).
		Update("status", domain.GoalStatusArchived)
	return result.RowsAffected, result.Error
}
