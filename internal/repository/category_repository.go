package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"goal-board-api/internal/domain"
	"goal-board-api/internal/filter"
)

// CategoryRepository defines the interface for goal category data access
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.GoalCategory) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.GoalCategory, error)
	FindVisible(ctx context.Context, userID, id uuid.UUID) (*domain.GoalCategory, error)
	ListVisible(ctx context.Context, userID uuid.UUID, q *filter.Query) ([]*domain.GoalCategory, int64, error)
	UpdateTitle(ctx context.Context, id uuid.UUID, title string) error
	MarkDeleted(ctx context.Context, id uuid.UUID) (bool, error)
	MarkDeletedByBoard(ctx context.Context, boardID uuid.UUID) (int64, error)
	WithTx(tx *gorm.DB) CategoryRepository
}

type categoryRepositoryImpl struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new instance of CategoryRepository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepositoryImpl{db: db}
}

func (r *categoryRepositoryImpl) WithTx(tx *gorm.DB) CategoryRepository {
	return &categoryRepositoryImpl{db: tx}
}

func (r *categoryRepositoryImpl) Create(ctx context.Context, category *domain.GoalCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

// FindByID finds a category by ID whatever its lifecycle state
func (r *categoryRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.GoalCategory, error) {
	var category domain.GoalCategory
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepositoryImpl) FindVisible(ctx context.Context, userID, id uuid.UUID) (*domain.GoalCategory, error) {
	var category domain.GoalCategory
	if err := r.db.WithContext(ctx).
		Select("goal_categories.*").
		Scopes(VisibleCategories(userID)).
		Where("goal_categories.id = ?", id).
		First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepositoryImpl) ListVisible(ctx context.Context, userID uuid.UUID, q *filter.Query) ([]*domain.GoalCategory, int64, error) {
	query := q.Where(r.db.WithContext(ctx).Model(&domain.GoalCategory{}).Scopes(VisibleCategories(userID))).
		Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	categories := []*domain.GoalCategory{}
	if err := q.OrderAndPage(query.Select("goal_categories.*")).Find(&categories).Error; err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

func (r *categoryRepositoryImpl) UpdateTitle(ctx context.Context, id uuid.UUID, title string) error {
	result := r.db.WithContext(ctx).
		Model(&domain.GoalCategory{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("title", title)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MarkDeleted flips is_deleted only if it is still false
func (r *categoryRepositoryImpl) MarkDeleted(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.GoalCategory{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// MarkDeletedByBoard deletes every live category of a board and returns how many changed
func (r *categoryRepositoryImpl) MarkDeletedByBoard(ctx context.Context, boardID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.GoalCategory{}).
		Where("board_id = ? AND is_deleted = ?", boardID, false).
		Update("is_deleted", true)
	return result.RowsAffected, result.Error
}
