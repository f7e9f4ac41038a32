package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"goal-board-api/internal/domain"
	"goal-board-api/internal/filter"
)

// BoardRepository defines the interface for board data access
type BoardRepository interface {
	Create(ctx context.Context, board *domain.Board) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindVisible(ctx context.Context, userID, id uuid.UUID) (*domain.Board, error)
	ListVisible(ctx context.Context, userID uuid.UUID, q *filter.Query) ([]*domain.Board, int64, error)
	UpdateTitle(ctx context.Context, id uuid.UUID, title string) error
	MarkDeleted(ctx context.Context, id uuid.UUID) (bool, error)
	WithTx(tx *gorm.DB) BoardRepository
}

// boardRepositoryImpl is the GORM implementation of BoardRepository
type boardRepositoryImpl struct {
	db *gorm.DB
}

// NewBoardRepository creates a new instance of BoardRepository
func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepositoryImpl{db: db}
}

func (r *boardRepositoryImpl) WithTx(tx *gorm.DB) BoardRepository {
	return &boardRepositoryImpl{db: tx}
}

// Create creates a new board
func (r *boardRepositoryImpl) Create(ctx context.Context, board *domain.Board) error {
	return r.db.WithContext(ctx).Create(board).Error
}

// FindByID finds a board by ID whatever its lifecycle state
func (r *boardRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	var board domain.Board
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&board).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// FindVisible finds a board only if the user can see it
func (r *boardRepositoryImpl) FindVisible(ctx context.Context, userID, id uuid.UUID) (*domain.Board, error) {
	var board domain.Board
	if err := r.db.WithContext(ctx).
		Scopes(VisibleBoards(userID)).
		Where("boards.id = ?", id).
		First(&board).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// ListVisible lists the boards visible to the user
func (r *boardRepositoryImpl) ListVisible(ctx context.Context, userID uuid.UUID, q *filter.Query) ([]*domain.Board, int64, error) {
	query := q.Where(r.db.WithContext(ctx).Model(&domain.Board{}).Scopes(VisibleBoards(userID))).
		Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	boards := []*domain.Board{}
	if err := q.OrderAndPage(query).Find(&boards).Error; err != nil {
		return nil, 0, err
	}
	return boards, total, nil
}

// UpdateTitle renames a live board
func (r *boardRepositoryImpl) UpdateTitle(ctx context.Context, id uuid.UUID, title string) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Board{}).
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

// MarkDeleted flips is_deleted only if it is still false. The returned flag
// reports whether this call performed the transition.
func (r *boardRepositoryImpl) MarkDeleted(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Board{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
