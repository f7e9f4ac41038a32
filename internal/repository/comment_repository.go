package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"goal-board-api/internal/domain"
	"goal-board-api/internal/filter"
)

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	FindReachable(ctx context.Context, userID, id uuid.UUID) (*domain.Comment, error)
	ListReachable(ctx context.Context, userID uuid.UUID, q *filter.Query) ([]*domain.Comment, int64, error)
	UpdateText(ctx context.Context, id uuid.UUID, text string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type commentRepositoryImpl struct {
	db *gorm.DB
}

// NewCommentRepository creates a new instance of CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepositoryImpl{db: db}
}

func (r *commentRepositoryImpl) Create(ctx context.Context, comment *domain.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	var comment domain.Comment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepositoryImpl) FindReachable(ctx context.Context, userID, id uuid.UUID) (*domain.Comment, error) {
	var comment domain.Comment
	if err := r.db.WithContext(ctx).
		Select("comments.*").
		Scopes(ReachableComments(userID)).
		Where("comments.id = ?", id).
		First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepositoryImpl) ListReachable(ctx context.Context, userID uuid.UUID, q *filter.Query) ([]*domain.Comment, int64, error) {
	query := q.Where(r.db.WithContext(ctx).Model(&domain.Comment{}).Scopes(ReachableComments(userID))).
		Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	comments := []*domain.Comment{}
	if err := q.OrderAndPage(query.Select("comments.*")).Find(&comments).Error; err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (r *commentRepositoryImpl) UpdateText(ctx context.Context, id uuid.UUID, text string) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Comment{}).
		Where("id = ?", id).
		Update("text", text)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the comment row
func (r *commentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Comment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
