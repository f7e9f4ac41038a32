package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"goal-board-api/internal/domain"
)

// ParticipantRepository defines the interface for board participant data access
type ParticipantRepository interface {
	Create(ctx context.Context, participant *domain.Participant) error
	Find(ctx context.Context, boardID, userID uuid.UUID) (*domain.Participant, error)
	ListByBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.Participant, error)
	ListUserIDs(ctx context.Context, boardID uuid.UUID) ([]uuid.UUID, error)
	UpdateRole(ctx context.Context, boardID, userID uuid.UUID, role domain.Role) error
	Delete(ctx context.Context, boardID, userID uuid.UUID) error
	WithTx(tx *gorm.DB) ParticipantRepository
}

type participantRepositoryImpl struct {
	db *gorm.DB
}

// NewParticipantRepository creates a new instance of ParticipantRepository
func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepositoryImpl{db: db}
}

func (r *participantRepositoryImpl) WithTx(tx *gorm.DB) ParticipantRepository {
	return &participantRepositoryImpl{db: tx}
}

func (r *participantRepositoryImpl) Create(ctx context.Context, participant *domain.Participant) error {
	return r.db.WithContext(ctx).Create(participant).Error
}

// Find returns gorm.ErrRecordNotFound if the user is not on the board
func (r *participantRepositoryImpl) Find(ctx context.Context, boardID, userID uuid.UUID) (*domain.Participant, error) {
	var participant domain.Participant
	if err := r.db.WithContext(ctx).
		Where("board_id = ? AND user_id = ?", boardID, userID).
		First(&participant).Error; err != nil {
		return nil, err
	}
	return &participant, nil
}

func (r *participantRepositoryImpl) ListByBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.Participant, error) {
	participants := []*domain.Participant{}
	if err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("role ASC, created_at ASC").
		Find(&participants).Error; err != nil {
		return nil, err
	}
	return participants, nil
}

func (r *participantRepositoryImpl) ListUserIDs(ctx context.Context, boardID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&domain.Participant{}).
		Where("board_id = ?", boardID).
		Pluck("user_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *participantRepositoryImpl) UpdateRole(ctx context.Context, boardID, userID uuid.UUID, role domain.Role) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Participant{}).
		Where("board_id = ? AND user_id = ?", boardID, userID).
		Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *participantRepositoryImpl) Delete(ctx context.Context, boardID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("board_id = ? AND user_id = ?", boardID, userID).
		Delete(&domain.Participant{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
