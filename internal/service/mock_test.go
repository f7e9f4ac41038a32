package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"goal-board-api/internal/domain"
	"goal-board-api/internal/filter"
	"goal-board-api/internal/lifecycle"
	"goal-board-api/internal/repository"
)

// MockBoardRepository is a mock implementation of BoardRepository
type MockBoardRepository struct {
	CreateFunc      func(ctx context.Context, board *domain.Board) error
	FindByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindVisibleFunc func(ctx context.Context, userID, id uuid.UUID) (*domain.Board, error)
	ListVisibleFunc func(ctx context.Context, userID uuid.UUID, q *filter.Query) ([]*domain.Board, int64, error)
	UpdateTitleFunc func(ctx context.Context, id uuid.UUID, title string) error
	MarkDeletedFunc func(ctx context.Context, id uuid.UUID) (bool, error)
}

func (m *MockBoardRepository) Create(ctx context.Context, board *domain.Board) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, board)
	}
	return nil
}

func (m *MockBoardRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockBoardRepository) FindVisible(ctx context.Context, userID, id uuid.UUID) (*domain.Board, error) {
	if m.FindVisibleFunc != nil {
		return m.FindVisibleFunc(ctx, userID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockBoardRepository) ListVisible(ctx context.Context, userID uuid.UUID, q *filter.Query) ([]*domain.Board, int64, error) {
	if m.ListVisibleFunc != nil {
		return m.ListVisibleFunc(ctx, userID, q)
	}
	return nil, 0, nil
}

func (m *MockBoardRepository) UpdateTitle(ctx context.Context, id uuid.UUID, title string) error {
	if m.UpdateTitleFunc != nil {
		return m.UpdateTitleFunc(ctx, id, title)
	}
	return nil
}

func (m *MockBoardRepository) MarkDeleted(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.MarkDeletedFunc != nil {
		return m.MarkDeletedFunc(ctx, id)
	}
	return true, nil
}

func (m *MockBoardRepository) WithTx(tx *gorm.DB) repository.BoardRepository {
	return m
}

// MockParticipantRepository is a mock implementation of ParticipantRepository
type MockParticipantRepository struct {
	CreateFunc      func(ctx context.Context, participant *domain.Participant) error
	FindFunc        func(ctx context.Context, boardID, userID uuid.UUID) (*domain.Participant, error)
	ListByBoardFunc func(ctx context.Context, boardID uuid.UUID) ([]*domain.Participant, error)
	ListUserIDsFunc func(ctx context.Context, boardID uuid.UUID) ([]uuid.UUID, error)
	UpdateRoleFunc  func(ctx context.Context, boardID, userID uuid.UUID, role domain.Role) error
	DeleteFunc      func(ctx context.Context, boardID, userID uuid.UUID) error
}

func (m *MockParticipantRepository) Create(ctx context.Context, participant *domain.Participant) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, participant)
	}
	return nil
}

func (m *MockParticipantRepository) Find(ctx context.Context, boardID, userID uuid.UUID) (*domain.Participant, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, boardID, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockParticipantRepository) ListByBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.Participant, error) {
	if m.ListByBoardFunc != nil {
		return m.ListByBoardFunc(ctx, boardID)
	}
	return nil, nil
}

func (m *MockParticipantRepository) ListUserIDs(ctx context.Context, boardID uuid.UUID) ([]uuid.UUID, error) {
	if m.ListUserIDsFunc != nil {
		return m.ListUserIDsFunc(ctx, boardID)
	}
	return nil, nil
}

func (m *MockParticipantRepository) UpdateRole(ctx context.Context, boardID, userID uuid.UUID, role domain.Role) error {
	if m.UpdateRoleFunc != nil {
		return m.UpdateRoleFunc(ctx, boardID, userID, role)
	}
	return nil
}

func (m *MockParticipantRepository) Delete(ctx context.Context, boardID, userID uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, boardID, userID)
	}
	return nil
}

func (m *MockParticipantRepository) WithTx(tx *gorm.DB) repository.ParticipantRepository {
	return m
}

// MockLifecycle is a mock implementation of Lifecycle
type MockLifecycle struct {
	DeleteBoardFunc    func(ctx context.Context, boardID uuid.UUID) (lifecycle.Result, error)
	DeleteCategoryFunc func(ctx context.Context, categoryID uuid.UUID) (lifecycle.Result, error)
	ArchiveGoalFunc    func(ctx context.Context, goalID uuid.UUID) (*domain.Goal, error)
}

func (m *MockLifecycle) DeleteBoard(ctx context.Context, boardID uuid.UUID) (lifecycle.Result, error) {
	if m.DeleteBoardFunc != nil {
		return m.DeleteBoardFunc(ctx, boardID)
	}
	return lifecycle.Result{}, nil
}

func (m *MockLifecycle) DeleteCategory(ctx context.Context, categoryID uuid.UUID) (lifecycle.Result, error) {
	if m.DeleteCategoryFunc != nil {
		return m.DeleteCategoryFunc(ctx, categoryID)
	}
	return lifecycle.Result{}, nil
}

func (m *MockLifecycle) ArchiveGoal(ctx context.Context, goalID uuid.UUID) (*domain.Goal, error) {
	if m.ArchiveGoalFunc != nil {
		return m.ArchiveGoalFunc(ctx, goalID)
	}
	return nil, nil
}
