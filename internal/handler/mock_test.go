package handler

import (
	"context"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"goal-board-api/internal/dto"
)

// setupTestRouter creates a gin engine that authenticates every request as userID
func setupTestRouter(userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != uuid.Nil {
			c.Set("user_id", userID)
		}
		c.Next()
	})
	return r
}

// MockBoardService is a mock implementation of BoardService
type MockBoardService struct {
	CreateBoardFunc func(ctx context.Context, userID uuid.UUID, req *dto.CreateBoardRequest) (*dto.BoardResponse, error)
	GetBoardFunc    func(ctx context.Context, userID, boardID uuid.UUID) (*dto.BoardResponse, error)
	ListBoardsFunc  func(ctx context.Context, userID uuid.UUID, params url.Values) (*dto.PageResponse, error)
	UpdateBoardFunc func(ctx context.Context, userID, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error)
	DeleteBoardFunc func(ctx context.Context, userID, boardID uuid.UUID) error
}

func (m *MockBoardService) CreateBoard(ctx context.Context, userID uuid.UUID, req *dto.CreateBoardRequest) (*dto.BoardResponse, error) {
	if m.CreateBoardFunc != nil {
		return m.CreateBoardFunc(ctx, userID, req)
	}
	return nil, nil
}

func (m *MockBoardService) GetBoard(ctx context.Context, userID, boardID uuid.UUID) (*dto.BoardResponse, error) {
	if m.GetBoardFunc != nil {
		return m.GetBoardFunc(ctx, userID, boardID)
	}
	return nil, nil
}

func (m *MockBoardService) ListBoards(ctx context.Context, userID uuid.UUID, params url.Values) (*dto.PageResponse, error) {
	if m.ListBoardsFunc != nil {
		return m.ListBoardsFunc(ctx, userID, params)
	}
	return &dto.PageResponse{}, nil
}

func (m *MockBoardService) UpdateBoard(ctx context.Context, userID, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error) {
	if m.UpdateBoardFunc != nil {
		return m.UpdateBoardFunc(ctx, userID, boardID, req)
	}
	return nil, nil
}

func (m *MockBoardService) DeleteBoard(ctx context.Context, userID, boardID uuid.UUID) error {
	if m.DeleteBoardFunc != nil {
		return m.DeleteBoardFunc(ctx, userID, boardID)
	}
	return nil
}

// MockParticipantService is a mock implementation of ParticipantService
type MockParticipantService struct {
	ListParticipantsFunc      func(ctx context.Context, userID, boardID uuid.UUID) ([]*dto.ParticipantResponse, error)
	AddParticipantFunc        func(ctx context.Context, userID, boardID uuid.UUID, req *dto.AddParticipantRequest) (*dto.ParticipantResponse, error)
	UpdateParticipantRoleFunc func(ctx context.Context, userID, boardID, memberID uuid.UUID, req *dto.UpdateParticipantRequest) (*dto.ParticipantResponse, error)
	RemoveParticipantFunc     func(ctx context.Context, userID, boardID, memberID uuid.UUID) error
}

func (m *MockParticipantService) ListParticipants(ctx context.Context, userID, boardID uuid.UUID) ([]*dto.ParticipantResponse, error) {
	if m.ListParticipantsFunc != nil {
		return m.ListParticipantsFunc(ctx, userID, boardID)
	}
	return nil, nil
}

func (m *MockParticipantService) AddParticipant(ctx context.Context, userID, boardID uuid.UUID, req *dto.AddParticipantRequest) (*dto.ParticipantResponse, error) {
	if m.AddParticipantFunc != nil {
		return m.AddParticipantFunc(ctx, userID, boardID, req)
	}
	return nil, nil
}

func (m *MockParticipantService) UpdateParticipantRole(ctx context.Context, userID, boardID, memberID uuid.UUID, req *dto.UpdateParticipantRequest) (*dto.ParticipantResponse, error) {
	if m.UpdateParticipantRoleFunc != nil {
		return m.UpdateParticipantRoleFunc(ctx, userID, boardID, memberID, req)
	}
	return nil, nil
}

func (m *MockParticipantService) RemoveParticipant(ctx context.Context, userID, boardID, memberID uuid.UUID) error {
	if m.RemoveParticipantFunc != nil {
		return m.RemoveParticipantFunc(ctx, userID, boardID, memberID)
	}
	return nil
}

// MockGoalService is a mock implementation of GoalService
type MockGoalService struct {
	CreateGoalFunc func(ctx context.Context, userID uuid.UUID, req *dto.CreateGoalRequest) (*dto.GoalResponse, error)
	GetGoalFunc    func(ctx context.Context, userID, goalID uuid.UUID) (*dto.GoalResponse, error)
	ListGoalsFunc  func(ctx context.Context, userID uuid.UUID, params url.Values) (*dto.PageResponse, error)
	UpdateGoalFunc func(ctx context.Context, userID, goalID uuid.UUID, req *dto.UpdateGoalRequest) (*dto.GoalResponse, error)
	DeleteGoalFunc func(ctx context.Context, userID, goalID uuid.UUID) (*dto.GoalResponse, error)
}

func (m *MockGoalService) CreateGoal(ctx context.Context, userID uuid.UUID, req *dto.CreateGoalRequest) (*dto.GoalResponse, error) {
	if m.CreateGoalFunc != nil {
		return m.CreateGoalFunc(ctx, userID, req)
	}
	return nil, nil
}

func (m *MockGoalService) GetGoal(ctx context.Context, userID, goalID uuid.UUID) (*dto.GoalResponse, error) {
	if m.GetGoalFunc != nil {
		return m.GetGoalFunc(ctx, userID, goalID)
	}
	return nil, nil
}

func (m *MockGoalService) ListGoals(ctx context.Context, userID uuid.UUID, params url.Values) (*dto.PageResponse, error) {
	if m.ListGoalsFunc != nil {
		return m.ListGoalsFunc(ctx, userID, params)
	}
	return &dto.PageResponse{}, nil
}

func (m *MockGoalService) UpdateGoal(ctx context.Context, userID, goalID uuid.UUID, req *dto.UpdateGoalRequest) (*dto.GoalResponse, error) {
	if m.UpdateGoalFunc != nil {
		return m.UpdateGoalFunc(ctx, userID, goalID, req)
	}
	return nil, nil
}

func (m *MockGoalService) DeleteGoal(ctx context.Context, userID, goalID uuid.UUID) (*dto.GoalResponse, error) {
	if m.DeleteGoalFunc != nil {
		return m.DeleteGoalFunc(ctx, userID, goalID)
	}
	return nil, nil
}
