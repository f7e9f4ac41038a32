package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"goal-board-api/internal/dto"
	"goal-board-api/internal/response"
)

func TestBoardHandler_CreateBoard(t *testing.T) {
	userID := uuid.New()
	boardID := uuid.New()

	tests := []struct {
		name           string
		userID         uuid.UUID
		requestBody    interface{}
		mockService    func(*MockBoardService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:        "성공: Board 생성",
			userID:      userID,
			requestBody: dto.CreateBoardRequest{Title: "Personal goals"},
			mockService: func(m *MockBoardService) {
				m.CreateBoardFunc = func(ctx context.Context, u uuid.UUID, req *dto.CreateBoardRequest) (*dto.BoardResponse, error) {
					assert.Equal(t, userID, u)
					return &dto.BoardResponse{ID: boardID, Title: req.Title}, nil
				}
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp response.SuccessResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.True(t, resp.Success)

				dataBytes, _ := json.Marshal(resp.Data)
				var board dto.BoardResponse
				require.NoError(t, json.Unmarshal(dataBytes, &board))
				assert.Equal(t, boardID, board.ID)
				assert.Equal(t, "Personal goals", board.Title)
			},
		},
		{
			name:           "실패: 잘못된 요청 본문",
			userID:         userID,
			requestBody:    "invalid json",
			mockService:    func(m *MockBoardService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "실패: 제목 누락",
			userID:         userID,
			requestBody:    map[string]interface{}{},
			mockService:    func(m *MockBoardService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "실패: 선언되지 않은 필드 is_deleted",
			userID:      userID,
			requestBody: map[string]interface{}{"title": "Personal goals", "is_deleted": true},
			mockService: func(m *MockBoardService) {
				m.CreateBoardFunc = func(ctx context.Context, u uuid.UUID, req *dto.CreateBoardRequest) (*dto.BoardResponse, error) {
					t.Error("service must not be called for a body with unknown fields")
					return nil, nil
				}
			},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp response.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, response.ErrCodeValidation, resp.Error.Code)
			},
		},
		{
			name:           "실패: 인증 정보 없음",
			userID:         uuid.Nil,
			requestBody:    dto.CreateBoardRequest{Title: "Personal goals"},
			mockService:    func(m *MockBoardService) {},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			mockService := &MockBoardService{}
			tt.mockService(mockService)
			handler := NewBoardHandler(mockService, zap.NewNop())

			router := setupTestRouter(tt.userID)
			router.POST("/boards", handler.CreateBoard)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/boards", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			// When
			router.ServeHTTP(w, req)

			// Then
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestBoardHandler_ListBoards_PassesQuery(t *testing.T) {
	userID := uuid.New()
	var got url.Values
	mockService := &MockBoardService{
		ListBoardsFunc: func(ctx context.Context, u uuid.UUID, params url.Values) (*dto.PageResponse, error) {
			got = params
			return &dto.PageResponse{Items: []*dto.BoardResponse{}, Total: 0, Limit: 10}, nil
		},
	}
	handler := NewBoardHandler(mockService, zap.NewNop())
	router := setupTestRouter(userID)
	router.GET("/boards", handler.ListBoards)

	req := httptest.NewRequest(http.MethodGet, "/boards?ordering=-created&limit=10", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "-created", got.Get("ordering"))
	assert.Equal(t, "10", got.Get("limit"))
}

func TestBoardHandler_UpdateBoard_EmptyBodyReachesService(t *testing.T) {
	userID := uuid.New()
	boardID := uuid.New()
	called := false
	mockService := &MockBoardService{
		UpdateBoardFunc: func(ctx context.Context, u, id uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error) {
			called = true
			assert.Nil(t, req.Title)
			return &dto.BoardResponse{ID: id, Title: "Unchanged"}, nil
		},
	}
	handler := NewBoardHandler(mockService, zap.NewNop())
	router := setupTestRouter(userID)
	router.PATCH("/boards/:boardId", handler.UpdateBoard)

	req := httptest.NewRequest(http.MethodPatch, "/boards/"+boardID.String(), bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, called)
}

func TestBoardHandler_GetBoard(t *testing.T) {
	userID := uuid.New()
	boardID := uuid.New()

	tests := []struct {
		name           string
		boardID        string
		mockService    func(*MockBoardService)
		expectedStatus int
	}{
		{
			name:    "성공: Board 조회",
			boardID: boardID.String(),
			mockService: func(m *MockBoardService) {
				m.GetBoardFunc = func(ctx context.Context, u, id uuid.UUID) (*dto.BoardResponse, error) {
					return &dto.BoardResponse{ID: id, Title: "Test Board"}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "실패: 잘못된 UUID",
			boardID:        "invalid-uuid",
			mockService:    func(m *MockBoardService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "실패: Board가 존재하지 않음",
			boardID: boardID.String(),
			mockService: func(m *MockBoardService) {
				m.GetBoardFunc = func(ctx context.Context, u, id uuid.UUID) (*dto.BoardResponse, error) {
					return nil, response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockBoardService{}
			tt.mockService(mockService)
			handler := NewBoardHandler(mockService, zap.NewNop())

			router := setupTestRouter(userID)
			router.GET("/boards/:boardId", handler.GetBoard)

			req := httptest.NewRequest(http.MethodGet, "/boards/"+tt.boardID, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestBoardHandler_DeleteBoard(t *testing.T) {
	userID := uuid.New()
	boardID := uuid.New()

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
		expectedMsg    string
	}{
		{name: "성공: Board 삭제", expectedStatus: http.StatusNoContent},
		{
			name:           "실패: reader는 삭제 불가",
			err:            response.NewAppError(response.ErrCodeForbidden, "You do not have permission to perform this action", ""),
			expectedStatus: http.StatusForbidden,
			expectedCode:   response.ErrCodeForbidden,
		},
		{
			name:           "실패: 이미 삭제된 Board",
			err:            response.NewAppError(response.ErrCodeConflict, "Board already deleted", ""),
			expectedStatus: http.StatusConflict,
			expectedCode:   response.ErrCodeConflict,
		},
		{
			name:           "실패: cascade 실패는 operation failed",
			err:            response.NewAppError(response.ErrCodeInternal, "operation failed", ""),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   response.ErrCodeInternal,
			expectedMsg:    "operation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockBoardService{
				DeleteBoardFunc: func(ctx context.Context, u, id uuid.UUID) error {
					assert.Equal(t, boardID, id)
					return tt.err
				},
			}
			handler := NewBoardHandler(mockService, zap.NewNop())
			router := setupTestRouter(userID)
			router.DELETE("/boards/:boardId", handler.DeleteBoard)

			req := httptest.NewRequest(http.MethodDelete, "/boards/"+boardID.String(), nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode == "" {
				assert.Empty(t, w.Body.String())
				return
			}
			var resp response.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedCode, resp.Error.Code)
			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, resp.Error.Message)
			}
		})
	}
}
