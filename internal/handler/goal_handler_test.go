package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"goal-board-api/internal/dto"
	"goal-board-api/internal/response"
)

func TestGoalHandler_UpdateGoal_PartialBody(t *testing.T) {
	userID := uuid.New()
	goalID := uuid.New()

	var got *dto.UpdateGoalRequest
	mockService := &MockGoalService{
		UpdateGoalFunc: func(ctx context.Context, u, id uuid.UUID, req *dto.UpdateGoalRequest) (*dto.GoalResponse, error) {
			got = req
			return &dto.GoalResponse{ID: id, Title: "Run", Status: 3}, nil
		},
	}
	handler := NewGoalHandler(mockService, zap.NewNop())
	router := setupTestRouter(userID)
	router.PATCH("/goals/:goalId", handler.UpdateGoal)

	req := httptest.NewRequest(http.MethodPatch, "/goals/"+goalID.String(),
		bytes.NewBufferString(`{"status":"done","dueDate":"2024-10-01T00:00:00Z"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, got)
	assert.Nil(t, got.Title)
	assert.Nil(t, got.CategoryID)
	require.NotNil(t, got.Status)
	assert.Equal(t, dto.Enum("done"), *got.Status)
	require.NotNil(t, got.DueDate)
	assert.True(t, got.DueDate.Equal(time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)))
}

func TestGoalHandler_DeleteGoal_ReturnsArchivedGoal(t *testing.T) {
	userID := uuid.New()
	goalID := uuid.New()

	tests := []struct {
		name           string
		mockService    func(*MockGoalService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "성공: 보관된 목표 반환",
			mockService: func(m *MockGoalService) {
				m.DeleteGoalFunc = func(ctx context.Context, u, id uuid.UUID) (*dto.GoalResponse, error) {
					return &dto.GoalResponse{ID: id, Title: "Run", Status: 4}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp struct {
					Data dto.GoalResponse `json:"data"`
				}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, goalID, resp.Data.ID)
				assert.Equal(t, 4, resp.Data.Status)
			},
		},
		{
			name: "실패: 이미 보관된 목표",
			mockService: func(m *MockGoalService) {
				m.DeleteGoalFunc = func(ctx context.Context, u, id uuid.UUID) (*dto.GoalResponse, error) {
					return nil, response.NewAppError(response.ErrCodeConflict, "Goal already archived", "")
				}
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockGoalService{}
			tt.mockService(mockService)
			handler := NewGoalHandler(mockService, zap.NewNop())
			router := setupTestRouter(userID)
			router.DELETE("/goals/:goalId", handler.DeleteGoal)

			req := httptest.NewRequest(http.MethodDelete, "/goals/"+goalID.String(), nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestGoalHandler_ListGoals_InvalidQuery(t *testing.T) {
	mockService := &MockGoalService{
		ListGoalsFunc: func(ctx context.Context, u uuid.UUID, params url.Values) (*dto.PageResponse, error) {
			return nil, response.NewAppError(response.ErrCodeValidation, "Invalid query parameters", "priority__gte: operator not supported")
		},
	}
	handler := NewGoalHandler(mockService, zap.NewNop())
	router := setupTestRouter(uuid.New())
	router.GET("/goals", handler.ListGoals)

	req := httptest.NewRequest(http.MethodGet, "/goals?priority__gte=2", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotContains(t, w.Body.String(), "operator not supported", "details stay server-side")
}
