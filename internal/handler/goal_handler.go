package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"goal-board-api/internal/dto"
	"goal-board-api/internal/response"
	"goal-board-api/internal/service"
)

type GoalHandler struct {
	goalService service.GoalService
	logger      *zap.Logger
}

func NewGoalHandler(goalService service.GoalService, logger *zap.Logger) *GoalHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GoalHandler{
		goalService: goalService,
		logger:      logger,
	}
}

// CreateGoal godoc
// @Summary      목표 생성
// @Tags         goals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateGoalRequest true "목표 생성 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.GoalResponse} "목표 생성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      403 {object} response.ErrorResponse "권한 없음"
// @Failure      404 {object} response.ErrorResponse "카테고리를 찾을 수 없음"
// @Router       /goals [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req dto.CreateGoalRequest
	if err := bindCreateJSON(c, &req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	goal, err := h.goalService.CreateGoal(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, goal)
}

// ListGoals godoc
// @Summary      목표 목록 조회
// @Description  보관(archived)된 목표는 목록에 포함되지 않습니다
// @Tags         goals
// @Produce      json
// @Security     BearerAuth
// @Param        category query string false "Category ID"
// @Param        category__in query string false "쉼표로 구분된 Category ID 목록"
// @Param        status query string false "상태 (to_do, in_progress, done 또는 코드)"
// @Param        status__in query string false "쉼표로 구분된 상태 목록"
// @Param        priority query string false "우선순위 (low, medium, high, critical 또는 코드)"
// @Param        priority__in query string false "쉼표로 구분된 우선순위 목록"
// @Param        due_date__gte query string false "마감일 하한 (RFC3339 또는 YYYY-MM-DD)"
// @Param        due_date__lte query string false "마감일 상한 (RFC3339 또는 YYYY-MM-DD)"
// @Param        search query string false "제목/설명 검색"
// @Param        ordering query string false "정렬 (title, created, priority, status, due_date)"
// @Param        limit query int false "페이지 크기 (최대 100)"
// @Param        offset query int false "오프셋"
// @Success      200 {object} response.SuccessResponse{data=dto.PageResponse{items=[]dto.GoalResponse}} "목표 목록 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 쿼리 파라미터"
// @Router       /goals [get]
func (h *GoalHandler) ListGoals(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	page, err := h.goalService.ListGoals(c.Request.Context(), userID, c.Request.URL.Query())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, page)
}

// GetGoal godoc
// @Summary      목표 조회
// @Tags         goals
// @Produce      json
// @Security     BearerAuth
// @Param        goalId path string true "Goal ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.GoalResponse}
// @Failure      404 {object} response.ErrorResponse "목표를 찾을 수 없음"
// @Router       /goals/{goalId} [get]
func (h *GoalHandler) GetGoal(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	goalID, ok := parseIDParam(c, "goalId", "goal")
	if !ok {
		return
	}

	goal, err := h.goalService.GetGoal(c.Request.Context(), userID, goalID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, goal)
}

// UpdateGoal godoc
// @Summary      목표 수정
// @Description  전달된 필드만 변경합니다. categoryId로 다른 카테고리로 이동할 수 있습니다
// @Tags         goals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        goalId path string true "Goal ID (UUID)"
// @Param        request body dto.UpdateGoalRequest true "목표 수정 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.GoalResponse}
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      403 {object} response.ErrorResponse "권한 없음"
// @Failure      404 {object} response.ErrorResponse "목표를 찾을 수 없음"
// @Router       /goals/{goalId} [patch]
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	goalID, ok := parseIDParam(c, "goalId", "goal")
	if !ok {
		return
	}

	var req dto.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	goal, err := h.goalService.UpdateGoal(c.Request.Context(), userID, goalID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, goal)
}

// DeleteGoal godoc
// @Summary      목표 삭제 (보관)
// @Description  목표를 archived 상태로 전환하고 보관된 목표를 반환합니다. 댓글은 유지됩니다
// @Tags         goals
// @Produce      json
// @Security     BearerAuth
// @Param        goalId path string true "Goal ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.GoalResponse} "보관된 목표"
// @Failure      403 {object} response.ErrorResponse "권한 없음"
// @Failure      404 {object} response.ErrorResponse "목표를 찾을 수 없음"
// @Failure      409 {object} response.ErrorResponse "이미 보관된 목표"
// @Router       /goals/{goalId} [delete]
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	goalID, ok := parseIDParam(c, "goalId", "goal")
	if !ok {
		return
	}

	goal, err := h.goalService.DeleteGoal(c.Request.Context(), userID, goalID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, goal)
}
