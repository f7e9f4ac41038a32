package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"goal-board-api/internal/dto"
	"goal-board-api/internal/response"
	"goal-board-api/internal/service"
)

type BoardHandler struct {
	boardService service.BoardService
	logger       *zap.Logger
}

func NewBoardHandler(boardService service.BoardService, logger *zap.Logger) *BoardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BoardHandler{
		boardService: boardService,
		logger:       logger,
	}
}

// CreateBoard godoc
// @Summary      Board 생성
// @Description  새 Board를 생성합니다. 요청자는 Board의 owner가 됩니다
// @Tags         boards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateBoardRequest true "Board 생성 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.BoardResponse} "Board 생성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      401 {object} response.ErrorResponse "인증 실패"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards [post]
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req dto.CreateBoardRequest
	if err := bindCreateJSON(c, &req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	board, err := h.boardService.CreateBoard(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, board)
}

// ListBoards godoc
// @Summary      Board 목록 조회
// @Description  요청자가 참여 중인 삭제되지 않은 Board 목록을 조회합니다
// @Tags         boards
// @Produce      json
// @Security     BearerAuth
// @Param        ordering query string false "정렬 (title, created, -title, -created)"
// @Param        limit query int false "페이지 크기 (최대 100)"
// @Param        offset query int false "오프셋"
// @Success      200 {object} response.SuccessResponse{data=dto.PageResponse{items=[]dto.BoardResponse}} "Board 목록 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 쿼리 파라미터"
// @Failure      401 {object} response.ErrorResponse "인증 실패"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards [get]
func (h *BoardHandler) ListBoards(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	page, err := h.boardService.ListBoards(c.Request.Context(), userID, c.Request.URL.Query())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, page)
}

// GetBoard godoc
// @Summary      Board 조회
// @Tags         boards
// @Produce      json
// @Security     BearerAuth
// @Param        boardId path string true "Board ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.BoardResponse} "Board 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 Board ID"
// @Failure      404 {object} response.ErrorResponse "Board를 찾을 수 없음"
// @Router       /boards/{boardId} [get]
func (h *BoardHandler) GetBoard(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	boardID, ok := parseIDParam(c, "boardId", "board")
	if !ok {
		return
	}

	board, err := h.boardService.GetBoard(c.Request.Context(), userID, boardID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, board)
}

// UpdateBoard godoc
// @Summary      Board 수정
// @Description  Board 제목을 변경합니다. owner만 가능합니다
// @Tags         boards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        boardId path string true "Board ID (UUID)"
// @Param        request body dto.UpdateBoardRequest true "Board 수정 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.BoardResponse} "Board 수정 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      403 {object} response.ErrorResponse "권한 없음"
// @Failure      404 {object} response.ErrorResponse "Board를 찾을 수 없음"
// @Router       /boards/{boardId} [patch]
func (h *BoardHandler) UpdateBoard(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	boardID, ok := parseIDParam(c, "boardId", "board")
	if !ok {
		return
	}

	var req dto.UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	board, err := h.boardService.UpdateBoard(c.Request.Context(), userID, boardID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, board)
}

// DeleteBoard godoc
// @Summary      Board 삭제
// @Description  Board를 삭제합니다. 하위 카테고리는 삭제되고 목표는 보관(archived) 처리됩니다
// @Tags         boards
// @Produce      json
// @Security     BearerAuth
// @Param        boardId path string true "Board ID (UUID)"
// @Success      204 "Board 삭제 성공"
// @Failure      403 {object} response.ErrorResponse "권한 없음"
// @Failure      404 {object} response.ErrorResponse "Board를 찾을 수 없음"
// @Failure      409 {object} response.ErrorResponse "이미 삭제된 Board"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/{boardId} [delete]
func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	boardID, ok := parseIDParam(c, "boardId", "board")
	if !ok {
		return
	}

	if err := h.boardService.DeleteBoard(c.Request.Context(), userID, boardID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
