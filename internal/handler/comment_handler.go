package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"goal-board-api/internal/dto"
	"goal-board-api/internal/response"
	"goal-board-api/internal/service"
)

type CommentHandler struct {
	commentService service.CommentService
	logger         *zap.Logger
}

func NewCommentHandler(commentService service.CommentService, logger *zap.Logger) *CommentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CommentHandler{
		commentService: commentService,
		logger:         logger,
	}
}

// CreateComment godoc
// @Summary      댓글 작성
// @Description  보관되지 않은 목표에만 댓글을 작성할 수 있습니다
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateCommentRequest true "댓글 작성 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.CommentResponse} "댓글 작성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      403 {object} response.ErrorResponse "권한 없음"
// @Failure      404 {object} response.ErrorResponse "목표를 찾을 수 없음"
// @Router       /comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := bindCreateJSON(c, &req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, comment)
}

// ListComments godoc
// @Summary      댓글 목록 조회
// @Description  보관된 목표의 댓글도 포함됩니다. 기본 정렬은 최신순입니다
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        goal query string false "Goal ID"
// @Param        goal__in query string false "쉼표로 구분된 Goal ID 목록"
// @Param        ordering query string false "정렬 (created, -created)"
// @Param        limit query int false "페이지 크기 (최대 100)"
// @Param        offset query int false "오프셋"
// @Success      200 {object} response.SuccessResponse{data=dto.PageResponse{items=[]dto.CommentResponse}}
// @Failure      400 {object} response.ErrorResponse "잘못된 쿼리 파라미터"
// @Router       /comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	page, err := h.commentService.ListComments(c.Request.Context(), userID, c.Request.URL.Query())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, page)
}

// GetComment godoc
// @Summary      댓글 조회
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        commentId path string true "Comment ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.CommentResponse}
// @Failure      404 {object} response.ErrorResponse "댓글을 찾을 수 없음"
// @Router       /comments/{commentId} [get]
func (h *CommentHandler) GetComment(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	commentID, ok := parseIDParam(c, "commentId", "comment")
	if !ok {
		return
	}

	comment, err := h.commentService.GetComment(c.Request.Context(), userID, commentID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, comment)
}

// UpdateComment godoc
// @Summary      댓글 수정
// @Description  작성자만 수정할 수 있습니다
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        commentId path string true "Comment ID (UUID)"
// @Param        request body dto.UpdateCommentRequest true "댓글 수정 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.CommentResponse}
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      403 {object} response.ErrorResponse "작성자가 아님"
// @Failure      404 {object} response.ErrorResponse "댓글을 찾을 수 없음"
// @Router       /comments/{commentId} [patch]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	commentID, ok := parseIDParam(c, "commentId", "comment")
	if !ok {
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	comment, err := h.commentService.UpdateComment(c.Request.Context(), userID, commentID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, comment)
}

// DeleteComment godoc
// @Summary      댓글 삭제
// @Description  작성자만 삭제할 수 있습니다
// @Tags         comments
// @Security     BearerAuth
// @Param        commentId path string true "Comment ID (UUID)"
// @Success      204 "댓글 삭제 성공"
// @Failure      403 {object} response.ErrorResponse "작성자가 아님"
// @Failure      404 {object} response.ErrorResponse "댓글을 찾을 수 없음"
// @Router       /comments/{commentId} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	commentID, ok := parseIDParam(c, "commentId", "comment")
	if !ok {
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), userID, commentID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
