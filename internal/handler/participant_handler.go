package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"goal-board-api/internal/dto"
	"goal-board-api/internal/response"
	"goal-board-api/internal/service"
)

type ParticipantHandler struct {
	participantService service.ParticipantService
	logger             *zap.Logger
}

func NewParticipantHandler(participantService service.ParticipantService, logger *zap.Logger) *ParticipantHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ParticipantHandler{
		participantService: participantService,
		logger:             logger,
	}
}

// GetParticipants godoc
// @Summary      Board의 Participant 목록 조회
// @Description  특정 Board의 모든 참여자를 조회합니다
// @Tags         participants
// @Produce      json
// @Security     BearerAuth
// @Param        boardId path string true "Board ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.ParticipantResponse} "Participant 목록 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 Board ID"
// @Failure      404 {object} response.ErrorResponse "Board를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/{boardId}/participants [get]
func (h *ParticipantHandler) GetParticipants(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	boardID, ok := parseIDParam(c, "boardId", "board")
	if !ok {
		return
	}

	participants, err := h.participantService.ListParticipants(c.Request.Context(), userID, boardID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, participants)
}

// AddParticipant godoc
// @Summary      Participant 추가
// @Description  Board에 writer 또는 reader를 추가합니다. owner만 가능합니다
// @Tags         participants
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        boardId path string true "Board ID (UUID)"
// @Param        request body dto.AddParticipantRequest true "Participant 추가 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.ParticipantResponse} "Participant 추가 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      403 {object} response.ErrorResponse "권한 없음"
// @Failure      404 {object} response.ErrorResponse "Board를 찾을 수 없음"
// @Failure      409 {object} response.ErrorResponse "이미 참여 중인 사용자"
// @Router       /boards/{boardId}/participants [post]
func (h *ParticipantHandler) AddParticipant(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	boardID, ok := parseIDParam(c, "boardId", "board")
	if !ok {
		return
	}

	var req dto.AddParticipantRequest
	if err := bindCreateJSON(c, &req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	participant, err := h.participantService.AddParticipant(c.Request.Context(), userID, boardID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, participant)
}

// UpdateParticipant godoc
// @Summary      Participant 역할 변경
// @Description  owner가 아닌 참여자의 역할을 변경합니다
// @Tags         participants
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        boardId path string true "Board ID (UUID)"
// @Param        userId path string true "User ID (UUID)"
// @Param        request body dto.UpdateParticipantRequest true "역할 변경 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.ParticipantResponse} "역할 변경 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청 또는 owner 변경 시도"
// @Failure      403 {object} response.ErrorResponse "권한 없음"
// @Failure      404 {object} response.ErrorResponse "Board 또는 Participant를 찾을 수 없음"
// @Router       /boards/{boardId}/participants/{userId} [patch]
func (h *ParticipantHandler) UpdateParticipant(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	boardID, ok := parseIDParam(c, "boardId", "board")
	if !ok {
		return
	}
	memberID, ok := parseIDParam(c, "userId", "user")
	if !ok {
		return
	}

	var req dto.UpdateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	participant, err := h.participantService.UpdateParticipantRole(c.Request.Context(), userID, boardID, memberID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, participant)
}

// RemoveParticipant godoc
// @Summary      Participant 제거
// @Description  Board에서 참여자를 제거합니다. owner는 제거할 수 없습니다
// @Tags         participants
// @Produce      json
// @Security     BearerAuth
// @Param        boardId path string true "Board ID (UUID)"
// @Param        userId path string true "User ID (UUID)"
// @Success      204 "Participant 제거 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 ID 또는 owner 제거 시도"
// @Failure      404 {object} response.ErrorResponse "Board 또는 Participant를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/{boardId}/participants/{userId} [delete]
func (h *ParticipantHandler) RemoveParticipant(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	boardID, ok := parseIDParam(c, "boardId", "board")
	if !ok {
		return
	}
	memberID, ok := parseIDParam(c, "userId", "user")
	if !ok {
		return
	}

	if err := h.participantService.RemoveParticipant(c.Request.Context(), userID, boardID, memberID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
