package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"goal-board-api/internal/dto"
	"goal-board-api/internal/response"
	"goal-board-api/internal/service"
)

type CategoryHandler struct {
	categoryService service.CategoryService
	logger          *zap.Logger
}

func NewCategoryHandler(categoryService service.CategoryService, logger *zap.Logger) *CategoryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger,
	}
}

// CreateCategory godoc
// @Summary      카테고리 생성
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateCategoryRequest true "카테고리 생성 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.CategoryResponse} "카테고리 생성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      403 {object} response.ErrorResponse "권한 없음"
// @Failure      404 {object} response.ErrorResponse "Board를 찾을 수 없음"
// @Router       /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if err := bindCreateJSON(c, &req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, category)
}

// ListCategories godoc
// @Summary      카테고리 목록 조회
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        board query string false "Board ID"
// @Param        board__in query string false "쉼표로 구분된 Board ID 목록"
// @Param        search query string false "제목 검색"
// @Param        ordering query string false "정렬 (title, created)"
// @Param        limit query int false "페이지 크기 (최대 100)"
// @Param        offset query int false "오프셋"
// @Success      200 {object} response.SuccessResponse{data=dto.PageResponse{items=[]dto.CategoryResponse}} "카테고리 목록 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 쿼리 파라미터"
// @Router       /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	page, err := h.categoryService.ListCategories(c.Request.Context(), userID, c.Request.URL.Query())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, page)
}

// GetCategory godoc
// @Summary      카테고리 조회
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        categoryId path string true "Category ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.CategoryResponse}
// @Failure      404 {object} response.ErrorResponse "카테고리를 찾을 수 없음"
// @Router       /categories/{categoryId} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	categoryID, ok := parseIDParam(c, "categoryId", "category")
	if !ok {
		return
	}

	category, err := h.categoryService.GetCategory(c.Request.Context(), userID, categoryID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, category)
}

// UpdateCategory godoc
// @Summary      카테고리 수정
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        categoryId path string true "Category ID (UUID)"
// @Param        request body dto.UpdateCategoryRequest true "카테고리 수정 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.CategoryResponse}
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      403 {object} response.ErrorResponse "권한 없음"
// @Failure      404 {object} response.ErrorResponse "카테고리를 찾을 수 없음"
// @Router       /categories/{categoryId} [patch]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	categoryID, ok := parseIDParam(c, "categoryId", "category")
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), userID, categoryID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, category)
}

// DeleteCategory godoc
// @Summary      카테고리 삭제
// @Description  카테고리를 삭제하고 하위 목표를 보관(archived) 처리합니다
// @Tags         categories
// @Security     BearerAuth
// @Param        categoryId path string true "Category ID (UUID)"
// @Success      204 "카테고리 삭제 성공"
// @Failure      403 {object} response.ErrorResponse "권한 없음"
// @Failure      404 {object} response.ErrorResponse "카테고리를 찾을 수 없음"
// @Failure      409 {object} response.ErrorResponse "이미 삭제된 카테고리"
// @Router       /categories/{categoryId} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	categoryID, ok := parseIDParam(c, "categoryId", "category")
	if !ok {
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), userID, categoryID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
