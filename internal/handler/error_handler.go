package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"goal-board-api/internal/response"
)

// handleServiceError maps service layer errors to appropriate HTTP responses
func handleServiceError(c *gin.Context, logger *zap.Logger, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Resource not found")
		return
	}

	var appErr *response.AppError
	if errors.As(err, &appErr) {
		statusCode := mapErrorCodeToHTTPStatus(appErr.Code)
		if statusCode >= http.StatusInternalServerError {
			logger.Error("Service error",
				zap.String("code", appErr.Code),
				zap.String("message", appErr.Message),
				zap.String("details", appErr.Details),
				zap.String("path", c.Request.URL.Path),
			)
		} else {
			logger.Debug("Request rejected",
				zap.String("code", appErr.Code),
				zap.String("message", appErr.Message),
				zap.String("path", c.Request.URL.Path),
			)
		}
		response.SendError(c, statusCode, appErr.Code, appErr.Message)
		return
	}

	logger.Error("Unhandled error",
		zap.String("type", fmt.Sprintf("%T", err)),
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
	)
	response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Internal server error")
}

// mapErrorCodeToHTTPStatus maps error codes to HTTP status codes
func mapErrorCodeToHTTPStatus(code string) int {
	switch code {
	case response.ErrCodeNotFound:
		return http.StatusNotFound
	case response.ErrCodeAlreadyExists, response.ErrCodeConflict:
		return http.StatusConflict
	case response.ErrCodeValidation:
		return http.StatusBadRequest
	case response.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case response.ErrCodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// getUserID reads the authenticated user set by the auth middleware.
// It writes a 401 and returns false when the user is missing.
func getUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "User ID not found in context")
		return uuid.Nil, false
	}
	userID, ok := v.(uuid.UUID)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Invalid user ID format")
		return uuid.Nil, false
	}
	return userID, true
}

// parseIDParam parses a UUID path parameter, writing a 400 on failure
func parseIDParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid "+label+" ID")
		return uuid.Nil, false
	}
	return id, true
}
