package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateBoardRequest represents the request to create a board
// @Description The requesting user becomes the board owner
type CreateBoardRequest struct {
	Title     string `json:"title" binding:"required" example:"Personal goals"`
	IsDeleted bool   `json:"isDeleted,omitempty" swaggerignore:"true"`
}

// UpdateBoardRequest represents the request to rename a board
type UpdateBoardRequest struct {
	Title *string `json:"title,omitempty" example:"Team goals"`
}

// BoardResponse represents the board response
type BoardResponse struct {
	ID        uuid.UUID `json:"id" example:"1275eac5-f0f9-4bee-8235-576a0042f42b"`
	Title     string    `json:"title" example:"Personal goals"`
	IsDeleted bool      `json:"isDeleted" example:"false"`
	CreatedAt time.Time `json:"createdAt" example:"2024-01-15T10:30:00Z"`
	UpdatedAt time.Time `json:"updatedAt" example:"2024-01-15T10:30:00Z"`
}
