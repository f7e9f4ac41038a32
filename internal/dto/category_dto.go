package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateCategoryRequest represents the request to create a goal category
type CreateCategoryRequest struct {
	BoardID   uuid.UUID `json:"boardId" binding:"required" example:"1275eac5-f0f9-4bee-8235-576a0042f42b"`
	Title     string    `json:"title" binding:"required" example:"Health"`
	IsDeleted bool      `json:"isDeleted,omitempty" swaggerignore:"true"`
}

// UpdateCategoryRequest represents the request to rename a category
type UpdateCategoryRequest struct {
	Title *string `json:"title,omitempty" example:"Fitness"`
}

// CategoryResponse represents the category response
type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	BoardID   uuid.UUID `json:"boardId"`
	UserID    uuid.UUID `json:"userId"`
	Title     string    `json:"title"`
	IsDeleted bool      `json:"isDeleted"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
