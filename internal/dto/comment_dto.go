package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateCommentRequest represents the request to create a new comment
// @Description Comments can only be added to goals that are not archived
type CreateCommentRequest struct {
	GoalID uuid.UUID `json:"goalId" binding:"required"`
	Text   string    `json:"text" binding:"required"`
}

// UpdateCommentRequest represents the request to update a comment
type UpdateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// CommentResponse represents the comment response
type CommentResponse struct {
	ID        uuid.UUID `json:"id"`
	GoalID    uuid.UUID `json:"goalId"`
	UserID    uuid.UUID `json:"userId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
