package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateGoalRequest represents the request to create a goal
// @Description status and priority accept the integer code or the name
// @Description status: 1=to_do 2=in_progress 3=done (archived is not allowed)
// @Description priority: 1=low 2=medium 3=high 4=critical
type CreateGoalRequest struct {
	CategoryID  uuid.UUID  `json:"categoryId" binding:"required" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
	Title       string     `json:"title" binding:"required" example:"Run a half marathon"`
	Description string     `json:"description,omitempty" example:"Before October"`
	DueDate     *time.Time `json:"dueDate,omitempty" example:"2024-10-01T00:00:00Z"`
	Status      *Enum      `json:"status,omitempty" swaggertype:"string" example:"to_do"`
	Priority    *Enum      `json:"priority,omitempty" swaggertype:"string" example:"high"`
}

// UpdateGoalRequest represents a partial goal update. Omitted fields are kept.
// @Description categoryId moves the goal to another category of a board the user can write to
// @Description clearDueDate removes the due date
type UpdateGoalRequest struct {
	CategoryID   *uuid.UUID `json:"categoryId,omitempty"`
	Title        *string    `json:"title,omitempty"`
	Description  *string    `json:"description,omitempty"`
	DueDate      *time.Time `json:"dueDate,omitempty"`
	ClearDueDate bool       `json:"clearDueDate,omitempty"`
	Status       *Enum      `json:"status,omitempty" swaggertype:"string"`
	Priority     *Enum      `json:"priority,omitempty" swaggertype:"string"`
}

// GoalResponse represents the goal response
type GoalResponse struct {
	ID          uuid.UUID  `json:"id"`
	CategoryID  uuid.UUID  `json:"categoryId"`
	UserID      uuid.UUID  `json:"userId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Status      int        `json:"status" example:"1"`
	Priority    int        `json:"priority" example:"2"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
