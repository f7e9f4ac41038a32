package dto

import (
	"time"

	"github.com/google/uuid"
)

// AddParticipantRequest represents the request to add a participant to a board
// @Description role accepts the integer code or the name: 2=writer 3=reader
// @Description Defaults to reader. A board has exactly one owner.
type AddParticipantRequest struct {
	UserID uuid.UUID `json:"userId" binding:"required" example:"a1b2c3d4-e5f6-7890-abcd-ef1234567890"`
	Role   *Enum     `json:"role,omitempty" swaggertype:"string" example:"writer"`
}

// UpdateParticipantRequest represents the request to change a participant's role
type UpdateParticipantRequest struct {
	Role Enum `json:"role" binding:"required" swaggertype:"string" example:"reader"`
}

// ParticipantResponse represents the participant response
// @Description Participant information for a board
type ParticipantResponse struct {
	ID        uuid.UUID `json:"id" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
	BoardID   uuid.UUID `json:"boardId" example:"1275eac5-f0f9-4bee-8235-576a0042f42b"`
	UserID    uuid.UUID `json:"userId" example:"a1b2c3d4-e5f6-7890-abcd-ef1234567890"`
	Role      int       `json:"role" example:"2"`
	CreatedAt time.Time `json:"createdAt" example:"2024-01-15T10:30:00Z"`
}
