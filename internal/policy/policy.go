// Package policy holds the single authorization decision used by every service.
//
// A missing participant row always yields NotFound so that the existence of a
// board (and everything under it) is not revealed to outsiders. Participants
// who lack the required role get Forbidden.
package policy

import (
	"github.com/google/uuid"

	"goal-board-api/internal/domain"
	"goal-board-api/internal/response"
)

// Action is an operation a user attempts on a target
type Action int

const (
	ActionRead Action = iota + 1
	ActionCreate
	ActionUpdate
	ActionDelete
	ActionManageParticipants
)

// Kind identifies the entity type of a target
type Kind int

const (
	KindBoard Kind = iota + 1
	KindCategory
	KindGoal
	KindComment
	KindParticipant
)

// Decision is the outcome of Decide
type Decision int

const (
	Allow Decision = iota
	Forbidden
	NotFound
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case Forbidden:
		return "forbidden"
	default:
		return "not_found"
	}
}

// Target is what an action is applied to. AuthorID is only consulted for comments.
type Target struct {
	Kind     Kind
	AuthorID uuid.UUID
}

// Decide returns whether userID, holding participant on the owning board, may
// perform action on target
func Decide(userID uuid.UUID, participant *domain.Participant, action Action, target Target) Decision {
	if participant == nil || participant.UserID != userID {
		return NotFound
	}

	role := participant.Role
	if !role.Valid() {
		return Forbidden
	}

	if action == ActionRead {
		return Allow
	}

	switch target.Kind {
	case KindBoard:
		if role == domain.RoleOwner && (action == ActionUpdate || action == ActionDelete) {
			return Allow
		}
		return Forbidden

	case KindParticipant:
		if role == domain.RoleOwner {
			return Allow
		}
		return Forbidden

	case KindComment:
		if role == domain.RoleReader {
			return Forbidden
		}
		if action == ActionCreate {
			return Allow
		}
		if target.AuthorID == userID {
			return Allow
		}
		return Forbidden

	case KindCategory, KindGoal:
		if role == domain.RoleOwner || role == domain.RoleWriter {
			return Allow
		}
		return Forbidden
	}

	return Forbidden
}

// Authorize converts a non-Allow decision into the service error returned to callers
func Authorize(userID uuid.UUID, participant *domain.Participant, action Action, target Target) error {
	switch Decide(userID, participant, action, target) {
	case Allow:
		return nil
	case Forbidden:
		return response.NewAppError(response.ErrCodeForbidden, "You do not have permission to perform this action", "")
	default:
		return response.NewAppError(response.ErrCodeNotFound, notFoundMessage(target.Kind), "")
	}
}

func notFoundMessage(kind Kind) string {
	switch kind {
	case KindCategory:
		return "Category not found"
	case KindGoal:
		return "Goal not found"
	case KindComment:
		return "Comment not found"
	default:
		return "Board not found"
	}
}
