package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"goal-board-api/internal/domain"
	"goal-board-api/internal/filter"
	"goal-board-api/internal/lifecycle"
	"goal-board-api/internal/policy"
	"goal-board-api/internal/repository"
	"goal-board-api/internal/response"
)

// Lifecycle is the cascade engine used by the delete operations
type Lifecycle interface {
	DeleteBoard(ctx context.Context, boardID uuid.UUID) (lifecycle.Result, error)
	DeleteCategory(ctx context.Context, categoryID uuid.UUID) (lifecycle.Result, error)
	ArchiveGoal(ctx context.Context, goalID uuid.UUID) (*domain.Goal, error)
}

// repoError maps a repository error to an AppError
func repoError(err error, notFoundMsg, failedMsg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return response.NewAppError(response.ErrCodeNotFound, notFoundMsg, "")
	}
	return response.NewAppError(response.ErrCodeInternal, failedMsg, err.Error())
}

func validationError(err error) error {
	return response.NewAppError(response.ErrCodeValidation, err.Error(), "")
}

func queryError(err error) error {
	var ferr *filter.Error
	if errors.As(err, &ferr) {
		return response.NewAppError(response.ErrCodeValidation, "Invalid query parameters", ferr.Error())
	}
	return response.NewAppError(response.ErrCodeInternal, "Failed to parse query", err.Error())
}

// cascadeError hides cascade internals behind a single opaque error
func cascadeError(err error, alreadyMsg string) error {
	if errors.Is(err, lifecycle.ErrAlreadyDeleted) {
		return response.NewAppError(response.ErrCodeConflict, alreadyMsg, "")
	}
	return response.NewAppError(response.ErrCodeInternal, "operation failed", "")
}

// findParticipant returns nil without error when the user is not on the board
func findParticipant(ctx context.Context, repo repository.ParticipantRepository, boardID, userID uuid.UUID) (*domain.Participant, error) {
	p, err := repo.Find(ctx, boardID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check board membership", err.Error())
	}
	return p, nil
}

// authorizeGone handles mutations on an entity that is already deleted or
// archived: callers allowed to act see a conflict, everyone else not-found
func authorizeGone(userID uuid.UUID, p *domain.Participant, action policy.Action, target policy.Target, alreadyMsg string) error {
	if policy.Decide(userID, p, action, target) != policy.Allow {
		return policy.Authorize(userID, nil, action, target)
	}
	return response.NewAppError(response.ErrCodeConflict, alreadyMsg, "")
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
