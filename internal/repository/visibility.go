package repository

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"goal-board-api/internal/domain"
)

// participantExists matches rows whose owning board has a participant row for the user.
// The placeholder is the column holding the board id in the outer query.
const participantExists = "EXISTS (SELECT 1 FROM board_participants bp WHERE bp.board_id = %s AND bp.user_id = ?)"

func isParticipant(boardColumn string, userID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(fmt.Sprintf(participantExists, boardColumn), userID)
	}
}

// VisibleBoards limits a query on boards to live boards the user participates in
func VisibleBoards(userID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Where("boards.is_deleted = ?", false).
			Scopes(isParticipant("boards.id", userID))
	}
}

// VisibleCategories limits a query on goal_categories to live categories of
// visible boards
func VisibleCategories(userID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN boards ON boards.id = goal_categories.board_id").
			Where("goal_categories.is_deleted = ? AND boards.is_deleted = ?", false, false).
			Scopes(isParticipant("goal_categories.board_id", userID))
	}
}

// VisibleGoals limits a query on goals to non-archived goals of visible
// categories. Board deletion is checked here as well, not inferred from the
// category row.
func VisibleGoals(userID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN goal_categories ON goal_categories.id = goals.category_id").
			Joins("JOIN boards ON boards.id = goal_categories.board_id").
			Where("goals.status <> ?", domain.GoalStatusArchived).
			Where("goal_categories.is_deleted = ? AND boards.is_deleted = ?", false, false).
			Scopes(isParticipant("goal_categories.board_id", userID))
	}
}

// ReachableComments limits a query on comments to comments on goals of boards
// the user participates in. Archived goals and deleted containers do not hide
// their comments.
func ReachableComments(userID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN goals ON goals.id = comments.goal_id").
			Joins("JOIN goal_categories ON goal_categories.id = goals.category_id").
			Scopes(isParticipant("goal_categories.board_id", userID))
	}
}
