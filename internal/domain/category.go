package domain

import "github.com/google/uuid"

// GoalCategory groups goals inside a board
type GoalCategory struct {
	BaseModel
	BoardID   uuid.UUID `gorm:"type:uuid;not null;index:idx_goal_categories_board_id" json:"board"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_goal_categories_user_id" json:"user"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	IsDeleted bool      `gorm:"not null;default:false;index:idx_goal_categories_is_deleted" json:"is_deleted"`
	Goals     []Goal    `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"goals,omitempty"`
}

// TableName specifies the table name for GoalCategory
func (GoalCategory) TableName() string {
	return "goal_categories"
}
