package domain

import "github.com/google/uuid"

// Comment represents a comment on a goal
type Comment struct {
	BaseModel
	GoalID uuid.UUID `gorm:"type:uuid;not null;index:idx_comments_goal_id" json:"goal"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_comments_user_id" json:"user"`
	Text   string    `gorm:"type:varchar(255);not null" json:"text"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
