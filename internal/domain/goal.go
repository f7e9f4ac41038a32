package domain

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// GoalStatus is the progress state of a goal. Archived is reached through deletion.
type GoalStatus int

const (
	GoalStatusToDo       GoalStatus = 1
	GoalStatusInProgress GoalStatus = 2
	GoalStatusDone       GoalStatus = 3
	GoalStatusArchived   GoalStatus = 4
)

var goalStatusNames = map[GoalStatus]string{
	GoalStatusToDo:       "to_do",
	GoalStatusInProgress: "in_progress",
	GoalStatusDone:       "done",
	GoalStatusArchived:   "archived",
}

// Valid reports whether s is one of the known statuses
func (s GoalStatus) Valid() bool {
	_, ok := goalStatusNames[s]
	return ok
}

func (s GoalStatus) String() string {
	if name, ok := goalStatusNames[s]; ok {
		return name
	}
	return "status(" + strconv.Itoa(int(s)) + ")"
}

// ParseGoalStatus accepts either the integer code or the name
func ParseGoalStatus(s string) (GoalStatus, error) {
	code, err := parseEnum(s, func(name string) (int, bool) {
		for st, n := range goalStatusNames {
			if n == name {
				return int(st), true
			}
		}
		return 0, false
	})
	if err != nil || !GoalStatus(code).Valid() {
		return 0, fmt.Errorf("invalid status %q", s)
	}
	return GoalStatus(code), nil
}

// GoalPriority orders goals by urgency
type GoalPriority int

const (
	GoalPriorityLow      GoalPriority = 1
	GoalPriorityMedium   GoalPriority = 2
	GoalPriorityHigh     GoalPriority = 3
	GoalPriorityCritical GoalPriority = 4
)

var goalPriorityNames = map[GoalPriority]string{
	GoalPriorityLow:      "low",
	GoalPriorityMedium:   "medium",
	GoalPriorityHigh:     "high",
	GoalPriorityCritical: "critical",
}

// Valid reports whether p is one of the known priorities
func (p GoalPriority) Valid() bool {
	_, ok := goalPriorityNames[p]
	return ok
}

func (p GoalPriority) String() string {
	if name, ok := goalPriorityNames[p]; ok {
		return name
	}
	return "priority(" + strconv.Itoa(int(p)) + ")"
}

// ParseGoalPriority accepts either the integer code or the name
func ParseGoalPriority(s string) (GoalPriority, error) {
	code, err := parseEnum(s, func(name string) (int, bool) {
		for p, n := range goalPriorityNames {
			if n == name {
				return int(p), true
			}
		}
		return 0, false
	})
	if err != nil || !GoalPriority(code).Valid() {
		return 0, fmt.Errorf("invalid priority %q", s)
	}
	return GoalPriority(code), nil
}

// Goal belongs to a category. Goals are never removed, only archived.
type Goal struct {
	BaseModel
	CategoryID  uuid.UUID    `gorm:"type:uuid;not null;index:idx_goals_category_id" json:"category"`
	UserID      uuid.UUID    `gorm:"type:uuid;not null;index:idx_goals_user_id" json:"user"`
	Title       string       `gorm:"type:varchar(255);not null" json:"title"`
	Description string       `gorm:"type:varchar(255)" json:"description"`
	DueDate     *time.Time   `gorm:"type:timestamp;index:idx_goals_due_date" json:"due_date"`
	Status      GoalStatus   `gorm:"type:smallint;not null;default:1;index:idx_goals_status" json:"status"`
	Priority    GoalPriority `gorm:"type:smallint;not null;default:2" json:"priority"`
	Comments    []Comment    `gorm:"foreignKey:GoalID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
}

// TableName specifies the table name for Goal
func (Goal) TableName() string {
	return "goals"
}

// IsArchived reports whether the goal has been deleted through the lifecycle
func (g *Goal) IsArchived() bool {
	return g.Status == GoalStatusArchived
}
