package repository

import (
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"goal-board-api/internal/database"
	"goal-board-api/internal/domain"
	"goal-board-api/internal/filter"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), database.GormConfig())
	require.NoError(t, err, "Failed to open test database")
	require.NoError(t, database.AutoMigrate(db, zap.NewNop()))
	return db
}

// world is a small board tree shared by the repository tests
type world struct {
	owner    uuid.UUID
	reader   uuid.UUID
	outsider uuid.UUID
	board    *domain.Board
	category *domain.GoalCategory
	goals    []*domain.Goal
}

func seedWorld(t *testing.T, db *gorm.DB) *world {
	w := &world{owner: uuid.New(), reader: uuid.New(), outsider: uuid.New()}

	w.board = &domain.Board{Title: "Roadmap"}
	require.NoError(t, db.Create(w.board).Error)
	require.NoError(t, db.Create(&domain.Participant{BoardID: w.board.ID, UserID: w.owner, Role: domain.RoleOwner}).Error)
	require.NoError(t, db.Create(&domain.Participant{BoardID: w.board.ID, UserID: w.reader, Role: domain.RoleReader}).Error)

	w.category = &domain.GoalCategory{BoardID: w.board.ID, UserID: w.owner, Title: "Q1"}
	require.NoError(t, db.Create(w.category).Error)

	for _, g := range []struct {
		title    string
		status   domain.GoalStatus
		priority domain.GoalPriority
	}{
		{"Beta", domain.GoalStatusToDo, domain.GoalPriorityHigh},
		{"Alpha", domain.GoalStatusInProgress, domain.GoalPriorityLow},
		{"Gamma", domain.GoalStatusDone, domain.GoalPriorityCritical},
	} {
		goal := &domain.Goal{CategoryID: w.category.ID, UserID: w.owner, Title: g.title, Status: g.status, Priority: g.priority}
		require.NoError(t, db.Create(goal).Error)
		w.goals = append(w.goals, goal)
	}
	return w
}

func mustQuery(t *testing.T, fs filter.FilterSet, values url.Values) *filter.Query {
	q, err := fs.Parse(values)
	require.NoError(t, err)
	return q
}
