package repository

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"goal-board-api/internal/domain"
	"goal-board-api/internal/filter"
)

func goalTitles(goals []*domain.Goal) []string {
	titles := make([]string, len(goals))
	for i, g := range goals {
		titles[i] = g.Title
	}
	return titles
}

func TestVisibleBoards(t *testing.T) {
	db := setupTestDB(t)
	w := seedWorld(t, db)
	repo := NewBoardRepository(db)
	ctx := context.Background()

	boards, total, err := repo.ListVisible(ctx, w.reader, mustQuery(t, filter.Boards, nil))
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, boards, 1)
	assert.Equal(t, w.board.ID, boards[0].ID)

	boards, total, err = repo.ListVisible(ctx, w.outsider, mustQuery(t, filter.Boards, nil))
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, boards)

	_, err = repo.FindVisible(ctx, w.outsider, w.board.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	flipped, err := repo.MarkDeleted(ctx, w.board.ID)
	require.NoError(t, err)
	assert.True(t, flipped)

	_, err = repo.FindVisible(ctx, w.owner, w.board.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound, "deleted boards are invisible even to owners")

	found, err := repo.FindByID(ctx, w.board.ID)
	require.NoError(t, err)
	assert.True(t, found.IsDeleted)
}

func TestVisibleGoals_DefaultOrderingAndFilters(t *testing.T) {
	db := setupTestDB(t)
	w := seedWorld(t, db)
	repo := NewGoalRepository(db)
	ctx := context.Background()

	tests := []struct {
		name   string
		values url.Values
		want   []string
	}{
		{"성공: 기본 제목 오름차순", nil, []string{"Alpha", "Beta", "Gamma"}},
		{"성공: 우선순위 내림차순", url.Values{"ordering": {"-priority"}}, []string{"Gamma", "Beta", "Alpha"}},
		{"성공: 상태 in 필터", url.Values{"status__in": {"to_do,done"}}, []string{"Beta", "Gamma"}},
		{"성공: 우선순위 이름 필터", url.Values{"priority": {"low"}}, []string{"Alpha"}},
		{"성공: 대소문자 무시 검색", url.Values{"search": {"GAM"}}, []string{"Gamma"}},
		{"성공: 페이지네이션", url.Values{"limit": {"1"}, "offset": {"1"}}, []string{"Beta"}},
		{"성공: 카테고리 필터", url.Values{"category": {w.category.ID.String()}}, []string{"Alpha", "Beta", "Gamma"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goals, _, err := repo.ListVisible(ctx, w.reader, mustQuery(t, filter.Goals, tt.values))
			require.NoError(t, err)
			assert.Equal(t, tt.want, goalTitles(goals))
		})
	}
}

func TestVisibleGoals_CountIgnoresPaging(t *testing.T) {
	db := setupTestDB(t)
	w := seedWorld(t, db)

	goals, total, err := NewGoalRepository(db).ListVisible(context.Background(), w.owner,
		mustQuery(t, filter.Goals, url.Values{"limit": {"2"}}))
	require.NoError(t, err)
	assert.Len(t, goals, 2)
	assert.Equal(t, int64(3), total)
}

func TestVisibleGoals_HidesArchivedAndDeletedContainers(t *testing.T) {
	db := setupTestDB(t)
	w := seedWorld(t, db)
	goals := NewGoalRepository(db)
	ctx := context.Background()

	archived, err := goals.Archive(ctx, w.goals[0].ID)
	require.NoError(t, err)
	require.True(t, archived)

	list, _, err := goals.ListVisible(ctx, w.owner, mustQuery(t, filter.Goals, nil))
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Gamma"}, goalTitles(list), "archived goals are hidden even from owners")

	_, err = goals.FindVisible(ctx, w.owner, w.goals[0].ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Board flagged deleted without touching the category row: goals must still disappear
	require.NoError(t, db.Model(&domain.Board{}).Where("id = ?", w.board.ID).Update("is_deleted", true).Error)

	list, total, err := goals.ListVisible(ctx, w.owner, mustQuery(t, filter.Goals, nil))
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, list)

	categories, _, err := NewCategoryRepository(db).ListVisible(ctx, w.owner, mustQuery(t, filter.Categories, nil))
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestVisibleCategories_Filters(t *testing.T) {
	db := setupTestDB(t)
	w := seedWorld(t, db)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	second := &domain.GoalCategory{BoardID: w.board.ID, UserID: w.owner, Title: "A-team"}
	require.NoError(t, db.Create(second).Error)

	list, total, err := repo.ListVisible(ctx, w.reader, mustQuery(t, filter.Categories, url.Values{"board": {w.board.ID.String()}}))
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, list, 2)
	assert.Equal(t, "A-team", list[0].Title)

	flipped, err := repo.MarkDeleted(ctx, second.ID)
	require.NoError(t, err)
	assert.True(t, flipped)

	flipped, err = repo.MarkDeleted(ctx, second.ID)
	require.NoError(t, err)
	assert.False(t, flipped, "second flip must be a no-op")

	list, _, err = repo.ListVisible(ctx, w.reader, mustQuery(t, filter.Categories, nil))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Q1", list[0].Title)

	_, err = repo.FindVisible(ctx, w.outsider, w.category.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestReachableComments_SurviveArchival(t *testing.T) {
	db := setupTestDB(t)
	w := seedWorld(t, db)
	comments := NewCommentRepository(db)
	ctx := context.Background()

	first := &domain.Comment{GoalID: w.goals[0].ID, UserID: w.owner, Text: "first"}
	require.NoError(t, comments.Create(ctx, first))
	second := &domain.Comment{GoalID: w.goals[1].ID, UserID: w.reader, Text: "second"}
	require.NoError(t, comments.Create(ctx, second))

	_, err := NewGoalRepository(db).Archive(ctx, w.goals[0].ID)
	require.NoError(t, err)

	list, total, err := comments.ListReachable(ctx, w.reader,
		mustQuery(t, filter.Comments, url.Values{"goal": {w.goals[0].ID.String()}}))
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, "first", list[0].Text)

	list, _, err = comments.ListReachable(ctx, w.outsider, mustQuery(t, filter.Comments, nil))
	require.NoError(t, err)
	assert.Empty(t, list)

	found, err := comments.FindReachable(ctx, w.owner, second.ID)
	require.NoError(t, err)
	assert.Equal(t, w.reader, found.UserID)
}
