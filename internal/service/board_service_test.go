package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"goal-board-api/internal/cache"
	"goal-board-api/internal/domain"
	"goal-board-api/internal/dto"
	"goal-board-api/internal/filter"
	"goal-board-api/internal/lifecycle"
	"goal-board-api/internal/metrics"
	"goal-board-api/internal/response"
)

func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *response.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code, appErr.Error())
}

func testMetrics() *metrics.Metrics {
	return metrics.NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())
}

// recordingCache is an in-memory BoardListCache
type recordingCache struct {
	mu      sync.Mutex
	pages   map[string]*cache.BoardPage
	gens    map[uuid.UUID]int64
	evicted []uuid.UUID
}

func newRecordingCache() *recordingCache {
	return &recordingCache{pages: map[string]*cache.BoardPage{}, gens: map[uuid.UUID]int64{}}
}

func (c *recordingCache) Generation(_ context.Context, userID uuid.UUID) (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gens[userID], true
}

func (c *recordingCache) Get(_ context.Context, userID uuid.UUID, gen int64, key string) (*cache.BoardPage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.pages[fmt.Sprintf("%s|%d|%s", userID, gen, key)]
	return p, ok
}

func (c *recordingCache) Set(_ context.Context, userID uuid.UUID, gen int64, key string, page *cache.BoardPage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pages[fmt.Sprintf("%s|%d|%s", userID, gen, key)] = page
}

func (c *recordingCache) Evict(_ context.Context, userIDs ...uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range userIDs {
		c.gens[id]++
	}
	c.evicted = append(c.evicted, userIDs...)
}

func participantAs(boardID, userID uuid.UUID, role domain.Role) func(ctx context.Context, b, u uuid.UUID) (*domain.Participant, error) {
	return func(ctx context.Context, b, u uuid.UUID) (*domain.Participant, error) {
		if b == boardID && u == userID {
			return &domain.Participant{BoardID: boardID, UserID: userID, Role: role}, nil
		}
		return nil, gorm.ErrRecordNotFound
	}
}

func TestBoardService_DeleteBoard(t *testing.T) {
	boardID := uuid.New()
	userID := uuid.New()

	liveBoard := func(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
		return &domain.Board{BaseModel: domain.BaseModel{ID: boardID}, Title: "b"}, nil
	}
	deletedBoard := func(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
		return &domain.Board{BaseModel: domain.BaseModel{ID: boardID}, Title: "b", IsDeleted: true}, nil
	}

	tests := []struct {
		name          string
		findBoard     func(ctx context.Context, id uuid.UUID) (*domain.Board, error)
		role          domain.Role
		participant   bool
		cascade       func(ctx context.Context, id uuid.UUID) (lifecycle.Result, error)
		wantErrCode   string
		wantCascade   bool
		wantEvictions int
	}{
		{
			name:          "성공: owner가 보드 삭제",
			findBoard:     liveBoard,
			role:          domain.RoleOwner,
			participant:   true,
			wantCascade:   true,
			wantEvictions: 2,
		},
		{
			name:        "실패: 보드가 존재하지 않음",
			findBoard:   func(ctx context.Context, id uuid.UUID) (*domain.Board, error) { return nil, gorm.ErrRecordNotFound },
			wantErrCode: response.ErrCodeNotFound,
		},
		{
			name:        "실패: 비참여자는 not found",
			findBoard:   liveBoard,
			wantErrCode: response.ErrCodeNotFound,
		},
		{
			name:        "실패: writer는 forbidden",
			findBoard:   liveBoard,
			role:        domain.RoleWriter,
			participant: true,
			wantErrCode: response.ErrCodeForbidden,
		},
		{
			name:        "실패: 이미 삭제된 보드는 conflict",
			findBoard:   deletedBoard,
			role:        domain.RoleOwner,
			participant: true,
			wantErrCode: response.ErrCodeConflict,
		},
		{
			name:        "실패: 이미 삭제된 보드에 reader는 not found",
			findBoard:   deletedBoard,
			role:        domain.RoleReader,
			participant: true,
			wantErrCode: response.ErrCodeNotFound,
		},
		{
			name:        "실패: 동시 삭제로 cascade가 conflict",
			findBoard:   liveBoard,
			role:        domain.RoleOwner,
			participant: true,
			cascade: func(ctx context.Context, id uuid.UUID) (lifecycle.Result, error) {
				return lifecycle.Result{}, lifecycle.ErrAlreadyDeleted
			},
			wantCascade: true,
			wantErrCode: response.ErrCodeConflict,
		},
		{
			name:        "실패: cascade 실패는 불투명한 internal error",
			findBoard:   liveBoard,
			role:        domain.RoleOwner,
			participant: true,
			cascade: func(ctx context.Context, id uuid.UUID) (lifecycle.Result, error) {
				return lifecycle.Result{}, errors.New("archive goals: disk full")
			},
			wantCascade: true,
			wantErrCode: response.ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			boards := &MockBoardRepository{FindByIDFunc: tt.findBoard}
			participants := &MockParticipantRepository{
				ListUserIDsFunc: func(ctx context.Context, b uuid.UUID) ([]uuid.UUID, error) {
					return []uuid.UUID{userID, uuid.New()}, nil
				},
			}
			if tt.participant {
				participants.FindFunc = participantAs(boardID, userID, tt.role)
			}

			cascaded := false
			engine := &MockLifecycle{DeleteBoardFunc: func(ctx context.Context, id uuid.UUID) (lifecycle.Result, error) {
				cascaded = true
				if tt.cascade != nil {
					return tt.cascade(ctx, id)
				}
				return lifecycle.Result{Categories: 1, Goals: 2}, nil
			}}
			c := newRecordingCache()

			svc := NewBoardService(nil, 0, boards, participants, engine, c, testMetrics(), zap.NewNop())
			err := svc.DeleteBoard(context.Background(), userID, boardID)

			if tt.wantErrCode != "" {
				assertAppError(t, err, tt.wantErrCode)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantCascade, cascaded)
			assert.Len(t, c.evicted, tt.wantEvictions)
		})
	}
}

func TestBoardService_DeleteBoard_HidesCascadeDetails(t *testing.T) {
	boardID := uuid.New()
	userID := uuid.New()

	svc := NewBoardService(nil, 0,
		&MockBoardRepository{FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
			return &domain.Board{BaseModel: domain.BaseModel{ID: boardID}}, nil
		}},
		&MockParticipantRepository{FindFunc: participantAs(boardID, userID, domain.RoleOwner)},
		&MockLifecycle{DeleteBoardFunc: func(ctx context.Context, id uuid.UUID) (lifecycle.Result, error) {
			return lifecycle.Result{}, errors.New("archive goals: secret detail")
		}},
		nil, nil, zap.NewNop())

	err := svc.DeleteBoard(context.Background(), userID, boardID)
	var appErr *response.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "operation failed", appErr.Message)
	assert.Empty(t, appErr.Details)
	assert.NotContains(t, err.Error(), "secret")
}

func TestBoardService_UpdateBoard(t *testing.T) {
	boardID := uuid.New()
	userID := uuid.New()
	title := func(s string) *string { return &s }

	tests := []struct {
		name        string
		role        domain.Role
		req         *dto.UpdateBoardRequest
		wantErrCode string
		wantTitle   string
	}{
		{name: "성공: owner가 제목 변경", role: domain.RoleOwner, req: &dto.UpdateBoardRequest{Title: title("New")}, wantTitle: "New"},
		{name: "실패: writer는 보드 수정 불가", role: domain.RoleWriter, req: &dto.UpdateBoardRequest{Title: title("New")}, wantErrCode: response.ErrCodeForbidden},
		{name: "실패: reader는 보드 수정 불가", role: domain.RoleReader, req: &dto.UpdateBoardRequest{Title: title("New")}, wantErrCode: response.ErrCodeForbidden},
		{name: "실패: 빈 제목", role: domain.RoleOwner, req: &dto.UpdateBoardRequest{Title: title("")}, wantErrCode: response.ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stored := &domain.Board{BaseModel: domain.BaseModel{ID: boardID}, Title: "Old"}
			updated := false
			boards := &MockBoardRepository{
				FindVisibleFunc: func(ctx context.Context, u, id uuid.UUID) (*domain.Board, error) { return stored, nil },
				FindByIDFunc:    func(ctx context.Context, id uuid.UUID) (*domain.Board, error) { return stored, nil },
				UpdateTitleFunc: func(ctx context.Context, id uuid.UUID, title string) error {
					updated = true
					stored.Title = title
					return nil
				},
			}
			participants := &MockParticipantRepository{FindFunc: participantAs(boardID, userID, tt.role)}

			svc := NewBoardService(nil, 0, boards, participants, &MockLifecycle{}, nil, nil, zap.NewNop())
			resp, err := svc.UpdateBoard(context.Background(), userID, boardID, tt.req)

			if tt.wantErrCode != "" {
				assertAppError(t, err, tt.wantErrCode)
				assert.False(t, updated, "rejected requests must not write")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, resp.Title)
		})
	}
}

func TestBoardService_ListBoards_UsesCache(t *testing.T) {
	userID := uuid.New()
	calls := 0
	boards := &MockBoardRepository{
		ListVisibleFunc: func(ctx context.Context, u uuid.UUID, q *filter.Query) ([]*domain.Board, int64, error) {
			calls++
			return []*domain.Board{{BaseModel: domain.BaseModel{ID: uuid.New()}, Title: "A"}}, 1, nil
		},
	}
	c := newRecordingCache()
	svc := NewBoardService(nil, 0, boards, &MockParticipantRepository{}, &MockLifecycle{}, c, testMetrics(), zap.NewNop())
	ctx := context.Background()

	first, err := svc.ListBoards(ctx, userID, url.Values{})
	require.NoError(t, err)
	second, err := svc.ListBoards(ctx, userID, url.Values{})
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "second listing is served from cache")
	assert.Equal(t, first.Total, second.Total)

	_, err = svc.ListBoards(ctx, userID, url.Values{"ordering": {"-created"}})
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "different query, different cache entry")
}

func TestBoardService_ListBoards_InvalidOrdering(t *testing.T) {
	svc := NewBoardService(nil, 0, &MockBoardRepository{}, &MockParticipantRepository{}, &MockLifecycle{}, nil, nil, zap.NewNop())
	_, err := svc.ListBoards(context.Background(), uuid.New(), url.Values{"ordering": {"secret_column"}})
	assertAppError(t, err, response.ErrCodeValidation)
}

func TestBoardService_CreateBoard_RejectsBeforeWriting(t *testing.T) {
	created := false
	boards := &MockBoardRepository{CreateFunc: func(ctx context.Context, b *domain.Board) error {
		created = true
		return nil
	}}
	svc := NewBoardService(nil, 0, boards, &MockParticipantRepository{}, &MockLifecycle{}, nil, nil, zap.NewNop())

	_, err := svc.CreateBoard(context.Background(), uuid.New(), &dto.CreateBoardRequest{Title: ""})
	assertAppError(t, err, response.ErrCodeValidation)

	_, err = svc.CreateBoard(context.Background(), uuid.New(), &dto.CreateBoardRequest{Title: "ok", IsDeleted: true})
	assertAppError(t, err, response.ErrCodeValidation)

	assert.False(t, created)
}
