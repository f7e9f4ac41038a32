package service

import (
	"context"
	"database/sql"
	"net/url"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"goal-board-api/internal/cache"
	"goal-board-api/internal/database"
	"goal-board-api/internal/domain"
	"goal-board-api/internal/dto"
	"goal-board-api/internal/filter"
	"goal-board-api/internal/metrics"
	"goal-board-api/internal/policy"
	"goal-board-api/internal/repository"
	"goal-board-api/internal/response"
)

// BoardService defines the interface for board business logic
type BoardService interface {
	CreateBoard(ctx context.Context, userID uuid.UUID, req *dto.CreateBoardRequest) (*dto.BoardResponse, error)
	GetBoard(ctx context.Context, userID, boardID uuid.UUID) (*dto.BoardResponse, error)
	ListBoards(ctx context.Context, userID uuid.UUID, params url.Values) (*dto.PageResponse, error)
	UpdateBoard(ctx context.Context, userID, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error)
	DeleteBoard(ctx context.Context, userID, boardID uuid.UUID) error
}

// boardServiceImpl is the implementation of BoardService
type boardServiceImpl struct {
	db              *gorm.DB
	isolation       sql.IsolationLevel
	boardRepo       repository.BoardRepository
	participantRepo repository.ParticipantRepository
	lifecycle       Lifecycle
	cache           cache.BoardListCache
	metrics         *metrics.Metrics
	logger          *zap.Logger
}

// NewBoardService creates a new instance of BoardService
func NewBoardService(
	db *gorm.DB,
	isolation sql.IsolationLevel,
	boardRepo repository.BoardRepository,
	participantRepo repository.ParticipantRepository,
	engine Lifecycle,
	boardCache cache.BoardListCache,
	m *metrics.Metrics,
	logger *zap.Logger,
) BoardService {
	if boardCache == nil {
		boardCache = cache.Noop{}
	}
	return &boardServiceImpl{
		db:              db,
		isolation:       isolation,
		boardRepo:       boardRepo,
		participantRepo: participantRepo,
		lifecycle:       engine,
		cache:           boardCache,
		metrics:         m,
		logger:          logger,
	}
}

// CreateBoard creates a board and makes the requester its owner in one transaction
func (s *boardServiceImpl) CreateBoard(ctx context.Context, userID uuid.UUID, req *dto.CreateBoardRequest) (*dto.BoardResponse, error) {
	if req.IsDeleted {
		return nil, validationError(domain.ErrFlagAtCreation)
	}
	if err := domain.ValidateTitle(req.Title); err != nil {
		return nil, validationError(err)
	}

	board := &domain.Board{Title: req.Title}
	owner := &domain.Participant{UserID: userID, Role: domain.RoleOwner}

	err := database.NewUnitOfWork(s.db, s.isolation).
		Stage("create board", func(tx *gorm.DB) error {
			return s.boardRepo.WithTx(tx).Create(ctx, board)
		}).
		Stage("add owner", func(tx *gorm.DB) error {
			owner.BoardID = board.ID
			return s.participantRepo.WithTx(tx).Create(ctx, owner)
		}).
		Commit(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create board", err.Error())
	}

	s.cache.Evict(ctx, userID)
	if s.metrics != nil {
		s.metrics.IncrementCreated(metrics.EntityBoard)
		s.metrics.IncrementCreated(metrics.EntityParticipant)
	}

	s.logger.Info("Board created",
		zap.String("board_id", board.ID.String()),
		zap.String("owner_id", userID.String()),
	)
	return toBoardResponse(board), nil
}

// GetBoard retrieves a board visible to the user
func (s *boardServiceImpl) GetBoard(ctx context.Context, userID, boardID uuid.UUID) (*dto.BoardResponse, error) {
	board, err := s.boardRepo.FindVisible(ctx, userID, boardID)
	if err != nil {
		return nil, repoError(err, "Board not found", "Failed to fetch board")
	}
	return toBoardResponse(board), nil
}

// ListBoards lists the boards visible to the user. Results are cached per user and query.
func (s *boardServiceImpl) ListBoards(ctx context.Context, userID uuid.UUID, params url.Values) (*dto.PageResponse, error) {
	q, err := filter.Boards.Parse(params)
	if err != nil {
		return nil, queryError(err)
	}

	// the generation is read before the database so a concurrent eviction
	// turns this listing into an unreachable entry
	gen, cached := s.cache.Generation(ctx, userID)
	if cached {
		if page, ok := s.cache.Get(ctx, userID, gen, q.Key); ok {
			s.recordCacheLookup(true)
			return s.toBoardPage(page.Boards, page.Total, q), nil
		}
		s.recordCacheLookup(false)
	}

	boards, total, err := s.boardRepo.ListVisible(ctx, userID, q)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch boards", err.Error())
	}

	if cached {
		s.cache.Set(ctx, userID, gen, q.Key, &cache.BoardPage{Boards: boards, Total: total})
	}
	return s.toBoardPage(boards, total, q), nil
}

// UpdateBoard renames a board. Only the owner may do this.
func (s *boardServiceImpl) UpdateBoard(ctx context.Context, userID, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error) {
	board, err := s.boardRepo.FindVisible(ctx, userID, boardID)
	if err != nil {
		return nil, repoError(err, "Board not found", "Failed to fetch board")
	}

	p, err := findParticipant(ctx, s.participantRepo, boardID, userID)
	if err != nil {
		return nil, err
	}
	if err := policy.Authorize(userID, p, policy.ActionUpdate, policy.Target{Kind: policy.KindBoard}); err != nil {
		return nil, err
	}

	if req.Title == nil {
		return toBoardResponse(board), nil
	}
	if err := domain.ValidateTitle(*req.Title); err != nil {
		return nil, validationError(err)
	}

	if err := s.boardRepo.UpdateTitle(ctx, boardID, *req.Title); err != nil {
		return nil, repoError(err, "Board not found", "Failed to update board")
	}
	s.evictParticipants(ctx, boardID)

	updated, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		return nil, repoError(err, "Board not found", "Failed to fetch board")
	}
	return toBoardResponse(updated), nil
}

// DeleteBoard soft-deletes the board and cascades to its categories and goals
func (s *boardServiceImpl) DeleteBoard(ctx context.Context, userID, boardID uuid.UUID) error {
	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		return repoError(err, "Board not found", "Failed to fetch board")
	}

	p, err := findParticipant(ctx, s.participantRepo, boardID, userID)
	if err != nil {
		return err
	}

	target := policy.Target{Kind: policy.KindBoard}
	if board.IsDeleted {
		return authorizeGone(userID, p, policy.ActionDelete, target, "Board already deleted")
	}
	if err := policy.Authorize(userID, p, policy.ActionDelete, target); err != nil {
		return err
	}

	// collected before the cascade so every member's cached listing is dropped
	members, err := s.participantRepo.ListUserIDs(ctx, boardID)
	if err != nil {
		s.logger.Warn("Failed to list board members for cache eviction", zap.Error(err))
	}

	res, err := s.lifecycle.DeleteBoard(ctx, boardID)
	if s.metrics != nil {
		s.metrics.RecordCascade("delete_board", res.Goals, err)
	}
	if err != nil {
		s.logger.Error("Board cascade failed",
			zap.String("board_id", boardID.String()),
			zap.Error(err),
		)
		return cascadeError(err, "Board already deleted")
	}

	s.cache.Evict(ctx, members...)
	return nil
}

func (s *boardServiceImpl) evictParticipants(ctx context.Context, boardID uuid.UUID) {
	members, err := s.participantRepo.ListUserIDs(ctx, boardID)
	if err != nil {
		s.logger.Warn("Failed to list board members for cache eviction", zap.Error(err))
		return
	}
	s.cache.Evict(ctx, members...)
}

func (s *boardServiceImpl) recordCacheLookup(hit bool) {
	if s.metrics != nil {
		s.metrics.RecordCacheLookup(hit)
	}
}

func (s *boardServiceImpl) toBoardPage(boards []*domain.Board, total int64, q *filter.Query) *dto.PageResponse {
	items := make([]*dto.BoardResponse, len(boards))
	for i, b := range boards {
		items[i] = toBoardResponse(b)
	}
	return newPage(items, total, q)
}
