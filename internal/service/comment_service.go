package service

import (
	"context"
	"net/url"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"goal-board-api/internal/domain"
	"goal-board-api/internal/dto"
	"goal-board-api/internal/filter"
	"goal-board-api/internal/metrics"
	"goal-board-api/internal/policy"
	"goal-board-api/internal/repository"
	"goal-board-api/internal/response"
)

// CommentService defines the interface for comment business logic
type CommentService interface {
	CreateComment(ctx context.Context, userID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	GetComment(ctx context.Context, userID, commentID uuid.UUID) (*dto.CommentResponse, error)
	ListComments(ctx context.Context, userID uuid.UUID, params url.Values) (*dto.PageResponse, error)
	UpdateComment(ctx context.Context, userID, commentID uuid.UUID, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error)
	DeleteComment(ctx context.Context, userID, commentID uuid.UUID) error
}

type commentServiceImpl struct {
	commentRepo     repository.CommentRepository
	goalRepo        repository.GoalRepository
	participantRepo repository.ParticipantRepository
	metrics         *metrics.Metrics
	logger          *zap.Logger
}

// NewCommentService creates a new instance of CommentService
func NewCommentService(
	commentRepo repository.CommentRepository,
	goalRepo repository.GoalRepository,
	participantRepo repository.ParticipantRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) CommentService {
	return &commentServiceImpl{
		commentRepo:     commentRepo,
		goalRepo:        goalRepo,
		participantRepo: participantRepo,
		metrics:         m,
		logger:          logger,
	}
}

// CreateComment adds a comment to a live goal
func (s *commentServiceImpl) CreateComment(ctx context.Context, userID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if err := domain.ValidateCommentText(req.Text); err != nil {
		return nil, validationError(err)
	}

	if _, err := s.goalRepo.FindVisible(ctx, userID, req.GoalID); err != nil {
		return nil, repoError(err, "Goal not found", "Failed to fetch goal")
	}
	if _, err := s.authorize(ctx, userID, req.GoalID, policy.ActionCreate, uuid.Nil); err != nil {
		return nil, err
	}

	comment := &domain.Comment{GoalID: req.GoalID, UserID: userID, Text: req.Text}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create comment", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementCreated(metrics.EntityComment)
	}
	return toCommentResponse(comment), nil
}

func (s *commentServiceImpl) GetComment(ctx context.Context, userID, commentID uuid.UUID) (*dto.CommentResponse, error) {
	comment, err := s.commentRepo.FindReachable(ctx, userID, commentID)
	if err != nil {
		return nil, repoError(err, "Comment not found", "Failed to fetch comment")
	}
	return toCommentResponse(comment), nil
}

// ListComments lists comments, including those on archived goals
func (s *commentServiceImpl) ListComments(ctx context.Context, userID uuid.UUID, params url.Values) (*dto.PageResponse, error) {
	q, err := filter.Comments.Parse(params)
	if err != nil {
		return nil, queryError(err)
	}

	comments, total, err := s.commentRepo.ListReachable(ctx, userID, q)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch comments", err.Error())
	}

	items := make([]*dto.CommentResponse, len(comments))
	for i, c := range comments {
		items[i] = toCommentResponse(c)
	}
	return newPage(items, total, q), nil
}

// UpdateComment edits the text of the requester's own comment
func (s *commentServiceImpl) UpdateComment(ctx context.Context, userID, commentID uuid.UUID, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
	comment, err := s.commentRepo.FindReachable(ctx, userID, commentID)
	if err != nil {
		return nil, repoError(err, "Comment not found", "Failed to fetch comment")
	}
	if _, err := s.authorize(ctx, userID, comment.GoalID, policy.ActionUpdate, comment.UserID); err != nil {
		return nil, err
	}

	if err := domain.ValidateCommentText(req.Text); err != nil {
		return nil, validationError(err)
	}
	if err := s.commentRepo.UpdateText(ctx, commentID, req.Text); err != nil {
		return nil, repoError(err, "Comment not found", "Failed to update comment")
	}

	updated, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return nil, repoError(err, "Comment not found", "Failed to fetch comment")
	}
	return toCommentResponse(updated), nil
}

// DeleteComment hard-deletes the requester's own comment
func (s *commentServiceImpl) DeleteComment(ctx context.Context, userID, commentID uuid.UUID) error {
	comment, err := s.commentRepo.FindReachable(ctx, userID, commentID)
	if err != nil {
		return repoError(err, "Comment not found", "Failed to fetch comment")
	}
	if _, err := s.authorize(ctx, userID, comment.GoalID, policy.ActionDelete, comment.UserID); err != nil {
		return err
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return repoError(err, "Comment not found", "Failed to delete comment")
	}
	return nil
}

func (s *commentServiceImpl) authorize(ctx context.Context, userID, goalID uuid.UUID, action policy.Action, authorID uuid.UUID) (*domain.Participant, error) {
	boardID, err := s.goalRepo.BoardID(ctx, goalID)
	if err != nil {
		return nil, repoError(err, "Goal not found", "Failed to fetch goal")
	}
	p, err := findParticipant(ctx, s.participantRepo, boardID, userID)
	if err != nil {
		return nil, err
	}
	if err := policy.Authorize(userID, p, action, policy.Target{Kind: policy.KindComment, AuthorID: authorID}); err != nil {
		return nil, err
	}
	return p, nil
}
