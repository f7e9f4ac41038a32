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

// GoalService defines the interface for goal business logic
type GoalService interface {
	CreateGoal(ctx context.Context, userID uuid.UUID, req *dto.CreateGoalRequest) (*dto.GoalResponse, error)
	GetGoal(ctx context.Context, userID, goalID uuid.UUID) (*dto.GoalResponse, error)
	ListGoals(ctx context.Context, userID uuid.UUID, params url.Values) (*dto.PageResponse, error)
	UpdateGoal(ctx context.Context, userID, goalID uuid.UUID, req *dto.UpdateGoalRequest) (*dto.GoalResponse, error)
	DeleteGoal(ctx context.Context, userID, goalID uuid.UUID) (*dto.GoalResponse, error)
}

type goalServiceImpl struct {
	goalRepo        repository.GoalRepository
	categoryRepo    repository.CategoryRepository
	participantRepo repository.ParticipantRepository
	lifecycle       Lifecycle
	metrics         *metrics.Metrics
	logger          *zap.Logger
}

// NewGoalService creates a new instance of GoalService
func NewGoalService(
	goalRepo repository.GoalRepository,
	categoryRepo repository.CategoryRepository,
	participantRepo repository.ParticipantRepository,
	engine Lifecycle,
	m *metrics.Metrics,
	logger *zap.Logger,
) GoalService {
	return &goalServiceImpl{
		goalRepo:        goalRepo,
		categoryRepo:    categoryRepo,
		participantRepo: participantRepo,
		lifecycle:       engine,
		metrics:         m,
		logger:          logger,
	}
}

func (s *goalServiceImpl) CreateGoal(ctx context.Context, userID uuid.UUID, req *dto.CreateGoalRequest) (*dto.GoalResponse, error) {
	goal := &domain.Goal{
		CategoryID:  req.CategoryID,
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      domain.GoalStatusToDo,
		Priority:    domain.GoalPriorityMedium,
	}

	if err := domain.ValidateTitle(goal.Title); err != nil {
		return nil, validationError(err)
	}
	if err := domain.ValidateDescription(goal.Description); err != nil {
		return nil, validationError(err)
	}
	if req.Status != nil {
		status, err := domain.ParseGoalStatus(string(*req.Status))
		if err != nil {
			return nil, validationError(err)
		}
		if status == domain.GoalStatusArchived {
			return nil, validationError(domain.ErrFlagAtCreation)
		}
		goal.Status = status
	}
	if req.Priority != nil {
		priority, err := domain.ParseGoalPriority(string(*req.Priority))
		if err != nil {
			return nil, validationError(err)
		}
		goal.Priority = priority
	}

	if err := s.authorizeInCategory(ctx, userID, req.CategoryID); err != nil {
		return nil, err
	}

	if err := s.goalRepo.Create(ctx, goal); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create goal", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementCreated(metrics.EntityGoal)
	}
	return toGoalResponse(goal), nil
}

func (s *goalServiceImpl) GetGoal(ctx context.Context, userID, goalID uuid.UUID) (*dto.GoalResponse, error) {
	goal, err := s.goalRepo.FindVisible(ctx, userID, goalID)
	if err != nil {
		return nil, repoError(err, "Goal not found", "Failed to fetch goal")
	}
	return toGoalResponse(goal), nil
}

// ListGoals lists live goals; archived goals never appear, even for owners
func (s *goalServiceImpl) ListGoals(ctx context.Context, userID uuid.UUID, params url.Values) (*dto.PageResponse, error) {
	q, err := filter.Goals.Parse(params)
	if err != nil {
		return nil, queryError(err)
	}

	goals, total, err := s.goalRepo.ListVisible(ctx, userID, q)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch goals", err.Error())
	}

	items := make([]*dto.GoalResponse, len(goals))
	for i, g := range goals {
		items[i] = toGoalResponse(g)
	}
	return newPage(items, total, q), nil
}

// UpdateGoal applies a partial update. Moving to another category requires
// create permission on the destination board.
func (s *goalServiceImpl) UpdateGoal(ctx context.Context, userID, goalID uuid.UUID, req *dto.UpdateGoalRequest) (*dto.GoalResponse, error) {
	goal, err := s.goalRepo.FindVisible(ctx, userID, goalID)
	if err != nil {
		return nil, repoError(err, "Goal not found", "Failed to fetch goal")
	}

	boardID, err := s.goalRepo.BoardID(ctx, goalID)
	if err != nil {
		return nil, repoError(err, "Goal not found", "Failed to fetch goal")
	}
	p, err := findParticipant(ctx, s.participantRepo, boardID, userID)
	if err != nil {
		return nil, err
	}
	if err := policy.Authorize(userID, p, policy.ActionUpdate, policy.Target{Kind: policy.KindGoal}); err != nil {
		return nil, err
	}

	if err := applyGoalUpdate(goal, req); err != nil {
		return nil, err
	}

	if req.CategoryID != nil && *req.CategoryID != goal.CategoryID {
		if err := s.authorizeInCategory(ctx, userID, *req.CategoryID); err != nil {
			return nil, err
		}
		goal.CategoryID = *req.CategoryID
	}

	if err := s.goalRepo.Update(ctx, goal); err != nil {
		return nil, repoError(err, "Goal not found", "Failed to update goal")
	}

	updated, err := s.goalRepo.FindByID(ctx, goalID)
	if err != nil {
		return nil, repoError(err, "Goal not found", "Failed to fetch goal")
	}
	return toGoalResponse(updated), nil
}

// DeleteGoal archives the goal and returns it. Comments are kept.
func (s *goalServiceImpl) DeleteGoal(ctx context.Context, userID, goalID uuid.UUID) (*dto.GoalResponse, error) {
	boardID, err := s.goalRepo.BoardID(ctx, goalID)
	if err != nil {
		return nil, repoError(err, "Goal not found", "Failed to fetch goal")
	}
	p, err := findParticipant(ctx, s.participantRepo, boardID, userID)
	if err != nil {
		return nil, err
	}

	target := policy.Target{Kind: policy.KindGoal}
	if _, err := s.goalRepo.FindVisible(ctx, userID, goalID); err != nil {
		if p == nil {
			return nil, policy.Authorize(userID, nil, policy.ActionDelete, target)
		}
		if isNotFound(err) {
			return nil, authorizeGone(userID, p, policy.ActionDelete, target, "Goal already archived")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch goal", err.Error())
	}
	if err := policy.Authorize(userID, p, policy.ActionDelete, target); err != nil {
		return nil, err
	}

	archived, err := s.lifecycle.ArchiveGoal(ctx, goalID)
	if s.metrics != nil {
		s.metrics.RecordCascade("archive_goal", 1, err)
	}
	if err != nil {
		return nil, cascadeError(err, "Goal already archived")
	}
	return toGoalResponse(archived), nil
}

// authorizeInCategory checks that the category is visible and the user may add goals to it
func (s *goalServiceImpl) authorizeInCategory(ctx context.Context, userID, categoryID uuid.UUID) error {
	category, err := s.categoryRepo.FindVisible(ctx, userID, categoryID)
	if err != nil {
		return repoError(err, "Category not found", "Failed to fetch category")
	}
	p, err := findParticipant(ctx, s.participantRepo, category.BoardID, userID)
	if err != nil {
		return err
	}
	return policy.Authorize(userID, p, policy.ActionCreate, policy.Target{Kind: policy.KindGoal})
}

func applyGoalUpdate(goal *domain.Goal, req *dto.UpdateGoalRequest) error {
	if req.Title != nil {
		if err := domain.ValidateTitle(*req.Title); err != nil {
			return validationError(err)
		}
		goal.Title = *req.Title
	}
	if req.Description != nil {
		if err := domain.ValidateDescription(*req.Description); err != nil {
			return validationError(err)
		}
		goal.Description = *req.Description
	}
	if req.ClearDueDate {
		goal.DueDate = nil
	} else if req.DueDate != nil {
		goal.DueDate = req.DueDate
	}
	if req.Status != nil {
		status, err := domain.ParseGoalStatus(string(*req.Status))
		if err != nil {
			return validationError(err)
		}
		goal.Status = status
	}
	if req.Priority != nil {
		priority, err := domain.ParseGoalPriority(string(*req.Priority))
		if err != nil {
			return validationError(err)
		}
		goal.Priority = priority
	}
	return nil
}
