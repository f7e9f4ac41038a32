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

// CategoryService defines the interface for goal category business logic
type CategoryService interface {
	CreateCategory(ctx context.Context, userID uuid.UUID, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	GetCategory(ctx context.Context, userID, categoryID uuid.UUID) (*dto.CategoryResponse, error)
	ListCategories(ctx context.Context, userID uuid.UUID, params url.Values) (*dto.PageResponse, error)
	UpdateCategory(ctx context.Context, userID, categoryID uuid.UUID, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	DeleteCategory(ctx context.Context, userID, categoryID uuid.UUID) error
}

type categoryServiceImpl struct {
	categoryRepo    repository.CategoryRepository
	boardRepo       repository.BoardRepository
	participantRepo repository.ParticipantRepository
	lifecycle       Lifecycle
	metrics         *metrics.Metrics
	logger          *zap.Logger
}

// NewCategoryService creates a new instance of CategoryService
func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	boardRepo repository.BoardRepository,
	participantRepo repository.ParticipantRepository,
	engine Lifecycle,
	m *metrics.Metrics,
	logger *zap.Logger,
) CategoryService {
	return &categoryServiceImpl{
		categoryRepo:    categoryRepo,
		boardRepo:       boardRepo,
		participantRepo: participantRepo,
		lifecycle:       engine,
		metrics:         m,
		logger:          logger,
	}
}

func (s *categoryServiceImpl) CreateCategory(ctx context.Context, userID uuid.UUID, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if req.IsDeleted {
		return nil, validationError(domain.ErrFlagAtCreation)
	}
	if err := domain.ValidateTitle(req.Title); err != nil {
		return nil, validationError(err)
	}

	if _, err := s.boardRepo.FindVisible(ctx, userID, req.BoardID); err != nil {
		return nil, repoError(err, "Board not found", "Failed to fetch board")
	}
	p, err := findParticipant(ctx, s.participantRepo, req.BoardID, userID)
	if err != nil {
		return nil, err
	}
	if err := policy.Authorize(userID, p, policy.ActionCreate, policy.Target{Kind: policy.KindCategory}); err != nil {
		return nil, err
	}

	category := &domain.GoalCategory{BoardID: req.BoardID, UserID: userID, Title: req.Title}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create category", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementCreated(metrics.EntityCategory)
	}
	return toCategoryResponse(category), nil
}

func (s *categoryServiceImpl) GetCategory(ctx context.Context, userID, categoryID uuid.UUID) (*dto.CategoryResponse, error) {
	category, err := s.categoryRepo.FindVisible(ctx, userID, categoryID)
	if err != nil {
		return nil, repoError(err, "Category not found", "Failed to fetch category")
	}
	return toCategoryResponse(category), nil
}

func (s *categoryServiceImpl) ListCategories(ctx context.Context, userID uuid.UUID, params url.Values) (*dto.PageResponse, error) {
	q, err := filter.Categories.Parse(params)
	if err != nil {
		return nil, queryError(err)
	}

	categories, total, err := s.categoryRepo.ListVisible(ctx, userID, q)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch categories", err.Error())
	}

	items := make([]*dto.CategoryResponse, len(categories))
	for i, c := range categories {
		items[i] = toCategoryResponse(c)
	}
	return newPage(items, total, q), nil
}

func (s *categoryServiceImpl) UpdateCategory(ctx context.Context, userID, categoryID uuid.UUID, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := s.categoryRepo.FindVisible(ctx, userID, categoryID)
	if err != nil {
		return nil, repoError(err, "Category not found", "Failed to fetch category")
	}

	p, err := findParticipant(ctx, s.participantRepo, category.BoardID, userID)
	if err != nil {
		return nil, err
	}
	if err := policy.Authorize(userID, p, policy.ActionUpdate, policy.Target{Kind: policy.KindCategory}); err != nil {
		return nil, err
	}

	if req.Title == nil {
		return toCategoryResponse(category), nil
	}
	if err := domain.ValidateTitle(*req.Title); err != nil {
		return nil, validationError(err)
	}
	if err := s.categoryRepo.UpdateTitle(ctx, categoryID, *req.Title); err != nil {
		return nil, repoError(err, "Category not found", "Failed to update category")
	}

	updated, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, repoError(err, "Category not found", "Failed to fetch category")
	}
	return toCategoryResponse(updated), nil
}

// DeleteCategory soft-deletes the category and archives its goals
func (s *categoryServiceImpl) DeleteCategory(ctx context.Context, userID, categoryID uuid.UUID) error {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return repoError(err, "Category not found", "Failed to fetch category")
	}
	board, err := s.boardRepo.FindByID(ctx, category.BoardID)
	if err != nil {
		return repoError(err, "Category not found", "Failed to fetch board")
	}

	p, err := findParticipant(ctx, s.participantRepo, category.BoardID, userID)
	if err != nil {
		return err
	}

	target := policy.Target{Kind: policy.KindCategory}
	if category.IsDeleted || board.IsDeleted {
		return authorizeGone(userID, p, policy.ActionDelete, target, "Category already deleted")
	}
	if err := policy.Authorize(userID, p, policy.ActionDelete, target); err != nil {
		return err
	}

	res, err := s.lifecycle.DeleteCategory(ctx, categoryID)
	if s.metrics != nil {
		s.metrics.RecordCascade("delete_category", res.Goals, err)
	}
	if err != nil {
		s.logger.Error("Category cascade failed",
			zap.String("category_id", categoryID.String()),
			zap.Error(err),
		)
		return cascadeError(err, "Category already deleted")
	}
	return nil
}
