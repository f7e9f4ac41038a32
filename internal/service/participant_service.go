package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"goal-board-api/internal/cache"
	"goal-board-api/internal/domain"
	"goal-board-api/internal/dto"
	"goal-board-api/internal/metrics"
	"goal-board-api/internal/policy"
	"goal-board-api/internal/repository"
	"goal-board-api/internal/response"
)

// ParticipantService defines the interface for participant business logic
type ParticipantService interface {
	ListParticipants(ctx context.Context, userID, boardID uuid.UUID) ([]*dto.ParticipantResponse, error)
	AddParticipant(ctx context.Context, userID, boardID uuid.UUID, req *dto.AddParticipantRequest) (*dto.ParticipantResponse, error)
	UpdateParticipantRole(ctx context.Context, userID, boardID, memberID uuid.UUID, req *dto.UpdateParticipantRequest) (*dto.ParticipantResponse, error)
	RemoveParticipant(ctx context.Context, userID, boardID, memberID uuid.UUID) error
}

// participantServiceImpl is the implementation of ParticipantService
type participantServiceImpl struct {
	participantRepo repository.ParticipantRepository
	boardRepo       repository.BoardRepository
	cache           cache.BoardListCache
	metrics         *metrics.Metrics
	logger          *zap.Logger
}

// NewParticipantService creates a new instance of ParticipantService
func NewParticipantService(
	participantRepo repository.ParticipantRepository,
	boardRepo repository.BoardRepository,
	boardCache cache.BoardListCache,
	m *metrics.Metrics,
	logger *zap.Logger,
) ParticipantService {
	if boardCache == nil {
		boardCache = cache.Noop{}
	}
	return &participantServiceImpl{
		participantRepo: participantRepo,
		boardRepo:       boardRepo,
		cache:           boardCache,
		metrics:         m,
		logger:          logger,
	}
}

// ListParticipants lists the participants of a board visible to the user
func (s *participantServiceImpl) ListParticipants(ctx context.Context, userID, boardID uuid.UUID) ([]*dto.ParticipantResponse, error) {
	if _, err := s.authorize(ctx, userID, boardID, policy.ActionRead); err != nil {
		return nil, err
	}

	participants, err := s.participantRepo.ListByBoard(ctx, boardID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch participants", err.Error())
	}

	responses := make([]*dto.ParticipantResponse, len(participants))
	for i, p := range participants {
		responses[i] = toParticipantResponse(p)
	}
	return responses, nil
}

// AddParticipant adds a writer or reader to the board
func (s *participantServiceImpl) AddParticipant(ctx context.Context, userID, boardID uuid.UUID, req *dto.AddParticipantRequest) (*dto.ParticipantResponse, error) {
	if _, err := s.authorize(ctx, userID, boardID, policy.ActionManageParticipants); err != nil {
		return nil, err
	}

	role := domain.RoleReader
	if req.Role != nil {
		parsed, err := parseMemberRole(*req.Role)
		if err != nil {
			return nil, err
		}
		role = parsed
	}

	existing, err := findParticipant(ctx, s.participantRepo, boardID, req.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Participant already exists", "")
	}

	participant := &domain.Participant{BoardID: boardID, UserID: req.UserID, Role: role}
	if err := s.participantRepo.Create(ctx, participant); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to add participant", err.Error())
	}

	s.cache.Evict(ctx, req.UserID)
	if s.metrics != nil {
		s.metrics.IncrementCreated(metrics.EntityParticipant)
	}
	return toParticipantResponse(participant), nil
}

// UpdateParticipantRole changes the role of a non-owner participant
func (s *participantServiceImpl) UpdateParticipantRole(ctx context.Context, userID, boardID, memberID uuid.UUID, req *dto.UpdateParticipantRequest) (*dto.ParticipantResponse, error) {
	if _, err := s.authorize(ctx, userID, boardID, policy.ActionManageParticipants); err != nil {
		return nil, err
	}

	role, err := parseMemberRole(req.Role)
	if err != nil {
		return nil, err
	}

	member, err := s.findMember(ctx, boardID, memberID)
	if err != nil {
		return nil, err
	}
	if member.Role == domain.RoleOwner {
		return nil, response.NewAppError(response.ErrCodeValidation, "The board owner's role cannot be changed", "")
	}

	if err := s.participantRepo.UpdateRole(ctx, boardID, memberID, role); err != nil {
		return nil, repoError(err, "Participant not found", "Failed to update participant")
	}
	member.Role = role
	return toParticipantResponse(member), nil
}

// RemoveParticipant removes a non-owner participant from the board
func (s *participantServiceImpl) RemoveParticipant(ctx context.Context, userID, boardID, memberID uuid.UUID) error {
	if _, err := s.authorize(ctx, userID, boardID, policy.ActionManageParticipants); err != nil {
		return err
	}

	member, err := s.findMember(ctx, boardID, memberID)
	if err != nil {
		return err
	}
	if member.Role == domain.RoleOwner {
		return response.NewAppError(response.ErrCodeValidation, "The board owner cannot be removed", "")
	}

	if err := s.participantRepo.Delete(ctx, boardID, memberID); err != nil {
		return repoError(err, "Participant not found", "Failed to remove participant")
	}

	s.cache.Evict(ctx, memberID)
	s.logger.Info("Participant removed",
		zap.String("board_id", boardID.String()),
		zap.String("user_id", memberID.String()),
	)
	return nil
}

// authorize checks that the board is visible and the requester may perform action on its participants
func (s *participantServiceImpl) authorize(ctx context.Context, userID, boardID uuid.UUID, action policy.Action) (*domain.Participant, error) {
	if _, err := s.boardRepo.FindVisible(ctx, userID, boardID); err != nil {
		return nil, repoError(err, "Board not found", "Failed to fetch board")
	}

	p, err := findParticipant(ctx, s.participantRepo, boardID, userID)
	if err != nil {
		return nil, err
	}
	if err := policy.Authorize(userID, p, action, policy.Target{Kind: policy.KindParticipant}); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *participantServiceImpl) findMember(ctx context.Context, boardID, memberID uuid.UUID) (*domain.Participant, error) {
	member, err := s.participantRepo.Find(ctx, boardID, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Participant not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch participant", err.Error())
	}
	return member, nil
}

// parseMemberRole accepts writer or reader. A board has exactly one owner.
func parseMemberRole(v dto.Enum) (domain.Role, error) {
	role, err := domain.ParseRole(string(v))
	if err != nil {
		return 0, validationError(err)
	}
	if role == domain.RoleOwner {
		return 0, response.NewAppError(response.ErrCodeValidation, "A board has exactly one owner", "")
	}
	return role, nil
}
