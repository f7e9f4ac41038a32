package service

import (
	"goal-board-api/internal/domain"
	"goal-board-api/internal/dto"
	"goal-board-api/internal/filter"
)

func toBoardResponse(b *domain.Board) *dto.BoardResponse {
	return &dto.BoardResponse{
		ID:        b.ID,
		Title:     b.Title,
		IsDeleted: b.IsDeleted,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func toParticipantResponse(p *domain.Participant) *dto.ParticipantResponse {
	return &dto.ParticipantResponse{
		ID:        p.ID,
		BoardID:   p.BoardID,
		UserID:    p.UserID,
		Role:      int(p.Role),
		CreatedAt: p.CreatedAt,
	}
}

func toCategoryResponse(c *domain.GoalCategory) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:        c.ID,
		BoardID:   c.BoardID,
		UserID:    c.UserID,
		Title:     c.Title,
		IsDeleted: c.IsDeleted,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toGoalResponse(g *domain.Goal) *dto.GoalResponse {
	return &dto.GoalResponse{
		ID:          g.ID,
		CategoryID:  g.CategoryID,
		UserID:      g.UserID,
		Title:       g.Title,
		Description: g.Description,
		DueDate:     g.DueDate,
		Status:      int(g.Status),
		Priority:    int(g.Priority),
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

func toCommentResponse(c *domain.Comment) *dto.CommentResponse {
	return &dto.CommentResponse{
		ID:        c.ID,
		GoalID:    c.GoalID,
		UserID:    c.UserID,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func newPage(items interface{}, total int64, q *filter.Query) *dto.PageResponse {
	return &dto.PageResponse{
		Items:  items,
		Total:  total,
		Limit:  q.Limit,
		Offset: q.Offset,
	}
}
