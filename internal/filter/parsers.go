package filter

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"goal-board-api/internal/domain"
)

// UUID parses a UUID value
func UUID(s string) (interface{}, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// Timestamp parses RFC3339 or a bare date (midnight UTC)
func Timestamp(s string) (interface{}, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), nil
	}
	return nil, fmt.Errorf("invalid timestamp %q", s)
}

// Status parses a goal status code or name
func Status(s string) (interface{}, error) {
	st, err := domain.ParseGoalStatus(s)
	if err != nil {
		return nil, err
	}
	return st, nil
}

// Priority parses a goal priority code or name
func Priority(s string) (interface{}, error) {
	p, err := domain.ParseGoalPriority(s)
	if err != nil {
		return nil, err
	}
	return p, nil
}
