package domain

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

const (
	MaxTitleLength       = 255
	MaxDescriptionLength = 255
	MaxCommentLength     = 255
)

// ErrFlagAtCreation is returned when a lifecycle-only flag arrives in a creation request
var ErrFlagAtCreation = errors.New("lifecycle flags cannot be set on creation")

// ValidateTitle checks a board, category or goal title
func ValidateTitle(title string) error {
	return validateLength("title", title, 1, MaxTitleLength)
}

// ValidateDescription checks an optional goal description
func ValidateDescription(description string) error {
	return validateLength("description", description, 0, MaxDescriptionLength)
}

// ValidateCommentText checks comment text
func ValidateCommentText(text string) error {
	return validateLength("text", text, 1, MaxCommentLength)
}

func validateLength(field, value string, min, max int) error {
	n := utf8.RuneCountInString(value)
	if n < min {
		return fmt.Errorf("%s must be at least %d characters", field, min)
	}
	if n > max {
		return fmt.Errorf("%s must be at most %d characters", field, max)
	}
	return nil
}
