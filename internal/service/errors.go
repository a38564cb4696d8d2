package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrValidation marks a request that is missing required fields.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a lookup that matched no row.
	ErrNotFound = errors.New("not found")
)

// Error carries a message that is safe to return to API clients.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func validationError(message string) error {
	return &Error{Kind: ErrValidation, Message: message}
}

func notFoundError(entity string) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf("%s not found", entity)}
}

// lookupError maps a missing row to ErrNotFound and passes other failures through.
func lookupError(entity string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFoundError(entity)
	}
	return fmt.Errorf("find %s: %w", entity, err)
}
