package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound         = errors.New("resource not found")
	ErrTemplateNotFound = fmt.Errorf("%w: template", ErrNotFound)

	// Mutation errors. InvalidIndex is the only condition the structure
	// engine actively reports; everything else degrades to a fallback.
	ErrInvalidIndex = errors.New("index out of range")

	// Validation errors
	ErrEmptyMatrix   = errors.New("matrix has no rows")
	ErrUnsupported   = errors.New("unsupported file type")
	ErrInvalidUpload = errors.New("invalid upload")
)

// Error constructors with context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

func NewInvalidIndexError(kind string, index, bound int) error {
	return fmt.Errorf("%w: %s %d not in [0,%d)", ErrInvalidIndex, kind, index, bound)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsInvalidIndexError(err error) bool {
	return errors.Is(err, ErrInvalidIndex)
}
