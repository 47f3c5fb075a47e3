package application

import (
	"errors"
	"fmt"

	"ricettario/internal/domain"
)

// Sentinel errors for common conditions
var (
	ErrNotFound       = domain.ErrNotFound
	ErrInvalidField   = errors.New("invalid field")
	ErrEmptySelection = errors.New("no ingredients selected")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// SelectionError reports menu numbers that do not match any catalog entry
type SelectionError struct {
	Invalid []int
	Max     int
}

func (e *SelectionError) Error() string {
	if e.Max == 0 {
		return "no ingredients available to select"
	}
	return fmt.Sprintf("invalid numbers: %v (expected 1 to %d)", e.Invalid, e.Max)
}

func (e *SelectionError) Is(target error) bool {
	return target == ErrInvalidField
}
