package application

import (
	"fmt"
	"strings"

	"ricettario/internal/domain"
)

// Re-export domain types for use by adapters
type (
	Recipe     = domain.Recipe
	Difficulty = domain.Difficulty
	Classifier = domain.Classifier
)

// EditField names the single attribute an edit changes.
type EditField int

const (
	FieldUnknown EditField = iota
	FieldName
	FieldCookingTime
	FieldIngredients
)

func (f EditField) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldCookingTime:
		return "cooking_time"
	case FieldIngredients:
		return "ingredients"
	default:
		return "unknown"
	}
}

// Recalculates reports whether editing the field changes difficulty.
func (f EditField) Recalculates() bool {
	return f == FieldCookingTime || f == FieldIngredients
}

// EditFields lists the editable fields in menu order.
var EditFields = []EditField{FieldName, FieldCookingTime, FieldIngredients}

// ParseEditField accepts a field key, a common alias, or its 1-based menu
// number.
func ParseEditField(s string) (EditField, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name", "1":
		return FieldName, nil
	case "cooking_time", "cooking-time", "time", "2":
		return FieldCookingTime, nil
	case "ingredients", "3":
		return FieldIngredients, nil
	default:
		return FieldUnknown, fmt.Errorf("%w: %q (expected name, cooking_time or ingredients)", ErrInvalidField, s)
	}
}
