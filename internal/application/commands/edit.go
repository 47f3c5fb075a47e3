package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"ricettario/internal/application"
	"ricettario/internal/domain"
	"ricettario/internal/ports"
)

// EditRecipeResult contains the result of an edit operation
type EditRecipeResult struct {
	Recipe   *domain.Recipe
	Field    application.EditField
	Previous domain.Difficulty
	Message  string
}

// EditRecipeCommand changes one field of a stored recipe. Cooking time and
// ingredient edits recompute the difficulty before the record is written.
type EditRecipeCommand struct {
	repo       ports.RecipeRepository
	classifier domain.Classifier
	ID         int64
	Field      application.EditField
	Value      string
}

// NewEditRecipeCommand creates a new EditRecipeCommand
func NewEditRecipeCommand(repo ports.RecipeRepository, classifier domain.Classifier, id int64, field application.EditField, value string) *EditRecipeCommand {
	return &EditRecipeCommand{
		repo:       repo,
		classifier: classifier,
		ID:         id,
		Field:      field,
		Value:      value,
	}
}

// Validate checks if the edit operation is valid
func (c *EditRecipeCommand) Validate() error {
	if err := application.ValidateID(c.ID); err != nil {
		return err
	}

	if c.Field == application.FieldUnknown {
		return &application.ValidationError{
			Field:   "field",
			Message: "field must be name, cooking_time or ingredients",
		}
	}

	return application.ValidateRequired(c.Field.String(), c.Value)
}

// Execute runs the edit command
func (c *EditRecipeCommand) Execute(ctx context.Context) (*EditRecipeResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	current, err := c.repo.Get(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe %d: %w", c.ID, err)
	}

	// Work on a copy so a rejected value never touches the loaded record.
	edited := current.Clone()
	if err := c.apply(&edited); err != nil {
		return nil, err
	}

	in := application.RecipeInput{
		Name:        edited.Name,
		CookingTime: edited.CookingTime,
		Ingredients: edited.Ingredients,
	}
	if err := application.ValidateRecipe(in); err != nil {
		return nil, err
	}

	edited.Recalculate(c.classifier)

	if err := c.repo.Update(ctx, &edited); err != nil {
		return nil, fmt.Errorf("failed to update recipe %d: %w", c.ID, err)
	}

	msg := fmt.Sprintf("Updated %s of recipe %d", c.Field, edited.ID)
	if c.Field.Recalculates() {
		msg += fmt.Sprintf("; difficulty recalculated to %s", edited.Difficulty)
	}

	return &EditRecipeResult{
		Recipe:   &edited,
		Field:    c.Field,
		Previous: current.Difficulty,
		Message:  msg,
	}, nil
}

func (c *EditRecipeCommand) apply(r *domain.Recipe) error {
	value := strings.TrimSpace(c.Value)

	switch c.Field {
	case application.FieldName:
		r.Name = value
	case application.FieldCookingTime:
		minutes, err := ParseCookingTime(value)
		if err != nil {
			return err
		}
		r.CookingTime = minutes
	case application.FieldIngredients:
		r.Ingredients = domain.DedupeIngredients(domain.ParseIngredientList(value))
	}
	return nil
}

// ParseCookingTime parses user input for a cooking time in minutes.
func ParseCookingTime(s string) (int, error) {
	minutes, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &application.ValidationError{
			Field:   "cooking_time",
			Message: "cooking time should be a number",
		}
	}
	if minutes <= 0 {
		return 0, &application.ValidationError{
			Field:   "cooking_time",
			Message: "cooking time should be a positive number",
		}
	}
	return minutes, nil
}
