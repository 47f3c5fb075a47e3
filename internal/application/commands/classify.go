package commands

import (
	"context"

	"ricettario/internal/domain"
)

// ClassifyCommand runs the active classifier on ad-hoc values
type ClassifyCommand struct {
	classifier      domain.Classifier
	CookingTime     int
	IngredientCount int
}

// NewClassifyCommand creates a new ClassifyCommand
func NewClassifyCommand(classifier domain.Classifier, cookingTime, ingredientCount int) *ClassifyCommand {
	return &ClassifyCommand{
		classifier:      classifier,
		CookingTime:     cookingTime,
		IngredientCount: ingredientCount,
	}
}

// Execute runs the classify command. It never fails.
func (c *ClassifyCommand) Execute(_ context.Context) domain.Difficulty {
	return c.classifier.Classify(c.CookingTime, c.IngredientCount)
}
