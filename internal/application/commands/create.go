package commands

import (
	"context"
	"fmt"
	"strings"

	"ricettario/internal/application"
	"ricettario/internal/domain"
	"ricettario/internal/ports"
)

// CreateRecipeResult contains the result of creating a recipe
type CreateRecipeResult struct {
	Recipe  *domain.Recipe
	Message string
}

// CreateRecipeCommand validates, classifies and stores a new recipe
type CreateRecipeCommand struct {
	repo        ports.RecipeRepository
	classifier  domain.Classifier
	Name        string
	CookingTime int
	Ingredients []string
}

// NewCreateRecipeCommand creates a new CreateRecipeCommand
func NewCreateRecipeCommand(repo ports.RecipeRepository, classifier domain.Classifier, name string, cookingTime int, ingredients []string) *CreateRecipeCommand {
	return &CreateRecipeCommand{
		repo:        repo,
		classifier:  classifier,
		Name:        name,
		CookingTime: cookingTime,
		Ingredients: ingredients,
	}
}

func (c *CreateRecipeCommand) input() application.RecipeInput {
	return application.RecipeInput{
		Name:        strings.TrimSpace(c.Name),
		CookingTime: c.CookingTime,
		Ingredients: domain.DedupeIngredients(c.Ingredients),
	}
}

// Validate checks if the create operation is valid
func (c *CreateRecipeCommand) Validate() error {
	return application.ValidateRecipe(c.input())
}

// Execute runs the create recipe command
func (c *CreateRecipeCommand) Execute(ctx context.Context) (*CreateRecipeResult, error) {
	in := c.input()
	if err := application.ValidateRecipe(in); err != nil {
		return nil, err
	}

	recipe := &domain.Recipe{
		Name:        in.Name,
		CookingTime: in.CookingTime,
		Ingredients: in.Ingredients,
	}
	recipe.Recalculate(c.classifier)

	if err := c.repo.Create(ctx, recipe); err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}

	return &CreateRecipeResult{
		Recipe:  recipe,
		Message: fmt.Sprintf("Created recipe: %d %s (%s)", recipe.ID, recipe.Name, recipe.Difficulty),
	}, nil
}
