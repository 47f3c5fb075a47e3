package commands

import (
	"context"
	"fmt"

	"ricettario/internal/application"
	"ricettario/internal/domain"
	"ricettario/internal/ports"
)

// ListRecipesCommand lists all recipes in the store
type ListRecipesCommand struct {
	repo ports.RecipeRepository
}

// NewListRecipesCommand creates a new ListRecipesCommand
func NewListRecipesCommand(repo ports.RecipeRepository) *ListRecipesCommand {
	return &ListRecipesCommand{repo: repo}
}

// Execute runs the list recipes command
func (c *ListRecipesCommand) Execute(ctx context.Context) ([]domain.Recipe, error) {
	return c.repo.List(ctx)
}

// ListIngredientsCommand lists the ingredient catalog
type ListIngredientsCommand struct {
	repo ports.RecipeRepository
}

// NewListIngredientsCommand creates a new ListIngredientsCommand
func NewListIngredientsCommand(repo ports.RecipeRepository) *ListIngredientsCommand {
	return &ListIngredientsCommand{repo: repo}
}

// Execute runs the list ingredients command
func (c *ListIngredientsCommand) Execute(ctx context.Context) ([]string, error) {
	return c.repo.Ingredients(ctx)
}

// GetRecipeCommand loads a single recipe
type GetRecipeCommand struct {
	repo ports.RecipeRepository
	ID   int64
}

// NewGetRecipeCommand creates a new GetRecipeCommand
func NewGetRecipeCommand(repo ports.RecipeRepository, id int64) *GetRecipeCommand {
	return &GetRecipeCommand{repo: repo, ID: id}
}

// Execute runs the get recipe command
func (c *GetRecipeCommand) Execute(ctx context.Context) (*domain.Recipe, error) {
	if err := application.ValidateID(c.ID); err != nil {
		return nil, err
	}

	recipe, err := c.repo.Get(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("recipe %d: %w", c.ID, err)
	}
	return recipe, nil
}
