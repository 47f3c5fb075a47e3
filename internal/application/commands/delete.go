package commands

import (
	"context"
	"fmt"

	"ricettario/internal/application"
	"ricettario/internal/ports"
)

// DeleteResult contains the result of a delete operation
type DeleteResult struct {
	DeletedID   int64
	DeletedName string
	Message     string
}

// DeleteRecipeCommand deletes a recipe by ID
type DeleteRecipeCommand struct {
	repo ports.RecipeRepository
	ID   int64
}

// NewDeleteRecipeCommand creates a new DeleteRecipeCommand
func NewDeleteRecipeCommand(repo ports.RecipeRepository, id int64) *DeleteRecipeCommand {
	return &DeleteRecipeCommand{
		repo: repo,
		ID:   id,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteRecipeCommand) Validate() error {
	return application.ValidateID(c.ID)
}

// Execute runs the delete command
func (c *DeleteRecipeCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	recipe, err := c.repo.Get(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete recipe %d: %w", c.ID, err)
	}

	if err := c.repo.Delete(ctx, c.ID); err != nil {
		return nil, fmt.Errorf("failed to delete recipe %d: %w", c.ID, err)
	}

	return &DeleteResult{
		DeletedID:   c.ID,
		DeletedName: recipe.Name,
		Message:     fmt.Sprintf("Deleted recipe %d %s", c.ID, recipe.Name),
	}, nil
}
