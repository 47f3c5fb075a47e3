package ports

import (
	"context"

	"ricettario/internal/domain"
)

// RecipeRepository defines the interface for recipe storage operations.
// Implementations recompute difficulty with their classifier when loading
// records and return domain.ErrNotFound for unknown IDs.
type RecipeRepository interface {
	// List returns every recipe ordered by ID
	List(ctx context.Context) ([]domain.Recipe, error)
	Get(ctx context.Context, id int64) (*domain.Recipe, error)

	// Create assigns an ID to the recipe and stores it
	Create(ctx context.Context, recipe *domain.Recipe) error
	// Update replaces name, cooking time, ingredients and difficulty
	Update(ctx context.Context, recipe *domain.Recipe) error
	Delete(ctx context.Context, id int64) error

	// Ingredients returns the ingredient catalog in first-seen order
	Ingredients(ctx context.Context) ([]string, error)

	Close() error
}
