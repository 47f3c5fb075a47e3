// Package memory provides a process-local recipe store.
package memory

import (
	"context"
	"sync"

	"ricettario/internal/domain"
	"ricettario/internal/ports"
)

// Compile-time interface check.
var _ ports.RecipeRepository = (*Store)(nil)

// Store holds recipes in a map keyed by ID. Safe for concurrent use.
type Store struct {
	mu         sync.RWMutex
	recipes    map[int64]domain.Recipe
	nextID     int64
	classifier domain.Classifier
}

// New creates an empty store. Difficulty is recomputed with classifier on
// every read; a nil classifier keeps the stored value.
func New(classifier domain.Classifier) *Store {
	return &Store{
		recipes:    make(map[int64]domain.Recipe),
		nextID:     1,
		classifier: classifier,
	}
}

// Seed creates each recipe in order, assigning IDs as Create does.
func (s *Store) Seed(ctx context.Context, recipes ...domain.Recipe) error {
	for i := range recipes {
		if err := s.Create(ctx, &recipes[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) load(r domain.Recipe) domain.Recipe {
	r = r.Clone()
	if s.classifier != nil {
		r.Recalculate(s.classifier)
	}
	return r
}

// List returns every recipe ordered by ID.
func (s *Store) List(ctx context.Context) ([]domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Recipe, 0, len(s.recipes))
	for _, r := range s.recipes {
		out = append(out, s.load(r))
	}
	domain.SortRecipes(out)
	return out, nil
}

// Get returns a recipe by ID.
func (s *Store) Get(ctx context.Context, id int64) (*domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.recipes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	loaded := s.load(r)
	return &loaded, nil
}

// Create assigns the next ID and stores a copy of the recipe.
func (s *Store) Create(ctx context.Context, recipe *domain.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	recipe.ID = s.nextID
	s.nextID++
	s.recipes[recipe.ID] = recipe.Clone()
	return nil
}

// Update replaces a recipe. The ID must already exist.
func (s *Store) Update(ctx context.Context, recipe *domain.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.recipes[recipe.ID]; !ok {
		return domain.ErrNotFound
	}
	s.recipes[recipe.ID] = recipe.Clone()
	return nil
}

// Delete removes a recipe by ID.
func (s *Store) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.recipes[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.recipes, id)
	return nil
}

// Ingredients returns the catalog built from the stored recipes.
func (s *Store) Ingredients(ctx context.Context) ([]string, error) {
	recipes, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.BuildCatalog(recipes).Enumerate(), nil
}

// Close is a no-op.
func (s *Store) Close() error { return nil }
