// Package blobfile stores the whole recipe collection as one JSON document.
package blobfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"

	"ricettario/internal/domain"
	"ricettario/internal/ports"
)

// ErrCorrupt is returned by Open when the file exists but cannot be decoded.
var ErrCorrupt = errors.New("recipe file is corrupt")

// Compile-time interface check.
var _ ports.RecipeRepository = (*Store)(nil)

type document struct {
	Recipes     []record `json:"recipes_list"`
	Ingredients []string `json:"all_ingredients"`
	NextID      int64    `json:"next_id"`
}

type record struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	CookingTime int      `json:"cooking_time"`
	Ingredients []string `json:"ingredients"`
	Difficulty  string   `json:"difficulty"`
}

// Store keeps the decoded document in memory and rewrites the file after
// every change.
type Store struct {
	mu         sync.RWMutex
	path       string
	classifier domain.Classifier
	recipes    []domain.Recipe // ordered by ID
	nextID     int64
}

// NewEmpty returns a store with no recipes that will write to path.
func NewEmpty(path string, classifier domain.Classifier) *Store {
	return &Store{path: path, classifier: classifier, nextID: 1}
}

// Open loads the document at path. A missing file yields an empty store. An
// undecodable file yields an error wrapping ErrCorrupt.
func Open(path string, classifier domain.Classifier) (*Store, error) {
	s := NewEmpty(path, classifier)

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, path, err)
	}

	// Explicit IDs are claimed first; records without one, or repeating an
	// ID already claimed, are numbered after the highest.
	for _, rec := range doc.Recipes {
		s.nextID = max(s.nextID, rec.ID+1)
	}
	s.nextID = max(s.nextID, doc.NextID)

	seen := make(map[int64]bool, len(doc.Recipes))
	for _, rec := range doc.Recipes {
		r := domain.Recipe{
			ID:          rec.ID,
			Name:        rec.Name,
			CookingTime: rec.CookingTime,
			Ingredients: rec.Ingredients,
			Difficulty:  domain.ParseDifficulty(rec.Difficulty),
		}
		if r.ID <= 0 || seen[r.ID] {
			r.ID = s.nextID
			s.nextID++
		}
		seen[r.ID] = true
		s.recipes = append(s.recipes, r)
	}
	domain.SortRecipes(s.recipes)

	return s, nil
}

// Path returns the file the store writes to.
func (s *Store) Path() string { return s.path }

func (s *Store) load(r domain.Recipe) domain.Recipe {
	r = r.Clone()
	if s.classifier != nil {
		r.Recalculate(s.classifier)
	}
	return r
}

func (s *Store) index(id int64) int {
	for i, r := range s.recipes {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// List returns every recipe ordered by ID.
func (s *Store) List(ctx context.Context) ([]domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Recipe, len(s.recipes))
	for i, r := range s.recipes {
		out[i] = s.load(r)
	}
	return out, nil
}

// Get returns a recipe by ID.
func (s *Store) Get(ctx context.Context, id int64) (*domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.index(id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	r := s.load(s.recipes[i])
	return &r, nil
}

// Create assigns the next ID, appends the recipe and saves the file.
func (s *Store) Create(ctx context.Context, recipe *domain.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	recipe.ID = s.nextID
	s.recipes = append(s.recipes, recipe.Clone())
	s.nextID++

	if err := s.save(); err != nil {
		s.recipes = s.recipes[:len(s.recipes)-1]
		s.nextID--
		recipe.ID = 0
		return err
	}
	return nil
}

// Update replaces a recipe and saves the file.
func (s *Store) Update(ctx context.Context, recipe *domain.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(recipe.ID)
	if i < 0 {
		return domain.ErrNotFound
	}

	prev := s.recipes[i]
	s.recipes[i] = recipe.Clone()
	if err := s.save(); err != nil {
		s.recipes[i] = prev
		return err
	}
	return nil
}

// Delete removes a recipe and saves the file.
func (s *Store) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return domain.ErrNotFound
	}

	prev := s.recipes
	s.recipes = append(append([]domain.Recipe(nil), prev[:i]...), prev[i+1:]...)
	if err := s.save(); err != nil {
		s.recipes = prev
		return err
	}
	return nil
}

// Ingredients returns the catalog rebuilt from the stored recipes.
func (s *Store) Ingredients(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.BuildCatalog(s.recipes).Enumerate(), nil
}

// Close is a no-op; every change is already on disk.
func (s *Store) Close() error { return nil }

// save writes the document to a temporary file in the same directory and
// renames it over the target. Callers hold the write lock.
func (s *Store) save() error {
	doc := document{
		Recipes:     make([]record, len(s.recipes)),
		Ingredients: domain.BuildCatalog(s.recipes).Enumerate(),
		NextID:      s.nextID,
	}
	for i, r := range s.recipes {
		doc.Recipes[i] = record{
			ID:          r.ID,
			Name:        r.Name,
			CookingTime: r.CookingTime,
			Ingredients: r.Ingredients,
			Difficulty:  r.Difficulty.String(),
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode recipes: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write recipes: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write recipes: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}
