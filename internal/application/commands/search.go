package commands

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"ricettario/internal/application"
	"ricettario/internal/domain"
	"ricettario/internal/ports"
)

// SearchByIngredientsCommand finds recipes that contain every selected
// ingredient
type SearchByIngredientsCommand struct {
	repo        ports.RecipeRepository
	Ingredients []string
}

// NewSearchByIngredientsCommand creates a new SearchByIngredientsCommand
func NewSearchByIngredientsCommand(repo ports.RecipeRepository, ingredients ...string) *SearchByIngredientsCommand {
	return &SearchByIngredientsCommand{
		repo:        repo,
		Ingredients: ingredients,
	}
}

// Validate checks that at least one ingredient was selected
func (c *SearchByIngredientsCommand) Validate() error {
	if len(domain.DedupeIngredients(c.Ingredients)) == 0 {
		return application.ErrEmptySelection
	}
	return nil
}

// Execute runs the search and returns matches ordered by ID
func (c *SearchByIngredientsCommand) Execute(ctx context.Context) ([]domain.Recipe, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	recipes, err := c.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return domain.SearchByIngredients(recipes, domain.DedupeIngredients(c.Ingredients)...), nil
}

// SelectIngredientsCommand resolves a menu selection such as "1 3 5"
// against the current ingredient catalog
type SelectIngredientsCommand struct {
	repo      ports.RecipeRepository
	Selection string
}

// NewSelectIngredientsCommand creates a new SelectIngredientsCommand
func NewSelectIngredientsCommand(repo ports.RecipeRepository, selection string) *SelectIngredientsCommand {
	return &SelectIngredientsCommand{
		repo:      repo,
		Selection: selection,
	}
}

// Execute returns the selected ingredient names in selection order
func (c *SelectIngredientsCommand) Execute(ctx context.Context) ([]string, error) {
	if strings.TrimSpace(c.Selection) == "" {
		return nil, application.ErrEmptySelection
	}

	catalog, err := c.repo.Ingredients(ctx)
	if err != nil {
		return nil, err
	}

	return ResolveSelection(catalog, c.Selection)
}

// ResolveSelection maps whitespace- or comma-separated 1-based menu numbers
// to catalog entries. Repeated numbers are collapsed.
func ResolveSelection(catalog []string, selection string) ([]string, error) {
	fields := strings.FieldsFunc(selection, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, application.ErrEmptySelection
	}

	var (
		picked  []string
		invalid []int
		seen    = make(map[int]bool)
	)
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, &application.ValidationError{
				Field:   "selection",
				Message: "please enter valid numbers separated by spaces",
			}
		}
		if n < 1 || n > len(catalog) {
			invalid = append(invalid, n)
			continue
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		picked = append(picked, catalog[n-1])
	}

	if len(invalid) > 0 {
		return nil, &application.SelectionError{Invalid: invalid, Max: len(catalog)}
	}
	return picked, nil
}

// ScoredRecipe pairs a recipe with its relevance to a name query
type ScoredRecipe struct {
	domain.Recipe
	Score int
}

// FilterByName ranks recipes by fuzzy relevance of their name to the query
// and drops those that do not match at all.
func FilterByName(recipes []domain.Recipe, query string) []ScoredRecipe {
	scored := make([]ScoredRecipe, 0, len(recipes))
	for _, r := range recipes {
		if s := FuzzyScore(r.Name, query); s > 0 {
			scored = append(scored, ScoredRecipe{Recipe: r, Score: s})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

// FuzzyScore calculates a relevance score for how well target matches query
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	if strings.Contains(target, query) {
		score := 100
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	// Fuzzy match: chars must appear in order
	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(target) && queryIdx < len(query); i++ {
		if target[i] == query[queryIdx] {
			if prevMatchIdx == i-1 {
				score += 10 // consecutive chars
			}
			if i == 0 {
				score += 15 // start of string
			}
			if i > 0 && target[i-1] == ' ' {
				score += 10 // start of word
			}
			score += 1
			prevMatchIdx = i
			queryIdx++
		}
	}

	if queryIdx == len(query) {
		return score
	}
	return 0
}
