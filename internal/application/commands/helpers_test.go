package commands

import (
	"context"
	"strings"
	"testing"

	"ricettario/internal/adapters/memory"
	"ricettario/internal/domain"
)

// newTestRepo returns a memory store seeded with three recipes:
// 1 Pancakes (15 min; flour, eggs, milk)
// 2 Omelette (5 min; eggs, cheese)
// 3 Quiche (45 min; flour, eggs, milk, cheese, spinach)
func newTestRepo(t *testing.T) *memory.Store {
	t.Helper()

	repo := memory.New(domain.NewClassicClassifier())
	err := repo.Seed(context.Background(),
		domain.Recipe{Name: "Pancakes", CookingTime: 15, Ingredients: []string{"flour", "eggs", "milk"}},
		domain.Recipe{Name: "Omelette", CookingTime: 5, Ingredients: []string{"eggs", "cheese"}},
		domain.Recipe{Name: "Quiche", CookingTime: 45, Ingredients: []string{"flour", "eggs", "milk", "cheese", "spinach"}},
	)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return repo
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

func recipeNames(recipes []domain.Recipe) []string {
	names := make([]string, len(recipes))
	for i, r := range recipes {
		names[i] = r.Name
	}
	return names
}
