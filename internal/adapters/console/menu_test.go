package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"ricettario/internal/adapters/memory"
	"ricettario/internal/domain"
)

func seeded(t *testing.T) *memory.Store {
	t.Helper()
	repo := memory.New(domain.NewClassicClassifier())
	err := repo.Seed(context.Background(),
		domain.Recipe{Name: "Pancakes", CookingTime: 15, Ingredients: []string{"flour", "eggs", "milk"}},
		domain.Recipe{Name: "Omelette", CookingTime: 5, Ingredients: []string{"eggs", "cheese"}},
	)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return repo
}

func run(t *testing.T, repo *memory.Store, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")

	if err := New(repo, domain.NewClassicClassifier(), in, &out).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String()
}

func TestMenu_CreateWithRetries(t *testing.T) {
	repo := memory.New(domain.NewClassicClassifier())

	out := run(t, repo,
		"1",
		"", "Tea!", "Tea",
		"soon", "0", "4",
		"done", "water", "water", "2", "tea leaves", "done",
		"q",
	)

	for _, want := range []string{
		"Recipe name cannot be empty.",
		"Recipe name should contain only letters, digits and spaces.",
		"cooking time should be a number",
		"cooking time should be a positive number",
		"At least one ingredient is required.",
		`"water" is already in the list.`,
		"Ingredient should contain only letters and spaces.",
		"Recipe 'Tea' added successfully! Difficulty: Easy",
		"Goodbye!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}

	recipes, _ := repo.List(context.Background())
	if len(recipes) != 1 || len(recipes[0].Ingredients) != 2 {
		t.Fatalf("unexpected stored recipes: %+v", recipes)
	}
}

func TestMenu_ViewAll(t *testing.T) {
	out := run(t, seeded(t), "2", "quit")

	if !strings.Contains(out, "Found 2 recipe(s)") {
		t.Errorf("expected count line\n%s", out)
	}
	if !strings.Contains(out, "RECIPE: PANCAKES") || !strings.Contains(out, "Difficulty:   Intermediate") {
		t.Errorf("expected pancakes block\n%s", out)
	}
}

func TestMenu_ViewAllEmpty(t *testing.T) {
	out := run(t, memory.New(domain.NewClassicClassifier()), "2", "q")
	if !strings.Contains(out, "No recipes found.") {
		t.Errorf("expected empty notice\n%s", out)
	}
}

func TestMenu_Search(t *testing.T) {
	// catalog: 1 flour, 2 eggs, 3 milk, 4 cheese
	out := run(t, seeded(t), "3", "", "9", "two", "2 4", "q")

	for _, want := range []string{
		"1. flour",
		"4. cheese",
		"Please enter at least one number.",
		"Invalid numbers: [9]. Please enter numbers between 1 and 4.",
		"Please enter valid numbers separated by spaces.",
		"Searching for recipes containing: eggs, cheese",
		"RECIPE: OMELETTE",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "RECIPE: PANCAKES") {
		t.Errorf("pancakes lack cheese and must not match\n%s", out)
	}
}

func TestMenu_SearchNoMatch(t *testing.T) {
	out := run(t, seeded(t), "3", "1 4", "q")
	if !strings.Contains(out, "No recipes found containing all selected ingredients.") {
		t.Errorf("expected no-match notice\n%s", out)
	}
}

func TestMenu_EditCookingTime(t *testing.T) {
	repo := seeded(t)
	out := run(t, repo, "4", "x", "9", "1", "7", "2", "8", "q")

	for _, want := range []string{
		"Please enter a valid ID number.",
		"Recipe with that ID not found.",
		"Please enter 1, 2, or 3.",
		"difficulty recalculated to Easy",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}

	r, _ := repo.Get(context.Background(), 1)
	if r.CookingTime != 8 || r.Difficulty != domain.DifficultyEasy {
		t.Errorf("edit not stored: %+v", r)
	}
}

func TestMenu_EditIngredients(t *testing.T) {
	repo := seeded(t)
	run(t, repo, "4", "2", "3", "eggs", "ham", "chives", "butter", "done", "q")

	r, _ := repo.Get(context.Background(), 2)
	if domain.FormatIngredientList(r.Ingredients) != "eggs, ham, chives, butter" {
		t.Errorf("unexpected ingredients %v", r.Ingredients)
	}
	if r.Difficulty != domain.DifficultyMedium {
		t.Errorf("expected Medium, got %s", r.Difficulty)
	}
}

func TestMenu_DeleteConfirm(t *testing.T) {
	repo := seeded(t)
	out := run(t, repo, "5", "2", "maybe", "no", "5", "2", "yes", "q")

	if !strings.Contains(out, "Please enter 'yes' or 'no'.") || !strings.Contains(out, "Deletion cancelled.") {
		t.Errorf("expected confirmation handling\n%s", out)
	}
	if !strings.Contains(out, "Deleted recipe 2 Omelette") {
		t.Errorf("expected delete message\n%s", out)
	}

	recipes, _ := repo.List(context.Background())
	if len(recipes) != 1 {
		t.Errorf("expected one recipe left, got %d", len(recipes))
	}
}

func TestMenu_InvalidChoiceAndEOF(t *testing.T) {
	var out bytes.Buffer
	err := New(seeded(t), domain.NewClassicClassifier(), strings.NewReader("7\n1\nSoup"), &out).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "Invalid choice!") {
		t.Errorf("expected invalid choice notice\n%s", out.String())
	}
	if !strings.HasSuffix(strings.TrimSpace(out.String()), "Goodbye!") {
		t.Errorf("expected goodbye at EOF\n%s", out.String())
	}
}

func TestFormatRecipe(t *testing.T) {
	s := FormatRecipe(domain.Recipe{ID: 3, Name: "Tea", CookingTime: 4, Ingredients: []string{"water", "tea leaves"}, Difficulty: domain.DifficultyEasy})

	for _, want := range []string{"RECIPE: TEA", "Recipe ID:    3", "Ingredients:  water, tea leaves", "Cooking Time: 4 minutes", "Difficulty:   Easy"} {
		if !strings.Contains(s, want) {
			t.Errorf("missing %q in\n%s", want, s)
		}
	}
}

func TestMenu_CreateCountsCharactersNotBytes(t *testing.T) {
	repo := memory.New(domain.NewClassicClassifier())
	name := strings.Repeat("è", 30)
	ingredient := strings.Repeat("é", 40)

	out := run(t, repo, "1", name, "5", ingredient, "done", "q")

	if strings.Contains(out, "cannot exceed 50 characters") {
		t.Fatalf("accented input was rejected:\n%s", out)
	}
	recipes, _ := repo.List(context.Background())
	if len(recipes) != 1 || recipes[0].Name != name || recipes[0].Ingredients[0] != ingredient {
		t.Errorf("unexpected recipes %+v", recipes)
	}
}
