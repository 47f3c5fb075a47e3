package commands

import (
	"context"
	"errors"
	"testing"

	"ricettario/internal/application"
	"ricettario/internal/domain"
)

func TestCreateRecipeCommand_Validate(t *testing.T) {
	tests := []struct {
		name        string
		recipeName  string
		cookingTime int
		ingredients []string
		wantErr     bool
		errMsg      string
	}{
		{
			name:        "valid recipe",
			recipeName:  "Tea",
			cookingTime: 5,
			ingredients: []string{"tea leaves", "water"},
		},
		{
			name:        "empty name",
			recipeName:  "   ",
			cookingTime: 5,
			ingredients: []string{"water"},
			wantErr:     true,
			errMsg:      "recipe name is required",
		},
		{
			name:        "name with punctuation",
			recipeName:  "Tea!",
			cookingTime: 5,
			ingredients: []string{"water"},
			wantErr:     true,
			errMsg:      "letters, digits and spaces",
		},
		{
			name:        "zero cooking time",
			recipeName:  "Tea",
			cookingTime: 0,
			ingredients: []string{"water"},
			wantErr:     true,
			errMsg:      "cooking time must be a positive number",
		},
		{
			name:        "no ingredients",
			recipeName:  "Tea",
			cookingTime: 5,
			ingredients: nil,
			wantErr:     true,
			errMsg:      "at least one ingredient is required",
		},
		{
			name:        "only blank ingredients",
			recipeName:  "Tea",
			cookingTime: 5,
			ingredients: []string{" ", ""},
			wantErr:     true,
			errMsg:      "at least one ingredient is required",
		},
		{
			name:        "ingredient with digits",
			recipeName:  "Tea",
			cookingTime: 5,
			ingredients: []string{"water2"},
			wantErr:     true,
			errMsg:      "may contain only letters and spaces",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &CreateRecipeCommand{
				Name:        tt.recipeName,
				CookingTime: tt.cookingTime,
				Ingredients: tt.ingredients,
			}
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				var ve *application.ValidationError
				if !errors.As(err, &ve) {
					t.Errorf("expected *ValidationError, got %T", err)
				}
				if !contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestCreateRecipeCommand_Execute(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	cmd := NewCreateRecipeCommand(repo, domain.NewClassicClassifier(), " Tea ", 5, []string{"tea leaves", "water", "tea leaves"})
	result, err := cmd.Execute(ctx)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.Recipe.ID != 4 {
		t.Errorf("expected ID 4, got %d", result.Recipe.ID)
	}
	if result.Recipe.Name != "Tea" {
		t.Errorf("expected trimmed name, got %q", result.Recipe.Name)
	}
	if len(result.Recipe.Ingredients) != 2 {
		t.Errorf("expected duplicates collapsed, got %v", result.Recipe.Ingredients)
	}
	if result.Recipe.Difficulty != domain.DifficultyEasy {
		t.Errorf("expected Easy, got %s", result.Recipe.Difficulty)
	}
	if !contains(result.Message, "Created recipe: 4 Tea (Easy)") {
		t.Errorf("unexpected message %q", result.Message)
	}

	stored, err := repo.Get(ctx, 4)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.Name != "Tea" {
		t.Errorf("stored name = %q", stored.Name)
	}

	catalog, _ := repo.Ingredients(ctx)
	if catalog[len(catalog)-1] != "water" {
		t.Errorf("expected new ingredients at the end of the catalog, got %v", catalog)
	}
}

func TestCreateRecipeCommand_ExecuteRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	_, err := NewCreateRecipeCommand(repo, domain.NewClassicClassifier(), "", 5, []string{"water"}).Execute(ctx)
	if err == nil {
		t.Fatal("expected validation error")
	}

	recipes, _ := repo.List(ctx)
	if len(recipes) != 3 {
		t.Errorf("expected nothing stored, got %d recipes", len(recipes))
	}
}
