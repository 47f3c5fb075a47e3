package application

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
	}{
		{
			name:      "valid value",
			fieldName: "name",
			value:     "Pancakes",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "name",
			value:     "",
			wantErr:   true,
		},
		{
			name:      "whitespace only",
			fieldName: "name",
			value:     "   \t\n  ",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)

			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
					return
				}
				var ve *ValidationError
				if !errors.As(err, &ve) {
					t.Errorf("expected *ValidationError, got %T", err)
					return
				}
				if ve.Field != tt.fieldName {
					t.Errorf("expected field %q, got %q", tt.fieldName, ve.Field)
				}
				if ve.Message != "recipe name is required" {
					t.Errorf("unexpected message %q", ve.Message)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateID(t *testing.T) {
	if err := ValidateID(1); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for _, id := range []int64{0, -5} {
		err := ValidateID(id)
		if err == nil || !strings.Contains(err.Error(), "invalid recipe ID") {
			t.Errorf("ValidateID(%d) = %v, want invalid recipe ID", id, err)
		}
	}
}

func TestValidateRecipe(t *testing.T) {
	valid := RecipeInput{Name: "Pancakes 2", CookingTime: 15, Ingredients: []string{"flour", "olive oil"}}

	tests := []struct {
		name      string
		mutate    func(in *RecipeInput)
		wantField string
		wantMsg   string
	}{
		{name: "valid", mutate: func(in *RecipeInput) {}},
		{
			name:      "missing name",
			mutate:    func(in *RecipeInput) { in.Name = "" },
			wantField: "name",
			wantMsg:   "recipe name is required",
		},
		{
			name:      "name too long",
			mutate:    func(in *RecipeInput) { in.Name = strings.Repeat("a", MaxFieldLength+1) },
			wantField: "name",
			wantMsg:   "recipe name cannot exceed 50 characters",
		},
		{
			name:      "name with symbols",
			mutate:    func(in *RecipeInput) { in.Name = "Mac & Cheese" },
			wantField: "name",
			wantMsg:   "recipe name may contain only letters, digits and spaces",
		},
		{
			name:      "negative time",
			mutate:    func(in *RecipeInput) { in.CookingTime = -1 },
			wantField: "cooking_time",
			wantMsg:   "cooking time must be a positive number",
		},
		{
			name:      "no ingredients",
			mutate:    func(in *RecipeInput) { in.Ingredients = []string{} },
			wantField: "ingredients",
			wantMsg:   "at least one ingredient is required",
		},
		{
			name:      "ingredient with digits",
			mutate:    func(in *RecipeInput) { in.Ingredients = []string{"flour", "7up"} },
			wantField: "ingredients",
			wantMsg:   `ingredient "7up" may contain only letters and spaces`,
		},
		{
			name:      "ingredient too long",
			mutate:    func(in *RecipeInput) { in.Ingredients = []string{strings.Repeat("b", 51)} },
			wantField: "ingredients",
			wantMsg:   "ingredients cannot exceed 50 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			in.Ingredients = append([]string(nil), valid.Ingredients...)
			tt.mutate(&in)

			err := ValidateRecipe(in)
			if tt.wantMsg == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}

			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if ve.Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, ve.Field)
			}
			if ve.Message != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, ve.Message)
			}
		})
	}
}

func TestIsIngredientName(t *testing.T) {
	tests := map[string]bool{
		"flour":     true,
		"olive oil": true,
		"crème":     true,
		"7up":       false,
		"salt!":     false,
		"   ":       false,
		"":          false,
		"sun-dried": false,
	}
	for in, want := range tests {
		if got := IsIngredientName(in); got != want {
			t.Errorf("IsIngredientName(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestIsRecipeName(t *testing.T) {
	tests := map[string]bool{
		"Pancakes":  true,
		"Soup No 5": true,
		"Tea!":      false,
		"  ":        false,
	}
	for in, want := range tests {
		if got := IsRecipeName(in); got != want {
			t.Errorf("IsRecipeName(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseEditField(t *testing.T) {
	tests := []struct {
		in   string
		want EditField
	}{
		{"name", FieldName},
		{"1", FieldName},
		{"Cooking_Time", FieldCookingTime},
		{"time", FieldCookingTime},
		{"2", FieldCookingTime},
		{" ingredients ", FieldIngredients},
		{"3", FieldIngredients},
	}
	for _, tt := range tests {
		got, err := ParseEditField(tt.in)
		if err != nil {
			t.Errorf("ParseEditField(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseEditField(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseEditField("difficulty"); !errors.Is(err, ErrInvalidField) {
		t.Errorf("expected ErrInvalidField, got %v", err)
	}
}

func TestEditField_Recalculates(t *testing.T) {
	if FieldName.Recalculates() {
		t.Error("renaming should not recalculate")
	}
	if !FieldCookingTime.Recalculates() || !FieldIngredients.Recalculates() {
		t.Error("time and ingredient edits should recalculate")
	}
}

func TestSelectionError_IsInvalidField(t *testing.T) {
	err := error(&SelectionError{Invalid: []int{9}, Max: 3})
	if !errors.Is(err, ErrInvalidField) {
		t.Error("expected SelectionError to match ErrInvalidField")
	}
	if !strings.Contains(err.Error(), "expected 1 to 3") {
		t.Errorf("unexpected message %q", err.Error())
	}
}
