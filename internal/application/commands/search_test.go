package commands

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"ricettario/internal/application"
	"ricettario/internal/domain"
)

func TestSearchByIngredientsCommand_Execute(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	tests := []struct {
		name        string
		ingredients []string
		want        []string
	}{
		{"single shared ingredient", []string{"eggs"}, []string{"Pancakes", "Omelette", "Quiche"}},
		{"all selected must match", []string{"flour", "milk"}, []string{"Pancakes", "Quiche"}},
		{"narrow to one", []string{"cheese", "spinach"}, []string{"Quiche"}},
		{"no recipe has both", []string{"spinach", "water"}, []string{}},
		{"duplicates ignored", []string{"cheese", "cheese"}, []string{"Omelette", "Quiche"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewSearchByIngredientsCommand(repo, tt.ingredients...).Execute(ctx)
			if err != nil {
				t.Fatalf("Execute: %v", err)
			}
			if names := recipeNames(got); !reflect.DeepEqual(names, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, names)
			}
		})
	}
}

func TestSearchByIngredientsCommand_EmptySelection(t *testing.T) {
	repo := newTestRepo(t)

	_, err := NewSearchByIngredientsCommand(repo).Execute(context.Background())
	if !errors.Is(err, application.ErrEmptySelection) {
		t.Errorf("expected ErrEmptySelection, got %v", err)
	}
}

func TestResolveSelection(t *testing.T) {
	catalog := []string{"flour", "eggs", "milk", "cheese", "spinach"}

	tests := []struct {
		name      string
		selection string
		want      []string
		wantErr   error
	}{
		{"spaces", "1 3 5", []string{"flour", "milk", "spinach"}, nil},
		{"commas", "2,4", []string{"eggs", "cheese"}, nil},
		{"selection order kept", "3 1", []string{"milk", "flour"}, nil},
		{"repeats collapsed", "2 2", []string{"eggs"}, nil},
		{"blank", "   ", nil, application.ErrEmptySelection},
		{"out of range", "1 9", nil, application.ErrInvalidField},
		{"zero", "0", nil, application.ErrInvalidField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveSelection(catalog, tt.selection)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestResolveSelection_NotANumber(t *testing.T) {
	_, err := ResolveSelection([]string{"flour"}, "one")

	var ve *application.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if ve.Field != "selection" {
		t.Errorf("expected field selection, got %q", ve.Field)
	}
}

func TestResolveSelection_ReportsEveryInvalidNumber(t *testing.T) {
	_, err := ResolveSelection([]string{"flour", "eggs"}, "7 1 9")

	var se *application.SelectionError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SelectionError, got %v", err)
	}
	if !reflect.DeepEqual(se.Invalid, []int{7, 9}) || se.Max != 2 {
		t.Errorf("unexpected selection error %+v", se)
	}
}

func TestSelectIngredientsCommand_Execute(t *testing.T) {
	repo := newTestRepo(t)

	// catalog: flour, eggs, milk, cheese, spinach
	got, err := NewSelectIngredientsCommand(repo, "2 4").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"eggs", "cheese"}) {
		t.Errorf("expected [eggs cheese], got %v", got)
	}
}

func TestFuzzyScore(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		query     string
		wantScore int
		wantMin   int
	}{
		{name: "exact match", target: "Pancakes", query: "Pancakes", wantScore: 150},
		{name: "prefix match", target: "Pancakes Deluxe", query: "pan", wantScore: 150},
		{name: "substring match", target: "Banana Pancakes", query: "pancakes", wantScore: 100},
		{name: "fuzzy in order", target: "Quiche Lorraine", query: "qlor", wantMin: 1},
		{name: "no match", target: "Quiche", query: "xyz", wantScore: 0},
		{name: "empty query", target: "Quiche", query: "", wantScore: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := FuzzyScore(tt.target, tt.query)

			if tt.wantMin > 0 {
				if score < tt.wantMin {
					t.Errorf("expected score >= %d, got %d", tt.wantMin, score)
				}
				return
			}
			if score != tt.wantScore {
				t.Errorf("expected score %d, got %d", tt.wantScore, score)
			}
		})
	}
}

func TestFilterByName(t *testing.T) {
	recipes := []domain.Recipe{
		{ID: 1, Name: "Banana Pancakes"},
		{ID: 2, Name: "Omelette"},
		{ID: 3, Name: "Pancakes"},
	}

	got := FilterByName(recipes, "pancakes")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].Name != "Pancakes" {
		t.Errorf("expected prefix match first, got %q", got[0].Name)
	}
}
