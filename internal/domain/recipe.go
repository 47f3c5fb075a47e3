package domain

import (
	"slices"
	"strings"
)

// Recipe is a named, timed list of ingredients with a derived difficulty.
type Recipe struct {
	ID          int64
	Name        string
	CookingTime int // minutes
	Ingredients []string
	Difficulty  Difficulty
}

// Recalculate re-derives Difficulty from the current cooking time and
// ingredient count.
func (r *Recipe) Recalculate(c Classifier) {
	r.Difficulty = c.Classify(r.CookingTime, len(r.Ingredients))
}

// HasIngredient reports whether the recipe lists the ingredient (exact match).
func (r *Recipe) HasIngredient(ingredient string) bool {
	return slices.Contains(r.Ingredients, ingredient)
}

// HasAllIngredients reports whether every given ingredient is listed.
func (r *Recipe) HasAllIngredients(ingredients []string) bool {
	for _, ing := range ingredients {
		if !r.HasIngredient(ing) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy so callers can mutate it without touching the
// original.
func (r Recipe) Clone() Recipe {
	r.Ingredients = slices.Clone(r.Ingredients)
	return r
}

// SearchByIngredients returns, in input order, every recipe that contains all
// of the given ingredients.
func SearchByIngredients(recipes []Recipe, ingredients ...string) []Recipe {
	var out []Recipe
	for _, r := range recipes {
		if r.HasAllIngredients(ingredients) {
			out = append(out, r)
		}
	}
	return out
}

// DedupeIngredients trims names, drops empties and keeps the first
// occurrence of each name.
func DedupeIngredients(ingredients []string) []string {
	out := make([]string, 0, len(ingredients))
	seen := make(map[string]struct{}, len(ingredients))
	for _, ing := range ingredients {
		ing = strings.TrimSpace(ing)
		if ing == "" {
			continue
		}
		if _, ok := seen[ing]; ok {
			continue
		}
		seen[ing] = struct{}{}
		out = append(out, ing)
	}
	return out
}

// IngredientSeparator joins ingredients in the delimited text form used for
// input and display ("flour, eggs, milk").
const IngredientSeparator = ", "

// ParseIngredientList splits delimited text on commas. Surrounding spaces
// are trimmed and empty entries dropped.
func ParseIngredientList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// FormatIngredientList is the inverse of ParseIngredientList.
func FormatIngredientList(ingredients []string) string {
	return strings.Join(ingredients, IngredientSeparator)
}

// SortRecipes sorts recipes by ID in ascending order
func SortRecipes(recipes []Recipe) {
	slices.SortFunc(recipes, func(a, b Recipe) int {
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})
}
