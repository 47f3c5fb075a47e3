package console

import (
	"fmt"
	"io"
	"strings"

	"ricettario/internal/domain"
)

const rule = "=================================================="

// FormatRecipe renders a recipe as a framed text block.
func FormatRecipe(r domain.Recipe) string {
	var b strings.Builder
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "RECIPE: %s\n", strings.ToUpper(r.Name))
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Recipe ID:    %d\n", r.ID)
	fmt.Fprintf(&b, "Name:         %s\n", r.Name)
	fmt.Fprintf(&b, "Ingredients:  %s\n", domain.FormatIngredientList(r.Ingredients))
	fmt.Fprintf(&b, "Cooking Time: %d minutes\n", r.CookingTime)
	fmt.Fprintf(&b, "Difficulty:   %s\n", r.Difficulty)
	fmt.Fprintln(&b, rule)
	return b.String()
}

// WriteRecipes prints each recipe block, or a notice when there are none.
func WriteRecipes(w io.Writer, recipes []domain.Recipe) {
	if len(recipes) == 0 {
		fmt.Fprintln(w, "No recipes found.")
		return
	}
	fmt.Fprintf(w, "Found %d recipe(s):\n\n", len(recipes))
	for _, r := range recipes {
		fmt.Fprintln(w, FormatRecipe(r))
	}
}

// WriteCatalog prints the ingredient catalog as a 1-based numbered list.
func WriteCatalog(w io.Writer, catalog []string) {
	for i, name := range catalog {
		fmt.Fprintf(w, "%d. %s\n", i+1, name)
	}
}

// WriteIndex prints one "ID: n | Name: s" line per recipe.
func WriteIndex(w io.Writer, recipes []domain.Recipe) {
	fmt.Fprintln(w, strings.Repeat("-", 30))
	for _, r := range recipes {
		fmt.Fprintf(w, "ID: %d | Name: %s\n", r.ID, r.Name)
	}
	fmt.Fprintln(w, strings.Repeat("-", 30))
}
