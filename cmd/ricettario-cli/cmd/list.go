package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"ricettario/internal/adapters/console"
	"ricettario/internal/application/commands"
	"ricettario/internal/domain"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all recipes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		recipes, err := commands.NewListRecipesCommand(GetRepo()).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if listName != "" {
			recipes = rankedByName(recipes, listName)
		}
		printSummaries(cmd.OutOrStdout(), recipes)
		return nil
	},
}

var listName string

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one recipe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		r, err := commands.NewGetRecipeCommand(GetRepo(), id).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), console.FormatRecipe(*r))
		return nil
	},
}

var ingredientsCmd = &cobra.Command{
	Use:   "ingredients",
	Short: "List the ingredient catalog with menu numbers",
	Long: `List every ingredient used by at least one recipe, numbered in the
order it was first seen. The numbers work with "search --pick".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := commands.NewListIngredientsCommand(GetRepo()).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if len(catalog) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No ingredients found")
			return nil
		}
		console.WriteCatalog(cmd.OutOrStdout(), catalog)
		return nil
	},
}

func printSummaries(w io.Writer, recipes []domain.Recipe) {
	if len(recipes) == 0 {
		fmt.Fprintln(w, "No recipes found")
		return
	}
	for _, r := range recipes {
		fmt.Fprintf(w, "%d %s [%s] %d min: %s\n", r.ID, r.Name, r.Difficulty, r.CookingTime, domain.FormatIngredientList(r.Ingredients))
	}
}

func rankedByName(recipes []domain.Recipe, query string) []domain.Recipe {
	scored := commands.FilterByName(recipes, query)
	out := make([]domain.Recipe, len(scored))
	for i, sr := range scored {
		out[i] = sr.Recipe
	}
	return out
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid recipe ID: %s", s)
	}
	return id, nil
}

func init() {
	listCmd.Flags().StringVarP(&listName, "name", "n", "", "Only recipes whose name fuzzily matches, best first")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(ingredientsCmd)
}
