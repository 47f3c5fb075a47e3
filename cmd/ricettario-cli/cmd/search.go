package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ricettario/internal/application/commands"
	"ricettario/internal/domain"
)

var searchPick string

var searchCmd = &cobra.Command{
	Use:   "search [ingredient...]",
	Short: "Find recipes that use every given ingredient",
	Long: `Find recipes containing all of the given ingredients. Ingredients can
be named directly or picked by their number from "ingredients".

Examples:
  ricettario-cli search eggs milk
  ricettario-cli search --pick "1 3"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		ingredients := args

		if searchPick != "" {
			picked, err := commands.NewSelectIngredientsCommand(GetRepo(), searchPick).Execute(ctx)
			if err != nil {
				return err
			}
			ingredients = append(ingredients, picked...)
		}

		search := commands.NewSearchByIngredientsCommand(GetRepo(), ingredients...)
		results, err := search.Execute(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(results) == 0 {
			fmt.Fprintf(out, "No recipes contain all of: %s\n", domain.FormatIngredientList(domain.DedupeIngredients(ingredients)))
			return nil
		}
		printSummaries(out, results)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVarP(&searchPick, "pick", "p", "", `catalog numbers, e.g. "1 3 5"`)
}
