package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ricettario/internal/application/commands"
	"ricettario/internal/domain"
)

var (
	addTime        int
	addIngredients string
)

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new recipe",
	Long: `Add a recipe. The difficulty is computed from the cooking time and
the number of ingredients.

Examples:
  ricettario-cli add Pancakes --time 15 --ingredients "flour, eggs, milk"
  ricettario-cli add "Green Tea" -t 4 -i "water, tea leaves"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")
		ingredients := domain.ParseIngredientList(addIngredients)

		create := commands.NewCreateRecipeCommand(GetRepo(), GetClassifier(), name, addTime, ingredients)
		result, err := create.Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().IntVarP(&addTime, "time", "t", 0, "cooking time in minutes")
	addCmd.Flags().StringVarP(&addIngredients, "ingredients", "i", "", "comma-separated ingredients")
	_ = addCmd.MarkFlagRequired("time")
	_ = addCmd.MarkFlagRequired("ingredients")
}
