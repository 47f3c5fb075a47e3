package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ricettario/internal/application"
	"ricettario/internal/application/commands"
)

var editCmd = &cobra.Command{
	Use:   "edit <id> <name|cooking_time|ingredients> <value>",
	Short: "Change one field of a recipe",
	Long: `Change the name, cooking time or ingredients of a recipe. Changing
the cooking time or the ingredients recomputes the difficulty.

Examples:
  ricettario-cli edit 3 name "Sunday Pancakes"
  ricettario-cli edit 3 cooking_time 8
  ricettario-cli edit 3 ingredients "flour, eggs, milk, butter"`,
	Args: cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		field, err := application.ParseEditField(args[1])
		if err != nil {
			return err
		}
		value := strings.Join(args[2:], " ")

		edit := commands.NewEditRecipeCommand(GetRepo(), GetClassifier(), id, field, value)
		result, err := edit.Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
