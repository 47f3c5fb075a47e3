package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"ricettario/internal/application/commands"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <cooking-time> <ingredient-count>",
	Short: "Show the difficulty for a time and ingredient count",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("cooking time must be a number: %s", args[0])
		}
		count, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("ingredient count must be a number: %s", args[1])
		}

		d := commands.NewClassifyCommand(GetClassifier(), minutes, count).Execute(cmd.Context())
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%v)\n", d, GetClassifier())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
