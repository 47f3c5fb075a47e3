package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ricettario/internal/application/commands"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a recipe",
	Long: `Delete a recipe. Asks for confirmation unless --yes is given.

Warning: This operation cannot be undone.

Examples:
  ricettario-cli delete 4
  ricettario-cli delete 4 --yes`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		if !deleteYes {
			r, err := commands.NewGetRecipeCommand(GetRepo(), id).Execute(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Delete %d %s? (yes/no): ", r.ID, r.Name)
			answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			switch strings.ToLower(strings.TrimSpace(answer)) {
			case "yes", "y":
			default:
				fmt.Fprintln(out, "Deletion cancelled.")
				return nil
			}
		}

		del := commands.NewDeleteRecipeCommand(GetRepo(), id)
		result, err := del.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip confirmation")
}
