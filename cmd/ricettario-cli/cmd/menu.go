package cmd

import (
	"github.com/spf13/cobra"

	"ricettario/internal/adapters/console"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive numbered menu",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m := console.New(GetRepo(), GetClassifier(), cmd.InOrStdin(), cmd.OutOrStdout())
		return m.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(menuCmd)
}
