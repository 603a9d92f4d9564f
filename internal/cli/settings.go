package cli

import (
	"github.com/spf13/cobra"

	"pagegrid/internal/settings"
)

func init() {
	rootCmd.AddCommand(settingsCmd)
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Edit settings interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		return settings.Run()
	},
}
