package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pagegrid/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "pagegrid [file.pdf]",
	Short: "pagegrid – terminal PDF viewer with an editable text grid",
	Long: "pagegrid renders PDF pages as images in a Kitty-capable terminal " +
		"next to an editable character matrix extracted from the page text.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default action: launch the TUI
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		return app.Start(path)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
