package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"pagegrid/internal/config"
)

var configSchema bool

func init() {
	configShowCmd.Flags().BoolVar(&configSchema, "schema", false, "print the settings JSON Schema instead")
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect pagegrid configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print effective settings (or their schema) as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		if configSchema {
			out, err := config.MarshalSchema(config.SettingsSchema())
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}
		s, err := config.Load()
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		if p, err := config.Path(); err == nil {
			fmt.Printf("// %s\n", p)
		}
		return nil
	},
}
