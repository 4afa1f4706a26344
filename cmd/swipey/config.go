package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/swipey/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the embedded default configuration as YAML.

Save it to ~/.swipey/configs/swipey.yaml or ./configs/swipey.yaml and edit
the values you want to change; missing keys keep their defaults.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprint(cmd.OutOrStdout(), string(config.DefaultYAML()))
		return err
	},
}
