package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mergedrop/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Print the configuration the game would use, as YAML.

Search order: --config, ~/.mergedrop/config.yaml, ./configs/mergedrop.yaml,
then the built-in defaults.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}
