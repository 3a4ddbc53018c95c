package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benchlink/benchlink-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit client configuration",
	Long: `Inspect and edit the client configuration stored in
~/.benchlink/config.yaml.

Examples:
  benchlink config show
  benchlink config set base_url https://bench.example.com
  benchlink config set theme dark`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "base_url: %s\n", cfg.BaseURL)
		fmt.Fprintf(cmd.OutOrStdout(), "theme: %s\n", cfg.Theme)
		fmt.Fprintf(cmd.OutOrStdout(), "language: %s\n", cfg.Language)
		fmt.Fprintf(cmd.OutOrStdout(), "autosave: %t\n", cfg.Autosave)
		fmt.Fprintf(cmd.OutOrStdout(), "log_level: %s\n", cfg.LogLevel)
		fmt.Fprintf(cmd.OutOrStdout(), "log_format: %s\n", cfg.LogFormat)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := flagConfigPath
		if path == "" {
			var err error
			path, err = config.DefaultPath()
			if err != nil {
				return err
			}
		}

		cfg, err := config.Load(path)
		if err != nil {
			return err
		}

		key, value := args[0], args[1]
		switch key {
		case "base_url":
			cfg.BaseURL = value
		case "theme":
			cfg.Theme = value
		case "language":
			cfg.Language = value
		case "autosave":
			cfg.Autosave = value == "true"
		case "log_level":
			cfg.LogLevel = value
		case "log_format":
			cfg.LogFormat = value
		default:
			return fmt.Errorf("unknown config key %q", key)
		}

		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := cfg.Save(path); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}
