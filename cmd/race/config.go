package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/coin-race/internal/config"
)

var flagDefaultConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the race would run with, as YAML.

Search order:
  1. --config <path>
  2. ~/.race/configs/race.yaml
  3. ./configs/race.yaml
  4. Built-in defaults

Examples:
  race config
  race config --config ./my-race.yaml
  race config --default > configs/race.yaml`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaultConfig, "default", false, "Print the built-in defaults with comments")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaultConfig {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	logger, closeLog, err := newLogger(io.Discard, "race")
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
