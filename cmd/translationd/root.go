package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"translationhub/config"
)

var rootCmd = &cobra.Command{
	Use:          "translationd",
	Short:        "translationd - translation management service",
	Long:         "translationd stores localized strings per locale, tags them, and serves cached JSON exports.",
	Version:      version,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newSeedCmd())
	rootCmd.AddCommand(newPerfCmd())
}

// loadConfig reads configuration and builds the process logger.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logger := config.NewLogger(cfg.Environment, cfg.LogLevel, os.Stdout)
	slog.SetDefault(logger)
	return cfg, logger, nil
}
