package cmd

import (
	"fmt"
	"log/slog"

	"github.com/sflc/amendments/internal/app"
	"github.com/sflc/amendments/internal/logging"
	"github.com/spf13/cobra"
)

// runApp resolves configuration, opens the log and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(cfg.LogFile, slog.LevelDebug)
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer closeLog()

	logger.Info("starting", "version", version, "mode", cfg.SeedMode())

	return app.Run(app.Options{
		Config: cfg,
		Logger: logger,
	})
}
