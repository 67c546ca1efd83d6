package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/streaks/internal/app"
	"github.com/abhisek/streaks/internal/fixtures"
)

// runApp resolves configuration, starts the data file watcher, and
// launches the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = e.logger.Sync() }()

	opts := app.Options{
		Dataset:     e.dataset,
		CurrentDate: e.currentDate,
		Timing:      e.cfg.Animation.Timing(),
		Logger:      e.logger,
	}

	if e.cfg.Watch && e.cfg.DataFile != "" {
		w, err := fixtures.NewWatcher(e.cfg.DataFile, e.logger)
		if err != nil {
			return fmt.Errorf("watch data: %w", err)
		}
		if err := w.Start(cmd.Context()); err != nil {
			return fmt.Errorf("watch data: %w", err)
		}
		defer w.Stop()
		opts.Reloads = w.Reloads()
		e.logger.Info("watching data file", zap.String("path", e.cfg.DataFile))
	}

	return app.Run(opts)
}
