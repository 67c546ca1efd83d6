package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/streaks/internal/config"
	"github.com/abhisek/streaks/internal/fixtures"
	"github.com/abhisek/streaks/internal/logging"
	"github.com/abhisek/streaks/internal/streak"
)

var rootCmd = &cobra.Command{
	Use:   "streaks",
	Short: "Animated workout streak calendar for the terminal",
	Long:  "Streaks renders a daily workout streak as a month calendar or a week row, with looping staggered animation.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("data", "", "Path to a scenario JSON file (overrides STREAKS_DATA env var)")
	rootCmd.PersistentFlags().String("date", "", "Current date, 2006-01-02 or RFC 3339 (overrides STREAKS_DATE env var)")
	rootCmd.PersistentFlags().String("log-file", "", "Write JSON logs to this file (overrides STREAKS_LOG_FILE env var)")
	rootCmd.Flags().Bool("no-watch", false, "Do not reload the data file when it changes")

	rootCmd.AddCommand(monthCmd)
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig loads the config file and environment, then applies
// flags, which take the highest priority.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if v, _ := cmd.Flags().GetString("data"); v != "" {
		cfg.DataFile = v
	}
	if v, _ := cmd.Flags().GetString("date"); v != "" {
		cfg.CurrentDate = v
	}
	if v, _ := cmd.Flags().GetString("log-file"); v != "" {
		cfg.Logging.File = v
	}
	if f := cmd.Flags().Lookup("no-watch"); f != nil && f.Changed {
		cfg.Watch = false
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// env is what every command needs once the config is resolved.
type env struct {
	cfg         config.Config
	logger      *zap.Logger
	dataset     fixtures.Dataset
	currentDate time.Time
}

func setup(cmd *cobra.Command) (*env, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	ds, err := fixtures.Load(cfg.DataFile)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("load data: %w", err)
	}
	current, err := streak.ResolveCurrentDate(cfg.CurrentDate, time.Now())
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	logger.Info("config resolved",
		zap.String("data", cfg.DataFile),
		zap.String("date", current.Format(time.DateOnly)),
		zap.Bool("watch", cfg.Watch),
		zap.Int("scenarios", ds.Len()),
	)
	return &env{cfg: cfg, logger: logger, dataset: ds, currentDate: current}, nil
}
