package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/streaks/internal/animate"
	"github.com/abhisek/streaks/internal/streak"
)

// Config holds all streaks settings.
type Config struct {
	// DataFile is the scenario dataset. Empty uses the built-in workouts.
	DataFile string `yaml:"data_file"`

	// CurrentDate (2006-01-02 or RFC 3339) selects the displayed month.
	// Empty means today.
	CurrentDate string `yaml:"current_date"`

	// Watch reloads DataFile when it changes on disk.
	Watch bool `yaml:"watch"`

	Animation AnimationConfig `yaml:"animation"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// AnimationConfig configures the staggered fade-in cycle.
type AnimationConfig struct {
	Stagger       time.Duration `yaml:"stagger"`
	Duration      time.Duration `yaml:"duration"`
	Cooldown      time.Duration `yaml:"cooldown"`
	BoundaryDelay time.Duration `yaml:"boundary_delay"`
	FrameInterval time.Duration `yaml:"frame_interval"`
}

// LoggingConfig configures the log file. The TUI owns the terminal, so
// logs are only written when File is set.
type LoggingConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	t := animate.DefaultTiming()
	return Config{
		Watch: true,
		Animation: AnimationConfig{
			Stagger:       t.Stagger,
			Duration:      t.Duration,
			Cooldown:      t.Cooldown,
			BoundaryDelay: t.BoundaryDelay,
			FrameInterval: t.FrameInterval,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load returns the defaults overlaid with the YAML file at path and then
// with environment variables. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	return ApplyEnv(cfg), nil
}

// ApplyEnv overrides cfg with STREAKS_* environment variables.
func ApplyEnv(cfg Config) Config {
	if v := os.Getenv("STREAKS_DATA"); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv("STREAKS_DATE"); v != "" {
		cfg.CurrentDate = v
	}
	if v := os.Getenv("STREAKS_WATCH"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Watch = b
		}
	}
	if v := os.Getenv("STREAKS_LOG_FILE"); v != "" {
		cfg.Logging.File = v
	}
	if v := os.Getenv("STREAKS_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	return cfg
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	var errs []error
	if c.CurrentDate != "" {
		if _, err := streak.ParseDate(c.CurrentDate); err != nil {
			errs = append(errs, fmt.Errorf("current_date: %w", err))
		}
	}

	a := c.Animation
	if a.Duration <= 0 {
		errs = append(errs, fmt.Errorf("animation.duration must be positive, got %s", a.Duration))
	}
	if a.FrameInterval <= 0 {
		errs = append(errs, fmt.Errorf("animation.frame_interval must be positive, got %s", a.FrameInterval))
	}
	if a.Stagger < 0 || a.Cooldown < 0 || a.BoundaryDelay < 0 {
		errs = append(errs, errors.New("animation delays must not be negative"))
	}

	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}
	return errors.Join(errs...)
}

// Timing converts the animation settings into an animate.Timing.
func (a AnimationConfig) Timing() animate.Timing {
	return animate.Timing{
		Stagger:       a.Stagger,
		Duration:      a.Duration,
		Cooldown:      a.Cooldown,
		BoundaryDelay: a.BoundaryDelay,
		FrameInterval: a.FrameInterval,
	}
}
