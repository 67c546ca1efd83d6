package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/streaks/internal/animate"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, animate.DefaultTiming(), cfg.Animation.Timing())
	assert.True(t, cfg.Watch)
	assert.Empty(t, cfg.DataFile)
	assert.Empty(t, cfg.Logging.File)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "streaks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
data_file: /tmp/workouts.json
current_date: "2024-04-15"
watch: false
animation:
  stagger: 150ms
  cooldown: 3s
logging:
  file: /tmp/streaks.log
  level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "/tmp/workouts.json", cfg.DataFile)
	assert.Equal(t, "2024-04-15", cfg.CurrentDate)
	assert.False(t, cfg.Watch)
	assert.Equal(t, 150*time.Millisecond, cfg.Animation.Stagger)
	assert.Equal(t, 3*time.Second, cfg.Animation.Cooldown)
	// Unset keys keep their defaults.
	assert.Equal(t, 300*time.Millisecond, cfg.Animation.Duration)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "streaks.yaml")
	require.NoError(t, os.WriteFile(path, []byte("animation: [1, 2"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("STREAKS_DATA", "/data/w.json")
	t.Setenv("STREAKS_DATE", "2024-02-01")
	t.Setenv("STREAKS_WATCH", "false")
	t.Setenv("STREAKS_LOG_FILE", "/tmp/x.log")
	t.Setenv("STREAKS_LOG_LEVEL", "warn")

	cfg := ApplyEnv(DefaultConfig())
	assert.Equal(t, "/data/w.json", cfg.DataFile)
	assert.Equal(t, "2024-02-01", cfg.CurrentDate)
	assert.False(t, cfg.Watch)
	assert.Equal(t, "/tmp/x.log", cfg.Logging.File)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestApplyEnvIgnoresBadBool(t *testing.T) {
	t.Setenv("STREAKS_WATCH", "sometimes")
	assert.True(t, ApplyEnv(DefaultConfig()).Watch)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad date", func(c *Config) { c.CurrentDate = "April 4th" }},
		{"zero duration", func(c *Config) { c.Animation.Duration = 0 }},
		{"zero frame interval", func(c *Config) { c.Animation.FrameInterval = 0 }},
		{"negative cooldown", func(c *Config) { c.Animation.Cooldown = -time.Second }},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
