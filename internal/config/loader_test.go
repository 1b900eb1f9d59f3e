package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultRunnerConfig(), cfg)
}

func TestDefaultDimensions(t *testing.T) {
	cfg := DefaultRunnerConfig()
	assert.InDelta(t, 160.0, cfg.Player.Width(), 1e-9)
	assert.InDelta(t, 160.0, cfg.Player.Height(), 1e-9)
	assert.InDelta(t, 128.0, cfg.Enemy.Width(), 1e-9)
	assert.InDelta(t, 95.2, cfg.Enemy.Height(), 1e-9)
}

func TestLoadRunnerCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	data := []byte("background:\n  speed: 4\nspawn:\n  base_interval_ms: 2000\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadRunner(path)
	require.NoError(t, err)

	assert.Equal(t, 4.0, cfg.Background.Speed)
	assert.Equal(t, 2000.0, cfg.Spawn.BaseIntervalMs)
	// Untouched sections keep their defaults.
	assert.Equal(t, DefaultRunnerConfig().Player, cfg.Player)
}

func TestLoadRunnerMissingCustomPath(t *testing.T) {
	_, err := LoadRunner(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadRunnerMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	require.NoError(t, os.WriteFile(path, []byte("world: [1, 2"), 0o600))

	_, err := LoadRunner(path)
	assert.Error(t, err)
}

func TestLoadRunnerFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadRunner("")
	require.NoError(t, err)
	assert.Equal(t, DefaultRunnerConfig(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
	}{
		{"zero world width", func(c *RunnerConfig) { c.World.Width = 0 }},
		{"negative enemy scale", func(c *RunnerConfig) { c.Enemy.Scale = -1 }},
		{"empty spawn range", func(c *RunnerConfig) { c.Spawn.RandomMaxMs = c.Spawn.RandomMinMs }},
		{"player wider than world", func(c *RunnerConfig) { c.World.Width = 100 }},
		{"negative frames", func(c *RunnerConfig) { c.Enemy.MaxFrame = -1 }},
		{"zero radius divisor", func(c *RunnerConfig) { c.Collision.RadiusDivisor = 0 }},
		{"zero player speed", func(c *RunnerConfig) { c.Player.Speed = 0 }},
		{"zero weight", func(c *RunnerConfig) { c.Player.Weight = 0 }},
		{"negative weight", func(c *RunnerConfig) { c.Player.Weight = -1 }},
		{"zero enemy speed", func(c *RunnerConfig) { c.Enemy.Speed = 0 }},
		{"start left of world", func(c *RunnerConfig) { c.Player.StartX = -1 }},
		{"start past right edge", func(c *RunnerConfig) { c.Player.StartX = 641 }},
		{"player taller than world", func(c *RunnerConfig) { c.World.Height = 150 }},
		{"enemy taller than world", func(c *RunnerConfig) { c.Enemy.SpriteHeight = 1000 }},
	}

	require.NoError(t, DefaultRunnerConfig().Validate())

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestValidateStartAtRightEdge(t *testing.T) {
	cfg := DefaultRunnerConfig()
	cfg.Player.StartX = cfg.World.Width - cfg.Player.Width()
	assert.NoError(t, cfg.Validate())
}

func TestParseRejectsUnplayableConstants(t *testing.T) {
	_, err := Parse([]byte("player:\n  start_x: 5000\n  weight: 0\nenemy:\n  speed: 0\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)
	for _, field := range []string{"player.start_x", "player.weight", "enemy.speed"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestValidateIgnoresDivisorWhenCollisionsOff(t *testing.T) {
	cfg := DefaultRunnerConfig()
	cfg.Collision.Enabled = false
	cfg.Collision.RadiusDivisor = 0
	assert.NoError(t, cfg.Validate())
}
