package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.runner/configs/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Only a custom path that cannot be read, parsed or validated is an error;
// broken files further down the search order are skipped.
func LoadRunner(customPath string) (RunnerConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return RunnerConfig{}, err
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := loadFile(filepath.Join("configs", "runner.yaml")); err == nil {
		return cfg, nil
	}

	cfg, err := Parse(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes and validates a YAML document. Fields missing from the
// document keep their default values.
func Parse(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, fmt.Errorf("config: cannot parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

func loadFile(path string) (RunnerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunnerConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return RunnerConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner", "configs", filename)
}

// Validate checks that every size, speed and interval makes sense.
func (c RunnerConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	positive("player.sprite_width", c.Player.SpriteWidth)
	positive("player.sprite_height", c.Player.SpriteHeight)
	positive("player.scale", c.Player.Scale)
	positive("player.speed", c.Player.Speed)
	positive("player.weight", c.Player.Weight)
	positive("player.fps", c.Player.FPS)
	positive("enemy.sprite_width", c.Enemy.SpriteWidth)
	positive("enemy.sprite_height", c.Enemy.SpriteHeight)
	positive("enemy.scale", c.Enemy.Scale)
	positive("enemy.speed", c.Enemy.Speed)
	positive("enemy.fps", c.Enemy.FPS)
	positive("background.width", c.Background.Width)
	positive("background.speed", c.Background.Speed)
	positive("spawn.base_interval_ms", c.Spawn.BaseIntervalMs)

	if c.Player.Width() > c.World.Width {
		errs = append(errs, fmt.Errorf("player is wider than the world (%v > %v)", c.Player.Width(), c.World.Width))
	} else if maxX := c.World.Width - c.Player.Width(); c.Player.StartX < 0 || c.Player.StartX > maxX {
		errs = append(errs, fmt.Errorf("player.start_x must be within [0, %v], got %v", maxX, c.Player.StartX))
	}
	if c.Player.Height() > c.World.Height {
		errs = append(errs, fmt.Errorf("player is taller than the world (%v > %v)", c.Player.Height(), c.World.Height))
	}
	if c.Enemy.Height() > c.World.Height {
		errs = append(errs, fmt.Errorf("enemy is taller than the world (%v > %v)", c.Enemy.Height(), c.World.Height))
	}
	if c.Player.GroundMaxFrame < 0 || c.Player.AirMaxFrame < 0 || c.Enemy.MaxFrame < 0 {
		errs = append(errs, errors.New("max frame indices must not be negative"))
	}
	if c.Spawn.RandomMinMs < 0 || c.Spawn.RandomMaxMs <= c.Spawn.RandomMinMs {
		errs = append(errs, fmt.Errorf("spawn random range [%v, %v) is empty", c.Spawn.RandomMinMs, c.Spawn.RandomMaxMs))
	}
	if c.Collision.Enabled && c.Collision.RadiusDivisor <= 0 {
		errs = append(errs, fmt.Errorf("collision.radius_divisor must be positive, got %v", c.Collision.RadiusDivisor))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
