package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// It mirrors defaults/runner.yaml.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			Width:  800,
			Height: 700,
		},
		Player: PlayerConfig{
			SpriteWidth:    200,
			SpriteHeight:   200,
			Scale:          0.8,
			StartX:         0,
			Speed:          5,
			JumpVelocity:   -30,
			Weight:         1,
			FPS:            20,
			GroundMaxFrame: 8,
			AirMaxFrame:    5,
		},
		Enemy: EnemyConfig{
			SpriteWidth:  160,
			SpriteHeight: 119,
			Scale:        0.8,
			Speed:        5,
			FPS:          20,
			MaxFrame:     5,
		},
		Background: BackgroundConfig{
			Width:  2400,
			Height: 720,
			Speed:  10,
		},
		Spawn: SpawnConfig{
			BaseIntervalMs: 1000,
			RandomMinMs:    500,
			RandomMaxMs:    1500,
		},
		Collision: CollisionConfig{
			Enabled:       true,
			Bias:          20,
			RadiusDivisor: 3,
			DebugHitboxes: true,
		},
		Input: InputConfig{
			SwipeThreshold: 30,
			KeyHoldMs:      150,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
