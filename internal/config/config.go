// Package config provides YAML-based gameplay configuration loading for the
// runner. Values are read once when a game is reset and stay fixed for the
// life of that session.
package config

// RunnerConfig contains all gameplay constants for the runner.
type RunnerConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Background BackgroundConfig `yaml:"background"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Collision  CollisionConfig  `yaml:"collision"`
	Input      InputConfig      `yaml:"input"`
}

// WorldConfig defines the logical playfield in world pixels.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player sprite and its motion.
type PlayerConfig struct {
	SpriteWidth    float64 `yaml:"sprite_width"`  // Sheet cell width
	SpriteHeight   float64 `yaml:"sprite_height"` // Sheet cell height
	Scale          float64 `yaml:"scale"`         // On-screen size relative to the cell
	StartX         float64 `yaml:"start_x"`
	Speed          float64 `yaml:"speed"`         // Horizontal speed per frame
	JumpVelocity   float64 `yaml:"jump_velocity"` // Negative = up
	Weight         float64 `yaml:"weight"`        // Gravity added to vy per airborne frame
	FPS            float64 `yaml:"fps"`           // Animation frames per second
	GroundMaxFrame int     `yaml:"ground_max_frame"`
	AirMaxFrame    int     `yaml:"air_max_frame"`
}

// Width returns the on-screen player width.
func (p PlayerConfig) Width() float64 { return p.SpriteWidth * p.Scale }

// Height returns the on-screen player height.
func (p PlayerConfig) Height() float64 { return p.SpriteHeight * p.Scale }

// EnemyConfig defines the enemy sprite and its motion.
type EnemyConfig struct {
	SpriteWidth  float64 `yaml:"sprite_width"`
	SpriteHeight float64 `yaml:"sprite_height"`
	Scale        float64 `yaml:"scale"`
	Speed        float64 `yaml:"speed"`
	FPS          float64 `yaml:"fps"`
	MaxFrame     int     `yaml:"max_frame"`
}

// Width returns the on-screen enemy width.
func (e EnemyConfig) Width() float64 { return e.SpriteWidth * e.Scale }

// Height returns the on-screen enemy height.
func (e EnemyConfig) Height() float64 { return e.SpriteHeight * e.Scale }

// BackgroundConfig defines the scrolling background tile.
type BackgroundConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// SpawnConfig defines enemy spawn timing. The gap between spawns is
// BaseIntervalMs plus a value drawn uniformly from [RandomMinMs, RandomMaxMs).
type SpawnConfig struct {
	BaseIntervalMs float64 `yaml:"base_interval_ms"`
	RandomMinMs    float64 `yaml:"random_min_ms"`
	RandomMaxMs    float64 `yaml:"random_max_ms"`
}

// CollisionConfig defines the circular hit test used by the collide variant.
type CollisionConfig struct {
	Enabled       bool    `yaml:"enabled"`
	Bias          float64 `yaml:"bias"`           // Center offset applied to both hit circles
	RadiusDivisor float64 `yaml:"radius_divisor"` // Radius = width / divisor
	DebugHitboxes bool    `yaml:"debug_hitboxes"`
}

// InputConfig defines gesture and key handling.
type InputConfig struct {
	SwipeThreshold float64 `yaml:"swipe_threshold"`
	KeyHoldMs      float64 `yaml:"key_hold_ms"` // Terminals only report presses
}
