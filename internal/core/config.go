package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Platform surface width (cells or pixels)
	ScreenH  int   // Platform surface height (cells or pixels)
	TickRate int   // Frames per second the platform aims for (default 60)
	Seed     int64 // RNG seed for deterministic spawn timing
	Debug    bool  // Force hitbox overlays on
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the externally visible state of a running game.
type GameState struct {
	Score    int  // Enemies cleared this session
	GameOver bool // Whether a collision ended the run
	Running  bool // Whether a next frame is scheduled
	Frames   int  // Frames simulated since the last reset
}
