package runner

import (
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// Session holds everything one run of the game mutates.
type Session struct {
	cfg config.RunnerConfig

	Background *Background
	Player     *Player
	Enemies    []*Enemy
	Spawner    *Spawner

	Score    int
	GameOver bool

	collisions *hitTest // nil when collisions are disabled
	hitboxes   bool
}

// NewSession builds a fresh session from cfg.
func NewSession(cfg config.RunnerConfig, rng *rand.Rand) *Session {
	s := &Session{
		cfg:        cfg,
		Background: NewBackground(cfg.Background),
		Player:     NewPlayer(cfg.Player, cfg.World),
		Spawner:    NewSpawner(cfg, rng),
		hitboxes:   cfg.Collision.DebugHitboxes,
	}
	if cfg.Collision.Enabled {
		s.collisions = newHitTest(cfg.Collision)
	}
	return s
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.RunnerConfig {
	return s.cfg
}

// overlay returns the hit test to visualize, or nil when no overlay is
// drawn.
func (s *Session) overlay() *hitTest {
	if !s.hitboxes {
		return nil
	}
	if s.collisions != nil {
		return s.collisions
	}
	return newHitTest(s.cfg.Collision)
}

func (s *Session) prune() {
	live := s.Enemies[:0]
	for _, e := range s.Enemies {
		if !e.Removed() {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(s.Enemies); i++ {
		s.Enemies[i] = nil
	}
	s.Enemies = live
}

// LiveEnemies returns the number of enemies still on screen.
func (s *Session) LiveEnemies() int {
	n := 0
	for _, e := range s.Enemies {
		if !e.Removed() {
			n++
		}
	}
	return n
}

// Restart returns the session to its initial state.
func (s *Session) Restart() {
	s.Score = 0
	s.Enemies = nil
	s.Player.Restart()
	s.Background.Restart()
	s.Spawner.Restart()
	s.GameOver = false
}
