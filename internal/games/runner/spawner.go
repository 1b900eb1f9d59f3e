package runner

import (
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Spawner adds enemies on a jittered timer and drives their per-frame
// update.
type Spawner struct {
	TimerMs  float64 // Time accumulated since the last spawn
	RandomMs float64 // Jitter added to the base interval for the next spawn

	rng   *rand.Rand
	spawn config.SpawnConfig
	enemy config.EnemyConfig
	world config.WorldConfig
}

// NewSpawner creates a spawner drawing its jitter from rng.
func NewSpawner(cfg config.RunnerConfig, rng *rand.Rand) *Spawner {
	sp := &Spawner{
		rng:   rng,
		spawn: cfg.Spawn,
		enemy: cfg.Enemy,
		world: cfg.World,
	}
	sp.RandomMs = sp.drawRandom()
	return sp
}

// Threshold returns the accumulated time needed before the next spawn.
func (sp *Spawner) Threshold() float64 {
	return sp.spawn.BaseIntervalMs + sp.RandomMs
}

func (sp *Spawner) drawRandom() float64 {
	lo, hi := sp.spawn.RandomMinMs, sp.spawn.RandomMaxMs
	return lo + sp.rng.Float64()*(hi-lo)
}

// Tick either spawns an enemy or accumulates frame time, then draws and
// updates every live enemy and drops the removed ones. The spawned enemy,
// if any, is returned.
func (sp *Spawner) Tick(s *Session, deltaMs float64, dst core.Surface) *Enemy {
	var spawned *Enemy
	if sp.TimerMs > sp.Threshold() {
		spawned = NewEnemy(sp.enemy, sp.world)
		s.Enemies = append(s.Enemies, spawned)
		sp.RandomMs = sp.drawRandom()
		sp.TimerMs = 0
	} else {
		sp.TimerMs += deltaMs
	}

	overlay := s.overlay()
	for _, e := range s.Enemies {
		e.Draw(dst, overlay)
		e.Update(s, deltaMs)
	}
	s.prune()
	return spawned
}

// Restart clears the spawn timer. The pending jitter is kept.
func (sp *Spawner) Restart() {
	sp.TimerMs = 0
}
