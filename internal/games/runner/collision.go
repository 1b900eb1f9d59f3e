package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// hitTest approximates both sprites with circles smaller than their boxes.
// The player circle sits bias pixels below the sprite center, the enemy
// circle bias pixels left of it.
type hitTest struct {
	bias    float64
	divisor float64
}

func newHitTest(cfg config.CollisionConfig) *hitTest {
	if cfg.RadiusDivisor <= 0 {
		return nil
	}
	return &hitTest{bias: cfg.Bias, divisor: cfg.RadiusDivisor}
}

func (h *hitTest) playerCircle(p *Player) (x, y, r float64) {
	cx, cy := p.Bounds().Center()
	return cx, cy + h.bias, p.W / h.divisor
}

func (h *hitTest) enemyCircle(e *Enemy) (x, y, r float64) {
	cx, cy := e.Bounds().Center()
	return cx - h.bias, cy, e.W / h.divisor
}

// collides reports whether the two circles overlap.
func (h *hitTest) collides(p *Player, e *Enemy) bool {
	px, py, pr := h.playerCircle(p)
	ex, ey, er := h.enemyCircle(e)
	return core.Distance(px, py, ex, ey) < pr+er
}
