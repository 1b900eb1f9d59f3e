package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Enemy is an obstacle running from the right edge of the world to the left.
type Enemy struct {
	cellW, cellH float64

	X, Y    float64
	W, H    float64
	Speed   float64
	Anim    SpriteAnim
	removed bool
}

// NewEnemy creates an enemy just past the right edge, standing on the floor.
func NewEnemy(cfg config.EnemyConfig, world config.WorldConfig) *Enemy {
	return &Enemy{
		cellW: cfg.SpriteWidth,
		cellH: cfg.SpriteHeight,
		X:     world.Width,
		Y:     world.Height - cfg.Height(),
		W:     cfg.Width(),
		H:     cfg.Height(),
		Speed: cfg.Speed,
		Anim:  NewSpriteAnim(cfg.FPS, cfg.MaxFrame),
	}
}

// Removed reports whether the enemy has left the screen and awaits pruning.
func (e *Enemy) Removed() bool {
	return e.removed
}

// Bounds returns the on-screen sprite box.
func (e *Enemy) Bounds() core.RectF {
	return core.NewRectF(e.X, e.Y, e.W, e.H)
}

// Update animates and moves the enemy. The frame its right edge passes the
// left border it is marked removed and scores one point; removed enemies
// never update again, so the point is counted once.
func (e *Enemy) Update(s *Session, deltaMs float64) {
	if e.removed {
		return
	}
	e.Anim.Advance(deltaMs)
	e.X -= e.Speed
	if e.X+e.W < 0 {
		e.removed = true
		s.Score++
	}
}

// Draw renders the current animation cell, plus the hit circle when
// overlay is set.
func (e *Enemy) Draw(dst core.Surface, overlay *hitTest) {
	if e.removed {
		return
	}
	dst.DrawImage(SpriteEnemy, e.Anim.Source(e.cellW, e.cellH), e.Bounds())
	if overlay == nil {
		return
	}
	x, y, r := overlay.enemyCircle(e)
	dst.StrokeCircle(x, y, r, core.ColorWhite)
}
