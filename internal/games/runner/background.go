package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Background is a horizontally scrolling tile drawn twice side by side.
type Background struct {
	X, Y  float64
	W, H  float64
	Speed float64
}

// NewBackground creates a background at its starting offset.
func NewBackground(cfg config.BackgroundConfig) *Background {
	return &Background{
		W:     cfg.Width,
		H:     cfg.Height,
		Speed: cfg.Speed,
	}
}

// Update scrolls the tile left and wraps it back to 0 once it has moved
// past a full tile width.
func (b *Background) Update() {
	b.X -= b.Speed
	if b.X < -b.W {
		b.X = 0
	}
}

// Draw blits the tile at X and again right behind it. The second copy
// overlaps by one scroll step so no seam shows between discrete steps.
func (b *Background) Draw(dst core.Surface) {
	src := core.NewRectF(0, 0, b.W, b.H)
	dst.DrawImage(SpriteBackground, src, core.NewRectF(b.X, b.Y, b.W, b.H))
	dst.DrawImage(SpriteBackground, src, core.NewRectF(b.X+b.W-b.Speed, b.Y, b.W, b.H))
}

// Restart returns the tile to its starting offset.
func (b *Background) Restart() {
	b.X = 0
}
