package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// SpriteAnim cycles through the cells of one sprite sheet row.
// Frame runs over [0, MaxFrame] inclusive.
type SpriteAnim struct {
	Frame      int
	MaxFrame   int
	Row        int
	TimerMs    float64
	IntervalMs float64
}

// NewSpriteAnim creates an animation that advances fps times per second.
func NewSpriteAnim(fps float64, maxFrame int) SpriteAnim {
	return SpriteAnim{
		MaxFrame:   maxFrame,
		IntervalMs: 1000 / fps,
	}
}

// Advance accumulates frame time and steps to the next cell once the
// accumulator exceeds the interval. The timer is reset, not reduced, so any
// overshoot is dropped.
func (a *SpriteAnim) Advance(deltaMs float64) {
	if a.TimerMs > a.IntervalMs {
		if a.Frame >= a.MaxFrame {
			a.Frame = 0
		} else {
			a.Frame++
		}
		a.TimerMs = 0
		return
	}
	a.TimerMs += deltaMs
}

// SetRow switches to another row of the sheet. The current frame is kept;
// if it is past the new MaxFrame the next Advance wraps it to 0.
func (a *SpriteAnim) SetRow(row, maxFrame int) {
	a.Row = row
	a.MaxFrame = maxFrame
}

// Rewind returns to the first cell.
func (a *SpriteAnim) Rewind() {
	a.Frame = 0
	a.TimerMs = 0
}

// Source returns the sheet rectangle of the current cell.
func (a SpriteAnim) Source(cellW, cellH float64) core.RectF {
	return core.NewRectF(float64(a.Frame)*cellW, float64(a.Row)*cellH, cellW, cellH)
}
