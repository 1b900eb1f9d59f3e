package core

// Align controls horizontal text placement relative to the given x.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// TextStyle describes how DrawText renders a string.
type TextStyle struct {
	Color Color
	Size  float64 // Nominal font size in world pixels
	Align Align
}

// Surface is the drawing target a game renders into, in world pixels.
// Sprites are referenced by name; each platform owns the artwork behind a
// name and picks the cell given by src (sprite sheet pixels).
type Surface interface {
	Clear(r RectF)
	DrawImage(sprite string, src, dst RectF)
	DrawText(text string, x, y float64, style TextStyle)
	StrokeRect(r RectF, c Color)
	StrokeCircle(cx, cy, radius float64, c Color)
}

// Display is the host window or terminal a game is shown on.
type Display interface {
	ToggleFullscreen() error
}

// Host bundles what a platform hands a game to run it.
type Host struct {
	Scheduler Scheduler
	Surface   Surface
	Display   Display // may be nil when the platform has no fullscreen mode
}

// Discard is a Surface that draws nothing, for headless hosts.
var Discard Surface = discard{}

type discard struct{}

func (discard) Clear(RectF)                                   {}
func (discard) DrawImage(string, RectF, RectF)                {}
func (discard) DrawText(string, float64, float64, TextStyle)  {}
func (discard) StrokeRect(RectF, Color)                       {}
func (discard) StrokeCircle(float64, float64, float64, Color) {}
