package tui

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
)

// Terminal artwork for the runner sprites.
const (
	bodyRune   = '█'
	headRune   = '▄'
	legRune1   = '╱'
	legRune2   = '╲'
	airRune    = '▀'
	enemyRune  = '▓'
	eyeRune    = '°'
	hillRune   = '░'
	starRune   = '·'
	groundRune = '═'
	circleRune = '∙'
)

// ScreenSurface rasterises world-pixel drawing calls onto a character
// screen. Each cell covers worldW/screenW by worldH/screenH world pixels.
type ScreenSurface struct {
	screen *core.Screen
	worldW float64
	worldH float64
}

// NewScreenSurface creates a surface mapping a worldW x worldH playfield
// onto screen.
func NewScreenSurface(screen *core.Screen, worldW, worldH float64) *ScreenSurface {
	return &ScreenSurface{screen: screen, worldW: worldW, worldH: worldH}
}

func (s *ScreenSurface) scale() (sx, sy float64) {
	return float64(s.screen.Width()) / s.worldW, float64(s.screen.Height()) / s.worldH
}

// cellRect converts a world rectangle to the cells it covers. Non-empty
// rectangles always cover at least one cell.
func (s *ScreenSurface) cellRect(r core.RectF) core.Rect {
	sx, sy := s.scale()
	x0 := int(math.Floor(r.X * sx))
	y0 := int(math.Floor(r.Y * sy))
	x1 := max(int(math.Ceil(r.Right()*sx)), x0+1)
	y1 := max(int(math.Ceil(r.Bottom()*sy)), y0+1)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// CellToWorld returns the world position at the center of a cell.
func (s *ScreenSurface) CellToWorld(x, y int) (float64, float64) {
	sx, sy := s.scale()
	return (float64(x) + 0.5) / sx, (float64(y) + 0.5) / sy
}

// Clear implements core.Surface.
func (s *ScreenSurface) Clear(r core.RectF) {
	s.screen.ClearRect(s.cellRect(r))
}

// DrawImage implements core.Surface. The sheet cell is recovered from src.
// Sprites entirely outside the world are skipped.
func (s *ScreenSurface) DrawImage(sprite string, src, dst core.RectF) {
	if !dst.Intersects(core.NewRectF(0, 0, s.worldW, s.worldH)) {
		return
	}
	frame, row := 0, 0
	if src.W > 0 && src.H > 0 {
		frame = int(src.X / src.W)
		row = int(src.Y / src.H)
	}

	switch sprite {
	case runner.SpriteBackground:
		s.drawBackground(dst)
	case runner.SpritePlayer:
		s.drawPlayer(s.cellRect(dst), frame, row)
	case runner.SpriteEnemy:
		s.drawEnemy(s.cellRect(dst), frame)
	default:
		s.screen.FillRect(s.cellRect(dst), core.Cell{Rune: '?', Color: core.ColorMagenta})
	}
}

func (s *ScreenSurface) drawPlayer(r core.Rect, frame, row int) {
	body := core.Cell{Rune: bodyRune, Color: core.ColorGreen}
	s.screen.FillRect(core.NewRect(r.X, r.Y+1, r.W, r.H-2), body)
	s.screen.DrawHLine(r.X+r.W/4, r.Y, max(r.W/2, 1), core.Cell{Rune: headRune, Color: core.ColorGreen})

	legs := r.Bottom() - 1
	for x := r.X; x < r.Right(); x++ {
		switch {
		case row != 0:
			s.screen.SetCell(x, legs, core.Cell{Rune: airRune, Color: core.ColorGreen})
		case (x+frame)%2 == 0:
			s.screen.SetCell(x, legs, core.Cell{Rune: legRune1, Color: core.ColorGreen})
		default:
			s.screen.SetCell(x, legs, core.Cell{Rune: legRune2, Color: core.ColorGreen})
		}
	}
}

func (s *ScreenSurface) drawEnemy(r core.Rect, frame int) {
	s.screen.FillRect(r, core.Cell{Rune: enemyRune, Color: core.ColorRed})
	eye := core.Cell{Rune: eyeRune, Color: core.ColorYellow}
	s.screen.SetCell(r.X+1, r.Y, eye)
	if frame%2 == 0 {
		s.screen.SetCell(r.X+2, r.Y, eye)
	}
}

// drawBackground paints sky, hills and the ground line for one tile. The
// scenery is a function of the tile-local x so two adjacent copies line up.
func (s *ScreenSurface) drawBackground(dst core.RectF) {
	r := s.cellRect(dst)
	sx, sy := s.scale()
	ground := s.screen.Height() - 1

	for x := max(r.X, 0); x < min(r.Right(), s.screen.Width()); x++ {
		u := (float64(x)+0.5)/sx - dst.X
		if u < 0 || u >= dst.W {
			continue
		}

		hill := 90 + 50*math.Sin(u*2*math.Pi/800) + 25*math.Sin(u*2*math.Pi/300)
		top := int((s.worldH - hill) * sy)
		for y := top; y < ground; y++ {
			s.screen.SetCell(x, y, core.Cell{Rune: hillRune, Color: core.ColorGray})
		}

		if col := int(u / 60); col%7 == 3 {
			y := (col * 5) % max(top/2, 1)
			s.screen.SetCell(x, y, core.Cell{Rune: starRune, Color: core.ColorYellow})
		}

		s.screen.SetCell(x, ground, core.Cell{Rune: groundRune, Color: core.ColorOrange})
	}
}

// DrawText implements core.Surface. Size is ignored; text is one cell high.
func (s *ScreenSurface) DrawText(text string, x, y float64, style core.TextStyle) {
	sx, sy := s.scale()
	n := utf8.RuneCountInString(text)
	cx := int(x * sx)
	if style.Align == core.AlignCenter {
		// Keep the start of centred text on narrow screens.
		cx = core.Clamp(cx-n/2, 0, max(s.screen.Width()-n, 0))
	}
	// y is the text baseline; the glyphs sit in the cell above it.
	cy := max(int(y*sy)-1, 0)
	s.screen.DrawText(cx, cy, text, style.Color)
}

// StrokeRect implements core.Surface.
func (s *ScreenSurface) StrokeRect(r core.RectF, c core.Color) {
	s.screen.DrawBox(s.cellRect(r), c)
}

// StrokeCircle implements core.Surface.
func (s *ScreenSurface) StrokeCircle(cx, cy, radius float64, c core.Color) {
	sx, sy := s.scale()
	steps := max(int(2*math.Pi*radius*max(sx, sy)), 8)
	for i := range steps {
		a := 2 * math.Pi * float64(i) / float64(steps)
		x := int(math.Floor((cx + radius*math.Cos(a)) * sx))
		y := int(math.Floor((cy + radius*math.Sin(a)) * sy))
		s.screen.SetCell(x, y, core.Cell{Rune: circleRune, Color: c})
	}
}

var _ core.Surface = (*ScreenSurface)(nil)
