package gui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-runner/internal/core"
)

var statusFont = text.NewGoXFace(basicfont.Face7x13)

// basicfont glyphs are 13px tall; larger sizes are scaled up.
const fontPx = 13

var palette = map[core.Color]color.RGBA{
	core.ColorDefault:     {255, 255, 255, 255},
	core.ColorBlack:       {0, 0, 0, 255},
	core.ColorWhite:       {255, 255, 255, 255},
	core.ColorRed:         {220, 40, 40, 255},
	core.ColorGreen:       {60, 180, 75, 255},
	core.ColorYellow:      {240, 200, 40, 255},
	core.ColorBlue:        {50, 90, 220, 255},
	core.ColorCyan:        {60, 200, 220, 255},
	core.ColorMagenta:     {200, 60, 200, 255},
	core.ColorOrange:      {245, 130, 48, 255},
	core.ColorGray:        {128, 128, 128, 255},
	core.ColorBrightGreen: {120, 255, 120, 255},
	core.ColorBrightRed:   {255, 90, 90, 255},
}

func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

// ImageSurface draws onto an Ebiten image whose logical size equals the
// world size.
type ImageSurface struct {
	dst    *ebiten.Image
	sheets Sheets
}

// NewImageSurface wraps dst.
func NewImageSurface(dst *ebiten.Image, sheets Sheets) *ImageSurface {
	return &ImageSurface{dst: dst, sheets: sheets}
}

// Clear implements core.Surface.
func (s *ImageSurface) Clear(r core.RectF) {
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), color.Black, false)
}

// DrawImage implements core.Surface.
func (s *ImageSurface) DrawImage(sprite string, src, dst core.RectF) {
	sheet, ok := s.sheets[sprite]
	if !ok || src.W <= 0 || src.H <= 0 {
		return
	}
	rect := image.Rect(int(src.X), int(src.Y), int(src.Right()), int(src.Bottom()))
	cell := sheet.SubImage(rect).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.W/src.W, dst.H/src.H)
	op.GeoM.Translate(dst.X, dst.Y)
	s.dst.DrawImage(cell, op)
}

// DrawText implements core.Surface. y is the baseline.
func (s *ImageSurface) DrawText(msg string, x, y float64, style core.TextStyle) {
	scale := 1.0
	if style.Size > 0 {
		scale = style.Size / fontPx
	}

	op := &text.DrawOptions{}
	if style.Align == core.AlignCenter {
		op.PrimaryAlign = text.AlignCenter
	}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y-statusFont.Metrics().HAscent*scale)
	op.ColorScale.ScaleWithColor(rgba(style.Color))
	text.Draw(s.dst, msg, statusFont, op)
}

// StrokeRect implements core.Surface.
func (s *ImageSurface) StrokeRect(r core.RectF, c core.Color) {
	vector.StrokeRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, rgba(c), false)
}

// StrokeCircle implements core.Surface.
func (s *ImageSurface) StrokeCircle(cx, cy, radius float64, c core.Color) {
	vector.StrokeCircle(s.dst, float32(cx), float32(cy), float32(radius), 1, rgba(c), true)
}

var _ core.Surface = (*ImageSurface)(nil)
