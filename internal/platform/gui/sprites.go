package gui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
)

var (
	colorSkyTop    = color.RGBA{40, 60, 110, 255}
	colorSkyBottom = color.RGBA{120, 160, 210, 255}
	colorHillFar   = color.RGBA{70, 110, 90, 255}
	colorHillNear  = color.RGBA{50, 90, 60, 255}
	colorGround    = color.RGBA{110, 80, 50, 255}
	colorGrass     = color.RGBA{90, 160, 70, 255}
	colorPlayer    = color.RGBA{60, 170, 220, 255}
	colorPlayerArm = color.RGBA{30, 120, 170, 255}
	colorEnemy     = color.RGBA{200, 60, 60, 255}
	colorEnemyDark = color.RGBA{130, 30, 30, 255}
	colorEye       = color.RGBA{255, 255, 255, 255}
	colorPupil     = color.RGBA{0, 0, 0, 255}
)

// Sheets holds the procedurally painted sprite sheet of every runner
// sprite, keyed by sprite name.
type Sheets map[string]*ebiten.Image

// NewSheets paints a sheet for every sprite the runner draws. Cells are laid
// out the way the game addresses them: frame by column, row by row.
func NewSheets(cfg config.RunnerConfig) Sheets {
	out := make(Sheets)
	for _, sh := range runner.Sheets(cfg) {
		img := ebiten.NewImage(int(sh.CellW)*sh.Cols, int(sh.CellH)*sh.Rows)
		for row := range sh.Rows {
			for col := range sh.Cols {
				x := float32(col) * float32(sh.CellW)
				y := float32(row) * float32(sh.CellH)
				w, h := float32(sh.CellW), float32(sh.CellH)
				switch sh.Name {
				case runner.SpritePlayer:
					paintPlayer(img, x, y, w, h, col, row)
				case runner.SpriteEnemy:
					paintEnemy(img, x, y, w, h, col)
				case runner.SpriteBackground:
					paintBackground(img, w, h)
				}
			}
		}
		out[sh.Name] = img
	}
	return out
}

func paintPlayer(img *ebiten.Image, x, y, w, h float32, frame, row int) {
	bodyW, bodyH := w*0.4, h*0.45
	bx := x + (w-bodyW)/2
	by := y + h*0.25

	// Head
	vector.FillCircle(img, x+w/2, y+h*0.15, h*0.1, colorPlayer, true)
	vector.DrawFilledRect(img, bx, by, bodyW, bodyH, colorPlayer, true)

	// Arms swing with the frame
	swing := float32(math.Sin(float64(frame)*math.Pi/4)) * w * 0.08
	vector.DrawFilledRect(img, bx-w*0.08, by+bodyH*0.2+swing, w*0.08, bodyH*0.5, colorPlayerArm, true)
	vector.DrawFilledRect(img, bx+bodyW, by+bodyH*0.2-swing, w*0.08, bodyH*0.5, colorPlayerArm, true)

	legW, legH := bodyW*0.35, h-(by-y)-bodyH
	if row != 0 {
		// Airborne: legs tucked
		vector.DrawFilledRect(img, bx, by+bodyH, legW, legH*0.5, colorPlayerArm, true)
		vector.DrawFilledRect(img, bx+bodyW-legW, by+bodyH, legW, legH*0.5, colorPlayerArm, true)
		return
	}
	stride := swing * 1.5
	vector.DrawFilledRect(img, bx+stride, by+bodyH, legW, legH, colorPlayerArm, true)
	vector.DrawFilledRect(img, bx+bodyW-legW-stride, by+bodyH, legW, legH, colorPlayerArm, true)
}

func paintEnemy(img *ebiten.Image, x, y, w, h float32, frame int) {
	bob := float32(frame%2) * h * 0.04
	cx, cy := x+w/2, y+h*0.55+bob
	vector.FillCircle(img, cx, cy, h*0.42, colorEnemy, true)
	vector.StrokeCircle(img, cx, cy, h*0.42, 3, colorEnemyDark, true)

	// Eyes look toward the player
	for _, dx := range []float32{-w * 0.15, w * 0.05} {
		vector.FillCircle(img, cx+dx, cy-h*0.12, h*0.08, colorEye, true)
		vector.FillCircle(img, cx+dx-h*0.03, cy-h*0.12, h*0.04, colorPupil, true)
	}
}

// paintBackground draws sky, two hill layers and the ground. Hill periods
// divide the tile width so the tile repeats without a seam.
func paintBackground(img *ebiten.Image, w, h float32) {
	const bands = 12
	for i := range bands {
		t := float64(i) / bands
		c := lerp(colorSkyTop, colorSkyBottom, t)
		vector.DrawFilledRect(img, 0, h*float32(i)/bands, w, h/bands+1, c, false)
	}

	ground := h * 0.92
	for x := float32(0); x < w; x += 4 {
		u := float64(x)
		far := 140 + 60*math.Sin(u*2*math.Pi/800)
		near := 80 + 35*math.Sin(u*2*math.Pi/300)
		vector.DrawFilledRect(img, x, ground-float32(far), 4, float32(far), colorHillFar, false)
		vector.DrawFilledRect(img, x, ground-float32(near), 4, float32(near), colorHillNear, false)
	}

	vector.DrawFilledRect(img, 0, ground, w, h-ground, colorGround, false)
	vector.DrawFilledRect(img, 0, ground, w, 6, colorGrass, false)
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 255}
}
