package runner

import "github.com/vovakirdan/tui-runner/internal/config"

// Sprite names understood by every platform surface.
const (
	SpritePlayer     = "player"
	SpriteEnemy      = "enemy"
	SpriteBackground = "background"
)

// Player sheet rows.
const (
	rowGrounded = 0
	rowAirborne = 1
)

// Sheet describes the layout of a sprite sheet so platforms can build or
// slice artwork for it.
type Sheet struct {
	Name         string
	CellW, CellH float64
	Cols, Rows   int
}

// Sheets returns the sheet layout for every sprite the runner draws.
func Sheets(cfg config.RunnerConfig) []Sheet {
	return []Sheet{
		{
			Name:  SpritePlayer,
			CellW: cfg.Player.SpriteWidth,
			CellH: cfg.Player.SpriteHeight,
			Cols:  max(cfg.Player.GroundMaxFrame, cfg.Player.AirMaxFrame) + 1,
			Rows:  2,
		},
		{
			Name:  SpriteEnemy,
			CellW: cfg.Enemy.SpriteWidth,
			CellH: cfg.Enemy.SpriteHeight,
			Cols:  cfg.Enemy.MaxFrame + 1,
			Rows:  1,
		},
		{
			Name:  SpriteBackground,
			CellW: cfg.Background.Width,
			CellH: cfg.Background.Height,
			Cols:  1,
			Rows:  1,
		},
	}
}
