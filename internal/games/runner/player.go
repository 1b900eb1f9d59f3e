package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Player is the controlled sprite.
type Player struct {
	cfg     config.PlayerConfig
	worldW  float64
	groundY float64 // Top edge of the sprite when standing on the floor

	X, Y  float64
	W, H  float64
	Speed float64 // Horizontal speed per frame: -Speed, 0 or +Speed
	VY    float64 // Vertical velocity per frame, negative = up
	Anim  SpriteAnim
}

// NewPlayer creates a player standing on the floor at the configured start.
func NewPlayer(cfg config.PlayerConfig, world config.WorldConfig) *Player {
	p := &Player{
		cfg:     cfg,
		worldW:  world.Width,
		groundY: world.Height - cfg.Height(),
		W:       cfg.Width(),
		H:       cfg.Height(),
		Anim:    NewSpriteAnim(cfg.FPS, cfg.GroundMaxFrame),
	}
	p.X = cfg.StartX
	p.Y = p.groundY
	return p
}

// GroundY returns the sprite top when the player stands on the floor.
func (p *Player) GroundY() float64 {
	return p.groundY
}

// OnGround reports whether the player stands on the floor.
func (p *Player) OnGround() bool {
	return p.Y >= p.groundY
}

// Bounds returns the on-screen sprite box.
func (p *Player) Bounds() core.RectF {
	return core.NewRectF(p.X, p.Y, p.W, p.H)
}

// Update advances the player by one frame. The collision test runs against
// the enemies as they were at the end of the previous frame.
func (p *Player) Update(s *Session, in *core.InputState, deltaMs float64) {
	if s.collisions != nil {
		for _, e := range s.Enemies {
			if e.Removed() {
				continue
			}
			if s.collisions.collides(p, e) {
				s.GameOver = true
			}
		}
	}

	p.Anim.Advance(deltaMs)

	// First match wins; a jump keeps the current horizontal speed.
	switch {
	case in.IsActive(core.IntentRight):
		p.Speed = p.cfg.Speed
	case in.IsActive(core.IntentLeft):
		p.Speed = -p.cfg.Speed
	case in.IsActive(core.IntentUp) && p.OnGround():
		p.VY = p.cfg.JumpVelocity
	default:
		p.Speed = 0
	}

	p.X = core.ClampF(p.X+p.Speed, 0, p.worldW-p.W)

	p.Y += p.VY
	if !p.OnGround() {
		p.VY += p.cfg.Weight
		p.Anim.SetRow(rowAirborne, p.cfg.AirMaxFrame)
	} else {
		p.VY = 0
		p.Anim.SetRow(rowGrounded, p.cfg.GroundMaxFrame)
	}
	if p.Y > p.groundY {
		p.Y = p.groundY
	}
}

// Draw renders the current animation cell, plus the sprite box and hit
// circle when overlay is set.
func (p *Player) Draw(dst core.Surface, overlay *hitTest) {
	dst.DrawImage(SpritePlayer, p.Anim.Source(p.cfg.SpriteWidth, p.cfg.SpriteHeight), p.Bounds())
	if overlay == nil {
		return
	}
	dst.StrokeRect(p.Bounds(), core.ColorWhite)
	x, y, r := overlay.playerCircle(p)
	dst.StrokeCircle(x, y, r, core.ColorWhite)
}

// Restart moves the player back to the start and rewinds the animation.
// VY is left alone; the grounded branch of the next Update zeroes it.
func (p *Player) Restart() {
	p.X = p.cfg.StartX
	p.Y = p.groundY
	p.Anim.Rewind()
}
