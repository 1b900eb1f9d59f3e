package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// DefaultLead is the gap in world pixels between the player's right edge
// and the next enemy at which the autopilot jumps. It clears enemies at the
// default speeds with a margin of about 40px either way.
const DefaultLead = 40

// Autopilot presses Up when the next enemy gets close. It only ever drives
// the Up intent, so a human can still steer left and right.
type Autopilot struct {
	Lead    float64
	pressed bool
	Jumps   int
}

// NewAutopilot creates an autopilot jumping at lead pixels. Non-positive
// values fall back to DefaultLead.
func NewAutopilot(lead float64) *Autopilot {
	if lead <= 0 {
		lead = DefaultLead
	}
	return &Autopilot{Lead: lead}
}

// Steer updates the Up intent of g for the coming frame.
func (a *Autopilot) Steer(g *Game) {
	s := g.Session()
	if s == nil {
		return
	}
	p := s.Player

	next := nextEnemy(s)
	want := p.OnGround() && next != nil && next.X-p.Bounds().Right() < a.Lead

	switch {
	case want && !a.pressed:
		g.HandleInput(core.KeyDown(core.IntentUp))
		a.pressed = true
		a.Jumps++
	case !want && a.pressed:
		g.HandleInput(core.KeyUp(core.IntentUp))
		a.pressed = false
	}
}

// nextEnemy returns the closest live enemy whose center is still ahead of
// the player's center.
func nextEnemy(s *Session) *Enemy {
	px, _ := s.Player.Bounds().Center()
	var next *Enemy
	for _, e := range s.Enemies {
		if e.Removed() {
			continue
		}
		if ex, _ := e.Bounds().Center(); ex <= px {
			continue
		}
		if next == nil || e.X < next.X {
			next = e
		}
	}
	return next
}
