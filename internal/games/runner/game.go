// Package runner implements a side-scrolling runner: the player jumps over
// enemies that scroll in from the right past a looping background, scoring
// one point per enemy that leaves the screen. The collide variant adds a
// circular hit test, a game-over state and a restart flow.
package runner

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// Status text layout in world pixels.
const (
	scoreX, scoreY   = 20, 50
	scoreSize        = 40
	shadowOffset     = 2
	bannerY          = 200
	bannerSize       = 30
	alertX, alertY   = 20, 100
	alertSize        = 20
	alertDurationMs  = 3000
	gameOverBanner   = "GAME OVER, press Enter or swipe down to restart!"
	fullscreenFailed = "Error, can't enable full-screen mode: %v"
)

// Variant selects the rule set of a registered game.
type Variant struct {
	ID         string
	Title      string
	Collisions bool // Enables the hit test, game over and restart
}

var (
	// Classic scrolls and scores forever.
	Classic = Variant{ID: "classic", Title: "Runner", Collisions: false}
	// Collide ends the run on contact with an enemy.
	Collide = Variant{ID: "collide", Title: "Runner: Collide", Collisions: true}
)

var errNoDisplay = errors.New("no display attached")

// configPath stores the custom config path set via CLI
var configPath string

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger routes game events to l. A nil logger discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game drives a Session from host frame callbacks.
type Game struct {
	variant Variant
	runtime core.RuntimeConfig
	cfg     config.RunnerConfig

	session *Session
	input   *core.InputState
	swipes  *core.SwipeTracker
	clock   core.Clock
	host    core.Host

	running    bool
	frames     int
	now        float64 // Timestamp of the last frame
	alert      string
	alertUntil float64
}

// New creates an unstarted game of the given variant.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.variant.Title
}

// Reset loads the configuration and builds a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		logger.Warn("falling back to default config", "err", err)
		cfg = config.DefaultRunnerConfig()
	}
	if !g.variant.Collisions {
		cfg.Collision.Enabled = false
		cfg.Collision.DebugHitboxes = false
	}
	if runtime.Debug {
		cfg.Collision.DebugHitboxes = true
	}
	g.cfg = cfg

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g.session = NewSession(cfg, rand.New(rand.NewSource(seed)))
	g.input = core.NewInputState()
	g.swipes = core.NewSwipeTracker(cfg.Input.SwipeThreshold)
	g.clock.Reset()
	g.running = false
	g.frames = 0
	g.now = 0
	g.alert = ""
	g.alertUntil = 0
}

// Start attaches the game to host and requests the first frame. A host
// without a surface draws into core.Discard.
func (g *Game) Start(host core.Host) {
	if host.Surface == nil {
		host.Surface = core.Discard
	}
	g.host = host
	g.schedule()
}

func (g *Game) schedule() {
	if g.host.Scheduler == nil {
		return
	}
	g.running = true
	g.host.Scheduler.RequestFrame(g.animate)
}

// animate is the frame callback. It re-requests itself until game over.
func (g *Game) animate(timestamp float64) {
	g.running = false
	ft := g.clock.Tick(timestamp)
	g.now = ft.Timestamp
	g.frames++

	g.step(ft.DeltaMs)

	if g.session.GameOver {
		logger.Debug("game over", "score", g.session.Score, "frames", g.frames)
		return
	}
	g.schedule()
}

func (g *Game) step(deltaMs float64) {
	s := g.session
	dst := g.host.Surface

	dst.Clear(core.NewRectF(0, 0, g.cfg.World.Width, g.cfg.World.Height))

	s.Background.Update()
	s.Background.Draw(dst)

	s.Player.Update(s, g.input, deltaMs)
	s.Player.Draw(dst, s.overlay())

	before := s.Score
	if e := s.Spawner.Tick(s, deltaMs, dst); e != nil {
		logger.Debug("enemy spawned", "x", e.X, "next_ms", s.Spawner.Threshold())
	}
	if s.Score > before {
		logger.Debug("enemy cleared", "score", s.Score)
	}

	g.drawStatus(dst)
}

func (g *Game) drawStatus(dst core.Surface) {
	s := g.session

	score := fmt.Sprintf("Score: %d", s.Score)
	drawShadowed(dst, score, scoreX, scoreY, core.TextStyle{Size: scoreSize})

	if s.GameOver {
		drawShadowed(dst, gameOverBanner, g.cfg.World.Width/2, bannerY,
			core.TextStyle{Size: bannerSize, Align: core.AlignCenter})
	}

	g.drawAlert(dst)
}

func (g *Game) drawAlert(dst core.Surface) {
	if g.alert != "" && g.now < g.alertUntil {
		dst.DrawText(g.alert, alertX, alertY, core.TextStyle{Color: core.ColorRed, Size: alertSize})
	}
}

// drawShadowed draws text in white over a black copy offset down-right.
func drawShadowed(dst core.Surface, text string, x, y float64, style core.TextStyle) {
	shadow := style
	shadow.Color = core.ColorBlack
	dst.DrawText(text, x+shadowOffset, y+shadowOffset, shadow)
	style.Color = core.ColorWhite
	dst.DrawText(text, x, y, style)
}

// HandleInput folds a platform event into the input state.
func (g *Game) HandleInput(ev core.InputEvent) {
	switch ev.Kind {
	case core.EventKeyDown:
		g.input.Press(ev.Intent)
	case core.EventKeyUp:
		g.input.Release(ev.Intent)
	case core.EventTouchStart:
		g.swipes.Start(ev.X, ev.Y)
	case core.EventTouchMove:
		for _, i := range g.swipes.Move(ev.X, ev.Y, g.input) {
			if i == core.IntentDown || i == core.IntentRight {
				g.Restart()
			}
		}
	case core.EventTouchEnd:
		g.swipes.End(g.input)
	case core.EventConfirm:
		g.Restart()
	case core.EventFullscreen:
		g.toggleFullscreen()
	}
}

func (g *Game) toggleFullscreen() {
	var err error
	if g.host.Display == nil {
		err = errNoDisplay
	} else {
		err = g.host.Display.ToggleFullscreen()
	}
	if err == nil {
		return
	}
	logger.Warn("fullscreen toggle failed", "err", err)
	g.alert = fmt.Sprintf(fullscreenFailed, err)
	g.alertUntil = g.now + alertDurationMs

	// No frame follows a game over, so draw over the last one now.
	if g.session != nil && g.session.GameOver && g.host.Surface != nil {
		g.drawAlert(g.host.Surface)
	}
}

// Restart resets the session and resumes the frame loop. It only acts after
// a game over and reports whether it did.
func (g *Game) Restart() bool {
	if g.session == nil || !g.session.GameOver {
		return false
	}
	g.session.Restart()
	g.clock.Reset()
	g.frames = 0
	logger.Debug("restart")
	g.schedule()
	return true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{Running: g.running, Frames: g.frames}
	if g.session != nil {
		st.Score = g.session.Score
		st.GameOver = g.session.GameOver
	}
	return st
}

// Session exposes the live session for frontends and tools.
func (g *Game) Session() *Session {
	return g.session
}

// Config returns the configuration loaded by the last Reset.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}

// Input returns the intent set the player reads each frame.
func (g *Game) Input() *core.InputState {
	return g.input
}

// Register variants with the registry
func init() {
	registry.Register(Classic.ID, func() registry.Game { return New(Classic) })
	registry.Register(Collide.ID, func() registry.Game { return New(Collide) })
}
