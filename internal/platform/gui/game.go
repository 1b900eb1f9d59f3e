// Package gui runs the runner in a desktop or mobile window with Ebiten.
// Frames are simulated in Update into a draw list that Draw replays, since
// Ebiten only hands out the screen image while drawing.
package gui

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

var errFullscreenUnsupported = errors.New("gui: fullscreen is not supported on " + runtime.GOOS)

// Options configures a window session.
type Options struct {
	Config     config.RunnerConfig
	Fullscreen bool
	Logger     *log.Logger
}

// keyIntents maps physical keys to intents.
var keyIntents = map[ebiten.Key]core.Intent{
	ebiten.KeyArrowUp:    core.IntentUp,
	ebiten.KeyW:          core.IntentUp,
	ebiten.KeySpace:      core.IntentUp,
	ebiten.KeyArrowDown:  core.IntentDown,
	ebiten.KeyS:          core.IntentDown,
	ebiten.KeyArrowLeft:  core.IntentLeft,
	ebiten.KeyA:          core.IntentLeft,
	ebiten.KeyArrowRight: core.IntentRight,
	ebiten.KeyD:          core.IntentRight,
}

type window struct{}

// ToggleFullscreen implements core.Display.
func (window) ToggleFullscreen() error {
	if runtime.GOOS == "android" || runtime.GOOS == "ios" {
		return errFullscreenUnsupported
	}
	ebiten.SetFullscreen(!ebiten.IsFullscreen())
	return nil
}

// Game adapts a registry game to ebiten.Game.
type Game struct {
	game   registry.Game
	world  config.WorldConfig
	frames *core.FrameQueue
	draw   *core.DrawList
	sheets Sheets
	logger *log.Logger
	start  time.Time

	touchID  ebiten.TouchID
	touching bool
	mouse    bool
}

// NewGame resets game and starts it against an Ebiten-backed host.
func NewGame(game registry.Game, cfg core.RuntimeConfig, opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	g := &Game{
		game:   game,
		world:  opts.Config.World,
		frames: &core.FrameQueue{},
		draw:   core.NewDrawList(),
		sheets: NewSheets(opts.Config),
		logger: opts.Logger,
		start:  time.Now(),
	}
	game.Reset(cfg)
	game.Start(core.Host{Scheduler: g.frames, Surface: g.draw, Display: window{}})
	return g
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.readKeys()
	g.readTouches()
	g.readMouse()

	// Keep the last recorded frame on screen while no frame is pending.
	if g.frames.Pending() {
		g.draw.Reset()
		g.frames.Pump(float64(time.Since(g.start)) / float64(time.Millisecond))
	}
	return nil
}

func (g *Game) readKeys() {
	for k, intent := range keyIntents {
		if inpututil.IsKeyJustPressed(k) {
			g.game.HandleInput(core.KeyDown(intent))
		}
		if inpututil.IsKeyJustReleased(k) && !g.intentStillHeld(intent) {
			g.game.HandleInput(core.KeyUp(intent))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		g.game.HandleInput(core.Confirm())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.game.HandleInput(core.Fullscreen())
	}
}

// intentStillHeld reports whether another key bound to intent is down.
func (g *Game) intentStillHeld(intent core.Intent) bool {
	for k, i := range keyIntents {
		if i == intent && ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// readTouches follows the first finger down until it lifts.
func (g *Game) readTouches() {
	if !g.touching {
		ids := inpututil.AppendJustPressedTouchIDs(nil)
		if len(ids) == 0 {
			return
		}
		g.touchID, g.touching = ids[0], true
		x, y := ebiten.TouchPosition(g.touchID)
		g.game.HandleInput(core.TouchStart(float64(x), float64(y)))
		return
	}

	if inpututil.IsTouchJustReleased(g.touchID) {
		g.touching = false
		g.game.HandleInput(core.TouchEnd())
		return
	}
	x, y := ebiten.TouchPosition(g.touchID)
	g.game.HandleInput(core.TouchMove(float64(x), float64(y)))
}

// readMouse treats a left-button drag like a touch.
func (g *Game) readMouse() {
	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.mouse = true
		g.game.HandleInput(core.TouchStart(float64(x), float64(y)))
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		if g.mouse {
			g.mouse = false
			g.game.HandleInput(core.TouchEnd())
		}
	case g.mouse:
		g.game.HandleInput(core.TouchMove(float64(x), float64(y)))
	}
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.draw.Replay(NewImageSurface(screen, g.sheets))
}

// Layout implements ebiten.Game. The logical screen is the world, scaled to
// fit the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.world.Width), int(g.world.Height)
}

// Run opens a window and blocks until it is closed.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	g := NewGame(game, cfg, opts)

	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(int(g.world.Width), int(g.world.Height))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}
	ebiten.SetFullscreen(opts.Fullscreen)

	g.logger.Info("window opened", "game", game.ID(), "tps", ebiten.TPS())
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	st := game.State()
	g.logger.Info("window closed", "game", game.ID(), "score", st.Score, "frames", st.Frames)
	return nil
}

var _ ebiten.Game = (*Game)(nil)
