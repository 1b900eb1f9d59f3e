package tui

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

const (
	helpRows       = 1 // Terminal rows reserved under the playfield
	defaultKeyHold = 150 * time.Millisecond
)

// Options configures a terminal session.
type Options struct {
	WorldW, WorldH float64       // Playfield size in world pixels
	KeyHold        time.Duration // How long a key press stays active without a repeat
	Logger         *log.Logger
}

var errNotTerminal = errors.New("tui: output is not a terminal")

// altScreen toggles the alternate screen buffer. The toggle is queued as a
// command that the model hands back to Bubble Tea after the input event.
type altScreen struct {
	fd     int
	on     bool
	queued tea.Cmd
}

// ToggleFullscreen implements core.Display.
func (a *altScreen) ToggleFullscreen() error {
	if !term.IsTerminal(a.fd) {
		return errNotTerminal
	}
	if a.on {
		a.queued = tea.ExitAltScreen
	} else {
		a.queued = tea.EnterAltScreen
	}
	a.on = !a.on
	return nil
}

func (a *altScreen) take() tea.Cmd {
	cmd := a.queued
	a.queued = nil
	return cmd
}

// Model is the Bubble Tea model for running a runner variant.
type Model struct {
	game    registry.Game
	screen  *core.Screen
	surface *ScreenSurface
	frames  *core.FrameQueue
	display *altScreen
	config  core.RuntimeConfig
	opts    Options
	keys    KeyMap
	help    help.Model
	held    map[core.Intent]time.Time // Last press of each held key
	start   time.Time
	now     time.Time
	dragged bool // Left mouse button is down
	quit    bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.KeyHold <= 0 {
		opts.KeyHold = defaultKeyHold
	}
	screen := core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpRows, 1))
	now := time.Now()

	return Model{
		game:    game,
		screen:  screen,
		surface: NewScreenSurface(screen, opts.WorldW, opts.WorldH),
		frames:  &core.FrameQueue{},
		display: &altScreen{fd: int(os.Stdout.Fd()), on: true},
		config:  cfg,
		opts:    opts,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		held:    make(map[core.Intent]time.Time),
		start:   now,
		now:     now,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.game.Start(core.Host{Scheduler: m.frames, Surface: m.surface, Display: m.display})
	m.opts.Logger.Info("game started", "game", m.game.ID(), "cols", m.screen.Width(), "rows", m.screen.Height())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quit = true
		m.frames.Cancel()
		st := m.game.State()
		m.opts.Logger.Info("game stopped", "game", m.game.ID(), "score", st.Score, "frames", st.Frames)
		return m, tea.Quit
	case key.Matches(msg, m.keys.Restart):
		m.game.HandleInput(core.Confirm())
		return m, nil
	case key.Matches(msg, m.keys.Fullscreen):
		m.game.HandleInput(core.Fullscreen())
		return m, m.display.take()
	}

	// Terminals only report presses; a key counts as held until its
	// auto-repeat stops for longer than the hold window.
	if intent, ok := m.keys.Intent(msg); ok {
		if _, held := m.held[intent]; !held {
			m.game.HandleInput(core.KeyDown(intent))
		}
		m.held[intent] = m.now
	}
	return m, nil
}

// handleMouse turns left-button drags into touch gestures.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	x, y := m.surface.CellToWorld(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.dragged = true
			m.game.HandleInput(core.TouchStart(x, y))
		}
	case tea.MouseActionMotion:
		if m.dragged {
			m.game.HandleInput(core.TouchMove(x, y))
		}
	case tea.MouseActionRelease:
		if m.dragged {
			m.dragged = false
			m.game.HandleInput(core.TouchEnd())
		}
	}
	return m, nil
}

// handleResize processes window resize events. The world keeps its size;
// only the rasterisation scale changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick releases expired keys and pumps one frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.now = now
	for intent, pressed := range m.held {
		if now.Sub(pressed) > m.opts.KeyHold {
			delete(m.held, intent)
			m.game.HandleInput(core.KeyUp(intent))
		}
	}

	m.frames.Pump(float64(now.Sub(m.start)) / float64(time.Millisecond))
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quit {
		return ""
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Screen returns the character buffer the game draws into.
func (m Model) Screen() *core.Screen {
	return m.screen
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Drags become swipes
	)

	_, err := p.Run()
	return err
}
