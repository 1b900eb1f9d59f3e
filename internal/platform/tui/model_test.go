package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
)

func newTestModel(t *testing.T, v runner.Variant) (Model, *runner.Game) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	g := runner.New(v)
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	m := NewModel(g, cfg, Options{WorldW: 800, WorldH: 700, KeyHold: 150 * time.Millisecond})
	m.display.fd = -1
	require.NotNil(t, m.Init())
	return m, g
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func tickAt(m Model, ms int) TickMsg {
	return TickMsg(m.start.Add(time.Duration(ms) * time.Millisecond))
}

func TestTickPumpsFrame(t *testing.T) {
	m, g := newTestModel(t, runner.Classic)

	m, cmd := send(t, m, tickAt(m, 16))
	assert.NotNil(t, cmd, "ticks keep coming")
	assert.Equal(t, 1, g.State().Frames)
	assert.Contains(t, m.Screen().Row(0), "Score: 0")

	view := m.View()
	assert.Contains(t, view, "jump")
	assert.Contains(t, view, "quit")
}

func TestKeyHoldWindow(t *testing.T) {
	m, g := newTestModel(t, runner.Classic)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.True(t, g.Input().IsActive(core.IntentRight))

	m, _ = send(t, m, tickAt(m, 100))
	assert.True(t, g.Input().IsActive(core.IntentRight))
	assert.Equal(t, 5.0, g.Session().Player.X)

	// Auto-repeat refreshes the hold.
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = send(t, m, tickAt(m, 200))
	assert.True(t, g.Input().IsActive(core.IntentRight))

	_, _ = send(t, m, tickAt(m, 400))
	assert.False(t, g.Input().IsActive(core.IntentRight))
}

func TestLetterBindings(t *testing.T) {
	m, g := newTestModel(t, runner.Classic)

	_, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	assert.True(t, g.Input().IsActive(core.IntentLeft))
	_, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	assert.True(t, g.Input().IsActive(core.IntentUp))
}

func TestMouseDragSwipes(t *testing.T) {
	m, g := newTestModel(t, runner.Classic)

	m, _ = send(t, m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = send(t, m, tea.MouseMsg{X: 10, Y: 9, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	assert.True(t, g.Input().IsActive(core.IntentDown))

	_, _ = send(t, m, tea.MouseMsg{X: 10, Y: 9, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.False(t, g.Input().IsActive(core.IntentDown))
}

func TestMotionWithoutPressIgnored(t *testing.T) {
	m, g := newTestModel(t, runner.Classic)
	_, _ = send(t, m, tea.MouseMsg{X: 40, Y: 20, Action: tea.MouseActionMotion})
	assert.Empty(t, g.Input().Active())
}

func TestRestartAfterGameOver(t *testing.T) {
	m, g := newTestModel(t, runner.Collide)
	m, _ = send(t, m, tickAt(m, 16))

	s := g.Session()
	e := runner.NewEnemy(s.Config().Enemy, s.Config().World)
	p := s.Player
	e.X = p.X + p.W/2 + 20 - e.W/2
	e.Y = p.Y + p.H/2 + 20 - e.H/2
	s.Enemies = append(s.Enemies, e)

	m, _ = send(t, m, tickAt(m, 32))
	require.True(t, g.State().GameOver)
	assert.True(t, strings.Contains(m.Screen().String(), "GAME OVER"))

	m, _ = send(t, m, tickAt(m, 48))
	assert.Equal(t, 2, g.State().Frames, "no frames while over")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, g.State().GameOver)
	_, _ = send(t, m, tickAt(m, 64))
	assert.Equal(t, 1, g.State().Frames)
}

func TestFullscreenFailureOffTerminal(t *testing.T) {
	m, g := newTestModel(t, runner.Collide)
	m, _ = send(t, m, tickAt(m, 16))

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")})
	assert.Nil(t, cmd)

	m, _ = send(t, m, tickAt(m, 32))
	assert.Contains(t, m.Screen().String(), "Error, can't enable full-screen mode")
	assert.False(t, g.State().GameOver)
}

func TestFullscreenFailureOnGameOverScreen(t *testing.T) {
	m, g := newTestModel(t, runner.Collide)
	m, _ = send(t, m, tickAt(m, 16))

	s := g.Session()
	e := runner.NewEnemy(s.Config().Enemy, s.Config().World)
	p := s.Player
	e.X = p.X + p.W/2 + 20 - e.W/2
	e.Y = p.Y + p.H/2 + 20 - e.H/2
	s.Enemies = append(s.Enemies, e)
	m, _ = send(t, m, tickAt(m, 32))
	require.True(t, g.State().GameOver)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")})
	out := m.Screen().String()
	assert.Contains(t, out, "Error, can't enable full-screen mode")
	assert.Contains(t, out, "GAME OVER")
}

func TestResizeKeepsGame(t *testing.T) {
	m, g := newTestModel(t, runner.Classic)
	m, _ = send(t, m, tickAt(m, 16))

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.Screen().Width())
	assert.Equal(t, 39, m.Screen().Height())
	assert.Equal(t, 1, g.State().Frames)
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, runner.Classic)
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
	assert.False(t, m.frames.Pending(), "quitting drops the pending frame")
}

func TestAltScreenToggleQueuesCommand(t *testing.T) {
	a := &altScreen{fd: -1}
	assert.ErrorIs(t, a.ToggleFullscreen(), errNotTerminal)
	assert.Nil(t, a.take())
}
