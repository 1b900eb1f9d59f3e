package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-runner/internal/core"
)

func runPilot(t *testing.T, pilot *Autopilot, frames int) (*Game, int) {
	t.Helper()
	g, h := startGame(t, Collide, nil)

	n := 0
	for i := range frames {
		if pilot != nil {
			pilot.Steer(g)
		}
		h.draw.Reset()
		if !h.queue.Pump(float64(i) * 16) {
			break
		}
		n++
	}
	return g, n
}

func TestAutopilotClearsEnemies(t *testing.T) {
	pilot := NewAutopilot(0)
	assert.Equal(t, float64(DefaultLead), pilot.Lead)

	g, frames := runPilot(t, pilot, 6000)
	st := g.State()
	require.False(t, st.GameOver, "collided after %d frames with score %d", frames, st.Score)
	assert.Equal(t, 6000, frames)
	assert.Greater(t, st.Score, 20)
	assert.GreaterOrEqual(t, pilot.Jumps, st.Score)
}

func TestWithoutAutopilotEnemiesHit(t *testing.T) {
	g, frames := runPilot(t, nil, 6000)
	assert.True(t, g.State().GameOver)
	assert.Less(t, frames, 6000)
	assert.Zero(t, g.State().Score)
}

func TestAutopilotReleasesUpInAir(t *testing.T) {
	g, h := startGame(t, Collide, nil)
	h.queue.Pump(0)

	s := g.Session()
	e := NewEnemy(s.Config().Enemy, s.Config().World)
	e.X = s.Player.Bounds().Right() + 10
	s.Enemies = append(s.Enemies, e)

	pilot := NewAutopilot(40)
	pilot.Steer(g)
	assert.True(t, g.Input().IsActive(core.IntentUp))

	h.queue.Pump(16)
	require.False(t, s.Player.OnGround())
	pilot.Steer(g)
	assert.False(t, g.Input().IsActive(core.IntentUp))
	assert.Equal(t, 1, pilot.Jumps)
}
