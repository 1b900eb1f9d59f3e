package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	// Flags are package globals; reset the ones the tests touch.
	flagSeed, flagDebug, flagConfig = 0, false, ""
	flagLogLevel, flagLogFile = "error", ""
	flagFrames, flagDelta = 3600, 16
	flagAutopilot, flagRealtime, flagDump = false, false, false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListShowsVariants(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "classic")
	assert.Contains(t, out, "Runner: Collide")
	assert.Less(t, strings.Index(out, "classic"), strings.Index(out, "collide"))
}

func TestConfigPrintsParsableDefaults(t *testing.T) {
	out, err := execute(t, "config")
	require.NoError(t, err)

	cfg, err := config.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultRunnerConfig(), cfg)
}

func TestSimUnknownVariant(t *testing.T) {
	_, err := execute(t, "sim", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown variant "nope"`)
}

func TestSimRejectsBadConfig(t *testing.T) {
	_, err := execute(t, "sim", "collide", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestSimCollideEndsWithoutPilot(t *testing.T) {
	out, err := execute(t, "sim", "collide", "--seed", "3", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "Runner: Collide: score 0")
	assert.Contains(t, out, "(game over)")
}

func TestSimAutopilotSurvives(t *testing.T) {
	out, err := execute(t, "sim", "collide", "--seed", "3", "--autopilot", "--frames", "1200", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "after 1200 frames")
	assert.NotContains(t, out, "game over")
}

func TestSimDumpPrintsFrame(t *testing.T) {
	out, err := execute(t, "sim", "classic", "--frames", "10", "--dump", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "Runner: score 0 after 10 frames")
	assert.Contains(t, out, "Score: 0")
	assert.Contains(t, out, "═")
}
