package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// launch is everything a game command needs after flag parsing.
type launch struct {
	game    registry.Game
	cfg     config.RunnerConfig
	runtime core.RuntimeConfig
	logger  *log.Logger
	closer  io.Closer // log file, if any
}

func (l *launch) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// newLogger builds the command logger. Logs go to --log-file when set and
// to fallback otherwise.
func newLogger(fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, closer := fallback, io.Closer(nil)
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
		Level:           level,
	})
	return logger, closer, nil
}

// prepare validates the variant and config, wires the logger into the game
// package and creates the game.
func prepare(id string, logOut io.Writer, screenW, screenH int) (*launch, error) {
	if !registry.Exists(id) {
		return nil, fmt.Errorf("unknown variant %q (run 'runner list' to see variants)", id)
	}

	// Fail on a broken config file before the screen is taken over.
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return nil, err
	}

	logger, closer, err := newLogger(logOut)
	if err != nil {
		return nil, err
	}

	runner.SetConfigPath(flagConfig)
	runner.SetLogger(logger)

	game, err := registry.Create(id)
	if err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, err
	}

	rt := core.DefaultConfig()
	if screenW > 0 && screenH > 0 {
		rt.ScreenW, rt.ScreenH = screenW, screenH
	}
	if flagFPS > 0 {
		rt.TickRate = flagFPS
	}
	rt.Seed = flagSeed
	rt.Debug = flagDebug

	return &launch{
		game:    game,
		cfg:     cfg,
		runtime: rt,
		logger:  logger,
		closer:  closer,
	}, nil
}
