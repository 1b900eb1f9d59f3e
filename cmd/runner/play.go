package main

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play in the terminal",
	Long: `Start the given variant in the terminal.

Controls:
  Up/W/Space   - Jump
  Left/A       - Run back
  Right/D      - Run forward
  Mouse drag   - Swipe (down or right restarts after a game over)
  Enter        - Restart after a game over
  F            - Toggle the alternate screen
  Q/Ctrl+C     - Quit

Logs are discarded unless --log-file is given, so they never draw over
the game.

Examples:
  runner play classic
  runner play collide --seed 42
  runner play collide --log-file runner.log --log-level debug`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	l, err := prepare(args[0], io.Discard, width, height)
	if err != nil {
		return err
	}
	defer l.Close()

	return tui.Run(l.game, l.runtime, tui.Options{
		WorldW:  l.cfg.World.Width,
		WorldH:  l.cfg.World.Height,
		KeyHold: time.Duration(l.cfg.Input.KeyHoldMs * float64(time.Millisecond)),
		Logger:  l.logger,
	})
}
