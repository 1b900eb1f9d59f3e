package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/platform/gui"
)

var flagFullscreen bool

var windowCmd = &cobra.Command{
	Use:   "window <variant>",
	Short: "Play in a window",
	Long: `Start the given variant in a desktop window. Touch screens are
supported: swipe up to jump, down or right to restart after a game over.

Controls:
  Up/W/Space   - Jump
  Left/A       - Run back
  Right/D      - Run forward
  Enter        - Restart after a game over
  F            - Toggle fullscreen

Examples:
  runner window collide
  runner window classic --fullscreen --debug`,
	Args: cobra.ExactArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Start in fullscreen mode")
}

func runWindow(cmd *cobra.Command, args []string) error {
	l, err := prepare(args[0], os.Stderr, 0, 0)
	if err != nil {
		return err
	}
	defer l.Close()

	l.runtime.ScreenW = int(l.cfg.World.Width)
	l.runtime.ScreenH = int(l.cfg.World.Height)

	return gui.Run(l.game, l.runtime, gui.Options{
		Config:     l.cfg,
		Fullscreen: flagFullscreen,
		Logger:     l.logger,
	})
}
