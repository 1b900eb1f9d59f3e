// runner is a side-scrolling runner for the terminal and the desktop.
//
// Usage:
//
//	runner list              - List available variants
//	runner play <variant>    - Play in the terminal
//	runner window <variant>  - Play in a window
//	runner sim <variant>     - Run headless and print a summary
//	runner config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible spawn timing
//	--config <path>       - Load gameplay constants from a YAML file
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Append logs to a file
//	--debug               - Draw hitboxes in every variant
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-runner/internal/games/runner"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
	flagDebug    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Runner - jump over enemies in your terminal or a window",
	Long: `Runner is a side-scrolling game: the player jumps over enemies
that scroll in from the right past a looping background. Every enemy that
leaves the screen scores a point.

Variants:
  classic  - Endless run, enemies pass through the player
  collide  - Touching an enemy ends the run; Enter restarts

Examples:
  runner list
  runner play collide
  runner window collide --fullscreen
  runner sim collide --autopilot --frames 3600
  runner config > runner.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Draw hitboxes and collision circles")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
