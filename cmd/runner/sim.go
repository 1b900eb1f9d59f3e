package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
)

var (
	flagFrames    int
	flagDelta     float64
	flagRealtime  bool
	flagAutopilot bool
	flagLead      float64
	flagDump      bool
)

var simCmd = &cobra.Command{
	Use:   "sim <variant>",
	Short: "Run a variant headless and print a summary",
	Long: `Simulate frames without a screen. Frames are stamped --delta
milliseconds apart and run as fast as possible unless --realtime is set.
The run stops early once the game stops scheduling frames (a collision in
the collide variant).

Examples:
  runner sim collide --seed 7
  runner sim collide --autopilot --frames 36000
  runner sim classic --frames 600 --dump`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Maximum number of frames to simulate")
	simCmd.Flags().Float64Var(&flagDelta, "delta", 16, "Milliseconds between frame timestamps")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace frames at --delta in wall time")
	simCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Jump over enemies automatically")
	simCmd.Flags().Float64Var(&flagLead, "lead", runner.DefaultLead, "Autopilot jump distance in world pixels")
	simCmd.Flags().BoolVar(&flagDump, "dump", false, "Print the last frame as text")
}

func runSim(cmd *cobra.Command, args []string) error {
	if flagFrames <= 0 || flagDelta <= 0 {
		return fmt.Errorf("--frames and --delta must be positive")
	}

	l, err := prepare(args[0], os.Stderr, 0, 0)
	if err != nil {
		return err
	}
	defer l.Close()

	game, ok := l.game.(*runner.Game)
	if !ok {
		return fmt.Errorf("variant %q cannot be simulated", args[0])
	}

	var pilot *runner.Autopilot
	if flagAutopilot {
		pilot = runner.NewAutopilot(flagLead)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	var limiter *rate.Limiter
	if flagRealtime {
		limiter = rate.NewLimiter(rate.Every(time.Duration(flagDelta*float64(time.Millisecond))), 1)
	}

	queue := &core.FrameQueue{}
	draw := core.NewDrawList()
	game.Reset(l.runtime)
	game.Start(core.Host{Scheduler: queue, Surface: draw})

	started := time.Now()
	frames := 0
	for i := range flagFrames {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				l.logger.Warn("simulation interrupted", "frames", frames)
				break
			}
		}
		if pilot != nil {
			pilot.Steer(game)
		}
		// Stop before resetting so --dump keeps the final frame.
		if !queue.Pending() {
			break
		}
		draw.Reset()
		queue.Pump(float64(i) * flagDelta)
		frames++
	}

	st := game.State()
	kv := []any{
		"game", game.ID(),
		"frames", frames,
		"score", st.Score,
		"game_over", st.GameOver,
		"elapsed", time.Since(started).Round(time.Millisecond),
	}
	if pilot != nil {
		kv = append(kv, "jumps", pilot.Jumps)
	}
	l.logger.Info("simulation finished", kv...)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: score %d after %d frames", game.Title(), st.Score, frames)
	if st.GameOver {
		fmt.Fprint(out, " (game over)")
	}
	fmt.Fprintln(out)

	if flagDump {
		world := game.Config().World
		screen := core.NewScreen(80, 24)
		draw.Replay(tui.NewScreenSurface(screen, world.Width, world.Height))
		fmt.Fprintln(out, screen.String())
	}
	return nil
}
