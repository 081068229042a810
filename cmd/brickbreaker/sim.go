package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rosasor/brick-breaker/internal/breakout"
	"github.com/rosasor/brick-breaker/internal/core"
	"github.com/rosasor/brick-breaker/internal/storage"
)

var (
	flagSimTicks    int
	flagSimCampaign bool
	flagSimRender   bool
	flagSimSave     bool
)

var simCmd = &cobra.Command{
	Use:   "sim <level>",
	Short: "Run a headless game driven by the autopilot",
	Long: `Run a game without a terminal UI. The autopilot launches the ball and
keeps the paddle under the lowest falling ball. Useful for checking that a
config is playable and that a seed replays identically.

Examples:
  brickbreaker sim classic
  brickbreaker sim fortress --ticks 50000 --seed 42
  brickbreaker sim classic --campaign --log-level debug
  brickbreaker sim diamond --render`,
	Args: cobra.ExactArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 36000, "Maximum number of ticks to simulate")
	simCmd.Flags().BoolVar(&flagSimCampaign, "campaign", false, "Play every level in order, starting at <level>")
	simCmd.Flags().BoolVar(&flagSimRender, "render", false, "Print the final frame")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the result in the scores database")
}

func runSim(_ *cobra.Command, args []string) {
	level, err := breakout.ParseLevel(args[0])
	if err != nil {
		exitf("%v", err)
	}
	if flagSimTicks <= 0 {
		exitf("--ticks must be positive")
	}

	cfg, err := loadConfig()
	if err != nil {
		exitf("%v", err)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		exitf("%v", err)
	}
	defer closeLog()

	mode := breakout.ModeSingle
	if flagSimCampaign {
		mode = breakout.ModeCampaign
	}
	session, err := breakout.NewSession(cfg, mode, level, logger)
	if err != nil {
		exitf("%v", err)
	}

	runtime := core.DefaultConfig()
	runtime.TickRate = flagFPS
	runtime.Seed = flagSeed
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	if err := session.Reset(runtime); err != nil {
		exitf("%v", err)
	}

	start := time.Now()
	ticks := 0
	state := session.State()
	for ; ticks < flagSimTicks && !state.GameOver; ticks++ {
		state = session.Step(breakout.Autopilot(session.Round()).Frame()).State
	}
	snap := session.Round().Snapshot()

	logger.Debug("simulation finished", "ticks", ticks, "elapsed", time.Since(start))

	outcome := "unfinished"
	switch {
	case state.Won:
		outcome = string(storage.OutcomeWon)
	case state.GameOver:
		outcome = string(storage.OutcomeLost)
	}

	fmt.Printf("Board:   %s\n", session.ID())
	fmt.Printf("Seed:    %d\n", runtime.Seed)
	fmt.Printf("Level:   %s\n", snap.Level)
	fmt.Printf("Outcome: %s\n", outcome)
	fmt.Printf("Ticks:   %d\n", ticks)
	fmt.Printf("Score:   %d\n", state.Score)
	fmt.Printf("Lives:   %d\n", state.Lives)
	fmt.Printf("Bricks:  %d left\n", len(snap.Bricks))
	fmt.Printf("Hash:    %016x\n", snap.Hash())

	if flagSimRender {
		screen := core.NewScreen(runtime.ScreenW, runtime.ScreenH)
		session.Render(screen)
		fmt.Println()
		for y := range screen.Height() {
			fmt.Println(strings.TrimRight(screen.Row(y), " "))
		}
	}

	if flagSimSave && state.GameOver && state.Score > 0 {
		saveSimResult(session.ID(), state)
	}
}

func saveSimResult(board string, state core.GameState) {
	store := openStore()
	if store == nil {
		return
	}
	defer store.Close()

	outcome := storage.OutcomeLost
	if state.Won {
		outcome = storage.OutcomeWon
	}
	if _, err := store.SaveScore(board, state.Score, outcome); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save score: %v\n", err)
	}
}
