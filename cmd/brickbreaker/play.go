package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rosasor/brick-breaker/internal/breakout"
	"github.com/rosasor/brick-breaker/internal/config"
	"github.com/rosasor/brick-breaker/internal/core"
	"github.com/rosasor/brick-breaker/internal/platform/tui"
	"github.com/rosasor/brick-breaker/internal/storage"
)

var flagCampaign bool

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level or the campaign",
	Long: `Start playing. Without a level and without --campaign a menu lets you
pick the campaign, a single level or the high score table.

Controls:
  Left/Right, A/D  - Move paddle
  Space            - Launch ball
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Examples:
  brickbreaker play
  brickbreaker play diamond
  brickbreaker play --campaign
  brickbreaker play pyramid --campaign --difficulty easy
  brickbreaker play fortress --config ./my-breakout.toml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagCampaign, "campaign", false, "Play every level in order, starting at [level]")
}

func runPlay(_ *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitf("%v", err)
	}

	// Alt screen owns the terminal, so logs go to --log-file or nowhere
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		exitf("%v", err)
	}
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	runtime := runtimeConfig()

	if len(args) == 0 && !flagCampaign {
		runMenuLoop(cfg, store, runtime, logger)
		return
	}

	start := breakout.LevelClassic
	if len(args) == 1 {
		if start, err = breakout.ParseLevel(args[0]); err != nil {
			exitf("%v\nRun 'brickbreaker levels' to see available levels.", err)
		}
	}
	mode := breakout.ModeSingle
	if flagCampaign {
		mode = breakout.ModeCampaign
	}

	state, err := playSession(cfg, mode, start, store, runtime, logger)
	if err != nil {
		exitf("%v", err)
	}
	printFinal(state)
}

// runtimeConfig builds the runtime settings from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// runMenuLoop shows the menu, plays the chosen game and returns to the menu
// until the player quits.
func runMenuLoop(cfg config.BreakoutConfig, store *storage.Store, runtime core.RuntimeConfig, logger *log.Logger) {
	for {
		res, err := tui.RunMenu(runtime)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		runtime = res.Config

		switch {
		case res.Quit:
			return

		case res.WantsScoreboard:
			var reader tui.ScoreReader
			if store != nil {
				reader = store
			}
			goBack, err := tui.RunScoreboard(reader, runtime.ScreenW, runtime.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if !goBack {
				return
			}

		default:
			if _, err := playSession(cfg, res.Mode, res.Level, store, runtime, logger); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
		}
	}
}

// playSession runs one session in the TUI and returns its final state.
func playSession(cfg config.BreakoutConfig, mode breakout.Mode, start breakout.LevelName,
	store *storage.Store, runtime core.RuntimeConfig, logger *log.Logger,
) (core.GameState, error) {
	session, err := breakout.NewSession(cfg, mode, start, logger)
	if err != nil {
		return core.GameState{}, err
	}

	var saver tui.ScoreSaver
	if store != nil {
		saver = store
	}
	return tui.Run(session, saver, runtime, logger)
}

func printFinal(state core.GameState) {
	switch {
	case state.Won:
		fmt.Printf("You won! Final score: %d\n", state.Score)
	case state.GameOver:
		fmt.Printf("Game over. Final score: %d\n", state.Score)
	default:
		fmt.Printf("Score: %d\n", state.Score)
	}
}
