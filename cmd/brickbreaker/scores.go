package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rosasor/brick-breaker/internal/breakout"
	"github.com/rosasor/brick-breaker/internal/platform/tui"
	"github.com/rosasor/brick-breaker/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [board]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores of a board: a level id or "campaign".
Without a board, prints a summary of every board played.

Examples:
  brickbreaker scores
  brickbreaker scores campaign
  brickbreaker scores diamond
  brickbreaker scores pyramid --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete every score of the board")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitf("opening scores database: %v", err)
	}
	defer store.Close()

	if len(args) == 0 {
		printBoards(store)
		return
	}

	board, err := parseBoard(args[0])
	if err != nil {
		store.Close()
		exitf("%v\nRun 'brickbreaker levels' to see available levels.", err)
	}

	if flagClearScores {
		if err := store.ClearScores(board); err != nil {
			store.Close()
			exitf("clearing scores: %v", err)
		}
		fmt.Printf("Cleared scores for %s.\n", board)
		return
	}

	scores, err := store.TopScores(board, 10)
	if err != nil {
		store.Close()
		exitf("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", board)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %s\n", "Rank", "Score", "Result", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %s\n", "----", "-----", "------", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-8d  %-6s  %s\n", i+1, entry.Score, entry.Outcome, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
}

// parseBoard accepts "campaign" or any level name.
func parseBoard(s string) (string, error) {
	if strings.EqualFold(strings.TrimSpace(s), tui.CampaignBoard) {
		return tui.CampaignBoard, nil
	}
	level, err := breakout.ParseLevel(s)
	if err != nil {
		return "", err
	}
	return level.Slug(), nil
}

func printBoards(store *storage.Store) {
	boards, err := store.Boards()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	if len(boards) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Run 'brickbreaker play' to set the first high score!")
		return
	}

	fmt.Printf("  %-9s  %-5s  %-4s  %-6s  %-7s  %s\n", "Board", "Games", "Wins", "Best", "Average", "Last played")
	fmt.Printf("  %-9s  %-5s  %-4s  %-6s  %-7s  %s\n", "-----", "-----", "----", "----", "-------", "-----------")
	for _, b := range boards {
		fmt.Printf("  %-9s  %-5d  %-4d  %-6d  %-7.1f  %s\n",
			b.Board, b.Games, b.Wins, b.HighScore, b.AvgScore, b.LastPlayed.Format("2006-01-02 15:04"))
	}
}
