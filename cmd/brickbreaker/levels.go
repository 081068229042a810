package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rosasor/brick-breaker/internal/breakout"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all levels",
	Long:  `Shows every level in campaign order with its brick count and maximum score.`,
	Run:   runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitf("%v", err)
	}

	fmt.Println("Levels:")
	fmt.Println()
	fmt.Printf("  %-9s  %-6s  %-6s  %s\n", "ID", "Bricks", "Points", "Description")
	fmt.Printf("  %-9s  %-6s  %-6s  %s\n", "--", "------", "------", "-----------")

	for _, l := range breakout.Levels() {
		bricks, err := breakout.Generate(l.Name, cfg)
		if err != nil {
			exitf("%v", err)
		}
		points := 0
		for _, b := range bricks {
			points += b.Type.Points()
		}
		fmt.Printf("  %-9s  %-6d  %-6d  %s\n", l.Name.Slug(), len(bricks), points, l.Description)
	}

	fmt.Println()
	fmt.Println("Run 'brickbreaker play <id>' to play a level.")
}
