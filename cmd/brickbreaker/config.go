package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rosasor/brick-breaker/internal/config"
)

var (
	flagConfigFormat  string
	flagConfigDefault bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would use after applying --config and
--difficulty. Save the output under ~/.brickbreaker/configs/ to customise it.

Examples:
  brickbreaker config
  brickbreaker config --difficulty hard --format toml
  brickbreaker config --default > ~/.brickbreaker/configs/breakout.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigFormat, "format", "yaml", "Output format: yaml or toml")
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the built-in default file unchanged")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigDefault {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		exitf("%v", err)
	}
	data, err := config.Encode(cfg, flagConfigFormat)
	if err != nil {
		exitf("%v", err)
	}
	os.Stdout.Write(data)
}
