// match3 is a terminal match-three puzzle with several rule variants.
//
// Usage:
//
//	match3 list              - List available variants
//	match3 play <variant>    - Play a variant
//	match3 menu              - Pick variants interactively
//	match3 serve             - Start SSH server for remote play
//	match3 scores <variant>  - Show high scores and stats for a variant
//	match3 config            - Print the default variant configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--db <path>           - Set database path (default: ~/.match3/scores.db)
//	--config <path>       - Load variants from a custom YAML file
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "match3"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Match 3 - swap tiles, line up three, clear the board",
	Long: `Match 3 is a terminal puzzle: swap two neighboring tiles to line up
three or more of a kind. Matches clear, tiles fall, new tiles drop in and
chains score extra.

Available commands:
  list     - Show all variants
  play     - Play a specific variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View high scores and stats
  config   - Print the default configuration

Examples:
  match3 list
  match3 play hearts
  match3 play classic --difficulty hard
  match3 menu
  match3 serve --ssh :2222
  match3 scores endless`,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.match3/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom variant config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setup applies the config flags and registers variants found in the
// config file. A broken config file falls back to the built-in variants.
func setup(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	match3.SetConfigPath(flagConfig)
	match3.SetDifficultyPreset(flagDifficulty)

	if err := match3.RegisterConfigured(); err != nil {
		logger.Warn("using built-in variants", "error", err)
	}
	return nil
}
