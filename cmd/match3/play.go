package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant",
	Long: `Start playing the specified variant.

Controls:
  Arrows/WASD/hjkl - Move cursor
  Space/Enter      - Pick a tile, pick a neighbor to swap
  Mouse click      - Pick the tile under the pointer
  Esc              - Drop the selection
  X/?              - Show a possible swap
  P                - Pause
  R                - Restart (after game over)
  B                - Back to menu
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options (asked before the game unless --difficulty is set):
  easy   - 5 extra moves
  normal - Variant as configured
  hard   - 5 fewer moves and one more tile color
  fixed  - No progression, stays at config's initial level

Examples:
  match3 play hearts
  match3 play classic --difficulty hard
  match3 play endless --seed 42
  match3 play hearts --config ./my-match3.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'match3 list' to see available variants.")
		os.Exit(1)
	}

	cfg := terminalConfig()

	preset := flagDifficulty
	if preset == "" {
		info, _ := registry.Lookup(gameID)
		choice, err := tui.RunDifficultySelector(info.Title, config.DifficultyNormal, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if choice.Back || choice.Quit {
			return
		}
		preset = string(choice.Preset)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	_, runErr := tui.Run(game, store, cfg, tui.LocalPlayer(), preset)
	warnConfigFallback(game)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// warnConfigFallback reports when a game had to ignore a broken config file.
func warnConfigFallback(game registry.Game) {
	cg, ok := game.(interface{ ConfigError() error })
	if !ok {
		return
	}
	if err := cg.ConfigError(); err != nil {
		logger.Warn("config ignored, built-in settings used", "game", game.ID(), "error", err)
	}
}
