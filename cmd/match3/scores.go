package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	flagPlayer string
	flagLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores for a variant",
	Long: `Display the top high scores and overall stats for the specified variant.
Without a variant, prints a summary of every variant played so far.

Examples:
  match3 scores
  match3 scores hearts
  match3 scores endless --limit 20
  match3 scores classic --player alice`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show results of this player")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results to show")
}

func runScores(_ *cobra.Command, args []string) {
	if len(args) == 0 {
		runSummary()
		return
	}
	gameID := args[0]

	info, ok := registry.Lookup(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'match3 list' to see available variants.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var scores []storage.ScoreEntry
	if flagPlayer != "" {
		scores, err = store.PlayerScores(gameID, flagPlayer, flagLimit)
	} else {
		scores, err = store.TopScores(gameID, flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'match3 play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %-5s  %s\n", "Rank", "Player", "Score", "Result", "Chain", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %-5s  %s\n", "----", "------", "-----", "------", "-----", "----")

	for i, entry := range scores {
		result := "-"
		if entry.Won {
			result = "win"
		}
		fmt.Printf("  %-4d  %-12s  %-8d  %-6s  x%-4d  %s\n",
			i+1, entry.Player, entry.Score, result, entry.BestChain, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		logger.Warn("could not load stats", "game", gameID, "error", err)
		return
	}

	fmt.Println()
	fmt.Printf("Best: %d  Games: %d  Wins: %d (%.0f%%)  Average: %.0f  Longest chain: x%d\n",
		stats.HighScore, stats.GamesCount, stats.Wins, stats.WinRate()*100, stats.AvgScore, stats.BestChain)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}

// runSummary prints one stats line per registered variant.
func runSummary() {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	all, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		return
	}

	fmt.Printf("  %-12s  %-6s  %-6s  %-8s  %s\n", "Variant", "Games", "Wins", "Best", "Last played")
	fmt.Printf("  %-12s  %-6s  %-6s  %-8s  %s\n", "-------", "-----", "----", "----", "-----------")

	for _, info := range registry.List() {
		st, ok := all[info.ID]
		if !ok || st.GamesCount == 0 {
			fmt.Printf("  %-12s  %-6d  %-6d  %-8s  %s\n", info.ID, 0, 0, "-", "never")
			continue
		}
		fmt.Printf("  %-12s  %-6d  %-6d  %-8d  %s\n",
			info.ID, st.GamesCount, st.Wins, st.HighScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
}
