package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilegrid/internal/registry"
	"github.com/vovakirdan/tilegrid/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show session scores",
	Long: `Display the best sessions for a game, ranked by successful moves.
Without a game, shows a summary of every game that has been played.

Examples:
  tilegrid scores
  tilegrid scores arena
  tilegrid scores crawl --limit 3
  tilegrid scores crawl --limit 0
  tilegrid scores arena --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of sessions to show (0 = all)")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded sessions of the game")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagScoresClear {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a game")
			os.Exit(1)
		}
		if err := printSummary(store); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			os.Exit(1)
		}
		return
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tilegrid list' to see available games.")
		os.Exit(1)
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all %s sessions.\n", gameID)
		return
	}

	if err := printGameScores(store, gameID); err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func printGameScores(store *storage.Store, gameID string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	var scores []storage.ScoreEntry
	if flagScoresLimit <= 0 {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Best Sessions - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tilegrid play %s' to record the first one!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Moves", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Sessions: %d  Best: %d  Average: %.1f  Total moves: %d\n",
		stats.GamesCount, stats.HighScore, stats.AvgScore, stats.TotalScore)
	return nil
}

func printSummary(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	if len(all) == 0 {
		fmt.Println("No sessions recorded yet.")
		return nil
	}

	fmt.Printf("  %-8s  %-8s  %-6s  %-8s  %s\n", "Game", "Sessions", "Best", "Average", "Last played")
	fmt.Printf("  %-8s  %-8s  %-6s  %-8s  %s\n", "----", "--------", "----", "-------", "-----------")

	// Registry order keeps the output stable
	for _, g := range registry.List() {
		s, ok := all[g.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-8s  %-8d  %-6d  %-8.1f  %s\n",
			g.ID, s.GamesCount, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
