// tilegrid runs small tile-grid game prototypes in the terminal, in a
// window, or over SSH.
//
// Usage:
//
//	tilegrid list              - List available games
//	tilegrid play <game>       - Play a game
//	tilegrid menu              - Start menu to pick games interactively
//	tilegrid serve             - Start SSH server for remote play
//	tilegrid scores [game]     - Show session scores
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible grids
//	--db <path>           - Set database path (default: ~/.tilegrid/scores.db)
//	--log-level <level>   - Set log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tilegrid/internal/games/arena"
	_ "github.com/vovakirdan/tilegrid/internal/games/crawl"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tilegrid",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilegrid",
	Short: "Tile grid games for the terminal",
	Long: `tilegrid hosts small tile-grid games: a cursor arena with a
selectable tile, and a crawl where one player walks among enemies and
pickups.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View session scores

Examples:
  tilegrid list
  tilegrid play arena
  tilegrid play crawl --size large --window
  tilegrid menu
  tilegrid serve --ssh :2222
  tilegrid scores arena`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tilegrid/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
