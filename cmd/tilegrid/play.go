package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilegrid/internal/config"
	"github.com/vovakirdan/tilegrid/internal/platform/gfx"
	"github.com/vovakirdan/tilegrid/internal/platform/tui"
	"github.com/vovakirdan/tilegrid/internal/registry"
)

var (
	flagConfig string
	flagSize   string
	flagWindow bool
	flagWatch  string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/hjkl  - Move the cursor or player
  Enter        - Select the tile under the cursor (arena)
  Space        - Drop the selection (arena)
  P            - Pause
  R            - Restart with a new grid
  Q/Ctrl+C     - Quit

Size presets:
  tiny   - 9x9
  normal - 20x15
  large  - 40x20

Examples:
  tilegrid play arena
  tilegrid play arena --size tiny
  tilegrid play crawl --window
  tilegrid play crawl --config ./my-crawl.yaml
  tilegrid play arena --watch :8080`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagSize, "size", "", "Grid size preset: "+config.PresetNames())
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a window instead of the terminal")
	playCmd.Flags().StringVar(&flagWatch, "watch", "", "Serve a WebSocket spectator feed on this address (e.g. :8080)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tilegrid list' to see available games.")
		os.Exit(1)
	}

	if err := configureGame(gameID, flagConfig, flagSize); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	hub, stopFeed := startSpectatorFeed(flagWatch)

	var runErr error
	if flagWindow {
		opts := gfx.Options{Config: cfg, Store: store, Logger: logger}
		if hub != nil {
			opts.Publisher = hub
		}
		runErr = gfx.Run(game, opts)
	} else {
		var opts []tui.GameOption
		if hub != nil {
			opts = append(opts, tui.WithPublisher(hub))
		}
		runErr = tui.Run(game, store, cfg, opts...)
	}

	stopFeed()
	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
