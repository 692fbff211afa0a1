package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilegrid/internal/config"
	"github.com/vovakirdan/tilegrid/internal/platform/tui"
	"github.com/vovakirdan/tilegrid/internal/registry"
)

var (
	flagMenuSize  string
	flagMenuWatch string
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Pause a game and press B or Esc to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab/S        - Scoreboard
  Q            - Quit

Examples:
  tilegrid menu
  tilegrid menu --size large
  tilegrid menu --fps 30 --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagMenuSize, "size", "", "Grid size preset for every game: "+config.PresetNames())
	menuCmd.Flags().StringVar(&flagMenuWatch, "watch", "", "Serve a WebSocket spectator feed on this address (e.g. :8080)")
}

func runMenu(_ *cobra.Command, _ []string) {
	for _, g := range registry.List() {
		if err := configureGame(g.ID, "", flagMenuSize); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	store := openStore()
	hub, stopFeed := startSpectatorFeed(flagMenuWatch)

	var opts []tui.GameOption
	if hub != nil {
		opts = append(opts, tui.WithPublisher(hub))
	}

	err := tui.RunSession(store, runtimeConfig(), opts...)

	stopFeed()
	if store != nil {
		store.Close()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
