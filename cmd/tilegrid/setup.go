package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/tilegrid/internal/config"
	"github.com/vovakirdan/tilegrid/internal/core"
	"github.com/vovakirdan/tilegrid/internal/games/arena"
	"github.com/vovakirdan/tilegrid/internal/games/crawl"
	"github.com/vovakirdan/tilegrid/internal/platform/web"
	"github.com/vovakirdan/tilegrid/internal/storage"
)

// runtimeConfig builds the runtime config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
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

// configureGame passes --config and --size to a game before it is created.
// An explicit config file or preset that cannot be used is an error.
func configureGame(gameID, configPath, size string) error {
	if size != "" {
		if _, _, err := config.SizePreset(size).Dimensions(); err != nil {
			return err
		}
	}

	switch gameID {
	case "arena":
		if configPath != "" {
			if _, err := config.LoadArena(configPath); err != nil {
				return err
			}
		}
		arena.SetConfigPath(configPath)
		arena.SetSizePreset(size)
	case "crawl":
		if configPath != "" {
			if _, err := config.LoadCrawl(configPath); err != nil {
				return err
			}
		}
		crawl.SetConfigPath(configPath)
		crawl.SetSizePreset(size)
	default:
		if configPath != "" {
			return fmt.Errorf("game %q does not take a config file", gameID)
		}
	}
	return nil
}

// openStore opens the scores database. Failure is a warning: play continues
// without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// startSpectatorFeed serves frames on addr until the returned stop func is
// called. A nil hub is returned when addr is empty.
func startSpectatorFeed(addr string) (*web.Hub, func()) {
	if addr == "" {
		return nil, func() {}
	}

	hub := web.NewHub(logger.WithPrefix("tilegrid-web"))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := hub.ListenAndServe(ctx, addr); err != nil {
			logger.Error("spectator feed stopped", "address", addr, "error", err)
		}
	}()

	return hub, func() {
		cancel()
		<-done
	}
}
