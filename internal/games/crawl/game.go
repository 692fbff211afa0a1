// Package crawl implements the entity crawl: a walled room holding a fixed
// roster of enemies and pickups, with one player entity moved by directional
// input.
package crawl

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tilegrid/internal/config"
	"github.com/vovakirdan/tilegrid/internal/core"
	"github.com/vovakirdan/tilegrid/internal/entity"
	"github.com/vovakirdan/tilegrid/internal/grid"
	"github.com/vovakirdan/tilegrid/internal/registry"
)

const (
	gameID       = "crawl"
	defaultTitle = "Tile Crawl"
	hudHeight    = 2
)

// configPath stores the custom config path set via CLI
var configPath string

// sizePreset stores the grid size preset set via CLI
var sizePreset config.SizePreset

// SetConfigPath sets the custom config path for loading. A file that cannot
// be loaded or validated makes Reset fall back to the built-in defaults; the
// failure is logged at debug level and kept on the game as ConfigError.
func SetConfigPath(path string) {
	configPath = path
}

// SetSizePreset sets the grid size preset. Empty keeps the configured size.
func SetSizePreset(preset string) {
	sizePreset = config.SizePreset(preset)
}

// Game implements the entity crawl.
type Game struct {
	cfg       config.CrawlConfig
	hasConfig bool
	configErr error

	rng   *rand.Rand
	tick  uint64
	moves int

	grid   *grid.Grid
	roster *entity.Roster

	screenW  int
	screenH  int
	tickRate int
	paused   bool
}

// New creates a crawl that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a crawl with a fixed configuration.
func NewWithConfig(cfg config.CrawlConfig) *Game {
	return &Game{cfg: cfg, hasConfig: true}
}

func init() {
	registry.Register(gameID, "Walk the player around a room of enemies and pickups", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return gameID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.cfg.Title != "" {
		return g.cfg.Title
	}
	return defaultTitle
}

// PixelSize returns the window pixels per tile side.
func (g *Game) PixelSize() int {
	return g.cfg.Tile.PixelSize
}

// ConfigError reports why the last Reset fell back to default settings,
// or nil when the configured settings were used.
func (g *Game) ConfigError() error { return g.configErr }

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if !g.hasConfig {
		g.configErr = nil
		cfg, err := config.LoadCrawl(configPath)
		if err != nil {
			log.Debug("config fallback to defaults", "game", "crawl", "path", configPath, "error", err)
			g.configErr = err
			cfg = config.DefaultCrawlConfig()
		}
		if sizePreset != "" {
			if err := config.ApplySizePreset(&cfg.Grid, sizePreset); err != nil {
				log.Debug("size preset fallback to defaults", "game", "crawl", "preset", sizePreset, "error", err)
				g.configErr = err
				cfg.Grid = config.DefaultCrawlConfig().Grid
			}
		}
		g.cfg = cfg
	}

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0
	g.moves = 0
	g.paused = false
	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH
	g.tickRate = runtime.TickRate

	var floorRNG *rand.Rand
	if g.cfg.Grid.RandomizeFloor {
		floorRNG = g.rng
	}
	g.grid = grid.Generate(g.cfg.Grid.Width, g.cfg.Grid.Height, g.cfg.Palette.GridPalette(), floorRNG)
	g.roster = g.buildRoster()
}

// buildRoster creates the entities from config. Positions are clamped into
// the floor interior so a smaller grid never strands an entity in a wall.
func (g *Game) buildRoster() *entity.Roster {
	entities := make([]entity.Entity, 0, len(g.cfg.Entities))
	for _, ec := range g.cfg.Entities {
		kind, err := entity.ParseKind(ec.Kind)
		if err != nil {
			kind = entity.KindEnemy
		}
		entities = append(entities, entity.Entity{
			Name:  ec.Name,
			Kind:  kind,
			Pos:   g.grid.ClampInterior(grid.C(ec.X, ec.Y)),
			Glyph: config.Glyph(ec.Glyph, '?'),
			Color: ec.Color,
			HP:    ec.HP,
			MaxHP: ec.MaxHP,
		})
	}

	r, err := entity.NewRoster(entities, g.cfg.PlayerIndex)
	if err != nil {
		// Unvalidated config without a usable player: drop in a lone hero.
		hero := entity.Entity{Name: "hero", Kind: entity.KindPlayer, Pos: grid.C(1, 1), Glyph: '@',
			Color: core.ColorBrightWhite, HP: 1, MaxHP: 1}
		r, _ = entity.NewRoster(append(entities, hero), len(entities))
	}
	return r
}

// Step applies one frame of input. Order: pause toggle, restart, then (when
// not paused) moves Left, Right, Up, Down.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	// Handle restart
	if in.Has(core.ActionRestart) {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	moved := false
	for _, d := range grid.Dirs {
		if in.Has(d.Action()) && g.roster.MovePlayer(d, g.grid) {
			g.moves++
			moved = true
		}
	}

	return core.StepResult{State: g.State(), Moved: moved}
}

// Frame returns the render boundary for the current state.
func (g *Game) Frame() core.Frame {
	return core.Frame{
		Width:    g.grid.W,
		Height:   g.grid.H,
		Tiles:    g.grid.FrameTiles(),
		Entities: g.roster.FrameEntities(),
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if !g.Frame().DrawCentered(dst, hudHeight, g.cfg.Tile.CellWidth) {
		dst.DrawOverlay("Window too small", "Resize to continue")
		return
	}

	if g.paused {
		dst.DrawOverlay("Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	p := g.roster.Player()
	hud := fmt.Sprintf(" %s  %s %s  HP: %d/%d  Moves: %d",
		g.Title(), p.Name, p.Pos, p.HP, p.MaxHP, g.moves)

	// Name what the player is standing on
	for _, e := range g.roster.UnderPlayer() {
		hud += "  Here: " + e.Name
	}

	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.moves,
		Paused: g.paused,
	}
}
