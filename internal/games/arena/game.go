// Package arena implements the cursor arena: a walled grid with a cursor
// that roams the floor and a single selected tile that keeps the cursor
// next to it.
package arena

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tilegrid/internal/config"
	"github.com/vovakirdan/tilegrid/internal/core"
	"github.com/vovakirdan/tilegrid/internal/cursor"
	"github.com/vovakirdan/tilegrid/internal/grid"
	"github.com/vovakirdan/tilegrid/internal/registry"
)

const (
	gameID       = "arena"
	defaultTitle = "Tile Arena"
	hudHeight    = 2 // HUD line + separator

	cursorColor = core.ColorBrightWhite
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

// Game implements the cursor arena.
type Game struct {
	cfg       config.ArenaConfig
	hasConfig bool // cfg was supplied by the caller, skip loading
	configErr error

	rng   *rand.Rand
	tick  uint64
	moves int

	grid   *grid.Grid
	cursor *cursor.Cursor
	sel    cursor.Selection

	screenW  int
	screenH  int
	tickRate int
	paused   bool
}

// New creates an arena that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates an arena with a fixed configuration.
func NewWithConfig(cfg config.ArenaConfig) *Game {
	return &Game{cfg: cfg, hasConfig: true}
}

func init() {
	registry.Register(gameID, "Move a cursor over the floor and select tiles", func() registry.Game {
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

// Reset initializes or restarts the game with a fresh grid.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if !g.hasConfig {
		g.configErr = nil
		cfg, err := config.LoadArena(configPath)
		if err != nil {
			log.Debug("config fallback to defaults", "game", "arena", "path", configPath, "error", err)
			g.configErr = err
			cfg = config.DefaultArenaConfig()
		}
		if sizePreset != "" {
			if err := config.ApplySizePreset(&cfg.Grid, sizePreset); err != nil {
				log.Debug("size preset fallback to defaults", "game", "arena", "preset", sizePreset, "error", err)
				g.configErr = err
				cfg.Grid = config.DefaultArenaConfig().Grid
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

	start := grid.C(g.cfg.Cursor.StartX, g.cfg.Cursor.StartY)
	g.cursor = cursor.New(g.grid.W, g.grid.H, start, config.Glyph(g.cfg.Cursor.Glyph, cursor.DefaultGlyph))
	g.sel = cursor.Selection{Glyph: config.Glyph(g.cfg.Selection.Glyph, cursor.DefaultSelectionGlyph)}
}

// Step applies one frame of input. Order: pause toggle, restart, then (when
// not paused) moves Left, Right, Up, Down, then confirm, then cancel.
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
		if in.Has(d.Action()) && g.cursor.Move(d, g.sel) {
			g.moves++
			moved = true
		}
	}

	if in.Has(core.ActionConfirm) {
		g.sel.Confirm(g.cursor.Pos)
	}
	if in.Has(core.ActionCancel) {
		g.sel.Cancel()
	}

	return core.StepResult{State: g.State(), Moved: moved}
}

// Frame returns the render boundary for the current state.
func (g *Game) Frame() core.Frame {
	return core.Frame{
		Width:  g.grid.W,
		Height: g.grid.H,
		Tiles:  g.grid.FrameTiles(),
		Cursor: &core.FrameCursor{
			X:     g.cursor.Pos.X,
			Y:     g.cursor.Pos.Y,
			Glyph: g.cursor.Glyph,
			Color: cursorColor,
		},
		Selection: &core.FrameSelection{
			X:      g.sel.Pos.X,
			Y:      g.sel.Pos.Y,
			Glyph:  g.sel.Glyph,
			Color:  g.cfg.Selection.Color,
			Active: g.sel.Active,
		},
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
	selected := "none"
	if g.sel.Active {
		selected = g.sel.Pos.String()
	}
	hud := fmt.Sprintf(" %s  Cursor: %s  Selected: %s  Moves: %d",
		g.Title(), g.cursor.Pos, selected, g.moves)
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
