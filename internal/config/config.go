// Package config provides YAML-based game configuration loading and
// grid size presets for the tile games.
package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tilegrid/internal/core"
	"github.com/vovakirdan/tilegrid/internal/grid"
)

// ArenaConfig contains all configuration for the cursor arena.
type ArenaConfig struct {
	Title     string          `yaml:"title"`
	Grid      GridConfig      `yaml:"grid"`
	Tile      TileConfig      `yaml:"tile"`
	Cursor    CursorConfig    `yaml:"cursor"`
	Selection SelectionConfig `yaml:"selection"`
	Palette   PaletteConfig   `yaml:"palette"`
}

// CrawlConfig contains all configuration for the entity crawl.
type CrawlConfig struct {
	Title       string         `yaml:"title"`
	Grid        GridConfig     `yaml:"grid"`
	Tile        TileConfig     `yaml:"tile"`
	Palette     PaletteConfig  `yaml:"palette"`
	Entities    []EntityConfig `yaml:"entities"`
	PlayerIndex int            `yaml:"player_index"`
}

// GridConfig defines the board dimensions.
type GridConfig struct {
	Width          int  `yaml:"width"`
	Height         int  `yaml:"height"`
	RandomizeFloor bool `yaml:"randomize_floor"` // Pick floor colors from the palette at random
}

// TileConfig defines how big one tile is drawn by each host.
type TileConfig struct {
	CellWidth int `yaml:"cell_width"` // Terminal columns per tile
	PixelSize int `yaml:"pixel_size"` // Window pixels per tile side
}

// CursorConfig defines the cursor start position and glyph.
type CursorConfig struct {
	StartX int    `yaml:"start_x"`
	StartY int    `yaml:"start_y"`
	Glyph  string `yaml:"glyph"`
}

// SelectionConfig defines the selected tile marker.
type SelectionConfig struct {
	Glyph string     `yaml:"glyph"`
	Color core.Color `yaml:"color"`
}

// PaletteConfig defines the tile colors.
type PaletteConfig struct {
	Wall  core.Color   `yaml:"wall"`
	Floor []core.Color `yaml:"floor"`
}

// EntityConfig defines one actor of the crawl roster.
type EntityConfig struct {
	Name  string     `yaml:"name"`
	Kind  string     `yaml:"kind"` // "player", "enemy" or "pickup"
	X     int        `yaml:"x"`
	Y     int        `yaml:"y"`
	Glyph string     `yaml:"glyph"`
	Color core.Color `yaml:"color"`
	HP    int        `yaml:"hp"`
	MaxHP int        `yaml:"max_hp"`
}

// GridPalette converts the palette into the generator's palette.
func (p PaletteConfig) GridPalette() grid.Palette {
	if len(p.Floor) == 0 {
		return grid.Palette{Wall: p.Wall, Floor: grid.DefaultPalette().Floor}
	}
	return grid.Palette{Wall: p.Wall, Floor: p.Floor}
}

// Glyph returns the first rune of s, or def when s is empty.
func Glyph(s string, def rune) rune {
	if s == "" {
		return def
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// Validate checks the arena configuration.
func (c ArenaConfig) Validate() error {
	if err := c.Grid.validate(); err != nil {
		return err
	}
	if err := c.Tile.validate(); err != nil {
		return err
	}
	if err := validateGlyph("cursor", c.Cursor.Glyph); err != nil {
		return err
	}
	return validateGlyph("selection", c.Selection.Glyph)
}

// Validate checks the crawl configuration.
func (c CrawlConfig) Validate() error {
	if err := c.Grid.validate(); err != nil {
		return err
	}
	if err := c.Tile.validate(); err != nil {
		return err
	}
	if len(c.Entities) == 0 {
		return fmt.Errorf("config: crawl needs at least one entity")
	}
	if c.PlayerIndex < 0 || c.PlayerIndex >= len(c.Entities) {
		return fmt.Errorf("config: player_index %d out of range [0,%d)", c.PlayerIndex, len(c.Entities))
	}
	names := make(map[string]bool, len(c.Entities))
	cells := make(map[[2]int]string, len(c.Entities))
	players := 0
	for i, e := range c.Entities {
		if e.Name == "" {
			return fmt.Errorf("config: entity %d has no name", i)
		}
		if names[e.Name] {
			return fmt.Errorf("config: duplicate entity name %q", e.Name)
		}
		names[e.Name] = true
		cell := [2]int{e.X, e.Y}
		if other, ok := cells[cell]; ok {
			return fmt.Errorf("config: entities %s and %s share cell (%d,%d)", other, e.Name, e.X, e.Y)
		}
		cells[cell] = e.Name
		if e.Kind == "player" {
			players++
		}
		if err := validateGlyph("entity "+e.Name, e.Glyph); err != nil {
			return err
		}
		if e.MaxHP < 0 || e.HP < 0 || e.HP > e.MaxHP {
			return fmt.Errorf("config: entity %s hp %d/%d invalid", e.Name, e.HP, e.MaxHP)
		}
		switch e.Kind {
		case "player", "enemy", "pickup":
		default:
			return fmt.Errorf("config: entity %s has unknown kind %q", e.Name, e.Kind)
		}
	}
	if players != 1 {
		return fmt.Errorf("config: crawl needs exactly one player entity, got %d", players)
	}
	if k := c.Entities[c.PlayerIndex].Kind; k != "player" {
		return fmt.Errorf("config: player_index %d points at a %s", c.PlayerIndex, k)
	}
	return nil
}

func (g GridConfig) validate() error {
	if g.Width < grid.MinSize {
		return fmt.Errorf("config: grid width %d < %d", g.Width, grid.MinSize)
	}
	if g.Height < grid.MinSize {
		return fmt.Errorf("config: grid height %d < %d", g.Height, grid.MinSize)
	}
	return nil
}

func (t TileConfig) validate() error {
	if t.CellWidth < 1 {
		return fmt.Errorf("config: tile cell_width %d < 1", t.CellWidth)
	}
	if t.PixelSize < 1 {
		return fmt.Errorf("config: tile pixel_size %d < 1", t.PixelSize)
	}
	return nil
}

func validateGlyph(what, s string) error {
	if utf8.RuneCountInString(s) > 1 {
		return fmt.Errorf("config: %s glyph %q must be a single character", what, s)
	}
	return nil
}
