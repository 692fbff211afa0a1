package config

import (
	_ "embed"

	"github.com/vovakirdan/tilegrid/internal/core"
)

//go:embed defaults/arena.yaml
var defaultArenaYAML []byte

//go:embed defaults/crawl.yaml
var defaultCrawlYAML []byte

// DefaultArenaConfig returns the default arena configuration.
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		Title: "Tile Arena",
		Grid: GridConfig{
			Width:          9,
			Height:         9,
			RandomizeFloor: true,
		},
		Tile: TileConfig{
			CellWidth: 2,
			PixelSize: 50,
		},
		Cursor: CursorConfig{
			StartX: 1,
			StartY: 1,
			Glyph:  "X",
		},
		Selection: SelectionConfig{
			Glyph: "*",
			Color: core.ColorBrightYellow,
		},
		Palette: defaultPalette(),
	}
}

// DefaultCrawlConfig returns the default crawl configuration.
func DefaultCrawlConfig() CrawlConfig {
	return CrawlConfig{
		Title: "Tile Crawl",
		Grid: GridConfig{
			Width:  20,
			Height: 15,
		},
		Tile: TileConfig{
			CellWidth: 2,
			PixelSize: 32,
		},
		Palette: defaultPalette(),
		Entities: []EntityConfig{
			{Name: "hero", Kind: "player", X: 2, Y: 2, Glyph: "@", Color: core.ColorBrightWhite, HP: 10, MaxHP: 10},
			{Name: "goblin", Kind: "enemy", X: 8, Y: 5, Glyph: "g", Color: core.ColorBrightRed, HP: 5, MaxHP: 5},
			{Name: "orc", Kind: "enemy", X: 14, Y: 9, Glyph: "o", Color: core.ColorRed, HP: 8, MaxHP: 8},
			{Name: "potion", Kind: "pickup", X: 5, Y: 11, Glyph: "!", Color: core.ColorBrightMagenta, HP: 1, MaxHP: 1},
		},
		PlayerIndex: 0,
	}
}

func defaultPalette() PaletteConfig {
	return PaletteConfig{
		Wall:  core.ColorGray,
		Floor: []core.Color{core.ColorGreen, core.ColorCyan, core.ColorBlue, core.ColorYellow},
	}
}
