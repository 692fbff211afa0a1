// Package grid builds the rectangular tile grids the games are played on:
// a one-cell wall border around a floor interior.
package grid

import (
	"math/rand"

	"github.com/vovakirdan/tilegrid/internal/core"
)

// MinSize is the smallest width or height that still leaves one floor cell.
const MinSize = 3

// Glyphs used for generated tiles.
const (
	WallGlyph  = '#'
	FloorGlyph = '.'
)

// Kind identifies the category of a tile.
type Kind uint8

const (
	KindFloor Kind = iota
	KindWall
)

// String returns the kind name.
func (k Kind) String() string {
	if k == KindWall {
		return "wall"
	}
	return "floor"
}

// Tile is one generated grid cell. Tiles never change after generation.
type Tile struct {
	Pos   Coord
	Kind  Kind
	Glyph rune
	Color core.Color
}

// Palette holds the colors used by the generator.
type Palette struct {
	Wall  core.Color   // Fixed color for every wall tile
	Floor []core.Color // Floor colors; the first is used when randomization is off
}

// DefaultPalette returns the palette used when none is configured.
func DefaultPalette() Palette {
	return Palette{
		Wall:  core.ColorGray,
		Floor: []core.Color{core.ColorGreen, core.ColorCyan, core.ColorBlue, core.ColorYellow},
	}
}

func (p Palette) floorColor(rng *rand.Rand) core.Color {
	switch {
	case len(p.Floor) == 0:
		return core.ColorDefault
	case rng == nil || len(p.Floor) == 1:
		return p.Floor[0]
	default:
		return p.Floor[rng.Intn(len(p.Floor))]
	}
}

// Grid represents the board as a rectangular grid of tiles.
// Tiles are stored in row-major order: index = y*W + x.
type Grid struct {
	W     int
	H     int
	tiles []Tile
}

// Generate builds a w x h grid. Cells on the outer border are walls, all
// others are floor. When rng is non-nil each floor tile takes a random color
// from the palette; otherwise every floor tile takes the first floor color.
// Dimensions below MinSize are raised to MinSize.
func Generate(w, h int, p Palette, rng *rand.Rand) *Grid {
	w = max(w, MinSize)
	h = max(h, MinSize)

	g := &Grid{
		W:     w,
		H:     h,
		tiles: make([]Tile, 0, w*h),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t := Tile{Pos: C(x, y)}
			if x == 0 || x == w-1 || y == 0 || y == h-1 {
				t.Kind = KindWall
				t.Glyph = WallGlyph
				t.Color = p.Wall
			} else {
				t.Kind = KindFloor
				t.Glyph = FloorGlyph
				t.Color = p.floorColor(rng)
			}
			g.tiles = append(g.tiles, t)
		}
	}
	return g
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// At returns the tile at the given coordinate.
// The second result is false when c is out of bounds.
func (g *Grid) At(c Coord) (Tile, bool) {
	if !g.InBounds(c) {
		return Tile{}, false
	}
	return g.tiles[c.Y*g.W+c.X], true
}

// IsWall reports whether c is a wall. Out-of-bounds cells count as walls.
func (g *Grid) IsWall(c Coord) bool {
	t, ok := g.At(c)
	return !ok || t.Kind == KindWall
}

// Interior returns the floor area: [1, W-2] x [1, H-2].
func (g *Grid) Interior() core.Rect {
	return core.NewRect(1, 1, g.W-2, g.H-2)
}

// ClampInterior moves c to the nearest floor cell.
func (g *Grid) ClampInterior(c Coord) Coord {
	in := g.Interior()
	return C(core.Clamp(c.X, in.X, in.Right()-1), core.Clamp(c.Y, in.Y, in.Bottom()-1))
}

// Tiles returns all tiles in row-major order. The slice is shared; callers
// must not modify it.
func (g *Grid) Tiles() []Tile {
	return g.tiles
}

// FrameTiles converts the grid into render-boundary tiles.
func (g *Grid) FrameTiles() []core.FrameTile {
	out := make([]core.FrameTile, len(g.tiles))
	for i, t := range g.tiles {
		out[i] = core.FrameTile{
			X:     t.Pos.X,
			Y:     t.Pos.Y,
			Glyph: t.Glyph,
			Color: t.Color,
			Wall:  t.Kind == KindWall,
		}
	}
	return out
}
