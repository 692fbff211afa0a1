// Package cursor implements the grid cursor and the single-tile selection
// that constrains it.
//
// The cursor always stays on a floor cell: [1, W-2] x [1, H-2]. While a tile
// is selected, the cursor may only move onto the selected tile or one of its
// four orthogonal neighbours.
package cursor

import (
	"github.com/vovakirdan/tilegrid/internal/core"
	"github.com/vovakirdan/tilegrid/internal/grid"
)

// Default glyphs.
const (
	DefaultGlyph          = 'X'
	DefaultSelectionGlyph = '*'
)

// Selection is the currently selected tile. Pos is meaningless while Active
// is false.
type Selection struct {
	Pos    grid.Coord
	Glyph  rune
	Active bool
}

// Confirm toggles the selection at the cursor position: confirming on the
// already selected tile deselects it, anywhere else selects the cursor tile
// (replacing any previous selection).
func (s *Selection) Confirm(at grid.Coord) {
	if s.Active && s.Pos == at {
		s.Active = false
		return
	}
	s.Pos = at
	s.Active = true
}

// Cancel drops the selection regardless of where the cursor is.
func (s *Selection) Cancel() {
	s.Active = false
}

// Allows reports whether the selection permits the cursor to stand on c.
func (s Selection) Allows(c grid.Coord) bool {
	return !s.Active || s.Pos.Adjacent(c)
}

// Cursor is a position on a grid of fixed size.
type Cursor struct {
	Pos   grid.Coord
	Glyph rune

	w, h int
}

// New creates a cursor for a w x h grid. The start position is clamped into
// the floor interior.
func New(w, h int, start grid.Coord, glyph rune) *Cursor {
	w = max(w, grid.MinSize)
	h = max(h, grid.MinSize)
	if glyph == 0 {
		glyph = DefaultGlyph
	}
	return &Cursor{
		Pos:   grid.C(core.Clamp(start.X, 1, w-2), core.Clamp(start.Y, 1, h-2)),
		Glyph: glyph,
		w:     w,
		h:     h,
	}
}

// atEdge reports whether moving in d would leave the floor interior.
func (c *Cursor) atEdge(d grid.Dir) bool {
	switch d {
	case grid.DirLeft:
		return c.Pos.X <= 1
	case grid.DirRight:
		return c.Pos.X >= c.w-2
	case grid.DirUp:
		return c.Pos.Y <= 1
	case grid.DirDown:
		return c.Pos.Y >= c.h-2
	}
	return true
}

// Move steps the cursor one cell in d. The move is dropped when the cursor
// is already on the inner boundary in that direction, or when sel is active
// and the target is not orthogonally adjacent to the selected tile.
// Returns whether the cursor moved.
func (c *Cursor) Move(d grid.Dir, sel Selection) bool {
	if c.atEdge(d) {
		return false
	}
	next := c.Pos.Step(d)
	if !sel.Allows(next) {
		return false
	}
	c.Pos = next
	return true
}
