package core

// Frame is everything a renderer needs to draw one frame of a game: the full
// tile list, the cursor, the selection and the entity list. Positions are grid
// coordinates; mapping them to cells or pixels is the renderer's job.
type Frame struct {
	Width     int             `json:"width"`
	Height    int             `json:"height"`
	Tiles     []FrameTile     `json:"tiles"`
	Cursor    *FrameCursor    `json:"cursor,omitempty"`
	Selection *FrameSelection `json:"selection,omitempty"`
	Entities  []FrameEntity   `json:"entities,omitempty"`
}

// FrameTile is one grid tile.
type FrameTile struct {
	X     int   `json:"x"`
	Y     int   `json:"y"`
	Glyph rune  `json:"glyph"`
	Color Color `json:"color"`
	Wall  bool  `json:"wall"`
}

// FrameCursor is the cursor position and glyph.
type FrameCursor struct {
	X     int   `json:"x"`
	Y     int   `json:"y"`
	Glyph rune  `json:"glyph"`
	Color Color `json:"color"`
}

// FrameSelection is the selected tile. Position is meaningless when Active is false.
type FrameSelection struct {
	X      int   `json:"x"`
	Y      int   `json:"y"`
	Glyph  rune  `json:"glyph"`
	Color  Color `json:"color"`
	Active bool  `json:"active"`
}

// FrameEntity is one actor on the grid.
type FrameEntity struct {
	Name   string `json:"name"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Glyph  rune   `json:"glyph"`
	Color  Color  `json:"color"`
	HP     int    `json:"hp"`
	MaxHP  int    `json:"max_hp"`
	Player bool   `json:"player"`
}

// Draw renders the frame into dst through v. Layers, bottom to top: tiles,
// active selection, entities, cursor. Each glyph goes into the top-left cell
// of its tile; the rest of the tile stays blank.
func (f Frame) Draw(dst *Screen, v Viewport) {
	put := func(x, y int, r rune, c Color) {
		sx, sy := v.ToArea(x, y)
		dst.SetCell(sx, sy, r, c)
	}

	for _, t := range f.Tiles {
		put(t.X, t.Y, t.Glyph, t.Color)
	}

	sel := f.Selection
	if sel != nil && sel.Active {
		put(sel.X, sel.Y, sel.Glyph, sel.Color)
	}

	for _, e := range f.Entities {
		put(e.X, e.Y, e.Glyph, e.Color)
	}

	if c := f.Cursor; c != nil {
		color := c.Color
		// Keep the selection visible under the cursor by borrowing its color.
		if sel != nil && sel.Active && sel.X == c.X && sel.Y == c.Y {
			color = sel.Color
		}
		put(c.X, c.Y, c.Glyph, color)
	}
}

// DrawCentered centers the frame in the rows of dst below top, each tile
// tileW cells wide, and draws it. Nothing is drawn and false is returned when
// the grid does not fit.
func (f Frame) DrawCentered(dst *Screen, top, tileW int) bool {
	area := NewRect(0, top, dst.Width(), dst.Height()-top)
	v, fits := CenterViewport(f.Width, f.Height, tileW, 1, area)
	if !fits {
		return false
	}
	f.Draw(dst, v)
	return true
}
