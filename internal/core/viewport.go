package core

// Viewport maps grid coordinates to drawing-area coordinates. The unit of the
// drawing area is whatever the host draws in: terminal cells or window pixels.
type Viewport struct {
	OriginX int // Area x of grid column 0
	OriginY int // Area y of grid row 0
	TileW   int // Area units per grid column
	TileH   int // Area units per grid row
}

// CenterViewport centers a gridW x gridH grid inside area, each tile taking
// tileW x tileH units. The second result is false when the grid does not fit;
// the viewport is still centered (and clipped by the host) in that case.
func CenterViewport(gridW, gridH, tileW, tileH int, area Rect) (Viewport, bool) {
	tileW = max(tileW, 1)
	tileH = max(tileH, 1)
	w := gridW * tileW
	h := gridH * tileH

	v := Viewport{
		OriginX: area.X + (area.W-w)/2,
		OriginY: area.Y + (area.H-h)/2,
		TileW:   tileW,
		TileH:   tileH,
	}
	return v, w <= area.W && h <= area.H
}

// ToArea returns the area coordinates of the top-left corner of grid cell (x, y).
func (v Viewport) ToArea(x, y int) (int, int) {
	return v.OriginX + x*v.TileW, v.OriginY + y*v.TileH
}

// Bounds returns the area rectangle covered by a gridW x gridH grid.
func (v Viewport) Bounds(gridW, gridH int) Rect {
	return NewRect(v.OriginX, v.OriginY, gridW*v.TileW, gridH*v.TileH)
}
