package grid

import (
	"fmt"

	"github.com/vovakirdan/tilegrid/internal/core"
)

// Coord represents a 2D coordinate on the grid.
// X increases to the right, Y increases downward (screen coordinates).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Step returns a new Coord one step in the given direction.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// Manhattan returns the Manhattan distance to another coordinate.
func (c Coord) Manhattan(other Coord) int {
	return core.Abs(c.X-other.X) + core.Abs(c.Y-other.Y)
}

// Adjacent reports whether other is the same cell or one of its four
// orthogonal neighbours. Diagonal cells are not adjacent.
func (c Coord) Adjacent(other Coord) bool {
	return c.Manhattan(other) <= 1
}

// Dir is one of the four orthogonal movement directions.
type Dir int

const (
	DirLeft Dir = iota
	DirRight
	DirUp
	DirDown
)

// Dirs lists the directions in the order games poll them each frame.
var Dirs = [...]Dir{DirLeft, DirRight, DirUp, DirDown}

// Delta returns the (dx, dy) offset for one step.
func (d Dir) Delta() (int, int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	}
	return 0, 0
}

// String returns the direction name.
func (d Dir) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	}
	return "none"
}

// Action returns the input action that requests a step in this direction.
func (d Dir) Action() core.Action {
	switch d {
	case DirLeft:
		return core.ActionLeft
	case DirRight:
		return core.ActionRight
	case DirUp:
		return core.ActionUp
	case DirDown:
		return core.ActionDown
	}
	return core.ActionNone
}
