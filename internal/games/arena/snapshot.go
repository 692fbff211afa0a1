package arena

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Moves     int
	GridW     int
	GridH     int
	FloorSum  int // Sum of floor color values, a cheap fingerprint of the generated grid
	CursorX   int
	CursorY   int
	Selected  bool
	SelectedX int
	SelectedY int
	Paused    bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	floor := 0
	for _, t := range g.grid.Tiles() {
		if !g.grid.IsWall(t.Pos) {
			floor += int(t.Color)
		}
	}

	s := Snapshot{
		Tick:     g.tick,
		Moves:    g.moves,
		GridW:    g.grid.W,
		GridH:    g.grid.H,
		FloorSum: floor,
		CursorX:  g.cursor.Pos.X,
		CursorY:  g.cursor.Pos.Y,
		Selected: g.sel.Active,
		Paused:   g.paused,
	}
	if g.sel.Active {
		s.SelectedX = g.sel.Pos.X
		s.SelectedY = g.sel.Pos.Y
	}
	return s
}
