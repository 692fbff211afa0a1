package crawl

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Moves    int
	GridW    int
	GridH    int
	PlayerX  int
	PlayerY  int
	PlayerHP int
	Entities int
	Paused   bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	p := g.roster.Player()
	return Snapshot{
		Tick:     g.tick,
		Moves:    g.moves,
		GridW:    g.grid.W,
		GridH:    g.grid.H,
		PlayerX:  p.Pos.X,
		PlayerY:  p.Pos.Y,
		PlayerHP: p.HP,
		Entities: len(g.roster.Entities),
		Paused:   g.paused,
	}
}
