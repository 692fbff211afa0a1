// Package entity holds the static actors placed on a grid and the player
// movement rule.
package entity

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/tilegrid/internal/core"
	"github.com/vovakirdan/tilegrid/internal/grid"
)

// Kind identifies what an entity is.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
	KindPickup
)

// String returns the config name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindPickup:
		return "pickup"
	}
	return "unknown"
}

// ParseKind looks up a kind by its config name.
func ParseKind(name string) (Kind, error) {
	for _, k := range []Kind{KindPlayer, KindEnemy, KindPickup} {
		if k.String() == name {
			return k, nil
		}
	}
	return KindEnemy, fmt.Errorf("entity: unknown kind %q", name)
}

// Entity is an actor on the grid.
type Entity struct {
	Name  string
	Kind  Kind
	Pos   grid.Coord
	Glyph rune
	Color core.Color
	HP    int
	MaxHP int
}

// Blocking reports whether the entity occupies its cell. Enemies block,
// pickups can be stood on.
func (e Entity) Blocking() bool {
	return e.Kind == KindEnemy
}

// Roster is the fixed set of entities of one game, one of which is the player.
type Roster struct {
	Entities    []Entity
	PlayerIndex int

	blocked mapset.Set[grid.Coord]
}

// NewRoster builds a roster. playerIndex must point into entities.
func NewRoster(entities []Entity, playerIndex int) (*Roster, error) {
	if playerIndex < 0 || playerIndex >= len(entities) {
		return nil, fmt.Errorf("entity: player index %d out of range [0,%d)", playerIndex, len(entities))
	}

	r := &Roster{
		Entities:    entities,
		PlayerIndex: playerIndex,
		blocked:     mapset.New[grid.Coord](),
	}
	for i, e := range entities {
		if i != playerIndex && e.Blocking() {
			r.blocked.Put(e.Pos)
		}
	}
	return r, nil
}

// Player returns the player entity.
func (r *Roster) Player() *Entity {
	return &r.Entities[r.PlayerIndex]
}

// BlockedAt reports whether a blocking entity other than the player stands on c.
func (r *Roster) BlockedAt(c grid.Coord) bool {
	return r.blocked.Has(c)
}

// MovePlayer steps the player one cell in d. The move is rejected when the
// destination is a wall or is occupied by a blocking entity.
// Returns whether the player moved.
func (r *Roster) MovePlayer(d grid.Dir, g *grid.Grid) bool {
	p := r.Player()
	next := p.Pos.Step(d)
	if g.IsWall(next) || r.BlockedAt(next) {
		return false
	}
	p.Pos = next
	return true
}

// UnderPlayer returns the other entities sharing the player's cell.
func (r *Roster) UnderPlayer() []Entity {
	var out []Entity
	pos := r.Player().Pos
	for i, e := range r.Entities {
		if i != r.PlayerIndex && e.Pos == pos {
			out = append(out, e)
		}
	}
	return out
}

// FrameEntities converts the roster into render-boundary entities. The
// player comes last so renderers draw it on top.
func (r *Roster) FrameEntities() []core.FrameEntity {
	out := make([]core.FrameEntity, 0, len(r.Entities))
	for i, e := range r.Entities {
		if i == r.PlayerIndex {
			continue
		}
		out = append(out, toFrame(e, false))
	}
	return append(out, toFrame(*r.Player(), true))
}

func toFrame(e Entity, player bool) core.FrameEntity {
	return core.FrameEntity{
		Name:   e.Name,
		X:      e.Pos.X,
		Y:      e.Pos.Y,
		Glyph:  e.Glyph,
		Color:  e.Color,
		HP:     e.HP,
		MaxHP:  e.MaxHP,
		Player: player,
	}
}
