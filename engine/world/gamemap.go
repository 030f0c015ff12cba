package world

import (
	"github.com/nathoo/roguecore/engine/fov"
)

// Tile is one cell of terrain.
type Tile struct {
	Walkable    bool
	Transparent bool
}

// Terrain kinds used by the generator.
var (
	Wall  = Tile{}
	Floor = Tile{Walkable: true, Transparent: true}
)

// Map owns the tile grid, the visibility state and the ordered entity
// collection.
type Map struct {
	Width, Height int

	tiles    []Tile
	visible  []bool
	explored []bool
	entities []Thing
}

// NewMap returns a map filled with walls.
func NewMap(width, height int) *Map {
	n := width * height
	tiles := make([]Tile, n)
	for i := range tiles {
		tiles[i] = Wall
	}
	return &Map{
		Width:    width,
		Height:   height,
		tiles:    tiles,
		visible:  make([]bool, n),
		explored: make([]bool, n),
	}
}

func (m *Map) index(x, y int) int {
	return y*m.Width + x
}

// InBounds reports whether (x, y) lies on the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.Width && y < m.Height
}

// Tile returns the terrain at (x, y). Out of bounds reads as Wall.
func (m *Map) Tile(x, y int) Tile {
	if !m.InBounds(x, y) {
		return Wall
	}
	return m.tiles[m.index(x, y)]
}

// SetTile writes terrain. Out-of-bounds writes are ignored.
func (m *Map) SetTile(x, y int, t Tile) {
	if m.InBounds(x, y) {
		m.tiles[m.index(x, y)] = t
	}
}

// IsWalkable reports whether the terrain at (x, y) can be entered.
func (m *Map) IsWalkable(x, y int) bool {
	return m.Tile(x, y).Walkable
}

// BlocksSight implements fov.Grid.
func (m *Map) BlocksSight(x, y int) bool {
	return !m.Tile(x, y).Transparent
}

// IsVisible reports whether (x, y) is in the player's current view.
func (m *Map) IsVisible(x, y int) bool {
	return m.InBounds(x, y) && m.visible[m.index(x, y)]
}

// IsExplored reports whether (x, y) has ever been visible.
func (m *Map) IsExplored(x, y int) bool {
	return m.InBounds(x, y) && m.explored[m.index(x, y)]
}

// UpdateFOV recomputes visibility from the viewer. Tiles leaving view keep
// their explored mark.
func (m *Map) UpdateFOV(viewer *Actor, radius int) {
	for i := range m.visible {
		m.visible[i] = false
	}
	fov.Compute(m, viewer.X, viewer.Y, radius, func(x, y int) {
		i := m.index(x, y)
		m.visible[i] = true
		m.explored[i] = true
	})
}

// Place puts t at (x, y) on this map, first removing it from whatever map
// held it before so it appears in exactly one collection exactly once.
func (m *Map) Place(t Thing, x, y int) {
	e := t.Base()
	if e.parent != nil {
		e.parent.Remove(t)
	}
	e.X, e.Y = x, y
	e.parent = m
	m.entities = append(m.entities, t)
}

// Remove takes t out of the collection. It reports whether t was present.
func (m *Map) Remove(t Thing) bool {
	for i, held := range m.entities {
		if held == t {
			m.entities = append(m.entities[:i], m.entities[i+1:]...)
			t.Base().parent = nil
			return true
		}
	}
	return false
}

// Entities returns the collection in insertion order. Do not modify.
func (m *Map) Entities() []Thing {
	return m.entities
}

// Actors returns every actor, dead or alive, in collection order.
func (m *Map) Actors() []*Actor {
	var out []*Actor
	for _, t := range m.entities {
		if a, ok := t.(*Actor); ok {
			out = append(out, a)
		}
	}
	return out
}

// Items returns every item on the floor in collection order.
func (m *Map) Items() []*Item {
	var out []*Item
	for _, t := range m.entities {
		if it, ok := t.(*Item); ok {
			out = append(out, it)
		}
	}
	return out
}

// BlockingEntityAt returns the first movement-blocking entity at (x, y).
func (m *Map) BlockingEntityAt(x, y int) Thing {
	for _, t := range m.entities {
		e := t.Base()
		if e.BlocksMovement && e.X == x && e.Y == y {
			return t
		}
	}
	return nil
}

// EntityAt returns the first entity of any kind at (x, y).
func (m *Map) EntityAt(x, y int) Thing {
	for _, t := range m.entities {
		e := t.Base()
		if e.X == x && e.Y == y {
			return t
		}
	}
	return nil
}

// ActorAt returns the living actor at (x, y), if any.
func (m *Map) ActorAt(x, y int) *Actor {
	for _, t := range m.entities {
		if a, ok := t.(*Actor); ok && a.IsAlive() && a.X == x && a.Y == y {
			return a
		}
	}
	return nil
}

// ItemAt returns the first item at (x, y), if any.
func (m *Map) ItemAt(x, y int) *Item {
	for _, t := range m.entities {
		if it, ok := t.(*Item); ok && it.X == x && it.Y == y {
			return it
		}
	}
	return nil
}

// Cost implements path.Grid: walls are impassable and tiles holding a
// blocking entity are expensive so actors route around each other.
func (m *Map) Cost(x, y int) int {
	if !m.IsWalkable(x, y) {
		return 0
	}
	if m.BlockingEntityAt(x, y) != nil {
		return 10
	}
	return 1
}
