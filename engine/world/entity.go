// Package world holds the game-state model: entities, their components,
// and the map that owns them.
package world

import "github.com/nathoo/roguecore/types"

// Entity is anything with a position and a glyph.
type Entity struct {
	X, Y           int
	Char           string
	FG, BG         types.Color
	Name           string
	BlocksMovement bool
	RenderOrder    types.RenderOrder

	// parent is the map whose collection holds this entity, or nil while
	// the entity sits in an inventory. Non-owning.
	parent *Map
}

// Thing is implemented by every concrete entity kind (*Actor, *Item).
type Thing interface {
	Base() *Entity
}

// Base returns the embedded entity. Promoted to *Actor and *Item.
func (e *Entity) Base() *Entity {
	return e
}

// Map returns the map holding the entity, or nil.
func (e *Entity) Map() *Map {
	return e.parent
}

// Move translates the entity. No validation; actions check first.
func (e *Entity) Move(dx, dy int) {
	e.X += dx
	e.Y += dy
}

// Pos returns the entity's position.
func (e *Entity) Pos() types.Point {
	return types.Point{X: e.X, Y: e.Y}
}

// DistanceTo returns the Chebyshev distance to (x, y).
func (e *Entity) DistanceTo(x, y int) int {
	return max(abs(x-e.X), abs(y-e.Y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
