package world

import "github.com/nathoo/roguecore/types"

// Actor is an entity that can act and fight.
type Actor struct {
	Entity
	AI        *AI
	Fighter   *Fighter
	Inventory *Inventory

	player bool
}

// Item is an entity that can be picked up and consumed.
type Item struct {
	Entity
	Consumable *Consumable
}

// NewActor builds an AI-driven or inert actor and attaches its components.
func NewActor(x, y int, char string, fg types.Color, name string, ai *AI, f *Fighter, inv *Inventory) *Actor {
	a := &Actor{
		Entity: Entity{
			X: x, Y: y,
			Char: char, FG: fg, BG: types.Black,
			Name:           name,
			BlocksMovement: true,
			RenderOrder:    types.RenderActor,
		},
		AI:        ai,
		Fighter:   f,
		Inventory: inv,
	}
	f.owner = a
	inv.owner = a
	if ai != nil {
		ai.owner = a
	}
	return a
}

// NewPlayer builds the designated player actor. It has no AI.
func NewPlayer(x, y int, f *Fighter, inv *Inventory) *Actor {
	a := NewActor(x, y, "@", types.White, "Player", nil, f, inv)
	a.player = true
	return a
}

// NewItem builds an item around its consumable.
func NewItem(x, y int, char string, fg types.Color, name string, c *Consumable) *Item {
	it := &Item{
		Entity: Entity{
			X: x, Y: y,
			Char: char, FG: fg, BG: types.Black,
			Name:        name,
			RenderOrder: types.RenderItem,
		},
		Consumable: c,
	}
	c.owner = it
	return it
}

// IsPlayer reports whether this is the designated player actor.
func (a *Actor) IsPlayer() bool {
	return a.player
}

// IsAlive is true iff the actor has an AI or is the player. A dead player
// stays alive by this rule; use Fighter.HP() to detect player death.
// An AI-less actor that is not the player reads as not alive.
func (a *Actor) IsAlive() bool {
	return a.AI != nil || a.player
}
