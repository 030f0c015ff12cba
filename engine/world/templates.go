package world

import "github.com/nathoo/roguecore/types"

// ActorTemplate describes how to spawn an actor.
type ActorTemplate struct {
	ID       string
	Name     string
	Char     string
	FG       types.Color
	HP       int
	Defense  int
	Power    int
	Capacity int
	Weight   int // relative spawn weight
}

// ItemTemplate describes how to spawn an item.
type ItemTemplate struct {
	ID     string
	Name   string
	Char   string
	FG     types.Color
	Kind   ConsumableKind
	Amount int
	Weight int
}

// Bestiary is the full set of spawnable templates.
type Bestiary struct {
	Player   ActorTemplate
	Monsters []ActorTemplate
	Items    []ItemTemplate
}

// SpawnPlayer creates the player from its template. It is not placed.
func (b *Bestiary) SpawnPlayer(x, y int) *Actor {
	p := b.Player
	return NewPlayer(x, y, NewFighter(p.HP, p.Defense, p.Power), NewInventory(p.Capacity))
}

// SpawnMonster creates a hostile actor and places it on m.
func SpawnMonster(m *Map, t ActorTemplate, x, y int) *Actor {
	a := NewActor(x, y, t.Char, t.FG, t.Name, NewHostile(),
		NewFighter(t.HP, t.Defense, t.Power), NewInventory(t.Capacity))
	m.Place(a, x, y)
	return a
}

// SpawnItem creates an item and places it on m.
func SpawnItem(m *Map, t ItemTemplate, x, y int) *Item {
	c := &Consumable{Kind: t.Kind, Amount: t.Amount}
	it := NewItem(x, y, t.Char, t.FG, t.Name, c)
	m.Place(it, x, y)
	return it
}
