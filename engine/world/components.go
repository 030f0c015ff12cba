package world

import "github.com/nathoo/roguecore/types"

// ConsumableKind enumerates the closed set of consumable variants.
type ConsumableKind int

const (
	ConsumableHealing ConsumableKind = iota
)

// Consumable is the use-effect of an item.
type Consumable struct {
	Kind ConsumableKind
	// Amount is the heal amount for ConsumableHealing.
	Amount int

	owner *Item
}

// NewHealing returns a healing consumable.
func NewHealing(amount int) *Consumable {
	return &Consumable{Kind: ConsumableHealing, Amount: amount}
}

// Owner returns the item this consumable belongs to.
func (c *Consumable) Owner() *Item {
	return c.owner
}

// AIKind enumerates the closed set of AI variants.
type AIKind int

const (
	AIHostile AIKind = iota
)

// AI is an actor's behaviour. The decision logic lives in the action
// package, which dispatches on Kind.
type AI struct {
	Kind AIKind
	// Path is the remaining route toward the current target.
	Path []types.Point

	owner *Actor
}

// NewHostile returns an AI that chases and attacks the player.
func NewHostile() *AI {
	return &AI{Kind: AIHostile}
}

// Owner returns the actor this AI belongs to.
func (ai *AI) Owner() *Actor {
	return ai.owner
}
