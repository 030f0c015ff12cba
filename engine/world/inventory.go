package world

import (
	"errors"
	"fmt"
)

var (
	// ErrInventoryFull is returned when adding to an inventory at capacity.
	ErrInventoryFull = errors.New("inventory full")
	// ErrCapacityViolation means an inventory holds more items than its
	// capacity. Validation should make this unreachable.
	ErrCapacityViolation = errors.New("inventory capacity violated")
	// ErrNotHeld is returned when removing an item the inventory lacks.
	ErrNotHeld = errors.New("item not held")
)

// Inventory is an ordered, fixed-capacity list of items.
type Inventory struct {
	Capacity int

	items []*Item
	owner *Actor
}

// NewInventory returns an empty inventory. Negative capacity becomes 0.
func NewInventory(capacity int) *Inventory {
	return &Inventory{Capacity: max(capacity, 0)}
}

// Items returns the held items in insertion order. Do not modify.
func (inv *Inventory) Items() []*Item {
	return inv.items
}

// Len returns the number of held items.
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// Full reports whether no further item fits.
func (inv *Inventory) Full() bool {
	return len(inv.items) >= inv.Capacity
}

// Owner returns the actor carrying this inventory.
func (inv *Inventory) Owner() *Actor {
	return inv.owner
}

// Contains reports whether it is held.
func (inv *Inventory) Contains(it *Item) bool {
	return inv.indexOf(it) >= 0
}

// Add appends it. At capacity it returns ErrInventoryFull and changes nothing.
func (inv *Inventory) Add(it *Item) error {
	if len(inv.items) > inv.Capacity {
		return fmt.Errorf("%w: %d items, capacity %d", ErrCapacityViolation, len(inv.items), inv.Capacity)
	}
	if inv.Full() {
		return ErrInventoryFull
	}
	inv.items = append(inv.items, it)
	return nil
}

// Remove deletes it, preserving the order of the rest.
func (inv *Inventory) Remove(it *Item) error {
	i := inv.indexOf(it)
	if i < 0 {
		return ErrNotHeld
	}
	inv.items = append(inv.items[:i], inv.items[i+1:]...)
	return nil
}

// Drop removes it and places it on the owner's tile and map.
func (inv *Inventory) Drop(it *Item) error {
	if err := inv.Remove(it); err != nil {
		return err
	}
	if inv.owner != nil && inv.owner.parent != nil {
		inv.owner.parent.Place(it, inv.owner.X, inv.owner.Y)
	} else if inv.owner != nil {
		it.X, it.Y = inv.owner.X, inv.owner.Y
	}
	return nil
}

func (inv *Inventory) indexOf(it *Item) int {
	for i, held := range inv.items {
		if held == it {
			return i
		}
	}
	return -1
}
