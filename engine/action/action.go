// Package action implements the validated intents that are the only way
// game state changes. Every action either mutates exactly its own effects
// and returns nil, or returns a *Failure having mutated nothing.
package action

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/nathoo/roguecore/engine/msglog"
	"github.com/nathoo/roguecore/engine/world"
	"github.com/nathoo/roguecore/types"
)

// Context is the explicit world an action runs against.
type Context struct {
	Map    *world.Map
	Player *world.Actor
	Log    *msglog.Log
	Logger *logrus.Entry
}

// Action is one intent performed by an actor.
type Action interface {
	Perform(ctx *Context, actor *world.Actor) error
}

var discard = func() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}()

func (c *Context) logger() *logrus.Entry {
	if c.Logger == nil {
		return discard
	}
	return c.Logger
}

// Wait does nothing and always succeeds.
type Wait struct{}

func (Wait) Perform(*Context, *world.Actor) error {
	return nil
}

// Move steps the actor by (DX, DY).
type Move struct {
	DX, DY int
}

func (a Move) Perform(ctx *Context, actor *world.Actor) error {
	x, y := actor.X+a.DX, actor.Y+a.DY
	if !ctx.Map.InBounds(x, y) || !ctx.Map.IsWalkable(x, y) || ctx.Map.BlockingEntityAt(x, y) != nil {
		return invalid("That way is blocked.")
	}
	actor.Move(a.DX, a.DY)
	return nil
}

// MeleeAttack strikes the living actor at (DX, DY) from the attacker.
type MeleeAttack struct {
	DX, DY int
}

func (a MeleeAttack) Perform(ctx *Context, actor *world.Actor) error {
	target := ctx.Map.ActorAt(actor.X+a.DX, actor.Y+a.DY)
	if target == nil || target == actor {
		return invalid("Nothing to attack.")
	}

	damage := max(0, actor.Fighter.Power-target.Fighter.Defense)
	desc := fmt.Sprintf("%s attacks %s", strings.ToUpper(actor.Name), target.Name)

	fg := types.EnemyAttack
	if actor.IsPlayer() {
		fg = types.PlayerAttack
	}

	ctx.logger().WithFields(logrus.Fields{
		"attacker":  actor.Name,
		"target":    target.Name,
		"damage":    damage,
		"hp_before": target.Fighter.HP(),
	}).Debug("Melee attack resolved.")

	if damage > 0 {
		ctx.Log.Add(fmt.Sprintf("%s for %d hit points.", desc, damage), fg)
		target.Fighter.TakeDamage(damage, ctx.Log)
	} else {
		ctx.Log.Add(desc+" but does no damage.", fg)
	}
	return nil
}

// Bump attacks a living actor at the destination, or moves there.
type Bump struct {
	DX, DY int
}

func (a Bump) Perform(ctx *Context, actor *world.Actor) error {
	if ctx.Map.ActorAt(actor.X+a.DX, actor.Y+a.DY) != nil {
		return MeleeAttack(a).Perform(ctx, actor)
	}
	return Move(a).Perform(ctx, actor)
}

// Pickup lifts the first item under the actor into its inventory.
type Pickup struct{}

func (Pickup) Perform(ctx *Context, actor *world.Actor) error {
	it := ctx.Map.ItemAt(actor.X, actor.Y)
	if it == nil {
		return impossible("There is nothing here to pick up.")
	}
	if actor.Inventory.Full() {
		return &Failure{Kind: KindInventoryFull, Reason: "Your inventory is full.", Err: world.ErrInventoryFull}
	}

	ctx.Map.Remove(it)
	if err := actor.Inventory.Add(it); err != nil {
		return &Failure{Kind: KindCapacityViolation, Reason: "pickup", Err: errors.Join(world.ErrCapacityViolation, err)}
	}
	ctx.Log.Add(fmt.Sprintf("You picked up the %s!", it.Name), types.White)
	return nil
}

// UseItem activates a held item's consumable.
type UseItem struct {
	Item *world.Item
}

func (a UseItem) Perform(ctx *Context, actor *world.Actor) error {
	if a.Item == nil || !actor.Inventory.Contains(a.Item) {
		return impossible("You don't have that.")
	}
	return activate(ctx, actor, a.Item)
}

// DropItem puts a held item on the actor's tile.
type DropItem struct {
	Item *world.Item
}

func (a DropItem) Perform(ctx *Context, actor *world.Actor) error {
	if a.Item == nil || !actor.Inventory.Contains(a.Item) {
		return impossible("You don't have that.")
	}
	if err := actor.Inventory.Drop(a.Item); err != nil {
		return &Failure{Kind: KindImpossible, Reason: "You don't have that.", Err: err}
	}
	ctx.Log.Add(fmt.Sprintf("You dropped the %s.", a.Item.Name), types.White)
	return nil
}
