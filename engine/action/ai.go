package action

import (
	"fmt"

	"github.com/nathoo/roguecore/engine/path"
	"github.com/nathoo/roguecore/engine/world"
)

// PerformAI runs one turn of the actor's AI.
func PerformAI(ctx *Context, actor *world.Actor) error {
	if actor.AI == nil {
		return nil
	}
	switch actor.AI.Kind {
	case world.AIHostile:
		return hostile(ctx, actor)
	default:
		return fmt.Errorf("unknown AI kind %d", actor.AI.Kind)
	}
}

// hostile attacks the player when adjacent, otherwise walks toward them.
// An actor on a tile the player cannot see cannot see the player either
// and idles.
func hostile(ctx *Context, actor *world.Actor) error {
	target := ctx.Player
	dx := target.X - actor.X
	dy := target.Y - actor.Y
	distance := max(abs(dx), abs(dy))

	if !ctx.Map.IsVisible(actor.X, actor.Y) {
		actor.AI.Path = nil
		return Wait{}.Perform(ctx, actor)
	}

	if distance <= 1 {
		return MeleeAttack{DX: dx, DY: dy}.Perform(ctx, actor)
	}

	route := path.Find(ctx.Map, actor.Pos(), target.Pos())
	if len(route) == 0 {
		actor.AI.Path = nil
		return Wait{}.Perform(ctx, actor)
	}

	next := route[0]
	if err := (Move{DX: next.X - actor.X, DY: next.Y - actor.Y}).Perform(ctx, actor); err != nil {
		return err
	}
	actor.AI.Path = route[1:]
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
