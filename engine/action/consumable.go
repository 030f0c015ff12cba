package action

import (
	"fmt"

	"github.com/nathoo/roguecore/engine/world"
	"github.com/nathoo/roguecore/types"
)

// activate applies the item's consumable to consumer. An item without effect
// reports why and is kept; that is not a failure.
func activate(ctx *Context, consumer *world.Actor, it *world.Item) error {
	c := it.Consumable
	if c == nil {
		return impossible(fmt.Sprintf("The %s cannot be used.", it.Name))
	}

	switch c.Kind {
	case world.ConsumableHealing:
		recovered := consumer.Fighter.Heal(c.Amount)
		if recovered <= 0 {
			ctx.Log.Add("Your health is already full.", types.Invalid)
			return nil
		}
		if err := consumer.Inventory.Remove(it); err != nil {
			return &Failure{Kind: KindImpossible, Reason: "You don't have that.", Err: err}
		}
		ctx.Log.Add(fmt.Sprintf("You consume the %s, and recover %d HP!", it.Name, recovered), types.HealthRecovered)
		return nil
	default:
		return impossible(fmt.Sprintf("The %s cannot be used.", it.Name))
	}
}
