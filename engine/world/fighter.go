package world

import (
	"fmt"

	"github.com/nathoo/roguecore/types"
)

// Messenger receives messages produced by component transitions.
type Messenger interface {
	Add(text string, fg types.Color)
}

// Fighter holds combat stats and hit points.
type Fighter struct {
	MaxHP   int
	Defense int
	Power   int

	hp    int
	owner *Actor
}

// NewFighter returns a fighter at full health. maxHP is raised to 1 and
// negative stats are clamped to 0.
func NewFighter(maxHP, defense, power int) *Fighter {
	maxHP = max(maxHP, 1)
	return &Fighter{
		MaxHP:   maxHP,
		Defense: max(defense, 0),
		Power:   max(power, 0),
		hp:      maxHP,
	}
}

// HP returns current hit points, always within [0, MaxHP].
func (f *Fighter) HP() int {
	return f.hp
}

// Owner returns the actor this fighter belongs to.
func (f *Fighter) Owner() *Actor {
	return f.owner
}

// SetHP writes hit points clamped to [0, MaxHP]. When the write takes a
// living owner from positive HP to 0 the death transition runs once and
// reports to msgs.
func (f *Fighter) SetHP(value int, msgs Messenger) {
	prev := f.hp
	f.hp = max(0, min(value, f.MaxHP))

	if prev > 0 && f.hp == 0 && f.owner != nil && f.owner.IsAlive() {
		f.die(msgs)
	}
}

// TakeDamage subtracts amount from HP. Negative amounts deal nothing.
func (f *Fighter) TakeDamage(amount int, msgs Messenger) {
	f.SetHP(f.hp-max(amount, 0), msgs)
}

// Heal restores up to amount HP and returns how much was recovered.
// Full-health and dead fighters recover nothing.
func (f *Fighter) Heal(amount int) int {
	if f.hp == f.MaxHP || f.hp == 0 || amount <= 0 {
		return 0
	}
	newHP := min(f.hp+amount, f.MaxHP)
	recovered := newHP - f.hp
	f.SetHP(newHP, nil)
	return recovered
}

func (f *Fighter) die(msgs Messenger) {
	a := f.owner

	var text string
	var fg types.Color
	if a.IsPlayer() {
		text = "You died!"
		fg = types.PlayerDie
	} else {
		text = fmt.Sprintf("%s is dead!", a.Name)
		fg = types.EnemyDie
	}

	a.Char = "%"
	a.FG = types.Corpse
	a.BlocksMovement = false
	a.AI = nil
	a.Name = "Remains of " + a.Name
	a.RenderOrder = types.RenderCorpse

	if msgs != nil {
		msgs.Add(text, fg)
	}
}
