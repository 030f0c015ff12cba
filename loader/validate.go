package loader

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/nathoo/roguecore/engine/world"
	"github.com/nathoo/roguecore/types"
)

// ValidationError collects all validation errors.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// maxCapacity is the number of inventory slots the a..z selection keys can address.
const maxCapacity = 26

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// validate checks compiled templates for values the engine cannot use.
func validate(b *world.Bestiary) error {
	ve := &ValidationError{}

	checkActor(ve, "Player", b.Player)
	if b.Player.Capacity < 0 || b.Player.Capacity > maxCapacity {
		ve.Errors = append(ve.Errors,
			fmt.Sprintf("Player: capacity %d out of range 0..%d", b.Player.Capacity, maxCapacity))
	}

	seen := make(map[string]bool)
	for _, m := range b.Monsters {
		label := fmt.Sprintf("Monster %q", m.ID)
		if seen[m.ID] {
			ve.Errors = append(ve.Errors, label+": duplicate id")
		}
		seen[m.ID] = true
		checkActor(ve, label, m)
		checkWeight(ve, label, m.Weight)
	}

	for _, it := range b.Items {
		label := fmt.Sprintf("Item %q", it.ID)
		if seen[it.ID] {
			ve.Errors = append(ve.Errors, label+": duplicate id")
		}
		seen[it.ID] = true
		checkLook(ve, label, it.Name, it.Char, it.FG)
		checkWeight(ve, label, it.Weight)
		if it.Kind == world.ConsumableHealing && it.Amount <= 0 {
			ve.Errors = append(ve.Errors,
				fmt.Sprintf("%s: healing amount must be positive, got %d", label, it.Amount))
		}
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

func checkActor(ve *ValidationError, label string, t world.ActorTemplate) {
	checkLook(ve, label, t.Name, t.Char, t.FG)
	if t.HP <= 0 {
		ve.Errors = append(ve.Errors, fmt.Sprintf("%s: hp must be positive, got %d", label, t.HP))
	}
	if t.Defense < 0 || t.Power < 0 {
		ve.Errors = append(ve.Errors, fmt.Sprintf("%s: defense and power must not be negative", label))
	}
}

func checkLook(ve *ValidationError, label, name, char string, fg types.Color) {
	if name == "" {
		ve.Errors = append(ve.Errors, label+": name is required")
	}
	if utf8.RuneCountInString(char) != 1 {
		ve.Errors = append(ve.Errors, fmt.Sprintf("%s: char must be a single character, got %q", label, char))
	}
	if !hexColor.MatchString(string(fg)) {
		ve.Errors = append(ve.Errors, fmt.Sprintf("%s: color %q is not #rrggbb", label, fg))
	}
}

func checkWeight(ve *ValidationError, label string, w int) {
	if w <= 0 {
		ve.Errors = append(ve.Errors, fmt.Sprintf("%s: weight must be positive, got %d", label, w))
	}
}
