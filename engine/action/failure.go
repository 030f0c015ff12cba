package action

import (
	"errors"

	"github.com/nathoo/roguecore/types"
)

// Kind classifies why an action failed.
type Kind int

const (
	// KindInvalid is a user-facing refusal, e.g. walking into a wall.
	KindInvalid Kind = iota
	// KindImpossible is a user-facing refusal in a softer tone.
	KindImpossible
	// KindInventoryFull is a pickup with no free slot.
	KindInventoryFull
	// KindActorFailure wraps a failed AI action. Never shown to the player.
	KindActorFailure
	// KindCapacityViolation is a broken internal invariant. Fatal.
	KindCapacityViolation
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid_action"
	case KindImpossible:
		return "impossible_action"
	case KindInventoryFull:
		return "inventory_full"
	case KindActorFailure:
		return "actor_action_failure"
	case KindCapacityViolation:
		return "capacity_violation"
	default:
		return "unknown"
	}
}

// Failure is returned by Perform when an action was rejected. A rejected
// action has changed no state.
type Failure struct {
	Kind   Kind
	Reason string
	Err    error
}

func (f *Failure) Error() string {
	if f.Err != nil {
		return f.Reason + ": " + f.Err.Error()
	}
	return f.Reason
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Color is the message-log colour for reporting the failure.
func (f *Failure) Color() types.Color {
	switch f.Kind {
	case KindInvalid:
		return types.Invalid
	case KindImpossible, KindInventoryFull:
		return types.Impossible
	default:
		return types.Error
	}
}

func invalid(reason string) *Failure {
	return &Failure{Kind: KindInvalid, Reason: reason}
}

func impossible(reason string) *Failure {
	return &Failure{Kind: KindImpossible, Reason: reason}
}

// IsFatal reports whether err carries a capacity violation.
func IsFatal(err error) bool {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind == KindCapacityViolation
	}
	return false
}
