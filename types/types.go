// Package types defines the shared data structures for the roguecore engine.
// This package holds type definitions and constants only; no game logic.
package types

// Color is a "#rrggbb" hex colour string.
type Color string

// Palette used by messages and the renderer.
const (
	White           Color = "#ffffff"
	Black           Color = "#000000"
	PlayerAttack    Color = "#e0e0e0"
	EnemyAttack     Color = "#ffc0c0"
	PlayerDie       Color = "#ff3030"
	EnemyDie        Color = "#ffa030"
	WelcomeText     Color = "#20a0ff"
	BarFilled       Color = "#006000"
	BarEmpty        Color = "#401010"
	Invalid         Color = "#ffff00"
	Impossible      Color = "#808080"
	Error           Color = "#ff4040"
	HealthRecovered Color = "#00ff00"
	Corpse          Color = "#bf0000"
)

// RenderOrder is the draw tier of an entity. Lower tiers are drawn first,
// so an actor standing on an item hides it.
type RenderOrder int

const (
	RenderCorpse RenderOrder = iota
	RenderItem
	RenderActor
)

// Point is a tile coordinate.
type Point struct {
	X, Y int
}

// Mode is the top-level state of the turn engine.
type Mode int

const (
	ModePlaying Mode = iota
	ModeViewingLog
	ModeSelectingItemToUse
	ModeSelectingItemToDrop
	ModeGameOver
)

// String returns a short label for the mode.
func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "playing"
	case ModeViewingLog:
		return "viewing_log"
	case ModeSelectingItemToUse:
		return "selecting_use"
	case ModeSelectingItemToDrop:
		return "selecting_drop"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Result is the outcome of a single engine step.
type Result struct {
	// TurnTaken is true when the player's action was performed and the
	// enemy phase ran.
	TurnTaken bool
	// Failure is the reason the player's action was rejected, if any.
	Failure error
	// Mode is the engine mode after the step.
	Mode Mode
}
