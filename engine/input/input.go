// Package input converts key names into engine commands.
// Key names follow Bubble Tea's KeyMsg.String() vocabulary ("up", "pgdown",
// "esc", "k", "5", ...). Each engine mode has its own decoder.
package input

// Kind identifies a decoded command.
type Kind int

const (
	None Kind = iota
	Move
	PickupOrWait
	OpenInventoryUse
	OpenInventoryDrop
	OpenLog
	Confirm
	Cancel
	ScrollLog
	LogTop
	LogBottom
)

// Command is one decoded key press.
type Command struct {
	Kind Kind
	// DX, DY are the step for Move.
	DX, DY int
	// Index is the item slot for Confirm.
	Index int
	// Amount is the cursor delta for ScrollLog.
	Amount int
}

type step struct{ dx, dy int }

var moveKeys = map[string]step{
	// Arrows and the navigation cluster.
	"up":     {0, -1},
	"down":   {0, 1},
	"left":   {-1, 0},
	"right":  {1, 0},
	"home":   {-1, -1},
	"end":    {-1, 1},
	"pgup":   {1, -1},
	"pgdown": {1, 1},

	// Numpad / digits.
	"1": {-1, 1},
	"2": {0, 1},
	"3": {1, 1},
	"4": {-1, 0},
	"6": {1, 0},
	"7": {-1, -1},
	"8": {0, -1},
	"9": {1, -1},

	// Vi keys.
	"h": {-1, 0},
	"j": {0, 1},
	"k": {0, -1},
	"l": {1, 0},
	"y": {-1, -1},
	"u": {1, -1},
	"b": {-1, 1},
	"n": {1, 1},
}

var gameKeys = map[string]Kind{
	"g": PickupOrWait,
	",": PickupOrWait,
	".": PickupOrWait,
	"5": PickupOrWait,
	"i": OpenInventoryUse,
	"d": OpenInventoryDrop,
	"v": OpenLog,
}

// DecodeGame decodes a key pressed while playing.
func DecodeGame(key string) Command {
	if s, ok := moveKeys[key]; ok {
		return Command{Kind: Move, DX: s.dx, DY: s.dy}
	}
	if k, ok := gameKeys[key]; ok {
		return Command{Kind: k}
	}
	return Command{}
}

// DecodeSelect decodes a key pressed while choosing an inventory slot.
// Letters a..z confirm slots 0..25.
func DecodeSelect(key string) Command {
	if key == "esc" {
		return Command{Kind: Cancel}
	}
	if len(key) == 1 && key[0] >= 'a' && key[0] <= 'z' {
		return Command{Kind: Confirm, Index: int(key[0] - 'a')}
	}
	return Command{}
}

var logKeys = map[string]Command{
	"up":     {Kind: ScrollLog, Amount: -1},
	"k":      {Kind: ScrollLog, Amount: -1},
	"down":   {Kind: ScrollLog, Amount: 1},
	"j":      {Kind: ScrollLog, Amount: 1},
	"pgup":   {Kind: ScrollLog, Amount: -10},
	"pgdown": {Kind: ScrollLog, Amount: 10},
	"home":   {Kind: LogTop},
	"end":    {Kind: LogBottom},
	"esc":    {Kind: Cancel},
	"v":      {Kind: Cancel},
}

// DecodeLog decodes a key pressed while viewing the message history.
func DecodeLog(key string) Command {
	return logKeys[key]
}

// SlotKey returns the letter that selects inventory slot i.
func SlotKey(i int) string {
	if i < 0 || i > 25 {
		return "?"
	}
	return string(rune('a' + i))
}
