package tui

import (
	"fmt"

	"github.com/nathoo/roguecore/engine/input"
	"github.com/nathoo/roguecore/engine/world"
	"github.com/nathoo/roguecore/types"
)

// renderHistory draws the scrollable message history. Messages up to and
// including cursor are shown, the cursor message at the bottom.
func (m Model) renderHistory(g *grid) {
	const x, y, w, h = 3, 3, 74, 38
	g.frame(x, y, w, h, "Message History")
	msgs := m.engine.Log.Messages()
	if len(msgs) == 0 {
		return
	}
	cursor := min(m.engine.LogCursor(), len(msgs)-1)
	renderMessages(g, x+1, y+1, w-2, h-2, msgs[:cursor+1])
}

// renderInventory draws the item picker on the side away from the player.
func renderInventory(g *grid, player *world.Actor, title string) {
	items := player.Inventory.Items()
	height := max(len(items)+2, 3)
	width := len(title) + 4
	x := 0
	if player.X <= 30 {
		x = 40
	}
	const y = 0

	for _, it := range items {
		width = max(width, len(it.Name)+6)
	}

	g.frame(x, y, width, height, title)
	if len(items) == 0 {
		g.text(x+1, y+1, "(Empty)", types.White, types.Black)
		return
	}
	for i, it := range items {
		g.text(x+1, y+i+1, fmt.Sprintf("(%s) %s", input.SlotKey(i), it.Name), types.White, types.Black)
	}
}
