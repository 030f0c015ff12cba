package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nathoo/roguecore/engine/msglog"
	"github.com/nathoo/roguecore/engine/world"
	"github.com/nathoo/roguecore/types"
)

// Bottom panel layout, below the 43-row map.
const (
	barX, barY, barWidth = 0, 45, 20
	namesX, namesY       = 21, 44
	logX, logY           = 21, 45
	logWidth, logHeight  = 40, 5
)

// renderHealthBar draws "HP: n/max" over a filled/empty bar.
func renderHealthBar(g *grid, hp, maxHP int) {
	filled := 0
	if maxHP > 0 {
		filled = hp * barWidth / maxHP
	}
	g.fill(barX, barY, barWidth, 1, types.BarEmpty)
	if filled > 0 {
		g.fill(barX, barY, filled, 1, types.BarFilled)
	}
	label := fmt.Sprintf("HP: %d/%d", hp, maxHP)
	for i, r := range label {
		bg := g.at(barX+1+i, barY).bg
		g.set(barX+1+i, barY, r, types.White, bg)
	}
}

// namesAt lists the entities on a visible tile, comma separated and
// capitalised.
func namesAt(m *world.Map, x, y int) string {
	if !m.InBounds(x, y) || !m.IsVisible(x, y) {
		return ""
	}
	var names []string
	for _, t := range m.Entities() {
		e := t.Base()
		if e.X == x && e.Y == y {
			names = append(names, e.Name)
		}
	}
	s := strings.Join(names, ", ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// renderMessages paints msgs into the w×h box at (x, y), newest at the
// bottom, wrapping long messages and dropping whatever scrolls off the top.
func renderMessages(g *grid, x, y, w, h int, msgs []msglog.Message) {
	yOff := h - 1
	for i := len(msgs) - 1; i >= 0 && yOff >= 0; i-- {
		lines := strings.Split(wordWrap(msgs[i].FullText(), w), "\n")
		for j := len(lines) - 1; j >= 0 && yOff >= 0; j-- {
			g.text(x, y+yOff, lines[j], msgs[i].FG, types.Black)
			yOff--
		}
	}
}

// wordWrap wraps text to fit within width, breaking at word boundaries.
func wordWrap(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}

	var result strings.Builder
	lineLen := 0
	for i, word := range strings.Fields(text) {
		wLen := len(word)
		if i == 0 {
			result.WriteString(word)
			lineLen = wLen
			continue
		}
		if lineLen+1+wLen > width {
			result.WriteString("\n")
			result.WriteString(word)
			lineLen = wLen
		} else {
			result.WriteString(" ")
			result.WriteString(word)
			lineLen += 1 + wLen
		}
	}
	return result.String()
}

// sortedForRender returns the map's entities ordered corpse, item, actor.
// The sort is stable so equal tiers keep collection order.
func sortedForRender(m *world.Map) []*world.Entity {
	things := m.Entities()
	out := make([]*world.Entity, len(things))
	for i, t := range things {
		out[i] = t.Base()
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RenderOrder < out[j].RenderOrder
	})
	return out
}
