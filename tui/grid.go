package tui

import (
	"strings"

	"github.com/nathoo/roguecore/types"
)

// cell is one character of the screen.
type cell struct {
	ch     rune
	fg, bg types.Color
}

// grid is a fixed-size character buffer painted back to front.
type grid struct {
	w, h  int
	cells []cell
}

func newGrid(w, h int) *grid {
	g := &grid{w: w, h: h, cells: make([]cell, w*h)}
	for i := range g.cells {
		g.cells[i] = cell{ch: ' ', fg: types.White, bg: types.Black}
	}
	return g
}

func (g *grid) at(x, y int) cell {
	return g.cells[y*g.w+x]
}

func (g *grid) set(x, y int, ch rune, fg, bg types.Color) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.cells[y*g.w+x] = cell{ch: ch, fg: fg, bg: bg}
}

// text writes s left to right from (x, y), clipped at the right edge.
func (g *grid) text(x, y int, s string, fg, bg types.Color) {
	for _, r := range s {
		g.set(x, y, r, fg, bg)
		x++
	}
}

// fill paints a w×h block of spaces in bg.
func (g *grid) fill(x, y, w, h int, bg types.Color) {
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			g.set(i, j, ' ', types.White, bg)
		}
	}
}

// frame draws a box with title centred on its top edge and clears its
// interior.
func (g *grid) frame(x, y, w, h int, title string) {
	g.fill(x, y, w, h, types.Black)
	for i := x + 1; i < x+w-1; i++ {
		g.set(i, y, '─', types.White, types.Black)
		g.set(i, y+h-1, '─', types.White, types.Black)
	}
	for j := y + 1; j < y+h-1; j++ {
		g.set(x, j, '│', types.White, types.Black)
		g.set(x+w-1, j, '│', types.White, types.Black)
	}
	g.set(x, y, '┌', types.White, types.Black)
	g.set(x+w-1, y, '┐', types.White, types.Black)
	g.set(x, y+h-1, '└', types.White, types.Black)
	g.set(x+w-1, y+h-1, '┘', types.White, types.Black)

	if title != "" {
		label := " " + title + " "
		tx := x + (w-len(label))/2
		g.text(tx, y, label, types.Black, types.White)
	}
}

// row returns line y as plain characters.
func (g *grid) row(y int) string {
	var b strings.Builder
	for x := 0; x < g.w; x++ {
		b.WriteRune(g.at(x, y).ch)
	}
	return b.String()
}

// render styles each run of same-coloured cells once.
func (g *grid) render(styles styleCache) string {
	var out strings.Builder
	for y := 0; y < g.h; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		var run strings.Builder
		cur := g.at(0, y)
		for x := 0; x < g.w; x++ {
			c := g.at(x, y)
			if c.fg != cur.fg || c.bg != cur.bg {
				out.WriteString(styles.get(cur.fg, cur.bg).Render(run.String()))
				run.Reset()
				cur = c
			}
			run.WriteRune(c.ch)
		}
		out.WriteString(styles.get(cur.fg, cur.bg).Render(run.String()))
	}
	return out.String()
}
