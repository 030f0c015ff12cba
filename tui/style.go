package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/roguecore/types"
)

// Tile colours for the three visibility tiers.
const (
	lightWall  types.Color = "#826e32"
	lightFloor types.Color = "#c8b432"
	darkWall   types.Color = "#000064"
	darkFloor  types.Color = "#323296"
	unseen     types.Color = "#000000"
)

// styleCache memoises one lipgloss style per colour pair.
type styleCache map[[2]types.Color]lipgloss.Style

func (c styleCache) get(fg, bg types.Color) lipgloss.Style {
	k := [2]types.Color{fg, bg}
	if s, ok := c[k]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(string(fg))).
		Background(lipgloss.Color(string(bg)))
	c[k] = s
	return s
}

var styleFatal = lipgloss.NewStyle().
	Foreground(lipgloss.Color(string(types.Error))).
	Bold(true)
