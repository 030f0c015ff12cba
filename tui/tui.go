// Package tui provides a Bubble Tea terminal front end for the roguecore
// engine: it forwards key presses to engine.Step and paints the world as an
// 80×50 character grid.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/roguecore/engine"
	"github.com/nathoo/roguecore/types"
)

type keyMap struct {
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// Model is the Bubble Tea model for the game screen.
type Model struct {
	engine *engine.Engine
	keys   keyMap
	styles styleCache

	mouseX, mouseY int
	width, height  int

	err      error
	quitting bool
}

// New creates a TUI model wired to the given engine.
func New(eng *engine.Engine) Model {
	return Model{
		engine: eng,
		keys:   defaultKeyMap(),
		styles: styleCache{},
		mouseX: -1,
		mouseY: -1,
	}
}

// Run starts the Bubble Tea program and blocks until the player quits.
// A fatal engine error ends the program and is returned.
func Run(eng *engine.Engine) error {
	p := tea.NewProgram(New(eng), tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses, mouse motion, and resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.MouseMsg:
		m.mouseX, m.mouseY = msg.X, msg.Y

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		if _, err := m.engine.Step(msg.String()); err != nil {
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View paints the whole screen.
func (m Model) View() string {
	if m.quitting {
		if m.err != nil {
			return styleFatal.Render(m.err.Error()) + "\n"
		}
		return ""
	}
	return m.paint().render(m.styles)
}

// paint draws the current frame into a fresh grid.
func (m Model) paint() *grid {
	g := newGrid(engine.ScreenWidth, engine.ScreenHeight)
	e := m.engine

	m.renderMap(g)

	p := e.Player
	renderHealthBar(g, p.Fighter.HP(), p.Fighter.MaxHP)
	g.text(namesX, namesY, namesAt(e.Map, m.mouseX, m.mouseY), types.White, types.Black)
	renderMessages(g, logX, logY, logWidth, logHeight, e.Log.Messages())

	switch e.Mode() {
	case types.ModeViewingLog:
		m.renderHistory(g)
	case types.ModeSelectingItemToUse:
		renderInventory(g, p, "Select an item to use")
	case types.ModeSelectingItemToDrop:
		renderInventory(g, p, "Select an item to drop")
	}
	return g
}

// renderMap draws tiles in their visibility tier, then visible entities
// in render order.
func (m Model) renderMap(g *grid) {
	gm := m.engine.Map
	for y := 0; y < gm.Height; y++ {
		for x := 0; x < gm.Width; x++ {
			wall := !gm.Tile(x, y).Walkable
			var bg types.Color
			switch {
			case gm.IsVisible(x, y) && wall:
				bg = lightWall
			case gm.IsVisible(x, y):
				bg = lightFloor
			case gm.IsExplored(x, y) && wall:
				bg = darkWall
			case gm.IsExplored(x, y):
				bg = darkFloor
			default:
				bg = unseen
			}
			g.set(x, y, ' ', types.White, bg)
		}
	}

	for _, ent := range sortedForRender(gm) {
		if !gm.IsVisible(ent.X, ent.Y) {
			continue
		}
		r := []rune(ent.Char)
		if len(r) == 0 {
			continue
		}
		g.set(ent.X, ent.Y, r[0], ent.FG, g.at(ent.X, ent.Y).bg)
	}
}
