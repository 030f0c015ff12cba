// Package cli provides a line-oriented front end for the roguecore engine.
// Each input line is one key name as the TUI would report it ("up", "g",
// "esc", ...); new log messages are printed after every step. It serves
// script playback and terminals without cursor control.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nathoo/roguecore/engine"
	"github.com/nathoo/roguecore/engine/input"
	"github.com/nathoo/roguecore/types"
)

// CLI handles line-based interaction with the player.
type CLI struct {
	Engine    *engine.Engine
	In        io.Reader
	Out       io.Writer
	Trace     bool
	EchoInput bool // echo each input line after the prompt (for script playback)

	lastCmd   string // for "again"
	seenLen   int    // log length already printed
	seenCount int    // repeat count of the last printed message
}

// New creates a CLI wired to the given engine.
func New(eng *engine.Engine) *CLI {
	return &CLI{
		Engine: eng,
		In:     os.Stdin,
		Out:    os.Stdout,
	}
}

// Run prints the opening messages, then loops: prompt, key, step, output.
// It returns when input ends, on /quit, or with a fatal engine error.
func (c *CLI) Run() error {
	c.printNewMessages()

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			c.printLine("")
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(line)
		}

		if strings.HasPrefix(line, "/") {
			if c.handleMeta(line) {
				return nil
			}
			continue
		}

		if strings.ToLower(line) == "again" {
			if c.lastCmd == "" {
				c.printSystem("Nothing to repeat.")
				continue
			}
			line = c.lastCmd
		} else {
			c.lastCmd = line
		}

		result, err := c.Engine.Step(line)
		if err != nil {
			return fmt.Errorf("step %q: %w", line, err)
		}
		c.printNewMessages()
		if c.Trace {
			c.printSystem(fmt.Sprintf("trace: turn_taken=%t mode=%s", result.TurnTaken, result.Mode))
		}
		if result.Mode == types.ModeGameOver && result.TurnTaken {
			c.printSystem("Game over. Type v to read the log or /quit to exit.")
		}
	}
}

// handleMeta dispatches meta-commands. Returns true if the game should exit.
func (c *CLI) handleMeta(line string) bool {
	switch strings.Fields(line)[0] {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true
	case "/help":
		c.cmdHelp()
	case "/status":
		c.cmdStatus()
	case "/map":
		c.cmdMap()
	case "/trace":
		c.Trace = !c.Trace
		if c.Trace {
			c.printSystem("Trace output enabled.")
		} else {
			c.printSystem("Trace output disabled.")
		}
	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", line))
	}
	return false
}

func (c *CLI) cmdHelp() {
	help := []string{
		"System:",
		"  /quit    Exit game",
		"  /help    Show this help",
		"  /status  Show health, position, mode and inventory",
		"  /map     Print the explored map",
		"  /trace   Toggle step trace output",
		"",
		"Keys (one per line):",
		"  up down left right, h j k l y u b n, 1-9   Move or attack",
		"  g , . 5    Pick up, or wait when nothing is here",
		"  i / d      Use / drop an item, then a-z to choose, esc to cancel",
		"  v          Message history (up/down/pgup/pgdown/home/end, esc)",
		"  again      Repeat the last key",
	}
	for _, line := range help {
		c.printLine(line)
	}
}

func (c *CLI) cmdStatus() {
	p := c.Engine.Player
	c.printSystem(fmt.Sprintf("HP: %d/%d", p.Fighter.HP(), p.Fighter.MaxHP))
	c.printSystem(fmt.Sprintf("Position: %d,%d", p.X, p.Y))
	c.printSystem(fmt.Sprintf("Mode: %s", c.Engine.Mode()))

	items := p.Inventory.Items()
	if len(items) == 0 {
		c.printSystem("Inventory: (Empty)")
		return
	}
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = fmt.Sprintf("(%s) %s", input.SlotKey(i), it.Name)
	}
	c.printSystem("Inventory: " + strings.Join(names, ", "))
}

// cmdMap prints explored tiles as '#' and '.', with entities drawn on the
// tiles currently in view.
func (c *CLI) cmdMap() {
	m := c.Engine.Map
	rows := make([][]rune, m.Height)
	for y := range rows {
		rows[y] = make([]rune, m.Width)
		for x := range rows[y] {
			switch {
			case !m.IsExplored(x, y):
				rows[y][x] = ' '
			case m.Tile(x, y).Walkable:
				rows[y][x] = '.'
			default:
				rows[y][x] = '#'
			}
		}
	}
	for _, order := range []types.RenderOrder{types.RenderCorpse, types.RenderItem, types.RenderActor} {
		for _, t := range m.Entities() {
			e := t.Base()
			if e.RenderOrder != order || !m.IsVisible(e.X, e.Y) {
				continue
			}
			if r := []rune(e.Char); len(r) > 0 {
				rows[e.Y][e.X] = r[0]
			}
		}
	}
	for _, row := range rows {
		c.printLine(strings.TrimRight(string(row), " "))
	}
}

// printNewMessages prints messages added since the last call, and
// reprints the last message when it stacked.
func (c *CLI) printNewMessages() {
	msgs := c.Engine.Log.Messages()
	start := c.seenLen
	if start > 0 && start <= len(msgs) && msgs[start-1].Count != c.seenCount {
		start--
	}
	for _, m := range msgs[start:] {
		c.printLine(m.FullText())
	}
	c.seenLen = len(msgs)
	if len(msgs) > 0 {
		c.seenCount = msgs[len(msgs)-1].Count
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
