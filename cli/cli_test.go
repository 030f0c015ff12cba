package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/nathoo/roguecore/engine"
	"github.com/nathoo/roguecore/engine/world"
)

// testEngine builds a 10×10 room with the player at (2,2), an orc at (6,2)
// and a potion under the player.
func testEngine(t *testing.T) *engine.Engine {
	t.Helper()
	m := world.NewMap(10, 10)
	for y := 1; y < 9; y++ {
		for x := 1; x < 9; x++ {
			m.SetTile(x, y, world.Floor)
		}
	}
	p := world.NewPlayer(0, 0, world.NewFighter(30, 2, 5), world.NewInventory(26))
	m.Place(p, 2, 2)
	m.Place(world.NewItem(0, 0, "!", "#7F00FF", "Health Potion", world.NewHealing(4)), 2, 2)
	m.Place(world.NewActor(0, 0, "o", "#3f7f3f", "Orc", world.NewHostile(),
		world.NewFighter(10, 0, 3), world.NewInventory(0)), 6, 2)

	e, err := engine.New(m, p, nil)
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	return e
}

func newTestCLI(t *testing.T, input string) (*CLI, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	c := &CLI{
		Engine: testEngine(t),
		In:     strings.NewReader(input),
		Out:    &out,
	}
	return c, &out
}

func run(t *testing.T, c *CLI) {
	t.Helper()
	if err := c.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
}

func TestCLI_WelcomeMessage(t *testing.T) {
	c, out := newTestCLI(t, "/quit\n")
	run(t, c)

	if !strings.Contains(out.String(), engine.WelcomeMessage) {
		t.Error("expected welcome message in output")
	}
}

func TestCLI_PickupPrintsMessage(t *testing.T) {
	c, out := newTestCLI(t, "g\n/quit\n")
	run(t, c)

	if !strings.Contains(out.String(), "You picked up the Health Potion!") {
		t.Errorf("output missing pickup message:\n%s", out.String())
	}
	if c.Engine.Player.Inventory.Len() != 1 {
		t.Error("potion not in inventory")
	}
}

func TestCLI_BlockedMoveStacks(t *testing.T) {
	c, out := newTestCLI(t, "left\nleft\nleft\n/quit\n")
	run(t, c)

	// The player walks once, then bumps the wall twice.
	output := out.String()
	if !strings.Contains(output, "That way is blocked.\n") {
		t.Errorf("expected blocked message:\n%s", output)
	}
	if !strings.Contains(output, "That way is blocked. (x2)") {
		t.Errorf("expected stacked message:\n%s", output)
	}
}

func TestCLI_Again(t *testing.T) {
	c, out := newTestCLI(t, "again\nright\nagain\n/quit\n")
	run(t, c)

	if !strings.Contains(out.String(), "Nothing to repeat.") {
		t.Error("expected nothing-to-repeat message")
	}
	if c.Engine.Player.X != 4 {
		t.Errorf("player x = %d, want 4", c.Engine.Player.X)
	}
}

func TestCLI_CommentsAndBlankLinesSkipped(t *testing.T) {
	c, _ := newTestCLI(t, "# walk east\n\nright\n/quit\n")
	run(t, c)

	if c.Engine.Player.X != 3 {
		t.Errorf("player x = %d, want 3", c.Engine.Player.X)
	}
}

func TestCLI_HelpCommand(t *testing.T) {
	c, out := newTestCLI(t, "/help\n/quit\n")
	run(t, c)

	for _, want := range []string{"/quit", "/status", "/map", "esc"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected %q in help output", want)
		}
	}
}

func TestCLI_StatusCommand(t *testing.T) {
	c, out := newTestCLI(t, "g\n/status\n/quit\n")
	run(t, c)

	output := out.String()
	for _, want := range []string{"[HP: 30/30]", "[Position: 2,2]", "[Mode: playing]", "(a) Health Potion"} {
		if !strings.Contains(output, want) {
			t.Errorf("status output missing %q:\n%s", want, output)
		}
	}
}

func TestCLI_MapCommand(t *testing.T) {
	c, out := newTestCLI(t, "/map\n/quit\n")
	run(t, c)

	lines := strings.Split(out.String(), "\n")
	var found bool
	for _, l := range lines {
		if strings.HasPrefix(l, "#.@...o..#") {
			found = true
		}
	}
	if !found {
		t.Errorf("map row with player and orc not found:\n%s", out.String())
	}
}

func TestCLI_TraceToggle(t *testing.T) {
	c, out := newTestCLI(t, "/trace\n5\n/trace\n/quit\n")
	run(t, c)

	output := out.String()
	if !strings.Contains(output, "Trace output enabled") || !strings.Contains(output, "Trace output disabled") {
		t.Error("expected trace toggle messages")
	}
	if !strings.Contains(output, "trace: turn_taken=true mode=playing") {
		t.Errorf("expected trace line:\n%s", output)
	}
}

func TestCLI_UnknownMetaCommand(t *testing.T) {
	c, out := newTestCLI(t, "/bogus\n/quit\n")
	run(t, c)

	if !strings.Contains(out.String(), "Unknown command") {
		t.Error("expected unknown command message")
	}
}

func TestCLI_EndOfInput(t *testing.T) {
	c, _ := newTestCLI(t, "5\n")
	run(t, c)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("boom")
}

func TestCLI_ReadErrorReturned(t *testing.T) {
	c, _ := newTestCLI(t, "")
	c.In = failingReader{}
	if err := c.Run(); err == nil {
		t.Fatal("expected read error")
	}
}
