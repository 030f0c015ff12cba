package engine

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/nathoo/roguecore/engine/msglog"
	"github.com/nathoo/roguecore/engine/world"
	"github.com/nathoo/roguecore/loader"
	"github.com/nathoo/roguecore/types"
)

// testMap returns a w×h map with walls on the border and floor inside.
func testMap(w, h int) *world.Map {
	m := world.NewMap(w, h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			m.SetTile(x, y, world.Floor)
		}
	}
	return m
}

func newPlayer() *world.Actor {
	return world.NewPlayer(0, 0, world.NewFighter(30, 2, 5), world.NewInventory(26))
}

func newOrc() *world.Actor {
	return world.NewActor(0, 0, "o", "#3f7f3f", "Orc", world.NewHostile(),
		world.NewFighter(10, 0, 3), world.NewInventory(0))
}

func newPotion() *world.Item {
	return world.NewItem(0, 0, "!", "#7F00FF", "Health Potion", world.NewHealing(4))
}

// testEngine builds a 10×10 room with the player at (2,2).
func testEngine(t *testing.T) (*Engine, *test.Hook) {
	t.Helper()
	m := testMap(10, 10)
	p := newPlayer()
	m.Place(p, 2, 2)

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	e, err := New(m, p, logrus.NewEntry(logger))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return e, hook
}

func step(t *testing.T, e *Engine, keys ...string) types.Result {
	t.Helper()
	var r types.Result
	for _, k := range keys {
		var err error
		r, err = e.Step(k)
		if err != nil {
			t.Fatalf("Step(%q) failed: %v", k, err)
		}
	}
	return r
}

func lastMessage(e *Engine) msglog.Message {
	tail := e.Log.Tail(1)
	if len(tail) == 0 {
		return msglog.Message{}
	}
	return tail[0]
}

func countMessages(e *Engine, substr string) int {
	n := 0
	for _, m := range e.Log.Messages() {
		if strings.Contains(m.Text, substr) {
			n++
		}
	}
	return n
}

func TestNew_WelcomeAndFOV(t *testing.T) {
	e, _ := testEngine(t)

	if e.Mode() != types.ModePlaying {
		t.Errorf("mode = %v, want playing", e.Mode())
	}
	msg := lastMessage(e)
	if msg.Text != WelcomeMessage || msg.FG != types.WelcomeText {
		t.Errorf("first message = %+v", msg)
	}
	if !e.Map.IsVisible(2, 2) || !e.Map.IsVisible(5, 5) {
		t.Error("FOV not computed for the starting position")
	}
}

func TestNew_RejectsBadPlayer(t *testing.T) {
	m := testMap(10, 10)
	p := newPlayer()
	if _, err := New(m, p, nil); err != ErrNoPlayer {
		t.Errorf("unplaced player: err = %v, want ErrNoPlayer", err)
	}

	m.Place(p, 2, 2)
	m.Place(newPlayer(), 3, 3)
	if _, err := New(m, p, nil); err == nil {
		t.Error("expected error for a second player actor")
	}

	orc := newOrc()
	m2 := testMap(10, 10)
	m2.Place(orc, 2, 2)
	if _, err := New(m2, orc, nil); err != ErrNoPlayer {
		t.Errorf("non-player actor: err = %v, want ErrNoPlayer", err)
	}
}

func TestStep_BlockedMoveSkipsEnemyPhase(t *testing.T) {
	e, _ := testEngine(t)
	e.Map.Place(e.Player, 1, 1)
	orc := newOrc()
	e.Map.Place(orc, 2, 1)

	r := step(t, e, "up")

	if r.TurnTaken {
		t.Error("blocked move should not take a turn")
	}
	if r.Failure == nil {
		t.Fatal("expected a failure")
	}
	msg := lastMessage(e)
	if msg.Text != "That way is blocked." || msg.FG != types.Invalid {
		t.Errorf("message = %+v", msg)
	}
	if e.Player.Fighter.HP() != 30 {
		t.Errorf("orc acted after a failed action: player hp = %d", e.Player.Fighter.HP())
	}
	if e.Player.Pos() != (types.Point{X: 1, Y: 1}) {
		t.Errorf("player moved to %v", e.Player.Pos())
	}
}

func TestStep_MoveThenEnemyAttacks(t *testing.T) {
	e, _ := testEngine(t)
	orc := newOrc()
	e.Map.Place(orc, 4, 2)

	r := step(t, e, "right")

	if !r.TurnTaken {
		t.Fatal("move should take a turn")
	}
	if e.Player.Pos() != (types.Point{X: 3, Y: 2}) {
		t.Errorf("player at %v, want (3,2)", e.Player.Pos())
	}
	// Orc power 3 against player defense 2.
	if e.Player.Fighter.HP() != 29 {
		t.Errorf("player hp = %d, want 29", e.Player.Fighter.HP())
	}
	msg := lastMessage(e)
	if msg.Text != "ORC attacks Player for 1 hit points." || msg.FG != types.EnemyAttack {
		t.Errorf("message = %+v", msg)
	}
}

func TestStep_KillOrc(t *testing.T) {
	e, _ := testEngine(t)
	orc := newOrc()
	e.Map.Place(orc, 3, 2)

	step(t, e, "right")
	if orc.Fighter.HP() != 5 {
		t.Fatalf("orc hp = %d, want 5", orc.Fighter.HP())
	}
	if countMessages(e, "PLAYER attacks Orc for 5 hit points.") != 1 {
		t.Error("missing player attack message")
	}
	if !orc.IsAlive() {
		t.Fatal("orc died early")
	}

	step(t, e, "right")
	if orc.Fighter.HP() != 0 || orc.IsAlive() {
		t.Fatalf("orc not dead: hp %d", orc.Fighter.HP())
	}
	if orc.Char != "%" || orc.Name != "Remains of Orc" || orc.AI != nil {
		t.Errorf("corpse = %q %q ai %v", orc.Char, orc.Name, orc.AI)
	}
	msg := lastMessage(e)
	if msg.Text != "Orc is dead!" || msg.FG != types.EnemyDie {
		t.Errorf("message = %+v", msg)
	}
	// One retaliation after the first blow, none after death.
	if e.Player.Fighter.HP() != 29 {
		t.Errorf("player hp = %d, want 29", e.Player.Fighter.HP())
	}
}

func TestStep_FailingActorDoesNotBlockNext(t *testing.T) {
	// A one-tile corridor: player at x=1, B at x=3, A at x=4.
	m := world.NewMap(8, 5)
	for x := 1; x <= 6; x++ {
		m.SetTile(x, 2, world.Floor)
	}
	p := newPlayer()
	m.Place(p, 1, 2)
	a, b := newOrc(), newOrc()
	a.Name, b.Name = "A", "B"
	m.Place(a, 4, 2) // A enumerates before B
	m.Place(b, 3, 2)

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	e, err := New(m, p, logrus.NewEntry(logger))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	r := step(t, e, "5")
	if !r.TurnTaken {
		t.Fatal("wait should take a turn")
	}
	if a.Pos() != (types.Point{X: 4, Y: 2}) {
		t.Errorf("A moved to %v through B", a.Pos())
	}
	if b.Pos() != (types.Point{X: 2, Y: 2}) {
		t.Errorf("B at %v, want (2,2)", b.Pos())
	}

	var found bool
	for _, entry := range hook.AllEntries() {
		if entry.Message == "AI action failed." && entry.Data["actor"] == "A" {
			found = true
		}
	}
	if !found {
		t.Error("A's failure was not logged")
	}
	if countMessages(e, "blocked") != 0 {
		t.Error("AI failure leaked into the message log")
	}
}

func TestStep_DeadPlayerIgnoresInput(t *testing.T) {
	e, _ := testEngine(t)
	orc := newOrc()
	e.Map.Place(orc, 3, 2)
	e.Player.Fighter.SetHP(0, e.Log)

	r := step(t, e, "left")
	if r.TurnTaken || r.Mode != types.ModeGameOver {
		t.Errorf("result = %+v, want game over without a turn", r)
	}
	if e.Player.Pos() != (types.Point{X: 2, Y: 2}) {
		t.Error("dead player moved")
	}

	step(t, e, "g", "5", "i", "d")
	if e.Mode() != types.ModeGameOver {
		t.Errorf("mode = %v, want game over", e.Mode())
	}
	if countMessages(e, "ORC attacks") != 0 {
		t.Error("orc acted against a dead player")
	}

	step(t, e, "v")
	if e.Mode() != types.ModeViewingLog {
		t.Fatalf("mode = %v, want viewing log", e.Mode())
	}
	step(t, e, "esc")
	if e.Mode() != types.ModeGameOver {
		t.Errorf("mode after closing log = %v, want game over", e.Mode())
	}
}

func TestStep_EnemyPhaseStopsWhenPlayerDies(t *testing.T) {
	e, _ := testEngine(t)
	e.Player.Fighter.SetHP(1, e.Log)
	e.Map.Place(newOrc(), 3, 2)
	e.Map.Place(newOrc(), 2, 3)

	r := step(t, e, "5")

	if e.Player.Fighter.HP() != 0 {
		t.Fatalf("player hp = %d, want 0", e.Player.Fighter.HP())
	}
	if n := countMessages(e, "ORC attacks Player"); n != 1 {
		t.Errorf("%d orc attacks, want 1", n)
	}
	if countMessages(e, "You died!") != 1 {
		t.Error("missing death message")
	}
	if r.Mode != types.ModeGameOver {
		t.Errorf("mode = %v, want game over", r.Mode)
	}
}

func TestStep_PickupOrWait(t *testing.T) {
	e, _ := testEngine(t)
	potion := newPotion()
	e.Map.Place(potion, 2, 2)

	r := step(t, e, "g")
	if !r.TurnTaken || r.Failure != nil {
		t.Fatalf("pickup result = %+v", r)
	}
	if len(e.Map.Items()) != 0 || e.Player.Inventory.Len() != 1 {
		t.Error("potion not moved into inventory")
	}
	if lastMessage(e).Text != "You picked up the Health Potion!" {
		t.Errorf("message = %q", lastMessage(e).Text)
	}

	before := e.Log.Len()
	r = step(t, e, "g")
	if !r.TurnTaken || r.Failure != nil {
		t.Errorf("nothing underfoot should wait: %+v", r)
	}
	if e.Log.Len() != before {
		t.Error("waiting logged a message")
	}
}

func TestStep_PickupInventoryFull(t *testing.T) {
	m := testMap(10, 10)
	p := world.NewPlayer(0, 0, world.NewFighter(30, 2, 5), world.NewInventory(0))
	m.Place(p, 2, 2)
	m.Place(newPotion(), 2, 2)
	e, err := New(m, p, nil)
	if err != nil {
		t.Fatal(err)
	}

	r := step(t, e, ",")
	if r.TurnTaken || r.Failure == nil {
		t.Fatalf("result = %+v, want failure", r)
	}
	msg := lastMessage(e)
	if msg.Text != "Your inventory is full." || msg.FG != types.Impossible {
		t.Errorf("message = %+v", msg)
	}
	if len(m.Items()) != 1 {
		t.Error("item left the floor")
	}
}

func TestStep_UsePotion(t *testing.T) {
	e, _ := testEngine(t)
	potion := newPotion()
	e.Map.Place(potion, 2, 2)
	step(t, e, "g")
	e.Player.Fighter.SetHP(26, e.Log)

	r := step(t, e, "i")
	if r.Mode != types.ModeSelectingItemToUse || r.TurnTaken {
		t.Fatalf("result = %+v", r)
	}

	step(t, e, "z")
	if e.Mode() != types.ModeSelectingItemToUse {
		t.Error("out-of-range slot left selection mode")
	}

	r = step(t, e, "a")
	if r.Mode != types.ModePlaying {
		t.Errorf("mode = %v, want playing", r.Mode)
	}
	if e.Player.Fighter.HP() != 30 {
		t.Errorf("hp = %d, want 30", e.Player.Fighter.HP())
	}
	if e.Player.Inventory.Len() != 0 {
		t.Error("potion not consumed")
	}
	msg := lastMessage(e)
	if msg.Text != "You consume the Health Potion, and recover 4 HP!" || msg.FG != types.HealthRecovered {
		t.Errorf("message = %+v", msg)
	}
}

func TestStep_UsePotionAtFullHealthKeepsIt(t *testing.T) {
	e, _ := testEngine(t)
	e.Map.Place(newPotion(), 2, 2)
	step(t, e, "g", "i", "a")

	if e.Player.Inventory.Len() != 1 {
		t.Error("potion consumed at full health")
	}
	if lastMessage(e).Text != "Your health is already full." {
		t.Errorf("message = %q", lastMessage(e).Text)
	}
}

func TestStep_DropAndCancel(t *testing.T) {
	e, _ := testEngine(t)
	e.Map.Place(newPotion(), 2, 2)
	step(t, e, "g", "right")

	step(t, e, "d", "esc")
	if e.Mode() != types.ModePlaying || e.Player.Inventory.Len() != 1 {
		t.Fatal("cancel changed state")
	}

	step(t, e, "d", "a")
	items := e.Map.Items()
	if len(items) != 1 || items[0].Pos() != (types.Point{X: 3, Y: 2}) {
		t.Fatalf("dropped items = %v", items)
	}
	if lastMessage(e).Text != "You dropped the Health Potion." {
		t.Errorf("message = %q", lastMessage(e).Text)
	}
}

func TestStep_LogCursorWraps(t *testing.T) {
	e, _ := testEngine(t)
	e.Log.Add("two", types.White)
	e.Log.Add("three", types.White)

	step(t, e, "v")
	if e.LogCursor() != 2 {
		t.Fatalf("cursor = %d, want 2", e.LogCursor())
	}

	tests := []struct {
		key  string
		want int
	}{
		{"down", 0},
		{"up", 2},
		{"up", 1},
		{"pgup", 0},
		{"pgdown", 2},
		{"home", 0},
		{"end", 2},
		{"x", 2},
	}
	for _, tt := range tests {
		step(t, e, tt.key)
		if e.LogCursor() != tt.want {
			t.Errorf("after %q cursor = %d, want %d", tt.key, e.LogCursor(), tt.want)
		}
	}
}

func TestStep_ModeChangeResetsCursor(t *testing.T) {
	e, _ := testEngine(t)
	e.Log.Add("two", types.White)

	step(t, e, "v", "home")
	if e.LogCursor() != 0 {
		t.Fatal("home did not move the cursor")
	}
	step(t, e, "esc")
	if e.Mode() != types.ModePlaying || e.LogCursor() != 1 {
		t.Errorf("mode %v cursor %d, want playing at 1", e.Mode(), e.LogCursor())
	}
}

func TestNewGame_FromShippedBestiary(t *testing.T) {
	b, err := loader.Default()
	if err != nil {
		t.Fatalf("loader.Default: %v", err)
	}
	a, err := NewGame(b, 99, nil)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	c, err := NewGame(b, 99, nil)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	if a.Map.Width != MapWidth || a.Map.Height != MapHeight {
		t.Errorf("map size %dx%d", a.Map.Width, a.Map.Height)
	}
	if a.Player.Pos() != c.Player.Pos() {
		t.Error("same seed produced different player positions")
	}
	if a.Player.Fighter.MaxHP != 30 || a.Player.Inventory.Len() != 0 {
		t.Errorf("player = %+v", a.Player.Fighter)
	}

	// Waiting in place for a while never errors.
	for i := 0; i < 20; i++ {
		if _, err := a.Step("5"); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}
}
