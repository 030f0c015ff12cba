// Package engine provides the Step() turn engine: it decodes one key,
// performs the player's action, runs the enemy phase, and recomputes the
// field of view, all synchronously within a single call.
package engine

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/nathoo/roguecore/engine/action"
	"github.com/nathoo/roguecore/engine/dungeon"
	"github.com/nathoo/roguecore/engine/input"
	"github.com/nathoo/roguecore/engine/msglog"
	"github.com/nathoo/roguecore/engine/rng"
	"github.com/nathoo/roguecore/engine/world"
	"github.com/nathoo/roguecore/types"
)

// Screen and generation constants.
const (
	ScreenWidth  = 80
	ScreenHeight = 50
	MapWidth     = 80
	MapHeight    = 43

	MaxRooms           = 15
	MinRoomSize        = 13
	MaxRoomSize        = 17
	MaxMonstersPerRoom = 4
	MaxItemsPerRoom    = 2

	FOVRadius = 8
)

// WelcomeMessage opens every new game's log.
const WelcomeMessage = "Hello and welcome, adventurer, to yet another dungeon!"

// ErrNoPlayer is returned by New when the map does not hold the player.
var ErrNoPlayer = errors.New("engine: player is not on the map")

// Engine holds the world and the turn state machine.
type Engine struct {
	Map    *world.Map
	Player *world.Actor
	Log    *msglog.Log

	mode      types.Mode
	logCursor int
	ctx       *action.Context
	logger    *logrus.Entry
}

// NewGame builds the player from b, generates a dungeon from seed, and
// returns an engine ready for its first Step.
func NewGame(b *world.Bestiary, seed int64, logger *logrus.Entry) (*Engine, error) {
	player := b.SpawnPlayer(0, 0)
	params := dungeon.Params{
		Width: MapWidth, Height: MapHeight,
		MaxRooms: MaxRooms, MinSize: MinRoomSize, MaxSize: MaxRoomSize,
		MaxMonstersPerRoom: MaxMonstersPerRoom, MaxItemsPerRoom: MaxItemsPerRoom,
	}

	var dlog *logrus.Entry
	if logger != nil {
		dlog = logger.WithField("component", "dungeon")
	}
	m, err := dungeon.Generate(params, b, rng.New(seed), player, dlog)
	if err != nil {
		return nil, fmt.Errorf("generating dungeon: %w", err)
	}
	return New(m, player, logger)
}

// New wraps an existing map. player must be placed on m and be its only
// player actor.
func New(m *world.Map, player *world.Actor, logger *logrus.Entry) (*Engine, error) {
	if player == nil || !player.IsPlayer() || player.Map() != m {
		return nil, ErrNoPlayer
	}
	for _, a := range m.Actors() {
		if a.IsPlayer() && a != player {
			return nil, fmt.Errorf("engine: second player actor %q on the map", a.Name)
		}
	}

	log := msglog.New()
	e := &Engine{
		Map:    m,
		Player: player,
		Log:    log,
		logger: logger,
	}
	e.ctx = &action.Context{Map: m, Player: player, Log: log}
	if logger != nil {
		e.logger = logger.WithField("component", "turn_engine")
		e.ctx.Logger = logger.WithField("component", "actions")
	}

	log.Add(WelcomeMessage, types.WelcomeText)
	m.UpdateFOV(player, FOVRadius)
	e.setMode(types.ModePlaying)
	return e, nil
}

// Mode returns the current state machine mode.
func (e *Engine) Mode() types.Mode {
	return e.mode
}

// LogCursor returns the index of the newest message shown in the log view.
func (e *Engine) LogCursor() int {
	return e.logCursor
}

// setMode switches mode and resets the log cursor to the newest message.
func (e *Engine) setMode(m types.Mode) {
	e.mode = m
	e.logCursor = max(0, e.Log.Len()-1)
}

// Step processes one key press and returns the result. The only error is a
// broken internal invariant, after which the engine must not be used.
func (e *Engine) Step(key string) (types.Result, error) {
	var (
		result types.Result
		err    error
	)

	switch e.mode {
	case types.ModePlaying:
		result, err = e.stepPlaying(key)
	case types.ModeViewingLog:
		e.stepLog(key)
	case types.ModeSelectingItemToUse, types.ModeSelectingItemToDrop:
		result, err = e.stepSelect(key)
	case types.ModeGameOver:
		if input.DecodeGame(key).Kind == input.OpenLog {
			e.setMode(types.ModeViewingLog)
		}
	}

	result.Mode = e.mode
	return result, err
}

func (e *Engine) stepPlaying(key string) (types.Result, error) {
	var result types.Result

	cmd := input.DecodeGame(key)
	if e.Player.Fighter.HP() <= 0 {
		e.setMode(types.ModeGameOver)
		if cmd.Kind == input.OpenLog {
			e.setMode(types.ModeViewingLog)
		}
		return result, nil
	}

	var act action.Action
	switch cmd.Kind {
	case input.Move:
		act = action.Bump{DX: cmd.DX, DY: cmd.DY}
	case input.PickupOrWait:
		if e.Map.ItemAt(e.Player.X, e.Player.Y) != nil {
			act = action.Pickup{}
		} else {
			act = action.Wait{}
		}
	case input.OpenInventoryUse:
		e.setMode(types.ModeSelectingItemToUse)
		return result, nil
	case input.OpenInventoryDrop:
		e.setMode(types.ModeSelectingItemToDrop)
		return result, nil
	case input.OpenLog:
		e.setMode(types.ModeViewingLog)
		return result, nil
	default:
		return result, nil
	}

	if err := e.performPlayer(act, &result); err != nil {
		return result, err
	}
	if result.Failure != nil {
		e.Map.UpdateFOV(e.Player, FOVRadius)
		return result, nil
	}

	if e.mode == types.ModePlaying {
		if err := e.handleEnemyTurns(); err != nil {
			return result, err
		}
	}
	result.TurnTaken = true

	e.Map.UpdateFOV(e.Player, FOVRadius)
	if e.Player.Fighter.HP() <= 0 {
		e.setMode(types.ModeGameOver)
	}
	return result, nil
}

// performPlayer runs act for the player. A refused action is reported in
// the message log and recorded on result; only a fatal failure is returned.
func (e *Engine) performPlayer(act action.Action, result *types.Result) error {
	err := act.Perform(e.ctx, e.Player)
	if err == nil {
		return nil
	}
	if action.IsFatal(err) {
		return fmt.Errorf("player action: %w", err)
	}

	result.Failure = err
	var f *action.Failure
	if errors.As(err, &f) {
		e.Log.Add(f.Reason, f.Color())
	} else {
		e.Log.Add(err.Error(), types.Error)
	}
	return nil
}

// handleEnemyTurns gives every living non-player actor one AI turn in map
// order. An actor's failure is logged and skipped. The phase stops as
// soon as the player is dead.
func (e *Engine) handleEnemyTurns() error {
	for _, a := range e.Map.Actors() {
		if a == e.Player || !a.IsAlive() {
			continue
		}
		if e.Player.Fighter.HP() <= 0 {
			return nil
		}

		err := action.PerformAI(e.ctx, a)
		if err == nil {
			continue
		}
		if action.IsFatal(err) {
			return fmt.Errorf("%s turn: %w", a.Name, err)
		}

		failure := &action.Failure{Kind: action.KindActorFailure, Reason: a.Name, Err: err}
		if e.logger != nil {
			e.logger.WithFields(logrus.Fields{
				"actor": a.Name,
				"x":     a.X,
				"y":     a.Y,
			}).WithError(failure).Debug("AI action failed.")
		}
	}
	return nil
}

func (e *Engine) stepSelect(key string) (types.Result, error) {
	var result types.Result

	cmd := input.DecodeSelect(key)
	switch cmd.Kind {
	case input.Cancel:
		e.setMode(types.ModePlaying)
		return result, nil
	case input.Confirm:
	default:
		return result, nil
	}

	items := e.Player.Inventory.Items()
	if cmd.Index < 0 || cmd.Index >= len(items) {
		return result, nil
	}

	var act action.Action
	if e.mode == types.ModeSelectingItemToUse {
		act = action.UseItem{Item: items[cmd.Index]}
	} else {
		act = action.DropItem{Item: items[cmd.Index]}
	}

	if err := e.performPlayer(act, &result); err != nil {
		return result, err
	}
	e.setMode(types.ModePlaying)
	return result, nil
}

func (e *Engine) stepLog(key string) {
	cmd := input.DecodeLog(key)
	last := e.Log.Len() - 1

	switch cmd.Kind {
	case input.Cancel:
		if e.Player.Fighter.HP() <= 0 {
			e.setMode(types.ModeGameOver)
		} else {
			e.setMode(types.ModePlaying)
		}
	case input.LogTop:
		e.logCursor = 0
	case input.LogBottom:
		e.logCursor = max(0, last)
	case input.ScrollLog:
		switch {
		case cmd.Amount < 0 && e.logCursor == 0:
			e.logCursor = max(0, last)
		case cmd.Amount > 0 && e.logCursor == last:
			e.logCursor = 0
		default:
			e.logCursor = max(0, min(e.logCursor+cmd.Amount, last))
		}
	}
}
