// Package loader compiles Lua bestiary content into spawn templates.
// The Lua VM is discarded after loading; nothing runs Lua during play.
package loader

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/roguecore/engine/world"
	"github.com/nathoo/roguecore/types"
)

// rawTemplate holds a Monster or Item table before compilation.
type rawTemplate struct {
	id    string
	table *lua.LTable
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	if s, ok := tbl.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getInt returns an integer field from a Lua table, or def if missing.
func getInt(tbl *lua.LTable, key string, def int) int {
	if n, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		return int(n)
	}
	return def
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	if t, ok := tbl.RawGetString(key).(*lua.LTable); ok {
		return t
	}
	return nil
}

func compile(coll *collector) (*world.Bestiary, error) {
	if coll.player == nil {
		return nil, fmt.Errorf("no Player definition found")
	}

	b := &world.Bestiary{
		Player: compileActor("player", coll.player),
	}

	for _, raw := range coll.monsters {
		b.Monsters = append(b.Monsters, compileActor(raw.id, raw.table))
	}

	for _, raw := range coll.items {
		it, err := compileItem(raw)
		if err != nil {
			return nil, err
		}
		b.Items = append(b.Items, it)
	}

	return b, nil
}

func compileActor(id string, tbl *lua.LTable) world.ActorTemplate {
	return world.ActorTemplate{
		ID:       id,
		Name:     getString(tbl, "name"),
		Char:     getString(tbl, "char"),
		FG:       types.Color(getString(tbl, "color")),
		HP:       getInt(tbl, "hp", 0),
		Defense:  getInt(tbl, "defense", 0),
		Power:    getInt(tbl, "power", 0),
		Capacity: getInt(tbl, "capacity", 0),
		Weight:   getInt(tbl, "weight", 1),
	}
}

func compileItem(raw rawTemplate) (world.ItemTemplate, error) {
	tbl := raw.table
	it := world.ItemTemplate{
		ID:     raw.id,
		Name:   getString(tbl, "name"),
		Char:   getString(tbl, "char"),
		FG:     types.Color(getString(tbl, "color")),
		Weight: getInt(tbl, "weight", 1),
	}

	c := getTable(tbl, "consumable")
	if c == nil {
		return it, fmt.Errorf("item %q: consumable is required", raw.id)
	}
	switch kind := getString(c, "type"); kind {
	case "healing":
		it.Kind = world.ConsumableHealing
		it.Amount = getInt(c, "amount", 0)
	default:
		return it, fmt.Errorf("item %q: unknown consumable type %q", raw.id, kind)
	}
	return it, nil
}
