package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the bestiary constructors and helpers as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// Player { ... }
	L.SetGlobal("Player", L.NewFunction(func(L *lua.LState) int {
		if coll.player != nil {
			L.RaiseError("Player defined more than once")
		}
		coll.player = L.CheckTable(1)
		return 0
	}))

	// Monster "id" { ... }: curried, Monster("id") returns a function that takes a table.
	L.SetGlobal("Monster", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			coll.monsters = append(coll.monsters, rawTemplate{id: id, table: L.CheckTable(1)})
			return 0
		}))
		return 1
	}))

	// Item "id" { ... }
	L.SetGlobal("Item", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			coll.items = append(coll.items, rawTemplate{id: id, table: L.CheckTable(1)})
			return 0
		}))
		return 1
	}))

	// Healing(amount)
	L.SetGlobal("Healing", L.NewFunction(func(L *lua.LState) int {
		amount := L.CheckNumber(1)
		tbl := L.NewTable()
		tbl.RawSetString("type", lua.LString("healing"))
		tbl.RawSetString("amount", amount)
		L.Push(tbl)
		return 1
	}))
}
