// Package dungeon generates rooms-and-corridors levels and populates them.
package dungeon

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/nathoo/roguecore/engine/rng"
	"github.com/nathoo/roguecore/engine/world"
)

// Params are the fixed generation constants.
type Params struct {
	Width, Height      int
	MaxRooms           int
	MinSize, MaxSize   int
	MaxMonstersPerRoom int
	MaxItemsPerRoom    int
}

// Rect is a room's outer rectangle; its walls are the border cells.
type Rect struct {
	X, Y, W, H int
}

// Center returns the room's centre tile.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Intersects reports whether r and other overlap, walls included.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.W && r.X+r.W >= other.X &&
		r.Y <= other.Y+other.H && r.Y+r.H >= other.Y
}

// ErrNoRooms means no room could be carved with the given params.
var ErrNoRooms = errors.New("dungeon: no room fits the map")

// Generate carves a level, places player in the first room's centre, and
// spawns monsters and items in every room.
func Generate(p Params, b *world.Bestiary, r *rng.RNG, player *world.Actor, log *logrus.Entry) (*world.Map, error) {
	m := world.NewMap(p.Width, p.Height)
	var rooms []Rect

	for i := 0; i < p.MaxRooms; i++ {
		w := r.Range(p.MinSize, p.MaxSize)
		h := r.Range(p.MinSize, p.MaxSize)
		x := r.Range(0, p.Width-w-1)
		y := r.Range(0, p.Height-h-1)
		room := Rect{X: x, Y: y, W: w, H: h}

		if x < 0 || y < 0 || x+w >= p.Width || y+h >= p.Height {
			continue
		}
		overlaps := false
		for _, other := range rooms {
			if room.Intersects(other) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		carveRoom(m, room)

		cx, cy := room.Center()
		if len(rooms) == 0 {
			m.Place(player, cx, cy)
		} else {
			px, py := rooms[len(rooms)-1].Center()
			carveTunnel(m, r, px, py, cx, cy)
		}

		placeEntities(m, b, r, room, p.MaxMonstersPerRoom, p.MaxItemsPerRoom)
		rooms = append(rooms, room)
	}

	if len(rooms) == 0 {
		return nil, ErrNoRooms
	}

	if log != nil {
		log.WithFields(logrus.Fields{
			"rooms":        len(rooms),
			"actors":       len(m.Actors()),
			"items":        len(m.Items()),
			"seed":         r.Seed(),
			"rng_position": r.Position(),
		}).Info("Dungeon generated.")
	}
	return m, nil
}

func carveRoom(m *world.Map, room Rect) {
	for y := room.Y + 1; y < room.Y+room.H; y++ {
		for x := room.X + 1; x < room.X+room.W; x++ {
			m.SetTile(x, y, world.Floor)
		}
	}
}

// carveTunnel digs an L-shaped corridor, choosing the corner at random.
func carveTunnel(m *world.Map, r *rng.RNG, x1, y1, x2, y2 int) {
	if r.Roll(2) == 1 {
		carveH(m, x1, x2, y1)
		carveV(m, y1, y2, x2)
	} else {
		carveV(m, y1, y2, x1)
		carveH(m, x1, x2, y2)
	}
}

func carveH(m *world.Map, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		m.SetTile(x, y, world.Floor)
	}
}

func carveV(m *world.Map, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		m.SetTile(x, y, world.Floor)
	}
}

// placeEntities drops up to maxMonsters monsters and maxItems items on free
// interior tiles of room.
func placeEntities(m *world.Map, b *world.Bestiary, r *rng.RNG, room Rect, maxMonsters, maxItems int) {
	if len(b.Monsters) > 0 {
		weights := make([]int, len(b.Monsters))
		for i, t := range b.Monsters {
			weights[i] = t.Weight
		}
		n := r.Range(0, maxMonsters)
		for i := 0; i < n; i++ {
			x, y := randomInterior(r, room)
			if m.EntityAt(x, y) != nil {
				continue
			}
			world.SpawnMonster(m, b.Monsters[r.WeightedSelect(weights)], x, y)
		}
	}

	if len(b.Items) > 0 {
		weights := make([]int, len(b.Items))
		for i, t := range b.Items {
			weights[i] = t.Weight
		}
		n := r.Range(0, maxItems)
		for i := 0; i < n; i++ {
			x, y := randomInterior(r, room)
			if m.EntityAt(x, y) != nil {
				continue
			}
			world.SpawnItem(m, b.Items[r.WeightedSelect(weights)], x, y)
		}
	}
}

func randomInterior(r *rng.RNG, room Rect) (int, int) {
	return r.Range(room.X+1, room.X+room.W-1), r.Range(room.Y+1, room.Y+room.H-1)
}
