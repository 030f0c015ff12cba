// Package path finds 8-way paths across the dungeon grid with A*.
package path

import (
	"container/heap"

	"github.com/nathoo/roguecore/types"
)

// Grid reports the cost of entering a tile. A cost <= 0 is impassable.
type Grid interface {
	InBounds(x, y int) bool
	Cost(x, y int) int
}

// neighbours lists cardinal directions before diagonals so ties resolve
// toward orthogonal steps.
var neighbours = [8]types.Point{
	{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0},
	{X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: -1},
}

// Find returns the tiles from one step after from up to and including to.
// It returns nil when to is unreachable or equal to from. The goal tile is
// always treated as enterable so a path can end on an occupied tile.
func Find(g Grid, from, to types.Point) []types.Point {
	if from == to || !g.InBounds(from.X, from.Y) || !g.InBounds(to.X, to.Y) {
		return nil
	}

	open := &nodeQueue{}
	heap.Push(open, &node{pt: from, f: chebyshev(from, to)})
	cameFrom := map[types.Point]types.Point{}
	costSoFar := map[types.Point]int{from: 0}
	seq := 0

	for open.Len() > 0 {
		cur := heap.Pop(open).(*node)
		if cur.pt == to {
			return reconstruct(cameFrom, from, to)
		}
		if cur.g > costSoFar[cur.pt] {
			continue
		}

		for _, d := range neighbours {
			next := types.Point{X: cur.pt.X + d.X, Y: cur.pt.Y + d.Y}
			if !g.InBounds(next.X, next.Y) {
				continue
			}
			step := g.Cost(next.X, next.Y)
			if next == to && step <= 0 {
				step = 1
			}
			if step <= 0 {
				continue
			}
			newCost := costSoFar[cur.pt] + step
			if old, seen := costSoFar[next]; seen && newCost >= old {
				continue
			}
			costSoFar[next] = newCost
			cameFrom[next] = cur.pt
			seq++
			heap.Push(open, &node{pt: next, g: newCost, f: newCost + chebyshev(next, to), seq: seq})
		}
	}
	return nil
}

func reconstruct(cameFrom map[types.Point]types.Point, from, to types.Point) []types.Point {
	var rev []types.Point
	for cur := to; cur != from; cur = cameFrom[cur] {
		rev = append(rev, cur)
	}
	out := make([]types.Point, len(rev))
	for i, p := range rev {
		out[len(rev)-1-i] = p
	}
	return out
}

func chebyshev(a, b types.Point) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

type node struct {
	pt  types.Point
	g   int
	f   int
	seq int // insertion order, keeps equal-f pops deterministic
}

// nodeQueue implements heap.Interface as a min-heap on f.
type nodeQueue []*node

func (q nodeQueue) Len() int { return len(q) }

func (q nodeQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}

func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *nodeQueue) Push(x any) { *q = append(*q, x.(*node)) }

func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}
