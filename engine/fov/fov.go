// Package fov computes field of view with recursive shadowcasting.
package fov

// Grid is the view of the map the algorithm needs.
type Grid interface {
	InBounds(x, y int) bool
	BlocksSight(x, y int) bool
}

// Octant transforms: columns are xx, xy, yx, yy for each of the 8 octants.
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// Compute calls mark for every tile visible from (ox, oy) within radius.
// The origin is always marked. Walls bounding the visible area are marked
// too so they render. A radius <= 0 marks only the origin.
func Compute(g Grid, ox, oy, radius int, mark func(x, y int)) {
	if !g.InBounds(ox, oy) {
		return
	}
	mark(ox, oy)
	if radius <= 0 {
		return
	}
	for i := 0; i < 8; i++ {
		castLight(g, ox, oy, 1, 1.0, 0.0, radius,
			multipliers[0][i], multipliers[1][i],
			multipliers[2][i], multipliers[3][i], mark)
	}
}

func castLight(g Grid, cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int, mark func(x, y int)) {
	if start < end {
		return
	}

	radiusSq := radius * radius

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			x := cx + dx*xx + dy*xy
			y := cy + dx*yx + dy*yy

			if g.InBounds(x, y) && dx*dx+dy*dy < radiusSq {
				mark(x, y)
			}

			if blocked {
				if blocks(g, x, y) {
					newStart = rSlope
					continue
				}
				blocked = false
				start = newStart
			} else if blocks(g, x, y) && j < radius {
				blocked = true
				castLight(g, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy, mark)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}

// blocks treats out-of-bounds tiles as opaque.
func blocks(g Grid, x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.BlocksSight(x, y)
}
