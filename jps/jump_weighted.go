package jps

import (
	"github.com/lathkin/octopath/grid"
	"github.com/lathkin/octopath/octile"
)

// jumpWeighted is jump's weighted-JPS counterpart: it walks along (dx,dy)
// until it hits an illegal step (ok=false), reaches goal, or reaches a cell
// whose 3x3 neighborhood spans more than one terrain character
// (hasMultiTerrainNeighborhood) — the weighted analogue of a forced
// neighbor, since a terrain boundary is exactly where the optimal route can
// bend. On a diagonal it also stops at a cell from which either straight
// sub-probe finds a jump point.
func jumpWeighted(g *grid.WeightedGrid, x, y, dx, dy int, goal octile.Cell) (octile.Cell, bool) {
	if dx == 0 && dy == 0 {
		return octile.Cell{}, false
	}

	for {
		if !g.ValidStep(x, y, dx, dy) {
			return octile.Cell{}, false
		}
		x += dx
		y += dy

		if x == goal.X && y == goal.Y {
			return octile.Cell{X: x, Y: y}, true
		}

		if hasMultiTerrainNeighborhood(g, x, y) {
			return octile.Cell{X: x, Y: y}, true
		}

		if dx != 0 && dy != 0 {
			if _, ok := jumpWeighted(g, x, y, dx, 0, goal); ok {
				return octile.Cell{X: x, Y: y}, true
			}
			if _, ok := jumpWeighted(g, x, y, 0, dy, goal); ok {
				return octile.Cell{X: x, Y: y}, true
			}
		}
	}
}

// costAlongRay sums TransitionCost one step at a time from start to end
// along the fixed direction (dx,dy). A jump point may be many cells away
// from its origin, and each step can cross a different terrain boundary,
// so the total cost cannot be computed from the endpoints alone the way
// the unweighted move_cost = steps * step_cost can.
func costAlongRay(g *grid.WeightedGrid, start, end octile.Cell, dx, dy int) float64 {
	total := 0.0
	cur := start
	for cur != end {
		next := octile.Cell{X: cur.X + dx, Y: cur.Y + dy}
		cost, err := g.TransitionCost(cur.X, cur.Y, next.X, next.Y)
		if err != nil {
			return total
		}
		total += cost
		cur = next
	}

	return total
}
