package jps

import (
	"github.com/lathkin/octopath/grid"
	"github.com/lathkin/octopath/octile"
)

// jump walks from (x,y) along direction (dx,dy) one octile step at a time
// until it either hits an illegal step (off the grid, into an obstacle, or
// across a blocked corner; ok=false), reaches goal, or reaches a
// cell that is "interesting": the first encountered forced-neighbor cell
// for a straight direction, or — for a diagonal direction — a cell from
// which either of the two straight rays it sweeps past would themselves be
// interesting.
func jump(g *grid.UnweightedGrid, x, y, dx, dy int, goal octile.Cell) (octile.Cell, bool) {
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

		if dx == 0 || dy == 0 {
			if hasForcedNeighborStraight(g, x, y, dx, dy) {
				return octile.Cell{X: x, Y: y}, true
			}
			continue
		}

		if _, ok := jump(g, x, y, dx, 0, goal); ok {
			return octile.Cell{X: x, Y: y}, true
		}
		if _, ok := jump(g, x, y, 0, dy, goal); ok {
			return octile.Cell{X: x, Y: y}, true
		}
	}
}
