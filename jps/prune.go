package jps

import (
	"github.com/lathkin/octopath/grid"
	"github.com/lathkin/octopath/octile"
)

// pruneDirections returns the set of octile directions worth expanding from
// (x,y), given the direction the search arrived from (hasParent, px, py).
// With no parent (the start cell) every legal direction is a candidate.
// Otherwise the direction set is restricted to natural neighbors plus any
// forced neighbors exposed by an obstacle flanking the travel direction —
// the classic JPS neighbor-pruning rule.
func pruneDirections(g *grid.UnweightedGrid, x, y int, hasParent bool, px, py int) []octile.Direction {
	if !hasParent {
		var all []octile.Direction
		for _, d := range octile.Directions8 {
			if g.ValidStep(x, y, d.DX, d.DY) {
				all = append(all, d)
			}
		}

		return all
	}

	dx, dy := x-px, y-py
	seen := map[octile.Direction]bool{}
	var pruned []octile.Direction
	add := func(d octile.Direction) {
		if !seen[d] {
			seen[d] = true
			pruned = append(pruned, d)
		}
	}

	switch {
	case dx != 0 && dy != 0:
		for _, d := range [...]octile.Direction{{DX: dx, DY: dy}, {DX: dx, DY: 0}, {DX: 0, DY: dy}} {
			if g.ValidStep(x, y, d.DX, d.DY) {
				add(d)
			}
		}
	case dx != 0:
		if g.ValidStep(x, y, dx, 0) {
			add(octile.Direction{DX: dx, DY: 0})
		}
		for _, ty := range [...]int{-1, 1} {
			if !g.ValidStep(px, py, dx, ty) {
				if g.ValidStep(x, y, 0, ty) {
					add(octile.Direction{DX: 0, DY: ty})
				}
				if g.ValidStep(x, y, dx, ty) {
					add(octile.Direction{DX: dx, DY: ty})
				}
			}
		}
	default:
		if g.ValidStep(x, y, 0, dy) {
			add(octile.Direction{DX: 0, DY: dy})
		}
		for _, tx := range [...]int{-1, 1} {
			if !g.ValidStep(px, py, tx, dy) {
				if g.ValidStep(x, y, tx, 0) {
					add(octile.Direction{DX: tx, DY: 0})
				}
				if g.ValidStep(x, y, tx, dy) {
					add(octile.Direction{DX: tx, DY: dy})
				}
			}
		}
	}

	return pruned
}

// hasForcedNeighborStraight reports whether (x,y), reached by the straight
// step (dx,dy), has a forced neighbor: a cell that would not be a natural
// neighbor of the step before (x,y) but is reachable from (x,y), because the
// diagonal step from the cell behind (x,y) toward that side is blocked. Such a
// cell can only be optimally reached through (x,y), making (x,y) a jump
// point. dx and dy are never both nonzero here; diagonal steps are handled
// by jump's recursive straight-ray probes instead.
func hasForcedNeighborStraight(g *grid.UnweightedGrid, x, y, dx, dy int) bool {
	px, py := x-dx, y-dy

	if dx != 0 {
		for _, ty := range [...]int{-1, 1} {
			if !g.ValidStep(px, py, dx, ty) && (g.ValidStep(x, y, 0, ty) || g.ValidStep(x, y, dx, ty)) {
				return true
			}
		}

		return false
	}

	for _, tx := range [...]int{-1, 1} {
		if !g.ValidStep(px, py, tx, dy) && (g.ValidStep(x, y, tx, 0) || g.ValidStep(x, y, tx, dy)) {
			return true
		}
	}

	return false
}
