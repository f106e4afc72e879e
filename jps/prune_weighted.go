package jps

import (
	"container/heap"
	"math"

	"github.com/lathkin/octopath/grid"
	"github.com/lathkin/octopath/octile"
)

// lexPair is a (cost, lastStepLength) pair, compared lexicographically:
// lower cost wins outright; on a cost tie, the shorter final step wins.
type lexPair struct {
	cost     float64
	lastStep float64
}

func lexicographicallyBetter(a, b lexPair) bool {
	if a.cost+epsilon < b.cost {
		return true
	}
	if b.cost+epsilon < a.cost {
		return false
	}

	return a.lastStep+epsilon < b.lastStep
}

// localPatchNodes returns every walkable cell in the 3x3 block centered on
// center — the neighborhood a weighted-JPS pruning decision is allowed to
// route through.
func localPatchNodes(g *grid.WeightedGrid, center octile.Cell) map[octile.Cell]bool {
	nodes := map[octile.Cell]bool{}
	for y := center.Y - 1; y <= center.Y+1; y++ {
		for x := center.X - 1; x <= center.X+1; x++ {
			if g.IsWalkable(x, y) {
				nodes[octile.Cell{X: x, Y: y}] = true
			}
		}
	}

	return nodes
}

func localNeighbors(g *grid.WeightedGrid, node octile.Cell, allowed map[octile.Cell]bool) []octile.Cell {
	var res []octile.Cell
	for _, d := range octile.Directions8 {
		n := octile.Cell{X: node.X + d.DX, Y: node.Y + d.DY}
		if !allowed[n] {
			continue
		}
		if g.ValidStep(node.X, node.Y, d.DX, d.DY) {
			res = append(res, n)
		}
	}

	return res
}

type localDijkstraItem struct {
	lexPair
	cell octile.Cell
}

type localDijkstraQueue []*localDijkstraItem

func (q localDijkstraQueue) Len() int { return len(q) }
func (q localDijkstraQueue) Less(i, j int) bool {
	if q[i].cost != q[j].cost {
		return q[i].cost < q[j].cost
	}

	return q[i].lastStep < q[j].lastStep
}
func (q localDijkstraQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *localDijkstraQueue) Push(x interface{}) { *q = append(*q, x.(*localDijkstraItem)) }
func (q *localDijkstraQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}

// localDijkstra finds the lexicographically best (cost, last-step-length)
// route from start to goal using only cells in allowedNodes. It is run on
// a 3x3 patch, so its cost is negligible next to the savings jump-point
// pruning gives the outer search.
func localDijkstra(g *grid.WeightedGrid, start, goal octile.Cell, allowedNodes map[octile.Cell]bool) lexPair {
	if !allowedNodes[start] || !allowedNodes[goal] {
		return lexPair{cost: math.Inf(1), lastStep: math.Inf(1)}
	}

	best := map[octile.Cell]lexPair{start: {0, 0}}
	pq := make(localDijkstraQueue, 0, len(allowedNodes))
	heap.Init(&pq)
	heap.Push(&pq, &localDijkstraItem{lexPair: lexPair{0, 0}, cell: start})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*localDijkstraItem)
		recorded, ok := best[item.cell]
		if !ok || math.Abs(item.cost-recorded.cost) > epsilon || math.Abs(item.lastStep-recorded.lastStep) > epsilon {
			continue
		}
		if item.cell == goal {
			return recorded
		}

		for _, n := range localNeighbors(g, item.cell, allowedNodes) {
			stepLen := 1.0
			if n.X != item.cell.X && n.Y != item.cell.Y {
				stepLen = octile.DiagonalDistance
			}
			transition, err := g.TransitionCost(item.cell.X, item.cell.Y, n.X, n.Y)
			if err != nil {
				continue
			}
			cand := lexPair{cost: item.cost + transition, lastStep: stepLen}
			if existing, ok := best[n]; !ok || lexicographicallyBetter(cand, existing) {
				best[n] = cand
				heap.Push(&pq, &localDijkstraItem{lexPair: cand, cell: n})
			}
		}
	}

	return lexPair{cost: math.Inf(1), lastStep: math.Inf(1)}
}

func twoStepCost(g *grid.WeightedGrid, parent, current, neighbor octile.Cell) lexPair {
	stepLen := 1.0
	if neighbor.X != current.X && neighbor.Y != current.Y {
		stepLen = octile.DiagonalDistance
	}
	gPX, _ := g.TransitionCost(parent.X, parent.Y, current.X, current.Y)
	gXN, _ := g.TransitionCost(current.X, current.Y, neighbor.X, neighbor.Y)

	return lexPair{cost: gPX + gXN, lastStep: stepLen}
}

// pruneDirectionsWeighted is the weighted analogue of pruneDirections: a
// direction from current survives only if the direct two-step route
// through it is not dominated, lexicographically, by some other route
// confined to the local 3x3 patch around current.
func pruneDirectionsWeighted(g *grid.WeightedGrid, current octile.Cell, hasParent bool, parent octile.Cell) []octile.Direction {
	if !hasParent {
		var all []octile.Direction
		for _, d := range octile.Directions8 {
			if g.ValidStep(current.X, current.Y, d.DX, d.DY) {
				all = append(all, d)
			}
		}

		return all
	}

	patch := localPatchNodes(g, current)
	var pruned []octile.Direction
	for _, d := range octile.Directions8 {
		if !g.ValidStep(current.X, current.Y, d.DX, d.DY) {
			continue
		}
		neighbor := octile.Cell{X: current.X + d.DX, Y: current.Y + d.DY}
		direct := twoStepCost(g, parent, current, neighbor)
		best := localDijkstra(g, parent, neighbor, patch)
		if lexicographicallyBetter(best, direct) {
			continue
		}
		pruned = append(pruned, d)
	}

	return pruned
}

// hasMultiTerrainNeighborhood reports whether the 3x3 block centered on
// (x,y) contains more than one distinct terrain character among in-bounds
// cells. A boundary between terrains can change the optimal route through
// it, so JPSW treats such a cell as a forced jump point the same way JPS
// treats an obstacle-exposed forced neighbor.
func hasMultiTerrainNeighborhood(g *grid.WeightedGrid, x, y int) bool {
	seen := map[rune]bool{}
	for ny := y - 1; ny <= y+1; ny++ {
		for nx := x - 1; nx <= x+1; nx++ {
			if !g.InBounds(nx, ny) {
				continue
			}
			seen[g.Chars[ny][nx]] = true
			if len(seen) > 1 {
				return true
			}
		}
	}

	return false
}
