package astar

import (
	"container/heap"
	"math"

	"github.com/lathkin/octopath/grid"
	"github.com/lathkin/octopath/octile"
	"github.com/lathkin/octopath/pathutil"
)

// epsilon absorbs floating-point noise when comparing candidate g-scores,
// matching the reference implementation's tolerance.
const epsilon = 1e-9

// Search runs A* over an unweighted grid, with uniform straight/diagonal
// step costs and the octile-distance heuristic.
func Search(g *grid.UnweightedGrid, start, goal octile.Cell) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if !g.InBounds(start.X, start.Y) || !g.InBounds(goal.X, goal.Y) {
		return Result{}, ErrOutOfBounds
	}
	if !g.IsWalkable(start.X, start.Y) || !g.IsWalkable(goal.X, goal.Y) {
		return Result{}, ErrBlockedEndpoint
	}

	r := &runner{
		neighbors: g.Neighbors8,
		stepCost: func(x, y, nx, ny int) float64 {
			return octile.StepCost(nx-x, ny-y)
		},
		heuristic: func(c octile.Cell) float64 {
			return octile.Distance(c, goal)
		},
	}

	return r.run(start, goal)
}

// SearchWeighted runs A*W over a weighted grid, using per-transition costs
// and a heuristic scaled by the grid's minimum cell weight.
func SearchWeighted(g *grid.WeightedGrid, start, goal octile.Cell) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if !g.InBounds(start.X, start.Y) || !g.InBounds(goal.X, goal.Y) {
		return Result{}, ErrOutOfBounds
	}
	if !g.IsWalkable(start.X, start.Y) || !g.IsWalkable(goal.X, goal.Y) {
		return Result{}, ErrBlockedEndpoint
	}

	minCost := g.MinCellCost()
	r := &runner{
		neighbors: g.Neighbors8,
		stepCost: func(x, y, nx, ny int) float64 {
			cost, err := g.TransitionCost(x, y, nx, ny)
			if err != nil {
				return math.Inf(1)
			}

			return cost
		},
		heuristic: func(c octile.Cell) float64 {
			return octile.WeightedDistance(c, goal, minCost)
		},
	}

	return r.run(start, goal)
}

// runner holds the search kernel shared by Search and SearchWeighted; only
// the neighbor enumeration, step cost, and heuristic differ between them.
type runner struct {
	neighbors func(x, y int) []octile.Cell
	stepCost  func(x, y, nx, ny int) float64
	heuristic func(c octile.Cell) float64
}

func (r *runner) run(start, goal octile.Cell) (Result, error) {
	gScore := map[octile.Cell]float64{start: 0}
	parent := map[octile.Cell]octile.Cell{}
	hasParent := map[octile.Cell]bool{start: false}
	closed := map[octile.Cell]bool{}

	open := make(openQueue, 0, 64)
	heap.Init(&open)

	var order int
	heap.Push(&open, &openItem{f: r.heuristic(start), order: order, cell: start})

	expanded := 0
	for open.Len() > 0 {
		item := heap.Pop(&open).(*openItem)
		node := item.cell

		g, known := gScore[node]
		if !known {
			continue
		}
		// Stale entry: a better g for this cell was recorded after this
		// entry was pushed, so its f no longer reflects the true priority.
		if item.f > g+r.heuristic(node)+epsilon {
			continue
		}
		if closed[node] {
			continue
		}

		closed[node] = true
		expanded++

		if node == goal {
			path := pathutil.ReconstructPath(parent, hasParent, goal)

			return Result{Path: path, Cost: g, Expanded: expanded}, nil
		}

		for _, neighbor := range r.neighbors(node.X, node.Y) {
			if closed[neighbor] {
				continue
			}
			tentativeG := g + r.stepCost(node.X, node.Y, neighbor.X, neighbor.Y)
			if best, ok := gScore[neighbor]; ok && tentativeG+epsilon >= best {
				continue
			}

			gScore[neighbor] = tentativeG
			parent[neighbor] = node
			hasParent[neighbor] = true
			order++
			heap.Push(&open, &openItem{
				f:     tentativeG + r.heuristic(neighbor),
				order: order,
				cell:  neighbor,
			})
		}
	}

	return Result{Path: nil, Cost: math.Inf(1), Expanded: expanded}, nil
}
