package jps

import (
	"container/heap"
	"math"

	"github.com/lathkin/octopath/grid"
	"github.com/lathkin/octopath/octile"
	"github.com/lathkin/octopath/pathutil"
)

// SearchWeighted runs weighted Jump Point Search (JPSW) over g from start to
// goal, using local-optimality pruning in place of JPS's forced-neighbor
// rule and a multi-terrain-neighborhood trigger in place of its obstacle
// flanks.
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
	heuristic := func(c octile.Cell) float64 {
		return octile.WeightedDistance(c, goal, minCost)
	}

	gScore := map[octile.Cell]float64{start: 0}
	parent := map[octile.Cell]octile.Cell{}
	hasParent := map[octile.Cell]bool{start: false}
	dirParent := map[octile.Cell]octile.Cell{}
	hasDirParent := map[octile.Cell]bool{start: false}
	closed := map[octile.Cell]bool{}

	open := make(openQueue, 0, 64)
	heap.Init(&open)

	var order int
	heap.Push(&open, &openItem{f: heuristic(start), order: order, cell: start})

	expanded := 0
	for open.Len() > 0 {
		item := heap.Pop(&open).(*openItem)
		node := item.cell
		if closed[node] {
			continue
		}

		g0, known := gScore[node]
		if !known {
			continue
		}
		if item.f > g0+heuristic(node)+epsilon {
			continue
		}

		closed[node] = true
		expanded++

		if node == goal {
			jumpPath := pathutil.ReconstructPath(parent, hasParent, goal)
			full := pathutil.ExpandPath(jumpPath)

			return Result{Path: full, Cost: g0, Expanded: expanded}, nil
		}

		var pruneParent octile.Cell
		hasPrune := hasDirParent[node]
		if hasPrune {
			pruneParent = dirParent[node]
		}

		directions := pruneDirectionsWeighted(g, node, hasPrune, pruneParent)
		for _, d := range directions {
			jp, ok := jumpWeighted(g, node.X, node.Y, d.DX, d.DY, goal)
			if !ok || closed[jp] {
				continue
			}

			moveCost := costAlongRay(g, node, jp, d.DX, d.DY)
			tentativeG := g0 + moveCost

			if best, ok := gScore[jp]; ok && tentativeG+epsilon >= best {
				continue
			}

			gScore[jp] = tentativeG
			parent[jp] = node
			hasParent[jp] = true
			dirParent[jp] = octile.Cell{X: jp.X - d.DX, Y: jp.Y - d.DY}
			hasDirParent[jp] = true

			order++
			heap.Push(&open, &openItem{f: tentativeG + heuristic(jp), order: order, cell: jp})
		}
	}

	return Result{Path: nil, Cost: math.Inf(1), Expanded: expanded}, nil
}
