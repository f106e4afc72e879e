package jps

import (
	"container/heap"
	"math"

	"github.com/lathkin/octopath/grid"
	"github.com/lathkin/octopath/octile"
	"github.com/lathkin/octopath/pathutil"
)

// epsilon absorbs floating-point noise when comparing candidate g-scores
// and stale open-set entries, matching the reference implementation.
const epsilon = 1e-9

// Search runs unweighted Jump Point Search over g from start to goal.
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

	gScore := map[octile.Cell]float64{start: 0}
	parent := map[octile.Cell]octile.Cell{}
	hasParent := map[octile.Cell]bool{start: false}
	dirParent := map[octile.Cell]octile.Cell{}
	hasDirParent := map[octile.Cell]bool{start: false}
	closed := map[octile.Cell]bool{}

	open := make(openQueue, 0, 64)
	heap.Init(&open)

	var order int
	heap.Push(&open, &openItem{f: octile.Distance(start, goal), order: order, cell: start})

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
		if item.f > g0+octile.Distance(node, goal)+epsilon {
			continue
		}

		closed[node] = true
		expanded++

		if node == goal {
			jumpPath := pathutil.ReconstructPath(parent, hasParent, goal)
			full := pathutil.ExpandPath(jumpPath)

			return Result{Path: full, Cost: g0, Expanded: expanded}, nil
		}

		var px, py int
		hasPrune := hasDirParent[node]
		if hasPrune {
			pp := dirParent[node]
			px, py = pp.X, pp.Y
		}

		directions := pruneDirections(g, node.X, node.Y, hasPrune, px, py)
		for _, d := range directions {
			jp, ok := jump(g, node.X, node.Y, d.DX, d.DY, goal)
			if !ok || closed[jp] {
				continue
			}

			steps := maxInt(absInt(jp.X-node.X), absInt(jp.Y-node.Y))
			moveCost := float64(steps)
			if d.Diagonal() {
				moveCost *= octile.DiagonalDistance
			}
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
			heap.Push(&open, &openItem{f: tentativeG + octile.Distance(jp, goal), order: order, cell: jp})
		}
	}

	return Result{Path: nil, Cost: math.Inf(1), Expanded: expanded}, nil
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
