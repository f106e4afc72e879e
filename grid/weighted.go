package grid

import (
	"math"
	"sync"

	"github.com/lathkin/octopath/octile"
)

// WeightedGrid is an UnweightedGrid's shape plus a per-cell traversal
// weight; blocked cells carry weight +Inf. It is immutable once
// constructed, and safe for concurrent reads from multiple searches.
type WeightedGrid struct {
	Width, Height int
	walkable      [][]bool    // walkable[y][x]
	weights       [][]float64 // weights[y][x]
	Chars         [][]rune

	minCostOnce sync.Once
	minCost     float64
}

// NewWeightedGrid builds a grid from dense walkable[y][x] and weights[y][x]
// arrays, deep copying both. walkable(x,y) must equal weights(x,y) < +Inf
// for every cell; callers that derive weights from walkability (as the
// loaders in this package do) satisfy this automatically.
func NewWeightedGrid(walkable [][]bool, weights [][]float64, chars [][]rune) (*WeightedGrid, error) {
	if len(walkable) == 0 || len(walkable[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	height := len(walkable)
	width := len(walkable[0])
	if len(weights) != height {
		return nil, ErrNonRectangular
	}
	for y, row := range walkable {
		if len(row) != width || len(weights[y]) != width {
			return nil, ErrNonRectangular
		}
	}

	wk := make([][]bool, height)
	wt := make([][]float64, height)
	for y := 0; y < height; y++ {
		wk[y] = append([]bool(nil), walkable[y]...)
		wt[y] = append([]float64(nil), weights[y]...)
	}

	var ch [][]rune
	if chars != nil {
		ch = make([][]rune, height)
		for y, row := range chars {
			if len(row) != width {
				return nil, ErrNonRectangular
			}
			ch[y] = append([]rune(nil), row...)
		}
	} else {
		ch = make([][]rune, height)
		for y := 0; y < height; y++ {
			ch[y] = make([]rune, width)
			for x := 0; x < width; x++ {
				if wk[y][x] {
					ch[y][x] = '.'
				} else {
					ch[y][x] = '#'
				}
			}
		}
	}

	return &WeightedGrid{Width: width, Height: height, walkable: wk, weights: wt, Chars: ch}, nil
}

// InBounds reports whether (x,y) lies within the grid's rectangle.
func (g *WeightedGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// IsWalkable reports whether (x,y) is in bounds and walkable.
func (g *WeightedGrid) IsWalkable(x, y int) bool {
	return g.InBounds(x, y) && g.walkable[y][x]
}

// Weight returns the traversal weight of (x,y), or +Inf if out of bounds or
// blocked.
func (g *WeightedGrid) Weight(x, y int) float64 {
	if !g.InBounds(x, y) {
		return math.Inf(1)
	}

	return g.weights[y][x]
}

// ValidStep reports whether stepping (dx,dy) from (x,y) is legal, under the
// same corner-cutting rule as UnweightedGrid.ValidStep.
func (g *WeightedGrid) ValidStep(x, y, dx, dy int) bool {
	nx, ny := x+dx, y+dy
	if !g.IsWalkable(nx, ny) {
		return false
	}
	if dx != 0 && dy != 0 {
		if !g.IsWalkable(x+dx, y) || !g.IsWalkable(x, y+dy) {
			return false
		}
	}

	return true
}

// Neighbors8 returns every cell reachable from (x,y) by one legal octile
// step, in the fixed order of octile.Directions8.
func (g *WeightedGrid) Neighbors8(x, y int) []octile.Cell {
	neighbors := make([]octile.Cell, 0, 8)
	for _, d := range octile.Directions8 {
		if g.ValidStep(x, y, d.DX, d.DY) {
			neighbors = append(neighbors, octile.Cell{X: x + d.DX, Y: y + d.DY})
		}
	}

	return neighbors
}

// MinCellCost returns the minimum traversal weight over every walkable
// cell. The value is computed once on first use and cached thereafter —
// sync.Once makes this race-free without forcing every read through a
// mutex, which matters because every weighted search calls MinCellCost and
// searches over the same grid may run concurrently.
func (g *WeightedGrid) MinCellCost() float64 {
	g.minCostOnce.Do(func() {
		best := math.Inf(1)
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				if g.walkable[y][x] && g.weights[y][x] < best {
					best = g.weights[y][x]
				}
			}
		}
		g.minCost = best
	})

	return g.minCost
}

// TransitionCost returns the cost of stepping from (x,y) to (nx,ny). A
// straight step costs the average of the two endpoint weights; a diagonal
// step costs √2 times the average of all four cells the move sweeps over
// (the destination, the source, and the two corners it passes between).
// Returns ErrIllegalTransition if the step is not legal per ValidStep.
func (g *WeightedGrid) TransitionCost(x, y, nx, ny int) (float64, error) {
	if !g.ValidStep(x, y, nx-x, ny-y) {
		return 0, ErrIllegalTransition
	}

	wSrc, wDst := g.weights[y][x], g.weights[ny][nx]
	if x == nx || y == ny {
		return (wSrc + wDst) / 2, nil
	}

	wCornerA := g.weights[y][nx]
	wCornerB := g.weights[ny][x]

	return octile.DiagonalDistance * (wSrc + wCornerA + wCornerB + wDst) / 4, nil
}
