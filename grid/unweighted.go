package grid

import "github.com/lathkin/octopath/octile"

// UnweightedGrid is a rectangular map of walkable cells under eight-connected
// octile movement. It is immutable once constructed.
type UnweightedGrid struct {
	Width, Height int
	walkable      [][]bool // walkable[y][x]
	Chars         [][]rune // optional, preserved for rendering and terrain tests
}

// NewUnweightedGrid builds a grid from a dense walkable[y][x] array, deep
// copying it so the grid stays immutable. chars may be nil; if so it is
// synthesized from walkable ('.' / '#').
func NewUnweightedGrid(walkable [][]bool, chars [][]rune) (*UnweightedGrid, error) {
	if len(walkable) == 0 || len(walkable[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	height := len(walkable)
	width := len(walkable[0])
	for _, row := range walkable {
		if len(row) != width {
			return nil, ErrNonRectangular
		}
	}

	wk := make([][]bool, height)
	for y, row := range walkable {
		wk[y] = append([]bool(nil), row...)
	}

	var ch [][]rune
	if chars != nil {
		if len(chars) != height {
			return nil, ErrNonRectangular
		}
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

	return &UnweightedGrid{Width: width, Height: height, walkable: wk, Chars: ch}, nil
}

// InBounds reports whether (x,y) lies within the grid's rectangle.
func (g *UnweightedGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// IsWalkable reports whether (x,y) is in bounds and walkable. Queries
// outside the rectangle return false rather than failing.
func (g *UnweightedGrid) IsWalkable(x, y int) bool {
	return g.InBounds(x, y) && g.walkable[y][x]
}

// ValidStep reports whether stepping (dx,dy) from (x,y) is legal: the
// destination must be walkable, and for diagonal moves both flanking
// orthogonal cells must also be walkable — this forbids cutting a corner
// between two obstacles.
func (g *UnweightedGrid) ValidStep(x, y, dx, dy int) bool {
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
func (g *UnweightedGrid) Neighbors8(x, y int) []octile.Cell {
	neighbors := make([]octile.Cell, 0, 8)
	for _, d := range octile.Directions8 {
		if g.ValidStep(x, y, d.DX, d.DY) {
			neighbors = append(neighbors, octile.Cell{X: x + d.DX, Y: y + d.DY})
		}
	}

	return neighbors
}
