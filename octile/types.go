package octile

// Cell is a single grid coordinate, 0 ≤ X < width, 0 ≤ Y < height.
type Cell struct {
	X, Y int
}

// Direction is one of the eight unit octile moves (dx, dy), each in {-1,0,1},
// excluding (0,0).
type Direction struct {
	DX, DY int
}

// Add returns the cell reached by stepping d from c.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

// Diagonal reports whether d moves along both axes at once.
func (d Direction) Diagonal() bool {
	return d.DX != 0 && d.DY != 0
}

// Directions8 lists the eight unit moves in the fixed order the reference
// implementation iterates them: the four straight moves first (E, W, S, N),
// then the four diagonals (SE, NE, SW, NW). Kernels that iterate "all eight
// legal directions" (the no-parent case of pruning) must use this order —
// it is what makes expansion order, and therefore the tie-break insertion
// counter, reproducible across runs and across this implementation and the
// one it was ported from.
var Directions8 = [8]Direction{
	{DX: 1, DY: 0},
	{DX: -1, DY: 0},
	{DX: 0, DY: 1},
	{DX: 0, DY: -1},
	{DX: 1, DY: 1},
	{DX: 1, DY: -1},
	{DX: -1, DY: 1},
	{DX: -1, DY: -1},
}
