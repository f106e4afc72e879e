package astar

import "errors"

// Sentinel errors returned by Search and SearchWeighted.
var (
	// ErrNilGrid indicates a nil *grid.UnweightedGrid or *grid.WeightedGrid
	// was passed in.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrOutOfBounds indicates start or goal lies outside the grid's
	// rectangle.
	ErrOutOfBounds = errors.New("astar: start or goal out of bounds")

	// ErrBlockedEndpoint indicates start or goal is not a walkable cell.
	ErrBlockedEndpoint = errors.New("astar: start or goal is blocked")
)
