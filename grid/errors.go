package grid

import "errors"

// Sentinel errors returned by grid construction, loading, and cost queries.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrMalformedMap indicates a MovingAI .map file is missing its header,
	// has a bad width/height declaration, or has fewer rows than declared.
	ErrMalformedMap = errors.New("grid: malformed MovingAI map file")

	// ErrMalformedScenario indicates a .scen file could not be parsed at all
	// (as opposed to individual malformed lines, which are skipped).
	ErrMalformedScenario = errors.New("grid: malformed scenario file")

	// ErrBadTerrainWeights indicates a terrain-weights file could not be
	// read, was not valid JSON, or was not a JSON object.
	ErrBadTerrainWeights = errors.New("grid: invalid terrain weights file")

	// ErrIllegalTransition indicates TransitionCost was asked for the cost
	// of a step that ValidStep rejects — a programming error in the caller,
	// not a recoverable search outcome.
	ErrIllegalTransition = errors.New("grid: illegal transition requested")
)
