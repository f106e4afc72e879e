package grid

import "math"

// isObstacleChar reports whether ch is one of the characters the MovingAI
// convention treats as blocked: '#' (ASCII test grids), '@', 'O', 'T'
// (MovingAI octile maps).
func isObstacleChar(ch rune) bool {
	switch ch {
	case '#', '@', 'O', 'T':
		return true
	default:
		return false
	}
}

// FromASCII builds an UnweightedGrid from equal-length rows of characters.
// Any character other than '#' is walkable; '#' is blocked. This is the
// simplest way to build a grid for tests and the CLI demo.
func FromASCII(rows []string) (*UnweightedGrid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len([]rune(rows[0]))
	height := len(rows)

	walkable := make([][]bool, height)
	chars := make([][]rune, height)
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, ErrNonRectangular
		}
		walkable[y] = make([]bool, width)
		chars[y] = runes
		for x, ch := range runes {
			walkable[y][x] = ch != '#'
		}
	}

	return NewUnweightedGrid(walkable, chars)
}

// WeightedFromASCII builds a WeightedGrid from equal-length rows of
// characters. Obstacle characters ('#', '@', 'O', 'T') are blocked (weight
// +Inf); every other character is walkable with a weight taken from
// weights, falling back to fallbackWeight(ch) when the character is not a
// key of weights.
func WeightedFromASCII(rows []string, weights map[rune]float64) (*WeightedGrid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len([]rune(rows[0]))
	height := len(rows)

	walkable := make([][]bool, height)
	wt := make([][]float64, height)
	chars := make([][]rune, height)
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, ErrNonRectangular
		}
		walkable[y] = make([]bool, width)
		wt[y] = make([]float64, width)
		chars[y] = runes
		for x, ch := range runes {
			if isObstacleChar(ch) {
				walkable[y][x] = false
				wt[y][x] = math.Inf(1)
				continue
			}
			walkable[y][x] = true
			if w, ok := weights[ch]; ok {
				wt[y][x] = w
			} else {
				wt[y][x] = fallbackWeight(ch)
			}
		}
	}

	return NewWeightedGrid(walkable, wt, chars)
}

// fallbackWeight is the deterministic weight assigned to a terrain
// character with no entry in a terrain-weights file: 1 + (codepoint mod 9).
// It guarantees well-defined behavior even with no weights file at all.
func fallbackWeight(ch rune) float64 {
	return 1 + float64(int(ch)%9)
}
