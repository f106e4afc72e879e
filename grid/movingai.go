package grid

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// readMapHeader parses the four MovingAI octile header lines and returns
// the declared height, width, and the remaining lines (the grid rows).
func readMapHeader(lines []string) (height, width int, rows []string, err error) {
	if len(lines) < 4 || !strings.EqualFold(strings.TrimSpace(lines[0]), "type octile") {
		return 0, 0, nil, fmt.Errorf("%w: missing 'type octile' header", ErrMalformedMap)
	}

	height, err = parseHeaderField(lines[1], "height")
	if err != nil {
		return 0, 0, nil, err
	}
	width, err = parseHeaderField(lines[2], "width")
	if err != nil {
		return 0, 0, nil, err
	}
	if !strings.EqualFold(strings.TrimSpace(lines[3]), "map") {
		return 0, 0, nil, fmt.Errorf("%w: missing 'map' line before grid data", ErrMalformedMap)
	}

	rows = lines[4:]
	if len(rows) < height {
		return 0, 0, nil, fmt.Errorf("%w: declared height %d exceeds row count %d", ErrMalformedMap, height, len(rows))
	}

	return height, width, rows[:height], nil
}

func parseHeaderField(line, name string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, fmt.Errorf("%w: missing %s declaration", ErrMalformedMap, name)
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s declaration: %v", ErrMalformedMap, name, err)
	}

	return v, nil
}

func readNonEmptyLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMap, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMap, err)
	}

	return lines, nil
}

// FromMovingAIFile reads a MovingAI octile .map file and builds an
// UnweightedGrid. Characters '.', 'G', 'S', 'W' are walkable; '@', 'O', 'T'
// are blocked; any other character is treated as blocked, per the
// unweighted model's convention (§6 of the map format).
func FromMovingAIFile(path string) (*UnweightedGrid, error) {
	lines, err := readNonEmptyLines(path)
	if err != nil {
		return nil, err
	}
	height, width, rows, err := readMapHeader(lines)
	if err != nil {
		return nil, err
	}

	walkable := make([][]bool, height)
	chars := make([][]rune, height)
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) < width {
			return nil, fmt.Errorf("%w: row %d shorter than declared width", ErrMalformedMap, y)
		}
		runes = runes[:width]
		walkable[y] = make([]bool, width)
		chars[y] = runes
		for x, ch := range runes {
			walkable[y][x] = isWalkableMapChar(ch)
		}
	}

	return NewUnweightedGrid(walkable, chars)
}

// isWalkableMapChar classifies a MovingAI map character for the unweighted
// model: '.', 'G', 'S', 'W' walkable; everything else (including unknown
// characters) blocked.
func isWalkableMapChar(ch rune) bool {
	switch ch {
	case '.', 'G', 'S', 'W':
		return true
	default:
		return false
	}
}

// WeightedFromMovingAIFile reads a MovingAI octile .map file and builds a
// WeightedGrid. Obstacle characters ('@', 'O', 'T') are blocked; every
// other character — including unknown ones, unlike the unweighted model —
// is walkable with a weight resolved via terrainWeightsPath (see
// LoadTerrainWeights), falling back to fallbackWeight when unmapped.
func WeightedFromMovingAIFile(path, terrainWeightsPath string) (*WeightedGrid, error) {
	lines, err := readNonEmptyLines(path)
	if err != nil {
		return nil, err
	}
	height, width, rows, err := readMapHeader(lines)
	if err != nil {
		return nil, err
	}

	mapping, err := resolveTerrainWeights(path, terrainWeightsPath)
	if err != nil {
		return nil, err
	}

	walkable := make([][]bool, height)
	weights := make([][]float64, height)
	chars := make([][]rune, height)
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) < width {
			return nil, fmt.Errorf("%w: row %d shorter than declared width", ErrMalformedMap, y)
		}
		runes = runes[:width]
		walkable[y] = make([]bool, width)
		weights[y] = make([]float64, width)
		chars[y] = runes
		for x, ch := range runes {
			if ch == '@' || ch == 'O' || ch == 'T' {
				walkable[y][x] = false
				weights[y][x] = math.Inf(1)
				continue
			}
			walkable[y][x] = true
			if w, ok := mapping[ch]; ok {
				weights[y][x] = w
			} else {
				weights[y][x] = fallbackWeight(ch)
			}
		}
	}

	return NewWeightedGrid(walkable, weights, chars)
}
