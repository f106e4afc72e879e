package astar_test

import (
	"testing"

	"github.com/lathkin/octopath/astar"
	"github.com/lathkin/octopath/grid"
	"github.com/lathkin/octopath/octile"
)

// Every consecutive pair of cells in a returned path must be a single
// legal octile step: adjacent (dx, dy in {-1,0,1}, not both zero), and
// any diagonal step must not cut a blocked corner.
func assertPathValid(t *testing.T, path []octile.Cell, validStep func(x, y, dx, dy int) bool) {
	t.Helper()
	for i := 0; i+1 < len(path); i++ {
		a, b := path[i], path[i+1]
		dx, dy := b.X-a.X, b.Y-a.Y
		if dx < -1 || dx > 1 || dy < -1 || dy > 1 || (dx == 0 && dy == 0) {
			t.Fatalf("step %d->%d is not a single octile step: %v -> %v", i, i+1, a, b)
		}
		if !validStep(a.X, a.Y, dx, dy) {
			t.Fatalf("step %d->%d (%v -> %v) is not a legal step on this grid", i, i+1, a, b)
		}
	}
}

func TestSearch_PathIsValidOnClutteredGrid(t *testing.T) {
	g := mustASCII(t, []string{
		"..........",
		".####.....",
		"......#...",
		"...##.....",
		"...##.....",
		"...##.....",
		"...##.....",
		"...##.....",
		"...##.....",
		"..........",
	})
	corners := []octile.Cell{{X: 0, Y: 0}, {X: 9, Y: 0}, {X: 0, Y: 9}, {X: 9, Y: 9}}
	for _, start := range corners {
		for _, goal := range corners {
			if start == goal {
				continue
			}
			result, err := astar.Search(g, start, goal)
			if err != nil {
				t.Fatalf("Search(%v, %v): %v", start, goal, err)
			}
			if len(result.Path) == 0 {
				continue
			}
			assertPathValid(t, result.Path, g.ValidStep)
		}
	}
}

func TestSearchWeighted_PathIsValidOnClutteredGrid(t *testing.T) {
	rows := []string{
		"AAAAAAAAAA",
		"ABBBBAAAAA",
		"AAAAAABAAA",
		"AAABBAAAAA",
		"AAABBAAAAA",
		"AAABBAAAAA",
		"AAABBAAAAA",
		"AAABBAAAAA",
		"AAABBAAAAA",
		"AAAAAAAAAA",
	}
	g, err := grid.WeightedFromASCII(rows, map[rune]float64{'A': 1, 'B': 3})
	if err != nil {
		t.Fatalf("WeightedFromASCII: %v", err)
	}
	corners := []octile.Cell{{X: 0, Y: 0}, {X: 9, Y: 0}, {X: 0, Y: 9}, {X: 9, Y: 9}}
	for _, start := range corners {
		for _, goal := range corners {
			if start == goal {
				continue
			}
			result, err := astar.SearchWeighted(g, start, goal)
			if err != nil {
				t.Fatalf("SearchWeighted(%v, %v): %v", start, goal, err)
			}
			if len(result.Path) == 0 {
				continue
			}
			assertPathValid(t, result.Path, g.ValidStep)
		}
	}
}
