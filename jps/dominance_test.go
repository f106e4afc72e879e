package jps_test

import (
	"testing"

	"github.com/lathkin/octopath/astar"
	"github.com/lathkin/octopath/jps"
	"github.com/lathkin/octopath/octile"
)

// TestSearch_ExpandsNoMoreThanAstar checks jump-point pruning's core
// promise: across a handful of representative open and cluttered grids,
// jps never closes more cells than plain astar to find the same path.
func TestSearch_ExpandsNoMoreThanAstar(t *testing.T) {
	cases := []struct {
		name  string
		rows  []string
		start octile.Cell
		goal  octile.Cell
	}{
		{
			name: "open",
			rows: []string{
				"..........",
				"..........",
				"..........",
				"..........",
				"..........",
				"..........",
				"..........",
				"..........",
				"..........",
				"..........",
			},
			start: octile.Cell{X: 0, Y: 0},
			goal:  octile.Cell{X: 9, Y: 9},
		},
		{
			name: "cluttered",
			rows: []string{
				"...#......",
				".#.#.##...",
				".#...#.##.",
				".#.##.#...",
				".#....#.#.",
				".####.#.#.",
				"......#.#.",
				".####.#.#.",
				"...#..#...",
				".#.#..#...",
			},
			start: octile.Cell{X: 0, Y: 0},
			goal:  octile.Cell{X: 9, Y: 9},
		},
	}

	var totalAstar, totalJPS int
	for _, tc := range cases {
		g := mustASCII(t, tc.rows)

		aResult, err := astar.Search(g, tc.start, tc.goal)
		if err != nil {
			t.Fatalf("%s: astar.Search: %v", tc.name, err)
		}
		jResult, err := jps.Search(g, tc.start, tc.goal)
		if err != nil {
			t.Fatalf("%s: jps.Search: %v", tc.name, err)
		}

		if jResult.Expanded > aResult.Expanded {
			t.Errorf("%s: jps expanded %d cells, astar expanded %d — jps should never expand more", tc.name, jResult.Expanded, aResult.Expanded)
		}
		totalAstar += aResult.Expanded
		totalJPS += jResult.Expanded
	}

	if totalJPS > totalAstar {
		t.Fatalf("mean expanded count: jps=%d astar=%d, want jps <= astar", totalJPS, totalAstar)
	}
}
