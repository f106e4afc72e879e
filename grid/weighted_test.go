package grid_test

import (
	"math"
	"testing"

	"github.com/lathkin/octopath/grid"
)

func TestWeightedFromASCII_TerrainCharIsWalkableWithMappedWeight(t *testing.T) {
	g, err := grid.WeightedFromASCII([]string{
		"...",
		".H.",
		"...",
	}, map[rune]float64{'.': 1, 'H': 10})
	if err != nil {
		t.Fatalf("WeightedFromASCII: %v", err)
	}
	if g.IsWalkable(1, 1) != true {
		t.Fatal("'H' should be walkable terrain, not an obstacle")
	}
	if g.Weight(1, 1) != 10 {
		t.Fatalf("weight of H should be 10, got %v", g.Weight(1, 1))
	}
}

func TestWeightedFromASCII_FallbackWeight(t *testing.T) {
	g, err := grid.WeightedFromASCII([]string{"G"}, nil)
	if err != nil {
		t.Fatalf("WeightedFromASCII: %v", err)
	}
	want := 1 + float64(int('G')%9)
	if got := g.Weight(0, 0); got != want {
		t.Fatalf("fallback weight for 'G' = %v, want %v", got, want)
	}
}

func TestWeightedGrid_MinCellCost(t *testing.T) {
	g, err := grid.WeightedFromASCII([]string{
		"..",
		".#",
	}, map[rune]float64{'.': 3})
	if err != nil {
		t.Fatalf("WeightedFromASCII: %v", err)
	}
	if got := g.MinCellCost(); got != 3 {
		t.Fatalf("MinCellCost = %v, want 3", got)
	}
}

func TestTransitionCost_Straight(t *testing.T) {
	g, err := grid.WeightedFromASCII([]string{".."}, map[rune]float64{'.': 4})
	if err != nil {
		t.Fatalf("WeightedFromASCII: %v", err)
	}
	cost, err := g.TransitionCost(0, 0, 1, 0)
	if err != nil {
		t.Fatalf("TransitionCost: %v", err)
	}
	if cost != 4 {
		t.Fatalf("straight transition cost = %v, want 4 (average of equal weights)", cost)
	}
}

func TestTransitionCost_Diagonal(t *testing.T) {
	g, err := grid.WeightedFromASCII([]string{
		"..",
		"..",
	}, map[rune]float64{'.': 2})
	if err != nil {
		t.Fatalf("WeightedFromASCII: %v", err)
	}
	cost, err := g.TransitionCost(0, 0, 1, 1)
	if err != nil {
		t.Fatalf("TransitionCost: %v", err)
	}
	want := math.Sqrt2 * 2
	if math.Abs(cost-want) > 1e-9 {
		t.Fatalf("diagonal transition cost = %v, want %v", cost, want)
	}
}

func TestTransitionCost_IllegalStepIsAnError(t *testing.T) {
	g, err := grid.WeightedFromASCII([]string{
		"#.",
		"..",
	}, nil)
	if err != nil {
		t.Fatalf("WeightedFromASCII: %v", err)
	}
	// (1,1) -> (0,0) is a diagonal step onto the blocked cell (0,0).
	if _, err := g.TransitionCost(1, 1, 0, 0); err != grid.ErrIllegalTransition {
		t.Fatalf("expected ErrIllegalTransition, got %v", err)
	}
}
