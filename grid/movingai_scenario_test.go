package grid_test

import (
	"math"
	"testing"

	"github.com/lathkin/octopath/astar"
	"github.com/lathkin/octopath/grid"
	"github.com/lathkin/octopath/jps"
)

// These problems are bundled under testdata/scenarios and track recorded
// optimal path lengths the way a MovingAI benchmark .scen file does. Every
// solver must land on exactly that length (within floating-point
// tolerance) on this fully open grid, where the recorded length is the
// octile distance, so neither algorithm may overshoot the true shortest
// path.
func TestLoadScenarios_SolversMatchRecordedOptimalLength(t *testing.T) {
	problems, err := grid.LoadScenarios("testdata/scenarios/sample8.scen")
	if err != nil {
		t.Fatalf("LoadScenarios: %v", err)
	}
	if len(problems) != 3 {
		t.Fatalf("expected 3 bundled problems, got %d", len(problems))
	}

	ug, err := grid.FromMovingAIFile(problems[0].MapPath)
	if err != nil {
		t.Fatalf("FromMovingAIFile: %v", err)
	}

	const epsilon = 1e-4
	for _, p := range problems {
		aRes, err := astar.Search(ug, p.Start, p.Goal)
		if err != nil {
			t.Fatalf("astar.Search(%v -> %v): %v", p.Start, p.Goal, err)
		}
		if math.Abs(aRes.Cost-p.OptimalLength) > epsilon {
			t.Errorf("astar %v->%v: cost = %.6f, want %.6f", p.Start, p.Goal, aRes.Cost, p.OptimalLength)
		}

		jRes, err := jps.Search(ug, p.Start, p.Goal)
		if err != nil {
			t.Fatalf("jps.Search(%v -> %v): %v", p.Start, p.Goal, err)
		}
		if math.Abs(jRes.Cost-p.OptimalLength) > epsilon {
			t.Errorf("jps %v->%v: cost = %.6f, want %.6f", p.Start, p.Goal, jRes.Cost, p.OptimalLength)
		}
	}
}
