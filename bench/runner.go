package bench

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lathkin/octopath/astar"
	"github.com/lathkin/octopath/grid"
	"github.com/lathkin/octopath/jps"
)

// Sample is one timed run of one algorithm against one scenario problem.
type Sample struct {
	ElapsedSeconds float64
	Expanded       int
}

// Summary aggregates every Sample collected for one algorithm across an
// entire run: mean elapsed time and mean expanded-node count, each with a
// 95% confidence interval.
type Summary struct {
	SearchName         string
	MeanElapsedSeconds float64
	CI95Elapsed        float64
	MeanExpanded        float64
	CI95Expanded        float64
}

// RunConfig describes one benchmark sweep.
type RunConfig struct {
	// Problems is the set of scenario problems to time every algorithm
	// against.
	Problems []grid.ScenarioProblem

	// Algorithms restricts the sweep to these names ("astar", "astarw",
	// "jps", "jpsw"); empty means all four.
	Algorithms []string

	// Repeats is how many times each problem is timed per algorithm.
	Repeats int

	// TerrainWeightsPath is passed to grid.WeightedFromMovingAIFile for the
	// weighted algorithms; empty uses a terrain_weights.json beside each map
	// file if one exists, else the deterministic formula.
	TerrainWeightsPath string
}

var allAlgorithms = []string{"astar", "astarw", "jps", "jpsw"}

func isWeightedAlgorithm(name string) bool {
	return name == "astarw" || name == "jpsw"
}

// RunScenarios loads each problem's map once, then runs every requested
// algorithm against every problem cfg.Repeats times, timing each run. The
// per-algorithm sweeps run concurrently via errgroup — they are read-only
// over the same immutable grids, which is exactly the scenario
// grid.UnweightedGrid and grid.WeightedGrid are built to allow.
func RunScenarios(ctx context.Context, cfg RunConfig) ([]Summary, error) {
	algorithms := cfg.Algorithms
	if len(algorithms) == 0 {
		algorithms = allAlgorithms
	}
	repeats := cfg.Repeats
	if repeats <= 0 {
		repeats = 1
	}

	uGrids := make([]*grid.UnweightedGrid, len(cfg.Problems))
	wGrids := make([]*grid.WeightedGrid, len(cfg.Problems))
	needWeighted, needUnweighted := false, false
	for _, name := range algorithms {
		if isWeightedAlgorithm(name) {
			needWeighted = true
		} else {
			needUnweighted = true
		}
	}
	for i, p := range cfg.Problems {
		if needUnweighted {
			g, err := grid.FromMovingAIFile(p.MapPath)
			if err != nil {
				return nil, fmt.Errorf("bench: loading %s: %w", p.MapPath, err)
			}
			uGrids[i] = g
		}
		if needWeighted {
			g, err := grid.WeightedFromMovingAIFile(p.MapPath, cfg.TerrainWeightsPath)
			if err != nil {
				return nil, fmt.Errorf("bench: loading %s: %w", p.MapPath, err)
			}
			wGrids[i] = g
		}
	}

	var mu sync.Mutex
	samples := make(map[string][]Sample, len(algorithms))

	eg, egCtx := errgroup.WithContext(ctx)
	for _, name := range algorithms {
		name := name
		eg.Go(func() error {
			local := make([]Sample, 0, len(cfg.Problems)*repeats)
			for i, p := range cfg.Problems {
				select {
				case <-egCtx.Done():
					return egCtx.Err()
				default:
				}

				for r := 0; r < repeats; r++ {
					sample, err := timeOne(name, uGrids[i], wGrids[i], p)
					if err != nil {
						return err
					}
					local = append(local, sample)
				}
			}

			mu.Lock()
			samples[name] = local
			mu.Unlock()

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	summaries := make([]Summary, 0, len(algorithms))
	for _, name := range algorithms {
		s := samples[name]
		elapsed := make([]float64, len(s))
		expanded := make([]float64, len(s))
		for i, sample := range s {
			elapsed[i] = sample.ElapsedSeconds
			expanded[i] = float64(sample.Expanded)
		}
		meanElapsed, ciElapsed := MeanAndCI95(elapsed)
		meanExpanded, ciExpanded := MeanAndCI95(expanded)
		summaries = append(summaries, Summary{
			SearchName:          name,
			MeanElapsedSeconds:  meanElapsed,
			CI95Elapsed:         ciElapsed,
			MeanExpanded:        meanExpanded,
			CI95Expanded:        ciExpanded,
		})
	}

	return summaries, nil
}

func timeOne(name string, ug *grid.UnweightedGrid, wg *grid.WeightedGrid, p grid.ScenarioProblem) (Sample, error) {
	started := time.Now()

	var expanded int
	var err error
	switch name {
	case "astar":
		var res astar.Result
		res, err = astar.Search(ug, p.Start, p.Goal)
		expanded = res.Expanded
	case "astarw":
		var res astar.Result
		res, err = astar.SearchWeighted(wg, p.Start, p.Goal)
		expanded = res.Expanded
	case "jps":
		var res jps.Result
		res, err = jps.Search(ug, p.Start, p.Goal)
		expanded = res.Expanded
	case "jpsw":
		var res jps.Result
		res, err = jps.SearchWeighted(wg, p.Start, p.Goal)
		expanded = res.Expanded
	default:
		return Sample{}, fmt.Errorf("bench: unknown algorithm %q", name)
	}
	if err != nil {
		return Sample{}, err
	}

	return Sample{ElapsedSeconds: time.Since(started).Seconds(), Expanded: expanded}, nil
}
