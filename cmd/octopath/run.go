package main

import (
	"flag"
	"fmt"

	"go.uber.org/zap"

	"github.com/lathkin/octopath/astar"
	"github.com/lathkin/octopath/grid"
	"github.com/lathkin/octopath/jps"
	"github.com/lathkin/octopath/octile"
	"github.com/lathkin/octopath/render"
)

// runRun executes a single search, either against a bare map file with an
// explicit start/goal, or against one indexed problem from a MovingAI
// .scen file (in which case the recorded optimal length is also printed
// for comparison, the way the reference CLI's --scenario mode does).
func runRun(log *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	mapPath := fs.String("map", "", "path to a MovingAI .map file")
	scenarioPath := fs.String("scenario", "", "path to a MovingAI .scen file")
	index := fs.Int("index", 0, "problem index within --scenario")
	startX := fs.Int("start-x", 0, "start cell X (with --map)")
	startY := fs.Int("start-y", 0, "start cell Y (with --map)")
	goalX := fs.Int("goal-x", 0, "goal cell X (with --map)")
	goalY := fs.Int("goal-y", 0, "goal cell Y (with --map)")
	algorithm := fs.String("algorithm", "jps", "astar, astarw, jps, or jpsw")
	terrainWeights := fs.String("terrain-weights", "", "optional terrain weights file for astarw/jpsw")
	showPath := fs.Bool("show-path", false, "render the grid with the found path overlaid")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		p             grid.ScenarioProblem
		hasOptimal    bool
		resolvedMap   string
	)
	switch {
	case *scenarioPath != "":
		problems, err := grid.LoadScenarios(*scenarioPath)
		if err != nil {
			return fmt.Errorf("loading scenario file: %w", err)
		}
		if *index < 0 || *index >= len(problems) {
			return fmt.Errorf("index %d out of range: scenario file has %d problems", *index, len(problems))
		}
		p = problems[*index]
		hasOptimal = true
		resolvedMap = p.MapPath
	case *mapPath != "":
		p = grid.ScenarioProblem{
			MapPath: *mapPath,
			Start:   octile.Cell{X: *startX, Y: *startY},
			Goal:    octile.Cell{X: *goalX, Y: *goalY},
		}
		resolvedMap = *mapPath
	default:
		return fmt.Errorf("run requires either --map or --scenario")
	}

	log.Info("running search", zap.String("algorithm", *algorithm), zap.String("map", resolvedMap))

	var (
		cost     float64
		expanded int
		path     []octile.Cell
		err      error
	)
	weighted := *algorithm == "astarw" || *algorithm == "jpsw"
	if weighted {
		wg, loadErr := grid.WeightedFromMovingAIFile(resolvedMap, *terrainWeights)
		if loadErr != nil {
			return fmt.Errorf("loading weighted map: %w", loadErr)
		}
		switch *algorithm {
		case "astarw":
			var res astar.Result
			res, err = astar.SearchWeighted(wg, p.Start, p.Goal)
			cost, expanded, path = res.Cost, res.Expanded, res.Path
		case "jpsw":
			var res jps.Result
			res, err = jps.SearchWeighted(wg, p.Start, p.Goal)
			cost, expanded, path = res.Cost, res.Expanded, res.Path
		}
	} else {
		ug, loadErr := grid.FromMovingAIFile(resolvedMap)
		if loadErr != nil {
			return fmt.Errorf("loading map: %w", loadErr)
		}
		switch *algorithm {
		case "astar":
			var res astar.Result
			res, err = astar.Search(ug, p.Start, p.Goal)
			cost, expanded, path = res.Cost, res.Expanded, res.Path
		case "jps":
			var res jps.Result
			res, err = jps.Search(ug, p.Start, p.Goal)
			cost, expanded, path = res.Cost, res.Expanded, res.Path
		default:
			return fmt.Errorf("unknown algorithm %q", *algorithm)
		}
		if *showPath && err == nil {
			fmt.Println(render.Overlay(ug, path, p.Start, p.Goal))
		}
	}
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	fmt.Printf("Cost: %.6f, expanded: %d\n", cost, expanded)
	if hasOptimal {
		fmt.Printf("Recorded optimal length: %.6f\n", p.OptimalLength)
	}
	if weighted && *showPath {
		fmt.Println("(--show-path overlay is only rendered for unweighted algorithms)")
	}

	return nil
}
