package grid

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lathkin/octopath/octile"
)

// ScenarioProblem is one line of a MovingAI .scen file: a start/goal pair
// on a named map, together with the benchmark's recorded optimal path
// length (used to test admissibility, see spec invariant 3).
type ScenarioProblem struct {
	MapPath       string
	MapWidth      int
	MapHeight     int
	Start, Goal   octile.Cell
	OptimalLength float64
}

// LoadScenarios parses a MovingAI .scen file. Each line has 8 or 9
// whitespace-separated fields (an optional leading bucket field, then
// map-relative path, map width, map height, start x/y, goal x/y, optimal
// length); a leading "version" line is tolerated and skipped. Lines that
// don't parse are skipped rather than aborting the whole file, matching
// the reference loader's tolerance for stray/partial lines; the file as a
// whole is rejected only if it cannot be opened at all.
//
// The map file referenced by each line is resolved relative to a sibling
// directory whose name ends in "-map" when the scenario file's own
// directory ends in "-scen"; otherwise it is resolved relative to the
// scenario file's own directory.
func LoadScenarios(path string) ([]ScenarioProblem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedScenario, err)
	}
	defer f.Close()

	baseDir := scenarioMapBaseDir(path)

	var problems []ScenarioProblem
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(strings.ToLower(line), "version") {
			continue
		}
		problem, ok := parseScenarioLine(line, baseDir)
		if ok {
			problems = append(problems, problem)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedScenario, err)
	}

	return problems, nil
}

func scenarioMapBaseDir(scenPath string) string {
	scenDir, err := filepath.Abs(filepath.Dir(scenPath))
	if err != nil {
		scenDir = filepath.Dir(scenPath)
	}
	scenDirName := filepath.Base(scenDir)
	if strings.HasSuffix(scenDirName, "-scen") {
		mapDirName := strings.TrimSuffix(scenDirName, "-scen") + "-map"

		return filepath.Join(filepath.Dir(scenDir), mapDirName)
	}

	return scenDir
}

func parseScenarioLine(line, baseDir string) (ScenarioProblem, bool) {
	fields := strings.Fields(line)
	if len(fields) < 8 {
		return ScenarioProblem{}, false
	}
	if len(fields) >= 9 {
		fields = fields[1:9] // drop the leading bucket field
	} else {
		fields = fields[:8]
	}

	mapRel := fields[0]
	w, errW := strconv.Atoi(fields[1])
	h, errH := strconv.Atoi(fields[2])
	sx, errSX := strconv.Atoi(fields[3])
	sy, errSY := strconv.Atoi(fields[4])
	gx, errGX := strconv.Atoi(fields[5])
	gy, errGY := strconv.Atoi(fields[6])
	opt, errOpt := strconv.ParseFloat(fields[7], 64)
	if errW != nil || errH != nil || errSX != nil || errSY != nil || errGX != nil || errGY != nil || errOpt != nil {
		return ScenarioProblem{}, false
	}

	return ScenarioProblem{
		MapPath:       filepath.Join(baseDir, mapRel),
		MapWidth:      w,
		MapHeight:     h,
		Start:         octile.Cell{X: sx, Y: sy},
		Goal:          octile.Cell{X: gx, Y: gy},
		OptimalLength: opt,
	}, true
}
