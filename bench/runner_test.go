package bench_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lathkin/octopath/bench"
	"github.com/lathkin/octopath/grid"
	"github.com/lathkin/octopath/octile"
)

func writeTempMap(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "open5.map")
	contents := "type octile\nheight 5\nwidth 5\nmap\n.....\n.....\n.....\n.....\n.....\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	return path
}

func TestRunScenarios_ProducesOneSummaryPerAlgorithm(t *testing.T) {
	mapPath := writeTempMap(t)
	problems := []grid.ScenarioProblem{
		{MapPath: mapPath, MapWidth: 5, MapHeight: 5, Start: octile.Cell{X: 0, Y: 0}, Goal: octile.Cell{X: 4, Y: 4}, OptimalLength: 5.656854},
	}

	cfg := bench.RunConfig{
		Problems:   problems,
		Algorithms: []string{"astar", "jps"},
		Repeats:    2,
	}

	summaries, err := bench.RunScenarios(context.Background(), cfg)
	if err != nil {
		t.Fatalf("RunScenarios: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	for _, s := range summaries {
		if s.MeanExpanded <= 0 {
			t.Fatalf("%s: MeanExpanded = %v, want > 0", s.SearchName, s.MeanExpanded)
		}
		if s.MeanElapsedSeconds < 0 {
			t.Fatalf("%s: MeanElapsedSeconds = %v, want >= 0", s.SearchName, s.MeanElapsedSeconds)
		}
	}
}

func TestRunScenarios_DefaultsToAllFourAlgorithms(t *testing.T) {
	mapPath := writeTempMap(t)
	problems := []grid.ScenarioProblem{
		{MapPath: mapPath, Start: octile.Cell{X: 0, Y: 0}, Goal: octile.Cell{X: 2, Y: 2}},
	}

	summaries, err := bench.RunScenarios(context.Background(), bench.RunConfig{Problems: problems, Repeats: 1})
	if err != nil {
		t.Fatalf("RunScenarios: %v", err)
	}
	if len(summaries) != 4 {
		t.Fatalf("expected 4 summaries (astar, astarw, jps, jpsw), got %d", len(summaries))
	}
}

func TestRunScenarios_RejectsUnreadableMap(t *testing.T) {
	problems := []grid.ScenarioProblem{
		{MapPath: filepath.Join(t.TempDir(), "missing.map"), Start: octile.Cell{}, Goal: octile.Cell{}},
	}

	_, err := bench.RunScenarios(context.Background(), bench.RunConfig{Problems: problems, Algorithms: []string{"astar"}})
	if err == nil {
		t.Fatal("expected an error for a missing map file")
	}
}

func TestWriteCSV_WritesHeaderAndRows(t *testing.T) {
	summaries := []bench.Summary{
		{SearchName: "astar", MeanElapsedSeconds: 0.001, CI95Elapsed: 0.0001, MeanExpanded: 42, CI95Expanded: 1.5},
		{SearchName: "jps", MeanElapsedSeconds: 0.0005, CI95Elapsed: 0.00005, MeanExpanded: 10, CI95Expanded: 0.5},
	}

	var buf strings.Builder
	if err := bench.WriteCSV(&buf, summaries); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines: %q", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "search_name,") {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "astar,") {
		t.Fatalf("unexpected row: %q", lines[1])
	}
}
