package grid_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lathkin/octopath/grid"
)

func TestLoadScenarios_ParsesFieldsAndSkipsBadLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.map.scen")
	contents := "version 1\n" +
		"0\tsample.map\t10\t10\t1\t2\t8\t9\t9.899495\n" +
		"garbage line with too few fields\n" +
		"sample.map\t10\t10\t0\t0\t1\t1\t1.414214\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	problems, err := grid.LoadScenarios(path)
	if err != nil {
		t.Fatalf("LoadScenarios: %v", err)
	}
	if len(problems) != 2 {
		t.Fatalf("expected 2 parsed problems, got %d", len(problems))
	}
	if problems[0].Start.X != 1 || problems[0].Start.Y != 2 || problems[0].Goal.X != 8 || problems[0].Goal.Y != 9 {
		t.Fatalf("unexpected first problem: %+v", problems[0])
	}
	if problems[1].OptimalLength != 1.414214 {
		t.Fatalf("unexpected optimal length: %v", problems[1].OptimalLength)
	}
}

func TestLoadScenarios_ResolvesMapDirAlongsideScenDir(t *testing.T) {
	root := t.TempDir()
	scenDir := filepath.Join(root, "maze-scen")
	mapDir := filepath.Join(root, "maze-map")
	if err := os.MkdirAll(scenDir, 0o755); err != nil {
		t.Fatalf("MkdirAll scen: %v", err)
	}
	if err := os.MkdirAll(mapDir, 0o755); err != nil {
		t.Fatalf("MkdirAll map: %v", err)
	}
	scenPath := filepath.Join(scenDir, "maze-1.map.scen")
	contents := "version 1\nmaze-1.map\t5\t5\t0\t0\t1\t1\t1.41\n"
	if err := os.WriteFile(scenPath, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	problems, err := grid.LoadScenarios(scenPath)
	if err != nil {
		t.Fatalf("LoadScenarios: %v", err)
	}
	if len(problems) != 1 {
		t.Fatalf("expected 1 problem, got %d", len(problems))
	}
	want := filepath.Join(mapDir, "maze-1.map")
	if problems[0].MapPath != want {
		t.Fatalf("MapPath = %q, want %q", problems[0].MapPath, want)
	}
}
