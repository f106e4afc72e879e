package grid_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lathkin/octopath/grid"
)

func writeTempMap(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.map")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	return path
}

func TestFromMovingAIFile_ParsesHeaderAndRows(t *testing.T) {
	path := writeTempMap(t, "type octile\nheight 3\nwidth 3\nmap\n...\n.@.\n...\n")
	g, err := grid.FromMovingAIFile(path)
	if err != nil {
		t.Fatalf("FromMovingAIFile: %v", err)
	}
	if g.Width != 3 || g.Height != 3 {
		t.Fatalf("dimensions = %dx%d, want 3x3", g.Width, g.Height)
	}
	if g.IsWalkable(1, 1) {
		t.Fatal("'@' should be blocked")
	}
	if !g.IsWalkable(0, 0) {
		t.Fatal("'.' should be walkable")
	}
}

func TestFromMovingAIFile_RejectsMissingHeader(t *testing.T) {
	path := writeTempMap(t, "height 3\nwidth 3\nmap\n...\n...\n...\n")
	if _, err := grid.FromMovingAIFile(path); err == nil {
		t.Fatal("expected an error for a missing 'type octile' header")
	}
}

func TestFromMovingAIFile_RejectsTruncatedRows(t *testing.T) {
	path := writeTempMap(t, "type octile\nheight 3\nwidth 3\nmap\n...\n...\n")
	if _, err := grid.FromMovingAIFile(path); err == nil {
		t.Fatal("expected an error for a map with fewer rows than declared height")
	}
}

func TestWeightedFromMovingAIFile_UnknownCharFallsBackToWalkable(t *testing.T) {
	// Unlike the unweighted model, unknown characters are walkable terrain
	// in the weighted model (with a fallback weight), not obstacles.
	path := writeTempMap(t, "type octile\nheight 1\nwidth 1\nmap\nX\n")
	g, err := grid.WeightedFromMovingAIFile(path, "")
	if err != nil {
		t.Fatalf("WeightedFromMovingAIFile: %v", err)
	}
	if !g.IsWalkable(0, 0) {
		t.Fatal("unknown terrain character should be walkable in the weighted model")
	}
}

func TestWeightedFromMovingAIFile_UsesSiblingTerrainWeightsFile(t *testing.T) {
	dir := t.TempDir()
	mapPath := filepath.Join(dir, "sample.map")
	if err := os.WriteFile(mapPath, []byte("type octile\nheight 1\nwidth 1\nmap\nG\n"), 0o644); err != nil {
		t.Fatalf("WriteFile map: %v", err)
	}
	weightsPath := filepath.Join(dir, "terrain_weights.json")
	if err := os.WriteFile(weightsPath, []byte(`{"G": 7.5}`), 0o644); err != nil {
		t.Fatalf("WriteFile weights: %v", err)
	}

	g, err := grid.WeightedFromMovingAIFile(mapPath, "")
	if err != nil {
		t.Fatalf("WeightedFromMovingAIFile: %v", err)
	}
	if got := g.Weight(0, 0); got != 7.5 {
		t.Fatalf("weight of G = %v, want 7.5 from sibling terrain_weights.json", got)
	}
}
