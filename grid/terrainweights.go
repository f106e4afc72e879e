package grid

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// LoadTerrainWeights reads a JSON object mapping single-character terrain
// keys to positive weights, e.g. {"G": 1.5, "W": 4}. Multi-character keys
// use only their first rune. Returns an error wrapping ErrBadTerrainWeights
// if the file cannot be read, is not valid JSON, or is not a JSON object.
func LoadTerrainWeights(path string) (map[rune]float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadTerrainWeights, err)
	}

	var data map[string]float64
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadTerrainWeights, err)
	}

	mapping := make(map[rune]float64, len(data))
	for key, value := range data {
		runes := []rune(key)
		if len(runes) == 0 {
			continue
		}
		mapping[runes[0]] = value
	}

	return mapping, nil
}

// resolveTerrainWeights implements the lookup order for a map's terrain
// weights: an explicit terrainWeightsPath if given, else a
// "terrain_weights.json" sibling of the map file. A missing file at any
// candidate is not an error — it simply falls through to the next
// candidate, and ultimately to an empty mapping (every character falls
// back to fallbackWeight). An unreadable or malformed file that does
// exist, however, is fatal.
func resolveTerrainWeights(mapPath, terrainWeightsPath string) (map[rune]float64, error) {
	candidates := make([]string, 0, 2)
	if terrainWeightsPath != "" {
		candidates = append(candidates, terrainWeightsPath)
	} else {
		mapDir, err := filepath.Abs(filepath.Dir(mapPath))
		if err == nil {
			candidates = append(candidates, filepath.Join(mapDir, "terrain_weights.json"))
		}
	}

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		if _, err := os.Stat(candidate); err != nil {
			continue
		}

		return LoadTerrainWeights(candidate)
	}

	return map[rune]float64{}, nil
}
