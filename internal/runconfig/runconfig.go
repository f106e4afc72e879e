// Package runconfig loads the YAML configuration that drives cmd/octopath's
// bench subcommand: which scenario directories to sweep, how many repeats
// per scenario, which algorithms to compare, and how to log the run.
package runconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the tunable knob set for a benchmark run.
type Config struct {
	// ScenarioDirs lists directories to search for .scen files.
	ScenarioDirs []string `yaml:"scenario_dirs"`

	// Algorithms restricts the run to these algorithm names
	// ("astar", "astarw", "jps", "jpsw"); empty means all four.
	Algorithms []string `yaml:"algorithms"`

	// Repeats is how many times each scenario is timed per algorithm.
	Repeats int `yaml:"repeats"`

	// OutputCSV is where the run's summary CSV is written.
	OutputCSV string `yaml:"output_csv"`

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level"`

	// LogFile is an optional path for rotating file output; empty disables it.
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible defaults: three repeats, info
// logging, no file log, and a CSV written to the current directory.
func Default() Config {
	return Config{
		Repeats:   3,
		OutputCSV: "octopath-bench.csv",
		LogLevel:  "info",
	}
}

// Load reads a YAML config file at path, overlaying it onto Default(). A
// missing file is not an error; Default() is returned unchanged, matching
// the pack's convention that a run works with no config file present.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("runconfig: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("runconfig: parsing %s: %w", path, err)
	}

	return cfg, nil
}
