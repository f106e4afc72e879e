package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/lathkin/octopath/bench"
	"github.com/lathkin/octopath/grid"
	"github.com/lathkin/octopath/internal/logging"
	"github.com/lathkin/octopath/internal/runconfig"
)

// runBench drives a full benchmark sweep from a YAML config file: it
// collects every .scen file under cfg.ScenarioDirs, loads their problems,
// times every requested algorithm across all of them, and writes a
// summary CSV — the octopath equivalent of the reference harness's
// run_benchmarks.py driver script.
func runBench(log *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a YAML bench config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := runconfig.Default()
	if *configPath != "" {
		loaded, err := runconfig.Load(*configPath)
		if err != nil {
			return fmt.Errorf("loading bench config: %w", err)
		}
		cfg = loaded
	}

	if cfg.LogLevel != "info" || cfg.LogFile != "" {
		log = logging.New(cfg.LogLevel, logging.DefaultFileConfig(cfg.LogFile))
		defer log.Sync() //nolint:errcheck // best-effort flush on exit
	}

	var problems []grid.ScenarioProblem
	for _, dir := range cfg.ScenarioDirs {
		scenFiles, err := filepath.Glob(filepath.Join(dir, "*.scen"))
		if err != nil {
			return fmt.Errorf("scanning scenario dir %s: %w", dir, err)
		}
		for _, scenFile := range scenFiles {
			loaded, err := grid.LoadScenarios(scenFile)
			if err != nil {
				return fmt.Errorf("loading %s: %w", scenFile, err)
			}
			problems = append(problems, loaded...)
			log.Debug("loaded scenario file", zap.String("path", scenFile), zap.Int("problems", len(loaded)))
		}
	}
	if len(problems) == 0 {
		return fmt.Errorf("no scenario problems found under %v", cfg.ScenarioDirs)
	}

	log.Info("starting benchmark sweep",
		zap.Int("problems", len(problems)),
		zap.Strings("algorithms", cfg.Algorithms),
		zap.Int("repeats", cfg.Repeats),
	)

	summaries, err := bench.RunScenarios(context.Background(), bench.RunConfig{
		Problems:   problems,
		Algorithms: cfg.Algorithms,
		Repeats:    cfg.Repeats,
	})
	if err != nil {
		return fmt.Errorf("running benchmark sweep: %w", err)
	}

	out, err := os.Create(cfg.OutputCSV)
	if err != nil {
		return fmt.Errorf("creating %s: %w", cfg.OutputCSV, err)
	}
	defer out.Close()

	if err := bench.WriteCSV(out, summaries); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.OutputCSV, err)
	}

	log.Info("benchmark sweep complete", zap.String("output", cfg.OutputCSV))
	for _, s := range summaries {
		fmt.Printf("%-8s mean_elapsed=%.6fs (±%.6f) mean_expanded=%.1f (±%.1f)\n",
			s.SearchName, s.MeanElapsedSeconds, s.CI95Elapsed, s.MeanExpanded, s.CI95Expanded)
	}

	return nil
}
