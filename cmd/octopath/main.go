// Command octopath runs A*, A*W, JPS, and JPSW over MovingAI-style grids:
// a quick demo, a single start/goal or scenario-file run, or a benchmark
// sweep across a set of scenarios.
//
// Usage:
//
//	octopath demo
//	octopath run --map FILE --start-x X --start-y Y --goal-x X --goal-y Y --algorithm {astar,astarw,jps,jpsw} [--show-path]
//	octopath run --scenario FILE --index N --algorithm ... [--show-path]
//	octopath bench --config FILE
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/lathkin/octopath/internal/logging"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: octopath {demo|run|bench} [flags]")
		os.Exit(1)
	}

	log := logging.New("info", logging.FileConfig{})
	defer log.Sync() //nolint:errcheck // best-effort flush on exit

	var err error
	switch os.Args[1] {
	case "demo":
		err = runDemo(log)
	case "run":
		err = runRun(log, os.Args[2:])
	case "bench":
		err = runBench(log, os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", os.Args[1])
		os.Exit(1)
	}

	if err != nil {
		log.Error("octopath failed", zap.Error(err))
		os.Exit(1)
	}
}
