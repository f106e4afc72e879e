// Package bench times astar and jps against each other across a set of
// MovingAI scenario problems, reporting mean elapsed time and mean expanded
// node count with 95% confidence intervals for each algorithm.
//
// Notes on implementation choices:
//
//   - The per-algorithm sweeps are independent of each other, so
//     RunScenarios runs one goroutine per algorithm with
//     golang.org/x/sync/errgroup; each goroutine times its problems one
//     after another.
//   - Confidence intervals use the normal approximation (1.96 * standard
//     error), matching the reference benchmark harness this package is
//     ported from; this is a reasonable approximation once a few dozen
//     repeats have been collected, not a small-sample correction.
package bench
