// Package octopath is your toolkit for shortest-path search on 2D octile
// grids in Go.
//
// 🚀 What is octopath?
//
//	A small, dependency-light module that brings together four solvers
//	over MovingAI-style grids:
//
//	  • A*      — classic best-first search, uniform step costs
//	  • A*W     — A* over terrain with per-cell movement weights
//	  • JPS     — Jump Point Search, A*'s symmetry-breaking sibling
//	  • JPSW    — JPS generalized to weighted terrain
//
// ✨ Why choose octopath?
//
//   - Predictable — JPS returns the same path cost as A*, and JPSW the
//     same as A*W, on any instance where both find one; JPS never expands
//     more nodes
//   - Honest      — an unreachable goal is reported as +Inf cost, never
//     an error
//   - Grounded    — corner-cutting, forced neighbors, and terrain
//     transitions all follow the MovingAI octile-grid conventions
//
// Under the hood, everything is organized under a handful of packages:
//
//	octile/   — grid-agnostic geometry: cells, directions, heuristics
//	grid/     — UnweightedGrid and WeightedGrid, loaded from ASCII or
//	            MovingAI .map/.scen files
//	pathutil/ — parent-chain reconstruction and diagonal-run expansion
//	astar/    — A* and A*W
//	jps/      — JPS and JPSW
//	render/   — ASCII overlay of a found path onto its grid
//	bench/    — timed sweeps across scenario sets, with confidence
//	            intervals on elapsed time and expanded-node counts
//	internal/logging/   — structured, rotating-file-capable logging
//	internal/runconfig/ — YAML configuration for benchmark runs
//	cmd/octopath/       — the demo/run/bench command-line entry point
//
// Quick ASCII example:
//
//	S . . #
//	. # . #
//	. # . .
//	. . . G
//
//	S and G are the start and goal; # is blocked terrain.
//
// See SPEC_FULL.md and DESIGN.md for the full specification and the
// reasoning behind each package's design.
package octopath
