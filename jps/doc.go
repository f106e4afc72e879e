// Package jps implements Jump Point Search, an optimal-path pruning layer
// over octile-connected grids that skips intermediate cells a plain
// best-first search would otherwise expand one at a time.
//
// Both an unweighted form (Search, uniform step cost, classic forced-
// neighbor pruning) and a weighted form (SearchWeighted, per-cell
// traversal weights, local-optimality pruning) are provided.
//
// Complexity:
//
//   - Time:  same asymptotic bound as astar (O(E log V)) but with a much
//     smaller constant in practice, since most cells along a straight or
//     diagonal run are skipped rather than pushed onto the open set.
//   - Space: O(V) for g-score, parent, dir-parent, and closed maps.
//
// Notes on implementation choices:
//
//   - Two parent pointers are tracked per cell: parent, used to reconstruct
//     the returned path, and dirParent, the "prune parent" used only to
//     decide which neighbor directions to expand next. They diverge because
//     a jump point's prune parent is the cell one unit step back along the
//     jump direction, not the cell that discovered it.
//   - Forced-neighbor detection (Search) and the multi-terrain trigger
//     (SearchWeighted) decide when jump must stop and report an
//     "interesting" cell instead of continuing past it.
//   - SearchWeighted additionally prunes a neighbor direction whenever a
//     local Dijkstra search confined to the surrounding 3x3 patch finds a
//     strictly better (or equally good but shorter-final-step) route to it
//     than the direct two-step move — see prune_weighted.go.
//   - Same lazy-decrease-key open set and insertion-order tie-break as
//     package astar, for the same reasons.
package jps
