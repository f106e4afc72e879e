// Package astar implements A* best-first search over octile-connected grids,
// in both its unweighted form (Search, uniform step cost) and its weighted
// form (SearchWeighted, per-cell traversal weights).
//
// Complexity:
//
//   - Time:  O(E log V) where V = walkable cells, E = octile edges (≤ 8V).
//   - Each cell is finalized (moved to closed) at most once; every
//     relaxation may push a new heap entry.
//   - Space: O(V) for the g-score, parent, and closed maps, plus O(E)
//     worst-case heap entries under the lazy-decrease-key strategy below.
//
// Notes on implementation choices:
//
//   - We use a "lazy" decrease-key strategy: pushing a duplicate entry into
//     the heap whenever g improves, and skipping any popped entry whose
//     recorded priority no longer matches the best known g-score for that
//     cell. This avoids implementing a heap with an update operation.
//   - A monotonically increasing insertion counter breaks ties between
//     equal-f entries in FIFO order, making expansion order — and therefore
//     the returned path when several are equally short — reproducible.
//   - Search never returns an error for "no path exists"; an unreachable
//     goal is a normal outcome (Result.Cost == math.Inf(1)). Errors are
//     reserved for malformed input.
package astar
