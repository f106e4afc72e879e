package astar

import "github.com/lathkin/octopath/octile"

// Result is the outcome of a Search or SearchWeighted call.
//
// When the goal is unreachable, Path is nil, Cost is math.Inf(1), and
// Expanded is the true number of cells the search closed before exhausting
// the open set — this is not an error.
type Result struct {
	Path     []octile.Cell
	Cost     float64
	Expanded int
}

// openItem is one entry in the open-set priority queue: a candidate cell
// ordered by f = g + h, with ties broken by insertion order.
type openItem struct {
	f     float64
	order int
	cell  octile.Cell
}

// openQueue is a min-heap of *openItem ordered by (f, order) ascending. It
// implements the lazy-decrease-key pattern: a cell may appear more than
// once if its g-score improves after it was first pushed; popped entries
// whose f no longer matches the best recorded g for that cell are stale and
// must be skipped by the caller.
type openQueue []*openItem

func (q openQueue) Len() int { return len(q) }

func (q openQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}

	return q[i].order < q[j].order
}

func (q openQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *openQueue) Push(x interface{}) { *q = append(*q, x.(*openItem)) }

func (q *openQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}
