package jps

import "github.com/lathkin/octopath/octile"

// Result is the outcome of a Search or SearchWeighted call. Its shape
// mirrors astar.Result: Path is the full step-by-step path (already
// expanded from jump points via pathutil.ExpandPath), not the sparse
// jump-point path the search internally reasons about.
type Result struct {
	Path     []octile.Cell
	Cost     float64
	Expanded int
}

// openItem is one entry in the open-set priority queue, identical in shape
// and purpose to astar's.
type openItem struct {
	f     float64
	order int
	cell  octile.Cell
}

// openQueue is the lazy-decrease-key min-heap shared by Search and
// SearchWeighted.
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
