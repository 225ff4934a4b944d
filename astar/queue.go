package astar

import "github.com/katalvlaran/voxpath/voxel"

// openItem is one cell in the open set.
//
// seq breaks priority ties in insertion order: among equal priorities, the
// cell that entered (or was last re-prioritized into) that priority first is
// popped first.
type openItem struct {
	cell     *voxel.Cell
	priority int
	seq      uint64
	index    int // position in the heap, maintained by Swap
}

// openSet is a min-heap of *openItem ordered by (priority, seq).
type openSet []*openItem

// Len returns the number of items in the heap.
func (q openSet) Len() int { return len(q) }

// Less orders by priority, then by insertion sequence.
func (q openSet) Less(i, j int) bool {
	if q[i].priority != q[j].priority {
		return q[i].priority < q[j].priority
	}

	return q[i].seq < q[j].seq
}

// Swap swaps two elements and keeps their indices current for heap.Fix.
func (q openSet) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

// Push adds x, which must be *openItem. Called by heap.Push.
func (q *openSet) Push(x interface{}) {
	item := x.(*openItem)
	item.index = len(*q)
	*q = append(*q, item)
}

// Pop removes and returns the last element. Called by heap.Pop.
func (q *openSet) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]

	return item
}
