package frontier

import (
	"container/heap"

	"github.com/katalvlaran/mazestep/grid"
)

// openItem is a coordinate waiting in the open set.
type openItem struct {
	at    grid.Coord
	cost  int
	seq   uint64 // arrival order; lower arrived earlier
	index int    // position in the heap, maintained by Swap
}

// openQueue is a min-heap of *openItem ordered by (cost, seq).
// Unlike a lazy heap it holds each coordinate at most once, so membership in
// open is exact and improvements use heap.Fix instead of duplicates.
type openQueue []*openItem

// Len returns the number of items in the heap.
func (q openQueue) Len() int { return len(q) }

// Less orders by cost, breaking ties by arrival.
func (q openQueue) Less(i, j int) bool {
	if q[i].cost != q[j].cost {
		return q[i].cost < q[j].cost
	}
	return q[i].seq < q[j].seq
}

// Swap swaps two items and keeps their indices current.
func (q openQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

// Push is called by heap.Push; x must be *openItem.
func (q *openQueue) Push(x interface{}) {
	item := x.(*openItem)
	item.index = len(*q)
	*q = append(*q, item)
}

// Pop is called by heap.Pop.
func (q *openQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]

	return item
}

// update lowers item's cost and restores heap order.
func (q *openQueue) update(item *openItem, cost int) {
	item.cost = cost
	heap.Fix(q, item.index)
}
