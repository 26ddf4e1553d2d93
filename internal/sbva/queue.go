package sbva

import (
	"container/heap"

	"github.com/sbva-tools/sbva/internal/cnf"
)

// pqEntry is a single (count, literal) pair as pushed by the driver
// loop (spec §4.2).
type pqEntry struct {
	count int
	lit   cnf.Literal
}

// litHeap is a container/heap max-heap over pqEntry.count. Stale
// entries are not removed on update; they are filtered at pop time by
// the caller, per spec §9's "Stale priority-queue entries" design note.
type litHeap []pqEntry

func (h litHeap) Len() int            { return len(h) }
func (h litHeap) Less(i, j int) bool  { return h[i].count > h[j].count }
func (h litHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *litHeap) Push(x interface{}) { *h = append(*h, x.(pqEntry)) }
func (h *litHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// litQueue is the priority queue the driver loop pops pivots from.
type litQueue struct {
	h litHeap
}

func newLitQueue() *litQueue {
	q := &litQueue{}
	heap.Init(&q.h)
	return q
}

func (q *litQueue) push(count int, lit cnf.Literal) {
	heap.Push(&q.h, pqEntry{count: count, lit: lit})
}

func (q *litQueue) pop() (pqEntry, bool) {
	if q.h.Len() == 0 {
		return pqEntry{}, false
	}
	return heap.Pop(&q.h).(pqEntry), true
}
