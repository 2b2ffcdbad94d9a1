package pqueue

import "container/heap"

// entry pairs an item with its priority in the heap.
type entry[T any] struct {
	item     T
	priority float64
}

// innerHeap is the container/heap.Interface implementation backing Queue.
type innerHeap[T any] []entry[T]

func (h innerHeap[T]) Len() int            { return len(h) }
func (h innerHeap[T]) Less(i, j int) bool  { return h[i].priority < h[j].priority }
func (h innerHeap[T]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *innerHeap[T]) Push(x interface{}) { *h = append(*h, x.(entry[T])) }
func (h *innerHeap[T]) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}

// Queue is a min-priority queue of items of type T, ordered by ascending
// float64 priority. The zero value is an empty queue, the same as New
// returns.
type Queue[T any] struct {
	h innerHeap[T]
}

// New returns an empty Queue.
func New[T any]() *Queue[T] {
	q := &Queue[T]{}
	heap.Init(&q.h)

	return q
}

// Push inserts item with the given priority.
func (q *Queue[T]) Push(item T, priority float64) {
	heap.Push(&q.h, entry[T]{item: item, priority: priority})
}

// PushOrUpdate is an alias for Push: this queue does not track item
// identity, so "updating" an item's priority is done by pushing a new
// entry and relying on the caller to ignore stale pops (lazy
// decrease-key; see doc.go).
func (q *Queue[T]) PushOrUpdate(item T, priority float64) {
	q.Push(item, priority)
}

// Pop removes and returns the item with the smallest priority, along
// with that priority. Panics if the queue is empty.
func (q *Queue[T]) Pop() (T, float64) {
	e := heap.Pop(&q.h).(entry[T])

	return e.item, e.priority
}

// Len returns the number of entries currently in the queue, including
// any stale duplicates left by PushOrUpdate.
func (q *Queue[T]) Len() int {
	return q.h.Len()
}

// Empty reports whether the queue has no entries.
func (q *Queue[T]) Empty() bool {
	return q.h.Len() == 0
}
