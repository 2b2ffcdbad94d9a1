// Package pqueue implements a generic lazy-decrease-key min-priority
// queue, used by expectedcost's conditional Dijkstra pass.
//
// What
//
//   - Queue[T] is a min-heap of (item T, priority float64) pairs ordered
//     by ascending priority, built on container/heap.
//   - PushOrUpdate does not remove stale heap entries when an item's
//     priority improves; it pushes a new entry and lets the caller skip
//     already-finalized items when popped, generalized over any item
//     type T and a float64 priority (belief-graph costs are expectations, not
//     edge counts).
//
// Why
//
//   - container/heap has no generic decrease-key primitive, and removing
//     an arbitrary element from a slice-backed heap is O(n); lazy
//     duplication trades a larger heap for O(log n) pushes, the standard
//     tradeoff for sparse graphs.
package pqueue
