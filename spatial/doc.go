// Package spatial implements the nearest-neighbor index the roadmap
// builder queries against while growing the graph: a k-d tree over
// N-dimensional configurations, keyed by integer node id.
//
// What
//
//   - Insert(config, id) adds a point, deterministically, in call order.
//   - Nearest(config) returns the closest previously-inserted point.
//   - NearestFiltered(config, predicate) returns the closest point whose
//     id satisfies predicate, skipping the rest.
//   - WithinRadius(config, r) returns every point within Euclidean
//     distance r, in no particular order.
//
// Why
//
//   - The roadmap builder needs O(log n) average-case queries with
//     worst-case correctness regardless of tree balance, and never
//     deletes a point once sampled. A simple insertion-order k-d tree
//     (no rebalancing) satisfies both: average-case queries stay near
//     O(log n) for roadmap-shaped sample distributions, and the
//     branch-and-bound search visits every candidate subtree that could
//     contain a closer point, so the result is exact even when the tree
//     degenerates toward a list.
//
// Determinism
//
//   - Insertion order is the only source of tree shape; the same sequence
//     of Insert calls always produces the same tree and the same query
//     results (ties go to the point the near-subtree-first search
//     visits first, which depends only on the tree's shape).
//
// Distance metric
//
//   - Euclidean, via gonum.org/v1/gonum/floats (see configspace for the
//     shared distance helpers built on the same library).
package spatial
