// Package reachability implements a per-node summary of "which worlds
// can reach this node from the root", updated incrementally as the
// roadmap builder adds edges.
//
// What
//
//   - SetRoot initializes the root's reachability to its validity mask.
//   - AddNode appends a node with zero reachability.
//   - AddEdge performs the monotone local update
//     reachability[to] |= reachability[from] & validity[to].
//   - AddFinal records a node as a goal candidate under a finality mask.
//   - IsFinalSetComplete/FinalNodeIDs/FinalNodesForWorld answer whether,
//     and from where, every world's goal has been reached.
//
// Why
//
//   - AddEdge is deliberately local and does not propagate to
//     descendants. This is sound only because the roadmap builder adds
//     edges in an order where a node's reachability is read only after
//     all of its incoming edges up to that point have been installed,
//     and because reachability here is a heuristic filter during
//     sampling, not the source of truth for plan completeness — that is
//     IsFinalSetComplete, re-derived from the terminal set.
package reachability
