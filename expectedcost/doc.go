// Package expectedcost implements conditional Dijkstra over a
// belief-space graph, computing the expected cost to reach one of a set
// of terminal nodes from every node.
//
// What
//
//   - Solve runs a backward-relaxation Dijkstra seeded from the terminal
//     set at distance 0. For each node u relaxed from
//     a finalized child v, the candidate distance depends on u's Kind:
//     an Action node's candidate is cost(u, v) + dist[v], the cost of
//     the single edge just finalized; an Observation node's candidate is
//     the expectation over ALL of u's children, sum_v P(u->v) * (cost(u,
//     v) + dist[v]), recomputed every time any one of those children is
//     finalized.
//   - Because edge weights and the expectation sum both only ever
//     decrease a node's distance estimate across relaxations, and nodes
//     are finalized to their true minimum once popped, the lazy
//     decrease-key loop (pqueue.Queue) converges to the same result an
//     eagerly-recomputed Dijkstra would, without needing every child
//     finalized before the first relaxation of an Observation node.
//
// Why
//
//   - This departs from textbook Dijkstra (which relaxes an edge exactly
//     once per pop, from the finalized side) by instead relaxing
//     PREDECESSOR lists from the finalized side backward, because the
//     graph is directed forward (action/observation edges point from
//     "now" to "later") but the cost-to-go recursion runs backward from
//     the goal.
package expectedcost
