// Package policy implements extraction of a conditional motion policy
// from a solved belief graph.
//
// What
//
//   - Extract walks the belief graph forward from its root (node 0),
//     depth-first, building a Tree of the nodes actually worth visiting:
//     for an Action node, only the cheapest child per belief group (there
//     is exactly one belief group for an Action node, since Observation
//     overrides Action); for an Observation node, the cheapest child of
//     every belief group, since the agent does not control which
//     posterior belief it resolves to.
//   - A node becomes a Leaf exactly when its solved expected cost is
//     zero: it is one of the terminal nodes conditional Dijkstra was
//     seeded from.
//
// Why
//
//   - Clustering an Observation node's children by belief id before
//     picking a winner (rather than just taking every child) matters
//     when the SAME belief is reachable through more than one roadmap
//     edge: keeping only the cheapest route per distinct posterior and
//     discarding redundant ones is what keeps the extracted policy a
//     tree rather than carrying dead branches.
package policy
