// Package beliefgraph implements the belief-space graph lifter that
// expands a roadmap.Graph into a graph of (roadmap-node, belief-id)
// pairs, typed Action or Observation.
//
// What
//
//   - Build runs a three-pass construction:
//     (1) create a belief-graph node for every (roadmap node, belief)
//     pair compatible with that node's validity mask;
//     (2) add observation edges from the observation oracle's posterior
//     beliefs, marking the source node Observation;
//     (3) add action edges along roadmap edges compatible with the
//     belief, marking the source node Action — skipped for nodes already
//     marked Observation, since an observation location forces the agent
//     to observe before moving rather than act blind.
//
// Why
//
//   - Splitting node-typing into three ordered passes, rather than typing
//     nodes as edges are discovered in a single sweep, is what makes the
//     "Observation overrides Action" rule simple to enforce: by the time
//     the action pass runs, every node's Observation-or-not status is
//     already final.
//
// External collaborator
//
//   - ObservationOracle is supplied by the caller; this package performs
//     no continuous-observation modeling itself.
package beliefgraph
