// Package porrt implements a contingent motion planner for robots
// operating under discrete world-uncertainty: the true world is one of
// W possible realities, and the planner grows a single roadmap valid
// across all of them before lifting it into belief space to produce a
// branching policy that observes before committing to an ambiguous
// branch.
//
// The package is organized as a pipeline of independently usable
// subpackages:
//
//	configspace/   — N-dimensional configuration points, distance, steering
//	worldmask/     — fixed-width per-world bitsets
//	belief/        — probability distributions over worlds, transition probability
//	spatial/       — k-d tree nearest-neighbor index
//	reachability/  — per-node, per-world reachability-from-root tracking
//	roadmap/       — sampling-based roadmap builder (PRM-style)
//	beliefgraph/   — lifts a roadmap into a graph of (roadmap-node, belief) pairs
//	pqueue/        — generic lazy-decrease-key min-priority queue
//	expectedcost/  — conditional Dijkstra over the belief graph
//	policy/        — extracts a contingent policy tree from solved costs
//	planner/       — top-level GrowGraph / PlanBeliefSpace entry points
//
// Callers interact with this module through planner.Planner and the
// capability interfaces it requires: a validity oracle, an observation
// oracle, and a cost function. The planner performs no I/O, image
// loading, or visualization itself; those are external concerns.
package porrt
