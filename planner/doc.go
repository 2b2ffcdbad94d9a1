// Package planner is the top-level entry point: it wires roadmap,
// beliefgraph, expectedcost, and policy into a two-call sequence.
//
// What
//
//   - GrowGraph samples a collision-free roadmap via roadmap.Builder.
//   - PlanBeliefSpace lifts that roadmap into belief space via
//     beliefgraph.Build, solves it via expectedcost.Solve, and extracts a
//     policy.Tree. Its precondition is that GrowGraph has already
//     succeeded.
//
// Why
//
//   - Keeping these as two calls, rather than one, lets a caller grow the
//     roadmap once and replan in belief space repeatedly (e.g. after
//     updating which worlds are still believed possible) without
//     resampling.
package planner
