// Package belief implements belief-state vectors: probability
// distributions over the W possible worlds an agent cannot directly
// distinguish until it observes.
//
// What
//
//   - State is a length-W vector of nonnegative reals summing to 1
//     within Tolerance.
//   - IsCompatible reports whether a state is compatible with a
//     worldmask.Mask: every world with positive probability must be
//     valid under the mask.
//   - TransitionProbability computes P(q -> p), the probability that the
//     observation yielding posterior p is consistent with prior q.
//   - Set is a dense, order-preserving registry of reachable belief
//     states, assigning each a stable integer id on first sight.
//
// Why
//
//   - The reachable belief set is finite and enumerated up front by the
//     observation oracle; Set gives the belief-graph lifter id lookups
//     by exact vector equality (a linear scan over the registered
//     states), which is sound here because
//     belief states originate from that finite enumeration, not from
//     independently-computed floating point.
//
// Errors
//
//   - ErrNotNormalized if a State does not sum to 1 within Tolerance.
//   - ErrDimensionMismatch if two States, or a State and a mask, disagree
//     in length.
package belief
