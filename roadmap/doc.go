// Package roadmap implements an append-only, undirected multi-world
// configuration graph (Graph) and the sampling-based builder that grows
// it (Builder).
//
// What
//
//   - Graph stores Nodes (configuration + validity mask) and Edges
//     (validity mask, subset of both endpoints') in a contiguous,
//     append-only node store; edges are duplicated on both endpoints'
//     forward/reverse lists for cache-local traversal.
//   - Builder.GrowGraph runs the sampling loop: draw a candidate
//     configuration and world index, steer it toward the nearest
//     reachability-filtered existing node, consult the caller's
//     ValidityOracle, and connect it to nearby nodes within a shrinking
//     dynamic radius.
//
// Why
//
//   - The (ln n / n)^(1/N) radius schedule, capped at maxStep, preserves
//     the connectivity guarantees of sampling-based planners in
//     continuous spaces while keeping edges short enough that a
//     straight-line validity check is meaningful.
//
// External collaborators
//
//   - ValidityOracle is supplied by the caller; this package never
//     performs collision checking itself.
//   - ContinuousSampler/DiscreteSampler are supplied by the caller too —
//     random-seed and CLI wiring are left entirely to the caller; this
//     package only consumes the sampled values.
//
// Errors
//
//   - ErrStartInfeasible if the validity oracle rejects the start
//     configuration, failing loudly at the API boundary.
//   - ErrInsufficientSampling if n_max samples are exhausted before the
//     terminal set is complete; the partial graph remains valid and
//     stays accessible through Builder.Graph.
package roadmap
