// Package configspace defines the N-dimensional configuration type shared
// by every other package in this module, plus the distance metrics and
// steering primitive the roadmap builder uses to keep sample steps short.
//
// What
//
//   - Config is a point in N-dimensional real space (N fixed per planning
//     session, not compile-time).
//   - Distance (Euclidean, L2) and Manhattan (L1) wrap gonum/floats so
//     every package measures configuration-space distance the same way.
//   - Steer shrinks a candidate configuration toward a reference point so
//     the step between them never exceeds maxStep, measured in the L1
//     norm.
//
// Why
//
//   - Centralizing the metric keeps the roadmap builder's straight-line
//     validity approximation meaningful: edges are only ever as long as
//     Steer allows.
//
// Errors
//
//   - ErrDimensionMismatch if two Configs passed to the same operation
//     have different lengths. This is a programmer error: callers within
//     one planning session must use Configs of a single fixed width.
package configspace
