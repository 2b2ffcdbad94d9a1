package configspace

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ErrDimensionMismatch indicates two Configs of differing length were
// passed to an operation that requires them to agree.
var ErrDimensionMismatch = errors.New("configspace: dimension mismatch")

// Config is a point in N-dimensional real space. N is fixed for the
// lifetime of a single planning session but is not known at compile time.
type Config []float64

// Clone returns an independent copy of c.
func (c Config) Clone() Config {
	out := make(Config, len(c))
	copy(out, c)

	return out
}

// Distance returns the Euclidean (L2) distance between a and b.
// Panics via ErrDimensionMismatch if the two Configs differ in length.
func Distance(a, b Config) float64 {
	mustSameDim(a, b)

	return floats.Distance(a, b, 2)
}

// Manhattan returns the L1 (Manhattan) distance between a and b.
// Panics via ErrDimensionMismatch if the two Configs differ in length.
func Manhattan(a, b Config) float64 {
	mustSameDim(a, b)

	return floats.Distance(a, b, 1)
}

// Steer shrinks to toward from, in place, so that the Manhattan distance
// between them is exactly maxStep whenever it would otherwise exceed it.
// Coordinates are interpolated linearly, matching the original planner's
// steer() (see DESIGN.md). If the step is already within maxStep, to is
// left unchanged.
func Steer(from, to Config, maxStep float64) {
	mustSameDim(from, to)

	step := Manhattan(from, to)
	if step <= maxStep {
		return
	}

	lambda := maxStep / step
	for i := range to {
		to[i] = from[i] + (to[i]-from[i])*lambda
	}
}

func mustSameDim(a, b Config) {
	if len(a) != len(b) {
		panic(fmt.Sprintf("%v: %d vs %d", ErrDimensionMismatch, len(a), len(b)))
	}
}
