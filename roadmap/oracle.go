package roadmap

import (
	"github.com/nviennot/porrt/configspace"
	"github.com/nviennot/porrt/worldmask"
)

// ValidityOracle is the caller-supplied collision/feasibility checker.
// The roadmap package performs no geometric or image-based validity
// checking itself; it only consumes this interface.
type ValidityOracle interface {
	// Validity returns the mask of worlds in which config is feasible,
	// and true, or (zero value, false) if config is infeasible in every
	// world. Total over the configuration domain.
	Validity(config configspace.Config) (worldmask.Mask, bool)

	// TransitionValidity returns the mask of worlds in which the
	// straight-line motion from one node's state to the other's is
	// feasible, and true, or (zero value, false) if infeasible in every
	// world. Called at most once per candidate neighbor pair; this
	// package treats the relation as symmetric and never queries it in
	// the reverse direction.
	TransitionValidity(from, to *Node) (worldmask.Mask, bool)
}

// GoalPredicate reports, for a configuration, the mask of worlds whose
// goal region it satisfies. A zero mask (IsZero()) means "not a goal
// here in any world".
type GoalPredicate func(config configspace.Config) worldmask.Mask

// ContinuousSampler draws a configuration uniformly at random from the
// sampling domain. Random-seed management is left entirely to the
// caller; this interface only describes what the builder consumes.
type ContinuousSampler interface {
	Sample() configspace.Config
}

// DiscreteSampler draws a world index uniformly at random from 0..n.
type DiscreteSampler interface {
	Sample(n int) int
}
