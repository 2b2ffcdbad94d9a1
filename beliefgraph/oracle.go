package beliefgraph

import (
	"github.com/nviennot/porrt/belief"
	"github.com/nviennot/porrt/configspace"
)

// ObservationOracle is the caller-supplied observation model. This
// package performs no continuous-observation modeling itself; it only
// consumes this interface.
type ObservationOracle interface {
	// ReachableBeliefStates enumerates every belief state reachable from
	// startBelief under the posterior relation, with startBelief at
	// index 0. The lifter needs this enumeration up front to assign
	// each belief a stable id before any node is created, so the
	// sequence must be finite.
	ReachableBeliefStates(startBelief belief.State) []belief.State

	// Observe returns the posterior belief states reachable by observing
	// at config while holding belief b. May include b itself if
	// observing yields no new information; the lifter ignores such
	// self-loops.
	Observe(config configspace.Config, b belief.State) []belief.State
}
