package planner

import (
	"errors"

	"github.com/nviennot/porrt/belief"
	"github.com/nviennot/porrt/beliefgraph"
	"github.com/nviennot/porrt/configspace"
	"github.com/nviennot/porrt/expectedcost"
	"github.com/nviennot/porrt/policy"
	"github.com/nviennot/porrt/roadmap"
)

// ErrGrowGraphNotRun indicates PlanBeliefSpace was called before
// GrowGraph succeeded.
var ErrGrowGraphNotRun = errors.New("planner: grow_graph must succeed before plan_belief_space")

// Oracle is the full capability set a caller supplies: the roadmap
// builder's validity/transition checks, and the belief-space lifter's
// observation model, expressed as one interface a single caller-supplied
// type satisfies rather than as a class hierarchy.
type Oracle interface {
	roadmap.ValidityOracle
	beliefgraph.ObservationOracle
}

// Planner holds the state threaded between GrowGraph and
// PlanBeliefSpace: the grown roadmap and its reachability tracker.
type Planner struct {
	oracle  Oracle
	cost    expectedcost.CostFunc
	builder *roadmap.Builder
	grown   bool
}

// New returns a Planner over a dim-dimensional configuration space
// against oracle, pricing transitions with cost.
func New(dim int, oracle Oracle, cost expectedcost.CostFunc) *Planner {
	return &Planner{
		oracle:  oracle,
		cost:    cost,
		builder: roadmap.NewBuilder(dim, oracle),
	}
}

// Roadmap returns the underlying roadmap builder, for diagnostics (e.g.
// after ErrInsufficientSampling) or direct inspection of the sampled
// graph: a failed GrowGraph still leaves the partial graph accessible.
func (p *Planner) Roadmap() *roadmap.Builder {
	return p.builder
}

// GrowGraph runs the sampling-based roadmap builder. On success,
// PlanBeliefSpace becomes callable.
func (p *Planner) GrowGraph(start configspace.Config, goal roadmap.GoalPredicate, opts roadmap.Options) error {
	if err := p.builder.GrowGraph(start, goal, opts); err != nil {
		return err
	}
	p.grown = true

	return nil
}

// PlanBeliefSpace lifts the grown roadmap into belief space, solves for
// expected cost-to-goal, and extracts a contingent policy. Terminal
// belief-graph nodes are every (final roadmap
// node, belief) pair that exists in the lifted graph: a goal is reached
// regardless of which belief the agent holds when it arrives there.
//
// Returns ErrGrowGraphNotRun if GrowGraph has not yet succeeded.
func (p *Planner) PlanBeliefSpace(startBelief belief.State) (*policy.Tree, error) {
	if !p.grown {
		return nil, ErrGrowGraphNotRun
	}

	bg, err := beliefgraph.Build(p.builder.Graph, p.oracle, startBelief)
	if err != nil {
		return nil, err
	}

	var terminals []int
	for _, roadmapID := range p.builder.Reach.FinalNodeIDs() {
		for k := 0; k < bg.Beliefs.Len(); k++ {
			if id, ok := bg.NodeFor(roadmapID, k); ok {
				terminals = append(terminals, id)
			}
		}
	}

	dist, _ := expectedcost.Solve(bg, terminals, p.cost)

	return policy.Extract(bg, dist), nil
}
