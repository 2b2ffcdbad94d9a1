package roadmap

import (
	"errors"
	"math"

	"github.com/nviennot/porrt/configspace"
	"github.com/nviennot/porrt/reachability"
	"github.com/nviennot/porrt/spatial"
)

// ErrStartInfeasible indicates the validity oracle rejected the start
// configuration: invalid input fails loudly at the API boundary rather
// than being silently discarded as just another infeasible sample.
var ErrStartInfeasible = errors.New("roadmap: start configuration is infeasible")

// ErrInsufficientSampling indicates n_max samples were exhausted before
// every world's goal region became reachable from the root. The partial
// graph built so far remains valid and accessible.
var ErrInsufficientSampling = errors.New("roadmap: exhausted n_max without completing the terminal set")

// Options configures a single Builder.GrowGraph call.
type Options struct {
	MaxStep           float64
	SearchRadiusConst float64
	NMin              int
	NMax              int
	Continuous        ContinuousSampler
	Discrete          DiscreteSampler
}

// Builder grows a Graph in continuous configuration space, tracking
// per-edge and per-node symbolic validity across all worlds, until every
// world's goal region is reachable from the start.
type Builder struct {
	Graph   *Graph
	Reach   *reachability.Tracker
	index   *spatial.Index
	oracle  ValidityOracle
	dim     int
	nIter   int
}

// NewBuilder returns a Builder ready to grow a roadmap of the given
// dimension against oracle.
func NewBuilder(dim int, oracle ValidityOracle) *Builder {
	return &Builder{
		Graph:  NewGraph(),
		Reach:  reachability.NewTracker(),
		index:  spatial.NewIndex(dim),
		oracle: oracle,
		dim:    dim,
	}
}

// Iterations returns the number of sampling iterations performed by the
// most recent GrowGraph call.
func (b *Builder) Iterations() int {
	return b.nIter
}

// GrowGraph runs the sampling loop: it seeds the graph with start, then
// repeatedly samples, steers, validates, and connects new nodes until
// n_min samples have been drawn and every world's goal region is
// reachable, or until n_max samples have been exhausted.
//
// Returns ErrStartInfeasible if start itself is infeasible, or
// ErrInsufficientSampling if n_max is reached first — in the latter case
// the partial graph built so far is still usable for diagnostics.
func (b *Builder) GrowGraph(start configspace.Config, goal GoalPredicate, opts Options) error {
	rootValidity, ok := b.oracle.Validity(start)
	if !ok {
		return ErrStartInfeasible
	}

	rootID := b.Graph.AddNode(start, rootValidity)
	b.Reach.SetRoot(rootValidity)
	b.index.Insert(start, rootID)

	if m := goal(start); !m.IsZero() {
		b.Reach.AddFinal(rootID, m)
	}

	nWorlds := rootValidity.Width()

	i := 0
	for i < opts.NMin || (!b.Reach.IsFinalSetComplete() && i < opts.NMax) {
		i++
		b.iterate(opts, goal, nWorlds)
	}
	b.nIter = i

	if !b.Reach.IsFinalSetComplete() {
		return ErrInsufficientSampling
	}

	return nil
}

// iterate performs one sampling iteration: draw a candidate, find its
// nearest reachable neighbor, steer toward it, validate, connect to
// nearby neighbors, and check the goal predicate.
func (b *Builder) iterate(opts Options, goal GoalPredicate, nWorlds int) {
	// 1. Draw candidate configuration and world index.
	candidate := opts.Continuous.Sample()
	world := opts.Discrete.Sample(nWorlds)

	// 2. Nearest existing node whose reachability covers world.
	near, err := b.index.NearestFiltered(candidate, func(id int) bool {
		return b.Reach.Reachability(id).Test(world)
	})
	if err != nil {
		return // no compatible node yet; discard this sample.
	}

	// 3. Steer toward the near node so the step is at most max_step.
	configspace.Steer(near.Config, candidate, opts.MaxStep)

	// 4. Validity oracle.
	validity, ok := b.oracle.Validity(candidate)
	if !ok {
		return
	}

	// 5. Gather neighbor candidates before inserting the new node, so the
	// new node never appears as its own neighbor.
	radius := dynamicRadius(opts, b.Graph.NodeCount()+1, b.dim)
	neighbors := b.index.WithinRadius(candidate, radius)
	if len(neighbors) == 0 {
		neighbors = []spatial.Point{near}
	}

	newID := b.Graph.AddNode(candidate, validity)
	b.Reach.AddNode(validity)
	b.index.Insert(candidate, newID)
	newNode := b.Graph.Node(newID)

	// 8. Connect to each neighbor via the transition oracle.
	for _, nb := range neighbors {
		if nb.ID == newID {
			continue
		}
		nbNode := b.Graph.Node(nb.ID)

		mask, ok := b.oracle.TransitionValidity(nbNode, newNode)
		if !ok {
			continue
		}

		b.Graph.AddBidirectionalEdge(nbNode.ID, newID, mask)
		b.Reach.AddEdge(nbNode.ID, newID)
		b.Reach.AddEdge(newID, nbNode.ID)
	}

	// 9. Evaluate the goal predicate.
	if m := goal(candidate); !m.IsZero() {
		b.Reach.AddFinal(newID, m)
	}
}

// dynamicRadius computes r = min(max_step, c * (ln n / n)^(1/N)), the
// PRM* connection radius that shrinks as the graph fills in, capped at
// max_step so early iterations don't connect implausibly far apart.
func dynamicRadius(opts Options, n, dim int) float64 {
	nf := float64(n)
	r := opts.SearchRadiusConst * math.Pow(math.Log(nf)/nf, 1.0/float64(dim))
	if r < opts.MaxStep {
		return r
	}

	return opts.MaxStep
}
