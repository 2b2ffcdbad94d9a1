package beliefgraph

import (
	"errors"
	"fmt"

	"github.com/nviennot/porrt/belief"
	"github.com/nviennot/porrt/roadmap"
)

// ErrInvalidStartBelief indicates the start belief does not sum to 1
// within belief.Tolerance.
var ErrInvalidStartBelief = errors.New("beliefgraph: start belief is invalid")

// Build lifts rm into a belief-space graph seeded from startBelief. It
// runs in three passes over the roadmap: first creating one belief-graph
// node per (roadmap node, compatible belief) pair, then wiring
// observation edges, then wiring action edges along roadmap edges for
// any node an observation edge didn't already claim.
func Build(rm *roadmap.Graph, obs ObservationOracle, startBelief belief.State) (*Graph, error) {
	if err := startBelief.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStartBelief, err)
	}

	reachable := obs.ReachableBeliefStates(startBelief)
	beliefs := belief.NewSet()
	for _, b := range reachable {
		beliefs.Add(b)
	}

	g := &Graph{
		Beliefs: beliefs,
		index:   make([][]int, rm.NodeCount()),
	}
	for n := 0; n < rm.NodeCount(); n++ {
		g.index[n] = make([]int, beliefs.Len())
		for k := range g.index[n] {
			g.index[n][k] = -1
		}
	}

	// Pass 1: node creation.
	for n := 0; n < rm.NodeCount(); n++ {
		node := rm.Node(n)
		for k := 0; k < beliefs.Len(); k++ {
			if beliefs.At(k).IsCompatible(node.Validity) {
				g.addNode(n, node.State, k)
			}
		}
	}

	// Pass 2: observation edges.
	for n := 0; n < rm.NodeCount(); n++ {
		node := rm.Node(n)
		for k := 0; k < beliefs.Len(); k++ {
			srcID, ok := g.NodeFor(n, k)
			if !ok {
				continue
			}
			bk := beliefs.At(k)

			posteriors := obs.Observe(node.State, bk)
			for _, p := range posteriors {
				if p.Equal(bk) {
					continue // observing without learning anything is not an edge.
				}
				j, ok := beliefs.Lookup(p)
				if !ok {
					panic(fmt.Sprintf("beliefgraph: observation produced belief %v not in the reachable set", p))
				}
				dstID, ok := g.NodeFor(n, j)
				if !ok {
					continue
				}

				g.Nodes[srcID].Kind = Observation
				g.addEdge(srcID, dstID)
			}
		}
	}

	// Pass 3: action edges along roadmap edges.
	for n := 0; n < rm.NodeCount(); n++ {
		node := rm.Node(n)
		for _, e := range node.Children {
			for k := 0; k < beliefs.Len(); k++ {
				srcID, ok := g.NodeFor(n, k)
				if !ok {
					continue
				}
				if g.Nodes[srcID].Kind == Observation {
					continue // observation nodes never also emit action edges.
				}
				dstID, ok := g.NodeFor(e.To, k)
				if !ok {
					continue
				}
				bk := beliefs.At(k)
				if !bk.IsCompatible(e.Validity) {
					continue
				}

				g.Nodes[srcID].Kind = Action
				g.addEdge(srcID, dstID)
			}
		}
	}

	return g, nil
}
