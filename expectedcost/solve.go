package expectedcost

import (
	"math"

	"github.com/nviennot/porrt/belief"
	"github.com/nviennot/porrt/beliefgraph"
	"github.com/nviennot/porrt/configspace"
	"github.com/nviennot/porrt/pqueue"
)

// CostFunc evaluates the cost of moving directly from a to b, e.g.
// configspace.Distance.
type CostFunc func(a, b configspace.Config) float64

// Stats reports bookkeeping about a Solve run.
type Stats struct {
	// Iterations is the number of heap pops performed, including stale
	// duplicates left behind by the lazy decrease-key queue.
	Iterations int
	// Relaxations is the number of times a node's distance was strictly
	// improved and re-pushed.
	Relaxations int
}

// Solve returns, for every node in g, the expected cost to reach one of
// finalNodeIDs, using cost to price individual transitions. Nodes from
// which no terminal is reachable carry math.Inf(1). Panics if a node
// with Kind Unknown is ever relaxed: every node reachable backward from
// a terminal must already have been typed Action or Observation by
// beliefgraph.Build.
func Solve(g *beliefgraph.Graph, finalNodeIDs []int, cost CostFunc) ([]float64, Stats) {
	dist := make([]float64, len(g.Nodes))
	for i := range dist {
		dist[i] = math.Inf(1)
	}

	q := pqueue.New[int]()
	for _, id := range finalNodeIDs {
		dist[id] = 0
		q.Push(id, 0)
	}

	var stats Stats
	for !q.Empty() {
		vID, _ := q.Pop()
		stats.Iterations++
		v := g.Nodes[vID]

		for _, uID := range v.Parents {
			u := g.Nodes[uID]

			var alternative float64
			switch u.Kind {
			case beliefgraph.Action:
				alternative = cost(u.State, v.State) + dist[vID]
			case beliefgraph.Observation:
				for _, vvID := range u.Children {
					vv := g.Nodes[vvID]
					p := belief.TransitionProbability(g.Beliefs.At(u.BeliefID), g.Beliefs.At(vv.BeliefID))
					alternative += p * (cost(u.State, vv.State) + dist[vvID])
				}
			default:
				panic("expectedcost: node kind is Unknown during solve")
			}

			if alternative < dist[uID] {
				dist[uID] = alternative
				q.Push(uID, alternative)
				stats.Relaxations++
			}
		}
	}

	return dist, stats
}
