package expectedcost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nviennot/porrt/belief"
	"github.com/nviennot/porrt/beliefgraph"
	"github.com/nviennot/porrt/configspace"
)

// buildGraphOne constructs a Y-shaped belief graph:
//
//	     G
//	    / \
//	  (E) (F)
//	   |   |
//	   C   D
//	    \ /
//	     B
//	     |
//	     A
//
// A is the observation point: starting from the mixed belief [0.4, 0.6]
// at B, stepping back to A and observing there resolves to belief1=[1,0]
// (left branch via C and E) or belief2=[0,1] (right branch via D and F).
func buildGraphOne(t *testing.T) (*beliefgraph.Graph, []belief.State) {
	t.Helper()

	beliefs := belief.NewSet()
	bStates := []belief.State{{0.4, 0.6}, {1.0, 0.0}, {0.0, 1.0}}
	for _, b := range bStates {
		beliefs.Add(b)
	}

	g := beliefgraph.NewManual(beliefs, 17)

	// belief 0: B, C, D, G, A(observation)
	n0 := g.AddNode(0, configspace.Config{0.0, 1.0}, 0)
	n1 := g.AddNode(1, configspace.Config{-1.0, 2.0}, 0)
	n2 := g.AddNode(2, configspace.Config{1.0, 2.0}, 0)
	n3 := g.AddNode(3, configspace.Config{0.0, 4.0}, 0)
	n4 := g.AddNode(4, configspace.Config{0.0, 0.0}, 0)

	// belief 1 (left branch resolved)
	n5 := g.AddNode(4, configspace.Config{0.0, 0.0}, 1)
	n6 := g.AddNode(0, configspace.Config{0.0, 1.0}, 1)
	n7 := g.AddNode(1, configspace.Config{-1.0, 2.0}, 1)
	n8 := g.AddNode(2, configspace.Config{1.0, 2.0}, 1)
	n9 := g.AddNode(5, configspace.Config{-1.0, 3.0}, 1)
	n10 := g.AddNode(3, configspace.Config{0.0, 4.0}, 1)

	// belief 2 (right branch resolved)
	n11 := g.AddNode(4, configspace.Config{0.0, 0.0}, 2)
	n12 := g.AddNode(0, configspace.Config{0.0, 1.0}, 2)
	n13 := g.AddNode(1, configspace.Config{-1.0, 2.0}, 2)
	n14 := g.AddNode(2, configspace.Config{1.0, 2.0}, 2)
	n15 := g.AddNode(6, configspace.Config{10.0, 3.0}, 2)
	n16 := g.AddNode(3, configspace.Config{0.0, 4.0}, 2)

	g.AddEdge(n0, n1)
	g.AddEdge(n1, n0)
	g.AddEdge(n0, n2)
	g.AddEdge(n2, n0)
	g.AddEdge(n0, n4)

	g.AddEdge(n4, n5) // belief transition
	g.AddEdge(n5, n6)
	g.AddEdge(n6, n5)
	g.AddEdge(n6, n7)
	g.AddEdge(n7, n6)
	g.AddEdge(n6, n8)
	g.AddEdge(n8, n6)
	g.AddEdge(n7, n9)
	g.AddEdge(n9, n7)
	g.AddEdge(n9, n10)
	g.AddEdge(n10, n9)

	g.AddEdge(n4, n11) // belief transition
	g.AddEdge(n11, n12)
	g.AddEdge(n12, n11)
	g.AddEdge(n12, n13)
	g.AddEdge(n13, n12)
	g.AddEdge(n12, n14)
	g.AddEdge(n14, n12)
	g.AddEdge(n14, n15)
	g.AddEdge(n15, n14)
	g.AddEdge(n15, n16)
	g.AddEdge(n16, n15)

	for _, id := range []int{n0, n1, n2, n3} {
		g.SetKind(id, beliefgraph.Action)
	}
	g.SetKind(n4, beliefgraph.Observation)
	for _, id := range []int{n5, n6, n7, n8, n9, n10} {
		g.SetKind(id, beliefgraph.Action)
	}
	for _, id := range []int{n11, n12, n13, n14, n15, n16} {
		g.SetKind(id, beliefgraph.Action)
	}

	return g, bStates
}

func TestSolveGraphOneCostDecreasesTowardGoal(t *testing.T) {
	g, bStates := buildGraphOne(t)

	dist, _ := Solve(g, []int{3, 10, 16}, configspace.Distance)

	assert.Less(t, dist[0], dist[1])
	assert.Less(t, dist[0], dist[2])
	assert.Less(t, dist[4], dist[0])

	assert.Less(t, dist[6], dist[5])
	assert.Less(t, dist[6], dist[8])
	assert.Less(t, dist[7], dist[6])
	assert.Less(t, dist[9], dist[7])
	assert.Less(t, dist[10], dist[9])

	assert.Less(t, dist[12], dist[11])
	assert.Less(t, dist[12], dist[13])
	assert.Less(t, dist[14], dist[12])
	assert.Less(t, dist[15], dist[14])
	assert.Less(t, dist[16], dist[15])

	// Observation node 4's cost is the belief-weighted expectation over
	// its two children 5 and 11, both reached at zero direct cost.
	expected := bStates[0][0]*dist[5] + bStates[0][1]*dist[11]
	require.InDelta(t, expected, dist[4], 1e-9)
}

// buildGraphTwo constructs a larger corridor-grid belief graph under
// belief 0 (nodes 0-8): from node 0 a corridor (nodes 2-8) leads to the
// goal, and a single edge leads to an observation point (node 1),
// which forks into a long dead-end-free linear branch under belief 1
// (nodes 9-17) and a ring-shaped branch under belief 2 (nodes 18-27)
// that reaches its goal from either direction around the loop.
func buildGraphTwo(t *testing.T) (*beliefgraph.Graph, []belief.State) {
	t.Helper()

	beliefs := belief.NewSet()
	bStates := []belief.State{{0.4, 0.6}, {1.0, 0.0}, {0.0, 1.0}}
	for _, b := range bStates {
		beliefs.Add(b)
	}

	g := beliefgraph.NewManual(beliefs, 28)

	specs := []struct {
		x, y   float64
		belief int
	}{
		{0, 0, 0}, {0, 1, 0}, {1, 0, 0}, {2, 0, 0}, {2, 1, 0}, {2, 2, 0}, {2, 3, 0}, {1, 3, 0}, {0, 3, 0},
		{0, 0, 1}, {0, 1, 1}, {1, 0, 1}, {2, 0, 1}, {2, 1, 1}, {2, 2, 1}, {2, 3, 1}, {1, 3, 1}, {0, 3, 1},
		{0, 0, 2}, {0, 1, 2}, {0, 2, 2}, {1, 0, 2}, {2, 0, 2}, {2, 1, 2}, {2, 2, 2}, {2, 3, 2}, {1, 3, 2}, {0, 3, 2},
	}
	for i, s := range specs {
		id := g.AddNode(i, configspace.Config{s.x, s.y}, s.belief)
		if id != i {
			t.Fatalf("expected sequential node id %d, got %d", i, id)
		}
	}

	edge := func(a, b int) { g.AddEdge(a, b) }

	edge(0, 1)
	edge(0, 2)
	edge(2, 0)
	edge(2, 3)
	edge(3, 2)
	edge(3, 4)
	edge(4, 3)
	edge(4, 5)
	edge(5, 4)
	edge(5, 6)
	edge(6, 5)
	edge(6, 7)
	edge(7, 6)
	edge(7, 8)
	edge(8, 7)

	edge(1, 10) // belief transition
	edge(10, 9)
	edge(9, 10)
	edge(9, 11)
	edge(11, 9)
	edge(11, 12)
	edge(12, 11)
	edge(12, 13)
	edge(13, 12)
	edge(13, 14)
	edge(14, 13)
	edge(14, 15)
	edge(15, 14)
	edge(15, 16)
	edge(16, 15)
	edge(16, 17)
	edge(17, 16)

	edge(1, 19) // belief transition
	edge(19, 20)
	edge(20, 19)
	edge(20, 27)
	edge(27, 20)
	edge(19, 18)
	edge(18, 19)
	edge(18, 21)
	edge(21, 18)
	edge(21, 22)
	edge(22, 21)
	edge(22, 23)
	edge(23, 22)
	edge(23, 24)
	edge(24, 23)
	edge(24, 25)
	edge(25, 24)
	edge(26, 25)
	edge(25, 26)
	edge(27, 26)
	edge(26, 27)

	for i := range specs {
		if i == 1 {
			g.SetKind(i, beliefgraph.Observation)
		} else {
			g.SetKind(i, beliefgraph.Action)
		}
	}

	return g, bStates
}

func TestSolveGraphTwoMaxDistanceIsAtTheFarEndOfTheLinearBranch(t *testing.T) {
	g, _ := buildGraphTwo(t)

	dist, _ := Solve(g, []int{8, 17, 27}, configspace.Distance)

	maxIdx, maxDist := 0, dist[0]
	for i, d := range dist {
		if d > maxDist {
			maxIdx, maxDist = i, d
		}
	}

	// Node 10 sits at the belief-transition end of the ring-free linear
	// branch, farthest (in hop count) from any of the three terminals.
	assert.Equal(t, 10, maxIdx)
	assert.InDelta(t, 8.0, maxDist, 1e-9)
}

func TestSolvePanicsOnUnknownKind(t *testing.T) {
	beliefs := belief.NewSet()
	beliefs.Add(belief.State{1.0})

	g := beliefgraph.NewManual(beliefs, 2)
	a := g.AddNode(0, configspace.Config{0}, 0)
	b := g.AddNode(1, configspace.Config{1}, 0)
	g.AddEdge(a, b)
	// a's Kind is left as Unknown.

	assert.Panics(t, func() {
		Solve(g, []int{b}, configspace.Distance)
	})
}
