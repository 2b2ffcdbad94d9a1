package reachability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nviennot/porrt/worldmask"
)

func mask(width int, bits ...int) worldmask.Mask {
	m := worldmask.NewMask(width)
	for _, b := range bits {
		m.Set(b, true)
	}

	return m
}

// TestChainReachability verifies reachability propagates one hop at a
// time along a linear chain of edges, narrowing as worlds drop out.
func TestChainReachability(t *testing.T) {
	tr := NewTracker()
	tr.SetRoot(mask(2, 0, 1))             // 0: [1,1]
	n1 := tr.AddNode(mask(2, 0))           // 1: [1,0]
	n2 := tr.AddNode(mask(2, 0))           // 2: [1,0]
	n3 := tr.AddNode(mask(2, 1))           // 3: [0,1]

	tr.AddEdge(0, n1)
	tr.AddEdge(n1, n2)
	tr.AddEdge(n1, n3)

	assert.True(t, tr.Reachability(0).Equal(mask(2, 0, 1)))
	assert.True(t, tr.Reachability(n1).Equal(mask(2, 0)))
	assert.True(t, tr.Reachability(n2).Equal(mask(2, 0)))
	assert.True(t, tr.Reachability(n3).Equal(mask(2))) // [0,0]
}

// TestDiamondReachability verifies that two edges merging back into one
// node OR their reachability masks together, recombining worlds that
// split apart at the fork.
func TestDiamondReachability(t *testing.T) {
	tr := NewTracker()
	tr.SetRoot(mask(2, 0, 1))    // 0: [1,1]
	n1 := tr.AddNode(mask(2, 0)) // 1: [1,0]
	n2 := tr.AddNode(mask(2, 1)) // 2: [0,1]
	n3 := tr.AddNode(mask(2, 0, 1))

	tr.AddEdge(0, n1)
	tr.AddEdge(0, n2)
	tr.AddEdge(n1, n3)
	tr.AddEdge(n2, n3)

	assert.True(t, tr.Reachability(n3).Equal(mask(2, 0, 1)))
}

// TestFinalSetCompleteness verifies the final set is only complete once
// every world has at least one recorded final node reachable in it.
func TestFinalSetCompleteness(t *testing.T) {
	tr := NewTracker()
	tr.SetRoot(mask(2, 0, 1))    // 0: [1,1]
	n1 := tr.AddNode(mask(2, 0, 1))
	n2 := tr.AddNode(mask(2, 0)) // 2: [1,0]
	n3 := tr.AddNode(mask(2, 1)) // 3: [0,1]

	tr.AddEdge(0, n1)
	tr.AddEdge(n1, n2)
	tr.AddEdge(n1, n3)

	assert.False(t, tr.IsFinalSetComplete())

	tr.AddFinal(n2, tr.Reachability(n2))
	assert.False(t, tr.IsFinalSetComplete())

	tr.AddFinal(n3, tr.Reachability(n3))
	assert.True(t, tr.IsFinalSetComplete())

	assert.Equal(t, []int{n2}, tr.FinalNodesForWorld(0))
	assert.Equal(t, []int{n3}, tr.FinalNodesForWorld(1))
}

// TestCompletenessIsMonotone checks that once IsFinalSetComplete is
// true, further node/edge additions keep it true.
func TestCompletenessIsMonotone(t *testing.T) {
	tr := NewTracker()
	tr.SetRoot(mask(1, 0))
	n1 := tr.AddNode(mask(1, 0))
	tr.AddEdge(0, n1)
	tr.AddFinal(n1, tr.Reachability(n1))
	require := tr.IsFinalSetComplete()
	assert.True(t, require)

	n2 := tr.AddNode(mask(1, 0))
	tr.AddEdge(n1, n2)
	assert.True(t, tr.IsFinalSetComplete())
}
