package policy

import (
	"fmt"
	"sort"

	"github.com/nviennot/porrt/belief"
	"github.com/nviennot/porrt/beliefgraph"
)

// tolerance bounds the floating-point slack allowed when checking that a
// selected child's discounted cost does not exceed its parent's solved
// distance.
const tolerance = 1e-9

// Extract walks g forward from its root, following bestExpectedChildren
// at every node, and returns the resulting conditional policy
// Tree. Panics if g has no nodes.
func Extract(g *beliefgraph.Graph, dist []float64) *Tree {
	if len(g.Nodes) == 0 {
		panic("policy: belief graph has no nodes")
	}

	tree := newTree()
	root := g.Nodes[0]
	rootID := tree.addNode(root.State, g.Beliefs.At(root.BeliefID), dist[0] == 0.0)

	type frame struct {
		treeID, beliefNodeID int
	}
	stack := []frame{{rootID, 0}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, childID := range bestExpectedChildren(g, f.beliefNodeID, dist) {
			child := g.Nodes[childID]
			isLeaf := dist[childID] == 0.0
			childTreeID := tree.addNode(child.State, g.Beliefs.At(child.BeliefID), isLeaf)
			tree.addEdge(f.treeID, childTreeID)

			if !isLeaf {
				stack = append(stack, frame{childTreeID, childID})
			}
		}
	}

	return tree
}

// bestExpectedChildren groups belief-graph node u's children by their
// belief id and, within each group, keeps the child minimizing the
// belief-weighted cost-to-go. Action nodes have a single group (every
// child shares u's belief, since a deterministic move never changes
// what the agent believes); Observation nodes have one group per
// resolved posterior, since the policy must branch on what the
// observation reveals.
func bestExpectedChildren(g *beliefgraph.Graph, u int, dist []float64) []int {
	node := g.Nodes[u]
	parentBelief := g.Beliefs.At(node.BeliefID)

	groups := make(map[int][]int)
	for _, childID := range node.Children {
		bID := g.Nodes[childID].BeliefID
		groups[bID] = append(groups[bID], childID)
	}

	ids := make([]int, 0, len(groups))
	for bID := range groups {
		ids = append(ids, bID)
	}
	sort.Ints(ids)

	best := make([]int, 0, len(ids))
	for _, bID := range ids {
		candidates := groups[bID]
		p := belief.TransitionProbability(parentBelief, g.Beliefs.At(bID))
		if p <= 0 {
			panic(fmt.Sprintf("policy: zero-probability transition to belief %d", bID))
		}

		bestID := candidates[0]
		bestCost := p * dist[bestID]
		for _, c := range candidates[1:] {
			if cost := p * dist[c]; cost < bestCost {
				bestCost = cost
				bestID = c
			}
		}

		if bestCost > dist[u]+tolerance {
			panic(fmt.Sprintf("policy: selected child cost %v exceeds parent distance %v", bestCost, dist[u]))
		}

		best = append(best, bestID)
	}

	return best
}
