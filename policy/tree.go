package policy

import (
	"github.com/nviennot/porrt/belief"
	"github.com/nviennot/porrt/configspace"
)

// Node is a node of an extracted policy Tree: a configuration reached
// under a specific (resolved or still-mixed) belief state.
type Node struct {
	ID          int
	State       configspace.Config
	BeliefState belief.State
	IsLeaf      bool
	Parent      int // -1 for the root
	Children    []int
}

// Tree is the conditional plan returned by Extract: a tree (not the
// belief graph itself) whose root is the start state and whose leaves
// are terminal states reached under some resolution of the belief.
type Tree struct {
	Nodes []*Node

	// leafIDs records Tree node ids in the order they were discovered,
	// matching the traversal order Extract uses.
	leafIDs []int
}

func newTree() *Tree {
	return &Tree{}
}

func (t *Tree) addNode(state configspace.Config, b belief.State, isLeaf bool) int {
	id := len(t.Nodes)
	t.Nodes = append(t.Nodes, &Node{
		ID:          id,
		State:       state,
		BeliefState: b,
		IsLeaf:      isLeaf,
		Parent:      -1,
	})
	if isLeaf {
		t.leafIDs = append(t.leafIDs, id)
	}

	return id
}

func (t *Tree) addEdge(from, to int) {
	t.Nodes[from].Children = append(t.Nodes[from].Children, to)
	t.Nodes[to].Parent = from
}

// Leaves returns the number of leaf nodes in the tree.
func (t *Tree) Leaves() int {
	return len(t.leafIDs)
}

// Leaf returns the i-th leaf node, in discovery order.
func (t *Tree) Leaf(i int) *Node {
	return t.Nodes[t.leafIDs[i]]
}

// PathToLeaf returns the sequence of states from the root to the i-th
// leaf, inclusive.
func (t *Tree) PathToLeaf(i int) []configspace.Config {
	var reversed []configspace.Config
	id := t.leafIDs[i]
	for id != -1 {
		reversed = append(reversed, t.Nodes[id].State)
		id = t.Nodes[id].Parent
	}

	path := make([]configspace.Config, len(reversed))
	for i, s := range reversed {
		path[len(reversed)-1-i] = s
	}

	return path
}
