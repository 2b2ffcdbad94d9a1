package roadmap

import (
	"fmt"

	"github.com/nviennot/porrt/configspace"
	"github.com/nviennot/porrt/worldmask"
)

// Edge is a directed connection between two roadmap nodes, installed in
// both directions by the builder whenever the validity oracle approves a
// transition.
type Edge struct {
	From, To int
	Validity worldmask.Mask
}

// Node is a roadmap node: a sampled configuration, the world-mask it was
// found valid in, and append-only forward/reverse edge lists.
type Node struct {
	ID       int
	State    configspace.Config
	Validity worldmask.Mask
	Children []Edge
	Parents  []Edge
}

// Graph is the append-only, undirected multi-world configuration graph.
// Node ids are stable, contiguous indices into the node store; nothing
// is ever deleted.
type Graph struct {
	nodes []*Node
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{}
}

// AddNode appends a node with the given state and validity, returning
// its id. The root must be added first, by convention at id 0.
func (g *Graph) AddNode(state configspace.Config, validity worldmask.Mask) int {
	id := len(g.nodes)
	g.nodes = append(g.nodes, &Node{
		ID:       id,
		State:    state.Clone(),
		Validity: validity.Clone(),
	})

	return id
}

// AddEdge installs a directed edge from -> to with the given validity
// mask, appending to from's Children and to's Parents. Panics if
// validity is not a subset of both endpoints' validity masks: an edge
// cannot be valid in a world where one of its endpoints is not, so this
// is an internal invariant violation rather than a runtime condition.
func (g *Graph) AddEdge(from, to int, validity worldmask.Mask) {
	fn := g.nodes[from]
	tn := g.nodes[to]

	if !isSubsetMask(validity, fn.Validity) || !isSubsetMask(validity, tn.Validity) {
		panic(fmt.Sprintf("roadmap: edge %d->%d validity not a subset of endpoint validity", from, to))
	}

	fn.Children = append(fn.Children, Edge{From: from, To: to, Validity: validity.Clone()})
	tn.Parents = append(tn.Parents, Edge{From: from, To: to, Validity: validity.Clone()})
}

// AddBidirectionalEdge installs edges from->to and to->from with the
// same validity mask: the oracle is consulted once, treating transition
// validity as symmetric, and both directions are installed from that
// single result.
func (g *Graph) AddBidirectionalEdge(a, b int, validity worldmask.Mask) {
	g.AddEdge(a, b, validity)
	g.AddEdge(b, a, validity)
}

// Node returns the node with the given id.
func (g *Graph) Node(id int) *Node {
	return g.nodes[id]
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of directed edges in the graph (each
// bidirectional connection counts twice).
func (g *Graph) EdgeCount() int {
	n := 0
	for _, node := range g.nodes {
		n += len(node.Children)
	}

	return n
}

func isSubsetMask(sub, super worldmask.Mask) bool {
	return sub.And(super).Equal(sub)
}
