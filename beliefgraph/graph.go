package beliefgraph

import (
	"github.com/nviennot/porrt/belief"
	"github.com/nviennot/porrt/configspace"
)

// Kind classifies a belief-graph node by the single kind of outgoing
// edge it is allowed to emit.
type Kind int

const (
	// Unknown is the initial kind, before any outgoing edge is added.
	Unknown Kind = iota
	// Action nodes emit only deterministic motion edges sharing the
	// parent belief.
	Action
	// Observation nodes emit only stochastic belief-update edges.
	Observation
)

// String implements fmt.Stringer for readable test failures and debugging.
func (k Kind) String() string {
	switch k {
	case Action:
		return "Action"
	case Observation:
		return "Observation"
	default:
		return "Unknown"
	}
}

// Node is a belief-graph node: a (roadmap-node, belief) pair plus its
// kind and append-only edge lists.
type Node struct {
	ID            int
	RoadmapNodeID int
	State         configspace.Config
	BeliefID      int
	Kind          Kind
	Children      []int
	Parents       []int
}

// Graph is the lifted belief-space graph produced by Build.
type Graph struct {
	Nodes   []*Node
	Beliefs *belief.Set

	// index[roadmapNodeID][beliefID] holds the belief-graph node id for
	// that pair, or -1 if the pair is incompatible (belief not
	// compatible with that roadmap node's validity mask).
	index [][]int
}

// NewManual returns an empty Graph over numRoadmapNodes roadmap-node
// slots and the given belief set, for callers (chiefly tests) that
// construct a belief graph directly rather than via Build.
func NewManual(beliefs *belief.Set, numRoadmapNodes int) *Graph {
	g := &Graph{
		Beliefs: beliefs,
		index:   make([][]int, numRoadmapNodes),
	}
	for n := range g.index {
		g.index[n] = make([]int, beliefs.Len())
		for k := range g.index[n] {
			g.index[n][k] = -1
		}
	}

	return g
}

// NodeFor returns the belief-graph node id for (roadmapNodeID,
// beliefID), and whether that pair exists (is compatible).
func (g *Graph) NodeFor(roadmapNodeID, beliefID int) (int, bool) {
	id := g.index[roadmapNodeID][beliefID]
	if id < 0 {
		return 0, false
	}

	return id, true
}

// AddNode creates the belief-graph node for (roadmapNodeID, beliefID),
// with kind Unknown, and returns its id.
func (g *Graph) AddNode(roadmapNodeID int, state configspace.Config, beliefID int) int {
	return g.addNode(roadmapNodeID, state, beliefID)
}

// AddEdge installs a directed edge from -> to, updating both endpoints'
// Children/Parents lists.
func (g *Graph) AddEdge(from, to int) {
	g.addEdge(from, to)
}

// SetKind sets the kind of node id.
func (g *Graph) SetKind(id int, kind Kind) {
	g.Nodes[id].Kind = kind
}

func (g *Graph) addNode(roadmapNodeID int, state configspace.Config, beliefID int) int {
	id := len(g.Nodes)
	g.Nodes = append(g.Nodes, &Node{
		ID:            id,
		RoadmapNodeID: roadmapNodeID,
		State:         state,
		BeliefID:      beliefID,
		Kind:          Unknown,
	})
	g.index[roadmapNodeID][beliefID] = id

	return id
}

func (g *Graph) addEdge(from, to int) {
	g.Nodes[from].Children = append(g.Nodes[from].Children, to)
	g.Nodes[to].Parents = append(g.Nodes[to].Parents, from)
}
