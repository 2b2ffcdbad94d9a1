package reachability

import (
	"errors"

	"github.com/nviennot/porrt/worldmask"
)

// ErrRootAlreadySet indicates SetRoot was called more than once.
var ErrRootAlreadySet = errors.New("reachability: root already set")

// ErrNoRoot indicates AddNode/AddEdge was called before SetRoot.
var ErrNoRoot = errors.New("reachability: no root set yet")

// Tracker holds, per node id, the validity mask it was created with and
// the worlds from which the root can currently reach it.
type Tracker struct {
	validity     []worldmask.Mask
	reach        []worldmask.Mask
	finalIDs     []int
	finalityMask []worldmask.Mask
	hasRoot      bool
}

// NewTracker returns an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// SetRoot initializes node 0 (the root) with reachability equal to its
// validity mask. Must be called exactly once, before any AddNode/AddEdge.
func (t *Tracker) SetRoot(validity worldmask.Mask) {
	if t.hasRoot {
		panic(ErrRootAlreadySet)
	}
	t.validity = append(t.validity, validity.Clone())
	t.reach = append(t.reach, validity.Clone())
	t.hasRoot = true
}

// AddNode appends a node with the given validity and zero reachability,
// returning its id.
func (t *Tracker) AddNode(validity worldmask.Mask) int {
	if !t.hasRoot {
		panic(ErrNoRoot)
	}
	t.validity = append(t.validity, validity.Clone())
	t.reach = append(t.reach, worldmask.NewMask(validity.Width()))

	return len(t.validity) - 1
}

// AddEdge performs the monotone local update:
// reachability[to] |= reachability[from] & validity[to].
// It does not propagate further than `to` (see doc.go).
func (t *Tracker) AddEdge(from, to int) {
	if !t.hasRoot {
		panic(ErrNoRoot)
	}
	tmp := t.reach[from].And(t.validity[to])
	t.reach[to].OrInPlace(tmp)
}

// Reachability returns the current reachability mask for node id.
func (t *Tracker) Reachability(id int) worldmask.Mask {
	return t.reach[id]
}

// Validity returns the validity mask node id was created with.
func (t *Tracker) Validity(id int) worldmask.Mask {
	return t.validity[id]
}

// AddFinal records id as a terminal (goal) candidate with the given
// finality mask (the subset of worlds for which the goal predicate fired
// at this node).
func (t *Tracker) AddFinal(id int, finalityMask worldmask.Mask) {
	t.finalIDs = append(t.finalIDs, id)
	t.finalityMask = append(t.finalityMask, finalityMask)
}

// FinalNodeIDs returns every node id recorded via AddFinal, in the order
// they were added.
func (t *Tracker) FinalNodeIDs() []int {
	out := make([]int, len(t.finalIDs))
	copy(out, t.finalIDs)

	return out
}

// FinalNodesForWorld returns the ids of terminal nodes reachable (per
// their current Reachability) in the given world.
func (t *Tracker) FinalNodesForWorld(world int) []int {
	var out []int
	for _, id := range t.finalIDs {
		if t.reach[id].Test(world) {
			out = append(out, id)
		}
	}

	return out
}

// IsFinalSetComplete returns true iff the OR over all recorded final
// nodes' reachability masks equals "all bits set" — i.e. every world has
// at least one terminal node reachable from the root in that world.
func (t *Tracker) IsFinalSetComplete() bool {
	if len(t.finalIDs) == 0 {
		return false
	}

	width := t.reach[t.finalIDs[0]].Width()
	union := worldmask.NewMask(width)
	for _, id := range t.finalIDs {
		union.OrInPlace(t.reach[id])
	}

	return union.AllSet()
}

// NodeCount returns the number of nodes tracked (root included).
func (t *Tracker) NodeCount() int {
	return len(t.validity)
}
