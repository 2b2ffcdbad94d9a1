package spatial

import (
	"errors"
	"math"

	"github.com/nviennot/porrt/configspace"
)

// ErrEmptyIndex is returned by queries against an Index with no points.
var ErrEmptyIndex = errors.New("spatial: index is empty")

// ErrDimMismatch indicates a query or insert used a Config whose length
// disagrees with the dimension fixed by the Index's first insertion.
var ErrDimMismatch = errors.New("spatial: dimension mismatch")

// Point pairs a configuration with the id it was inserted under.
type Point struct {
	Config configspace.Config
	ID     int
}

type node struct {
	point       Point
	left, right *node
}

// Index is a k-d tree over N-dimensional configurations. The zero value
// is ready to use; the dimension N is fixed by the first Insert call.
type Index struct {
	root *node
	dim  int
	n    int
}

// NewIndex returns an empty Index for N-dimensional configurations.
func NewIndex(n int) *Index {
	return &Index{dim: n}
}

// Len returns the number of points inserted.
func (idx *Index) Len() int { return idx.n }

// Insert adds config under id, in place within the tree structure
// determined by insertion order. Panics via ErrDimMismatch if config's
// length disagrees with the index's fixed dimension.
func (idx *Index) Insert(config configspace.Config, id int) {
	if idx.dim == 0 {
		idx.dim = len(config)
	}
	idx.mustMatchDim(config)

	newNode := &node{point: Point{Config: config.Clone(), ID: id}}
	idx.n++

	if idx.root == nil {
		idx.root = newNode
		return
	}

	cur := idx.root
	axis := 0
	for {
		if config[axis] < cur.point.Config[axis] {
			if cur.left == nil {
				cur.left = newNode
				return
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right = newNode
				return
			}
			cur = cur.right
		}
		axis = (axis + 1) % idx.dim
	}
}

// Nearest returns the inserted point closest to config.
// Returns ErrEmptyIndex if no points have been inserted.
func (idx *Index) Nearest(config configspace.Config) (Point, error) {
	return idx.NearestFiltered(config, func(int) bool { return true })
}

// NearestFiltered returns the closest inserted point whose id satisfies
// predicate. Returns ErrEmptyIndex if no point satisfies predicate.
func (idx *Index) NearestFiltered(config configspace.Config, predicate func(id int) bool) (Point, error) {
	if idx.root != nil {
		idx.mustMatchDim(config)
	}

	var best *Point
	bestDist := math.Inf(1)

	var search func(n *node, axis int)
	search = func(n *node, axis int) {
		if n == nil {
			return
		}

		if predicate(n.point.ID) {
			d := configspace.Distance(config, n.point.Config)
			if d < bestDist {
				bestDist = d
				p := n.point
				best = &p
			}
		}

		diff := config[axis] - n.point.Config[axis]
		nextAxis := (axis + 1) % idx.dim

		near, far := n.left, n.right
		if diff > 0 {
			near, far = n.right, n.left
		}

		search(near, nextAxis)
		// Only descend into the far subtree if it could contain a point
		// closer than the current best (branch-and-bound pruning).
		if math.Abs(diff) < bestDist {
			search(far, nextAxis)
		}
	}

	search(idx.root, 0)

	if best == nil {
		return Point{}, ErrEmptyIndex
	}

	return *best, nil
}

// WithinRadius returns every inserted point within Euclidean distance r
// of config (inclusive), in no particular order.
func (idx *Index) WithinRadius(config configspace.Config, r float64) []Point {
	if idx.root != nil {
		idx.mustMatchDim(config)
	}

	var out []Point

	var search func(n *node, axis int)
	search = func(n *node, axis int) {
		if n == nil {
			return
		}

		if configspace.Distance(config, n.point.Config) <= r {
			out = append(out, n.point)
		}

		diff := config[axis] - n.point.Config[axis]
		nextAxis := (axis + 1) % idx.dim

		near, far := n.left, n.right
		if diff > 0 {
			near, far = n.right, n.left
		}

		search(near, nextAxis)
		if math.Abs(diff) <= r {
			search(far, nextAxis)
		}
	}

	search(idx.root, 0)

	return out
}

func (idx *Index) mustMatchDim(config configspace.Config) {
	if len(config) != idx.dim {
		panic(ErrDimMismatch)
	}
}
