package roadmap

import "fmt"

// Option customizes an Options value built by NewOptions, mirroring the
// teacher's functional-options convention (dijkstra.Option,
// bfs.Option). Options that are structurally invalid panic immediately,
// the same way dijkstra.WithMaxDistance/WithInfEdgeThreshold do, since a
// negative step size or radius constant is a programmer error, not a
// runtime condition.
type Option func(*Options)

// WithMaxStep overrides the maximum steering distance. Panics if step is
// not positive.
func WithMaxStep(step float64) Option {
	if step <= 0 {
		panic(fmt.Sprintf("roadmap: max step must be positive, got %v", step))
	}

	return func(o *Options) { o.MaxStep = step }
}

// WithSearchRadiusConst overrides the dynamic-radius constant c in
// r = min(max_step, c*(ln n/n)^(1/N)). Panics if c is not positive.
func WithSearchRadiusConst(c float64) Option {
	if c <= 0 {
		panic(fmt.Sprintf("roadmap: search radius constant must be positive, got %v", c))
	}

	return func(o *Options) { o.SearchRadiusConst = c }
}

// WithNMin overrides the minimum sampling iteration count. Panics if
// nMin is negative.
func WithNMin(nMin int) Option {
	if nMin < 0 {
		panic(fmt.Sprintf("roadmap: n_min must be nonnegative, got %d", nMin))
	}

	return func(o *Options) { o.NMin = nMin }
}

// WithNMax overrides the maximum sampling iteration count. Panics if
// nMax is negative.
func WithNMax(nMax int) Option {
	if nMax < 0 {
		panic(fmt.Sprintf("roadmap: n_max must be nonnegative, got %d", nMax))
	}

	return func(o *Options) { o.NMax = nMax }
}

// defaultMaxStep, defaultSearchRadiusConst, defaultNMin, and defaultNMax
// are conservative starting points; callers working in a small unit
// space will typically override all four via Options.
const (
	defaultMaxStep           = 0.5
	defaultSearchRadiusConst = 2.0
	defaultNMin              = 50
	defaultNMax              = 5000
)

// NewOptions returns an Options using continuous and discrete as the
// configuration- and world-samplers, with the defaults above, then
// applies opts in order.
func NewOptions(continuous ContinuousSampler, discrete DiscreteSampler, opts ...Option) Options {
	o := Options{
		MaxStep:           defaultMaxStep,
		SearchRadiusConst: defaultSearchRadiusConst,
		NMin:              defaultNMin,
		NMax:              defaultNMax,
		Continuous:        continuous,
		Discrete:          discrete,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
