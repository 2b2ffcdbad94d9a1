package roadmap

import (
	"math/rand"

	"github.com/nviennot/porrt/configspace"
)

// UniformBoxSampler is a convenience ContinuousSampler drawing uniformly
// from an axis-aligned box [Min, Max]. It takes an already-constructed
// *rand.Rand, leaving seed and source management to the caller rather
// than owning random-seed or CLI wiring itself.
type UniformBoxSampler struct {
	Min, Max configspace.Config
	Rng      *rand.Rand
}

// Sample returns a uniformly random Config within [Min, Max].
func (s *UniformBoxSampler) Sample() configspace.Config {
	out := make(configspace.Config, len(s.Min))
	for i := range out {
		out[i] = s.Min[i] + s.Rng.Float64()*(s.Max[i]-s.Min[i])
	}

	return out
}

// UniformDiscreteSampler is a convenience DiscreteSampler drawing
// uniformly from 0..n.
type UniformDiscreteSampler struct {
	Rng *rand.Rand
}

// Sample returns a uniformly random integer in [0, n).
func (s *UniformDiscreteSampler) Sample(n int) int {
	return s.Rng.Intn(n)
}
