package prrtstar

import "math/rand"

// UniformSampler draws configurations uniformly from a Space's
// axis-aligned bounds. It is the default sampler every worker uses when
// not drawing a goal-biased sample (spec §4.5).
type UniformSampler struct {
	space Space
}

// NewUniformSampler builds a UniformSampler over space's bounds.
func NewUniformSampler(space Space) UniformSampler { return UniformSampler{space: space} }

// Sample draws one configuration uniformly from the space's bounds.
func (s UniformSampler) Sample(rng *rand.Rand) []float64 {
	lo, hi := s.space.Bounds()
	out := make([]float64, len(lo))
	for i := range out {
		out[i] = lo[i] + rng.Float64()*(hi[i]-lo[i])
	}
	return out
}
