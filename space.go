package prrtstar

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// DistanceMetric computes distance between two configurations, each a flat
// []float64 vector of the space's dimensionality.
type DistanceMetric interface {
	Distance(a, b []float64) float64
}

// DistanceFunc adapts a plain function into a DistanceMetric.
type DistanceFunc func(a, b []float64) float64

func (f DistanceFunc) Distance(a, b []float64) float64 { return f(a, b) }

// EuclideanMetric computes the Euclidean (L2) distance.
type EuclideanMetric struct{}

func (EuclideanMetric) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// ManhattanMetric computes the Manhattan (L1 / city-block) distance.
type ManhattanMetric struct{}

func (ManhattanMetric) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, 1)
}

// ChebyshevMetric computes the Chebyshev (L-infinity) distance.
type ChebyshevMetric struct{}

func (ChebyshevMetric) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, math.Inf(1))
}

// MinkowskiMetric computes the Minkowski distance parameterized by P.
// P must be >= 1; Distance panics if P < 1.
type MinkowskiMetric struct {
	P float64
}

func (m MinkowskiMetric) Distance(a, b []float64) float64 {
	if m.P < 1 {
		panic("prrtstar: MinkowskiMetric.P must be >= 1")
	}
	return floats.Distance(a, b, m.P)
}

// Space bundles a configuration space's dimensionality and distance metric
// with the axis-aligned bounds samplers draw from. Interpolation is the
// package-level [Interpolate] function.
//
// Space is immutable once constructed; the same Space value is shared by
// every worker.
type Space struct {
	metric DistanceMetric
	dims   int
	lo, hi []float64
}

// NewSpace builds a Space over an axis-aligned bounding box [lo, hi]
// (component-wise) using metric for distance. lo and hi must have equal,
// non-zero length; NewSpace panics otherwise, since a malformed space is a
// construction-time programmer error, not a runtime condition to recover
// from.
func NewSpace(metric DistanceMetric, lo, hi []float64) Space {
	if len(lo) == 0 || len(lo) != len(hi) {
		panic("prrtstar: NewSpace: lo and hi must be non-empty and equal length")
	}
	if metric == nil {
		metric = EuclideanMetric{}
	}
	return Space{
		metric: metric,
		dims:   len(lo),
		lo:     append([]float64(nil), lo...),
		hi:     append([]float64(nil), hi...),
	}
}

// Dimensions returns the number of coordinates in a configuration.
func (s Space) Dimensions() int { return s.dims }

// Distance returns the metric distance between two configurations.
func (s Space) Distance(a, b []float64) float64 { return s.metric.Distance(a, b) }

// Bounds returns the space's axis-aligned lower and upper bounds. Callers
// must not mutate the returned slices.
func (s Space) Bounds() (lo, hi []float64) { return s.lo, s.hi }

// Interpolate returns the configuration a fraction t of the way from a to b,
// linearly in each coordinate. t is not clamped; callers steering toward a
// sample pass t in [0, 1].
func Interpolate(a, b []float64, t float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + (b[i]-a[i])*t
	}
	return out
}
