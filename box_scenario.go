package prrtstar

import (
	"math"
	"math/rand"
)

// Box is an axis-aligned obstacle: the configuration is invalid while
// every coordinate falls within [Lo[i], Hi[i]].
type Box struct {
	Lo, Hi []float64
}

func (b Box) contains(state []float64) bool {
	for i, v := range state {
		if v < b.Lo[i] || v > b.Hi[i] {
			return false
		}
	}
	return true
}

// SphereGoal is a Goal satisfied within Radius of Center, and also a
// GoalSampler that draws uniformly from that ball.
type SphereGoal struct {
	Center []float64
	Radius float64
}

func (g SphereGoal) Evaluate(space Space, state []float64) (bool, float64) {
	d := space.Distance(g.Center, state)
	return d <= g.Radius, d
}

func (g SphereGoal) Sample(rng *rand.Rand) ([]float64, bool) {
	out := make([]float64, len(g.Center))
	// Rejection-sample a point in the enclosing box, then rescale into
	// the ball; simple and adequate for the low-dimensional reference
	// scenario this type exists to serve.
	for {
		var normSq float64
		for i := range out {
			v := rng.Float64()*2 - 1
			out[i] = v
			normSq += v * v
		}
		if normSq <= 1 {
			break
		}
	}
	r := g.Radius * math.Pow(rng.Float64(), 1.0/float64(len(g.Center)))
	norm := 0.0
	for _, v := range out {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		norm = 1
	}
	for i := range out {
		out[i] = g.Center[i] + out[i]/norm*r
	}
	return out, true
}

// BoxScenario is a reference Scenario over an axis-aligned bounding box
// with axis-aligned box obstacles and straight-line motion validity
// checked by fixed-step sampling. It exists so the package is runnable
// and testable standalone; production scenarios typically wrap a real
// collision checker instead.
type BoxScenario struct {
	space     Space
	obstacles []Box
	goal      Goal

	// motionStep is the fixed step length used to sample a candidate
	// motion for collision checking. NewBoxScenario sets it to 1/200 of the
	// bounds' diagonal, or 1e-3 if that is not positive.
	motionStep float64
}

// NewBoxScenario builds a BoxScenario over space, treating obstacles as
// invalid regions and goal as the goal predicate (and, if it implements
// GoalSampler, the goal-biased sampler too).
func NewBoxScenario(space Space, obstacles []Box, goal Goal) *BoxScenario {
	lo, hi := space.Bounds()
	diag := space.Distance(lo, hi)
	step := diag / 200
	if step <= 0 {
		step = 1e-3
	}
	return &BoxScenario{
		space:      space,
		obstacles:  append([]Box(nil), obstacles...),
		goal:       goal,
		motionStep: step,
	}
}

func (s *BoxScenario) Space() Space { return s.space }

func (s *BoxScenario) Valid(state []float64) bool {
	lo, hi := s.space.Bounds()
	for i, v := range state {
		if v < lo[i] || v > hi[i] {
			return false
		}
	}
	for _, ob := range s.obstacles {
		if ob.contains(state) {
			return false
		}
	}
	return true
}

func (s *BoxScenario) Link(a, b []float64) bool {
	d := s.space.Distance(a, b)
	if d == 0 {
		return true
	}
	steps := int(d/s.motionStep) + 1
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		if !s.Valid(Interpolate(a, b, t)) {
			return false
		}
	}
	return true
}

func (s *BoxScenario) Goal() Goal { return s.goal }
