package prrtstar

import "math/rand"

// Scenario is the geometry/validity oracle the planner samples and rewires
// against (spec §6). Implementations own the state space, collision
// checking and goal test; the planner core never inspects a configuration
// beyond passing it to these methods and to the NearestNeighborIndex.
type Scenario interface {
	// Space returns the configuration space samples are drawn from.
	Space() Space

	// Valid reports whether a single configuration is collision-free.
	Valid(state []float64) bool

	// Link reports whether the straight-line motion from a to b is
	// collision-free. a is assumed valid; b's validity is the caller's
	// responsibility (the rewiring engine checks endpoint validity
	// separately so it can skip the check on already-validated
	// endpoints during the rewire pass).
	Link(a, b []float64) bool

	// Goal returns the scenario's goal predicate.
	Goal() Goal
}

// Goal evaluates whether a configuration satisfies the scenario's goal
// condition.
type Goal interface {
	// Evaluate reports whether state is a goal configuration, and if so
	// (or if the goal supports a continuous notion of progress) a
	// distance-to-goal measure. The planner core does not use goalDist.
	Evaluate(space Space, state []float64) (isGoal bool, goalDist float64)
}

// GoalFunc adapts a plain function into a Goal.
type GoalFunc func(space Space, state []float64) (bool, float64)

func (f GoalFunc) Evaluate(space Space, state []float64) (bool, float64) { return f(space, state) }

// GoalSampler is implemented by a Goal that can draw configurations from
// (or near) the goal region directly, enabling goal-biased sampling
// (spec §4.5). A Goal without this capability is still usable; the
// planner simply never biases samples toward it.
type GoalSampler interface {
	// Sample draws a configuration from the goal region. ok is false if
	// the sampler declined to produce one this call (spec's "sampler
	// miss", skipped silently by the worker loop).
	Sample(rng *rand.Rand) (state []float64, ok bool)
}
