// Package prrtstar implements the concurrent core of a parallel
// asymptotically-optimal RRT* motion planner: a lock-free protocol for many
// goroutines to simultaneously sample configurations, attach them to a tree
// rooted at one or more start states, rewire existing nodes when a shorter
// route appears, and publish a monotonically improving path to a goal.
//
// Basic usage:
//
//	space := prrtstar.NewSpace(prrtstar.EuclideanMetric{}, []float64{0, 0}, []float64{1, 1})
//	scenario := prrtstar.NewBoxScenario(space, nil, prrtstar.SphereGoal{Center: []float64{1, 1}, Radius: 0.01})
//	planner, err := prrtstar.NewPlanner(scenario, prrtstar.DefaultConfig())
//	if err != nil {
//		// handle error
//	}
//	planner.AddStart([]float64{0, 0})
//	planner.SetRange(0.2)
//	planner.SetGoalBias(0.05)
//
//	var samples atomic.Int64 // done is called from every worker goroutine
//	planner.Solve(func() bool {
//		return samples.Add(1) >= 200
//	})
//
//	if planner.Solved() {
//		path := planner.Solution()
//		_ = path
//	}
//
// # Concurrency
//
// [Config.Workers] controls how many goroutines sample and rewire
// concurrently. With Workers == 1 the planner uses a sequential
// specialisation that mutates edge costs in place instead of allocating a
// new [Link] per rewire; with Workers > 1 it uses a lock-free
// compare-and-swap protocol on each Node's active Link. Both paths honor
// the same invariants and expose the same API.
//
// # Scope
//
// This package owns the tree: nodes, links, the rewiring algorithm and the
// concurrent link protocol. The nearest-neighbour index ([NearestNeighborIndex]),
// the scenario ([Scenario]), and the source of randomness (*[math/rand.Rand])
// are pluggable collaborators; the package ships reference implementations
// ([NewIndex], [BoxScenario]) so it is usable and testable standalone, but a
// caller with a specialized spatial index or validity oracle can substitute
// their own.
package prrtstar
