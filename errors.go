package prrtstar

import (
	"errors"
	"fmt"
)

// ErrNoStarts is returned by [Planner.Solve] when called before any start
// state has been registered with [Planner.AddStart].
var ErrNoStarts = errors.New("prrtstar: solve called with no start states")

// ErrInvariantViolation is wrapped into the error returned by
// [Planner.Solve] when a worker detects that a candidate parent link's
// recomputed cost disagrees with the tentative parent's cost beyond
// floating-point tolerance during the sort walk of the rewiring engine
// (spec §4.1, step 6). This indicates a bug in the scenario's distance
// function, not a condition the planner can recover from.
var ErrInvariantViolation = errors.New("prrtstar: invariant violation: parent cost mismatch")

// fmtInvariantErr wraps ErrInvariantViolation with the mismatched costs
// that triggered it, for the fatal abort described in spec §7.
func fmtInvariantErr(got, want float64) error {
	return fmt.Errorf("%w: got %f, want %f", ErrInvariantViolation, got, want)
}
