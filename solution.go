package prrtstar

import "sync/atomic"

// solutionTracker holds a single atomic pointer to the best goal-reaching
// Link found so far. update is the only writer; readers use Load directly.
type solutionTracker struct {
	best atomic.Pointer[Link]
}

// Load returns the current best solution Link, or nil if none has been
// found yet.
func (t *solutionTracker) Load() *Link { return t.best.Load() }

// update installs candidate as the new best solution iff there is no
// current best, or candidate is strictly cheaper (spec §4.3, Invariant 6).
// Returns true if candidate was installed.
func (t *solutionTracker) update(candidate *Link) bool {
	for {
		prev := t.best.Load()
		if prev != nil && candidate.Cost() >= prev.Cost() {
			return false
		}
		if t.best.CompareAndSwap(prev, candidate) {
			return true
		}
	}
}
