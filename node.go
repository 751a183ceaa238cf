package prrtstar

import "sync/atomic"

// Node is an immutable per-sample configuration plus a handle to its
// currently best Link. State and IsGoal are fixed at creation; Link is
// mutated only via the concurrent link protocol's compare-and-swap (or, in
// the sequential specialisation, direct store from the single worker).
type Node struct {
	state  []float64
	isGoal bool
	link   atomic.Pointer[Link]
}

// State returns the configuration this Node represents. The returned slice
// must not be mutated.
func (n *Node) State() []float64 { return n.state }

// IsGoal reports whether this Node satisfies the scenario's goal predicate.
// Evaluated once at creation time (spec §3).
func (n *Node) IsGoal() bool { return n.isGoal }

// Link returns the Node's currently best Link. Never nil once the Node has
// been inserted into the tree (spec Invariant 1).
func (n *Node) Link() *Link { return n.loadLink() }

func (n *Node) loadLink() *Link { return n.link.Load() }

func (n *Node) casLink(old, new *Link) bool { return n.link.CompareAndSwap(old, new) }

func (n *Node) storeLink(l *Link) { n.link.Store(l) }
