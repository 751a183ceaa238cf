package prrtstar

// This file implements the sequential specialisation of spec §4.6, used
// only when the planner is configured with exactly one worker. With no
// concurrent reader to race with, rewiring can mutate a Link's cost in
// place and push the delta down its subtree recursively, instead of
// allocating a new Link and running the CAS protocol in linkproto.go.
// Every observable contract (invariants, solution monotonicity) is
// preserved; only the mechanism changes.

// installSequential publishes a freshly created link as node's active
// link and, if it has a parent, attaches it to that parent's child list.
// Used for brand-new node insertion (spec §4.1 step 7) in single-worker
// mode.
func installSequential(sol *solutionTracker, node *Node, link *Link) {
	if link.Parent() != nil {
		attachChild(link)
	}
	node.storeLink(link)
	if node.IsGoal() {
		sol.update(link)
	}
}

// rewireSequential mutates nbrLink in place to adopt newParent and
// newCost, migrates it from its old parent's child list to newParent's,
// then pushes the resulting cost delta down nbrLink's subtree. Used for
// the rewire pass (spec §4.1 step 9) in single-worker mode.
//
// The child-list migration matters even with no concurrent reader:
// pushCostDelta walks a link's child list unconditionally when that
// link's own cost changes later, so a stale membership in the old
// parent's list would silently apply an unrelated delta to nbrLink and
// corrupt its cost (Invariant 2) the next time that former ancestor is
// rewired.
func rewireSequential(sol *solutionTracker, nbrLink *Link, newParent *Link, newCost float64) {
	delta := nbrLink.Cost() - newCost
	detachChildSequential(nbrLink)
	nbrLink.setParent(newParent)
	nbrLink.setCost(newCost)
	attachChild(nbrLink)
	pushCostDelta(sol, nbrLink, delta)
}

// detachChildSequential removes child from its current parent's child
// list, the non-CAS analogue of the detach half of setLink's migration
// loop in linkproto.go. Single-worker mode only: no other goroutine
// walks or mutates the list concurrently, so a single load-then-store
// pair is enough.
func detachChildSequential(child *Link) {
	parent := child.Parent()
	if parent == nil {
		return
	}
	head := parent.firstChildLoad()
	if head == child {
		parent.firstChildCAS(head, child.nextSiblingLoad())
		return
	}
	for c := head; c != nil; c = c.nextSiblingLoad() {
		if c.nextSiblingLoad() == child {
			c.nextSiblingStore(child.nextSiblingLoad())
			return
		}
	}
}

// pushCostDelta assumes link's own cost already reflects the just-applied
// update; it updates the solution tracker if link reaches a goal node,
// then recurses over link's children, subtracting delta from each cost in
// turn (mirrors the original source's nonConcurrentPushUpdate).
func pushCostDelta(sol *solutionTracker, link *Link, delta float64) {
	if link.Node().IsGoal() {
		sol.update(link)
	}
	for child := link.firstChildLoad(); child != nil; child = child.nextSiblingLoad() {
		child.setCost(child.Cost() - delta)
		pushCostDelta(sol, child, delta)
	}
}
