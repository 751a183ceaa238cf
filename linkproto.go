package prrtstar

// This file implements the concurrent link protocol of spec §4.2: a
// lock-free compare-and-swap replacement of a Node's active Link, plus
// migration of the defeated Link's child subtree onto the replacement.
//
// publish is the entry point rewire.go and the migration loop below both
// use: it performs the "parent-side attach" (pushing link onto its
// parent's child list, rerouting around a stale parent if necessary) and
// then calls setLink to install link as node's active Link.

// publish attaches link to its parent's child list (if it has a parent)
// and installs it as node's active link via the CAS protocol.
func publish(links *linkPool, sol *solutionTracker, node *Node, link *Link) {
	if link.Parent() != nil {
		attachChild(link)
	}
	setLink(links, sol, node, link)
}

// attachChild pushes child onto child.Parent()'s child list. If the parent
// has since been defeated (is no longer its own Node's active link), the
// attach reroutes to the current active link, adjusting child's cost by
// the same cost delta the migration loop below would have applied, and
// retries. child must not yet be visible to any other goroutine.
func attachChild(child *Link) {
	for {
		parent := child.Parent()
		active := parent.Node().loadLink()
		if active != parent {
			delta := parent.Cost() - active.Cost()
			child.setCost(child.Cost() - delta)
			child.setParent(active)
			continue
		}

		head := parent.firstChildLoad()
		child.nextSiblingStore(head)
		if parent.firstChildCAS(head, child) {
			return
		}
	}
}

// setLink installs candidate as node's active Link, honoring cost
// monotonicity (Invariant 4), then migrates the defeated Link's children
// (if any) onto the winner, adjusting each child's cost by the delta
// between the defeated and winning cost. If candidate loses to node's
// current link, the roles swap: candidate's own children (if any) are
// re-homed onto the current link, and if an even newer link has since
// won, the current link's children are then drained onto that one.
func setLink(links *linkPool, sol *solutionTracker, node *Node, candidate *Link) {
	winner := candidate
	defeated := node.loadLink()
	for {
		if defeated != nil && defeated.Cost() <= winner.Cost() {
			defeated, winner = winner, defeated
			break
		}
		if node.casLink(defeated, winner) {
			break
		}
		defeated = node.loadLink()
	}

	if node.IsGoal() {
		sol.update(winner)
	}

	if defeated == nil {
		return
	}

	for {
		delta := defeated.Cost() - winner.Cost()

		firstChild := defeated.firstChildLoad()
		for !defeated.firstChildCAS(firstChild, nil) {
			firstChild = defeated.firstChildLoad()
		}

		for child := firstChild; child != nil; {
			next := child.nextSiblingLoad()
			childNode := child.Node()
			shorter := links.allocate(childNode, winner, child.Cost()-delta)
			publish(links, sol, childNode, shorter)
			child = next
		}

		reloaded := node.loadLink()
		if reloaded == winner {
			return
		}
		defeated = winner
		winner = reloaded
	}
}
