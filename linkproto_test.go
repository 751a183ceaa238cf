package prrtstar

import "testing"

func TestSetLink_FirstInstallOnEmptyNode(t *testing.T) {
	links := newLinkPool()
	sol := &solutionTracker{}
	node := &Node{isGoal: true}
	candidate := &Link{node: node, cost: 3}

	setLink(links, sol, node, candidate)

	if node.Link() != candidate {
		t.Error("setLink on an empty Node should install the candidate")
	}
	if sol.Load() != candidate {
		t.Error("setLink on a goal Node should publish to the solution tracker")
	}
}

func TestSetLink_NonGoalDoesNotTouchSolution(t *testing.T) {
	links := newLinkPool()
	sol := &solutionTracker{}
	node := &Node{isGoal: false}
	candidate := &Link{node: node, cost: 3}

	setLink(links, sol, node, candidate)

	if sol.Load() != nil {
		t.Error("setLink on a non-goal Node should not update the solution tracker")
	}
}

func TestSetLink_LoserLeavesCurrentLinkInPlace(t *testing.T) {
	links := newLinkPool()
	sol := &solutionTracker{}
	node := &Node{}
	existing := &Link{node: node, cost: 1}
	node.storeLink(existing)

	loser := &Link{node: node, cost: 2}
	setLink(links, sol, node, loser)

	if node.Link() != existing {
		t.Error("setLink with a more expensive candidate should leave the current link installed")
	}
}

func TestSetLink_WinnerMigratesChildrenWithCostDelta(t *testing.T) {
	links := newLinkPool()
	sol := &solutionTracker{}

	root := &Node{}
	defeated := &Link{node: root, cost: 5}
	root.storeLink(defeated)

	childNode := &Node{}
	childLink := &Link{node: childNode, parent: defeated, cost: 7}
	childNode.storeLink(childLink)
	defeated.firstChildCAS(nil, childLink)

	winner := &Link{node: root, cost: 2}
	setLink(links, sol, root, winner)

	if root.Link() != winner {
		t.Fatal("setLink with a cheaper candidate should install it")
	}

	kids := winner.children()
	if len(kids) != 1 {
		t.Fatalf("winner should have inherited 1 migrated child, got %d", len(kids))
	}

	wantCost := 7.0 - (5.0 - 2.0) // childLink.cost - delta
	if kids[0].Cost() != wantCost {
		t.Errorf("migrated child cost = %f, want %f", kids[0].Cost(), wantCost)
	}
	if kids[0].Parent() != winner {
		t.Error("migrated child's parent should be the new winner")
	}
	if childNode.Link() != kids[0] {
		t.Error("childNode's active link should have been replaced by the migrated, cheaper link")
	}
}

func TestAttachChild_PushesOntoActiveParent(t *testing.T) {
	parentNode := &Node{}
	parent := &Link{node: parentNode, cost: 1}
	parentNode.storeLink(parent)

	child := &Link{parent: parent, cost: 3}
	attachChild(child)

	kids := parent.children()
	if len(kids) != 1 || kids[0] != child {
		t.Errorf("children() = %v, want [child]", kids)
	}
}

func TestAttachChild_ReroutesAroundStaleParent(t *testing.T) {
	parentNode := &Node{}
	stale := &Link{node: parentNode, cost: 5}
	active := &Link{node: parentNode, cost: 2}
	parentNode.storeLink(active) // parentNode's link moved on since stale was chosen

	child := &Link{parent: stale, cost: 9}
	attachChild(child)

	if child.Parent() != active {
		t.Error("attachChild should reroute a child whose chosen parent is stale")
	}
	wantCost := 9.0 - (5.0 - 2.0)
	if child.Cost() != wantCost {
		t.Errorf("rerouted child cost = %f, want %f", child.Cost(), wantCost)
	}
	kids := active.children()
	if len(kids) != 1 || kids[0] != child {
		t.Error("rerouted child should end up on the active parent's child list")
	}
}

func TestPublish_NilParentSkipsAttach(t *testing.T) {
	links := newLinkPool()
	sol := &solutionTracker{}
	node := &Node{}
	link := &Link{node: node, cost: 0} // start link: no parent

	publish(links, sol, node, link)

	if node.Link() != link {
		t.Error("publish with a nil-parent link should still install it as the Node's link")
	}
}
