package prrtstar

import (
	"log"
	"math"
	"sort"
)

// rewireK computes k = ceil(kRRT * ln(N+1)), the Karaman-Frazzoli k-nearest
// lower bound for the current index size N (spec §4.1 step 5).
func rewireK(kRRT float64, n int) int {
	return int(math.Ceil(kRRT * math.Log(float64(n+1))))
}

// kRRTConstant computes k_RRT = rewireFactor * e * (1 + 1/dim).
func kRRTConstant(rewireFactor float64, dim int) float64 {
	return rewireFactor * math.E * (1 + 1/float64(dim))
}

// candidate is a scratch entry used while sorting the neighbourhood by
// tentative total cost during parent selection.
type candidate struct {
	link *Link
	dist float64
	hit  *NeighborHit // nil once marked "already checked" during parent selection; skipped by the rewire pass
}

// addSample runs the full per-sample rewiring engine (spec §4.1) for one
// worker on one drawn state. w carries the worker's pools, scratch
// buffers and stats; planner carries shared, read-mostly state
// (space, scenario, index, solution tracker, config).
func (w *worker) addSample(p *Planner, state []float64) error {
	nearNode, dNear, ok := w.timedNearest(p, state)
	if !ok {
		// Cannot occur once starts are registered; solve() checks this
		// before launching workers.
		return nil
	}

	if dNear == 0 {
		return nil // duplicate sample, discard
	}

	if dNear > p.maxDistance {
		state = Interpolate(nearNode.State(), state, p.maxDistance/dNear)
		dNear = p.space.Distance(nearNode.State(), state)
	}

	if !p.scenario.Valid(state) || !w.timedValidMotion(p, nearNode.State(), state) {
		return nil
	}

	isGoal, goalDist := p.scenario.Goal().Evaluate(p.space, state)
	_ = goalDist

	parentLink := nearNode.Link()
	parentCost := parentLink.Cost() + dNear

	k := rewireK(p.kRRT, p.index.Size())
	w.nbh = w.timedNearestK(p, w.nbh[:0], state, k)
	w.stats.rewireTests(len(w.nbh))

	w.candidates = w.candidates[:0]
	for i := range w.nbh {
		hit := &w.nbh[i]
		w.candidates = append(w.candidates, candidate{link: hit.Node.Link(), dist: hit.Distance, hit: hit})
	}
	sort.Slice(w.candidates, func(i, j int) bool {
		return w.candidates[i].link.Cost()+w.candidates[i].dist < w.candidates[j].link.Cost()+w.candidates[j].dist
	})

	for i := range w.candidates {
		c := &w.candidates[i]
		newCost := c.link.Cost() + c.dist

		if c.link == parentLink {
			if math.Abs(newCost-parentCost) > costTolerance {
				return fatalCostMismatch(newCost, parentCost)
			}
		}

		if newCost > parentCost {
			break
		}

		c.hit = nil // mark checked: excluded from the rewire pass below

		if c.link.Node() == nearNode || p.scenario.Link(c.link.Node().State(), state) {
			parentLink = c.link
			parentCost = newCost
			break
		}
	}

	newNode := w.nodes.allocate(state, isGoal)
	newLink := w.links.allocate(newNode, parentLink, parentCost)
	w.install(p, newNode, newLink)
	p.index.Insert(newNode)
	w.recorder.record(state, parentCost)
	if isGoal {
		p.goalCount.Add(1)
	}

	for i := range w.candidates {
		hit := w.candidates[i].hit
		if hit == nil {
			continue // already checked during parent selection
		}
		nbrNode := hit.Node
		nbrLink := nbrNode.Link()
		newCost := parentCost + hit.Distance
		if newCost < nbrLink.Cost() && p.scenario.Link(state, nbrNode.State()) {
			w.stats.rewireCount()
			w.rewire(p, nbrNode, nbrLink, newLink, newCost)
		}
	}

	return nil
}

// install publishes newLink as newNode's active link, dispatching to the
// concurrent or sequential protocol per the planner's configuration.
func (w *worker) install(p *Planner, newNode *Node, newLink *Link) {
	if p.sequential {
		installSequential(p.solution, newNode, newLink)
		return
	}
	publish(w.links, p.solution, newNode, newLink)
}

// rewire replaces nbrNode's link with one parented at newLink, at newCost,
// dispatching to the concurrent or sequential protocol.
func (w *worker) rewire(p *Planner, nbrNode *Node, nbrLink, newLink *Link, newCost float64) {
	if p.sequential {
		rewireSequential(p.solution, nbrLink, newLink, newCost)
		return
	}
	replacement := w.links.allocate(nbrNode, newLink, newCost)
	publish(w.links, p.solution, nbrNode, replacement)
}

// costTolerance bounds the acceptable floating-point disagreement between
// a recomputed candidate cost and the tentative parent's cost when they
// name the same Link (spec §4.1 step 6, "floating-point identity").
const costTolerance = 1e-9

// fatalCostMismatch logs the invariant violation via log.Printf, matching
// stats.go's own diagnostic-log idiom, then returns the wrapped error for
// the worker's errgroup to surface (spec §7).
func fatalCostMismatch(got, want float64) error {
	log.Printf("prrtstar: invariant violation: candidate cost %f, want %f", got, want)
	return fmtInvariantErr(got, want)
}
