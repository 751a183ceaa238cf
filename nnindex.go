package prrtstar

import (
	"container/heap"
	"sync"
)

// NeighborHit is one result of a nearest-neighbour query: a Node and its
// distance from the query state.
type NeighborHit struct {
	Node     *Node
	Distance float64
}

// NearestNeighborIndex is the nearest-neighbour contract the rewiring
// engine queries against (spec §6). Implementations must support
// concurrent Insert and concurrent Nearest/NearestK under whatever
// concurrency the planner is configured with; the planner never
// synchronizes access to the index itself beyond the guarantees this
// interface promises.
type NearestNeighborIndex interface {
	// Insert adds node to the index. node's state must not change after
	// insertion.
	Insert(node *Node)

	// Nearest returns the closest node to state and its distance. ok is
	// false only when the index is empty.
	Nearest(state []float64) (node *Node, distance float64, ok bool)

	// NearestK appends up to k nearest neighbours of state to dst,
	// ascending by distance, and returns the extended slice. It does not
	// reset dst; callers pass dst[:0] for a fresh result.
	NearestK(dst []NeighborHit, state []float64, k int) []NeighborHit

	// Size returns the number of nodes currently in the index.
	Size() int
}

// index is the package's reference NearestNeighborIndex: a
// sync.RWMutex-guarded slice with linear-scan queries and a
// container/heap-backed bounded k-selection (the same technique the
// teacher's kdtree.go uses for its own QueryKNN). It is correct under any
// configured concurrency but O(n) per query; callers with large trees or
// tight latency budgets should substitute a real spatial index behind the
// same interface.
type index struct {
	space Space

	mu    sync.RWMutex
	nodes []*Node
}

// NewIndex returns the reference NearestNeighborIndex for the given space.
func NewIndex(space Space) NearestNeighborIndex {
	return &index{space: space}
}

func (idx *index) Insert(node *Node) {
	idx.mu.Lock()
	idx.nodes = append(idx.nodes, node)
	idx.mu.Unlock()
}

func (idx *index) Size() int {
	idx.mu.RLock()
	n := len(idx.nodes)
	idx.mu.RUnlock()
	return n
}

func (idx *index) Nearest(state []float64) (*Node, float64, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if len(idx.nodes) == 0 {
		return nil, 0, false
	}

	best := idx.nodes[0]
	bestDist := idx.space.Distance(best.State(), state)
	for _, n := range idx.nodes[1:] {
		if d := idx.space.Distance(n.State(), state); d < bestDist {
			best, bestDist = n, d
		}
	}
	return best, bestDist, true
}

// neighborHeap is a max-heap on Distance, used to keep the k smallest
// distances seen so far while scanning the index once.
type neighborHeap []NeighborHit

func (h neighborHeap) Len() int            { return len(h) }
func (h neighborHeap) Less(i, j int) bool  { return h[i].Distance > h[j].Distance }
func (h neighborHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *neighborHeap) Push(x any) { *h = append(*h, x.(NeighborHit)) }
func (h *neighborHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

func (idx *index) NearestK(dst []NeighborHit, state []float64, k int) []NeighborHit {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if k <= 0 || len(idx.nodes) == 0 {
		return dst
	}

	h := make(neighborHeap, 0, k)
	for _, n := range idx.nodes {
		d := idx.space.Distance(n.State(), state)
		if len(h) < k {
			heap.Push(&h, NeighborHit{Node: n, Distance: d})
		} else if d < h[0].Distance {
			heap.Pop(&h)
			heap.Push(&h, NeighborHit{Node: n, Distance: d})
		}
	}

	// h is a max-heap; pop from the back to emit ascending by distance.
	out := make([]NeighborHit, len(h))
	for i := len(h) - 1; i >= 0; i-- {
		out[i] = heap.Pop(&h).(NeighborHit)
	}
	return append(dst, out...)
}
