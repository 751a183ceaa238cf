package prrtstar

import (
	"math/rand"
	"time"
)

// worker owns one goroutine's private allocation pools, RNG and scratch
// buffers (spec C7). Nodes and Links a worker allocates are never touched
// for allocation by any other worker; other workers freely read them by
// following pointers once published.
type worker struct {
	id       int
	rng      *rand.Rand
	nodes    *nodePool
	links    *linkPool
	stats    workerStats
	recorder sampleRecorder

	// Scratch buffers reused across addSample calls to avoid per-sample
	// allocation.
	nbh        []NeighborHit
	candidates []candidate
}

func newWorker(id int, seed int64, stats workerStats) *worker {
	return &worker{
		id:       id,
		rng:      rand.New(rand.NewSource(seed)),
		nodes:    newNodePool(),
		links:    newLinkPool(),
		stats:    stats,
		recorder: noopRecorder{},
	}
}

// sampleRecord is one accepted (Node state, parent cost) pair, in insertion
// order. Used to check Testable Property 5 (single-threaded determinism):
// two sequential-mode planners built from the same seed must produce the
// same recorded sequence.
type sampleRecord struct {
	state      []float64
	parentCost float64
}

// sampleRecorder is the recording counterpart of workerStats: noopRecorder
// costs nothing in normal operation, sliceRecorder is opted into by tests
// that need to compare sample sequences across runs.
type sampleRecorder interface {
	record(state []float64, parentCost float64)
}

type noopRecorder struct{}

func (noopRecorder) record([]float64, float64) {}

// sliceRecorder accumulates every accepted sample in order.
type sliceRecorder struct {
	entries []sampleRecord
}

func (r *sliceRecorder) record(state []float64, parentCost float64) {
	r.entries = append(r.entries, sampleRecord{
		state:      append([]float64(nil), state...),
		parentCost: parentCost,
	})
}

// run drives one worker's sampling loop until done returns true. Worker 0
// performs goal-biased sampling while the scenario's Goal implements
// GoalSampler, GoalBias > 0, and fewer than Config.MaxGoals goals have
// been found (spec §4.5); every other worker, and worker 0 once that
// threshold is reached, samples uniformly.
func (w *worker) run(p *Planner, done func() bool) error {
	if w.id == 0 && p.goalBias > 0 {
		if sampler, ok := p.scenario.Goal().(GoalSampler); ok {
			return w.biasedLoop(p, done, sampler)
		}
	}
	return w.unbiasedLoop(p, done)
}

func (w *worker) biasedLoop(p *Planner, done func() bool, goalSampler GoalSampler) error {
	uniform := NewUniformSampler(p.space)

	scaledBias := p.goalBias * float64(len(p.workers))
	if scaledBias > 1 {
		scaledBias = 1
	}

	for !done() {
		w.stats.iteration()

		if p.goalCount.Load() >= int64(p.cfg.MaxGoals) {
			return w.unbiasedLoopFrom(p, done, uniform)
		}

		if w.rng.Float64() < scaledBias {
			state, ok := goalSampler.Sample(w.rng)
			if !ok {
				continue // sampler miss: skip iteration silently
			}
			w.stats.biasedSample()
			if err := w.addSample(p, state); err != nil {
				return err
			}
			continue
		}

		if err := w.addSample(p, uniform.Sample(w.rng)); err != nil {
			return err
		}
	}
	return nil
}

func (w *worker) unbiasedLoop(p *Planner, done func() bool) error {
	return w.unbiasedLoopFrom(p, done, NewUniformSampler(p.space))
}

func (w *worker) unbiasedLoopFrom(p *Planner, done func() bool, uniform UniformSampler) error {
	for !done() {
		w.stats.iteration()
		if err := w.addSample(p, uniform.Sample(w.rng)); err != nil {
			return err
		}
	}
	return nil
}

func (w *worker) timedNearest(p *Planner, state []float64) (*Node, float64, bool) {
	start := time.Now()
	node, dist, ok := p.index.Nearest(state)
	w.stats.timeNearest1(time.Since(start))
	return node, dist, ok
}

func (w *worker) timedNearestK(p *Planner, dst []NeighborHit, state []float64, k int) []NeighborHit {
	start := time.Now()
	out := p.index.NearestK(dst, state, k)
	w.stats.timeNearestK(time.Since(start))
	return out
}

func (w *worker) timedValidMotion(p *Planner, a, b []float64) bool {
	start := time.Now()
	ok := p.scenario.Link(a, b)
	w.stats.timeValidMotion(time.Since(start))
	return ok
}
