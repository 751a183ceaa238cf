package prrtstar

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Planner is the façade over the concurrent RRT* core (spec C8): start
// registration, the shared read-mostly state every worker samples and
// rewires against, and solution readout.
//
// A Planner is built once via [NewPlanner], populated with [Planner.AddStart]
// calls, then driven to completion with [Planner.Solve]. It is not safe to
// call AddStart concurrently with Solve, nor to call Solve more than once.
type Planner struct {
	space    Space
	scenario Scenario
	index    NearestNeighborIndex
	solution *solutionTracker

	maxDistance float64
	goalBias    float64
	kRRT        float64
	sequential  bool
	cfg         Config

	startMu    sync.Mutex
	startNodes *nodePool
	startLinks *linkPool

	goalCount atomic.Int64

	workers []*worker
	stats   []workerStats
}

// NewPlanner constructs a Planner for scenario using cfg. Zero-valued
// Workers, MaxDistance, RewireFactor and MaxGoals are filled in via
// applyDefaults; a zero GoalBias is kept and disables goal-biased sampling.
// An invalid cfg (see [Config]'s field docs) returns an error.
func NewPlanner(scenario Scenario, cfg Config) (*Planner, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	space := scenario.Space()
	p := &Planner{
		space:       space,
		scenario:    scenario,
		index:       NewIndex(space),
		solution:    &solutionTracker{},
		maxDistance: cfg.MaxDistance,
		goalBias:    cfg.GoalBias,
		kRRT:        kRRTConstant(cfg.RewireFactor, space.Dimensions()),
		sequential:  cfg.Workers == 1,
		cfg:         cfg,
		startNodes:  newNodePool(),
		startLinks:  newLinkPool(),
	}

	p.workers = make([]*worker, cfg.Workers)
	p.stats = make([]workerStats, cfg.Workers)
	for i := range p.workers {
		var st workerStats = noopStats{}
		if cfg.Stats {
			st = &liveStats{}
		}
		p.stats[i] = st
		// Distinct, deterministic-from-index seeds: reproducibility across
		// runs with the same Config is not guaranteed once workers race,
		// but a fixed seed schedule keeps single-worker runs reproducible.
		p.workers[i] = newWorker(i, int64(i)+1, st)
	}

	return p, nil
}

// AddStart registers one or more start states. Each state the scenario
// reports valid becomes a Node with a synthetic Link of cost 0 and no
// parent (spec §4.4); invalid states are skipped. Must be called before
// Solve; safe to call from multiple goroutines (guarded by a single mutex,
// per spec's "low contention, one-time cost" design), but never
// concurrently with Solve.
func (p *Planner) AddStart(states ...[]float64) error {
	p.startMu.Lock()
	defer p.startMu.Unlock()

	for _, state := range states {
		if !p.scenario.Valid(state) {
			continue
		}
		isGoal, _ := p.scenario.Goal().Evaluate(p.space, state)
		node := p.startNodes.allocate(state, isGoal)
		link := p.startLinks.allocate(node, nil, 0)
		node.storeLink(link)
		if node.IsGoal() {
			p.solution.update(link)
			p.goalCount.Add(1)
		}
		p.index.Insert(node)
	}
	return nil
}

// SetRange sets Config.MaxDistance after construction. d must be > 0.
func (p *Planner) SetRange(d float64) {
	if d > 0 {
		p.maxDistance = d
	}
}

// SetGoalBias sets Config.GoalBias after construction. b is clamped to
// [0, 1].
func (p *Planner) SetGoalBias(b float64) {
	if b < 0 {
		b = 0
	}
	if b > 1 {
		b = 1
	}
	p.goalBias = b
}

// Solve launches one goroutine per configured worker and runs the sampling
// and rewiring loop until done returns true. done is polled once per
// sample by every worker (spec §4.5); the same instance is shared across
// workers and must be safe for concurrent calls.
//
// Solve returns ErrNoStarts if called before any start was registered, or
// an error wrapping ErrInvariantViolation if a worker detects a cost
// invariant violation (spec §7); either aborts the whole solve.
func (p *Planner) Solve(done func() bool) error {
	if p.index.Size() == 0 {
		return ErrNoStarts
	}

	g, ctx := errgroup.WithContext(context.Background())
	stop := func() bool { return ctx.Err() != nil || done() }
	for _, w := range p.workers {
		w := w
		g.Go(func() error {
			return w.run(p, stop)
		})
	}
	return g.Wait()
}

// Solved reports whether a solution has been found.
func (p *Planner) Solved() bool { return p.solution.Load() != nil }

// Solution returns the current best path from a start to a goal, as a
// sequence of configurations ordered start-to-goal. Returns nil if no
// solution has been found yet.
func (p *Planner) Solution() [][]float64 {
	link := p.solution.Load()
	if link == nil {
		return nil
	}

	var chain []*Link
	for l := link; l != nil; l = l.Parent() {
		chain = append(chain, l)
	}

	out := make([][]float64, len(chain))
	for i, l := range chain {
		out[len(chain)-1-i] = l.Node().State()
	}
	return out
}

// Size returns the number of nodes currently in the tree, across all
// starts.
func (p *Planner) Size() int { return p.index.Size() }

// PrintStats logs an aggregated summary of every worker's counters via
// log.Printf, if Config.Stats was enabled at construction. A no-op
// otherwise.
func (p *Planner) PrintStats() {
	if !p.cfg.Stats {
		return
	}
	agg := &liveStats{}
	for _, st := range p.stats {
		agg.add(st.snapshot())
	}
	printStats(p.index.Size(), agg.snapshot())
}
