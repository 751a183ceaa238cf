package prrtstar

import (
	"log"
	"sync/atomic"
	"time"
)

// workerStats is the counter interface a worker reports through. The
// planner selects noopStats or liveStats at construction based on
// Config.Stats, mirroring the WorkerStats<bool> template specialisation
// of the original C++ source.
type workerStats interface {
	iteration()
	biasedSample()
	rewireTests(n int)
	rewireCount()
	timeValidMotion(d time.Duration)
	timeNearest1(d time.Duration)
	timeNearestK(d time.Duration)
	snapshot() statsSnapshot
	add(statsSnapshot)
}

type statsSnapshot struct {
	iterations, biasedSamples, rewireTests, rewireCount int64
	validMotion, nearest1, nearestK                     time.Duration
}

type noopStats struct{}

func (noopStats) iteration()                    {}
func (noopStats) biasedSample()                 {}
func (noopStats) rewireTests(int)               {}
func (noopStats) rewireCount()                  {}
func (noopStats) timeValidMotion(time.Duration) {}
func (noopStats) timeNearest1(time.Duration)    {}
func (noopStats) timeNearestK(time.Duration)    {}
func (noopStats) snapshot() statsSnapshot       { return statsSnapshot{} }
func (noopStats) add(statsSnapshot)             {}

// liveStats accumulates counters with atomics so PrintStats can read them
// from any goroutine while workers keep updating them.
type liveStats struct {
	iterations    atomic.Int64
	biasedSamples atomic.Int64
	rewireTestsN  atomic.Int64
	rewireCountN  atomic.Int64
	validMotionNs atomic.Int64
	nearest1Ns    atomic.Int64
	nearestKNs    atomic.Int64
}

func (s *liveStats) iteration()      { s.iterations.Add(1) }
func (s *liveStats) biasedSample()   { s.biasedSamples.Add(1) }
func (s *liveStats) rewireTests(n int) {
	s.rewireTestsN.Add(int64(n))
}
func (s *liveStats) rewireCount()                       { s.rewireCountN.Add(1) }
func (s *liveStats) timeValidMotion(d time.Duration)    { s.validMotionNs.Add(int64(d)) }
func (s *liveStats) timeNearest1(d time.Duration)       { s.nearest1Ns.Add(int64(d)) }
func (s *liveStats) timeNearestK(d time.Duration)       { s.nearestKNs.Add(int64(d)) }

func (s *liveStats) snapshot() statsSnapshot {
	return statsSnapshot{
		iterations:    s.iterations.Load(),
		biasedSamples: s.biasedSamples.Load(),
		rewireTests:   s.rewireTestsN.Load(),
		rewireCount:   s.rewireCountN.Load(),
		validMotion:   time.Duration(s.validMotionNs.Load()),
		nearest1:      time.Duration(s.nearest1Ns.Load()),
		nearestK:      time.Duration(s.nearestKNs.Load()),
	}
}

func (s *liveStats) add(other statsSnapshot) {
	s.iterations.Add(other.iterations)
	s.biasedSamples.Add(other.biasedSamples)
	s.rewireTestsN.Add(other.rewireTests)
	s.rewireCountN.Add(other.rewireCount)
	s.validMotionNs.Add(int64(other.validMotion))
	s.nearest1Ns.Add(int64(other.nearest1))
	s.nearestKNs.Add(int64(other.nearestK))
}

// printStats logs an aggregated summary, matching the plain log.Printf
// diagnostic idiom the teacher uses in mst.go.
func printStats(nodeCount int, total statsSnapshot) {
	log.Printf("prrtstar: nodes in graph: %d", nodeCount)
	log.Printf("prrtstar: iterations: %d", total.iterations)
	log.Printf("prrtstar: biased samples: %d", total.biasedSamples)
	log.Printf("prrtstar: rewire count: %d of %d", total.rewireCount, total.rewireTests)
	log.Printf("prrtstar: valid motion time: %s", total.validMotion)
	log.Printf("prrtstar: nearest-1 time: %s", total.nearest1)
	log.Printf("prrtstar: nearest-k time: %s", total.nearestK)
}
