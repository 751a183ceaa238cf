package prrtstar

import (
	"fmt"
	"math"
	"runtime"
)

// Config controls planner construction and rewiring behavior.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Workers is the number of goroutines that sample and rewire
	// concurrently. Exactly 1 selects the sequential specialisation
	// (in-place cost mutation, no CAS). 0 means runtime.NumCPU().
	// Default: 0 (auto).
	Workers int

	// MaxDistance caps the length of a single edge: samples farther than
	// MaxDistance from their nearest tree node are steered toward the
	// sample instead of adopting it directly. Must be > 0.
	// Default: +Inf (no steering).
	MaxDistance float64

	// GoalBias is the probability, before worker-count scaling, that
	// worker 0 draws from the scenario's goal sampler instead of
	// sampling uniformly. Only used if the scenario's Goal implements
	// GoalSampler. Must be in [0, 1]. Default: 0.01.
	GoalBias float64

	// RewireFactor scales the Karaman-Frazzoli k-nearest lower bound
	// (k_RRT = RewireFactor * e * (1 + 1/dim)) above its theoretical
	// floor. Must be > 0. Default: 1.1.
	RewireFactor float64

	// MaxGoals is the number of goal nodes found before goal-biased
	// sampling stops. Must be >= 1. Default: 1.
	MaxGoals int

	// Stats enables per-worker counters (iterations, rewire tests,
	// timings) reported by Planner.PrintStats. Default: false.
	Stats bool
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		MaxDistance:  math.Inf(1),
		GoalBias:     0.01,
		RewireFactor: 1.1,
		MaxGoals:     1,
	}
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.MaxDistance == 0 {
		cfg.MaxDistance = math.Inf(1)
	}
	if cfg.RewireFactor == 0 {
		cfg.RewireFactor = 1.1
	}
	if cfg.MaxGoals == 0 {
		cfg.MaxGoals = 1
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive
// error if not.
func validateConfig(cfg *Config) error {
	if cfg.Workers < 0 {
		return fmt.Errorf("prrtstar: Workers must be >= 0, got %d", cfg.Workers)
	}
	if cfg.MaxDistance <= 0 {
		return fmt.Errorf("prrtstar: MaxDistance must be > 0, got %f", cfg.MaxDistance)
	}
	if cfg.GoalBias < 0 || cfg.GoalBias > 1 {
		return fmt.Errorf("prrtstar: GoalBias must be in [0, 1], got %f", cfg.GoalBias)
	}
	if cfg.RewireFactor <= 0 {
		return fmt.Errorf("prrtstar: RewireFactor must be > 0, got %f", cfg.RewireFactor)
	}
	if cfg.MaxGoals < 1 {
		return fmt.Errorf("prrtstar: MaxGoals must be >= 1, got %d", cfg.MaxGoals)
	}
	return nil
}
