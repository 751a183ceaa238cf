package prrtstar

import (
	"math"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !math.IsInf(cfg.MaxDistance, 1) {
		t.Errorf("MaxDistance: got %f, want +Inf", cfg.MaxDistance)
	}
	if cfg.GoalBias != 0.01 {
		t.Errorf("GoalBias: got %f, want 0.01", cfg.GoalBias)
	}
	if cfg.RewireFactor != 1.1 {
		t.Errorf("RewireFactor: got %f, want 1.1", cfg.RewireFactor)
	}
	if cfg.MaxGoals != 1 {
		t.Errorf("MaxGoals: got %d, want 1", cfg.MaxGoals)
	}
	if cfg.Stats {
		t.Error("Stats: got true, want false")
	}
}

func TestApplyDefaults_FillsZeroWorkers(t *testing.T) {
	cfg := Config{}
	applyDefaults(&cfg)
	if cfg.Workers <= 0 {
		t.Errorf("Workers after applyDefaults = %d, want > 0", cfg.Workers)
	}
	if !math.IsInf(cfg.MaxDistance, 1) {
		t.Errorf("MaxDistance after applyDefaults = %f, want +Inf", cfg.MaxDistance)
	}
	if cfg.RewireFactor != 1.1 {
		t.Errorf("RewireFactor after applyDefaults = %f, want 1.1", cfg.RewireFactor)
	}
	if cfg.MaxGoals != 1 {
		t.Errorf("MaxGoals after applyDefaults = %d, want 1", cfg.MaxGoals)
	}
}

func TestApplyDefaults_PreservesExplicitWorkers(t *testing.T) {
	cfg := Config{Workers: 3}
	applyDefaults(&cfg)
	if cfg.Workers != 3 {
		t.Errorf("Workers after applyDefaults = %d, want 3 (explicit value preserved)", cfg.Workers)
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid defaults", DefaultConfig(), false},
		{"negative workers", Config{Workers: -1, MaxDistance: 1, RewireFactor: 1, MaxGoals: 1}, true},
		{"zero max distance", Config{MaxDistance: 0, RewireFactor: 1, MaxGoals: 1}, true},
		{"negative goal bias", Config{MaxDistance: 1, GoalBias: -0.1, RewireFactor: 1, MaxGoals: 1}, true},
		{"goal bias above one", Config{MaxDistance: 1, GoalBias: 1.1, RewireFactor: 1, MaxGoals: 1}, true},
		{"zero rewire factor", Config{MaxDistance: 1, RewireFactor: 0, MaxGoals: 1}, true},
		{"zero max goals", Config{MaxDistance: 1, RewireFactor: 1, MaxGoals: 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateConfig(&tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateConfig(%+v) error = %v, wantErr %v", tt.cfg, err, tt.wantErr)
			}
		})
	}
}
