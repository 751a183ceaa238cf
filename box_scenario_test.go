package prrtstar

import "testing"

func TestBox_Contains(t *testing.T) {
	b := Box{Lo: []float64{1, 1}, Hi: []float64{2, 2}}
	if !b.contains([]float64{1.5, 1.5}) {
		t.Error("contains(1.5,1.5) should be true, point is inside the box")
	}
	if b.contains([]float64{0.5, 0.5}) {
		t.Error("contains(0.5,0.5) should be false, point is outside the box")
	}
}

func TestSphereGoal_Evaluate(t *testing.T) {
	g := SphereGoal{Center: []float64{0, 0}, Radius: 1}
	space := NewSpace(nil, []float64{-10, -10}, []float64{10, 10})

	if ok, _ := g.Evaluate(space, []float64{0.5, 0}); !ok {
		t.Error("Evaluate(0.5, 0) should be inside the goal radius")
	}
	if ok, _ := g.Evaluate(space, []float64{2, 0}); ok {
		t.Error("Evaluate(2, 0) should be outside the goal radius")
	}
}

func TestSphereGoal_SampleStaysInsideRadius(t *testing.T) {
	g := SphereGoal{Center: []float64{5, 5}, Radius: 0.5}
	space := NewSpace(nil, []float64{0, 0}, []float64{10, 10})

	rng := newTestRNG(t)
	for i := 0; i < 100; i++ {
		state, ok := g.Sample(rng)
		if !ok {
			t.Fatal("Sample should always report ok = true")
		}
		if d := space.Distance(g.Center, state); d > g.Radius+1e-9 {
			t.Errorf("Sample() = %v, distance %f exceeds radius %f", state, d, g.Radius)
		}
	}
}

func TestBoxScenario_ValidRejectsOutOfBoundsAndObstacles(t *testing.T) {
	space := NewSpace(nil, []float64{0, 0}, []float64{10, 10})
	obstacles := []Box{{Lo: []float64{4, 4}, Hi: []float64{6, 6}}}
	s := NewBoxScenario(space, obstacles, SphereGoal{Center: []float64{9, 9}, Radius: 0.5})

	if !s.Valid([]float64{1, 1}) {
		t.Error("Valid(1,1) should be true, empty space")
	}
	if s.Valid([]float64{5, 5}) {
		t.Error("Valid(5,5) should be false, inside the obstacle box")
	}
	if s.Valid([]float64{-1, 1}) {
		t.Error("Valid(-1,1) should be false, outside the space bounds")
	}
}

func TestBoxScenario_LinkRejectsMotionThroughObstacle(t *testing.T) {
	space := NewSpace(nil, []float64{0, 0}, []float64{10, 10})
	obstacles := []Box{{Lo: []float64{4, 0}, Hi: []float64{6, 10}}}
	s := NewBoxScenario(space, obstacles, SphereGoal{Center: []float64{9, 5}, Radius: 0.5})

	if s.Link([]float64{0, 5}, []float64{10, 5}) {
		t.Error("Link should reject a motion crossing the obstacle wall")
	}
	if !s.Link([]float64{0, 5}, []float64{3, 5}) {
		t.Error("Link should accept a motion entirely outside the obstacle")
	}
}
