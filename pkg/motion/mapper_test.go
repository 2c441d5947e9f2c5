package motion

import (
	"math"
	"math/rand"
	"testing"

	"github.com/ameliaong/go-bracelet/pkg/gesture"
)

const floatTolerance = 1e-6

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) < floatTolerance
}

func TestSmooth_ClosesFraction(t *testing.T) {
	got := Smooth(0, 10, 0.1)
	if !floatEquals(got, 1.0) {
		t.Errorf("Smooth(0,10,0.1): got %v, want 1.0", got)
	}

	// Target is a fixed point
	if got := Smooth(5, 5, 0.3); !floatEquals(got, 5) {
		t.Errorf("Smooth at target: got %v, want 5", got)
	}
}

func TestSmooth_NeverOvershoots(t *testing.T) {
	v := 0.0
	for i := 0; i < 1000; i++ {
		v = Smooth(v, 2.0, 0.05)
		if v > 2.0 {
			t.Fatalf("overshoot at frame %d: %v", i, v)
		}
	}
	if v < 1.99 {
		t.Errorf("should have converged near 2.0, got %v", v)
	}
}

func TestMapper_IdleFixedPoint(t *testing.T) {
	m := NewMapper(DefaultConfig())

	// Sustained absence converges to idle speed and holds there
	for i := 0; i < 500; i++ {
		m.Update(gesture.Absent)
	}
	st := m.State()
	if !floatEquals(st.RotationSpeed, 0.2) {
		t.Errorf("idle speed: got %v, want 0.2", st.RotationSpeed)
	}
	if st.Scattered {
		t.Error("absent hand should not scatter")
	}

	// And it is a fixed point: one more frame changes nothing
	before := m.State().RotationSpeed
	m.Update(gesture.Absent)
	if !floatEquals(m.State().RotationSpeed, before) {
		t.Errorf("idle not a fixed point: %v -> %v", before, m.State().RotationSpeed)
	}
}

func TestMapper_PriorityOrder(t *testing.T) {
	tests := []struct {
		name          string
		sig           gesture.Signal
		wantScattered bool
	}{
		{"absent", gesture.Signal{Distance: 0.9, Present: false}, false},
		{"open hand scatters", gesture.Signal{Distance: 0.25, Present: true}, true},
		{"at scatter boundary", gesture.Signal{Distance: 0.18, Present: true}, false},
		{"pinch", gesture.Signal{Distance: 0.03, Present: true}, false},
		{"intermediate", gesture.Signal{Distance: 0.1, Present: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMapper(DefaultConfig())
			st := m.Update(tt.sig)
			if st.Scattered != tt.wantScattered {
				t.Errorf("scattered: got %v, want %v", st.Scattered, tt.wantScattered)
			}
		})
	}
}

func TestMapper_PinchApproachesFastSpeed(t *testing.T) {
	m := NewMapper(DefaultConfig())
	pinch := gesture.Signal{Distance: 0.03, Present: true}

	var last float64
	for i := 0; i < 400; i++ {
		st := m.Update(pinch)
		if st.RotationSpeed < last-floatTolerance {
			t.Fatalf("speed decreased while pinching at frame %d", i)
		}
		last = st.RotationSpeed
	}
	if math.Abs(m.State().RotationSpeed-2.0) > 1e-3 {
		t.Errorf("pinch speed: got %v, want ~2.0", m.State().RotationSpeed)
	}
}

func TestMapper_ScatterDecaysSpeed(t *testing.T) {
	m := NewMapper(DefaultConfig())
	open := gesture.Signal{Distance: 0.3, Present: true}

	for i := 0; i < 300; i++ {
		m.Update(open)
	}
	st := m.State()
	if !st.Scattered {
		t.Error("open hand should scatter")
	}
	if st.RotationSpeed > 1e-3 {
		t.Errorf("scattered speed should decay to ~0, got %v", st.RotationSpeed)
	}
	if math.Abs(st.Intensity-0.3*5.0) > floatTolerance {
		t.Errorf("intensity: got %v, want %v", st.Intensity, 1.5)
	}
}

func TestMapper_SpeedBounds(t *testing.T) {
	m := NewMapper(DefaultConfig())
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 5000; i++ {
		sig := gesture.Signal{
			Distance: rng.Float64() * 0.5,
			Present:  rng.Intn(4) != 0,
		}
		st := m.Update(sig)
		if st.RotationSpeed < 0 || st.RotationSpeed > 2.0 {
			t.Fatalf("speed out of [0, 2.0] at frame %d: %v", i, st.RotationSpeed)
		}
	}
}

func TestMapper_MalformedInputTolerated(t *testing.T) {
	m := NewMapper(DefaultConfig())

	bad := []gesture.Signal{
		{Distance: math.NaN(), Present: true},
		{Distance: math.Inf(1), Present: true},
		{Distance: -3.0, Present: true},
		{Distance: 42.0, Present: true},
	}
	for _, sig := range bad {
		for i := 0; i < 50; i++ {
			st := m.Update(sig)
			if math.IsNaN(st.RotationSpeed) || math.IsNaN(st.Intensity) {
				t.Fatalf("NaN leaked into state from %+v", sig)
			}
		}
	}
}
