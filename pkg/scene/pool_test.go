package scene

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/ameliaong/go-bracelet/pkg/motion"
)

func testPool(t *testing.T) *Pool {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 42
	return newPool(cfg, rand.New(rand.NewSource(cfg.Seed)))
}

func TestPool_AmbientBatch(t *testing.T) {
	p := testPool(t)
	p.AddAmbient(p.cfg.AmbientBatch)

	if p.Len() != p.cfg.AmbientBatch {
		t.Errorf("ambient count: got %d, want %d", p.Len(), p.cfg.AmbientBatch)
	}

	p.Each(func(l *FloatingLetter) {
		if l.ID == "" {
			t.Error("ambient letter missing ID")
		}
		if l.Pos[2] > p.cfg.AmbientNear || l.Pos[2] < p.cfg.AmbientFar {
			t.Errorf("ambient letter outside depth range: z=%v", l.Pos[2])
		}
	})
}

func TestPool_CapNeverExceeded(t *testing.T) {
	p := testPool(t)
	p.AddAmbient(p.cfg.AmbientBatch)

	for i := 0; i < p.Cap()*3; i++ {
		p.AddEmitted(mgl64.Vec3{0, 0, 0})
		if p.Len() > p.Cap() {
			t.Fatalf("pool size %d exceeds cap %d after %d emissions", p.Len(), p.Cap(), i+1)
		}
	}
	if p.Len() != p.Cap() {
		t.Errorf("pool should be full: got %d, want %d", p.Len(), p.Cap())
	}
}

func TestPool_SlidingWindowEvictsOldest(t *testing.T) {
	p := testPool(t)

	for i := 0; i < p.Cap(); i++ {
		p.AddEmitted(mgl64.Vec3{float64(i), 0, 0})
	}
	var oldest string
	p.Each(func(l *FloatingLetter) {
		if oldest == "" {
			oldest = l.ID
		}
	})

	// One more push evicts exactly the oldest
	p.AddEmitted(mgl64.Vec3{99, 0, 0})
	if p.Len() != p.Cap() {
		t.Fatalf("len after overflow: got %d, want %d", p.Len(), p.Cap())
	}
	p.Each(func(l *FloatingLetter) {
		if l.ID == oldest {
			t.Error("oldest letter should have been evicted")
		}
	})
}

func TestPool_LinearDrift(t *testing.T) {
	p := testPool(t)
	p.AddEmitted(mgl64.Vec3{1, 2, 3})

	var start, vel mgl64.Vec3
	p.Each(func(l *FloatingLetter) {
		start = l.Pos
		vel = l.Vel
	})

	for i := 0; i < 10; i++ {
		p.update(motion.State{})
	}

	p.Each(func(l *FloatingLetter) {
		want := start.Add(vel.Mul(10))
		if l.Pos.Sub(want).Len() > 1e-9 {
			t.Errorf("drift: got %v, want %v", l.Pos, want)
		}
		if l.Vel != vel {
			t.Error("velocity must stay fixed after creation")
		}
	})
}

func TestPool_SpinFollowsRotationSpeed(t *testing.T) {
	p := testPool(t)
	p.AddEmitted(mgl64.Vec3{})

	var before float64
	p.Each(func(l *FloatingLetter) { before = l.Rot[1] })

	speed := 2.0
	p.update(motion.State{RotationSpeed: speed})

	p.Each(func(l *FloatingLetter) {
		want := before + p.cfg.PoolSpinY + speed*p.cfg.PoolSpinGain
		if l.Rot[1] != want {
			t.Errorf("spin bias: got %v, want %v", l.Rot[1], want)
		}
	})
}

func TestPool_EmittedRisesUpward(t *testing.T) {
	p := testPool(t)
	for i := 0; i < 20; i++ {
		p.AddEmitted(mgl64.Vec3{})
	}
	p.Each(func(l *FloatingLetter) {
		if l.Vel[1] < p.cfg.RiseMin {
			t.Errorf("emitted letter should rise: vy=%v", l.Vel[1])
		}
		if l.Scale != 1.0 {
			t.Errorf("emitted letter scale: got %v, want 1.0", l.Scale)
		}
	})
}
