package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/ameliaong/go-bracelet/pkg/gesture"
	"github.com/ameliaong/go-bracelet/pkg/motion"
	"github.com/ameliaong/go-bracelet/pkg/scene"
)

type captureBroadcaster struct {
	mu    sync.Mutex
	count int
}

func (c *captureBroadcaster) BroadcastJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count++
	return nil
}

func (c *captureBroadcaster) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

func testScene() *scene.Scene {
	cfg := scene.DefaultConfig()
	cfg.Seed = 42
	return scene.New(cfg, motion.DefaultConfig())
}

func TestEngine_TicksAndBroadcasts(t *testing.T) {
	src := gesture.Hold(0.03, true)
	eng := New(testScene(), src, 2*time.Millisecond)

	b := &captureBroadcaster{}
	eng.SetBroadcaster(b)

	go eng.Run()
	time.Sleep(100 * time.Millisecond)
	eng.Stop()
	time.Sleep(10 * time.Millisecond)

	if eng.IsRunning() {
		t.Error("engine should have stopped")
	}

	stats := eng.Stats()
	if stats.Ticks == 0 {
		t.Fatal("engine never ticked")
	}
	if b.Count() == 0 {
		t.Error("engine never broadcast")
	}

	snap := eng.Snapshot()
	if len(snap.Beads) == 0 {
		t.Error("snapshot has no beads")
	}
	if !snap.Hand.Present || snap.Hand.Distance != 0.03 {
		t.Errorf("snapshot hand: %+v", snap.Hand)
	}
}

func TestEngine_NilSourceIdles(t *testing.T) {
	eng := New(testScene(), nil, 2*time.Millisecond)

	go eng.Run()
	time.Sleep(50 * time.Millisecond)
	eng.Stop()

	stats := eng.Stats()
	if stats.Ticks == 0 {
		t.Fatal("engine should animate without a gesture source")
	}
	if stats.HandPresent {
		t.Error("nil source must read as absent")
	}
	// Idle fixed point: the mapper starts at idle speed and holds it
	if stats.Motion.RotationSpeed < 0.19 || stats.Motion.RotationSpeed > 0.21 {
		t.Errorf("idle speed drifted: %v", stats.Motion.RotationSpeed)
	}
}

func TestEngine_TuningSwap(t *testing.T) {
	eng := New(testScene(), nil, time.Millisecond)

	cfg := eng.MotionConfig()
	cfg.IdleSpeed = 0.5
	eng.SetMotionConfig(cfg)

	if got := eng.MotionConfig().IdleSpeed; got != 0.5 {
		t.Errorf("idle speed after tuning: got %v, want 0.5", got)
	}
}
