// Package engine drives the bracelet scene with a fixed-rate frame
// loop: sample the gesture source, step the scene, broadcast the
// snapshot. Exactly one update pass per tick, no suspension points
// inside the pass.
package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/ameliaong/go-bracelet/pkg/gesture"
	"github.com/ameliaong/go-bracelet/pkg/motion"
	"github.com/ameliaong/go-bracelet/pkg/protocol"
	"github.com/ameliaong/go-bracelet/pkg/scene"
)

// Broadcaster receives the per-frame snapshot for fan-out to viewers.
type Broadcaster interface {
	BroadcastJSON(v interface{}) error
}

// Stats is a diagnostic snapshot of the frame loop.
type Stats struct {
	Ticks        uint64       `json:"ticks"`
	Errors       uint64       `json:"errors"`
	UptimeSec    float64      `json:"uptime_sec"`
	TickHz       float64      `json:"tick_hz"`
	Motion       motion.State `json:"motion"`
	PoolLen      int          `json:"pool_len"`
	HandPresent  bool         `json:"hand_present"`
	HandDistance float64      `json:"hand_distance"`
}

// Engine owns the scene and runs the frame loop.
// rate should be ~33ms for a 30Hz animation loop.
type Engine struct {
	scene  *scene.Scene
	source gesture.Source
	rate   time.Duration

	broadcaster Broadcaster

	mu       sync.RWMutex
	running  bool
	start    time.Time
	lastTick time.Time
	snapshot protocol.SceneData
	lastSig  gesture.Signal

	stop chan struct{}

	tickCount  uint64
	errorCount uint64
}

// New creates an engine for the given scene and gesture source.
func New(sc *scene.Scene, source gesture.Source, rate time.Duration) *Engine {
	return &Engine{
		scene:  sc,
		source: source,
		rate:   rate,
		stop:   make(chan struct{}),
	}
}

// SetBroadcaster sets where per-frame snapshots are sent. Optional;
// without one the engine still animates (for tests and handcal).
func (e *Engine) SetBroadcaster(b Broadcaster) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.broadcaster = b
}

// Run starts the frame loop. Blocks until Stop is called.
func (e *Engine) Run() {
	ticker := time.NewTicker(e.rate)
	defer ticker.Stop()

	e.mu.Lock()
	e.running = true
	e.start = time.Now()
	e.lastTick = e.start
	e.mu.Unlock()

	fmt.Printf("📿 Bracelet engine started (%.0fHz)\n", 1.0/e.rate.Seconds())

	for {
		select {
		case <-e.stop:
			e.mu.Lock()
			e.running = false
			e.mu.Unlock()
			fmt.Println("📿 Bracelet engine stopped")
			return
		case <-ticker.C:
			e.tick()
		}
	}
}

// Stop halts the frame loop.
func (e *Engine) Stop() {
	close(e.stop)
}

// IsRunning reports whether the frame loop is active.
func (e *Engine) IsRunning() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.running
}

// tick executes one frame: sample, step, snapshot, broadcast.
func (e *Engine) tick() {
	// A nil source just means no tracking yet - keep animating in
	// idle mode, never block rendering on gesture input.
	sig := gesture.Absent
	if e.source != nil {
		sig = e.source.Sample()
	}

	e.mu.Lock()
	nowT := time.Now()
	dt := nowT.Sub(e.lastTick).Seconds()
	if dt <= 0 || dt > 1 {
		dt = e.rate.Seconds()
	}
	e.lastTick = nowT

	e.scene.Step(sig, nowT.Sub(e.start).Seconds(), dt)
	e.snapshot = e.scene.Snapshot()
	e.lastSig = sig.Sanitize()
	e.tickCount++
	snap := e.snapshot
	b := e.broadcaster
	e.mu.Unlock()

	if b != nil {
		msg, err := protocol.NewSceneMessage(snap)
		if err == nil {
			err = b.BroadcastJSON(msg)
		}
		if err != nil {
			e.mu.Lock()
			e.errorCount++
			n := e.errorCount
			e.mu.Unlock()
			if n%100 == 1 {
				fmt.Printf("⚠️  Engine broadcast error: %v\n", err)
			}
		}
	}

	// Periodic heartbeat
	if e.tickCount%300 == 0 {
		st := snap.Motion
		fmt.Printf("💓 Engine: %d ticks, speed=%.2f scattered=%v pool=%d\n",
			e.tickCount, st.Speed, st.Scattered, len(snap.Floating))
	}
}

// Snapshot returns the most recent scene snapshot. Safe to call from
// the web layer while the loop runs.
func (e *Engine) Snapshot() protocol.SceneData {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.snapshot
}

// Scene returns the underlying scene (for tuning access).
func (e *Engine) Scene() *scene.Scene {
	return e.scene
}

// Stats returns frame-loop diagnostics.
func (e *Engine) Stats() Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	uptime := 0.0
	if !e.start.IsZero() {
		uptime = time.Since(e.start).Seconds()
	}
	return Stats{
		Ticks:        e.tickCount,
		Errors:       e.errorCount,
		UptimeSec:    uptime,
		TickHz:       1.0 / e.rate.Seconds(),
		Motion:       e.scene.Motion(),
		PoolLen:      e.scene.Pool().Len(),
		HandPresent:  e.lastSig.Present,
		HandDistance: e.lastSig.Distance,
	}
}

// MotionConfig returns the live mapper parameters.
func (e *Engine) MotionConfig() motion.Config {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.scene.Mapper().Config()
}

// SetMotionConfig swaps the mapper parameters between frames.
func (e *Engine) SetMotionConfig(cfg motion.Config) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scene.Mapper().SetConfig(cfg)
}

// TickRate returns the loop rate.
func (e *Engine) TickRate() time.Duration {
	return e.rate
}
