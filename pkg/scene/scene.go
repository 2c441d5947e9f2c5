// Package scene holds the bracelet animation core: the bead ring, the
// letter shells, rotation-driven letter emission and the floating-letter
// pool. One Step call advances everything exactly one frame, in
// dependency order: mapper, ring, beads, pool.
package scene

import (
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/ameliaong/go-bracelet/pkg/gesture"
	"github.com/ameliaong/go-bracelet/pkg/motion"
	"github.com/ameliaong/go-bracelet/pkg/protocol"
)

// Scene owns the full animation state. It is not safe for concurrent
// use: the engine steps it from a single frame loop and snapshots it
// under its own lock.
type Scene struct {
	cfg    Config
	mapper *motion.Mapper
	ring   *Ring
	pool   *Pool
	rng    *rand.Rand

	tick     uint64
	now      float64
	lastHand gesture.Signal
}

// New builds a scene: beads on the ring, letters at rest on every
// shell, and the ambient batch seeded behind the bracelet.
func New(cfg Config, mcfg motion.Config) *Scene {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	s := &Scene{
		cfg:    cfg,
		mapper: motion.NewMapper(mcfg),
		ring:   newRing(cfg, rng),
		pool:   newPool(cfg, rng),
		rng:    rng,
	}
	s.pool.AddAmbient(cfg.AmbientBatch)
	return s
}

// Step advances the scene one frame. now is the scene clock in seconds,
// dt the time since the previous frame. The pass is strictly ordered:
// the mapper writes the motion state before anything reads it.
func (s *Scene) Step(sig gesture.Signal, now, dt float64) motion.State {
	s.tick++
	s.now = now
	s.lastHand = sig.Sanitize()

	st := s.mapper.Update(s.lastHand)

	s.ring.update(dt, st, s.cfg)

	for _, b := range s.ring.Beads {
		if origin, ok := b.update(now, st, s.cfg, s.rng, s.ring.Rotation); ok {
			s.pool.AddEmitted(origin)
		}
	}

	s.pool.update(st)
	return st
}

// Motion returns the mapper output from the last Step.
func (s *Scene) Motion() motion.State {
	return s.mapper.State()
}

// Mapper exposes the mapper for live tuning.
func (s *Scene) Mapper() *motion.Mapper {
	return s.mapper
}

// Config returns the scene parameters.
func (s *Scene) Config() Config {
	return s.cfg
}

// Ring returns the bead assembly.
func (s *Scene) Ring() *Ring {
	return s.ring
}

// Pool returns the floating-letter pool.
func (s *Scene) Pool() *Pool {
	return s.pool
}

// Tick returns the number of frames stepped so far.
func (s *Scene) Tick() uint64 {
	return s.tick
}

// Snapshot renders the full per-frame transform set for the viewer.
func (s *Scene) Snapshot() protocol.SceneData {
	st := s.mapper.State()
	data := protocol.SceneData{
		Tick:         s.tick,
		Now:          s.now,
		RingRotation: s.ring.Rotation,
		Motion: protocol.MotionData{
			Speed:     st.RotationSpeed,
			Scattered: st.Scattered,
			Intensity: st.Intensity,
		},
		Hand: protocol.HandData{
			Distance: s.lastHand.Distance,
			Present:  s.lastHand.Present,
		},
		Beads: make([]protocol.BeadSnapshot, len(s.ring.Beads)),
	}

	for i, b := range s.ring.Beads {
		snap := protocol.BeadSnapshot{
			Index:   b.Index,
			Pos:     v3(s.ring.WorldPos(b)),
			Body:    v3(b.Body),
			Letters: make([]protocol.LetterSnapshot, len(b.Letters)),
		}
		for j := range b.Letters {
			l := &b.Letters[j]
			snap.Letters[j] = protocol.LetterSnapshot{
				Char: string(l.Char),
				Pos:  v3(l.Pos),
				Rot:  v3(l.Rot),
			}
		}
		data.Beads[i] = snap
	}

	s.pool.Each(func(l *FloatingLetter) {
		data.Floating = append(data.Floating, protocol.FloatingSnapshot{
			ID:    l.ID,
			Char:  string(l.Char),
			Pos:   v3(l.Pos),
			Rot:   v3(l.Rot),
			Scale: l.Scale,
		})
	})

	return data
}

func v3(v mgl64.Vec3) protocol.Vec3 {
	return protocol.Vec3{v[0], v[1], v[2]}
}
