package scene

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/ameliaong/go-bracelet/pkg/motion"
)

// Ring arranges the beads on a circle and carries the one shared
// rotation applied to the whole assembly.
type Ring struct {
	Rotation float64 // Shared assembly rotation about the y axis
	Beads    []*Bead
}

// ringSlot returns the fixed position of bead i on the bracelet circle.
func ringSlot(i int, cfg Config) mgl64.Vec3 {
	theta := 2 * math.Pi * float64(i) / float64(cfg.BeadCount)
	return mgl64.Vec3{
		cfg.BraceletRadius * math.Cos(theta),
		cfg.BraceletRadius * math.Sin(theta),
		0,
	}
}

// newRing builds the full bead assembly.
func newRing(cfg Config, rng *rand.Rand) *Ring {
	r := &Ring{Beads: make([]*Bead, cfg.BeadCount)}
	for i := range r.Beads {
		r.Beads[i] = newBead(i, cfg, rng)
	}
	return r
}

// update advances the shared ring rotation. This is the only place the
// frame delta matters: overall spin must be frame-rate independent,
// while the letter smoothing factors are tuned per tick.
func (r *Ring) update(dt float64, st motion.State, cfg Config) {
	r.Rotation += st.RotationSpeed * dt * cfg.RingSpinGain
}

// WorldPos returns a bead's position with the ring rotation applied.
func (r *Ring) WorldPos(b *Bead) mgl64.Vec3 {
	return mgl64.Rotate3DY(r.Rotation).Mul3x1(b.RingPos)
}
