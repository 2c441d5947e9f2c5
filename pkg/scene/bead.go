package scene

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/ameliaong/go-bracelet/pkg/motion"
)

// Bead is one slot on the bracelet: a fixed ring position, a freely
// spinning body and a shell of letters. The letter slice is created once
// and never grows or shrinks.
type Bead struct {
	Index   int
	RingPos mgl64.Vec3 // Fixed position on the ring, pre-rotation
	Body    mgl64.Vec3 // Body rotation euler angles
	Letters []BeadLetter

	lastEmit float64
}

// newBead builds bead i with its shell of letters at rest.
func newBead(i int, cfg Config, rng *rand.Rand) *Bead {
	b := &Bead{
		Index:   i,
		RingPos: ringSlot(i, cfg),
		Letters: make([]BeadLetter, cfg.LettersPerBead),
	}
	alphabet := []rune(cfg.Alphabet)
	for j := range b.Letters {
		rest := shellPoint(j, cfg.LettersPerBead, cfg.BeadRadius)
		b.Letters[j] = BeadLetter{
			Char: alphabet[rng.Intn(len(alphabet))],
			Rest: rest,
			RestRot: mgl64.Vec3{
				rng.Float64() * 6.28,
				rng.Float64() * 6.28,
				0,
			},
			Pos: rest,
		}
		b.Letters[j].Rot = b.Letters[j].RestRot
	}
	return b
}

// update advances the bead one frame: body spin, every shell letter,
// then the emission check. Returns the world-space spawn position of an
// emitted letter, or false when nothing was emitted this frame.
func (b *Bead) update(now float64, st motion.State, cfg Config, rng *rand.Rand, ringRotation float64) (mgl64.Vec3, bool) {
	// The rubbing/panning visual: the body always spins with the ring speed.
	b.Body[0] += st.RotationSpeed * cfg.BodySpinX
	b.Body[1] += st.RotationSpeed * cfg.BodySpinY

	for j := range b.Letters {
		b.Letters[j].update(j, now, st, cfg)
	}

	return b.maybeEmit(now, st, cfg, rng, ringRotation)
}

// maybeEmit implements the rotation-driven emission gate. Faster spin
// shortens the interval; the rate floor keeps it finite near zero speed.
// Idle spin does emit - the slow ambient trickle is intended.
func (b *Bead) maybeEmit(now float64, st motion.State, cfg Config, rng *rand.Rand, ringRotation float64) (mgl64.Vec3, bool) {
	if st.Scattered || st.RotationSpeed <= cfg.EmitMinSpeed {
		return mgl64.Vec3{}, false
	}

	interval := 1.0 / (st.RotationSpeed*cfg.EmitRateGain + cfg.EmitRateFloor)
	if now-b.lastEmit <= interval {
		return mgl64.Vec3{}, false
	}
	b.lastEmit = now

	world := mgl64.Rotate3DY(ringRotation).Mul3x1(b.RingPos)
	world[0] += (rng.Float64()*2 - 1) * cfg.EmitJitter
	world[1] += (rng.Float64()*2 - 1) * cfg.EmitJitter
	return world, true
}

// EmitInterval returns the current seconds-between-emissions for a given
// rotation speed (diagnostics and tests).
func EmitInterval(speed float64, cfg Config) float64 {
	return 1.0 / (speed*cfg.EmitRateGain + cfg.EmitRateFloor)
}
