package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/ameliaong/go-bracelet/pkg/motion"
)

// letterPhase is the per-letter animation state. Scattered letters
// tumble freely and chase a displaced target; reforming letters converge
// back to their shell slot. The two branches have different convergence
// rates on purpose - reform is snappier than scatter.
type letterPhase int

const (
	phaseReforming letterPhase = iota
	phaseScattered
)

// BeadLetter is one glyph on a bead's shell. Rest and RestRot are fixed
// at creation; only Pos and Rot mutate per frame.
type BeadLetter struct {
	Char    rune
	Rest    mgl64.Vec3 // Slot on the shell, bead-local
	RestRot mgl64.Vec3
	Pos     mgl64.Vec3
	Rot     mgl64.Vec3

	phase letterPhase
}

// update advances the letter one frame. idx gives each letter its own
// breathing phase so a scattered shell does not pulse in lockstep.
func (l *BeadLetter) update(idx int, now float64, st motion.State, cfg Config) {
	if st.Scattered {
		l.phase = phaseScattered
	} else {
		l.phase = phaseReforming
	}

	switch l.phase {
	case phaseScattered:
		breathe := cfg.ScatterBase + cfg.ScatterAmp*math.Sin(now*cfg.ScatterFreq+float64(idx))
		dir := l.Rest.Normalize()
		target := l.Rest.Add(dir.Mul(breathe * st.Intensity))
		l.Pos = smoothVec(l.Pos, target, cfg.ScatterMove)

		// Free tumble, not smoothed: scattered letters spin forever.
		l.Rot[0] += cfg.TumbleX
		l.Rot[1] += cfg.TumbleY

	case phaseReforming:
		l.Pos = smoothVec(l.Pos, l.Rest, cfg.ReformMove)
		l.Rot[0] = motion.Smooth(l.Rot[0], l.RestRot[0], cfg.ReformSpin)
		l.Rot[1] = motion.Smooth(l.Rot[1], l.RestRot[1], cfg.ReformSpin)
	}
}

// smoothVec applies the shared smoothing primitive per component.
func smoothVec(v, target mgl64.Vec3, factor float64) mgl64.Vec3 {
	return mgl64.Vec3{
		motion.Smooth(v[0], target[0], factor),
		motion.Smooth(v[1], target[1], factor),
		motion.Smooth(v[2], target[2], factor),
	}
}

// shellPoint returns slot i of n points spread over a sphere of the
// given radius, using the golden-spiral distribution so letters cover
// the bead evenly at any count.
func shellPoint(i, n int, radius float64) mgl64.Vec3 {
	if n == 1 {
		return mgl64.Vec3{0, radius, 0}
	}
	golden := math.Pi * (3.0 - math.Sqrt(5.0))
	y := 1.0 - 2.0*float64(i)/float64(n-1)
	r := math.Sqrt(1.0 - y*y)
	theta := golden * float64(i)
	return mgl64.Vec3{
		radius * r * math.Cos(theta),
		radius * y,
		radius * r * math.Sin(theta),
	}
}
