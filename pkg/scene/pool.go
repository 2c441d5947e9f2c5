package scene

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/ameliaong/go-bracelet/pkg/motion"
)

// FloatingLetter is one background letter drifting through the starfield.
// Velocity is fixed at creation; only position and rotation mutate.
type FloatingLetter struct {
	ID    string
	Char  rune
	Pos   mgl64.Vec3
	Vel   mgl64.Vec3
	Rot   mgl64.Vec3
	Scale float64
}

// Pool is the bounded set of floating letters. It is a fixed-capacity
// ring buffer: pushing into a full pool evicts the oldest letter in O(1).
// The cap is a sliding window, not age-based expiry, so heavy emission
// traffic will eventually wash out the ambient batch. That is fine -
// the viewer only ever sees a steady density of letters.
type Pool struct {
	cfg Config
	rng *rand.Rand

	letters []FloatingLetter
	head    int // Index of the oldest letter
	count   int
}

// newPool creates an empty pool with capacity cfg.PoolCap().
func newPool(cfg Config, rng *rand.Rand) *Pool {
	return &Pool{
		cfg:     cfg,
		rng:     rng,
		letters: make([]FloatingLetter, cfg.PoolCap()),
	}
}

// Len returns the number of letters currently alive.
func (p *Pool) Len() int {
	return p.count
}

// Cap returns the sliding-window capacity.
func (p *Pool) Cap() int {
	return len(p.letters)
}

// AddAmbient seeds n letters at random positions in the box behind the
// bracelet, with small random drift. Called once at scene start.
func (p *Pool) AddAmbient(n int) {
	cfg := p.cfg
	for i := 0; i < n; i++ {
		depth := cfg.AmbientNear + p.rng.Float64()*(cfg.AmbientFar-cfg.AmbientNear)
		p.push(FloatingLetter{
			ID:   uuid.NewString(),
			Char: p.randChar(),
			Pos: mgl64.Vec3{
				(p.rng.Float64()*2 - 1) * cfg.AmbientSpreadX,
				(p.rng.Float64()*2 - 1) * cfg.AmbientSpreadY,
				depth,
			},
			Vel: mgl64.Vec3{
				(p.rng.Float64()*2 - 1) * cfg.DriftSpeed,
				(p.rng.Float64()*2 - 1) * cfg.DriftSpeed,
				(p.rng.Float64()*2 - 1) * cfg.DriftSpeed,
			},
			Rot: mgl64.Vec3{
				p.rng.Float64() * 6.28,
				p.rng.Float64() * 6.28,
				0,
			},
			Scale: 0.4 + p.rng.Float64()*0.6,
		})
	}
}

// AddEmitted spawns one letter at a bead's world position with an
// upward-biased velocity and full scale.
func (p *Pool) AddEmitted(origin mgl64.Vec3) {
	cfg := p.cfg
	p.push(FloatingLetter{
		ID:   uuid.NewString(),
		Char: p.randChar(),
		Pos:  origin,
		Vel: mgl64.Vec3{
			(p.rng.Float64()*2 - 1) * cfg.EmitDrift,
			cfg.RiseMin + p.rng.Float64()*(cfg.RiseMax-cfg.RiseMin),
			(p.rng.Float64()*2 - 1) * cfg.EmitDrift,
		},
		Scale: 1.0,
	})
}

// push appends a letter, evicting the oldest when the window is full.
func (p *Pool) push(l FloatingLetter) {
	if p.count < len(p.letters) {
		p.letters[(p.head+p.count)%len(p.letters)] = l
		p.count++
		return
	}
	p.letters[p.head] = l
	p.head = (p.head + 1) % len(p.letters)
}

// update drifts every letter one frame. One rotation axis is biased by
// the bead rotation speed so the background visibly sympathizes with
// the bracelet.
func (p *Pool) update(st motion.State) {
	cfg := p.cfg
	for i := 0; i < p.count; i++ {
		l := &p.letters[(p.head+i)%len(p.letters)]
		l.Pos = l.Pos.Add(l.Vel)
		l.Rot[0] += cfg.PoolSpinX
		l.Rot[1] += cfg.PoolSpinY + st.RotationSpeed*cfg.PoolSpinGain
	}
}

// Each visits every letter in insertion order, oldest first.
func (p *Pool) Each(fn func(*FloatingLetter)) {
	for i := 0; i < p.count; i++ {
		fn(&p.letters[(p.head+i)%len(p.letters)])
	}
}

func (p *Pool) randChar() rune {
	alphabet := []rune(p.cfg.Alphabet)
	return alphabet[p.rng.Intn(len(alphabet))]
}
