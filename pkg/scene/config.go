package scene

// Config holds all tunable parameters for the bracelet scene.
type Config struct {
	// Geometry
	BeadCount      int     // Beads on the ring
	BraceletRadius float64 // Ring radius
	BeadRadius     float64 // Letter shell radius around each bead
	LettersPerBead int     // Glyphs per bead shell
	Alphabet       string  // Glyph pool for shells and floating letters

	// Scatter (letters blown off the shell)
	ScatterBase float64 // Base outward displacement
	ScatterAmp  float64 // Breathing amplitude on top of the base
	ScatterFreq float64 // Breathing frequency (rad/s)
	ScatterMove float64 // Position smoothing while scattered
	ReformMove  float64 // Position smoothing while reforming (snappier)
	ReformSpin  float64 // Rotation smoothing back to rest orientation
	TumbleX     float64 // Constant x tumble per frame while scattered
	TumbleY     float64 // Constant y tumble per frame while scattered

	// Bead body spin (the rubbing/panning visual)
	BodySpinX float64 // Body x rotation per frame per unit speed
	BodySpinY float64 // Body y rotation per frame per unit speed

	// Letter emission
	EmitMinSpeed  float64 // No emission below this rotation speed
	EmitRateGain  float64 // Interval = 1/(speed*gain + floor)
	EmitRateFloor float64 // Keeps the interval finite at zero speed
	EmitJitter    float64 // Random x/y offset at the spawn point

	// Floating letter pool
	AmbientBatch   int     // Letters seeded behind the bracelet at start
	OverflowWindow int     // Extra slots before emission evicts old letters
	AmbientSpreadX float64 // Half-extent of the ambient spawn box
	AmbientSpreadY float64
	AmbientNear    float64 // Spawn box z range (behind the bracelet)
	AmbientFar     float64
	DriftSpeed     float64 // Max ambient drift per frame per axis
	RiseMin        float64 // Emitted letter upward velocity range
	RiseMax        float64
	EmitDrift      float64 // Emitted letter lateral drift per frame
	PoolSpinX      float64 // Floating letter x rotation per frame
	PoolSpinY      float64 // Floating letter y rotation per frame
	PoolSpinGain   float64 // Extra y spin per unit rotation speed

	// Ring
	RingSpinGain float64 // Ring rotation per second per unit speed

	// Seed for the scene's random stream. Zero means seed from the clock;
	// tests pass a fixed seed for reproducibility.
	Seed int64
}

// PoolCap returns the floating-letter sliding-window capacity.
func (c Config) PoolCap() int {
	return c.AmbientBatch + c.OverflowWindow
}

// DefaultConfig returns the recommended scene parameters.
func DefaultConfig() Config {
	return Config{
		BeadCount:      8,
		BraceletRadius: 2.2,
		BeadRadius:     0.55,
		LettersPerBead: 18,
		Alphabet:       "ABCDEFGHIJKLMNOPQRSTUVWXYZ",

		ScatterBase: 1.2,
		ScatterAmp:  0.35,
		ScatterFreq: 2.0,
		ScatterMove: 0.1,
		ReformMove:  0.15,
		ReformSpin:  0.1,
		TumbleX:     0.02,
		TumbleY:     0.03,

		BodySpinX: 0.1,
		BodySpinY: 0.05,

		EmitMinSpeed:  0.01,
		EmitRateGain:  10.0,
		EmitRateFloor: 0.1,
		EmitJitter:    0.25,

		AmbientBatch:   40,
		OverflowWindow: 24,
		AmbientSpreadX: 6.0,
		AmbientSpreadY: 4.0,
		AmbientNear:    -2.0,
		AmbientFar:     -8.0,
		DriftSpeed:     0.004,
		RiseMin:        0.008,
		RiseMax:        0.02,
		EmitDrift:      0.005,
		PoolSpinX:      0.01,
		PoolSpinY:      0.013,
		PoolSpinGain:   0.002,

		RingSpinGain: 0.5,
	}
}
