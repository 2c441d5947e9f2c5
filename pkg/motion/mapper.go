// Package motion converts the noisy per-frame hand signal into the
// smoothed rotation speed and scatter state that drive every bead.
package motion

import (
	"github.com/ameliaong/go-bracelet/pkg/gesture"
)

// State is the shared motion state read by the beads, the ring and the
// floating-letter pool. It has exactly one writer, the Mapper; everyone
// else gets it by value after the mapper has run for the frame.
type State struct {
	// RotationSpeed is the smoothed bead/ring spin rate. Never negative.
	RotationSpeed float64 `json:"rotation_speed"`

	// Scattered is true while the open-hand gesture holds the letters
	// blown off their shells.
	Scattered bool `json:"scattered"`

	// Intensity scales how far scattered letters push out from their
	// rest positions. Tracks hand distance x ScatterGain while a hand
	// is present, and eases back to zero when it leaves.
	Intensity float64 `json:"intensity"`
}

// Mapper owns the motion state and updates it once per frame from the
// sanitized gesture signal.
type Mapper struct {
	config Config
	state  State
}

// NewMapper creates a mapper starting at the idle spin.
func NewMapper(cfg Config) *Mapper {
	return &Mapper{
		config: cfg,
		state:  State{RotationSpeed: cfg.IdleSpeed},
	}
}

// State returns the motion state after the last Update.
func (m *Mapper) State() State {
	return m.state
}

// Config returns the current mapping parameters.
func (m *Mapper) Config() Config {
	return m.config
}

// SetConfig replaces the mapping parameters (live tuning).
func (m *Mapper) SetConfig(cfg Config) {
	m.config = cfg
}

// Update advances the motion state one frame. Branches are evaluated in
// priority order: absence beats everything, then scatter, then pinch.
func (m *Mapper) Update(sig gesture.Signal) State {
	sig = sig.Sanitize()
	cfg := m.config

	switch {
	case !sig.Present:
		m.state.Scattered = false
		m.state.RotationSpeed = Smooth(m.state.RotationSpeed, cfg.IdleSpeed, cfg.IdleSmoothing)

	case sig.Distance > cfg.ScatterThreshold:
		m.state.Scattered = true
		m.state.RotationSpeed = Smooth(m.state.RotationSpeed, 0, cfg.ScatterSmoothing)

	case sig.Distance < cfg.PinchThreshold:
		m.state.Scattered = false
		m.state.RotationSpeed = Smooth(m.state.RotationSpeed, cfg.FastSpeed, cfg.PinchSmoothing)

	default:
		m.state.Scattered = false
		m.state.RotationSpeed = Smooth(m.state.RotationSpeed, 0, cfg.IdleSmoothing)
	}

	if m.state.RotationSpeed < 0 {
		m.state.RotationSpeed = 0
	}

	if sig.Present {
		m.state.Intensity = sig.Distance * cfg.ScatterGain
	} else {
		m.state.Intensity = Smooth(m.state.Intensity, 0, cfg.ScatterSmoothing)
	}

	return m.state
}
