// Package gesture defines the hand-openness signal that drives the
// bracelet animation, and the sources that produce it.
package gesture

import "math"

// Signal is one frame of hand-tracking input: how open the hand is
// (0 = fully pinched, 1 = fully open) and whether a hand is visible at all.
type Signal struct {
	Distance float64 `json:"distance"`
	Present  bool    `json:"present"`
}

// Absent is the signal used when no tracking input is available.
var Absent = Signal{Distance: 0, Present: false}

// Source produces one Signal per frame. Sample must never block the
// caller; sources that do real capture keep their own loop and hand out
// the latest reading.
type Source interface {
	Sample() Signal
}

// Sanitize clamps a raw signal into the range the animation core can
// digest. NaN or infinite distances are treated as an absent hand -
// a single NaN fed into the smoothing recurrence would poison it forever.
func (s Signal) Sanitize() Signal {
	if math.IsNaN(s.Distance) || math.IsInf(s.Distance, 0) {
		return Absent
	}
	if s.Distance < 0 {
		s.Distance = 0
	}
	if s.Distance > 1 {
		s.Distance = 1
	}
	return s
}
