package motion

// Config holds the gesture-to-motion mapping parameters.
type Config struct {
	// Gesture thresholds on the normalized hand-openness distance
	PinchThreshold   float64 // Below this the hand is pinched
	ScatterThreshold float64 // Above this the hand is open (scatter)

	// Rotation speed targets
	IdleSpeed float64 // Spin with no hand in view
	FastSpeed float64 // Spin while pinching

	// Smoothing factors (fraction of remaining distance closed per frame)
	IdleSmoothing    float64 // Toward idle and intermediate targets
	ScatterSmoothing float64 // Toward zero while scattered
	PinchSmoothing   float64 // Toward fast speed while pinched

	// Scatter intensity
	ScatterGain float64 // Intensity = hand distance x this gain
}

// DefaultConfig returns the recommended mapping parameters.
func DefaultConfig() Config {
	return Config{
		PinchThreshold:   0.06,
		ScatterThreshold: 0.18,

		IdleSpeed: 0.2,
		FastSpeed: 2.0,

		IdleSmoothing:    0.05,
		ScatterSmoothing: 0.1,
		PinchSmoothing:   0.05,

		ScatterGain: 5.0,
	}
}
