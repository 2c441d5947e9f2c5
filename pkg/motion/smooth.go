package motion

// Smooth moves current one step toward target, closing the given
// fraction of the remaining distance. It is the single interpolation
// primitive for the whole animation core: every per-frame convergence
// (rotation speed, letter positions, letter rotations) goes through it
// so the feel stays consistent and the recurrence is testable in one
// place.
func Smooth(current, target, factor float64) float64 {
	return current + (target-current)*factor
}
