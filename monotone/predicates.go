package monotone

import "golang.org/x/exp/constraints"

// WithinRange reports whether |delta| lies in the closed range r.
// A zero delta is never within range because r.Min >= 1.
//
// Complexity: O(1).
func WithinRange[T constraints.Signed](delta T, r StepRange) bool {
	if delta < 0 {
		delta = -delta
	}
	mag := int64(delta)

	return mag >= int64(r.Min) && mag <= int64(r.Max)
}

// SameGradient reports whether a and b point the same way.
// Zero matches either sign; it only appears as the bootstrap baseline of a
// scan, never as an accepted delta.
//
// Complexity: O(1).
func SameGradient[T constraints.Signed](a, b T) bool {
	if a == 0 || b == 0 {
		return true
	}

	return (a < 0) == (b < 0)
}
