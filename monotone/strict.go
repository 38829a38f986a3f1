package monotone

import "golang.org/x/exp/constraints"

// Strict reports whether seq is monotonic with every step inside r.
//
// Algorithm:
//  1. Walk consecutive pairs, delta = seq[i] - seq[i-1].
//  2. Reject on the first delta outside r or whose gradient differs from the
//     previous delta. The first delta is compared against a zero baseline,
//     which matches either gradient.
//
// Sequences with fewer than two elements have no deltas and pass.
//
// Complexity: O(n) time, O(1) memory.
func Strict[T constraints.Signed](seq []T, r StepRange) bool {
	var last T
	for i := 1; i < len(seq); i++ {
		delta := seq[i] - seq[i-1]
		if !WithinRange(delta, r) || !SameGradient(last, delta) {
			return false
		}
		last = delta
	}

	return true
}
