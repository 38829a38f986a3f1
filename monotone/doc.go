// Package monotone decides whether integer sequences are "safe": strictly
// monotonic with every step inside a bounded magnitude range, optionally
// tolerating the removal of a single offending element.
//
// What:
//
//   - Strict: every consecutive delta shares one gradient (all increasing or
//     all decreasing) and every |delta| lies in the closed StepRange.
//   - Tolerant: the sequence becomes Strict-safe after deleting at most one
//     element. Decided in one forward pass with constant extra state.
//   - Validate: option-driven front door with input validation.
//
// Why:
//
//	The naive tolerant check re-runs Strict once per deletion candidate,
//	O(n) per candidate and O(n²) overall. The tolerant scanner folds a small
//	state machine (start → valid → faulted → valid) over the delta stream
//	instead, keeping one pending fault and a one-shot retry budget.
//
// Usage:
//
//	import "github.com/katalvlaran/stepwise/monotone"
//
//	r := monotone.DefaultStepRange() // [1, 3]
//	monotone.Strict([]int{7, 6, 4, 2, 1}, r)   // true
//	monotone.Tolerant([]int{1, 3, 2, 4, 5}, r) // true, drop the 3
//
//	ok, err := monotone.Validate(seq,
//		monotone.WithMode(monotone.ModeTolerant),
//		monotone.WithStepRange(1, 3),
//	)
//
// Complexity:
//
//   - Strict:   O(n) time, O(1) memory.
//   - Tolerant: O(n) time, O(1) memory (two lanes of constant state).
//
// Errors:
//
//   - ErrEmptySequence: Validate called with no elements.
//   - ErrInvalidStepRange: Min < 1 or Max < Min.
//   - ErrUnknownMode: ParseMode got an unrecognised name.
//
// An unsafe sequence is a false verdict, never an error.
package monotone
