package monotone

import "golang.org/x/exp/constraints"

// Check dispatches seq to Strict or Tolerant according to m.
// Unknown modes are treated as ModeStrict.
func Check[T constraints.Signed](seq []T, m Mode, r StepRange) bool {
	if m == ModeTolerant {
		return Tolerant(seq, r)
	}

	return Strict(seq, r)
}

// Validate applies opts over DefaultOptions and checks seq.
// Returns (verdict, error).
//
// Errors:
//   - ErrEmptySequence    — seq has no elements.
//   - ErrInvalidStepRange — the configured range is unusable.
//
// Example:
//
//	ok, err := Validate([]int{8, 6, 4, 4, 1}, WithMode(ModeTolerant))
//	// ok == true, err == nil
func Validate[T constraints.Signed](seq []T, opts ...Option) (bool, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Range.Validate(); err != nil {
		return false, err
	}
	if len(seq) == 0 {
		return false, ErrEmptySequence
	}

	return Check(seq, o.Mode, o.Range), nil
}
