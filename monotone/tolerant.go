package monotone

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// scanState is the accumulator folded over the delta stream by a tolerant
// lane. Exactly three variants exist; step must handle each of them.
//
//sumtype:decl
type scanState interface {
	sealedScanState()
}

// startState: no delta examined yet.
type startState struct{}

// validState: everything so far is consistent; last is the most recently
// accepted delta and serves as the gradient baseline.
type validState[T constraints.Signed] struct {
	last T
}

// faultedState: fault is the out-of-policy delta just consumed. prior is
// the accepted delta before it, absent when the very first delta faulted.
type faultedState[T constraints.Signed] struct {
	fault    T
	prior    T
	hasPrior bool
}

func (startState) sealedScanState() {}
func (validState[T]) sealedScanState() {}
func (faultedState[T]) sealedScanState() {}

// lane runs the tolerant state machine under one fixed gradient.
// spare is the retry budget: 1 until the first fault, then 0 for good.
type lane[T constraints.Signed] struct {
	gradient T
	rng      StepRange
	state    scanState
	spare    int
	failed   bool
}

func newLane[T constraints.Signed](gradient T, r StepRange) lane[T] {
	return lane[T]{
		gradient: gradient,
		rng:      r,
		state:    startState{},
		spare:    1,
	}
}

// accepts reports whether delta is a legal step on this lane.
func (l *lane[T]) accepts(delta T) bool {
	return SameGradient(l.gradient, delta) && WithinRange(delta, l.rng)
}

// step advances the lane by one delta. A failed lane consumes nothing more.
func (l *lane[T]) step(delta T) {
	switch st := l.state.(type) {
	case startState:
		if l.accepts(delta) {
			l.state = validState[T]{last: delta}
			return
		}
		// The first delta itself is the tolerated fault.
		l.spare = 0
		l.state = faultedState[T]{fault: delta}

	case validState[T]:
		if SameGradient(st.last, delta) && WithinRange(delta, l.rng) {
			l.state = validState[T]{last: delta}
			return
		}
		if l.spare == 0 {
			l.failed = true
			return
		}
		l.spare = 0
		l.state = faultedState[T]{fault: delta, prior: st.last, hasPrior: true}

	case faultedState[T]:
		switch {
		// Drop the element opening the fault: prior and fault fuse into one
		// step (or vanish when the fault was the first delta), delta stands alone.
		case l.accepts(delta) && (!st.hasPrior || l.accepts(st.prior+st.fault)):
			l.state = validState[T]{last: delta}

		// Drop the element closing the fault: fault and delta fuse.
		case l.accepts(st.fault + delta):
			l.state = validState[T]{last: st.fault + delta}

		default:
			l.failed = true
		}

	default:
		panic(fmt.Sprintf("monotone: unhandled scan state %T", st))
	}
}

// Tolerant reports whether seq becomes Strict-safe after deleting at most
// one element.
//
// Algorithm:
//
//	The repaired sequence is either increasing or decreasing, and which one
//	is not known until a fault is resolved. Two lanes, anchored on +1 and -1,
//	fold the same delta stream in lock-step:
//
//	  start     --d ok-->    valid(d)
//	  start     --d bad-->   faulted(d, -)        budget spent
//	  valid(l)  --d ok-->    valid(d)
//	  valid(l)  --d bad-->   faulted(d, l)        budget spent, or FAIL if already spent
//	  faulted(f, p) --d-->   valid(d)             if d ok and (p+f ok or no p)
//	                         valid(f+d)           else if f+d ok
//	                         FAIL                 otherwise
//
//	A lane ending in any non-failed state passes: a trailing fault is
//	repaired by deleting the last element. The scan stops as soon as both
//	lanes have failed.
//
// Sequences of length <= 2 always pass.
//
// Complexity: O(n) time, O(1) memory. No deletion candidate is materialised.
func Tolerant[T constraints.Signed](seq []T, r StepRange) bool {
	if len(seq) <= 2 {
		return true
	}

	lanes := [2]lane[T]{newLane[T](1, r), newLane[T](-1, r)}
	for i := 1; i < len(seq); i++ {
		delta := seq[i] - seq[i-1]
		alive := false
		for j := range lanes {
			if lanes[j].failed {
				continue
			}
			lanes[j].step(delta)
			alive = alive || !lanes[j].failed
		}
		if !alive {
			return false
		}
	}

	return true
}
