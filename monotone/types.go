package monotone

import (
	"errors"
	"fmt"
	"strings"
)

// Default bounds of the allowed step range.
const (
	DefaultMinStep = 1
	DefaultMaxStep = 3
)

var (
	// ErrEmptySequence is returned by Validate when the sequence has no elements.
	ErrEmptySequence = errors.New("monotone: sequence must be non-empty")

	// ErrInvalidStepRange indicates Min < 1 or Max < Min.
	ErrInvalidStepRange = errors.New("monotone: step range must satisfy 1 <= min <= max")

	// ErrUnknownMode indicates ParseMode received an unsupported mode name.
	ErrUnknownMode = errors.New("monotone: unknown validation mode")
)

// StepRange is the closed interval [Min, Max] of accepted delta magnitudes.
// Min must be at least 1 so equal neighbours are never accepted.
type StepRange struct {
	Min int
	Max int
}

// DefaultStepRange returns [DefaultMinStep, DefaultMaxStep].
func DefaultStepRange() StepRange {
	return StepRange{Min: DefaultMinStep, Max: DefaultMaxStep}
}

// Validate reports ErrInvalidStepRange unless 1 <= Min <= Max.
func (r StepRange) Validate() error {
	if r.Min < 1 || r.Max < r.Min {
		return fmt.Errorf("%w: got [%d, %d]", ErrInvalidStepRange, r.Min, r.Max)
	}

	return nil
}

// String renders the range as "[min, max]".
func (r StepRange) String() string {
	return fmt.Sprintf("[%d, %d]", r.Min, r.Max)
}

// Mode selects how many faults a sequence may contain.
//
//   - ModeStrict   — zero faults.
//   - ModeTolerant — one fault, repaired by deleting a single element.
type Mode int

const (
	// ModeStrict requires the sequence to be safe as given.
	ModeStrict Mode = iota

	// ModeTolerant allows one element to be deleted to make it safe.
	ModeTolerant
)

// String returns the lower-case mode name.
func (m Mode) String() string {
	switch m {
	case ModeStrict:
		return "strict"
	case ModeTolerant:
		return "tolerant"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode maps "strict" or "tolerant" (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return ModeStrict, nil
	case "tolerant":
		return ModeTolerant, nil
	default:
		return ModeStrict, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Option configures Validate.
type Option func(*Options)

// Options holds the parameters of a Validate call.
type Options struct {
	// Range bounds the accepted |delta|; defaults to DefaultStepRange().
	Range StepRange

	// Mode selects strict or tolerant validation; defaults to ModeStrict.
	Mode Mode
}

// DefaultOptions returns Options with:
//   - Range = [1, 3]
//   - Mode  = ModeStrict
func DefaultOptions() Options {
	return Options{
		Range: DefaultStepRange(),
		Mode:  ModeStrict,
	}
}

// WithStepRange returns an Option that sets the accepted magnitude range.
// The range is checked by Validate, not here.
func WithStepRange(lo, hi int) Option {
	return func(o *Options) {
		o.Range = StepRange{Min: lo, Max: hi}
	}
}

// WithMode returns an Option that selects the validation mode.
func WithMode(m Mode) Option {
	return func(o *Options) {
		o.Mode = m
	}
}
