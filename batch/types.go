package batch

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/stepwise/monotone"
)

// ErrInvalidWorkers indicates a non-positive worker bound.
var ErrInvalidWorkers = errors.New("batch: workers must be at least 1")

// Report aggregates the verdicts of one batch.
type Report struct {
	Total    int // reports examined
	Strict   int // reports safe as given
	Tolerant int // reports safe after removing at most one level
}

// Count returns the number of reports passing mode m.
func (r Report) Count(m monotone.Mode) int {
	if m == monotone.ModeTolerant {
		return r.Tolerant
	}

	return r.Strict
}

// Lines renders the labelled result lines, strict count first.
func (r Report) Lines() []string {
	return []string{
		fmt.Sprintf("Part 1: %d", r.Strict),
		fmt.Sprintf("Part 2: %d", r.Tolerant),
	}
}

// Option configures Evaluate and Count.
type Option func(*Options)

// Options holds batch parameters.
type Options struct {
	// Range bounds accepted delta magnitudes.
	Range monotone.StepRange

	// Workers bounds concurrent shards. Must be >= 1.
	Workers int

	// Logger, if non-nil, receives a debug entry per unsafe report.
	Logger logrus.FieldLogger
}

// DefaultOptions returns Options with the default step range,
// Workers = runtime.GOMAXPROCS(0) and no logger.
func DefaultOptions() Options {
	return Options{
		Range:   monotone.DefaultStepRange(),
		Workers: runtime.GOMAXPROCS(0),
	}
}

// WithStepRange sets the accepted delta magnitudes.
func WithStepRange(r monotone.StepRange) Option {
	return func(o *Options) {
		o.Range = r
	}
}

// WithWorkers bounds the number of concurrent shards.
// Zero keeps the default; negative values are rejected by Evaluate.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n != 0 {
			o.Workers = n
		}
	}
}

// WithLogger installs a logger for per-report debug entries.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

func (o Options) validate() error {
	if o.Workers < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, o.Workers)
	}

	return o.Range.Validate()
}
