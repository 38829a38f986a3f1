package monotone_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepwise/monotone"
)

// ints turns "7 6 4 2 1" into []int{7, 6, 4, 2, 1}.
func ints(t testing.TB, s string) []int {
	t.Helper()
	fields := strings.Fields(s)
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		require.NoError(t, err)
		out[i] = v
	}

	return out
}

// scenarios are the reference reports with their verdicts under [1,3].
var scenarios = []struct {
	seq      string
	strict   bool
	tolerant bool
}{
	{"7 6 4 2 1", true, true},
	{"1 2 7 8 9", false, false},
	{"9 7 6 2 1", false, false},
	{"1 3 2 4 5", false, true},
	{"8 6 4 4 1", false, true},
	{"1 3 6 7 9", true, true},
	{"1 2 3 4 5 5", false, true},
}

//----------------------------------------------------------------------------//
// Strict
//----------------------------------------------------------------------------//

// TestStrict_Scenarios checks the reference reports in strict mode.
func TestStrict_Scenarios(t *testing.T) {
	r := monotone.DefaultStepRange()
	for _, tc := range scenarios {
		t.Run(tc.seq, func(t *testing.T) {
			assert.Equal(t, tc.strict, monotone.Strict(ints(t, tc.seq), r))
		})
	}
}

// TestStrict_Trivial verifies that sequences without deltas pass.
func TestStrict_Trivial(t *testing.T) {
	r := monotone.DefaultStepRange()
	assert.True(t, monotone.Strict([]int{}, r))
	assert.True(t, monotone.Strict([]int{42}, r))
}

// TestStrict_Violations covers each way a single delta can break a sequence.
func TestStrict_Violations(t *testing.T) {
	r := monotone.DefaultStepRange()
	cases := map[string]string{
		"ZeroDelta":      "1 2 2 3",
		"SignChange":     "1 2 3 2",
		"TooLargeUp":     "1 5 6",
		"TooLargeDown":   "9 8 4",
		"LeadingZero":    "3 3 4 5",
		"TrailingChange": "10 12 14 16 15",
		"ReversedStart":  "5 4 6 8",
	}
	for name, seq := range cases {
		t.Run(name, func(t *testing.T) {
			assert.False(t, monotone.Strict(ints(t, seq), r), seq)
		})
	}
}

// TestStrict_CustomRange widens the range so larger steps become legal.
func TestStrict_CustomRange(t *testing.T) {
	seq := []int64{10, 16, 17, 20, 23}
	assert.False(t, monotone.Strict(seq, monotone.DefaultStepRange()))
	assert.True(t, monotone.Strict(seq, monotone.StepRange{Min: 1, Max: 6}))
	assert.False(t, monotone.Strict(seq, monotone.StepRange{Min: 2, Max: 6}), "the 16→17 step is below 2")
}

//----------------------------------------------------------------------------//
// Tolerant
//----------------------------------------------------------------------------//

// TestTolerant_Scenarios checks the reference reports in tolerant mode.
func TestTolerant_Scenarios(t *testing.T) {
	r := monotone.DefaultStepRange()
	for _, tc := range scenarios {
		t.Run(tc.seq, func(t *testing.T) {
			assert.Equal(t, tc.tolerant, monotone.Tolerant(ints(t, tc.seq), r))
		})
	}
}

// TestTolerant_Regressions pins down reports that exercise every transition:
// faults at the first and last delta, merges, and second faults.
func TestTolerant_Regressions(t *testing.T) {
	r := monotone.DefaultStepRange()
	cases := []struct {
		seq  string
		want bool
	}{
		{"1 4 3 2 1", true},
		{"1 6 7 8 9", true},
		{"1 1 2 3 4 5", true},
		{"1 2 3 4 5 5", true},
		{"5 1 2 3 4 5", true},
		{"7 10 8 10 11", true},
		{"29 28 27 26 25 22 20", true},
		{"48 46 47 49 51 54 56", true},
		{"29 31 34 40 42 45 47 48", false},
		{"34 37 38 40 42 46 43", true},
		{"85 89 86 87 89", true},
		{"10 12 12 9 7 4 2", false},
		{"59 61 59 61 63", false},
		{"72 75 73 73 73", false},
		{"95 95 93 95 98", false},
		{"61 66 70 71 71", false},
		{"30 24 22 15 12", false},
		{"68 67 69 66 65", true},
		{"43 40 44 46 47 48 50", true},
		{"51 46 46 44 41", false},
		{"23 19 15 14 11 10", false},
		{"56 57 58 58 64", false},
		{"38 37 34 35 28", false},
		{"10 16 17 20 23", true},
		{"70 70 73 79 80", false},
		{"36 29 26 29 30", false},
		{"69 70 69 66 63 60 58", true},
		{"14 12 9 6 4 3 5", true},
		{"26 33 30 32 34 36 39", false},
		{"43 40 41 44 45 46 48 51", true},
		// a single fault followed by nothing but the opposite gradient
		{"0 4 4", false},
		{"0 0 0", false},
		{"0 4 0", false},
		{"1 1 -4", false},
		{"0 -2 -3 -5 -8 -6 -4", false},
	}
	for _, tc := range cases {
		t.Run(tc.seq, func(t *testing.T) {
			assert.Equal(t, tc.want, monotone.Tolerant(ints(t, tc.seq), r))
		})
	}
}

// TestTolerant_ShortSequences verifies that length <= 2 always passes.
func TestTolerant_ShortSequences(t *testing.T) {
	r := monotone.DefaultStepRange()
	for _, seq := range [][]int{{}, {5}, {5, 5}, {1, 100}, {100, 1}, {-7, 7}} {
		assert.True(t, monotone.Tolerant(seq, r), "%v", seq)
	}
}

// TestTolerant_Idempotent validates the same inputs twice.
func TestTolerant_Idempotent(t *testing.T) {
	r := monotone.DefaultStepRange()
	for _, tc := range scenarios {
		seq := ints(t, tc.seq)
		first := monotone.Tolerant(seq, r)
		assert.Equal(t, first, monotone.Tolerant(seq, r), tc.seq)
		assert.Equal(t, ints(t, tc.seq), seq, "input must not be mutated")
	}
}

// TestTolerant_StrictImpliesTolerant checks the mode ordering on the scenarios.
func TestTolerant_StrictImpliesTolerant(t *testing.T) {
	r := monotone.DefaultStepRange()
	for _, tc := range scenarios {
		seq := ints(t, tc.seq)
		if monotone.Strict(seq, r) {
			assert.True(t, monotone.Tolerant(seq, r), tc.seq)
		}
	}
}

//----------------------------------------------------------------------------//
// Validate / Check
//----------------------------------------------------------------------------//

// TestValidate_Errors covers empty input and bad ranges.
func TestValidate_Errors(t *testing.T) {
	_, err := monotone.Validate([]int{})
	assert.ErrorIs(t, err, monotone.ErrEmptySequence)

	_, err = monotone.Validate([]int{1, 2}, monotone.WithStepRange(0, 3))
	assert.ErrorIs(t, err, monotone.ErrInvalidStepRange)
}

// TestValidate_Modes dispatches on the configured mode.
func TestValidate_Modes(t *testing.T) {
	seq := []int{8, 6, 4, 4, 1}

	ok, err := monotone.Validate(seq)
	require.NoError(t, err)
	assert.False(t, ok, "default mode is strict")

	ok, err = monotone.Validate(seq, monotone.WithMode(monotone.ModeTolerant))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = monotone.Validate([]int32{1, 5, 9}, monotone.WithStepRange(4, 4))
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, monotone.Strict(seq, monotone.DefaultStepRange()),
		monotone.Check(seq, monotone.Mode(99), monotone.DefaultStepRange()), "unknown modes fall back to strict")
}
