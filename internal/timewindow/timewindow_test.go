package timewindow

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestResolveCutoff_AllOptions(t *testing.T) {
	expected := map[FilterOption]time.Duration{
		Last24Hours: 24 * time.Hour,
		Last7Days:   7 * 24 * time.Hour,
		Last30Days:  30 * 24 * time.Hour,
		Last6Months: 180 * 24 * time.Hour,
	}

	for opt, d := range expected {
		cutoff, err := ResolveCutoff(opt, fixedNow)
		require.NoError(t, err, opt)
		assert.Equal(t, fixedNow.Add(-d), cutoff, opt)
	}
}

func TestResolveCutoff_Monotonic(t *testing.T) {
	opts := Options()
	prev := fixedNow
	for _, opt := range opts {
		cutoff, err := ResolveCutoff(opt, fixedNow)
		require.NoError(t, err)
		assert.False(t, cutoff.After(prev), "%s should not be later than the previous cutoff", opt)
		prev = cutoff
	}
}

func TestResolveCutoff_Invalid(t *testing.T) {
	_, err := ResolveCutoff(FilterOption("1 year"), fixedNow)
	assert.ErrorIs(t, err, ErrInvalidFilterKind)
}

func TestParseFilterOption(t *testing.T) {
	opt, err := ParseFilterOption(" 7 Days ")
	require.NoError(t, err)
	assert.Equal(t, Last7Days, opt)

	_, err = ParseFilterOption("fortnight")
	assert.ErrorIs(t, err, ErrInvalidFilterKind)
}

func TestFilterOption_Next(t *testing.T) {
	assert.Equal(t, Last7Days, Last24Hours.Next())
	assert.Equal(t, Last24Hours, Last6Months.Next())
	assert.Equal(t, Last24Hours, FilterOption("bogus").Next())
}

func TestFormatElapsed(t *testing.T) {
	cases := map[float64]string{
		0:      "<1min",
		59:     "<1min",
		90:     "1min",
		3600:   "1h",
		3700:   "1h 1min",
		86400:  "1d",
		90000:  "1d 1h",
		187800: "2d 4h 10min",
		86460:  "1d 1min",
	}

	for in, want := range cases {
		assert.Equal(t, want, FormatElapsed(in), "FormatElapsed(%v)", in)
	}
}

func TestFormatElapsed_Unknown(t *testing.T) {
	assert.Equal(t, "N/A", FormatElapsed(math.NaN()))
	assert.Equal(t, "N/A", FormatElapsed(math.Inf(1)))
}

func TestFormatElapsed_NeverListsZeroUnits(t *testing.T) {
	for secs := 0; secs < 3*86400; secs += 1234 {
		out := FormatElapsed(float64(secs))
		for _, part := range strings.Fields(out) {
			assert.False(t, strings.HasPrefix(part, "0"), "%d rendered as %q", secs, out)
		}
	}
}

func TestSecondsSince(t *testing.T) {
	assert.Equal(t, 3600.0, SecondsSince(fixedNow.Add(-time.Hour), fixedNow))
}
