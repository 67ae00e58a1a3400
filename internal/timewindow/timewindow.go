// Package timewindow converts recency filter labels to cutoff instants and
// formats elapsed durations for display.
package timewindow

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// ErrInvalidFilterKind indicates a filter label outside the supported set.
var ErrInvalidFilterKind = errors.New("invalid time filter")

// FilterOption is a recency window label shown to users.
type FilterOption string

const (
	Last24Hours FilterOption = "24 hours"
	Last7Days   FilterOption = "7 days"
	Last30Days  FilterOption = "30 days"
	Last6Months FilterOption = "6 months"
)

const (
	secondsInMinute = 60
	secondsInHour   = 3600
	secondsInDay    = 86400

	day = 24 * time.Hour
)

// Recent is the fixed "recently updated" threshold. It does not depend on
// the filter chosen for issue listing.
const Recent = 30 * day

var durations = map[FilterOption]time.Duration{
	Last24Hours: day,
	Last7Days:   7 * day,
	Last30Days:  30 * day,
	Last6Months: 180 * day,
}

// Options returns the supported filters ordered from shortest to longest.
func Options() []FilterOption {
	return []FilterOption{Last24Hours, Last7Days, Last30Days, Last6Months}
}

// ParseFilterOption maps a label such as "7 days" to its FilterOption.
// Matching ignores case and surrounding whitespace.
func ParseFilterOption(label string) (FilterOption, error) {
	normalized := FilterOption(strings.ToLower(strings.TrimSpace(label)))
	if _, ok := durations[normalized]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilterKind, label)
	}
	return normalized, nil
}

// Duration returns the window length for opt.
func (opt FilterOption) Duration() (time.Duration, error) {
	d, ok := durations[opt]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFilterKind, string(opt))
	}
	return d, nil
}

// String returns the label.
func (opt FilterOption) String() string {
	return string(opt)
}

// Next returns the following option, wrapping from the longest to the shortest.
// Unknown options return the shortest.
func (opt FilterOption) Next() FilterOption {
	opts := Options()
	for i, o := range opts {
		if o == opt {
			return opts[(i+1)%len(opts)]
		}
	}
	return opts[0]
}

// ResolveCutoff returns now minus the window length for opt.
func ResolveCutoff(opt FilterOption, now time.Time) (time.Time, error) {
	d, err := opt.Duration()
	if err != nil {
		return time.Time{}, err
	}
	return now.Add(-d), nil
}

// SecondsSince returns the seconds elapsed between t and now.
func SecondsSince(t, now time.Time) float64 {
	return now.Sub(t).Seconds()
}

// FormatElapsed renders a non-negative number of seconds as "2d 3h 10min".
// Zero-valued units are omitted and remaining seconds are dropped.
// Durations under a minute render as "<1min"; NaN and infinities as "N/A".
func FormatElapsed(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return "N/A"
	}

	secs := int64(seconds)
	days := secs / secondsInDay
	hours := secs % secondsInDay / secondsInHour
	minutes := secs % secondsInHour / secondsInMinute

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dmin", minutes))
	}
	if len(parts) == 0 {
		return "<1min"
	}
	return strings.Join(parts, " ")
}
