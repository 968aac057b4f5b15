package analysis

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidDuration is returned when a duration string cannot be parsed
var ErrInvalidDuration = errors.New("invalid duration")

// DurationPlaceholder is rendered when a time value is not available
const DurationPlaceholder = "—"

// ParseDuration parses a clock-style duration string into seconds.
// Accepted forms, right-to-left significance:
//
//	"SS[.f]"        plain seconds, may be fractional
//	"M:SS[.f]"      minutes and seconds
//	"H:MM:SS[.f]"   hours, minutes and seconds
//
// Malformed or empty input returns ErrInvalidDuration. Callers must check
// the error before using the value; nothing in this package panics on bad
// input.
func ParseDuration(text string) (float64, error) {
	segments := strings.Split(strings.TrimSpace(text), ":")
	if len(segments) == 0 || len(segments) > 3 {
		return 0, ErrInvalidDuration
	}

	// Rightmost segment is seconds and may carry a fraction; the rest are
	// whole minutes/hours.
	last := strings.TrimSpace(segments[len(segments)-1])
	if last == "" {
		return 0, ErrInvalidDuration
	}
	seconds, err := strconv.ParseFloat(last, 64)
	if err != nil || seconds < 0 || math.IsInf(seconds, 0) || math.IsNaN(seconds) {
		return 0, ErrInvalidDuration
	}

	total := seconds
	multiplier := 60.0
	for i := len(segments) - 2; i >= 0; i-- {
		seg := strings.TrimSpace(segments[i])
		value, err := strconv.Atoi(seg)
		if err != nil || value < 0 {
			return 0, ErrInvalidDuration
		}
		total += float64(value) * multiplier
		multiplier *= 60
	}

	return total, nil
}

// FormatDuration renders seconds as "M:SS.t" under one hour and "H:MM:SS.t"
// above, with one decimal place and zero-padded fields. Non-finite input
// renders the placeholder.
func FormatDuration(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return DurationPlaceholder
	}
	if seconds < 0 {
		seconds = 0
	}

	// Round to one decimal up front so the carry propagates into the
	// minute and hour fields (59.97s renders as 1:00.0, not 0:60.0).
	rounded := math.Round(seconds*10) / 10

	hours := int(rounded) / 3600
	rem := rounded - float64(hours)*3600
	mins := int(rem) / 60
	secs := rem - float64(mins)*60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%04.1f", hours, mins, secs)
	}
	return fmt.Sprintf("%d:%04.1f", mins, secs)
}
