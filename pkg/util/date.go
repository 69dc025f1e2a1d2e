package util

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire format for race dates across all providers.
const DateLayout = "2006-01-02"

// ParseTime tries RFC3339, RFC3339Nano, and a bare date. Returns (t, true)
// if any worked; provider timestamps arrive in all three shapes.
func ParseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// ParseTimeDefault parses time or returns default if empty/invalid.
func ParseTimeDefault(s string, def time.Time) time.Time {
	if t, ok := ParseTime(s); ok {
		return t
	}
	return def
}

// DaysBetween returns whole days from earlier to later, truncating any
// partial day.
func DaysBetween(earlier, later time.Time) int {
	return int(later.Sub(earlier).Hours() / 24)
}

// ParseMeters parses a race distance like "1400m" or "1400" to meters.
func ParseMeters(s string) (int, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "m"))
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}
