package form

import (
	"fmt"
	"strconv"
	"strings"
)

// ContextStat is a parsed "{runs}:{wins}-{2nds}-{3rds}" statistic from the
// ratings provider (track, class, distance, barrier, or jockey context).
type ContextStat struct {
	Runs    int
	Wins    int
	Seconds int
	Thirds  int
}

// ParseStat parses the ratings provider's stat format, e.g. "3:1-1-0".
// Any malformation returns (zero, false); the caller treats that as no
// statistic rather than an error.
func ParseStat(s string) (ContextStat, bool) {
	colon := strings.Index(s, ":")
	if colon <= 0 {
		return ContextStat{}, false
	}
	runs, err := strconv.Atoi(strings.TrimSpace(s[:colon]))
	if err != nil {
		return ContextStat{}, false
	}
	parts := strings.Split(s[colon+1:], "-")
	st := ContextStat{Runs: runs}
	for i, dst := range []*int{&st.Wins, &st.Seconds, &st.Thirds} {
		if i >= len(parts) {
			break
		}
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return ContextStat{}, false
		}
		*dst = v
	}
	return st, true
}

// FormatStat renders a stat string for display: "3:1-1-0" -> "1W/3R(33%)".
// Unparseable or zero-run stats render as "".
func FormatStat(s string) string {
	st, ok := ParseStat(s)
	if !ok || st.Runs == 0 {
		return ""
	}
	pct := float64(st.Wins) / float64(st.Runs) * 100
	return fmt.Sprintf("%dW/%dR(%.0f%%)", st.Wins, st.Runs, pct)
}

// ClassFromStat extracts the class-level prefix from the form provider's
// "level:wins-2nds-3rds" class stat, e.g. "3:0-1-1" -> "Class 3". A
// non-numeric prefix passes the raw string through.
func ClassFromStat(raw string) string {
	if raw == "" {
		return ""
	}
	level := strings.TrimSpace(strings.SplitN(raw, ":", 2)[0])
	if _, err := strconv.Atoi(level); err == nil {
		return "Class " + level
	}
	return raw
}
