package form

import (
	"fmt"
	"strconv"
	"strings"

	"FormPull/internal/domain/models"
)

// DistanceStep labels the distance change versus the horse's last start.
// Steps of 200m or more are called out with a direction; smaller non-zero
// changes read "Similar (+10m)". Same distance or a missing side yields "".
func DistanceStep(today int, last *int) string {
	if today <= 0 || last == nil || *last <= 0 {
		return ""
	}
	diff := today - *last
	switch {
	case diff >= 200:
		return fmt.Sprintf("Step UP %dm", diff)
	case diff <= -200:
		return fmt.Sprintf("Step DOWN %dm", -diff)
	case diff != 0:
		return fmt.Sprintf("Similar (%+dm)", diff)
	}
	return ""
}

// BarrierFlag reports the horse's own record from today's barrier. Fewer
// than three runs from that barrier is too small a sample to flag at all.
// A 40%+ strike rate is an advantage, zero wins a concern, anything
// between a neutral report.
func BarrierFlag(barrier string, rec *models.WinRuns) string {
	if rec == nil || rec.Runs < 3 {
		return ""
	}
	pct := float64(rec.Wins) / float64(rec.Runs) * 100
	label := fmt.Sprintf("%dW/%dR (%.0f%%)", rec.Wins, rec.Runs, pct)
	switch {
	case pct >= 40:
		return fmt.Sprintf("BARRIER ADVANTAGE — %s from barrier %s", label, barrier)
	case rec.Wins == 0:
		return fmt.Sprintf("BARRIER CONCERN — 0W/%dR from barrier %s", rec.Runs, barrier)
	}
	return fmt.Sprintf("Barrier %s: %s", barrier, label)
}

// WeightChange compares today's carried weight against the previous run.
// Both values parse as decimal kilograms with an optional "kg" suffix.
// Changes under 400g are not significant and yield "".
func WeightChange(current, previous string) string {
	curr, ok := parseKg(current)
	if !ok {
		return ""
	}
	prev, ok := parseKg(previous)
	if !ok {
		return ""
	}
	diff := curr - prev
	if diff < 0.4 && diff > -0.4 {
		return ""
	}
	if diff < 0 {
		return fmt.Sprintf("Lighter %.1fkg", -diff)
	}
	return fmt.Sprintf("Heavier %.1fkg", diff)
}

func parseKg(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "kg", ""))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Freshness labels days since the last run: under two weeks is FRESH,
// over sixty days a fitness-risk return.
func Freshness(daysSince int) string {
	switch {
	case daysSince < 14:
		return "FRESH"
	case daysSince > 60:
		return fmt.Sprintf("RETURNING (%dd)", daysSince)
	}
	return fmt.Sprintf("%dd", daysSince)
}
