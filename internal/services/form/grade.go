package form

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Grade labels are free text and differ between sources ("BM84",
// "BenchMark 84", "0 - 58"). Difficulty maps them onto one signed scale so
// any two resolvable labels can be compared. Higher score = harder race.
//
// Scale (hardest to easiest):
//
//	Group 1=520  Group 2=510  Group 3=500
//	Listed=400
//	Class 1=340 ... Class 5=300 (Class 6=290, continuing down)
//	BM n = 100+n (BM64=164, BM100=200)
//	Maiden=1
//
// Class numbers are inverted in Australian racing: Class 1 is the hardest.
// Benchmark numbers are normal: higher BM = harder.
var (
	benchmarkRe  = regexp.MustCompile(`(?:BENCHMARK|BM)\s*(\d+)`)
	ratingBandRe = regexp.MustCompile(`^0\s*[-\x{2013}]\s*(\d+)$`)
	classRe      = regexp.MustCompile(`\bCLASS\s*(\d+)\b`)
	groupRe      = regexp.MustCompile(`\bGR(?:OUP|P?)\.?\s*(\d)\b`)
)

// Difficulty converts a grade label to its difficulty score. The second
// return is false when the label is empty or matches no known pattern,
// which marks the grade incomparable rather than easy or hard.
func Difficulty(label string) (int, bool) {
	s := strings.ToUpper(strings.TrimSpace(label))
	if s == "" {
		return 0, false
	}

	if strings.Contains(s, "MAIDEN") {
		return 1, true
	}
	if m := benchmarkRe.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		return 100 + n, true
	}
	// "0 - 58" rating bands behave like a benchmark of that rating.
	if m := ratingBandRe.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		return 100 + n, true
	}
	if m := classRe.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		return 300 + (5-n)*10, true
	}
	if strings.Contains(s, "LISTED") {
		return 400, true
	}
	if m := groupRe.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		return 500 + (3-n)*10, true
	}
	return 0, false
}

// GradeChange compares today's grade against the last-run grade.
// Returns "DROPS IN CLASS (...)", "RISES IN CLASS (...)", "SAME CLASS",
// an undirected "CLASS: last -> curr" when either label does not score,
// or "" when either label is missing. Direction is only ever claimed when
// both scores resolve; partial information never produces a directional
// call.
func GradeChange(current, last string) string {
	if current == "" || last == "" {
		return ""
	}
	curr := strings.TrimSpace(current)
	prev := strings.TrimSpace(last)
	if strings.EqualFold(curr, prev) {
		return "SAME CLASS"
	}

	cScore, cOK := Difficulty(curr)
	lScore, lOK := Difficulty(prev)
	if cOK && lOK {
		switch {
		case cScore < lScore:
			return fmt.Sprintf("DROPS IN CLASS (%s -> %s)", prev, curr)
		case cScore > lScore:
			return fmt.Sprintf("RISES IN CLASS (%s -> %s)", prev, curr)
		default:
			return "SAME CLASS"
		}
	}
	return fmt.Sprintf("CLASS: %s -> %s", prev, curr)
}
