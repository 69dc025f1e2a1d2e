package batch

import (
	"fmt"
	"strings"

	"FormPull/internal/domain/models"
	"FormPull/internal/services/form"
)

const lastRunMaxLen = 110 // keep the prompt compact

// FormatRaceBlock renders one race as the compact text block the analyzer
// receives: a header line, then per runner the market line plus [FORM] and
// [RUNS] detail lines built from whichever signals are present.
func FormatRaceBlock(race *models.Race) string {
	var b strings.Builder

	wetFlag := ""
	if race.TrackWet {
		wetFlag = "  *** WET TRACK ***"
	}
	fmt.Fprintf(&b, "--- %s R%d | %s %dm | %s%s ---\n",
		race.Track, race.Number, race.Name, race.Distance, race.TrackCondition, wetFlag)

	for _, r := range race.Runners {
		weight := ""
		if r.Weight != "" {
			weight = " " + r.Weight + "kg"
		}
		fmt.Fprintf(&b, "  %d. %s (B%s)%s J:%s T:%s Win:$%.2f Pl:$%.2f",
			r.Number, r.Name, r.Barrier, weight, r.Jockey, r.Trainer, r.WinFixed, r.PlaceFixed)

		if parts := formLine(r, race.TrackWet); len(parts) > 0 {
			fmt.Fprintf(&b, "\n    [FORM] %s", strings.Join(parts, " | "))
		}
		if r.LastRun != "" {
			lr := r.LastRun
			if len(lr) > lastRunMaxLen {
				lr = lr[:lastRunMaxLen]
			}
			fmt.Fprintf(&b, "\n    [RUNS] %s", lr)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func formLine(r *models.Runner, trackWet bool) []string {
	var parts []string

	if r.Career != "" {
		parts = append(parts, r.Career)
	}

	// Surface preference, emphasized when today's going makes it matter.
	switch {
	case r.SurfacePref == form.WetTracker && trackWet:
		parts = append(parts, "*** WET TRACKER — ADVANTAGES TODAY ***")
	case r.SurfacePref == form.DryPreferred && trackWet:
		parts = append(parts, "!! DRY PREFERRED — DISADVANTAGED TODAY")
	case r.SurfacePref != "":
		parts = append(parts, r.SurfacePref)
	}

	if r.DrySplit != "" && r.DrySplit != "0-0-0" {
		parts = append(parts, "Dry:"+r.DrySplit)
	}
	if r.WetSplit != "" && r.WetSplit != "0-0-0" {
		parts = append(parts, "Wet:"+r.WetSplit)
	}
	if r.DaysSince != nil {
		parts = append(parts, form.Freshness(*r.DaysSince))
	}
	if r.DistanceStep != "" {
		parts = append(parts, r.DistanceStep)
	}
	if wr := r.JockeyRecord; wr != nil && wr.Runs > 0 {
		pct := float64(wr.Wins) / float64(wr.Runs) * 100
		parts = append(parts, fmt.Sprintf("J%%:%dW/%dR(%.0f%%)", wr.Wins, wr.Runs, pct))
	}
	if wr := r.TrainerRecord; wr != nil && wr.Runs > 0 {
		pct := float64(wr.Wins) / float64(wr.Runs) * 100
		parts = append(parts, fmt.Sprintf("T%%:%dW/%dR(%.0f%%)", wr.Wins, wr.Runs, pct))
	}
	if r.BarrierFlag != "" {
		parts = append(parts, r.BarrierFlag)
	}
	if r.DrawNote != "" {
		parts = append(parts, r.DrawNote)
	}

	// Grade levelling, emphasized in both directions.
	switch {
	case strings.Contains(r.GradeChange, "DROPS"):
		parts = append(parts, "*** "+r.GradeChange+" ***")
	case strings.Contains(r.GradeChange, "RISES"):
		parts = append(parts, "!! "+r.GradeChange)
	case r.GradeChange != "":
		parts = append(parts, r.GradeChange)
	}

	if r.SpeedRating != nil {
		parts = append(parts, fmt.Sprintf("SpeedRating:%g", *r.SpeedRating))
	}
	if s := form.FormatStat(r.TrackStat); s != "" {
		parts = append(parts, "Track:"+s)
	}
	if s := form.FormatStat(r.DistanceStat); s != "" {
		parts = append(parts, "Dist:"+s)
	}
	if s := form.FormatStat(r.JockeyStat); s != "" {
		parts = append(parts, "JockeyAtVenue:"+s)
	}
	if s := form.FormatStat(r.ClassStat); s != "" {
		parts = append(parts, "AtClass:"+s)
	}
	if r.WeightChange != "" {
		parts = append(parts, r.WeightChange)
	}

	return parts
}

// BuildPrompt assembles the full analyzer instruction for one batch. The
// first batch asks for exactly five top-rated races; later batches reserve
// the top rating for standout value.
func BuildPrompt(races []*models.Race, date string, firstBatch bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Horse Racing — %s\n\n", date)
	for _, race := range races {
		b.WriteString(FormatRaceBlock(race))
	}

	bestBetNote := "Use ★★★ BEST BET only for outstanding value; otherwise ★★ or ★."
	if firstBatch {
		bestBetNote = "Mark exactly 5 of these races as ★★★ BEST BET (your strongest picks today)."
	}

	fmt.Fprintf(&b, `
%s
Use ★★ STRONG BET for confident picks and ★ TIP for speculative picks.

You are an expert Australian horse racing analyst. Pick a winner for EVERY race above.

Weight these factors in order of importance:
1. TRACK CONDITION — on *** WET TRACK ***, heavily favour *** WET TRACKER *** horses. Penalise !! DRY PREFERRED horses.
2. GRADE LEVELLING — *** DROPS IN CLASS *** is a strong positive signal even with ordinary recent form. !! RISES IN CLASS is a negative signal.
3. BARRIER — BARRIER ADVANTAGE = horse wins often from today's draw; BARRIER CONCERN = poor record from this draw. GOOD DRAW at inside-biased tracks is very valuable. WIDE DRAW at tight tracks is a serious disadvantage.
4. JOCKEY FORM — J%% shows jockey win rate. Prefer jockeys >15%% win rate; avoid <10%%.
5. TRAINER FORM — T%% shows trainer win rate. High-strike trainers (>20%%) are strong signals.
6. DISTANCE — Step UP suits stayers; Step DOWN suits sprinters. Large steps (400m+) are risky. Dist:NW/NR(%%) shows record at today's exact distance.
7. FRESHNESS — FRESH (<14d) = peak fitness. RETURNING (>60d) = fitness risk unless trainer has good fresh record.
8. CAREER RECORD — Low W/R ratio = unexposed and potentially better than odds suggest.
9. DRY/WET SPLITS — Dry:W-P-S and Wet:W-P-S show surface-specific record.
10. SPEED RATING — SpeedRating:N (lower = faster/better at this track/distance). Prefer SpeedRating <=5.
11. TRACK/CLASS RECORD — Track:NW/NR(%%) = record at this track. AtClass:NW/NR(%%) = record at this class level. JockeyAtVenue:NW/NR(%%) = jockey's record at this venue+distance.
12. WEIGHT — Lighter Xkg = positive (easier to carry); Heavier Xkg = negative.

Return ONLY valid JSON — no markdown fences, no other text:
{"picks": [{"track": "TRACK NAME", "race_number": 1, "pick": "HORSE NAME", "barrier": "N", "odds": "$X.XX", "rating": "★★★ BEST BET", "analysis": "2-3 sentences citing specific form data."}]}

Rules: pick a winner for EVERY race listed. No skipping.`, bestBetNote)

	return b.String()
}
