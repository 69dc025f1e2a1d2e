package batch

import (
	"strings"
	"testing"

	"FormPull/internal/domain/models"

	"github.com/stretchr/testify/assert"
)

func promptRace() *models.Race {
	days := 9
	speed := 3.0
	return &models.Race{
		Track:          "FLEMINGTON",
		Number:         4,
		Name:           "Spring Sprint",
		Distance:       1200,
		TrackCondition: "Soft 6",
		TrackWet:       true,
		Runners: []*models.Runner{
			{
				Number:      2,
				Name:        "Alpha",
				Barrier:     "3",
				Jockey:      "J Smith",
				Trainer:     "T Jones",
				Weight:      "57",
				WinFixed:    3.2,
				PlaceFixed:  1.5,
				Career:      "4W/18R",
				SurfacePref: "WET TRACKER",
				WetSplit:    "3-1-0",
				DaysSince:   &days,
				GradeChange: "DROPS IN CLASS",
				SpeedRating: &speed,
				LastRun:     "2nd (0.3L) CAULFIELD 1100m (9d ago)",
			},
			{
				Number:   7,
				Name:     "Bravo",
				Barrier:  "12",
				WinFixed: 21.0,
			},
		},
	}
}

func TestFormatRaceBlock(t *testing.T) {
	block := FormatRaceBlock(promptRace())

	assert.Contains(t, block, "FLEMINGTON R4 | Spring Sprint 1200m | Soft 6  *** WET TRACK ***")
	assert.Contains(t, block, "2. Alpha (B3) 57kg J:J Smith T:T Jones Win:$3.20 Pl:$1.50")
	assert.Contains(t, block, "*** WET TRACKER — ADVANTAGES TODAY ***")
	assert.Contains(t, block, "Wet:3-1-0")
	assert.Contains(t, block, "FRESH")
	assert.Contains(t, block, "*** DROPS IN CLASS ***")
	assert.Contains(t, block, "SpeedRating:3")
	assert.Contains(t, block, "[RUNS] 2nd (0.3L) CAULFIELD 1100m (9d ago)")

	assert.Contains(t, block, "7. Bravo (B12)")
	assert.NotContains(t, block, "Bravo (B12)\n    [FORM]", "bare runner carries no form line")
}

func TestFormatRaceBlockTruncatesLastRun(t *testing.T) {
	race := promptRace()
	race.Runners[0].LastRun = strings.Repeat("x", 300)

	block := FormatRaceBlock(race)
	assert.Contains(t, block, "[RUNS] "+strings.Repeat("x", lastRunMaxLen))
	assert.NotContains(t, block, strings.Repeat("x", lastRunMaxLen+1))
}

func TestBuildPromptBatchInstructions(t *testing.T) {
	races := []*models.Race{promptRace()}

	first := BuildPrompt(races, "2026-08-29", true)
	assert.Contains(t, first, "Horse Racing — 2026-08-29")
	assert.Contains(t, first, "Mark exactly 5 of these races")
	assert.Contains(t, first, `Return ONLY valid JSON`)

	later := BuildPrompt(races, "2026-08-29", false)
	assert.Contains(t, later, "only for outstanding value")
	assert.NotContains(t, later, "Mark exactly 5")
}
