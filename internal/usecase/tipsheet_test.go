package usecase

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"FormPull/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSheet() *models.TipSheet {
	speed := 101.0
	return &models.TipSheet{
		Date:        "2026-08-29",
		GeneratedAt: time.Now(),
		Meetings: []*models.Meeting{
			{
				Track:          "RANDWICK",
				Location:       "NSW",
				TrackCondition: "Soft 5",
				TrackWet:       true,
				Races: []*models.Race{
					{
						Track:          "RANDWICK",
						TrackCondition: "Soft 5",
						Number:         1,
						Name:           "Test Handicap",
						Distance:       1400,
						Runners: []*models.Runner{
							{Number: 1, Name: "Alpha", Barrier: "1", WinFixed: 2.5, Career: "4W/18R", SpeedRating: &speed},
							{Number: 2, Name: "Bravo", Barrier: "4", WinTote: 6.2},
						},
					},
					{
						Track:    "RANDWICK",
						Number:   2,
						Name:     "Maiden Plate",
						Distance: 1200,
					},
				},
			},
		},
		Picks: map[string]*models.Pick{
			"RANDWICK_R1": {
				Track: "RANDWICK", RaceNumber: 1, Pick: "Alpha",
				Barrier: "1", Odds: "$2.50", Rating: "★ TIP", Analysis: "Clear top pick.",
			},
		},
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteTipSheetCSV(t *testing.T) {
	dir := t.TempDir()

	picksPath, err := WriteTipSheetCSV(sampleSheet(), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "tips_2026-08-29.csv"), picksPath)

	picks := readCSV(t, picksPath)
	require.Len(t, picks, 3, "header plus one row per race")

	withPick := picks[1]
	assert.Equal(t, "RANDWICK", withPick[0])
	assert.Equal(t, "1", withPick[1])
	assert.Equal(t, "Alpha", withPick[5])
	assert.Equal(t, "$2.50", withPick[7])

	withoutPick := picks[2]
	assert.Equal(t, "2", withoutPick[1])
	assert.Empty(t, withoutPick[5], "race with no pick keeps empty pick columns")

	runners := readCSV(t, filepath.Join(dir, "runners_2026-08-29.csv"))
	require.Len(t, runners, 3, "header plus two runners")
	assert.Equal(t, "Alpha", runners[1][3])
	assert.Equal(t, "2.50", runners[1][8])
	assert.Equal(t, "101", runners[1][18])
	assert.Empty(t, runners[2][8], "unpriced fixed market stays blank")
	assert.Equal(t, "6.20", runners[2][10])
}

func TestTipStore(t *testing.T) {
	store := NewTipStore()
	assert.Nil(t, store.Latest())

	sheet := sampleSheet()
	store.Set(sheet)
	require.NotNil(t, store.Latest())
	assert.Equal(t, "2026-08-29", store.Latest().Date)
}
