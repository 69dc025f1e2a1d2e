package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FormPull/internal/domain/models"
)

func testMeeting() models.MeetingInfo {
	return models.MeetingInfo{
		Name:           "Rosehill",
		VenueCode:      "RHL",
		RaceType:       "R",
		Location:       "NSW",
		TrackCondition: "Soft 5",
	}
}

func TestIsWetTrack(t *testing.T) {
	assert.True(t, IsWetTrack("Soft 5"))
	assert.True(t, IsWetTrack("HEAVY 8"))
	assert.True(t, IsWetTrack("Upgraded from Heavy"))
	assert.False(t, IsWetTrack("Good 4"))
	assert.False(t, IsWetTrack(""))
}

func TestAssembleRaceExcludesScratched(t *testing.T) {
	quotes := []models.RunnerQuote{
		{Number: 1, Name: "Alpha", WinFixed: 3.5},
		{Number: 2, Name: "Bravo", FixedStatus: "LateScratched"},
		{Number: 3, Name: "Charlie", ToteStatus: "Scratched", WinFixed: 2.0},
		{Number: 4, Name: "Delta", WinTote: 6.0},
	}

	a := NewAssembler(DefaultBiasTable())
	race := a.AssembleRace(testMeeting(), models.RaceInfo{Number: 1, Distance: 1200}, quotes, nil, nil)

	require.Len(t, race.Runners, 2)
	for _, r := range race.Runners {
		assert.NotContains(t, []string{"Bravo", "Charlie"}, r.Name)
	}
}

func TestAssembleRaceSortsByBestPrice(t *testing.T) {
	quotes := []models.RunnerQuote{
		{Number: 1, Name: "NoMarketA"},
		{Number: 2, Name: "ToteOnly", WinTote: 2.8},
		{Number: 3, Name: "Favourite", WinFixed: 1.9, WinTote: 2.1},
		{Number: 4, Name: "NoMarketB"},
		{Number: 5, Name: "Outsider", WinFixed: 21.0},
	}

	a := NewAssembler(nil)
	race := a.AssembleRace(testMeeting(), models.RaceInfo{Number: 3, Distance: 1400}, quotes, nil, nil)

	var names []string
	for _, r := range race.Runners {
		names = append(names, r.Name)
	}
	// Fixed preferred, tote fallback, unpriced last in original order.
	assert.Equal(t, []string{"Favourite", "ToteOnly", "Outsider", "NoMarketA", "NoMarketB"}, names)
}

func TestAssembleRaceMarksWetTrack(t *testing.T) {
	a := NewAssembler(nil)

	race := a.AssembleRace(testMeeting(), models.RaceInfo{Number: 1}, nil, nil, nil)
	assert.True(t, race.TrackWet)

	dry := testMeeting()
	dry.TrackCondition = "Good 4"
	race = a.AssembleRace(dry, models.RaceInfo{Number: 1}, nil, nil, nil)
	assert.False(t, race.TrackWet)
}

func TestAssembleRaceEnriches(t *testing.T) {
	idx := models.NewFormIndex()
	idx.Horses["ALPHA"] = &models.FormFragment{Career: "2W/5R"}
	ratings := map[string]*models.RatingsFragment{
		"ALPHA": {WeightToday: "58.0kg", WeightLast: "59.0kg"},
	}

	quotes := []models.RunnerQuote{
		{Number: 1, Name: "  alpha ", WinFixed: 4.0}, // raw name needs normalizing
		{Number: 2, Name: "Bravo", WinFixed: 6.0},
	}

	a := NewAssembler(nil)
	race := a.AssembleRace(testMeeting(), models.RaceInfo{Number: 2, Distance: 1100}, quotes, idx, ratings)

	require.Len(t, race.Runners, 2)
	assert.Equal(t, "2W/5R", race.Runners[0].Career)
	assert.Equal(t, "Lighter 1.0kg", race.Runners[0].WeightChange)
	assert.Empty(t, race.Runners[1].Career, "unmatched runner carries no enrichment")
}
