package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FormPull/internal/domain/models"
)

func baseRunner() *models.Runner {
	return &models.Runner{
		Number:   4,
		Name:     "Zousain",
		Barrier:  "3",
		Jockey:   "J McDonald",
		Trainer:  "C Waller",
		Weight:   "58.5",
		WinFixed: 4.20,
	}
}

func sampleForm() *models.FormFragment {
	days := 21
	dist := 1400
	return &models.FormFragment{
		Career:       "4W/18R",
		Dry:          models.PlaceSplit{3, 2, 1},
		Wet:          models.PlaceSplit{1, 0, 0},
		LastRun:      "2nd (0.3L) Rosehill 1400m (21d ago)",
		DaysSince:    &days,
		LastDistance: &dist,
		CurrentClass: "BM72",
		LastClass:    "BM84",
		BarrierStats: map[string]models.WinRuns{"3": {Wins: 2, Runs: 4}},
	}
}

func sampleRatings() *models.RatingsFragment {
	speed := 4.0
	return &models.RatingsFragment{
		SpeedRating:  &speed,
		TrackStat:    "6:2-1-0",
		DistanceStat: "8:3-1-1",
		WeightToday:  "58.5kg",
		WeightLast:   "57.0kg",
	}
}

func TestReconcileFullEnrichment(t *testing.T) {
	ctx := RaceContext{Track: "Rosehill", Distance: 1600}
	r := Reconcile(baseRunner(), ctx, sampleForm(), sampleRatings(), DefaultBiasTable())

	assert.Equal(t, "4W/18R", r.Career)
	assert.Equal(t, "3-2-1", r.DrySplit)
	assert.Equal(t, "1-0-0", r.WetSplit)
	require.NotNil(t, r.DaysSince)
	assert.Equal(t, 21, *r.DaysSince)
	assert.Equal(t, "Step UP 200m", r.DistanceStep)
	assert.Equal(t, "DROPS IN CLASS (BM84 -> BM72)", r.GradeChange)
	require.NotNil(t, r.BarrierRecord)
	assert.Contains(t, r.BarrierFlag, "BARRIER ADVANTAGE")
	assert.Contains(t, r.DrawNote, "GOOD DRAW (B3)")

	require.NotNil(t, r.SpeedRating)
	assert.Equal(t, 4.0, *r.SpeedRating)
	assert.Equal(t, "Heavier 1.5kg", r.WeightChange)
}

func TestReconcileWithoutEnrichment(t *testing.T) {
	// A runner absent from both enrichment sources is still valid output.
	ctx := RaceContext{Track: "Gundagai", Distance: 1200}
	r := Reconcile(baseRunner(), ctx, nil, nil, DefaultBiasTable())

	assert.Equal(t, "Zousain", r.Name)
	assert.Equal(t, 4.20, r.WinFixed)
	assert.Empty(t, r.Career)
	assert.Nil(t, r.SpeedRating)
	assert.Empty(t, r.DrawNote, "unlisted track has even bias")
}

func TestReconcileDoesNotMutateBase(t *testing.T) {
	base := baseRunner()
	_ = Reconcile(base, RaceContext{Track: "Rosehill", Distance: 1600}, sampleForm(), sampleRatings(), DefaultBiasTable())
	assert.Equal(t, baseRunner(), base)
}

func TestReconcileOrderIndependent(t *testing.T) {
	// Form and ratings touch disjoint fields, so applying them in either
	// order yields the same record.
	ctx := RaceContext{Track: "Rosehill", Distance: 1600}
	bias := DefaultBiasTable()

	ab := Reconcile(Reconcile(baseRunner(), ctx, sampleForm(), nil, bias), ctx, nil, sampleRatings(), bias)
	ba := Reconcile(Reconcile(baseRunner(), ctx, nil, sampleRatings(), bias), ctx, sampleForm(), nil, bias)
	assert.Equal(t, ab, ba)

	// And both equal the single-shot reconciliation.
	once := Reconcile(baseRunner(), ctx, sampleForm(), sampleRatings(), bias)
	assert.Equal(t, once, ab)
}

func TestReconcileFillOnlyIfUnset(t *testing.T) {
	// A field set by an earlier source survives a later fragment.
	ctx := RaceContext{Track: "Rosehill", Distance: 1600}
	bias := DefaultBiasTable()

	first := Reconcile(baseRunner(), ctx, sampleForm(), nil, bias)
	other := sampleForm()
	other.Career = "9W/9R"
	other.CurrentClass = "Group 1"

	again := Reconcile(first, ctx, other, nil, bias)
	assert.Equal(t, "4W/18R", again.Career)
	assert.Equal(t, "BM72", again.CurrentClass)
}

func TestAttachPeople(t *testing.T) {
	idx := models.NewFormIndex()
	idx.Jockeys["J MCDONALD"] = models.WinRuns{Wins: 30, Runs: 150}

	r := baseRunner()
	AttachPeople(r, idx)
	require.NotNil(t, r.JockeyRecord)
	assert.Equal(t, 30, r.JockeyRecord.Wins)
	assert.Nil(t, r.TrainerRecord, "no trainer entry in index")
}
