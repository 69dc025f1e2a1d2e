package form

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"FormPull/internal/domain/models"
)

func intPtr(v int) *int { return &v }

func TestDistanceStep(t *testing.T) {
	assert.Equal(t, "Step DOWN 400m", DistanceStep(1200, intPtr(1600)))
	assert.Equal(t, "Step UP 400m", DistanceStep(1600, intPtr(1200)))
	assert.Equal(t, "Similar (+10m)", DistanceStep(1210, intPtr(1200)))
	assert.Equal(t, "Similar (-50m)", DistanceStep(1150, intPtr(1200)))
	assert.Equal(t, "Step UP 200m", DistanceStep(1400, intPtr(1200)))

	assert.Empty(t, DistanceStep(1200, intPtr(1200)), "same distance")
	assert.Empty(t, DistanceStep(1200, nil), "no last distance")
	assert.Empty(t, DistanceStep(0, intPtr(1200)), "no race distance")
}

func TestWeightChange(t *testing.T) {
	assert.Empty(t, WeightChange("58.0kg", "58.3kg"), "under the 400g threshold")
	assert.Equal(t, "Heavier 1.0kg", WeightChange("58.0kg", "57.0kg"))
	assert.Equal(t, "Lighter 2.5kg", WeightChange("55.5", "58"))
	assert.Equal(t, "Heavier 0.5kg", WeightChange("58.5kg", "58.0kg"))

	// 58.4-58.0 is 0.3999... in float64, just under the threshold.
	assert.Empty(t, WeightChange("58.4kg", "58.0kg"))

	assert.Empty(t, WeightChange("", "58.0kg"))
	assert.Empty(t, WeightChange("58.0kg", "n/a"))
}

func TestBarrierFlag(t *testing.T) {
	assert.Equal(t, "BARRIER ADVANTAGE — 4W/8R (50%) from barrier 3",
		BarrierFlag("3", &models.WinRuns{Wins: 4, Runs: 8}))
	assert.Equal(t, "BARRIER CONCERN — 0W/6R from barrier 12",
		BarrierFlag("12", &models.WinRuns{Wins: 0, Runs: 6}))
	assert.Equal(t, "Barrier 5: 1W/5R (20%)",
		BarrierFlag("5", &models.WinRuns{Wins: 1, Runs: 5}))

	// Under three runs from the draw there is no sample worth flagging.
	assert.Empty(t, BarrierFlag("1", &models.WinRuns{Wins: 2, Runs: 2}))
	assert.Empty(t, BarrierFlag("1", nil))
}

func TestFreshness(t *testing.T) {
	assert.Equal(t, "FRESH", Freshness(7))
	assert.Equal(t, "FRESH", Freshness(13))
	assert.Equal(t, "21d", Freshness(21))
	assert.Equal(t, "60d", Freshness(60))
	assert.Equal(t, "RETURNING (90d)", Freshness(90))
}
