package usecase

import (
	"context"
	"testing"
	"time"

	"FormPull/internal/domain/models"
	"FormPull/pkg/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingForm struct {
	calls int
	idx   *models.FormIndex
}

func (c *countingForm) Form(context.Context, string) (*models.FormIndex, error) {
	c.calls++
	return c.idx, nil
}

type countingRatings struct {
	calls  int
	lookup map[string]*models.RatingsFragment
}

func (c *countingRatings) Ratings(context.Context, string) (map[string]*models.RatingsFragment, error) {
	c.calls++
	return c.lookup, nil
}

func TestCachedFormProviderHitsCacheOnRepeat(t *testing.T) {
	idx := models.NewFormIndex()
	idx.Horses["ALPHA"] = &models.FormFragment{Career: "2W/9R", Dry: models.PlaceSplit{2, 1, 0}}
	inner := &countingForm{idx: idx}

	mem := cache.NewMemoryCache()
	defer mem.Close()
	p := NewCachedFormProvider(inner, mem, time.Hour, testLogger(t))

	ctx := context.Background()
	first, err := p.Form(ctx, "2026-08-29")
	require.NoError(t, err)
	second, err := p.Form(ctx, "2026-08-29")
	require.NoError(t, err)

	assert.Equal(t, 1, inner.calls, "second call must come from cache")
	require.Contains(t, second.Horses, "ALPHA")
	assert.Equal(t, first.Horses["ALPHA"].Career, second.Horses["ALPHA"].Career)
	assert.Equal(t, first.Horses["ALPHA"].Dry, second.Horses["ALPHA"].Dry)
}

func TestCachedFormProviderSeparatesDates(t *testing.T) {
	inner := &countingForm{idx: models.NewFormIndex()}

	mem := cache.NewMemoryCache()
	defer mem.Close()
	p := NewCachedFormProvider(inner, mem, time.Hour, testLogger(t))

	ctx := context.Background()
	_, err := p.Form(ctx, "2026-08-29")
	require.NoError(t, err)
	_, err = p.Form(ctx, "2026-08-30")
	require.NoError(t, err)

	assert.Equal(t, 2, inner.calls)
}

func TestCachedRatingsProviderRoundTrips(t *testing.T) {
	speed := 98.5
	inner := &countingRatings{lookup: map[string]*models.RatingsFragment{
		"ALPHA": {SpeedRating: &speed, TrackStat: "9:2-1-1", WeightToday: "58.5"},
	}}

	mem := cache.NewMemoryCache()
	defer mem.Close()
	p := NewCachedRatingsProvider(inner, mem, time.Hour, testLogger(t))

	ctx := context.Background()
	_, err := p.Ratings(ctx, "2026-08-29")
	require.NoError(t, err)
	got, err := p.Ratings(ctx, "2026-08-29")
	require.NoError(t, err)

	assert.Equal(t, 1, inner.calls)
	require.Contains(t, got, "ALPHA")
	require.NotNil(t, got["ALPHA"].SpeedRating)
	assert.Equal(t, 98.5, *got["ALPHA"].SpeedRating)
	assert.Equal(t, "9:2-1-1", got["ALPHA"].TrackStat)
}
