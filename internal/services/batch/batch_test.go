package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FormPull/internal/domain/models"
)

func racesNamed(n int) []*models.Race {
	out := make([]*models.Race, n)
	for i := range out {
		out[i] = &models.Race{Track: "Rosehill", Number: i + 1}
	}
	return out
}

func TestPartition(t *testing.T) {
	batches := Partition(racesNamed(45), 20)
	require.Len(t, batches, 3)
	assert.Len(t, batches[0], 20)
	assert.Len(t, batches[1], 20)
	assert.Len(t, batches[2], 5)

	// Order is preserved across the boundary.
	assert.Equal(t, 20, batches[0][19].Number)
	assert.Equal(t, 21, batches[1][0].Number)

	assert.Nil(t, Partition(nil, 20))
	assert.Len(t, Partition(racesNamed(3), 0), 1, "non-positive size keeps one batch")
}

func TestPickKey(t *testing.T) {
	assert.Equal(t, "ROSEHILL_R7", PickKey("ROSEHILL", 7))
}

func TestMergePicksUniqueKeys(t *testing.T) {
	into := make(map[string]*models.Pick)
	MergePicks(into, []models.Pick{
		{Track: "ROSEHILL", RaceNumber: 1, Pick: "Alpha"},
		{Track: "ROSEHILL", RaceNumber: 2, Pick: "Bravo"},
	})
	MergePicks(into, []models.Pick{
		{Track: "CAULFIELD", RaceNumber: 1, Pick: "Charlie"},
	})

	require.Len(t, into, 3)
	assert.Equal(t, "Alpha", into["ROSEHILL_R1"].Pick)
	assert.Equal(t, "Charlie", into["CAULFIELD_R1"].Pick)
}

func TestMergePicksDuplicateKeyLastWins(t *testing.T) {
	into := make(map[string]*models.Pick)
	MergePicks(into, []models.Pick{{Track: "ROSEHILL", RaceNumber: 1, Pick: "Alpha"}})
	MergePicks(into, []models.Pick{{Track: "ROSEHILL", RaceNumber: 1, Pick: "Bravo"}})

	require.Len(t, into, 1)
	assert.Equal(t, "Bravo", into["ROSEHILL_R1"].Pick)
}
