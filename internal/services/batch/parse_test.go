package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goodResponse = `{"picks": [
    {"track": "ROSEHILL", "race_number": 1, "pick": "Alpha", "barrier": "3", "odds": "$4.20", "rating": "★★★ BEST BET", "analysis": "Drops in class."},
    {"track": "ROSEHILL", "race_number": 2, "pick": "Bravo", "barrier": "1", "odds": "$2.80", "rating": "★ TIP", "analysis": "Good draw."}
  ]}`

func TestParsePicksPlainJSON(t *testing.T) {
	picks := ParsePicks(goodResponse)
	require.Len(t, picks, 2)
	assert.Equal(t, "Alpha", picks[0].Pick)
	assert.Equal(t, 2, picks[1].RaceNumber)
}

func TestParsePicksFenced(t *testing.T) {
	fenced := "```json\n" + goodResponse + "\n```"
	picks := ParsePicks(fenced)
	assert.Len(t, picks, 2)

	bareFence := "```\n" + goodResponse + "\n```"
	picks = ParsePicks(bareFence)
	assert.Len(t, picks, 2)
}

func TestParsePicksTruncated(t *testing.T) {
	// Response cut off mid element: recover the complete entries.
	truncated := `{"picks": [
    {"track": "ROSEHILL", "race_number": 1, "pick": "Alpha", "barrier": "3", "odds": "$4.20", "rating": "★ TIP", "analysis": "ok"},
    {"track": "ROSEHILL", "race_number": 2, "pick": "Brav`
	picks := ParsePicks(truncated)
	require.Len(t, picks, 1)
	assert.Equal(t, "Alpha", picks[0].Pick)
}

func TestParsePicksUnrecoverable(t *testing.T) {
	assert.Empty(t, ParsePicks("I could not analyze these races."))
	assert.Empty(t, ParsePicks(""))
	assert.Empty(t, ParsePicks(`{"picks": [`))
	assert.Empty(t, ParsePicks(`{"no_picks_here": true}`))
}
