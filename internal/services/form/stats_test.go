package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStat(t *testing.T) {
	st, ok := ParseStat("3:1-1-0")
	require.True(t, ok)
	assert.Equal(t, ContextStat{Runs: 3, Wins: 1, Seconds: 1}, st)

	// Short forms still parse; missing positions default to zero.
	st, ok = ParseStat("5:2")
	require.True(t, ok)
	assert.Equal(t, ContextStat{Runs: 5, Wins: 2}, st)

	for _, bad := range []string{"", "3", ":1-1-0", "x:1-1-0", "3:a-b-c"} {
		_, ok := ParseStat(bad)
		assert.False(t, ok, "%q should not parse", bad)
	}
}

func TestFormatStat(t *testing.T) {
	assert.Equal(t, "1W/3R(33%)", FormatStat("3:1-1-0"))
	assert.Equal(t, "4W/8R(50%)", FormatStat("8:4-0-1"))
	assert.Empty(t, FormatStat("0:0-0-0"), "zero runs renders empty")
	assert.Empty(t, FormatStat("garbage"))
}

func TestClassFromStat(t *testing.T) {
	assert.Equal(t, "Class 3", ClassFromStat("3:0-1-1"))
	assert.Equal(t, "BM84:0-1-1", ClassFromStat("BM84:0-1-1"), "non-numeric prefix passes through")
	assert.Empty(t, ClassFromStat(""))
}
