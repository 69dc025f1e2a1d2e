package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func score(t *testing.T, label string) int {
	t.Helper()
	v, ok := Difficulty(label)
	require.True(t, ok, "label %q should resolve", label)
	return v
}

func TestDifficultyHierarchy(t *testing.T) {
	// Hardest to easiest across every tier.
	order := []string{
		"Group 1", "Group 2", "Group 3",
		"Listed",
		"Class 1", "Class 3", "Class 5",
		"BM 100", "BM 84", "BM 64",
		"Maiden",
	}
	for i := 1; i < len(order); i++ {
		assert.Greater(t, score(t, order[i-1]), score(t, order[i]),
			"%s should outrank %s", order[i-1], order[i])
	}
}

func TestDifficultyLabelVariants(t *testing.T) {
	cases := map[string]int{
		"BM84":         184,
		"BenchMark 84": 184,
		"0 - 58":       158,
		"0-64":         164,
		"CLASS 2":      330,
		"Class 6 Hcp":  290,
		"GRP 2":        510,
		"Gr. 1":        520,
		"Maiden Plate": 1,
		"LISTED RACE":  400,
	}
	for label, want := range cases {
		got, ok := Difficulty(label)
		require.True(t, ok, label)
		assert.Equal(t, want, got, label)
	}
}

func TestDifficultyUnresolvable(t *testing.T) {
	for _, label := range []string{"", "Open Handicap", "Quality"} {
		_, ok := Difficulty(label)
		assert.False(t, ok, "label %q should not resolve", label)
	}
}

func TestGradeChangeDirections(t *testing.T) {
	assert.Equal(t, "DROPS IN CLASS (BM84 -> BM72)", GradeChange("BM72", "BM84"))
	assert.Equal(t, "RISES IN CLASS (BM72 -> BM84)", GradeChange("BM84", "BM72"))
	assert.Equal(t, "SAME CLASS", GradeChange("Class 3", "CLASS 3"))
}

func TestGradeChangeAntiSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"Group 1", "Listed"},
		{"Class 1", "Class 5"},
		{"BM 100", "Maiden"},
		{"Listed", "BM 90"},
	}
	for _, p := range pairs {
		down := GradeChange(p[1], p[0])
		up := GradeChange(p[0], p[1])
		assert.Contains(t, down, "DROPS", "%v", p)
		assert.Contains(t, up, "RISES", "%v", p)
	}
}

func TestGradeChangeConservativeFallback(t *testing.T) {
	// One side does not score: report the change without a direction.
	assert.Equal(t, "CLASS: Open Hcp -> BM72", GradeChange("BM72", "Open Hcp"))

	// Different labels, equal scores: not a rise or drop.
	assert.Equal(t, "SAME CLASS", GradeChange("BM84", "BenchMark 84"))

	// Missing either label: nothing to say.
	assert.Empty(t, GradeChange("", "BM84"))
	assert.Empty(t, GradeChange("BM84", ""))
}
