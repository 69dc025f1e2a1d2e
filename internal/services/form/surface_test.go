package form

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"FormPull/internal/domain/models"
)

func TestSurfacePreference(t *testing.T) {
	tests := []struct {
		name string
		dry  models.PlaceSplit
		wet  models.PlaceSplit
		want string
	}{
		{"clear dry record no wet form", models.PlaceSplit{3, 0, 0}, models.PlaceSplit{}, DryPreferred},
		{"proven wet winner", models.PlaceSplit{}, models.PlaceSplit{2, 0, 0}, WetTracker},
		{"no form either way", models.PlaceSplit{}, models.PlaceSplit{}, ""},
		{"one wet placing is too small a sample", models.PlaceSplit{}, models.PlaceSplit{1, 0, 0}, ""},
		{"wet wins but dry strike rate higher", models.PlaceSplit{4, 0, 0}, models.PlaceSplit{1, 1, 1}, DryPreferred},
		{"wet rate matches dry rate", models.PlaceSplit{2, 2, 0}, models.PlaceSplit{1, 1, 0}, WetTracker},
		{"placed dry but never won", models.PlaceSplit{0, 2, 2}, models.PlaceSplit{}, ""},
		{"wet wins below quarter strike rate", models.PlaceSplit{}, models.PlaceSplit{1, 2, 2}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SurfacePreference(tt.dry, tt.wet))
		})
	}
}

func TestSurfacePreferenceWetCheckedFirst(t *testing.T) {
	// A horse with strong records on both surfaces resolves wet-tracker
	// because that branch is evaluated first.
	dry := models.PlaceSplit{2, 1, 0} // 2/3 dry
	wet := models.PlaceSplit{2, 0, 0} // 2/2 wet, >= dry rate
	assert.Equal(t, WetTracker, SurfacePreference(dry, wet))
}
