package punt

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"FormPull/internal/domain/models"
)

func TestToSplit(t *testing.T) {
	assert.Equal(t, models.PlaceSplit{4, 2, 1}, toSplit(json.RawMessage(`[4,2,1]`)))

	// Some feeds truncate trailing zero counts.
	assert.Equal(t, models.PlaceSplit{3, 1, 0}, toSplit(json.RawMessage(`[3,1]`)))
	assert.Equal(t, models.PlaceSplit{2, 0, 0}, toSplit(json.RawMessage(`[2]`)))

	// Extra elements beyond win/second/third are ignored.
	assert.Equal(t, models.PlaceSplit{5, 3, 2}, toSplit(json.RawMessage(`[5,3,2,9]`)))

	assert.Equal(t, models.PlaceSplit{}, toSplit(json.RawMessage(`[]`)))
	assert.Equal(t, models.PlaceSplit{}, toSplit(json.RawMessage(`null`)))
	assert.Equal(t, models.PlaceSplit{}, toSplit(json.RawMessage(`"4-2-1"`)))
	assert.Equal(t, models.PlaceSplit{}, toSplit(nil))
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "Bearer guest", bearerToken(""))
	assert.Equal(t, "Bearer abc123", bearerToken("abc123"))
}
