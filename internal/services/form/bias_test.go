package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrawNote(t *testing.T) {
	bias := DefaultBiasTable()

	assert.Contains(t, bias.DrawNote("Moonee Valley", "3"), "GOOD DRAW (B3)")
	assert.Contains(t, bias.DrawNote("MOONEE VALLEY", "9"), "WIDE DRAW (B9)")

	// Even-bias tracks never emit a note, listed or not.
	assert.Empty(t, bias.DrawNote("Flemington", "1"))
	assert.Empty(t, bias.DrawNote("Gundagai", "1"))

	// Unparseable barrier produces nothing rather than an error.
	assert.Empty(t, bias.DrawNote("Caulfield", ""))
	assert.Empty(t, bias.DrawNote("Caulfield", "1A"))
}

func TestBiasLookupDefault(t *testing.T) {
	bias := BiasTable{}
	b := bias.Lookup("Anywhere")
	assert.Equal(t, BiasEven, b.Type)
	assert.Equal(t, 8, b.GoodBarrierMax)
}
