package form

import (
	"fmt"
	"strconv"
)

// BiasType classifies a track's draw bias.
type BiasType string

const (
	BiasInside BiasType = "inside" // inside barriers have a clear statistical edge
	BiasEven   BiasType = "even"   // no strong draw bias
)

// TrackBias describes one track's known barrier tendency.
type TrackBias struct {
	Type           BiasType
	GoodBarrierMax int
	Description    string
}

// BiasTable maps normalized track names to their draw bias. It is static
// configuration built once at startup and passed into the assembler, never
// mutated afterwards.
type BiasTable map[string]TrackBias

var defaultBias = TrackBias{Type: BiasEven, GoodBarrierMax: 8}

// Lookup returns the bias for a track name (already normalized or not),
// falling back to an even-bias default for unlisted tracks.
func (t BiasTable) Lookup(track string) TrackBias {
	if b, ok := t[NormalizeName(track)]; ok {
		return b
	}
	return defaultBias
}

// DrawNote flags a runner's draw at tracks with a known inside bias:
// barriers up to the track's good-barrier cutoff are a good draw, wider
// ones a wide draw. Even-bias tracks never produce a note, and neither
// does a barrier that fails to parse as a number.
func (t BiasTable) DrawNote(track, barrier string) string {
	bias := t.Lookup(track)
	if bias.Type != BiasInside {
		return ""
	}
	b, err := strconv.Atoi(barrier)
	if err != nil {
		return ""
	}
	if b <= bias.GoodBarrierMax {
		return fmt.Sprintf("GOOD DRAW (B%d) — %s", b, bias.Description)
	}
	return fmt.Sprintf("WIDE DRAW (B%d) — %s", b, bias.Description)
}

// DefaultBiasTable returns the known bias tendencies for the major
// Australian tracks.
func DefaultBiasTable() BiasTable {
	return BiasTable{
		"MOONEE VALLEY": {BiasInside, 4, "Very tight 1-turn circuit — inside draws critical"},
		"DOOMBEN":       {BiasInside, 4, "Tight 1-turn track — inside draws dominant"},
		"EAGLE FARM":    {BiasInside, 5, "Tight track — inside draws favoured"},
		"CAULFIELD":     {BiasInside, 5, "Sharp turns — inside/middle preferred"},
		"MORPHETTVILLE": {BiasInside, 5, "Right-hand track — inside draws preferred"},
		"ROSEHILL":      {BiasInside, 6, "Right-hand track — moderate inside bias"},
		"RANDWICK":      {BiasEven, 7, "Wide track — moderate inside advantage"},
		"ASCOT":         {BiasEven, 7, "Long track — moderate inside advantage"},
		"FLEMINGTON":    {BiasEven, 8, "Wide straight track — low draw bias"},
	}
}
