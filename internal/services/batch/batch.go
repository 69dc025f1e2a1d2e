// Package batch turns an ordered set of assembled races into bounded-size
// text batches for the external analyzer and re-associates the analyzer's
// picks by composite key.
package batch

import (
	"fmt"

	"FormPull/internal/domain/models"
)

// Partition splits races into batches of at most size, preserving race
// order. The final batch may be short. A non-positive size yields one
// batch with everything.
func Partition(races []*models.Race, size int) [][]*models.Race {
	if len(races) == 0 {
		return nil
	}
	if size <= 0 {
		return [][]*models.Race{races}
	}
	var out [][]*models.Race
	for start := 0; start < len(races); start += size {
		end := start + size
		if end > len(races) {
			end = len(races)
		}
		out = append(out, races[start:end])
	}
	return out
}

// PickKey builds the composite key a pick is stored under: "TRACK_R3".
func PickKey(track string, raceNumber int) string {
	return fmt.Sprintf("%s_R%d", track, raceNumber)
}

// MergePicks folds one batch's picks into the accumulated map. With
// well-behaved analyzer output every key is unique and the map grows by
// one entry per race; if the analyzer repeats a key the last one processed
// wins, which is the documented tie-break for a misbehaving collaborator.
func MergePicks(into map[string]*models.Pick, picks []models.Pick) {
	for i := range picks {
		p := picks[i]
		into[PickKey(p.Track, p.RaceNumber)] = &p
	}
}
