package form

import "FormPull/internal/domain/models"

// Surface preference labels.
const (
	WetTracker   = "WET TRACKER"
	DryPreferred = "DRY PREFERRED"
)

// SurfacePreference derives a surface preference from per-surface place
// splits ([wins, 2nds, 3rds] on dry and wet going). Top-three placings
// stand in for run counts because the form provider does not break total
// runs down by surface.
//
// Wet tracker needs at least two wet placings with a win, a wet strike
// rate of 25%+, and a wet rate no worse than the dry rate. Dry preferred
// needs three dry placings with a win and a dry rate beating the wet rate
// (or no wet form at all). Wet tracker is checked first and wins if a
// record somehow satisfies both.
func SurfacePreference(dry, wet models.PlaceSplit) string {
	dryTot, wetTot := dry.Total(), wet.Total()
	dryWins, wetWins := dry[0], wet[0]

	if wetTot >= 2 && wetWins >= 1 {
		wetRate := float64(wetWins) / float64(wetTot)
		dryRate := 0.0
		if dryTot >= 2 {
			dryRate = float64(dryWins) / float64(dryTot)
		}
		if wetRate >= 0.25 && wetRate >= dryRate {
			return WetTracker
		}
	}

	if dryTot >= 3 && dryWins >= 1 {
		dryRate := float64(dryWins) / float64(dryTot)
		wetRate := 0.0
		if wetTot >= 1 {
			wetRate = float64(wetWins) / float64(wetTot)
		}
		if dryRate > wetRate || (wetTot == 0 && dryWins >= 1) {
			return DryPreferred
		}
	}

	return ""
}
