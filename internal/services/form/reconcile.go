package form

import (
	"fmt"

	"FormPull/internal/domain/models"
)

// RaceContext carries the "today" values a runner is reconciled against:
// they come from the race being assembled, not from any enrichment source.
type RaceContext struct {
	Track    string
	Distance int
}

// Reconcile merges a base runner from the odds feed with the optional form
// and ratings fragments for the same horse, producing the one canonical
// record. It is pure and deterministic: the base copy happens first, each
// fragment only fills fields still unset, and the ratings weight/speed
// fields belong exclusively to the ratings source. Either fragment may be
// nil; a horse with no enrichment is still a complete, valid runner.
func Reconcile(base *models.Runner, ctx RaceContext, frm *models.FormFragment, rat *models.RatingsFragment, bias BiasTable) *models.Runner {
	out := *base

	if frm != nil {
		fillForm(&out, ctx, frm)
	}
	// Draw note depends only on today's track and barrier, so runners the
	// form provider missed still get flagged at biased tracks.
	if out.DrawNote == "" {
		out.DrawNote = bias.DrawNote(ctx.Track, out.Barrier)
	}
	if rat != nil {
		fillRatings(&out, rat)
	}
	return &out
}

func fillForm(r *models.Runner, ctx RaceContext, frm *models.FormFragment) {
	if r.Career == "" {
		r.Career = frm.Career
	}
	if r.DrySplit == "" && !frm.Dry.IsZero() {
		r.DrySplit = formatSplit(frm.Dry)
	}
	if r.WetSplit == "" && !frm.Wet.IsZero() {
		r.WetSplit = formatSplit(frm.Wet)
	}
	if r.LastRun == "" {
		r.LastRun = frm.LastRun
	}
	if r.DaysSince == nil {
		r.DaysSince = frm.DaysSince
	}
	if r.CurrentClass == "" {
		r.CurrentClass = frm.CurrentClass
	}

	if r.SurfacePref == "" {
		r.SurfacePref = SurfacePreference(frm.Dry, frm.Wet)
	}
	if r.DistanceStep == "" {
		r.DistanceStep = DistanceStep(ctx.Distance, frm.LastDistance)
	}
	if r.GradeChange == "" {
		r.GradeChange = GradeChange(frm.CurrentClass, frm.LastClass)
	}
	if r.BarrierRecord == nil {
		if rec, ok := frm.BarrierStats[r.Barrier]; ok {
			rec := rec
			r.BarrierRecord = &rec
			r.BarrierFlag = BarrierFlag(r.Barrier, &rec)
		}
	}
}

func fillRatings(r *models.Runner, rat *models.RatingsFragment) {
	r.SpeedRating = rat.SpeedRating
	r.BarrierStat = rat.BarrierStat
	r.ClassStat = rat.ClassStat
	r.JockeyStat = rat.JockeyStat
	r.TrackStat = rat.TrackStat
	r.DistanceStat = rat.DistanceStat
	r.WeightChange = WeightChange(rat.WeightToday, rat.WeightLast)
}

// AttachPeople fills jockey and trainer aggregates from the form index,
// keyed by normalized name. Separate from Reconcile because the lookups
// key on people, not the horse.
func AttachPeople(r *models.Runner, idx *models.FormIndex) {
	if idx == nil {
		return
	}
	if r.JockeyRecord == nil {
		if wr, ok := idx.Jockeys[NormalizeName(r.Jockey)]; ok && wr.Runs > 0 {
			r.JockeyRecord = &wr
		}
	}
	if r.TrainerRecord == nil {
		if wr, ok := idx.Trainers[NormalizeName(r.Trainer)]; ok && wr.Runs > 0 {
			r.TrainerRecord = &wr
		}
	}
}

func formatSplit(p models.PlaceSplit) string {
	return fmt.Sprintf("%d-%d-%d", p[0], p[1], p[2])
}
