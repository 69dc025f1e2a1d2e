package form

import (
	"math"
	"sort"
	"strings"

	"FormPull/internal/domain/models"
)

// IsWetTrack reports whether a track-condition string describes wet going.
// The match is a case-insensitive substring check on the whole string, not
// tokenized: any condition containing "soft" or "heavy" counts.
func IsWetTrack(condition string) bool {
	c := strings.ToLower(condition)
	return strings.Contains(c, "soft") || strings.Contains(c, "heavy")
}

// Assembler turns raw odds-feed payloads plus enrichment indexes into
// immutable races and meetings. The bias table is injected at construction
// and never changes.
type Assembler struct {
	bias BiasTable
}

// NewAssembler creates an assembler with the given track bias table.
func NewAssembler(bias BiasTable) *Assembler {
	if bias == nil {
		bias = BiasTable{}
	}
	return &Assembler{bias: bias}
}

// AssembleRace builds one race: scratched runners are dropped before
// anything else, survivors are reconciled against the enrichment indexes,
// and the result is sorted by best-available price with unpriced runners
// kept in feed order at the end.
func (a *Assembler) AssembleRace(
	meeting models.MeetingInfo,
	info models.RaceInfo,
	quotes []models.RunnerQuote,
	idx *models.FormIndex,
	ratings map[string]*models.RatingsFragment,
) *models.Race {
	ctx := RaceContext{Track: meeting.Name, Distance: info.Distance}

	runners := make([]*models.Runner, 0, len(quotes))
	for _, q := range quotes {
		if quoteScratched(q) {
			continue
		}
		base := runnerFromQuote(q)
		key := NormalizeName(base.Name)

		var frm *models.FormFragment
		var rat *models.RatingsFragment
		if idx != nil {
			frm = idx.Horses[key]
		}
		if ratings != nil {
			rat = ratings[key]
		}

		r := Reconcile(base, ctx, frm, rat, a.bias)
		AttachPeople(r, idx)
		runners = append(runners, r)
	}

	sortByBestPrice(runners)

	return &models.Race{
		Track:          meeting.Name,
		Location:       meeting.Location,
		TrackCondition: meeting.TrackCondition,
		TrackWet:       IsWetTrack(meeting.TrackCondition),
		Number:         info.Number,
		Name:           info.Name,
		Distance:       info.Distance,
		StartTime:      info.StartTime,
		Runners:        runners,
	}
}

// NewMeeting builds the meeting shell the assembled races hang off.
func NewMeeting(info models.MeetingInfo) *models.Meeting {
	return &models.Meeting{
		Track:          info.Name,
		Location:       info.Location,
		TrackCondition: info.TrackCondition,
		TrackWet:       IsWetTrack(info.TrackCondition),
	}
}

// quoteScratched reports a scratching signalled by either market's betting
// status.
func quoteScratched(q models.RunnerQuote) bool {
	return strings.Contains(q.FixedStatus, "Scratched") ||
		strings.Contains(q.ToteStatus, "Scratched")
}

func runnerFromQuote(q models.RunnerQuote) *models.Runner {
	return &models.Runner{
		Number:     q.Number,
		Name:       q.Name,
		Barrier:    q.Barrier,
		Jockey:     q.Jockey,
		Trainer:    q.Trainer,
		Weight:     q.Weight,
		WinFixed:   q.WinFixed,
		PlaceFixed: q.PlaceFixed,
		WinTote:    q.WinTote,
	}
}

// sortByBestPrice orders runners by the shortest available win quote,
// preferring the fixed market and falling back to the tote. The sort is
// stable so runners with no market at all keep their original order at
// the tail.
func sortByBestPrice(runners []*models.Runner) {
	sort.SliceStable(runners, func(i, j int) bool {
		return priceKey(runners[i]) < priceKey(runners[j])
	})
}

func priceKey(r *models.Runner) float64 {
	if p := r.BestPrice(); p > 0 {
		return p
	}
	return math.Inf(1)
}
