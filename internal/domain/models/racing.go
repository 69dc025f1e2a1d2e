package models

import "time"

// PlaceSplit holds win/second/third place counts on one surface.
type PlaceSplit [3]int

// Total returns the number of top-three finishes in the split.
func (p PlaceSplit) Total() int { return p[0] + p[1] + p[2] }

// IsZero reports whether the split has no recorded placings.
func (p PlaceSplit) IsZero() bool { return p.Total() == 0 }

// WinRuns is an aggregate win/run count for a jockey, trainer, or barrier.
type WinRuns struct {
	Wins int
	Runs int
}

// Runner is the canonical per-runner record. It starts from the odds feed
// and is progressively enriched; pointers stay nil when the matching source
// had nothing for this horse.
type Runner struct {
	Number     int
	Name       string
	Barrier    string
	Jockey     string
	Trainer    string
	Weight     string
	WinFixed   float64
	PlaceFixed float64
	WinTote    float64
	Scratched  bool

	// Form provider enrichment.
	Career        string // "4W/18R"
	DrySplit      string // "1-0-2"
	WetSplit      string
	LastRun       string
	DaysSince     *int
	SurfacePref   string // "WET TRACKER", "DRY PREFERRED", or ""
	DistanceStep  string
	JockeyRecord  *WinRuns
	TrainerRecord *WinRuns
	BarrierRecord *WinRuns // this horse from today's barrier
	BarrierFlag   string
	DrawNote      string
	CurrentClass  string
	GradeChange   string

	// Ratings provider enrichment. Weight and speed fields belong to this
	// source only and are never taken from the form provider.
	SpeedRating  *float64
	BarrierStat  string // "runs:wins-2nds-3rds" at today's barrier
	ClassStat    string
	JockeyStat   string // jockey at this venue+distance
	TrackStat    string
	DistanceStat string
	WeightChange string
}

// BestPrice returns the best-available win quote: the fixed market when it
// is priced, the tote otherwise. Zero means no market.
func (r *Runner) BestPrice() float64 {
	if r.WinFixed > 0 {
		return r.WinFixed
	}
	return r.WinTote
}

// Race is an assembled, immutable race. Runners are ordered by
// best-available price ascending with unpriced runners last.
type Race struct {
	Track          string
	Location       string
	TrackCondition string
	TrackWet       bool
	Number         int
	Name           string
	Distance       int
	StartTime      string
	Runners        []*Runner
}

// Meeting groups the assembled races for one venue and day.
type Meeting struct {
	Track          string
	Location       string
	TrackCondition string
	TrackWet       bool
	Races          []*Race
}

// MeetingInfo is the raw meeting shape from the odds feed.
type MeetingInfo struct {
	Name           string
	VenueCode      string
	RaceType       string
	Location       string
	TrackCondition string
	Races          []RaceInfo
}

// RaceInfo is the raw race shape from the odds feed. Runners carries the
// meeting-level quote list used as a fallback when the per-race detail
// fetch returns nothing.
type RaceInfo struct {
	Number    int
	Name      string
	Distance  int
	StartTime string
	Runners   []RunnerQuote
}

// RunnerQuote is a raw runner entry from the odds feed with the two
// independent market quotes. A zero price means that market has no quote.
type RunnerQuote struct {
	Number      int
	Name        string
	Barrier     string
	Jockey      string
	Trainer     string
	Weight      string
	WinFixed    float64
	PlaceFixed  float64
	WinTote     float64
	FixedStatus string
	ToteStatus  string
}

// FormFragment is the form provider's partial record for one horse.
type FormFragment struct {
	Career       string
	Dry          PlaceSplit
	Wet          PlaceSplit
	LastRun      string
	DaysSince    *int
	LastDistance *int
	CurrentClass string
	LastClass    string
	BarrierStats map[string]WinRuns // keyed by barrier number as written
}

// FormIndex is everything one form fetch yields, keyed by normalized name.
type FormIndex struct {
	Horses   map[string]*FormFragment
	Jockeys  map[string]WinRuns
	Trainers map[string]WinRuns
}

// NewFormIndex returns an empty index safe for lookups.
func NewFormIndex() *FormIndex {
	return &FormIndex{
		Horses:   make(map[string]*FormFragment),
		Jockeys:  make(map[string]WinRuns),
		Trainers: make(map[string]WinRuns),
	}
}

// RatingsFragment is the ratings provider's partial record for one horse.
// Stat strings use the provider's "{runs}:{wins}-{2nds}-{3rds}" format and
// pass through unparsed; display parsing happens at derivation time.
type RatingsFragment struct {
	SpeedRating  *float64
	BarrierStat  string
	ClassStat    string
	JockeyStat   string
	TrackStat    string
	DistanceStat string
	WeightToday  string
	WeightLast   string
}

// Pick is one analyzer selection for a race.
type Pick struct {
	Track      string `json:"track"`
	RaceNumber int    `json:"race_number"`
	Pick       string `json:"pick"`
	Barrier    string `json:"barrier"`
	Odds       string `json:"odds"`
	Rating     string `json:"rating"`
	Analysis   string `json:"analysis"`
}

// TipSheet is the final read-only output of a run: the assembled meetings
// plus analyzer picks keyed by "TRACK_R{n}".
type TipSheet struct {
	Date        string           `json:"date"`
	GeneratedAt time.Time        `json:"generated_at"`
	Meetings    []*Meeting       `json:"meetings"`
	Picks       map[string]*Pick `json:"picks"`
}

// Races returns every race across all meetings in feed order.
func (t *TipSheet) Races() []*Race {
	var out []*Race
	for _, m := range t.Meetings {
		out = append(out, m.Races...)
	}
	return out
}
