package repository

import (
	"context"

	"FormPull/internal/domain/models"
)

// OddsFeed is the primary runner/odds source. It is the only collaborator
// whose absence is fatal: no meetings means nothing to analyze.
type OddsFeed interface {
	Meetings(ctx context.Context, date, jurisdiction string) ([]models.MeetingInfo, error)
	RaceDetail(ctx context.Context, date string, m models.MeetingInfo, raceNumber int, jurisdiction string) ([]models.RunnerQuote, error)
}

// FormProvider supplies career, surface, last-run, and barrier history per
// horse. An empty index is "no enrichment this run", never an error the
// pipeline stops for.
type FormProvider interface {
	Form(ctx context.Context, date string) (*models.FormIndex, error)
}

// RatingsProvider supplies speed figures, context stat strings, and
// carried weights per horse.
type RatingsProvider interface {
	Ratings(ctx context.Context, date string) (map[string]*models.RatingsFragment, error)
}

// Publisher delivers a finished tip sheet downstream.
type Publisher interface {
	PublishTips(ctx context.Context, sheet *models.TipSheet) error
	Close() error
}

// Metrics records pipeline observability counters.
type Metrics interface {
	RecordProviderRequest(provider string, seconds float64, success bool)
	RecordEnrichment(kind string, n int)
	RecordRaces(n int)
	RecordPicks(n int)
	RecordBatch(outcome string)
	RecordError(kind string)
}
