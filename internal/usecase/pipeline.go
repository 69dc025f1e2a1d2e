package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"FormPull/internal/domain/models"
	domrepo "FormPull/internal/domain/repository"
	domsvc "FormPull/internal/domain/service"
	"FormPull/internal/services/batch"
	formsvc "FormPull/internal/services/form"
	"FormPull/pkg/logger"
)

// Pipeline runs one full race-day cycle: fetch meetings and odds, enrich
// with form and ratings, assemble races, get analyzer picks per batch, and
// hand the finished tip sheet downstream.
type Pipeline struct {
	odds      domrepo.OddsFeed
	form      domrepo.FormProvider
	ratings   domrepo.RatingsProvider
	analyzer  domsvc.Analyzer
	publisher domrepo.Publisher
	metrics   domrepo.Metrics
	assembler *formsvc.Assembler
	log       *logger.Logger

	jurisdiction string
	batchSize    int
}

// NewPipeline wires the pipeline. publisher may be nil when no downstream
// delivery is configured.
func NewPipeline(
	odds domrepo.OddsFeed,
	form domrepo.FormProvider,
	ratings domrepo.RatingsProvider,
	analyzer domsvc.Analyzer,
	publisher domrepo.Publisher,
	metrics domrepo.Metrics,
	assembler *formsvc.Assembler,
	log *logger.Logger,
	jurisdiction string,
	batchSize int,
) *Pipeline {
	return &Pipeline{
		odds:         odds,
		form:         form,
		ratings:      ratings,
		analyzer:     analyzer,
		publisher:    publisher,
		metrics:      metrics,
		assembler:    assembler,
		log:          log,
		jurisdiction: jurisdiction,
		batchSize:    batchSize,
	}
}

// Run executes the pipeline for one date. Only an empty odds feed is
// fatal; every enrichment source degrades to "no enrichment".
func (p *Pipeline) Run(ctx context.Context, date string) (*models.TipSheet, error) {
	start := time.Now()
	meetings, err := p.odds.Meetings(ctx, date, p.jurisdiction)
	p.metrics.RecordProviderRequest("tab", time.Since(start).Seconds(), err == nil)
	if err != nil {
		p.metrics.RecordError("odds_feed")
		return nil, fmt.Errorf("fetch meetings: %w", err)
	}
	if len(meetings) == 0 {
		p.metrics.RecordError("odds_feed")
		return nil, fmt.Errorf("no meetings for %s: nothing to analyze", date)
	}

	idx, ratings := p.fetchEnrichment(ctx, date)

	assembled := p.assemble(ctx, date, meetings, idx, ratings)

	races := assembled.Races()
	p.metrics.RecordRaces(len(races))
	p.countEnrichment(races)

	picks := p.analyze(ctx, date, races)
	p.metrics.RecordPicks(len(picks))

	assembled.Picks = picks
	assembled.Date = date
	assembled.GeneratedAt = time.Now()

	if p.publisher != nil {
		if err := p.publisher.PublishTips(ctx, assembled); err != nil {
			p.metrics.RecordError("publish")
			p.log.Error("publish tips failed", logger.Error(err))
		}
	}

	p.log.Info("pipeline complete",
		logger.String("date", date),
		logger.Int("meetings", len(assembled.Meetings)),
		logger.Int("races", len(races)),
		logger.Int("picks", len(picks)),
		logger.Duration("duration_ms", time.Since(start)),
	)
	return assembled, nil
}

// fetchEnrichment pulls form and ratings concurrently. Either source
// failing degrades to an empty index rather than stopping the run.
func (p *Pipeline) fetchEnrichment(ctx context.Context, date string) (*models.FormIndex, map[string]*models.RatingsFragment) {
	var (
		wg      sync.WaitGroup
		idx     *models.FormIndex
		ratings map[string]*models.RatingsFragment
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		start := time.Now()
		got, err := p.form.Form(ctx, date)
		p.metrics.RecordProviderRequest("punt", time.Since(start).Seconds(), err == nil)
		if err != nil {
			p.metrics.RecordError("form_provider")
			p.log.Warn("form fetch failed, continuing without form data", logger.Error(err))
			return
		}
		idx = got
	}()
	go func() {
		defer wg.Done()
		start := time.Now()
		got, err := p.ratings.Ratings(ctx, date)
		p.metrics.RecordProviderRequest("racing", time.Since(start).Seconds(), err == nil)
		if err != nil {
			p.metrics.RecordError("ratings_provider")
			p.log.Warn("ratings fetch failed, continuing without ratings", logger.Error(err))
			return
		}
		ratings = got
	}()
	wg.Wait()

	if idx == nil {
		idx = models.NewFormIndex()
	}
	return idx, ratings
}

func (p *Pipeline) assemble(ctx context.Context, date string, meetings []models.MeetingInfo, idx *models.FormIndex, ratings map[string]*models.RatingsFragment) *models.TipSheet {
	sheet := &models.TipSheet{}

	for _, info := range meetings {
		meeting := formsvc.NewMeeting(info)
		p.log.Info("assembling meeting",
			logger.String("track", info.Name),
			logger.String("location", info.Location),
			logger.Int("races", len(info.Races)),
			logger.String("condition", info.TrackCondition),
			logger.Bool("wet", meeting.TrackWet),
		)

		for _, raceInfo := range info.Races {
			start := time.Now()
			quotes, err := p.odds.RaceDetail(ctx, date, info, raceInfo.Number, p.jurisdiction)
			p.metrics.RecordProviderRequest("tab", time.Since(start).Seconds(), err == nil)
			if err != nil {
				p.log.Warn("race detail fetch failed, using meeting-level runners",
					logger.String("track", info.Name),
					logger.Int("race", raceInfo.Number),
					logger.Error(err),
				)
			}

			race := p.assembler.AssembleRace(info, raceInfo, quotes, idx, ratings)
			if len(race.Runners) == 0 && len(raceInfo.Runners) > 0 {
				race = p.assembler.AssembleRace(info, raceInfo, raceInfo.Runners, idx, ratings)
			}
			meeting.Races = append(meeting.Races, race)
		}
		sheet.Meetings = append(sheet.Meetings, meeting)
	}
	return sheet
}

// analyze submits race batches to the analyzer sequentially and merges the
// picks. A failed batch loses only its own picks.
func (p *Pipeline) analyze(ctx context.Context, date string, races []*models.Race) map[string]*models.Pick {
	picks := make(map[string]*models.Pick)
	batches := batch.Partition(races, p.batchSize)

	for i, b := range batches {
		prompt := batch.BuildPrompt(b, date, i == 0)

		text, err := p.analyzer.Analyze(ctx, prompt)
		if err != nil {
			p.metrics.RecordBatch("request_error")
			p.metrics.RecordError("analyzer")
			p.log.Error("analyzer batch failed",
				logger.Int("batch", i+1),
				logger.Int("batches", len(batches)),
				logger.Error(err),
			)
			continue
		}

		got := batch.ParsePicks(text)
		if len(got) == 0 {
			p.metrics.RecordBatch("parse_error")
			p.log.Warn("analyzer batch yielded no parseable picks",
				logger.Int("batch", i+1),
				logger.Int("chars", len(text)),
			)
			continue
		}

		batch.MergePicks(picks, got)
		p.metrics.RecordBatch("ok")
		p.log.Info("analyzer batch complete",
			logger.Int("batch", i+1),
			logger.Int("batches", len(batches)),
			logger.Int("picks", len(got)),
			logger.Int("running_total", len(picks)),
		)
	}
	return picks
}

// countEnrichment mirrors the end-of-run coverage summary: how many
// runners carry form, ratings, and people data.
func (p *Pipeline) countEnrichment(races []*models.Race) {
	var withForm, withRatings, withPeople, total int
	for _, race := range races {
		for _, r := range race.Runners {
			total++
			if r.Career != "" || r.LastRun != "" {
				withForm++
			}
			if r.SpeedRating != nil || r.TrackStat != "" {
				withRatings++
			}
			if r.JockeyRecord != nil || r.TrainerRecord != nil {
				withPeople++
			}
		}
	}
	p.metrics.RecordEnrichment("form", withForm)
	p.metrics.RecordEnrichment("ratings", withRatings)
	p.metrics.RecordEnrichment("people", withPeople)
	p.log.Info("enrichment coverage",
		logger.Int("runners", total),
		logger.Int("form", withForm),
		logger.Int("ratings", withRatings),
		logger.Int("people", withPeople),
	)
}
