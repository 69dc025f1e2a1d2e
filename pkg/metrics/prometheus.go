package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	providerRequests *prometheus.CounterVec
	providerLatency  *prometheus.HistogramVec
	enrichments      *prometheus.CounterVec
	racesTotal       prometheus.Counter
	picksTotal       prometheus.Counter
	batchesTotal     *prometheus.CounterVec
	errorsTotal      *prometheus.CounterVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		providerRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "formpull_provider_requests_total",
				Help: "Total number of upstream provider requests",
			},
			[]string{"provider", "outcome"},
		),
		providerLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "formpull_provider_duration_seconds",
				Help:    "Duration of upstream provider requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider"},
		),
		enrichments: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "formpull_enrichments_total",
				Help: "Runners enriched per data kind (form, ratings, people)",
			},
			[]string{"kind"},
		),
		racesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "formpull_races_total",
				Help: "Total number of races assembled",
			},
		),
		picksTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "formpull_picks_total",
				Help: "Total number of picks produced by the analyzer",
			},
		),
		batchesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "formpull_analyzer_batches_total",
				Help: "Analyzer batches by outcome (ok, parse_error, request_error)",
			},
			[]string{"outcome"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "formpull_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
	}
}

// RecordProviderRequest records a single upstream request with its latency.
func (r *Recorder) RecordProviderRequest(provider string, seconds float64, success bool) {
	outcome := "ok"
	if !success {
		outcome = "error"
	}
	r.providerRequests.WithLabelValues(provider, outcome).Inc()
	r.providerLatency.WithLabelValues(provider).Observe(seconds)
}

// RecordEnrichment records n runners enriched with the given data kind.
func (r *Recorder) RecordEnrichment(kind string, n int) {
	r.enrichments.WithLabelValues(kind).Add(float64(n))
}

// RecordRaces records assembled races.
func (r *Recorder) RecordRaces(n int) {
	r.racesTotal.Add(float64(n))
}

// RecordPicks records picks produced.
func (r *Recorder) RecordPicks(n int) {
	r.picksTotal.Add(float64(n))
}

// RecordBatch records an analyzer batch outcome.
func (r *Recorder) RecordBatch(outcome string) {
	r.batchesTotal.WithLabelValues(outcome).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}
