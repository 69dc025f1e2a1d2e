package di

import (
	"fmt"
	"time"

	"FormPull/internal/domain/repository"
	domsvc "FormPull/internal/domain/service"
	"FormPull/internal/handler/api"
	internalrepo "FormPull/internal/repository"
	"FormPull/internal/service/analyzer"
	"FormPull/internal/service/punt"
	"FormPull/internal/service/racing"
	"FormPull/internal/service/tab"
	formsvc "FormPull/internal/services/form"
	"FormPull/internal/usecase"
	pkgcache "FormPull/pkg/cache"
	"FormPull/pkg/config"
	xhttp "FormPull/pkg/http"
	pkgkafka "FormPull/pkg/kafka"
	applogger "FormPull/pkg/logger"
	"FormPull/pkg/metrics"
	"FormPull/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	lc := &applogger.Config{
		Level:  cfg.Logger.Level,
		Format: cfg.Logger.Format,
		Output: cfg.Logger.Output,
	}
	if lc.Level == "" {
		lc.Level = "info"
	}
	if lc.Format == "" {
		lc.Format = "console"
	}
	if lc.Output == "" {
		lc.Output = "stdout"
	}
	return applogger.New(lc)
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideCache creates the provider cache: layered over Redis when Redis
// is configured, in-memory otherwise. A dead Redis degrades to memory.
func ProvideCache(cfg *config.Config, log *applogger.Logger) pkgcache.Service {
	if !cfg.Cache.Redis.Enabled {
		return pkgcache.NewMemoryCache()
	}

	redis, err := pkgcache.NewRedisCache(
		pkgcache.WithRedisAddr(cfg.Cache.Redis.Addr),
		pkgcache.WithRedisPassword(cfg.Cache.Redis.Password),
		pkgcache.WithRedisDB(cfg.Cache.Redis.DB),
		pkgcache.WithRedisPrefix("formpull"),
	)
	if err != nil {
		log.Warn("redis unavailable, falling back to memory cache", applogger.Error(err))
		return pkgcache.NewMemoryCache()
	}
	return pkgcache.NewLayeredCache(redis)
}

// ProvideKafkaProducer creates a Kafka producer, or nil when disabled.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, error) {
	if !cfg.Kafka.Enabled {
		return nil, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithBatchSize(cfg.Kafka.Producer.BatchSize),
		pkgkafka.WithBatchBytes(cfg.Kafka.Producer.BatchBytes),
		pkgkafka.WithBatchTimeout(cfg.Kafka.Producer.Linger),
		pkgkafka.WithTimeouts(cfg.Kafka.Producer.WriteTimeout, cfg.Kafka.Producer.ReadTimeout),
		pkgkafka.WithMaxAttempts(cfg.Kafka.Producer.MaxAttempts),
		pkgkafka.WithAsync(cfg.Kafka.Producer.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return producer, nil
}

// ProvidePublisher creates the Kafka tips publisher, or nil when Kafka is
// disabled.
func ProvidePublisher(producer *pkgkafka.Producer, cfg *config.Config) repository.Publisher {
	if producer == nil {
		return nil
	}
	return internalrepo.NewKafkaPublisher(producer, cfg.Kafka.Topic)
}

// ProvideOddsFeed creates the TAB odds feed client.
func ProvideOddsFeed(cfg *config.Config, log *applogger.Logger) repository.OddsFeed {
	return tab.New(
		cfg.TAB.BaseURL,
		cfg.TAB.AllTracks,
		timeoutOr(cfg.TAB.Timeout, 15*time.Second),
		log,
	)
}

// ProvideFormProvider creates the form client wrapped in a date-keyed cache.
func ProvideFormProvider(cfg *config.Config, c pkgcache.Service, log *applogger.Logger) repository.FormProvider {
	client := punt.New(cfg.Punt.BaseURL, cfg.Punt.APIKey, timeoutOr(cfg.Punt.Timeout, 60*time.Second), log)
	return usecase.NewCachedFormProvider(client, c, cacheTTL(cfg), log)
}

// ProvideRatingsProvider creates the ratings client wrapped in a
// date-keyed cache.
func ProvideRatingsProvider(cfg *config.Config, c pkgcache.Service, log *applogger.Logger) repository.RatingsProvider {
	client := racing.New(cfg.Racing.BaseURL, cfg.Racing.APIKey, timeoutOr(cfg.Racing.Timeout, 60*time.Second), log)
	return usecase.NewCachedRatingsProvider(client, c, cacheTTL(cfg), log)
}

// ProvideAnalyzer creates the analyzer client.
func ProvideAnalyzer(cfg *config.Config, log *applogger.Logger) domsvc.Analyzer {
	return analyzer.New(
		cfg.Analyzer.BaseURL,
		cfg.Analyzer.APIKey,
		cfg.Analyzer.Model,
		cfg.Analyzer.MaxTokens,
		timeoutOr(cfg.Analyzer.Timeout, 5*time.Minute),
		log,
	)
}

// ProvideAssembler creates the race assembler with the built-in barrier
// bias table.
func ProvideAssembler() *formsvc.Assembler {
	return formsvc.NewAssembler(formsvc.DefaultBiasTable())
}

// ProvideTipStore creates the shared tip sheet store.
func ProvideTipStore() *usecase.TipStore {
	return usecase.NewTipStore()
}

// ProvidePipeline wires the race-day pipeline.
func ProvidePipeline(
	odds repository.OddsFeed,
	form repository.FormProvider,
	ratings repository.RatingsProvider,
	analyzer domsvc.Analyzer,
	publisher repository.Publisher,
	metrics repository.Metrics,
	assembler *formsvc.Assembler,
	log *applogger.Logger,
	cfg *config.Config,
) *usecase.Pipeline {
	return usecase.NewPipeline(
		odds, form, ratings, analyzer, publisher, metrics, assembler, log,
		cfg.TAB.Jurisdiction, cfg.Analyzer.BatchSize,
	)
}

// ProvideHandler creates the tips HTTP handler.
func ProvideHandler(log *applogger.Logger, store *usecase.TipStore) xhttp.Handler {
	return api.NewTipsHandler(log, store)
}

// ProvideApp creates the application.
func ProvideApp(
	cfg *config.Config,
	log *applogger.Logger,
	pipeline *usecase.Pipeline,
	store *usecase.TipStore,
	publisher repository.Publisher,
	handler xhttp.Handler,
) *server.App {
	return server.New(cfg, log, pipeline, store, publisher, handler)
}

func timeoutOr(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}

func cacheTTL(cfg *config.Config) time.Duration {
	return timeoutOr(cfg.Cache.TTL, 6*time.Hour)
}
