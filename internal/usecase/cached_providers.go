package usecase

import (
	"context"
	"errors"
	"time"

	"FormPull/internal/domain/models"
	domrepo "FormPull/internal/domain/repository"
	"FormPull/pkg/cache"
	"FormPull/pkg/logger"
)

// The enrichment providers each fan out into many GraphQL queries, so a
// re-run for the same date goes through the cache instead.

// CachedFormProvider caches full form indexes keyed by date.
type CachedFormProvider struct {
	inner domrepo.FormProvider
	cache cache.Service
	ttl   time.Duration
	log   *logger.Logger
}

// NewCachedFormProvider wraps a form provider with date-keyed caching.
func NewCachedFormProvider(inner domrepo.FormProvider, c cache.Service, ttl time.Duration, log *logger.Logger) *CachedFormProvider {
	return &CachedFormProvider{inner: inner, cache: c, ttl: ttl, log: log}
}

func (p *CachedFormProvider) Form(ctx context.Context, date string) (*models.FormIndex, error) {
	key := cache.Key("form", date)

	var cached models.FormIndex
	if err := p.cache.Get(ctx, key, &cached); err == nil {
		p.log.Debug("form cache hit", logger.String("date", date))
		return &cached, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		p.log.Warn("form cache read failed", logger.Error(err))
	}

	idx, err := p.inner.Form(ctx, date)
	if err != nil {
		return nil, err
	}

	if err := p.cache.Set(ctx, key, idx, p.ttl); err != nil {
		p.log.Warn("form cache write failed", logger.Error(err))
	}
	return idx, nil
}

// CachedRatingsProvider caches ratings lookups keyed by date.
type CachedRatingsProvider struct {
	inner domrepo.RatingsProvider
	cache cache.Service
	ttl   time.Duration
	log   *logger.Logger
}

// NewCachedRatingsProvider wraps a ratings provider with date-keyed caching.
func NewCachedRatingsProvider(inner domrepo.RatingsProvider, c cache.Service, ttl time.Duration, log *logger.Logger) *CachedRatingsProvider {
	return &CachedRatingsProvider{inner: inner, cache: c, ttl: ttl, log: log}
}

func (p *CachedRatingsProvider) Ratings(ctx context.Context, date string) (map[string]*models.RatingsFragment, error) {
	key := cache.Key("ratings", date)

	var cached map[string]*models.RatingsFragment
	if err := p.cache.Get(ctx, key, &cached); err == nil {
		p.log.Debug("ratings cache hit", logger.String("date", date))
		return cached, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		p.log.Warn("ratings cache read failed", logger.Error(err))
	}

	lookup, err := p.inner.Ratings(ctx, date)
	if err != nil {
		return nil, err
	}

	if err := p.cache.Set(ctx, key, lookup, p.ttl); err != nil {
		p.log.Warn("ratings cache write failed", logger.Error(err))
	}
	return lookup, nil
}
