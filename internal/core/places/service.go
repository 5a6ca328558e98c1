// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package places

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/kalamanch/directory/internal/platform/metrics"
)

// Cache stores encoded lookup results.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Service runs places lookups with caching and request collapsing.
type Service struct {
	provider Provider
	cache    Cache
	ttl      time.Duration
	timeout  time.Duration
	logger   *slog.Logger
	flight   singleflight.Group
}

// Option configures a [Service].
type Option func(*Service)

// WithCache enables result caching for ttl. A nil cache is ignored.
func WithCache(cache Cache, ttl time.Duration) Option {
	return func(service *Service) {
		if cache != nil {
			service.cache = cache
			service.ttl = ttl
		}
	}
}

// WithTimeout bounds each provider call.
func WithTimeout(timeout time.Duration) Option {
	return func(service *Service) {
		if timeout > 0 {
			service.timeout = timeout
		}
	}
}

// NewService creates a [Service]. A nil provider disables lookups.
func NewService(provider Provider, logger *slog.Logger, opts ...Option) *Service {
	service := &Service{
		provider: provider,
		timeout:  8 * time.Second,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

/*
Search runs one lookup and always returns a [Result].

A blank query returns an empty result without calling the provider. Concurrent
identical lookups share a single provider call. Provider failures are logged
and reported through Result.Err with an empty list.
*/
func (service *Service) Search(ctx context.Context, request Request) Result {
	request.Query = strings.TrimSpace(request.Query)
	if request.Query == "" {
		return Result{Places: []Place{}}
	}

	if service.provider == nil {
		metrics.CountPlacesLookup(metrics.OutcomeDisabled)
		service.logger.WarnContext(ctx, "places_lookup_disabled", slog.String("query", request.Query))
		return Result{Places: []Place{}, Err: ErrDisabled}
	}

	key := lookupKey(request)

	if places, ok := service.cached(ctx, key); ok {
		metrics.CountPlacesLookup(metrics.OutcomeCached)
		return Result{Places: places}
	}

	value, err, shared := service.flight.Do(key, func() (any, error) {
		// The call outlives the first caller so collapsed callers are not
		// cancelled with it.
		lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), service.timeout)
		defer cancel()

		places, err := service.provider.SearchPlaces(lookupCtx, request)
		if err != nil {
			return nil, err
		}

		places = Dedupe(places)
		service.store(lookupCtx, key, places)
		return places, nil
	})

	if err != nil {
		metrics.CountPlacesLookup(metrics.OutcomeFailed)
		service.logger.ErrorContext(ctx, "places_lookup_failed",
			slog.String("query", request.Query),
			slog.Any("error", err),
		)
		return Result{Places: []Place{}, Err: err}
	}

	metrics.CountPlacesLookup(metrics.OutcomeOK)
	places := value.([]Place)
	service.logger.InfoContext(ctx, "places_lookup_completed",
		slog.String("query", request.Query),
		slog.Int("results", len(places)),
		slog.Bool("shared", shared),
	)

	// Collapsed callers receive the same slice.
	return Result{Places: append([]Place(nil), places...)}
}

func (service *Service) cached(ctx context.Context, key string) ([]Place, bool) {
	if service.cache == nil {
		return nil, false
	}

	payload, found, err := service.cache.Get(ctx, key)
	if err != nil {
		service.logger.WarnContext(ctx, "places_cache_read_failed", slog.Any("error", err))
		return nil, false
	}
	if !found {
		return nil, false
	}

	var places []Place
	if err := json.Unmarshal(payload, &places); err != nil {
		service.logger.WarnContext(ctx, "places_cache_decode_failed", slog.Any("error", err))
		return nil, false
	}
	return places, true
}

func (service *Service) store(ctx context.Context, key string, places []Place) {
	if service.cache == nil {
		return
	}

	payload, err := json.Marshal(places)
	if err != nil {
		return
	}
	if err := service.cache.Set(ctx, key, payload, service.ttl); err != nil {
		service.logger.WarnContext(ctx, "places_cache_write_failed", slog.Any("error", err))
	}
}

// lookupKey identifies a lookup. The origin is rounded to about a kilometre so
// nearby callers share entries.
func lookupKey(request Request) string {
	name := strings.ToLower(request.Query)
	if request.Origin != nil {
		name = fmt.Sprintf("%s|%.2f,%.2f", name, request.Origin.Lat, request.Origin.Lng)
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}
