// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package directory

import (
	"context"
	"log/slog"
	"time"

	"github.com/kalamanch/directory/internal/core/artist"
	"github.com/kalamanch/directory/internal/core/taxonomy"
	"github.com/kalamanch/directory/internal/platform/apperr"
	"github.com/kalamanch/directory/internal/platform/ctxutil"
	"github.com/kalamanch/directory/internal/platform/metrics"
)

// SnapshotSource provides the active record snapshot.
type SnapshotSource interface {
	Snapshot() (*artist.Snapshot, error)
}

// Service runs searches against the active snapshot.
type Service struct {
	artists  SnapshotSource
	taxonomy *taxonomy.Taxonomy
	engine   Engine
}

func NewService(artists SnapshotSource, tax *taxonomy.Taxonomy, engine Engine) *Service {
	return &Service{
		artists:  artists,
		taxonomy: tax,
		engine:   engine,
	}
}

// Engine returns the tunables the service was built with.
func (service *Service) Engine() Engine {
	return service.engine
}

// Search filters, ranks and paginates the active snapshot.
func (service *Service) Search(ctx context.Context, query Query) (Results, error) {
	snapshot, err := service.snapshot()
	if err != nil {
		return Results{}, err
	}

	logger := ctxutil.GetLogger(ctx)
	if query.HasGeo && !query.Geo.OK() {
		logger.InfoContext(ctx, "search_geolocation_unavailable",
			slog.String("reason", query.Geo.Reason()),
		)
	}

	startTime := time.Now()
	hits := service.engine.Filter(snapshot.Records(), query.Criteria)
	ranked := service.engine.Rank(hits, query.Sort)
	results := Paginate(ranked, query.Page)

	metrics.ObserveSearch(results.TotalResults)
	logger.InfoContext(ctx, "search_completed",
		slog.Int("total_results", results.TotalResults),
		slog.Int("returned", len(results.Results)),
		slog.Int("page", results.Page),
		slog.String("sort", string(query.Sort)),
		slog.Bool("radius", query.Criteria.RadiusActive()),
		slog.Duration("took", time.Since(startTime)),
	)

	return results, nil
}

// Suggest returns type-ahead suggestions for text.
func (service *Service) Suggest(_ context.Context, text string) ([]Suggestion, error) {
	snapshot, err := service.snapshot()
	if err != nil {
		return nil, err
	}
	return Suggest(text, service.taxonomy, snapshot.Records()), nil
}

// NewSession starts an interactive session with the service's tunables.
func (service *Service) NewSession() *Session {
	return NewSession(service.engine)
}

func (service *Service) snapshot() (*artist.Snapshot, error) {
	snapshot, err := service.artists.Snapshot()
	if err != nil {
		return nil, apperr.ServiceUnavailable("Artist directory is still loading")
	}
	return snapshot, nil
}
