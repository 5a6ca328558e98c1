// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kalamanch/directory/internal/core/artist"
	"github.com/kalamanch/directory/internal/platform/apperr"
	"github.com/kalamanch/directory/internal/platform/ctxutil"
	"github.com/kalamanch/directory/internal/platform/middleware"
	"github.com/kalamanch/directory/internal/platform/respond"
	"github.com/kalamanch/directory/internal/platform/sec"
)

// CacheResponses is the [Caches.Prunable] namespace of cached search responses.
const CacheResponses = "responses"

// Pruner empties one cache namespace.
type Pruner interface {
	Prune(ctx context.Context) (int, error)
}

type cacheAdmin struct {
	caches map[string]Pruner
}

type pruneReport struct {
	Removed map[string]int `json:"removed"`
}

/*
POST /api/v1/admin/cache/prune.

Description: Drops every cached search response and places lookup.

Response:
  - 200: pruneReport
  - 503: SERVICE_UNAVAILABLE when no cache is configured
*/
func (admin *cacheAdmin) prune(writer http.ResponseWriter, request *http.Request) {
	if len(admin.caches) == 0 {
		respond.Error(writer, request, apperr.ServiceUnavailable("No cache is configured"))
		return
	}

	ctx := request.Context()
	report := pruneReport{Removed: make(map[string]int, len(admin.caches))}

	for name, cache := range admin.caches {
		removed, err := cache.Prune(ctx)
		if err != nil {
			respond.Error(writer, request, apperr.Internal(err))
			return
		}
		report.Removed[name] = removed
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "cache_pruned", slog.Any("removed", report.Removed))
	respond.OK(writer, report)
}

func (admin *cacheAdmin) register(router chi.Router) {
	router.With(middleware.RequireRole(sec.RoleOperator)).Post("/cache/prune", admin.prune)
}

// InvalidateOnReload drops cached search responses whenever artists publishes
// a new snapshot. Without a responses namespace it does nothing.
func InvalidateOnReload(artists *artist.Service, caches Caches, log *slog.Logger) {
	responses, ok := caches.Prunable[CacheResponses]
	if !ok {
		return
	}

	artists.OnReload(func(ctx context.Context, report artist.LoadReport) {
		removed, err := responses.Prune(ctx)
		if err != nil {
			log.WarnContext(ctx, "response_cache_invalidation_failed", slog.Any("error", err))
			return
		}
		log.InfoContext(ctx, "response_cache_invalidated",
			slog.Int("removed", removed),
			slog.Time("snapshot_loaded_at", report.LoadedAt),
		)
	})
}
