// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kalamanch/directory/internal/platform/apperr"
	"github.com/kalamanch/directory/internal/platform/ctxutil"
	"github.com/kalamanch/directory/internal/platform/middleware"
	requestutil "github.com/kalamanch/directory/internal/platform/request"
	"github.com/kalamanch/directory/internal/platform/respond"
	"github.com/kalamanch/directory/internal/platform/sec"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes serves the public record lookup.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/{id}", handler.getArtist)
	return router
}

// RegisterAdminRoutes mounts snapshot maintenance. Callers must have
// authenticated the request before these routes run.
func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.With(middleware.RequireRole(sec.RoleAdmin)).Post("/snapshot/reload", handler.reloadSnapshot)
	router.With(middleware.RequireRole(sec.RoleOperator)).Get("/snapshot", handler.describeSnapshot)
}

func (handler *Handler) getArtist(writer http.ResponseWriter, request *http.Request) {
	record, err := handler.service.GetArtist(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, record)
}

func (handler *Handler) reloadSnapshot(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	ctx := request.Context()
	ctxutil.GetLogger(ctx).InfoContext(ctx, "snapshot_reload_requested", slog.String("operator", claims.Operator()))

	report, err := handler.service.Reload(ctx)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, report)
}

type snapshotInfo struct {
	Source   string `json:"source"`
	Records  int    `json:"records"`
	LoadedAt string `json:"loadedAt"`
}

func (handler *Handler) describeSnapshot(writer http.ResponseWriter, request *http.Request) {
	snapshot, err := handler.service.Snapshot()
	if err != nil {
		respond.Error(writer, request, apperr.ServiceUnavailable("Artist directory is still loading"))
		return
	}
	respond.OK(writer, snapshotInfo{
		Source:   snapshot.Source(),
		Records:  snapshot.Len(),
		LoadedAt: snapshot.LoadedAt().Format(time.RFC3339),
	})
}
