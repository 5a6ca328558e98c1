// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It is the composition root of the HTTP transport (chi router).
  - Domain packages expose chi sub-routers; this package only mounts them.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/kalamanch/directory/internal/core/artist"
	"github.com/kalamanch/directory/internal/core/directory"
	"github.com/kalamanch/directory/internal/core/places"
	"github.com/kalamanch/directory/internal/core/taxonomy"
	"github.com/kalamanch/directory/internal/platform/config"
	"github.com/kalamanch/directory/internal/platform/constants"
	"github.com/kalamanch/directory/internal/platform/metrics"
	"github.com/kalamanch/directory/internal/platform/middleware"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. It fails until the first snapshot loads.
	Readiness http.HandlerFunc

	// Directory serves artist search and suggestions.
	Directory *directory.Handler

	// Artists serves single listings and owns the snapshot admin routes.
	Artists *artist.Handler

	// Taxonomy serves the location and category reference data.
	Taxonomy *taxonomy.Handler

	// Places serves the external places lookup.
	Places *places.Handler
}

// Caches holds the optional Redis-backed stores. Nil fields disable the
// matching feature.
type Caches struct {
	// Responses replays search responses for ResponseTTL.
	Responses   middleware.ResponseCache
	ResponseTTL time.Duration

	// Prunable lists the namespaces emptied by the admin prune endpoint.
	Prunable map[string]Pruner
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
//
// ctx bounds background work started by middleware (the rate-limit sweeper).
func NewServer(ctx context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, caches Caches, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(metrics.Middleware())
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	// # Application API
	r.Route("/api/v1", func(api chi.Router) {
		api.With(middleware.CacheResponses(caches.Responses, caches.ResponseTTL)).
			Mount("/search", h.Directory.Routes())
		api.Mount("/artists", h.Artists.Routes())
		api.Mount("/places", h.Places.Routes())
		api.Mount("/locations", h.Taxonomy.LocationRoutes())
		api.Mount("/categories", h.Taxonomy.CategoryRoutes())

		// # Operations
		api.Route("/admin", func(admin chi.Router) {
			h.Artists.RegisterAdminRoutes(admin)
			(&cacheAdmin{caches: caches.Prunable}).register(admin)
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Handler exposes the router, for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
