// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Kalamanch artist directory API.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Open the snapshot source (built-in seed, or PostgreSQL + migrations).
//  4. Connect to Redis when configured.
//  5. Load the first artist snapshot.
//  6. Wire domain services and HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/kalamanch/directory/internal/api"
	"github.com/kalamanch/directory/internal/core/artist"
	"github.com/kalamanch/directory/internal/core/directory"
	"github.com/kalamanch/directory/internal/core/places"
	"github.com/kalamanch/directory/internal/core/taxonomy"
	"github.com/kalamanch/directory/internal/platform/cache"
	"github.com/kalamanch/directory/internal/platform/config"
	"github.com/kalamanch/directory/internal/platform/constants"
	"github.com/kalamanch/directory/internal/platform/middleware"
	"github.com/kalamanch/directory/internal/platform/migration"
	pgstore "github.com/kalamanch/directory/internal/platform/postgres"
	redisstore "github.com/kalamanch/directory/internal/platform/redis"
	"github.com/kalamanch/directory/internal/platform/sec"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("snapshot_source", cfg.SnapshotSource),
	)

	// Root context: cancelled on shutdown, stops background sweepers.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	// Startup deadline so misconfiguration fails fast instead of hanging.
	startupCtx, startupCancel := context.WithTimeout(rootCtx, 30*time.Second)
	defer startupCancel()

	health := api.HealthDependencies{}
	tax := taxonomy.Default()

	// ── 3. Snapshot Source ────────────────────────────────────────────────
	var repository artist.Repository = artist.NewSeedRepository()

	if cfg.SnapshotSource == config.SourcePostgres {
		pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("postgres_pool_closing")
			pool.Close()
		}()

		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log, migration.Options{Verbose: cfg.Debug}), "run migrations")

		repository = artist.NewPostgresRepository(pool)
		health.CheckDatabase = func(ctx context.Context) error {
			return pgstore.Ping(ctx, pool)
		}
	}

	// ── 4. Redis (optional) ───────────────────────────────────────────────
	var rdb *goredis.Client
	if cfg.RedisURL != "" {
		rdb, err = redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("redis_client_closing")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_failed", slog.Any("error", cerr))
			}
		}()

		health.CheckCache = func(ctx context.Context) error {
			return redisstore.Ping(ctx, rdb)
		}
	}

	// ── 5. First Snapshot ─────────────────────────────────────────────────
	artistService := artist.NewService(repository, cfg.SnapshotSource, tax, log)
	if _, err := artistService.Reload(startupCtx); err != nil {
		// /ready stays red until an admin reload succeeds.
		log.Error("initial_snapshot_failed", slog.Any("error", err))
	}

	health.CheckSnapshot = func(context.Context) error {
		_, err := artistService.Snapshot()
		return err
	}

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	engine := directory.DefaultEngine()
	engine.Thresholds.NewJoinerSince = cfg.NewJoinerCutoff()

	directoryService := directory.NewService(artistService, tax, engine)

	placesOptions := []places.Option{places.WithTimeout(cfg.PlacesTimeout)}
	caches := api.Caches{ResponseTTL: cfg.CacheTTL, Prunable: map[string]api.Pruner{}}

	if rdb != nil {
		responseStore := cache.NewStore(rdb, constants.RedisPrefixResponse)
		placesStore := cache.NewStore(rdb, constants.RedisPrefixPlaces)

		caches.Responses = responseStore
		caches.Prunable[api.CacheResponses] = responseStore
		caches.Prunable["places"] = placesStore
		placesOptions = append(placesOptions, places.WithCache(placesStore, cfg.CacheTTL))
	}

	// Search responses must not outlive the snapshot they were computed from.
	api.InvalidateOnReload(artistService, caches, log)

	var provider places.Provider
	if client := places.NewGoogleClient(cfg.PlacesEndpoint, cfg.PlacesAPIKey, cfg.PlacesTimeout); client != nil {
		provider = client
	} else {
		log.Warn("places_provider_disabled", slog.String("reason", "PLACES_API_KEY is not set"))
	}
	placesService := places.NewService(provider, log, placesOptions...)

	var verifier middleware.TokenVerifier
	if cfg.AdminTokenSecret != "" {
		tokens, err := sec.NewTokenService(cfg.AdminTokenSecret, constants.AuthIssuer)
		must(log, err, "initialize token service")
		verifier = tokens
	} else {
		log.Warn("admin_api_disabled", slog.String("reason", "ADMIN_TOKEN_SECRET is not set"))
	}

	liveness, readiness := api.NewHealthHandlers(health, log)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Directory: directory.NewHandler(directoryService),
		Artists:   artist.NewHandler(artistService),
		Taxonomy:  taxonomy.NewHandler(tax),
		Places:    places.NewHandler(placesService),
	}

	// ── 7. HTTP Server & Graceful Shutdown ────────────────────────────────
	server := api.NewServer(rootCtx, cfg, log, verifier, caches, handlers)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_failed", slog.Any("error", err))
	}

	log.Info("server_shutting_down", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_failed", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped")
}

func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
