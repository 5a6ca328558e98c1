// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command seed loads the built-in artist records into PostgreSQL.
//
// It migrates the schema, validates every record against the built-in
// taxonomy and upserts the valid ones. Running it twice is harmless.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/kalamanch/directory/internal/core/artist"
	"github.com/kalamanch/directory/internal/core/taxonomy"
	"github.com/kalamanch/directory/internal/platform/config"
	"github.com/kalamanch/directory/internal/platform/constants"
	"github.com/kalamanch/directory/internal/platform/migration"
	pgstore "github.com/kalamanch/directory/internal/platform/postgres"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(slog.String("app", constants.AppName+"-seed"))

	cfg, err := config.Load()
	must(log, err, "load configuration")

	if !cfg.UsePostgres() {
		log.Error("startup_failure", slog.String("step", "load configuration"), slog.String("error", "DATABASE_URL is not set"))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer pool.Close()

	tax := taxonomy.Default()
	records := make([]artist.Record, 0, len(artist.SeedRecords()))

	for _, record := range artist.SeedRecords() {
		warnings, err := artist.Validate(&record, tax)
		if err != nil {
			log.Warn("seed_record_skipped", slog.String("artist_id", record.ID), slog.Any("error", err))
			continue
		}
		for _, warning := range warnings {
			log.Info("seed_record_warning", slog.String("artist_id", record.ID), slog.String("warning", warning))
		}
		records = append(records, record)
	}

	var writer artist.Writer = artist.NewPostgresRepository(pool)
	written, err := writer.UpsertRecords(ctx, records)
	if err != nil {
		pool.Close()
		must(log, err, "upsert records")
	}

	log.Info("seed_completed", slog.Int("records", written))
}

func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup_failure", slog.String("step", step), slog.Any("error", err))
		os.Exit(1)
	}
}
