// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/kalamanch/directory/internal/core/taxonomy"
	"github.com/kalamanch/directory/internal/platform/apperr"
	"github.com/kalamanch/directory/internal/platform/metrics"
)

// ErrNoSnapshot is returned when a lookup runs before the first successful load.
var ErrNoSnapshot = errors.New("artist: no snapshot loaded")

// LoadReport summarises one snapshot load.
type LoadReport struct {
	Source   string    `json:"source"`
	Loaded   int       `json:"loaded"`
	Rejected int       `json:"rejected"`
	Warnings int       `json:"warnings"`
	LoadedAt time.Time `json:"loadedAt"`
}

// Service loads records from a [Repository] and serves the active snapshot.
type Service struct {
	repo     Repository
	source   string
	taxonomy *taxonomy.Taxonomy
	store    *Store
	logger   *slog.Logger
	now      func() time.Time

	mu        sync.Mutex
	listeners []ReloadListener
}

// ReloadListener runs after a new snapshot is published, for example to drop
// search responses computed from the previous one.
type ReloadListener func(ctx context.Context, report LoadReport)

// NewService creates a [Service]. source names the repository in logs and reports.
func NewService(repo Repository, source string, tax *taxonomy.Taxonomy, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		source:   source,
		taxonomy: tax,
		store:    &Store{},
		logger:   logger,
		now:      time.Now,
	}
}

/*
Reload reads every record from the repository, validates it and publishes a new
snapshot.

Invalid records and duplicate IDs are rejected one by one and logged; they never
fail the load. A repository error leaves the previous snapshot in place.
*/
func (service *Service) Reload(ctx context.Context) (LoadReport, error) {
	records, err := service.repo.ListRecords(ctx)
	if err != nil {
		service.logger.ErrorContext(ctx, "snapshot_load_failed",
			slog.String("source", service.source),
			slog.Any("error", err),
		)
		return LoadReport{}, fmt.Errorf("artist: load %s snapshot: %w", service.source, err)
	}

	report := LoadReport{Source: service.source, LoadedAt: service.now().UTC()}
	accepted := make([]Record, 0, len(records))
	seen := make(map[string]struct{}, len(records))

	for i := range records {
		record := records[i]

		if _, duplicate := seen[record.ID]; duplicate {
			report.Rejected++
			service.logger.WarnContext(ctx, "snapshot_record_rejected",
				slog.String("artist_id", record.ID),
				slog.String("reason", "duplicate id"),
			)
			continue
		}

		warnings, err := Validate(&record, service.taxonomy)
		if err != nil {
			report.Rejected++
			service.logger.WarnContext(ctx, "snapshot_record_rejected",
				slog.String("artist_id", record.ID),
				slog.Any("details", validationDetails(err)),
			)
			continue
		}

		for _, warning := range warnings {
			report.Warnings++
			service.logger.WarnContext(ctx, "snapshot_record_warning",
				slog.String("artist_id", record.ID),
				slog.String("warning", warning),
			)
		}

		seen[record.ID] = struct{}{}
		accepted = append(accepted, record)
	}

	snapshot := NewSnapshot(accepted, service.source, report.LoadedAt)
	service.store.Publish(snapshot)
	metrics.SetSnapshotSize(snapshot.Len())

	report.Loaded = snapshot.Len()
	service.logger.InfoContext(ctx, "snapshot_loaded",
		slog.String("source", report.Source),
		slog.Int("loaded", report.Loaded),
		slog.Int("rejected", report.Rejected),
		slog.Int("warnings", report.Warnings),
	)

	service.notifyReload(ctx, report)
	return report, nil
}

// OnReload registers listener. Listeners run in registration order, on the
// reloading goroutine, only after a successful publish.
func (service *Service) OnReload(listener ReloadListener) {
	service.mu.Lock()
	defer service.mu.Unlock()
	service.listeners = append(service.listeners, listener)
}

func (service *Service) notifyReload(ctx context.Context, report LoadReport) {
	service.mu.Lock()
	listeners := slices.Clone(service.listeners)
	service.mu.Unlock()

	for _, listener := range listeners {
		listener(ctx, report)
	}
}

// Snapshot returns the active snapshot, or [ErrNoSnapshot].
func (service *Service) Snapshot() (*Snapshot, error) {
	snapshot := service.store.Load()
	if snapshot == nil {
		return nil, ErrNoSnapshot
	}
	return snapshot, nil
}

// Ready reports whether a snapshot has been published.
func (service *Service) Ready() bool {
	return service.store.Ready()
}

// GetArtist returns one record by ID.
func (service *Service) GetArtist(_ context.Context, id string) (*Record, error) {
	snapshot, err := service.Snapshot()
	if err != nil {
		return nil, apperr.ServiceUnavailable("Artist directory is still loading")
	}

	record, ok := snapshot.Find(id)
	if !ok {
		return nil, apperr.NotFound("Artist")
	}
	return &record, nil
}

func validationDetails(err error) any {
	if appError := apperr.As(err); appError != nil && len(appError.Details) > 0 {
		return appError.Details
	}
	return err.Error()
}
