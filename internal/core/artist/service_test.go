// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalamanch/directory/internal/core/artist"
	"github.com/kalamanch/directory/internal/core/taxonomy"
	"github.com/kalamanch/directory/internal/platform/apperr"
	"github.com/kalamanch/directory/pkg/pointer"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

/*
TestService_ReloadSeed publishes the built-in fixture in its original order.
*/
func TestService_ReloadSeed(t *testing.T) {
	service := artist.NewService(artist.NewSeedRepository(), "seed", taxonomy.Default(), discardLogger())
	assert.False(t, service.Ready())

	report, err := service.Reload(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 12, report.Loaded)
	assert.Zero(t, report.Rejected)
	assert.Positive(t, report.Warnings, "Mohali is outside the location taxonomy")
	assert.True(t, service.Ready())

	snapshot, err := service.Snapshot()
	require.NoError(t, err)
	records := snapshot.Records()
	require.Len(t, records, 12)
	assert.Equal(t, "d1", records[0].ID)
	assert.Equal(t, "d12", records[11].ID)
	assert.Equal(t, "seed", snapshot.Source())
}

/*
TestService_ReloadRejectsIndividually drops invalid and duplicate records
without failing the load.
*/
func TestService_ReloadRejectsIndividually(t *testing.T) {
	records := artist.SeedRecords()[:3]

	badRating := artist.SeedRecords()[3]
	badRating.Rating = 5.5

	badPrice := artist.SeedRecords()[4]
	badPrice.StartingPrice = pointer.To(-1)

	duplicate := artist.SeedRecords()[0]
	duplicate.Name = "Impostor"

	records = append(records, badRating, badPrice, duplicate)

	service := artist.NewService(&artist.StaticRepository{Records: records}, "static", taxonomy.Default(), discardLogger())
	report, err := service.Reload(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, report.Loaded)
	assert.Equal(t, 3, report.Rejected)

	record, err := service.GetArtist(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, "Aarav Singh", record.Name)
}

/*
TestService_ReloadFailureKeepsSnapshot leaves the previous snapshot active
when the repository fails.
*/
func TestService_ReloadFailureKeepsSnapshot(t *testing.T) {
	repository := &artist.StaticRepository{Records: artist.SeedRecords()}
	service := artist.NewService(repository, "static", taxonomy.Default(), discardLogger())

	_, err := service.Reload(context.Background())
	require.NoError(t, err)

	repository.Err = errors.New("connection refused")
	_, err = service.Reload(context.Background())
	require.Error(t, err)

	snapshot, err := service.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 12, snapshot.Len())
}

/*
TestService_OnReload notifies listeners after successful loads only.
*/
func TestService_OnReload(t *testing.T) {
	repository := &artist.StaticRepository{Records: artist.SeedRecords()}
	service := artist.NewService(repository, "static", taxonomy.Default(), discardLogger())

	var reports []artist.LoadReport
	service.OnReload(func(_ context.Context, report artist.LoadReport) {
		reports = append(reports, report)
	})

	_, err := service.Reload(context.Background())
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, 12, reports[0].Loaded)

	repository.Err = errors.New("connection refused")
	_, err = service.Reload(context.Background())
	require.Error(t, err)
	assert.Len(t, reports, 1)
}

/*
TestService_GetArtist maps lookups onto application errors.
*/
func TestService_GetArtist(t *testing.T) {
	service := artist.NewService(artist.NewSeedRepository(), "seed", taxonomy.Default(), discardLogger())

	_, err := service.GetArtist(context.Background(), "d1")
	require.Error(t, err)
	assert.Equal(t, "SERVICE_UNAVAILABLE", apperr.As(err).Code)

	_, err = service.Reload(context.Background())
	require.NoError(t, err)

	_, err = service.GetArtist(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestSnapshot_FirstDuplicateWins keeps the first record for a repeated ID.
*/
func TestSnapshot_FirstDuplicateWins(t *testing.T) {
	first := artist.Record{ID: "a", Name: "First"}
	second := artist.Record{ID: "a", Name: "Second"}

	var nilSnapshot *artist.Snapshot
	assert.Zero(t, nilSnapshot.Len())

	snapshot := artist.NewSnapshot([]artist.Record{first, second}, "test", artist.SeedRecords()[0].Joined())
	assert.Equal(t, 1, snapshot.Len())

	found, ok := snapshot.Find("a")
	require.True(t, ok)
	assert.Equal(t, "First", found.Name)
}
