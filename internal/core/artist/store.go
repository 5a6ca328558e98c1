// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import "context"

// Repository is a source of artist records.
//
// ListRecords must return records in a stable insertion order; ranking ties
// are broken on that order.
type Repository interface {
	ListRecords(ctx context.Context) ([]Record, error)
}

// Writer persists records. Only storage back-ends that can be seeded implement it.
type Writer interface {
	UpsertRecords(ctx context.Context, records []Record) (int, error)
}

// SeedRepository serves the built-in demo listings.
type SeedRepository struct{}

// NewSeedRepository creates a [SeedRepository].
func NewSeedRepository() *SeedRepository {
	return &SeedRepository{}
}

// ListRecords implements [Repository].
func (SeedRepository) ListRecords(context.Context) ([]Record, error) {
	return SeedRecords(), nil
}

// StaticRepository serves a fixed slice of records. Useful for tests and tools.
type StaticRepository struct {
	Records []Record
	Err     error
}

// ListRecords implements [Repository].
func (repository *StaticRepository) ListRecords(context.Context) ([]Record, error) {
	if repository.Err != nil {
		return nil, repository.Err
	}
	return append([]Record(nil), repository.Records...), nil
}
