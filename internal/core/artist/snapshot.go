// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"sync/atomic"
	"time"
)

// Snapshot is an immutable, validated set of records.
//
// Callers must treat the slice returned by [Snapshot.Records] as read-only.
type Snapshot struct {
	records  []Record
	byID     map[string]int
	source   string
	loadedAt time.Time
}

// NewSnapshot builds a snapshot over records, keeping their order.
// A duplicate ID keeps its first occurrence.
func NewSnapshot(records []Record, source string, loadedAt time.Time) *Snapshot {
	snapshot := &Snapshot{
		records:  make([]Record, 0, len(records)),
		byID:     make(map[string]int, len(records)),
		source:   source,
		loadedAt: loadedAt,
	}

	for _, record := range records {
		if _, exists := snapshot.byID[record.ID]; exists {
			continue
		}
		snapshot.byID[record.ID] = len(snapshot.records)
		snapshot.records = append(snapshot.records, record)
	}

	return snapshot
}

// Records returns the records in insertion order.
func (s *Snapshot) Records() []Record {
	if s == nil {
		return nil
	}
	return s.records
}

// Len returns the number of records.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// Find returns a copy of the record with the given ID.
func (s *Snapshot) Find(id string) (Record, bool) {
	if s == nil {
		return Record{}, false
	}
	index, ok := s.byID[id]
	if !ok {
		return Record{}, false
	}
	return s.records[index], true
}

func (s *Snapshot) Source() string { return s.source }

func (s *Snapshot) LoadedAt() time.Time { return s.loadedAt }

// Store publishes the active snapshot. Readers never block; a reload swaps the
// pointer and searches already running keep the snapshot they loaded.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// Load returns the active snapshot, nil before the first publish.
func (store *Store) Load() *Snapshot {
	return store.current.Load()
}

// Publish replaces the active snapshot.
func (store *Store) Publish(snapshot *Snapshot) {
	store.current.Store(snapshot)
}

// Ready reports whether a snapshot has been published.
func (store *Store) Ready() bool {
	return store.current.Load() != nil
}
