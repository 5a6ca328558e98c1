// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalamanch/directory/internal/core/artist"
	"github.com/kalamanch/directory/internal/core/taxonomy"
	"github.com/kalamanch/directory/pkg/pointer"
)

/*
TestRecord_Defaults checks the substitution applied to missing optional fields.
*/
func TestRecord_Defaults(t *testing.T) {
	var record artist.Record

	assert.Zero(t, record.Price())
	assert.Zero(t, record.Years())
	assert.Zero(t, record.ViewCount())
	assert.Zero(t, record.BookingCount())
	assert.Empty(t, record.SubcategoryName())
	assert.False(t, record.HasJoinedDate())
	assert.Equal(t, time.Unix(0, 0).UTC(), record.Joined())

	_, ok := record.Position()
	assert.False(t, ok)

	record.JoinedDate = "not-a-date"
	assert.False(t, record.HasJoinedDate())
	assert.Equal(t, int64(0), record.Joined().Unix())

	record.JoinedDate = "2023-01-15"
	assert.True(t, record.HasJoinedDate())
	assert.Equal(t, time.January, record.Joined().Month())
}

func TestBadge_Tier(t *testing.T) {
	assert.Less(t, artist.BadgeSilver.Tier(), artist.BadgeGold.Tier())
	assert.Less(t, artist.BadgeGold.Tier(), artist.BadgeGolden.Tier())
	assert.Zero(t, artist.Badge("Platinum").Tier())
}

/*
TestValidate covers hard rejections and soft warnings.
*/
func TestValidate(t *testing.T) {
	tax := taxonomy.Default()

	tests := []struct {
		name      string
		mutate    func(record *artist.Record)
		wantErr   bool
		wantWarns int
	}{
		{
			name:   "valid",
			mutate: func(*artist.Record) {},
		},
		{
			name:    "rating_above_five",
			mutate:  func(record *artist.Record) { record.Rating = 5.1 },
			wantErr: true,
		},
		{
			name:    "negative_experience",
			mutate:  func(record *artist.Record) { record.Experience = pointer.To(-2) },
			wantErr: true,
		},
		{
			name:    "unknown_category",
			mutate:  func(record *artist.Record) { record.Category = "Juggler" },
			wantErr: true,
		},
		{
			name:    "blank_skill",
			mutate:  func(record *artist.Record) { record.Skills = []string{"Sufi", " "} },
			wantErr: true,
		},
		{
			name:    "half_geo",
			mutate:  func(record *artist.Record) { record.GeoLng = nil },
			wantErr: true,
		},
		{
			name:    "bad_availability",
			mutate:  func(record *artist.Record) { record.Availability = "Sometimes" },
			wantErr: true,
		},
		{
			name:      "unregistered_subcategory",
			mutate:    func(record *artist.Record) { record.Subcategory = pointer.To("Opera") },
			wantWarns: 1,
		},
		{
			name:      "unknown_state",
			mutate:    func(record *artist.Record) { record.State = "Punjab" },
			wantWarns: 1,
		},
		{
			name:      "district_outside_state",
			mutate:    func(record *artist.Record) { record.District = "Pune" },
			wantWarns: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := artist.SeedRecords()[0]
			tt.mutate(&record)

			warnings, err := artist.Validate(&record, tax)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, warnings, tt.wantWarns)
		})
	}
}
