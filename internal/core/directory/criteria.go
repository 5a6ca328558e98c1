// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package directory is the artist search engine: filtering, ranking, distance
search and the query interface built on top of them.

The engine is a pure pipeline over an [artist.Snapshot]:

	Criteria -> Filter -> Rank -> page slice

[Filter] and [Rank] never perform I/O, never mutate their input and never
fail. Geolocation and places lookups are resolved outside the engine and
passed in as plain values.
*/
package directory

import (
	"slices"
	"strings"
	"time"

	"github.com/kalamanch/directory/internal/core/artist"
	"github.com/kalamanch/directory/internal/core/geo"
)

// # Enumerations

// Availability is the availability constraint of a search. The zero value
// accepts every record.
type Availability string

const (
	AvailabilityAny     Availability = ""
	AvailabilityOnline  Availability = "Online"
	AvailabilityOffline Availability = "Offline"
)

// ParseAvailability accepts "Online" and "Offline" case-insensitively.
// Anything else means no constraint.
func ParseAvailability(value string) Availability {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "online":
		return AvailabilityOnline
	case "offline":
		return AvailabilityOffline
	default:
		return AvailabilityAny
	}
}

// QuickFilter is a one-tap refinement chip.
type QuickFilter string

const (
	QuickVerified     QuickFilter = "verified"
	QuickTopRated     QuickFilter = "topRated"
	QuickAffordable   QuickFilter = "affordable"
	QuickNewJoiners   QuickFilter = "newJoiners"
	QuickAvailableNow QuickFilter = "availableNow"
)

// QuickFilters lists every chip in display order.
var QuickFilters = []QuickFilter{QuickVerified, QuickTopRated, QuickAffordable, QuickNewJoiners, QuickAvailableNow}

// ParseQuickFilter resolves a chip by its identifier or its display label
// ("Top Rated", "new_joiners"...).
func ParseQuickFilter(value string) (QuickFilter, bool) {
	key := strings.NewReplacer(" ", "", "_", "", "-", "").Replace(strings.ToLower(value))
	for _, quick := range QuickFilters {
		if strings.ToLower(string(quick)) == key {
			return quick, true
		}
	}
	if key == "verifiedonly" {
		return QuickVerified, true
	}
	return "", false
}

// # Thresholds

// Thresholds are the fixed cut-offs behind the quick filters.
type Thresholds struct {
	TopRatedMin    float64
	AffordableMax  int
	NewJoinerSince time.Time
}

// DefaultThresholds are the production cut-offs.
var DefaultThresholds = Thresholds{
	TopRatedMin:    4.5,
	AffordableMax:  10000,
	NewJoinerSince: time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
}

// # Criteria

// Criteria is the full set of constraints of one search. It is a value: build
// a fresh one per query and never share it.
//
// Empty strings, nil bounds and a zero MinRating mean "no constraint".
type Criteria struct {
	Query string

	State    string
	District string
	Block    string
	Pincode  string

	Category    string
	Subcategory string

	MinPrice      *int
	MaxPrice      *int
	MinExperience *int
	MaxExperience *int
	MinRating     float64

	Availability Availability
	Skills       []string
	Quick        []QuickFilter

	// Origin annotates every hit with its distance. RadiusKm only applies
	// when Origin is set.
	Origin   *geo.Point
	RadiusKm *float64
}

// RadiusActive reports whether a distance constraint applies.
func (c Criteria) RadiusActive() bool {
	return c.Origin != nil && c.RadiusKm != nil
}

// Has reports whether a quick filter is enabled.
func (c Criteria) Has(quick QuickFilter) bool {
	return slices.Contains(c.Quick, quick)
}

// WithQuick returns a copy with the quick filter enabled.
func (c Criteria) WithQuick(quick QuickFilter) Criteria {
	if c.Has(quick) {
		return c
	}
	c.Quick = append(slices.Clone(c.Quick), quick)
	return c
}

/*
Normalize resolves conflicting constraints and returns the canonical criteria.

  - A radius without an origin, or a negative radius, is dropped.
  - An active radius search clears State, District and Block: location
    taxonomy and distance never constrain the same search.
  - Blank skill tags and duplicate quick filters are removed.
*/
func (c Criteria) Normalize() Criteria {
	c.Query = strings.TrimSpace(c.Query)

	if c.RadiusKm != nil && (c.Origin == nil || *c.RadiusKm < 0) {
		c.RadiusKm = nil
	}

	if c.RadiusActive() {
		c.State, c.District, c.Block = "", "", ""
	}

	skills := make([]string, 0, len(c.Skills))
	for _, skill := range c.Skills {
		if skill = strings.TrimSpace(skill); skill != "" {
			skills = append(skills, skill)
		}
	}
	c.Skills = skills

	quick := make([]QuickFilter, 0, len(c.Quick))
	for _, filter := range c.Quick {
		if !slices.Contains(quick, filter) {
			quick = append(quick, filter)
		}
	}
	c.Quick = quick

	return c
}

// matchesAvailability: Both always passes; otherwise the values must be equal.
func (c Criteria) matchesAvailability(record *artist.Record) bool {
	if c.Availability == AvailabilityAny || record.Availability == artist.AvailabilityBoth {
		return true
	}
	return string(record.Availability) == string(c.Availability)
}
