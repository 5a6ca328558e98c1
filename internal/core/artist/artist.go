// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package artist owns the directory's artist records and the immutable snapshot
every search runs against.

Records are loaded once from a [Repository] (built-in seed data or PostgreSQL),
validated, and published as a [Snapshot]. A reload builds a fresh snapshot and
swaps it atomically; in-flight searches keep the snapshot they started with.
*/
package artist

import (
	"time"

	"github.com/kalamanch/directory/internal/core/geo"
	"github.com/kalamanch/directory/pkg/pointer"
)

// # Enumerations

// Availability says where an artist performs.
type Availability string

const (
	AvailabilityOnline  Availability = "Online"
	AvailabilityOffline Availability = "Offline"
	AvailabilityBoth    Availability = "Both"
)

// Badge is a strictly ordered quality tier: Silver < Gold < Golden.
type Badge string

const (
	BadgeSilver Badge = "Silver"
	BadgeGold   Badge = "Gold"
	BadgeGolden Badge = "Golden"
)

// Tier returns the badge's position in the ordering, 0 for an unknown badge.
func (b Badge) Tier() int {
	switch b {
	case BadgeSilver:
		return 1
	case BadgeGold:
		return 2
	case BadgeGolden:
		return 3
	default:
		return 0
	}
}

// # Record

// Record is one directory listing: an individual artist, group or studio.
//
// Optional fields are pointers. Predicates that compare them substitute a
// documented default (see the accessor methods) when they are nil.
type Record struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Subcategory *string `json:"subcategory,omitempty"`

	City     string  `json:"city"`
	State    string  `json:"state"`
	District string  `json:"district"`
	Block    *string `json:"block,omitempty"`
	Pincode  *string `json:"pincode,omitempty"`

	// Lat and Lng place the record on the 0–100 display canvas.
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`

	// GeoLat and GeoLng are WGS84 coordinates used for distance search.
	GeoLat *float64 `json:"geoLat,omitempty"`
	GeoLng *float64 `json:"geoLng,omitempty"`

	StartingPrice *int `json:"startingPrice,omitempty"`
	Experience    *int `json:"experience,omitempty"`

	Rating   float64 `json:"rating"`
	Reviews  *int    `json:"reviews,omitempty"`
	Verified bool    `json:"verified"`
	Badge    *Badge  `json:"badge,omitempty"`

	Views      *int   `json:"views,omitempty"`
	Bookings   *int   `json:"bookings,omitempty"`
	IsTrending *bool  `json:"isTrending,omitempty"`
	JoinedDate string `json:"joinedDate,omitempty"`

	Availability Availability `json:"availability"`
	Skills       []string     `json:"skills"`
	Description  *string      `json:"description,omitempty"`
	ImageURL     string       `json:"imageUrl"`
}

// Field names used in validation errors.
const (
	FieldID            = "id"
	FieldName          = "name"
	FieldCategory      = "category"
	FieldSubcategory   = "subcategory"
	FieldState         = "state"
	FieldDistrict      = "district"
	FieldRating        = "rating"
	FieldStartingPrice = "startingPrice"
	FieldExperience    = "experience"
	FieldAvailability  = "availability"
	FieldSkills        = "skills"
	FieldJoinedDate    = "joinedDate"
	FieldImageURL      = "imageUrl"
	FieldGeo           = "geo"
)

// # Default Substitution

// Price returns the starting price, 0 when missing.
func (r *Record) Price() int {
	return pointer.Val(r.StartingPrice)
}

// Years returns the experience in years, 0 when missing.
func (r *Record) Years() int {
	return pointer.Val(r.Experience)
}

// ViewCount returns the view count, 0 when missing.
func (r *Record) ViewCount() int {
	return pointer.Val(r.Views)
}

// BookingCount returns the booking count, 0 when missing.
func (r *Record) BookingCount() int {
	return pointer.Val(r.Bookings)
}

// SubcategoryName returns the subcategory, "" when missing.
func (r *Record) SubcategoryName() string {
	return pointer.Val(r.Subcategory)
}

// BlockName returns the block, "" when missing.
func (r *Record) BlockName() string {
	return pointer.Val(r.Block)
}

// PincodeValue returns the pincode, "" when missing.
func (r *Record) PincodeValue() string {
	return pointer.Val(r.Pincode)
}

// Joined returns the joined date, the Unix epoch when missing or unparsable.
func (r *Record) Joined() time.Time {
	if r.JoinedDate == "" {
		return time.Unix(0, 0).UTC()
	}

	joined, err := time.Parse(time.DateOnly, r.JoinedDate)
	if err != nil {
		return time.Unix(0, 0).UTC()
	}
	return joined
}

// HasJoinedDate reports whether a parsable joined date is present.
func (r *Record) HasJoinedDate() bool {
	if r.JoinedDate == "" {
		return false
	}
	_, err := time.Parse(time.DateOnly, r.JoinedDate)
	return err == nil
}

// Position returns the real-world coordinates and whether both are present.
func (r *Record) Position() (geo.Point, bool) {
	if r.GeoLat == nil || r.GeoLng == nil {
		return geo.Point{}, false
	}
	return geo.Point{Lat: *r.GeoLat, Lng: *r.GeoLng}, true
}
