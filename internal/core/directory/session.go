// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package directory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/kalamanch/directory/internal/core/artist"
	"github.com/kalamanch/directory/internal/core/geo"
	"github.com/kalamanch/directory/internal/core/places"
	"github.com/kalamanch/directory/pkg/latest"
	"github.com/kalamanch/directory/pkg/pagination"
)

/*
Session holds the inputs of one interactive search (a browsing user) and builds
a fresh [Criteria] from them on every call to [Session.Results].

It enforces the selection cascade:

  - changing the state clears district and block;
  - changing the district clears the block;
  - changing the category clears the subcategory;
  - activating a radius clears state, district and block;
  - selecting a state or district clears the radius.

Geolocation fixes and places results arrive asynchronously. Each request takes
a ticket first; only the newest ticket's result is applied.

A Session is safe for concurrent use.
*/
type Session struct {
	mu       sync.Mutex
	engine   Engine
	inputs   Criteria
	radiusKm *float64
	sort     SortMode
	page     pagination.Params

	fix    latest.Slot[geo.Fix]
	places latest.Slot[places.Result]
}

// NewSession creates an empty session.
func NewSession(engine Engine) *Session {
	return &Session{
		engine: engine,
		sort:   SortRecommended,
		page:   pagination.Params{Page: pagination.DefaultPage, Limit: pagination.DefaultLimit},
	}
}

// # Text & Taxonomy

func (s *Session) SetQuery(text string) {
	s.update(func() { s.inputs.Query = text })
}

// SetState selects a state. A different state clears district and block, and
// any non-empty state clears the radius.
func (s *Session) SetState(state string) {
	s.update(func() {
		if state != s.inputs.State {
			s.inputs.District, s.inputs.Block = "", ""
		}
		s.inputs.State = state
		if state != "" {
			s.radiusKm = nil
		}
	})
}

// SetDistrict selects a district. A different district clears the block, and
// any non-empty district clears the radius.
func (s *Session) SetDistrict(district string) {
	s.update(func() {
		if district != s.inputs.District {
			s.inputs.Block = ""
		}
		s.inputs.District = district
		if district != "" {
			s.radiusKm = nil
		}
	})
}

func (s *Session) SetBlock(block string) {
	s.update(func() { s.inputs.Block = block })
}

func (s *Session) SetPincode(pincode string) {
	s.update(func() { s.inputs.Pincode = pincode })
}

// SetCategory selects a category. A different category clears the subcategory.
func (s *Session) SetCategory(category string) {
	s.update(func() {
		if category != s.inputs.Category {
			s.inputs.Subcategory = ""
		}
		s.inputs.Category = category
	})
}

func (s *Session) SetSubcategory(subcategory string) {
	s.update(func() { s.inputs.Subcategory = subcategory })
}

// # Refinements

func (s *Session) SetPriceRange(low, high *int) {
	s.update(func() { s.inputs.MinPrice, s.inputs.MaxPrice = low, high })
}

func (s *Session) SetExperienceRange(low, high *int) {
	s.update(func() { s.inputs.MinExperience, s.inputs.MaxExperience = low, high })
}

func (s *Session) SetMinRating(rating float64) {
	s.update(func() { s.inputs.MinRating = rating })
}

func (s *Session) SetAvailability(availability Availability) {
	s.update(func() { s.inputs.Availability = availability })
}

func (s *Session) SetSkills(skills ...string) {
	s.update(func() { s.inputs.Skills = slices.Clone(skills) })
}

// ToggleQuick flips a quick filter and reports whether it is now enabled.
func (s *Session) ToggleQuick(quick QuickFilter) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index := slices.Index(s.inputs.Quick, quick); index >= 0 {
		s.inputs.Quick = slices.Delete(slices.Clone(s.inputs.Quick), index, index+1)
		return false
	}
	s.inputs = s.inputs.WithQuick(quick)
	return true
}

func (s *Session) SetSort(mode SortMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sort = mode
}

// SetPage selects the page window. Non-positive values fall back to defaults.
func (s *Session) SetPage(page, limit int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if page < 1 {
		page = pagination.DefaultPage
	}
	if limit < 1 {
		limit = pagination.DefaultLimit
	}
	s.page = pagination.Params{Page: page, Limit: min(limit, pagination.MaxLimit)}
}

// # Distance Search

// SetRadius activates a radius search, or deactivates it when km is nil.
// Activation clears state, district and block.
func (s *Session) SetRadius(km *float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if km == nil {
		s.radiusKm = nil
		return
	}

	radius := *km
	s.radiusKm = &radius
	s.inputs.State, s.inputs.District, s.inputs.Block = "", "", ""
}

// BeginLocate issues a ticket for a geolocation request.
func (s *Session) BeginLocate() latest.Ticket {
	return s.fix.Begin()
}

// ApplyFix records a geolocation outcome if ticket is still current.
// A failed fix disables the radius search. It reports whether the fix was applied.
func (s *Session) ApplyFix(ticket latest.Ticket, fix geo.Fix) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.fix.Commit(ticket, fix) {
		return false
	}
	if !fix.OK() {
		s.radiusKm = nil
	}
	return true
}

// Locate resolves the caller's position through locator and applies it.
func (s *Session) Locate(ctx context.Context, locator geo.Locator, timeout time.Duration) geo.Fix {
	ticket := s.BeginLocate()
	fix := geo.Resolve(ctx, locator, timeout)
	s.ApplyFix(ticket, fix)
	return fix
}

// GeoFailure returns the reason of the last applied fix, "" when it succeeded
// or none was applied.
func (s *Session) GeoFailure() string {
	fix, ok := s.fix.Load()
	if !ok {
		return ""
	}
	return fix.Reason()
}

// # Places

// BeginPlaces issues a ticket for a places lookup.
func (s *Session) BeginPlaces() latest.Ticket {
	return s.places.Begin()
}

// ApplyPlaces records a places result if ticket is still current.
func (s *Session) ApplyPlaces(ticket latest.Ticket, result places.Result) bool {
	return s.places.Commit(ticket, result)
}

// Places returns the last applied places result.
func (s *Session) Places() (places.Result, bool) {
	return s.places.Load()
}

// # Evaluation

// Criteria returns a fresh, normalised copy of the current inputs.
func (s *Session) Criteria() Criteria {
	s.mu.Lock()
	defer s.mu.Unlock()

	criteria := s.inputs
	criteria.Skills = slices.Clone(s.inputs.Skills)
	criteria.Quick = slices.Clone(s.inputs.Quick)

	if fix, ok := s.fix.Load(); ok && fix.OK() {
		origin := fix.Point
		criteria.Origin = &origin
		if s.radiusKm != nil {
			radius := *s.radiusKm
			criteria.RadiusKm = &radius
		}
	}

	return criteria.Normalize()
}

// Results runs the current search over records.
func (s *Session) Results(records []artist.Record) Results {
	criteria := s.Criteria()

	s.mu.Lock()
	mode, page := s.sort, s.page
	s.mu.Unlock()

	ranked := s.engine.Rank(s.engine.Filter(records, criteria), mode)
	return Paginate(ranked, page)
}

// Reset clears every input and discards pending async results.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inputs = Criteria{}
	s.radiusKm = nil
	s.sort = SortRecommended
	s.page = pagination.Params{Page: pagination.DefaultPage, Limit: pagination.DefaultLimit}
	s.fix.Reset()
	s.places.Reset()
}

func (s *Session) update(apply func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	apply()
}
