// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package directory

import (
	"strings"

	"github.com/kalamanch/directory/internal/core/artist"
	"github.com/kalamanch/directory/pkg/textfold"
)

// Hit is a record that passed the filter, with its distance from the search
// origin when both are known. Hits are never persisted.
type Hit struct {
	artist.Record
	Distance *float64 `json:"distance,omitempty"`
}

// DistanceKm returns the distance and whether it is known.
func (h *Hit) DistanceKm() (float64, bool) {
	if h.Distance == nil {
		return 0, false
	}
	return *h.Distance, true
}

// predicate reports whether a hit survives one constraint.
type predicate func(hit *Hit) bool

// Filter applies criteria with [DefaultThresholds]. See [Engine.Filter].
func Filter(records []artist.Record, criteria Criteria) []Hit {
	return DefaultEngine().Filter(records, criteria)
}

/*
Filter returns the records matching every constraint of criteria, in input
order.

Constraints are applied in a fixed order: distance annotation, radius, free
text, location, category, price and experience ranges, rating floor,
availability, skill tags, then quick filters. All constraints are conjunctive.
Callers that need the radius/location exclusion apply [Criteria.Normalize]
first.

An unknown value in any constraint matches nothing. Filter never fails.
*/
func (engine Engine) Filter(records []artist.Record, criteria Criteria) []Hit {
	predicates := engine.predicates(criteria)
	hits := make([]Hit, 0, len(records))

	for i := range records {
		hit := Hit{Record: records[i]}

		if criteria.Origin != nil {
			if position, ok := hit.Position(); ok {
				distance := criteria.Origin.DistanceTo(position)
				hit.Distance = &distance
			}
		}

		if matchesAll(&hit, predicates) {
			hits = append(hits, hit)
		}
	}

	return hits
}

func matchesAll(hit *Hit, predicates []predicate) bool {
	for _, matches := range predicates {
		if !matches(hit) {
			return false
		}
	}
	return true
}

func (engine Engine) predicates(criteria Criteria) []predicate {
	var predicates []predicate

	// ── 1. Radius ────────────────────────────────────────────────────────
	if criteria.RadiusActive() {
		radius := *criteria.RadiusKm
		predicates = append(predicates, func(hit *Hit) bool {
			distance, ok := hit.DistanceKm()
			return ok && distance <= radius
		})
	}

	// ── 2. Free Text ─────────────────────────────────────────────────────
	if query := strings.TrimSpace(criteria.Query); query != "" {
		needle := textfold.Fold(query)
		predicates = append(predicates, func(hit *Hit) bool {
			return matchesText(&hit.Record, needle)
		})
	}

	// ── 3. Location ──────────────────────────────────────────────────────
	predicates = appendExact(predicates, criteria.State, func(r *artist.Record) string { return r.State })
	predicates = appendExact(predicates, criteria.District, func(r *artist.Record) string { return r.District })
	predicates = appendExact(predicates, criteria.Block, (*artist.Record).BlockName)
	predicates = appendExact(predicates, criteria.Pincode, (*artist.Record).PincodeValue)

	// ── 4. Category ──────────────────────────────────────────────────────
	predicates = appendExact(predicates, criteria.Category, func(r *artist.Record) string { return r.Category })
	predicates = appendExact(predicates, criteria.Subcategory, (*artist.Record).SubcategoryName)

	// ── 5. Ranges ────────────────────────────────────────────────────────
	predicates = appendRange(predicates, criteria.MinPrice, criteria.MaxPrice, (*artist.Record).Price)
	predicates = appendRange(predicates, criteria.MinExperience, criteria.MaxExperience, (*artist.Record).Years)

	if criteria.MinRating > 0 {
		floor := criteria.MinRating
		predicates = append(predicates, func(hit *Hit) bool { return hit.Rating >= floor })
	}

	// ── 6. Availability ──────────────────────────────────────────────────
	if criteria.Availability != AvailabilityAny {
		predicates = append(predicates, func(hit *Hit) bool {
			return criteria.matchesAvailability(&hit.Record)
		})
	}

	// ── 7. Skill Tags ────────────────────────────────────────────────────
	if tags := foldAll(criteria.Skills); len(tags) > 0 {
		predicates = append(predicates, func(hit *Hit) bool {
			return matchesSkills(hit.Skills, tags)
		})
	}

	// ── 8. Quick Filters ─────────────────────────────────────────────────
	for _, quick := range QuickFilters {
		if criteria.Has(quick) {
			predicates = append(predicates, engine.quickPredicate(quick))
		}
	}

	return predicates
}

func (engine Engine) quickPredicate(quick QuickFilter) predicate {
	thresholds := engine.Thresholds

	switch quick {
	case QuickVerified:
		return func(hit *Hit) bool { return hit.Verified }
	case QuickTopRated:
		return func(hit *Hit) bool { return hit.Rating >= thresholds.TopRatedMin }
	case QuickAffordable:
		return func(hit *Hit) bool { return hit.Price() <= thresholds.AffordableMax }
	case QuickNewJoiners:
		return func(hit *Hit) bool {
			return hit.HasJoinedDate() && !hit.Joined().Before(thresholds.NewJoinerSince)
		}
	case QuickAvailableNow:
		return func(hit *Hit) bool { return hit.Availability != artist.AvailabilityOffline }
	default:
		return func(*Hit) bool { return true }
	}
}

func appendExact(predicates []predicate, want string, field func(*artist.Record) string) []predicate {
	if want == "" {
		return predicates
	}
	return append(predicates, func(hit *Hit) bool {
		return field(&hit.Record) == want
	})
}

func appendRange(predicates []predicate, low, high *int, field func(*artist.Record) int) []predicate {
	if low != nil {
		floor := *low
		predicates = append(predicates, func(hit *Hit) bool { return field(&hit.Record) >= floor })
	}
	if high != nil {
		ceiling := *high
		predicates = append(predicates, func(hit *Hit) bool { return field(&hit.Record) <= ceiling })
	}
	return predicates
}

// matchesText looks for needle (already folded) in the searchable fields.
func matchesText(record *artist.Record, needle string) bool {
	fields := []string{
		record.Name, record.Category, record.SubcategoryName(),
		record.City, record.State, record.District, record.PincodeValue(),
	}
	for _, field := range fields {
		if strings.Contains(textfold.Fold(field), needle) {
			return true
		}
	}
	for _, skill := range record.Skills {
		if strings.Contains(textfold.Fold(skill), needle) {
			return true
		}
	}
	return false
}

// matchesSkills requires every tag to occur in at least one skill.
func matchesSkills(skills []string, tags []string) bool {
	folded := foldAll(skills)
	for _, tag := range tags {
		found := false
		for _, skill := range folded {
			if strings.Contains(skill, tag) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func foldAll(values []string) []string {
	folded := make([]string, 0, len(values))
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			folded = append(folded, textfold.Fold(value))
		}
	}
	return folded
}
