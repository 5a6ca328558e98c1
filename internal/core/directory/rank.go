// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package directory

import (
	"sort"
	"strings"

	"github.com/kalamanch/directory/internal/core/artist"
)

// SortMode selects the ordering of search results.
type SortMode string

const (
	SortRecommended SortMode = "recommended"
	SortDistance    SortMode = "distance"
	SortPriceAsc    SortMode = "priceLowToHigh"
	SortPriceDesc   SortMode = "priceHighToLow"
	SortRating      SortMode = "rating"
	SortNewest      SortMode = "newest"
)

var sortAliases = map[string]SortMode{
	"recommended":    SortRecommended,
	"distance":       SortDistance,
	"nearest":        SortDistance,
	"pricelowtohigh": SortPriceAsc,
	"priceasc":       SortPriceAsc,
	"pricehightolow": SortPriceDesc,
	"pricedesc":      SortPriceDesc,
	"rating":         SortRating,
	"ratingdesc":     SortRating,
	"newest":         SortNewest,
}

// ParseSortMode resolves a sortBy value. Unknown values fall back to
// [SortRecommended].
func ParseSortMode(value string) SortMode {
	if mode, ok := sortAliases[strings.ToLower(strings.TrimSpace(value))]; ok {
		return mode
	}
	return SortRecommended
}

// # Weights

// Weights are the coefficients of the recommended ordering. They are tunables,
// not contracts.
type Weights struct {
	Rating   float64
	Bookings float64
	Views    float64
	Verified float64
}

// DefaultWeights reproduce the production ordering.
var DefaultWeights = Weights{
	Rating:   10,
	Bookings: 0.5,
	Views:    0.01,
	Verified: 1000,
}

// Popularity scores a record without location context.
func (w Weights) Popularity(record *artist.Record) float64 {
	return record.Rating*w.Rating +
		float64(record.BookingCount())*w.Bookings +
		float64(record.ViewCount())*w.Views
}

// Proximity scores a hit at a known distance: verified listings first,
// nearer listings next.
func (w Weights) Proximity(verified bool, distanceKm float64) float64 {
	boost := 0.0
	if verified {
		boost = w.Verified
	}
	return boost - distanceKm
}

// # Engine

// Engine carries the tunables of filtering and ranking.
type Engine struct {
	Thresholds Thresholds
	Weights    Weights
}

// DefaultEngine returns an engine with production thresholds and weights.
func DefaultEngine() Engine {
	return Engine{Thresholds: DefaultThresholds, Weights: DefaultWeights}
}

// Rank orders hits with [DefaultWeights]. See [Engine.Rank].
func Rank(hits []Hit, mode SortMode) []Hit {
	return DefaultEngine().Rank(hits, mode)
}

/*
Rank returns a new slice holding hits in the order of mode. The input slice is
left untouched, and hits with equal keys keep their relative input order.

  - Distance: ascending; hits without a distance go last.
  - PriceAsc / PriceDesc: missing price counts as 0.
  - Rating: descending.
  - Newest: joined date descending; a missing date counts as the epoch.
  - Recommended: when both hits have a distance, the proximity score
    descending; otherwise the popularity score descending.
*/
func (engine Engine) Rank(hits []Hit, mode SortMode) []Hit {
	ranked := make([]Hit, len(hits))
	copy(ranked, hits)

	sort.SliceStable(ranked, engine.less(ranked, mode))
	return ranked
}

func (engine Engine) less(hits []Hit, mode SortMode) func(i, j int) bool {
	weights := engine.Weights

	switch mode {
	case SortDistance:
		return func(i, j int) bool {
			left, leftOK := hits[i].DistanceKm()
			right, rightOK := hits[j].DistanceKm()
			switch {
			case leftOK && rightOK:
				return left < right
			default:
				return leftOK && !rightOK
			}
		}

	case SortPriceAsc:
		return func(i, j int) bool { return hits[i].Price() < hits[j].Price() }

	case SortPriceDesc:
		return func(i, j int) bool { return hits[i].Price() > hits[j].Price() }

	case SortRating:
		return func(i, j int) bool { return hits[i].Rating > hits[j].Rating }

	case SortNewest:
		return func(i, j int) bool { return hits[i].Joined().After(hits[j].Joined()) }

	default:
		return func(i, j int) bool {
			left, leftOK := hits[i].DistanceKm()
			right, rightOK := hits[j].DistanceKm()
			if leftOK && rightOK {
				return weights.Proximity(hits[i].Verified, left) > weights.Proximity(hits[j].Verified, right)
			}
			return weights.Popularity(&hits[i].Record) > weights.Popularity(&hits[j].Record)
		}
	}
}
