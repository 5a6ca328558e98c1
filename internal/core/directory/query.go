// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package directory

import (
	"net/url"

	"github.com/kalamanch/directory/internal/core/geo"
	"github.com/kalamanch/directory/pkg/convert"
	"github.com/kalamanch/directory/pkg/pagination"
	"github.com/kalamanch/directory/pkg/query"
)

// Query parameter names of the search endpoint.
const (
	ParamQuery         = "q"
	ParamCategory      = "category"
	ParamSubcategory   = "subcategory"
	ParamState         = "state"
	ParamDistrict      = "district"
	ParamBlock         = "block"
	ParamPincode       = "pincode"
	ParamExperienceMin = "experienceMin"
	ParamExperienceMax = "experienceMax"
	ParamBudgetMin     = "budgetMin"
	ParamBudgetMax     = "budgetMax"
	ParamRatingMin     = "ratingMin"
	ParamVerifiedOnly  = "verifiedOnly"
	ParamOnlineStatus  = "onlineStatus"
	ParamAvailability  = "availability"
	ParamSkills        = "skills[]"
	ParamSkillsList    = "skills"
	ParamQuick         = "quick"
	ParamLat           = "lat"
	ParamLng           = "lng"
	ParamRadiusKm      = "radiusKm"
	ParamGeoError      = "geoError"
	ParamSortBy        = "sortBy"
)

// Query is a parsed search request.
type Query struct {
	Criteria Criteria
	Sort     SortMode
	Page     pagination.Params

	// Geo is the client's geolocation outcome, meaningful when HasGeo is set.
	Geo    geo.Fix
	HasGeo bool
}

/*
ParseQuery turns search parameters into a normalised [Query].

The parser is permissive: malformed numbers count as unset, unknown enum
values mean no constraint and an unknown sortBy falls back to recommended. It
never fails.

A reported geolocation failure (geoError) wins over coordinates and disables
the radius constraint.
*/
func ParseQuery(values url.Values) Query {
	criteria := Criteria{
		Query:       query.First(values, ParamQuery),
		Category:    query.First(values, ParamCategory),
		Subcategory: query.First(values, ParamSubcategory),
		State:       query.First(values, ParamState),
		District:    query.First(values, ParamDistrict),
		Block:       query.First(values, ParamBlock),
		Pincode:     query.First(values, ParamPincode),

		MinExperience: convert.OptionalInt(values.Get(ParamExperienceMin)),
		MaxExperience: convert.OptionalInt(values.Get(ParamExperienceMax)),
		MinPrice:      convert.OptionalInt(values.Get(ParamBudgetMin)),
		MaxPrice:      convert.OptionalInt(values.Get(ParamBudgetMax)),
		MinRating:     convert.ToFloat64D(values.Get(ParamRatingMin), 0),

		Availability: ParseAvailability(query.First(values, ParamOnlineStatus, ParamAvailability)),
		Skills:       query.Strings(values, ParamSkills, ParamSkillsList),
	}

	if convert.ToBool(values.Get(ParamVerifiedOnly)) {
		criteria = criteria.WithQuick(QuickVerified)
	}
	for _, raw := range query.Strings(values, ParamQuick) {
		if quick, ok := ParseQuickFilter(raw); ok {
			criteria = criteria.WithQuick(quick)
		}
	}

	parsed := Query{
		Sort: ParseSortMode(values.Get(ParamSortBy)),
		Page: pagination.FromValues(values),
	}

	lat := convert.OptionalFloat(values.Get(ParamLat))
	lng := convert.OptionalFloat(values.Get(ParamLng))

	switch {
	case query.First(values, ParamGeoError) != "":
		parsed.Geo = geo.Failed(geo.FailureFromReason(values.Get(ParamGeoError)))
		parsed.HasGeo = true
	case lat != nil && lng != nil:
		parsed.Geo = geo.Located(*lat, *lng)
		parsed.HasGeo = true
	}

	if parsed.HasGeo && parsed.Geo.OK() {
		origin := parsed.Geo.Point
		criteria.Origin = &origin
		criteria.RadiusKm = convert.OptionalFloat(values.Get(ParamRadiusKm))
	}

	parsed.Criteria = criteria.Normalize()
	return parsed
}

// Results is the search response body. Its JSON shape is a public contract:
// exactly these four keys.
type Results struct {
	TotalResults int   `json:"totalResults"`
	Page         int   `json:"page"`
	PageSize     int   `json:"pageSize"`
	Results      []Hit `json:"results"`
}

// Paginate cuts one page out of ranked hits. TotalResults counts every hit.
func Paginate(ranked []Hit, params pagination.Params) Results {
	page := pagination.Slice(ranked, params)
	results := make([]Hit, len(page))
	copy(results, page)

	return Results{
		TotalResults: len(ranked),
		Page:         params.Page,
		PageSize:     params.Limit,
		Results:      results,
	}
}
