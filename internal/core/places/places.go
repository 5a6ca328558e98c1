// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package places looks up real-world venues (studios, schools, halls) through an
external text-search provider.

Places never enter the artist search engine: they are returned as-is, next to
directory results. Every failure degrades to an empty list and a logged error.
*/
package places

import (
	"context"
	"errors"

	"github.com/kalamanch/directory/internal/core/geo"
)

var (
	// ErrDisabled means no provider is configured (missing API key).
	ErrDisabled = errors.New("places: lookup is not configured")

	// ErrUpstream wraps non-success answers of the provider.
	ErrUpstream = errors.New("places: provider error")
)

// Place is one venue returned by the provider.
type Place struct {
	Title            string   `json:"title"`
	FormattedAddress string   `json:"formattedAddress"`
	Lat              *float64 `json:"lat,omitempty"`
	Lng              *float64 `json:"lng,omitempty"`
	PlaceID          string   `json:"placeId,omitempty"`
	SourceURI        string   `json:"sourceUri,omitempty"`
}

// Request is one lookup. Origin, when set, biases results towards it.
type Request struct {
	Query  string
	Origin *geo.Point
}

// Result is the resolved outcome of a lookup. Places is never nil; Err is set
// when the lookup failed and Places is then empty.
type Result struct {
	Places []Place
	Err    error
}

// OK reports whether the lookup succeeded.
func (r Result) OK() bool { return r.Err == nil }

// Provider is an external places text-search service.
type Provider interface {
	SearchPlaces(ctx context.Context, request Request) ([]Place, error)
}

// ProviderFunc adapts a plain function into a [Provider].
type ProviderFunc func(ctx context.Context, request Request) ([]Place, error)

// SearchPlaces implements [Provider].
func (fn ProviderFunc) SearchPlaces(ctx context.Context, request Request) ([]Place, error) {
	return fn(ctx, request)
}

// Dedupe collapses places sharing a title. A title keeps the position of its
// first occurrence and the value of its last one.
func Dedupe(places []Place) []Place {
	index := make(map[string]int, len(places))
	unique := make([]Place, 0, len(places))

	for _, place := range places {
		if at, seen := index[place.Title]; seen {
			unique[at] = place
			continue
		}
		index[place.Title] = len(unique)
		unique = append(unique, place)
	}

	return unique
}
