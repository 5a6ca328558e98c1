// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pointer builds and reads the optional fields of artist records.
//
// A nil pointer means "not provided"; readers that need a number treat it
// as zero (missing price, experience, views and bookings all count as 0).
package pointer

// To returns a pointer to v, for filling optional fields in literals.
func To[T any](v T) *T {
	return &v
}

// Val dereferences p, or returns the zero value when p is nil.
func Val[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
