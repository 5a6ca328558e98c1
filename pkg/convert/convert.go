// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert provides fault-tolerant conversions for query parameters.

Every helper treats an empty or malformed input as "unset": the Optional*
variants return nil, the others return the supplied default. Callers that
must distinguish malformed input from absence should use [strconv] directly.
*/
package convert

import (
	"math"
	"strconv"
	"strings"
)

// OptionalInt parses a base-10 integer. It returns nil when s is empty or malformed.
func OptionalInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

// OptionalFloat parses a finite float. It returns nil when s is empty,
// malformed, NaN or infinite.
func OptionalFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// ToIntD converts a string to an int, returning def if parsing fails or the string is empty.
func ToIntD(s string, def int) int {
	if v := OptionalInt(s); v != nil {
		return *v
	}
	return def
}

// ToFloat64D converts a string to a float64, returning def if parsing fails.
func ToFloat64D(s string, def float64) float64 {
	if v := OptionalFloat(s); v != nil {
		return *v
	}
	return def
}

// ToBool parses a boolean string ("true", "1", "false", "0").
// It returns false on empty string or parse error.
func ToBool(s string) bool {
	v, _ := strconv.ParseBool(strings.TrimSpace(s))
	return v
}
