// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query extracts list-valued parameters from URL query strings.
package query

import (
	"net/url"
	"strings"
)

// StringSlice parses a single comma-separated query string
// into a trimmed slice of strings.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}

// Strings collects every value of the given keys, in key order. Repeated keys
// and comma-separated values are both accepted; blank entries are dropped.
//
//	?skills[]=Folk&skills=Sufi,Bhajan  ->  [Folk Sufi Bhajan]
func Strings(values url.Values, keys ...string) []string {
	var res []string
	for _, key := range keys {
		for _, raw := range values[key] {
			res = append(res, StringSlice(raw)...)
		}
	}
	return res
}

// First returns the first non-blank value among keys, trimmed.
func First(values url.Values, keys ...string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(values.Get(key)); value != "" {
			return value
		}
	}
	return ""
}
