// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package geo

import (
	"context"
	"errors"
	"strings"
	"time"
)

// # Geolocation Failures

var (
	// ErrPermissionDenied means the user refused to share a location.
	ErrPermissionDenied = errors.New("geo: permission denied")

	// ErrUnsupported means the client has no geolocation capability.
	ErrUnsupported = errors.New("geo: geolocation unsupported")

	// ErrUnavailable means the position could not be determined.
	ErrUnavailable = errors.New("geo: position unavailable")

	// ErrTimeout means the provider did not answer in time.
	ErrTimeout = errors.New("geo: position request timed out")
)

// DefaultLocateTimeout bounds a single [Resolve] call.
const DefaultLocateTimeout = 10 * time.Second

// Fix is the resolved outcome of a geolocation request. Exactly one of
// Point or Err is meaningful: Err == nil means Point holds the position.
type Fix struct {
	Point Point
	Err   error
}

// OK reports whether the fix carries a usable position.
func (f Fix) OK() bool {
	return f.Err == nil
}

// Reason returns a short machine-readable failure label, or "" for a good fix.
func (f Fix) Reason() string {
	switch {
	case f.Err == nil:
		return ""
	case errors.Is(f.Err, ErrPermissionDenied):
		return "denied"
	case errors.Is(f.Err, ErrUnsupported):
		return "unsupported"
	case errors.Is(f.Err, ErrTimeout):
		return "timeout"
	default:
		return "unavailable"
	}
}

// Located builds a successful fix.
func Located(lat, lng float64) Fix {
	return Fix{Point: Point{Lat: lat, Lng: lng}}
}

// Failed builds a failed fix.
func Failed(err error) Fix {
	return Fix{Err: err}
}

// FailureFromReason maps a client-reported failure label onto a sentinel error.
// Unknown labels map to [ErrUnavailable].
func FailureFromReason(reason string) error {
	switch strings.ToLower(strings.TrimSpace(reason)) {
	case "denied", "permission_denied", "permissiondenied":
		return ErrPermissionDenied
	case "unsupported":
		return ErrUnsupported
	case "timeout":
		return ErrTimeout
	default:
		return ErrUnavailable
	}
}

// # Providers

// Locator is any source able to produce the caller's current position.
type Locator interface {
	Locate(ctx context.Context) (Point, error)
}

// LocatorFunc adapts a plain function into a [Locator].
type LocatorFunc func(ctx context.Context) (Point, error)

// Locate implements [Locator].
func (fn LocatorFunc) Locate(ctx context.Context) (Point, error) {
	return fn(ctx)
}

// Resolve runs the locator with a deadline and always returns a [Fix].
// A nil locator yields [ErrUnsupported]; a deadline hit yields [ErrTimeout].
func Resolve(ctx context.Context, locator Locator, timeout time.Duration) Fix {
	if locator == nil {
		return Failed(ErrUnsupported)
	}

	if timeout <= 0 {
		timeout = DefaultLocateTimeout
	}

	locateCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	point, err := locator.Locate(locateCtx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Failed(ErrTimeout)
		}
		return Failed(err)
	}

	return Fix{Point: point}
}
