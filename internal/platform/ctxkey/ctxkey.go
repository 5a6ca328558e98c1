// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxkey holds the context keys the middleware chain sets for
// directory handlers: request ID, per-request logger and admin token claims.
package ctxkey

// key is unexported so no other package can build a colliding key.
type key string

const (
	// KeyRequestID carries the X-Request-ID correlation value.
	KeyRequestID key = "request_id"

	// KeyUser carries the verified admin token ([sec.AuthClaims]).
	KeyUser key = "admin_claims"

	// KeyLogger carries the per-request [*log/slog.Logger].
	KeyLogger key = "logger"
)
