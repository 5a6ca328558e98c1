// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/kalamanch/directory/internal/platform/constants"
	"github.com/kalamanch/directory/internal/platform/ctxutil"
)

// ResponseCache is the storage needed by [CacheResponses].
type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CacheKey derives the cache key of a request URI.
func CacheKey(requestURI string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(requestURI)).String()
}

// CacheResponses replays successful GET responses from store for ttl.
//
// Hits are marked with the X-Cached-Response header. Cache failures are logged
// and the request is served normally. A nil store disables the middleware.
func CacheResponses(store ResponseCache, ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if store == nil {
			return next
		}

		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if request.Method != http.MethodGet {
				next.ServeHTTP(writer, request)
				return
			}

			ctx := request.Context()
			logger := ctxutil.GetLogger(ctx)
			key := CacheKey(request.URL.RequestURI())

			// 1. Serve from cache when possible
			cached, found, err := store.Get(ctx, key)
			if err != nil {
				logger.WarnContext(ctx, "response_cache_read_failed", slog.Any("error", err))
			}

			if found && len(cached) > 0 {
				writer.Header().Set(constants.HeaderCachedResponse, "true")
				writer.Header().Set("Content-Type", "application/json; charset=utf-8")
				writer.WriteHeader(http.StatusOK)
				_, _ = writer.Write(cached)
				return
			}

			// 2. Capture the fresh response
			recorder := &bodyRecorder{StatusRecorder: NewStatusRecorder(writer)}
			next.ServeHTTP(recorder, request)

			// 3. Store only complete 200 responses
			if recorder.Status != http.StatusOK || recorder.body.Len() == 0 {
				return
			}

			if err := store.Set(ctx, key, recorder.body.Bytes(), ttl); err != nil {
				logger.WarnContext(ctx, "response_cache_write_failed", slog.Any("error", err))
			}
		})
	}
}

// bodyRecorder tees the response body into a buffer.
type bodyRecorder struct {
	*StatusRecorder
	body bytes.Buffer
}

func (recorder *bodyRecorder) Write(chunk []byte) (int, error) {
	recorder.body.Write(chunk)
	return recorder.StatusRecorder.Write(chunk)
}
