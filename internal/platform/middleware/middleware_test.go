// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalamanch/directory/internal/platform/middleware"
	"github.com/kalamanch/directory/internal/platform/sec"
)

// memoryCache is an in-process [middleware.ResponseCache].
type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	failGet bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (cache *memoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	if cache.failGet {
		return nil, false, errors.New("redis down")
	}
	value, ok := cache.entries[key]
	return value, ok, nil
}

func (cache *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	cache.entries[key] = append([]byte(nil), value...)
	return nil
}

/*
TestCacheResponses_ReplaysGet verifies that a second identical GET is served
from the cache without reaching the handler.
*/
func TestCacheResponses_ReplaysGet(t *testing.T) {
	cache := newMemoryCache()
	calls := 0

	handler := middleware.CacheResponses(cache, time.Minute)(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		calls++
		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"totalResults":1}`))
	}))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/v1/search/artists?category=Singer", nil))

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/v1/search/artists?category=Singer", nil))

	assert.Equal(t, 1, calls)
	assert.Empty(t, first.Header().Get("X-Cached-Response"))
	assert.Equal(t, "true", second.Header().Get("X-Cached-Response"))
	assert.JSONEq(t, `{"totalResults":1}`, second.Body.String())
}

/*
TestCacheResponses_SkipsErrorsAndWrites ensures only 200 GET responses are stored.
*/
func TestCacheResponses_SkipsErrorsAndWrites(t *testing.T) {
	cache := newMemoryCache()

	handler := middleware.CacheResponses(cache, time.Minute)(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path == "/missing" {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"code":"NOT_FOUND"}`))
			return
		}
		_, _ = writer.Write([]byte(`{}`))
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/reload", nil))

	assert.Empty(t, cache.entries)
}

/*
TestCacheResponses_ReadFailureFallsThrough serves normally when the cache errors.
*/
func TestCacheResponses_ReadFailureFallsThrough(t *testing.T) {
	cache := newMemoryCache()
	cache.failGet = true

	handler := middleware.CacheResponses(cache, time.Minute)(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		_, _ = writer.Write([]byte(`{"ok":true}`))
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"ok":true}`, recorder.Body.String())
}

/*
TestRequestID propagates an incoming ID and generates one when absent.
*/
func TestRequestID(t *testing.T) {
	handler := middleware.RequestID()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	withID := httptest.NewRequest(http.MethodGet, "/", nil)
	withID.Header.Set("X-Request-ID", "abc")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, withID)
	assert.Equal(t, "abc", recorder.Header().Get("X-Request-ID"))

	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, recorder.Header().Get("X-Request-ID"), 36)
}

/*
TestRateLimit rejects requests beyond the burst.
*/
func TestRateLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := middleware.RateLimit(ctx, 0.001, 2)(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("X-Real-IP", "10.0.0.1")
		handler.ServeHTTP(last, request)
		codes = append(codes, last.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, "1000", last.Header().Get("Retry-After"))
	assert.Contains(t, last.Body.String(), `"RATE_LIMITED"`)
}

type corsConfig struct {
	development bool
	origins     []string
}

func (c corsConfig) IsDevelopment() bool      { return c.development }
func (c corsConfig) AllowedOrigins() []string { return c.origins }

/*
TestCORS checks the production allow-list.
*/
func TestCORS(t *testing.T) {
	handler := middleware.CORS(corsConfig{origins: []string{"https://partner.example"}})(
		http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) { writer.WriteHeader(http.StatusOK) }),
	)

	tests := []struct {
		origin  string
		allowed bool
	}{
		{"https://kalamanch.in", true},
		{"https://www.kalamanch.in", true},
		{"https://partner.example", true},
		{"https://evilkalamanch.in", false},
		{"https://other.example", false},
	}

	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			request.Header.Set("Origin", tt.origin)
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			if tt.allowed {
				assert.Equal(t, tt.origin, recorder.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

/*
TestRequireRole walks the authentication and authorization checks.
*/
func TestRequireRole(t *testing.T) {
	tokens, err := sec.NewTokenService("secret", "kalamanch.in")
	require.NoError(t, err)

	protected := middleware.Authenticate(tokens)(
		middleware.RequireRole(sec.RoleAdmin)(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusNoContent)
		})),
	)

	adminToken, err := tokens.GenerateToken("ops", sec.RoleAdmin, time.Minute)
	require.NoError(t, err)
	operatorToken, err := tokens.GenerateToken("ops", sec.RoleOperator, time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"anonymous", "", http.StatusUnauthorized},
		{"bad_format", "Token abc", http.StatusUnauthorized},
		{"bad_token", "Bearer abc", http.StatusUnauthorized},
		{"operator", "Bearer " + operatorToken, http.StatusForbidden},
		{"admin", "Bearer " + adminToken, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/admin", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}
			recorder := httptest.NewRecorder()
			protected.ServeHTTP(recorder, request)
			assert.Equal(t, tt.want, recorder.Code)
		})
	}
}
