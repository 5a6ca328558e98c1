// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalamanch/directory/internal/api"
	"github.com/kalamanch/directory/internal/core/artist"
	"github.com/kalamanch/directory/internal/core/directory"
	"github.com/kalamanch/directory/internal/core/places"
	"github.com/kalamanch/directory/internal/core/taxonomy"
	"github.com/kalamanch/directory/internal/platform/config"
	"github.com/kalamanch/directory/internal/platform/constants"
	"github.com/kalamanch/directory/internal/platform/sec"
)

const testSecret = "test-secret"

type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func (cache *memoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	value, ok := cache.entries[key]
	return value, ok, nil
}

func (cache *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.entries[key] = append([]byte(nil), value...)
	return nil
}

func (cache *memoryCache) Prune(context.Context) (int, error) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	removed := len(cache.entries)
	cache.entries = map[string][]byte{}
	return removed, nil
}

type testServer struct {
	handler http.Handler
	tokens  *sec.TokenService
	cache   *memoryCache
}

func newTestServer(t *testing.T, loaded bool) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		ServerPort:     "0",
		Environment:    "test",
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
	}

	tax := taxonomy.Default()
	artists := artist.NewService(artist.NewSeedRepository(), config.SourceSeed, tax, logger)
	if loaded {
		_, err := artists.Reload(context.Background())
		require.NoError(t, err)
	}

	tokens, err := sec.NewTokenService(testSecret, constants.AuthIssuer)
	require.NoError(t, err)

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckSnapshot: func(context.Context) error {
			_, err := artists.Snapshot()
			return err
		},
	}, logger)

	cache := &memoryCache{entries: map[string][]byte{}}
	caches := api.Caches{
		Responses:   cache,
		ResponseTTL: time.Minute,
		Prunable:    map[string]api.Pruner{api.CacheResponses: cache},
	}
	api.InvalidateOnReload(artists, caches, logger)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Directory: directory.NewHandler(directory.NewService(artists, tax, directory.DefaultEngine())),
		Artists:   artist.NewHandler(artists),
		Taxonomy:  taxonomy.NewHandler(tax),
		Places:    places.NewHandler(places.NewService(nil, logger)),
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	server := api.NewServer(ctx, cfg, logger, tokens, caches, handlers)
	return &testServer{handler: server.Handler(), tokens: tokens, cache: cache}
}

func (s *testServer) do(t *testing.T, method, target string, role sec.UserRole) *httptest.ResponseRecorder {
	t.Helper()

	request := httptest.NewRequest(method, target, nil)
	if role != "" {
		token, err := s.tokens.GenerateToken("ops@kalamanch.in", role, time.Minute)
		require.NoError(t, err)
		request.Header.Set(constants.HeaderAuthorization, "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	s.handler.ServeHTTP(recorder, request)
	return recorder
}

/*
TestServer_PublicRoutes checks every public route is mounted and answers.
*/
func TestServer_PublicRoutes(t *testing.T) {
	server := newTestServer(t, true)

	tests := []struct {
		name     string
		target   string
		contains string
	}{
		{"health", "/health", `"status":"ok"`},
		{"ready", "/ready", `"status":"ready"`},
		{"search", "/api/v1/search/artists?category=Singer", `"totalResults":2`},
		{"suggestions", "/api/v1/search/suggestions?q=jaipur", `"District in Rajasthan"`},
		{"artist", "/api/v1/artists/d6", `"Neha Kakkad"`},
		{"locations", "/api/v1/locations", `"Rajasthan"`},
		{"districts", "/api/v1/locations/Rajasthan/districts", `"Jodhpur"`},
		{"categories", "/api/v1/categories", `"Makeup Artist"`},
		{"subcategories", "/api/v1/categories/Singer/subcategories", `"Playback"`},
		{"places_disabled", "/api/v1/places?q=studio", `"results":[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := server.do(t, http.MethodGet, tt.target, "")
			require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
			assert.Contains(t, recorder.Body.String(), tt.contains)
			assert.NotEmpty(t, recorder.Header().Get(constants.HeaderXRequestID))
		})
	}

	t.Run("metrics", func(t *testing.T) {
		recorder := server.do(t, http.MethodGet, "/metrics", "")
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "directory_http_requests_total")
		assert.Contains(t, recorder.Body.String(), "directory_snapshot_records 12")
	})

	t.Run("unknown_artist", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, server.do(t, http.MethodGet, "/api/v1/artists/nope", "").Code)
	})
}

/*
TestServer_SearchIsCached replays an identical search from the response cache.
*/
func TestServer_SearchIsCached(t *testing.T) {
	server := newTestServer(t, true)
	target := "/api/v1/search/artists?sortBy=newest&limit=3"

	first := server.do(t, http.MethodGet, target, "")
	second := server.do(t, http.MethodGet, target, "")

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Empty(t, first.Header().Get(constants.HeaderCachedResponse))
	assert.Equal(t, "true", second.Header().Get(constants.HeaderCachedResponse))
	assert.JSONEq(t, first.Body.String(), second.Body.String())

	var results directory.Results
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &results))
	require.Len(t, results.Results, 3)
	assert.Equal(t, "d10", results.Results[0].ID)
}

/*
TestServer_ReloadDropsCachedSearches serves fresh results after a snapshot reload.
*/
func TestServer_ReloadDropsCachedSearches(t *testing.T) {
	server := newTestServer(t, true)
	target := "/api/v1/search/artists?category=Singer"

	server.do(t, http.MethodGet, target, "")
	cached := server.do(t, http.MethodGet, target, "")
	require.Equal(t, "true", cached.Header().Get(constants.HeaderCachedResponse))

	reload := server.do(t, http.MethodPost, "/api/v1/admin/snapshot/reload", sec.RoleAdmin)
	require.Equal(t, http.StatusOK, reload.Code)

	fresh := server.do(t, http.MethodGet, target, "")
	require.Equal(t, http.StatusOK, fresh.Code)
	assert.Empty(t, fresh.Header().Get(constants.HeaderCachedResponse))
}

/*
TestServer_AdminRoutes enforces the role required by each operation.
*/
func TestServer_AdminRoutes(t *testing.T) {
	server := newTestServer(t, true)

	tests := []struct {
		name   string
		method string
		target string
		role   sec.UserRole
		want   int
	}{
		{"reload_anonymous", http.MethodPost, "/api/v1/admin/snapshot/reload", "", http.StatusUnauthorized},
		{"reload_operator", http.MethodPost, "/api/v1/admin/snapshot/reload", sec.RoleOperator, http.StatusForbidden},
		{"reload_admin", http.MethodPost, "/api/v1/admin/snapshot/reload", sec.RoleAdmin, http.StatusOK},
		{"describe_operator", http.MethodGet, "/api/v1/admin/snapshot", sec.RoleOperator, http.StatusOK},
		{"prune_anonymous", http.MethodPost, "/api/v1/admin/cache/prune", "", http.StatusUnauthorized},
		{"prune_operator", http.MethodPost, "/api/v1/admin/cache/prune", sec.RoleOperator, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := server.do(t, tt.method, tt.target, tt.role)
			assert.Equal(t, tt.want, recorder.Code, recorder.Body.String())
		})
	}

	t.Run("prune_empties_cache", func(t *testing.T) {
		server.do(t, http.MethodGet, "/api/v1/search/artists", "")
		recorder := server.do(t, http.MethodPost, "/api/v1/admin/cache/prune", sec.RoleAdmin)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"responses":1`)

		_, found, _ := server.cache.Get(context.Background(), "anything")
		assert.False(t, found)
	})

	t.Run("bad_token", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/api/v1/admin/snapshot", nil)
		request.Header.Set(constants.HeaderAuthorization, "Bearer not-a-jwt")
		recorder := httptest.NewRecorder()
		server.handler.ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

/*
TestServer_NotReady reports 503 until the first snapshot is published.
*/
func TestServer_NotReady(t *testing.T) {
	server := newTestServer(t, false)

	assert.Equal(t, http.StatusOK, server.do(t, http.MethodGet, "/health", "").Code)

	ready := server.do(t, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, ready.Code)
	assert.Contains(t, ready.Body.String(), `"degraded"`)

	assert.Equal(t, http.StatusServiceUnavailable, server.do(t, http.MethodGet, "/api/v1/search/artists", "").Code)

	reload := server.do(t, http.MethodPost, "/api/v1/admin/snapshot/reload", sec.RoleAdmin)
	require.Equal(t, http.StatusOK, reload.Code)
	assert.Equal(t, http.StatusOK, server.do(t, http.MethodGet, "/ready", "").Code)
}
