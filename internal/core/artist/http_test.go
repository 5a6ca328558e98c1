// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalamanch/directory/internal/core/artist"
	"github.com/kalamanch/directory/internal/core/taxonomy"
	"github.com/kalamanch/directory/internal/platform/ctxutil"
	"github.com/kalamanch/directory/internal/platform/sec"
)

func newRouter(t *testing.T, role sec.UserRole) *chi.Mux {
	t.Helper()

	service := artist.NewService(artist.NewSeedRepository(), "seed", taxonomy.Default(), discardLogger())
	_, err := service.Reload(context.Background())
	require.NoError(t, err)

	handler := artist.NewHandler(service)
	router := chi.NewRouter()
	router.Mount("/artists", handler.Routes())
	router.Route("/admin", func(admin chi.Router) {
		admin.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				if role != "" {
					claims := &sec.AuthClaims{
						RegisteredClaims: jwt.RegisteredClaims{Subject: "ops"},
						Role:             string(role),
					}
					request = request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
				}
				next.ServeHTTP(writer, request)
			})
		})
		handler.RegisterAdminRoutes(admin)
	})
	return router
}

/*
TestHandler_GetArtist resolves a record by ID and reports unknown IDs as 404.
*/
func TestHandler_GetArtist(t *testing.T) {
	router := newRouter(t, "")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/artists/d6", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data artist.Record `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Neha Kakkad", body.Data.Name)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/artists/zzz", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

/*
TestHandler_AdminRoutes enforces the role hierarchy on snapshot maintenance.
*/
func TestHandler_AdminRoutes(t *testing.T) {
	tests := []struct {
		name   string
		role   sec.UserRole
		method string
		path   string
		want   int
	}{
		{"anonymous_reload", "", http.MethodPost, "/admin/snapshot/reload", http.StatusUnauthorized},
		{"operator_reload", sec.RoleOperator, http.MethodPost, "/admin/snapshot/reload", http.StatusForbidden},
		{"admin_reload", sec.RoleAdmin, http.MethodPost, "/admin/snapshot/reload", http.StatusOK},
		{"operator_describe", sec.RoleOperator, http.MethodGet, "/admin/snapshot", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(t, tt.role)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, recorder.Code)
		})
	}
}
