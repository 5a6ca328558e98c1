// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package taxonomy_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalamanch/directory/internal/core/taxonomy"
)

/*
TestTaxonomy_Lookups covers known and unknown names at every level.
*/
func TestTaxonomy_Lookups(t *testing.T) {
	tax := taxonomy.Default()

	t.Run("districts_of_known_state", func(t *testing.T) {
		districts := tax.DistrictsOf("Rajasthan")
		require.Len(t, districts, 4)
		assert.Equal(t, "Jaipur", districts[0].Name)
	})

	t.Run("districts_of_unknown_state", func(t *testing.T) {
		districts := tax.DistrictsOf("Atlantis")
		assert.NotNil(t, districts)
		assert.Empty(t, districts)
	})

	t.Run("blocks", func(t *testing.T) {
		assert.Equal(t, []string{"Hauz Khas", "Saket", "Mehrauli"}, tax.BlocksOf("Delhi", "South Delhi"))
		assert.Empty(t, tax.BlocksOf("Delhi", "Jaipur"))
		assert.Empty(t, tax.BlocksOf("Atlantis", "Jaipur"))
	})

	t.Run("subcategories", func(t *testing.T) {
		assert.Contains(t, tax.SubcategoriesOf("Singer"), "Playback")
		assert.Empty(t, tax.SubcategoriesOf("Model"))
		assert.Empty(t, tax.SubcategoriesOf("Juggler"))
		assert.True(t, tax.HasSubcategory("Dancer", "Hip Hop"))
		assert.False(t, tax.HasSubcategory("Dancer", "Kathak"))
	})

	t.Run("state_of_district", func(t *testing.T) {
		state, ok := tax.StateOfDistrict("Pune")
		assert.True(t, ok)
		assert.Equal(t, "Maharashtra", state)

		_, ok = tax.StateOfDistrict("Mohali")
		assert.False(t, ok)
	})

	t.Run("categories", func(t *testing.T) {
		assert.Len(t, tax.Categories(), 10)
		assert.True(t, tax.HasCategory("Video Editor"))
		assert.False(t, tax.HasCategory("singer"))
	})
}

/*
TestTaxonomy_ReturnsCopies ensures callers cannot mutate the reference data.
*/
func TestTaxonomy_ReturnsCopies(t *testing.T) {
	tax := taxonomy.Default()

	blocks := tax.BlocksOf("Rajasthan", "Jaipur")
	blocks[0] = "Tampered"

	assert.Equal(t, "Sanganer", tax.BlocksOf("Rajasthan", "Jaipur")[0])
}

/*
TestHandler_Routes exercises the HTTP endpoints through a chi router.
*/
func TestHandler_Routes(t *testing.T) {
	handler := taxonomy.NewHandler(taxonomy.Default())

	router := chi.NewRouter()
	router.Mount("/locations", handler.LocationRoutes())
	router.Mount("/categories", handler.CategoryRoutes())

	tests := []struct {
		name string
		path string
		want int
	}{
		{"states", "/locations", 3},
		{"districts", "/locations/Maharashtra/districts", 3},
		{"blocks_encoded", "/locations/Delhi/districts/New%20Delhi/blocks", 2},
		{"unknown_state", "/locations/Atlantis/districts", 0},
		{"categories", "/categories", 10},
		{"subcategories", "/categories/Live%20Sound/subcategories", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, http.StatusOK, recorder.Code)

			var body struct {
				Data []json.RawMessage `json:"data"`
			}
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Len(t, body.Data, tt.want)
		})
	}
}
