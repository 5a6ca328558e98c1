// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package taxonomy

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/kalamanch/directory/internal/platform/request"
	"github.com/kalamanch/directory/internal/platform/respond"
)

// Handler exposes the reference data over HTTP.
type Handler struct {
	taxonomy *Taxonomy
}

// NewHandler constructs a new taxonomy [Handler].
func NewHandler(taxonomy *Taxonomy) *Handler {
	return &Handler{taxonomy: taxonomy}
}

// LocationRoutes returns the router mounted at /locations.
func (handler *Handler) LocationRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listStates)
	router.Get("/{state}/districts", handler.listDistricts)
	router.Get("/{state}/districts/{district}/blocks", handler.listBlocks)

	return router
}

// CategoryRoutes returns the router mounted at /categories.
func (handler *Handler) CategoryRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listCategories)
	router.Get("/{category}/subcategories", handler.listSubcategories)

	return router
}

/*
GET /api/v1/locations.

Description: Returns the full State → District → Block hierarchy.

Response:
  - 200: []State
*/
func (handler *Handler) listStates(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.taxonomy.States())
}

/*
GET /api/v1/locations/{state}/districts.

Response:
  - 200: []District (empty for an unknown state)
*/
func (handler *Handler) listDistricts(writer http.ResponseWriter, request *http.Request) {
	state := requestutil.Param(request, "state")
	respond.OK(writer, handler.taxonomy.DistrictsOf(state))
}

/*
GET /api/v1/locations/{state}/districts/{district}/blocks.

Response:
  - 200: []string (empty when either level is unknown)
*/
func (handler *Handler) listBlocks(writer http.ResponseWriter, request *http.Request) {
	state := requestutil.Param(request, "state")
	district := requestutil.Param(request, "district")
	respond.OK(writer, handler.taxonomy.BlocksOf(state, district))
}

/*
GET /api/v1/categories.

Response:
  - 200: []Category
*/
func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.taxonomy.Catalogue())
}

/*
GET /api/v1/categories/{category}/subcategories.

Response:
  - 200: []string (empty when the category has none)
*/
func (handler *Handler) listSubcategories(writer http.ResponseWriter, request *http.Request) {
	category := requestutil.Param(request, "category")
	respond.OK(writer, handler.taxonomy.SubcategoriesOf(category))
}
