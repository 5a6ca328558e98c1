// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package directory

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kalamanch/directory/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes serves /artists and /suggestions.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/artists", handler.searchArtists)
	router.Get("/suggestions", handler.suggest)
	return router
}

// searchArtists writes the bare results object, without the success envelope.
func (handler *Handler) searchArtists(writer http.ResponseWriter, request *http.Request) {
	query := ParseQuery(request.URL.Query())

	results, err := handler.service.Search(request.Context(), query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusOK, results)
}

func (handler *Handler) suggest(writer http.ResponseWriter, request *http.Request) {
	suggestions, err := handler.service.Suggest(request.Context(), request.URL.Query().Get(ParamQuery))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, suggestions)
}
