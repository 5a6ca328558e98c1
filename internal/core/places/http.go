// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package places

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kalamanch/directory/internal/core/geo"
	"github.com/kalamanch/directory/internal/platform/respond"
	"github.com/kalamanch/directory/pkg/convert"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.searchPlaces)
	return router
}

type searchResponse struct {
	Results []Place `json:"results"`
	Error   string  `json:"error,omitempty"`
}

// searchPlaces always answers 200; a failed lookup carries its reason in "error".
func (handler *Handler) searchPlaces(writer http.ResponseWriter, request *http.Request) {
	values := request.URL.Query()
	lookup := Request{Query: values.Get("q")}

	lat := convert.OptionalFloat(values.Get("lat"))
	lng := convert.OptionalFloat(values.Get("lng"))
	if lat != nil && lng != nil {
		lookup.Origin = &geo.Point{Lat: *lat, Lng: *lng}
	}

	result := handler.service.Search(request.Context(), lookup)

	response := searchResponse{Results: result.Places}
	if !result.OK() {
		response.Error = "Places lookup is unavailable right now"
		if errors.Is(result.Err, ErrDisabled) {
			response.Error = "Places lookup is not configured"
		}
	}

	respond.OK(writer, response)
}
