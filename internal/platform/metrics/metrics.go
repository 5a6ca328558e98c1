// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package metrics registers the Prometheus collectors of the directory service
and exposes the HTTP instrumentation middleware.

Collectors are registered on the default registry at package init through
promauto and served at /metrics by [Handler].
*/
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "directory"

// Places lookup outcomes used as the "outcome" label.
const (
	OutcomeOK       = "ok"
	OutcomeCached   = "cached"
	OutcomeFailed   = "failed"
	OutcomeDisabled = "disabled"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests served, by method, route pattern and status.",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency, by method and route pattern.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	searchResults = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "search_results",
		Help:      "Total matches per artist search, before pagination.",
		Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100, 500},
	})

	placesLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "places_lookups_total",
		Help:      "External places lookups, by outcome.",
	}, []string{"outcome"})

	snapshotRecords = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "snapshot_records",
		Help:      "Artist records in the active snapshot.",
	})
)

// ObserveSearch records the pre-pagination match count of one search.
func ObserveSearch(total int) {
	searchResults.Observe(float64(total))
}

// CountPlacesLookup increments the places counter for an outcome.
func CountPlacesLookup(outcome string) {
	placesLookups.WithLabelValues(outcome).Inc()
}

// SetSnapshotSize publishes the size of the active snapshot.
func SetSnapshotSize(records int) {
	snapshotRecords.Set(float64(records))
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware records request counts and latency keyed by chi route pattern.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			startTime := time.Now()
			recorder := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}

			next.ServeHTTP(recorder, request)

			route := "unmatched"
			if routeContext := chi.RouteContext(request.Context()); routeContext != nil {
				if pattern := routeContext.RoutePattern(); pattern != "" {
					route = pattern
				}
			}

			httpRequests.WithLabelValues(request.Method, route, strconv.Itoa(recorder.status)).Inc()
			httpDuration.WithLabelValues(request.Method, route).Observe(time.Since(startTime).Seconds())
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (recorder *statusRecorder) WriteHeader(code int) {
	recorder.status = code
	recorder.ResponseWriter.WriteHeader(code)
}
