package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lenscard_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lenscard_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	LensQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lenscard_lens_queries_total",
			Help: "Total number of Lens GraphQL queries by outcome",
		},
		[]string{"query", "outcome"},
	)

	LensQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lenscard_lens_query_duration_seconds",
			Help:    "Duration of Lens GraphQL queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"query"},
	)

	CardsRenderedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lenscard_cards_rendered_total",
			Help: "Profile cards rendered, by theme",
		},
		[]string{"theme"},
	)
)
