// Package metrics defines the prometheus collectors for the API. Everything
// registers on the default registry and is served at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PickRequests counts pick-generation requests by mode.
	PickRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "localpicks_pick_requests_total",
			Help: "Total pick-generation requests by mode",
		},
		[]string{"mode"},
	)

	// SuggestRequests counts typeahead suggestion requests.
	SuggestRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "localpicks_suggest_requests_total",
			Help: "Total location suggestion requests",
		},
	)

	// ProviderCalls counts outbound places-provider calls by endpoint and
	// outcome (ok, error, skipped).
	ProviderCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "localpicks_provider_calls_total",
			Help: "Total calls to the places provider by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"},
	)

	// CacheHits / CacheMisses track the review and suggestion caches.
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "localpicks_cache_hits_total",
			Help: "Cache hits by cache name",
		},
		[]string{"cache"},
	)
	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "localpicks_cache_misses_total",
			Help: "Cache misses by cache name",
		},
		[]string{"cache"},
	)

	// SearchWidened counts how often a mode had to retry at its max radius.
	SearchWidened = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "localpicks_search_widened_total",
			Help: "Searches that re-ran at the max radius, by mode",
		},
		[]string{"mode"},
	)
)
