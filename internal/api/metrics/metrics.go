// Package metrics defines the custom Prometheus metrics of the StayInn rating
// gateway. Metrics are registered with the default registry on import and
// served by the /metrics route.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "stayinn_gateway"

// ── Rating metrics ────────────────────────────────────────────────────────────

// RatingSubmissionsTotal counts submit requests by outcome.
// Label:
//   - outcome: "succeeded", "failed" (upstream error) or "rejected" (missing ids)
var RatingSubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rating_submissions_total",
		Help:      "Total number of rating submissions, by outcome.",
	},
	[]string{"outcome"},
)

// RatingDraftsTotal counts star selections saved as drafts.
var RatingDraftsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rating_drafts_total",
		Help:      "Total number of rating selections stored as drafts.",
	},
)

// ── Upstream metrics ──────────────────────────────────────────────────────────

// UpstreamRequestDuration measures calls to the accommodation and ratings services.
// Labels:
//   - service: "accommodation" or "rating"
//   - outcome: "ok", "error" or "unavailable"
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of requests to upstream services.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"service", "outcome"},
)

// UpstreamBreakerState mirrors each circuit breaker: 0 closed, 1 half-open, 2 open.
var UpstreamBreakerState = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "upstream_breaker_state",
		Help:      "Current circuit breaker state per upstream (0 closed, 1 half-open, 2 open).",
	},
	[]string{"breaker"},
)
