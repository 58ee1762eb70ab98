// Package metrics defines the service's Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Analysis pipeline metrics
var (
	// AnalysesTotal tracks completed analyses by outcome
	// (ok, invalid_ticker, insufficient_price_data, insufficient_social_data,
	// insufficient_overlap, undefined_correlation, upstream_failure, internal_error).
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analyses_total",
			Help: "Completed analysis requests by outcome",
		},
		[]string{"outcome"},
	)

	// AnalysisDuration tracks end-to-end analysis latency in seconds
	AnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "analysis_duration_seconds",
			Help:    "End-to-end analysis duration in seconds",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 20, 30},
		},
	)

	// MergedDataPoints tracks the number of date-aligned records per analysis
	MergedDataPoints = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "analysis_merged_data_points",
			Help:    "Date-aligned records available per analysis",
			Buckets: []float64{0, 1, 2, 5, 10, 15, 20, 25, 30},
		},
	)
)

// Upstream provider metrics
var (
	// UpstreamRequestsTotal tracks provider calls by provider and status
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Upstream provider requests by provider and status",
		},
		[]string{"provider", "status"},
	)

	// UpstreamRequestDuration tracks provider call latency in seconds
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Upstream provider request duration in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 20},
		},
		[]string{"provider"},
	)
)

// Sentiment scoring metrics
var (
	// PostsScoredTotal tracks texts run through the sentiment scorer
	PostsScoredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "posts_scored_total",
			Help: "Posts run through the sentiment scorer",
		},
	)
)
