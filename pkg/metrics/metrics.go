// Package metrics defines the service's Prometheus instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Matching Prometheus metrics.
var (
	MatchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fern",
			Name:      "match_requests_total",
			Help:      "Total number of match ranking requests",
		},
		[]string{"source", "status"}, // source is "http" or "kafka"
	)

	MatchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fern",
			Name:      "match_duration_seconds",
			Help:      "Time spent ranking a candidate pool in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"source"},
	)

	CandidatesScoredTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fern",
			Name:      "candidates_scored_total",
			Help:      "Total number of candidate reports scored",
		},
	)

	MatchesReturned = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "fern",
			Name:      "matches_returned",
			Help:      "Number of matches returned per ranking request",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50},
		},
	)

	KafkaMessagesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fern",
			Name:      "kafka_messages_total",
			Help:      "Total number of Kafka messages consumed",
		},
		[]string{"topic", "status"},
	)
)

var matchMetricsRegistered bool

// RegisterMatchMetrics registers the matching metrics. Must be called once from main.
func RegisterMatchMetrics() {
	if matchMetricsRegistered {
		return
	}
	prometheus.MustRegister(MatchRequestsTotal)
	prometheus.MustRegister(MatchDuration)
	prometheus.MustRegister(CandidatesScoredTotal)
	prometheus.MustRegister(MatchesReturned)
	prometheus.MustRegister(KafkaMessagesTotal)
	matchMetricsRegistered = true
}
