// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http" // Exposition handler
	"time"     // Durations

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "chainwatch",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "chainwatch",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	recordMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "chainwatch",
			Name:      "record_mutations_total",
			Help:      "Case and wallet writes by operation and outcome.",
		},
		[]string{"collection", "op", "result"},
	)
)

func init() {
	Registry.MustRegister(httpRequests, httpDuration, recordMutations)
}

// Handler exposes the registry in the Prometheus text format
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RecordHTTPRequest observes one finished request
func RecordHTTPRequest(method, path, status string, d time.Duration) {
	httpRequests.WithLabelValues(method, path, status).Inc()
	httpDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

// RecordMutation counts a create/update/delete on a collection
func RecordMutation(collection, op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	recordMutations.WithLabelValues(collection, op, result).Inc()
}
