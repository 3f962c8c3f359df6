// Package metrics exposes Prometheus collectors for the listings service.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal          *prometheus.CounterVec
	httpRequestDurationSeconds *prometheus.HistogramVec
	listingsCreatedTotal       prometheus.Counter
	listingsStored             prometheus.Gauge
	listingLookupsTotal        *prometheus.CounterVec
	messagesReceivedTotal      prometheus.Counter

	once    sync.Once
	enabled atomic.Bool
)

// Init registers the Prometheus collectors with the default registry.
// It is safe to call this function multiple times. Until Init runs the
// Observe helpers are no-ops, so a process with metrics disabled never
// registers anything. Collectors are process-wide: every App in the process
// shares them, listings_stored included.
func Init() {
	once.Do(func() {
		httpRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests, labeled by method and code.",
			},
			[]string{"method", "code"},
		)

		httpRequestDurationSeconds = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Histogram of HTTP request latencies, labeled by method and route.",
				Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1},
			},
			[]string{"method", "route"},
		)

		listingsCreatedTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "listings_created_total",
				Help: "Total number of listings appended to the store.",
			},
		)

		listingsStored = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "listings_stored",
				Help: "Number of listings currently held in memory.",
			},
		)

		listingLookupsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "listing_lookups_total",
				Help: "Total number of listing lookups by index, labeled by result.",
			},
			[]string{"result"},
		)

		messagesReceivedTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "messages_received_total",
				Help: "Total number of simulated messages accepted.",
			},
		)

		enabled.Store(true)
	})
}

// Handler returns an http.Handler for exposing Prometheus metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveHTTPRequest increments the HTTP request metrics.
func ObserveHTTPRequest(method, route string, code int, duration time.Duration) {
	if !enabled.Load() {
		return
	}
	httpRequestsTotal.WithLabelValues(method, strconv.Itoa(code)).Inc()
	httpRequestDurationSeconds.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveListingCreated counts a create and bumps the stored gauge.
func ObserveListingCreated() {
	if !enabled.Load() {
		return
	}
	listingsCreatedTotal.Inc()
	listingsStored.Inc()
}

// ObserveListingLookup records an index lookup as a hit or a miss.
func ObserveListingLookup(found bool) {
	if !enabled.Load() {
		return
	}
	result := "miss"
	if found {
		result = "hit"
	}
	listingLookupsTotal.WithLabelValues(result).Inc()
}

// ObserveMessageReceived counts a simulated message.
func ObserveMessageReceived() {
	if !enabled.Load() {
		return
	}
	messagesReceivedTotal.Inc()
}
