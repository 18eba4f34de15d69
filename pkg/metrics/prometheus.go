// Package metrics provides Prometheus metrics for the OpenF1 console tool.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager manages all Prometheus metrics for the tool.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// API client metrics - one upstream fetch per label value.
	apiRequests        *prometheus.CounterVec
	apiRequestDuration *prometheus.HistogramVec
	apiErrors          *prometheus.CounterVec
	apiEmptyFeeds      *prometheus.CounterVec

	// Resolution metrics - the classification pipeline.
	resolutions      prometheus.Counter
	resolutionRows   prometheus.Histogram
	emptyResolutions prometheus.Counter
	unmatchedRoster  prometheus.Counter

	// Presentation metrics.
	exports *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "openf1",
		subsystem:        "console",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.apiRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "api_requests_total",
			Help:      "Total number of upstream API requests by endpoint",
		},
		[]string{"endpoint"},
	)

	m.apiRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "api_request_duration_seconds",
			Help:      "Histogram of upstream API request durations",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint"},
	)

	m.apiErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "api_errors_total",
			Help:      "Total number of failed upstream API requests by endpoint",
		},
		[]string{"endpoint"},
	)

	m.apiEmptyFeeds = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "api_empty_feeds_total",
			Help:      "Total number of upstream responses with no records",
		},
		[]string{"endpoint"},
	)

	m.resolutions = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "resolutions_total",
		Help:      "Total number of finishing-order resolutions computed",
	})

	m.resolutionRows = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "resolution_rows",
		Help:      "Histogram of classification row counts per resolution",
		Buckets:   []float64{0, 5, 10, 15, 20, 25, 30},
	})

	m.emptyResolutions = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "empty_resolutions_total",
		Help:      "Total number of resolutions that produced no classification rows",
	})

	m.unmatchedRoster = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "unmatched_roster_total",
		Help:      "Total number of classified drivers with no roster entry",
	})

	m.exports = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "exports_total",
			Help:      "Total number of file exports by format",
		},
		[]string{"format"},
	)
}

// RecordAPIRequest records one upstream API request.
func RecordAPIRequest(endpoint string, durationSeconds float64) {
	globalManager.apiRequests.WithLabelValues(endpoint).Inc()
	globalManager.apiRequestDuration.WithLabelValues(endpoint).Observe(durationSeconds)
}

// RecordAPIError increments the upstream error counter for an endpoint.
func RecordAPIError(endpoint string) {
	globalManager.apiErrors.WithLabelValues(endpoint).Inc()
}

// RecordEmptyFeed increments the empty-response counter for an endpoint.
func RecordEmptyFeed(endpoint string) {
	globalManager.apiEmptyFeeds.WithLabelValues(endpoint).Inc()
}

// RecordResolution records one finishing-order resolution and its row count.
func RecordResolution(rows int) {
	globalManager.resolutions.Inc()
	globalManager.resolutionRows.Observe(float64(rows))
	if rows == 0 {
		globalManager.emptyResolutions.Inc()
	}
}

// RecordUnmatchedRoster increments the counter of classified drivers without
// a roster entry.
func RecordUnmatchedRoster() {
	globalManager.unmatchedRoster.Inc()
}

// RecordExport increments the export counter for a format (csv, xlsx, png).
func RecordExport(format string) {
	globalManager.exports.WithLabelValues(format).Inc()
}

// Handler returns an http.Handler serving the custom registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(customRegistry, promhttp.HandlerOpts{})
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
