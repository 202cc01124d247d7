// Package metrics provides Prometheus metrics for the college ranking service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	matchBuckets     []float64
	customLabels     map[string]string
	registry         prometheus.Registerer

	// Roster Metrics - listing view derivations and user input
	viewsComputed     prometheus.Counter
	viewLatency       prometheus.Histogram
	viewMatches       prometheus.Histogram
	actions           *prometheus.CounterVec
	selectionRejected prometheus.Counter
	boundFallbacks    *prometheus.CounterVec

	// Catalog Metrics
	catalogSize         prometheus.Gauge
	catalogQueryLatency prometheus.Histogram

	// Session Metrics - open listing views
	sessionsActive  prometheus.Gauge
	sessionsOpened  prometheus.Counter
	sessionsClosed  prometheus.Counter
	sessionsEvicted prometheus.Counter
	sessionsExpired prometheus.Counter

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error Metrics
	errorRateByType     *prometheus.CounterVec
	errorRateByEndpoint *prometheus.CounterVec
	errorLatency        *prometheus.HistogramVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "collegerank",
		subsystem:        "roster",
		histogramBuckets: prometheus.DefBuckets,
		matchBuckets:     []float64{0, 1, 2, 5, 10, 20, 50, 100, 500},
		customLabels:     map[string]string{},
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.customLabels,
	}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.customLabels,
	}
}

func (m *Manager) histogramOpts(name, help string, buckets []float64) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		Buckets:     buckets,
		ConstLabels: m.customLabels,
	}
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // long function required for comprehensive metrics initialization
	auto := promauto.With(m.registry)

	m.viewsComputed = auto.NewCounter(m.counterOpts("views_computed_total", "Total number of roster views computed"))
	m.viewLatency = auto.NewHistogram(m.histogramOpts("view_latency_milliseconds", "Histogram of roster view computation latency in milliseconds", m.histogramBuckets))
	m.viewMatches = auto.NewHistogram(m.histogramOpts("view_matches", "Histogram of matches per computed view before pagination", m.matchBuckets))
	m.actions = auto.NewCounterVec(m.counterOpts("actions_total", "Total number of listing actions by type and outcome"), []string{"type", "outcome"})
	m.selectionRejected = auto.NewCounter(m.counterOpts("selection_rejected_total", "Total number of selections rejected because the selection was full"))
	m.boundFallbacks = auto.NewCounterVec(m.counterOpts("bound_parse_fallbacks_total", "Total number of range bound edits that kept the previous bound"), []string{"field"})

	m.catalogSize = auto.NewGauge(m.gaugeOpts("catalog_size", "Number of colleges in the loaded catalog"))
	m.catalogQueryLatency = auto.NewHistogram(m.histogramOpts("catalog_query_latency_milliseconds", "Histogram of catalog lookup latency in milliseconds", m.histogramBuckets))

	m.sessionsActive = auto.NewGauge(m.gaugeOpts("sessions_active", "Current number of open listing sessions"))
	m.sessionsOpened = auto.NewCounter(m.counterOpts("sessions_opened_total", "Total number of listing sessions opened"))
	m.sessionsClosed = auto.NewCounter(m.counterOpts("sessions_closed_total", "Total number of listing sessions closed by the client"))
	m.sessionsEvicted = auto.NewCounter(m.counterOpts("sessions_evicted_total", "Total number of listing sessions evicted because the registry was full"))
	m.sessionsExpired = auto.NewCounter(m.counterOpts("sessions_expired_total", "Total number of listing sessions dropped after idling past the TTL"))

	labels := []string{"endpoint", "method", "status_code"}
	m.httpRequests = auto.NewCounterVec(m.counterOpts("http_requests_total", "Total number of HTTP requests by endpoint and method"), labels)
	m.httpRequestDuration = auto.NewHistogramVec(m.histogramOpts("http_request_duration_milliseconds", "HTTP request duration in milliseconds", m.histogramBuckets), labels)

	m.errorRateByType = auto.NewCounterVec(m.counterOpts("errors_by_type_total", "Total number of errors by type and severity"), []string{"error_type", "severity"})
	m.errorRateByEndpoint = auto.NewCounterVec(m.counterOpts("errors_by_endpoint_total", "Total number of errors by endpoint"), []string{"endpoint", "method", "error_type"})
	m.errorLatency = auto.NewHistogramVec(m.histogramOpts("error_latency_milliseconds", "Latency of operations that ended in an error", m.histogramBuckets), []string{"component", "error_type"})

	m.systemMemoryUsage = auto.NewGauge(m.gaugeOpts("system_memory_bytes", "Allocated heap memory in bytes"))
	m.systemGoroutineCount = auto.NewGauge(m.gaugeOpts("system_goroutines", "Current number of goroutines"))
	m.systemGCPauseTime = auto.NewHistogram(m.histogramOpts("system_gc_pause_milliseconds", "Average GC pause time in milliseconds", m.histogramBuckets))
}

// Roster Metrics Functions.

// RecordViewComputed records one roster view derivation.
func RecordViewComputed(latencyMs float64, matches int) {
	globalManager.viewsComputed.Inc()
	globalManager.viewLatency.Observe(latencyMs)
	globalManager.viewMatches.Observe(float64(matches))
}

// RecordAction counts one listing action by type and outcome.
func RecordAction(actionType, outcome string) {
	globalManager.actions.WithLabelValues(actionType, outcome).Inc()
}

// RecordSelectionRejected counts a selection attempt on a full selection.
func RecordSelectionRejected() {
	globalManager.selectionRejected.Inc()
}

// RecordBoundFallback counts a range bound edit that kept the previous value.
func RecordBoundFallback(field string) {
	globalManager.boundFallbacks.WithLabelValues(field).Inc()
}

// Catalog Metrics Functions.

// UpdateCatalogSize sets the number of colleges in the catalog.
func UpdateCatalogSize(count int) {
	globalManager.catalogSize.Set(float64(count))
}

// RecordCatalogQueryLatency records a catalog lookup latency.
func RecordCatalogQueryLatency(latencyMs float64) {
	globalManager.catalogQueryLatency.Observe(latencyMs)
}

// Session Metrics Functions.

// UpdateSessionsActive sets the number of open sessions.
func UpdateSessionsActive(count int64) {
	globalManager.sessionsActive.Set(float64(count))
}

// RecordSessionOpened increments the opened sessions counter.
func RecordSessionOpened() {
	globalManager.sessionsOpened.Inc()
}

// RecordSessionClosed increments the closed sessions counter.
func RecordSessionClosed() {
	globalManager.sessionsClosed.Inc()
}

// RecordSessionEvicted increments the evicted sessions counter.
func RecordSessionEvicted() {
	globalManager.sessionsEvicted.Inc()
}

// RecordSessionsExpired adds n expired sessions.
func RecordSessionsExpired(n int) {
	globalManager.sessionsExpired.Add(float64(n))
}

// HTTP Metrics Functions.

// RecordHTTPRequest increments the HTTP request counter.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records an HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// Error Metrics Functions.

// RecordErrorByType records an error with type and severity labels.
func RecordErrorByType(errorType, severity string) {
	globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordErrorLatency records the latency of an operation that resulted in an error.
func RecordErrorLatency(component, errorType string, latencyMs float64) {
	globalManager.errorLatency.WithLabelValues(component, errorType).Observe(latencyMs)
}

// System Performance Metrics Functions.

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
