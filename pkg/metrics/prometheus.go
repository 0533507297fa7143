// Package metrics provides Prometheus metrics for the varsity trust-scoring service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the varsity service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Core business metrics
	workoutsLogged   prometheus.Counter
	workoutsRejected prometheus.Counter
	decisions        *prometheus.CounterVec
	decisionRepeats  prometheus.Counter
	watchlistToggles prometheus.Counter
	exportsServed    prometheus.Counter

	// Operational health metrics
	reviewQueueSize prometheus.Gauge
	rosterSize      prometheus.Gauge

	// Persistence metrics
	storeWrites          prometheus.Counter
	storeFaultsRecovered prometheus.Counter

	// HTTP performance metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpErrors          *prometheus.CounterVec
}

var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "varsity",
		subsystem:        "engine",
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
	// Register metrics on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	m.workoutsLogged = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "workouts_logged_total",
		Help:      "Total number of workouts logged by athletes",
	})

	m.workoutsRejected = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "workouts_rejected_total",
		Help:      "Total number of workout submissions rejected as invalid",
	})

	m.decisions = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "review_decisions_total",
			Help:      "Total number of trainer review decisions by outcome",
		},
		[]string{"outcome"},
	)

	m.decisionRepeats = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "review_decision_repeats_total",
		Help:      "Total number of repeat decisions on already-decided workouts",
	})

	m.watchlistToggles = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "watchlist_toggles_total",
		Help:      "Total number of recruiter watchlist toggles",
	})

	m.exportsServed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "exports_served_total",
		Help:      "Total number of CSV exports served",
	})

	m.reviewQueueSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "review_queue_size",
		Help:      "Current number of workouts pending trainer review",
	})

	m.rosterSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "roster_size",
		Help:      "Total number of athletes on the roster",
	})

	m.storeWrites = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_writes_total",
		Help:      "Total number of persistence layer writes",
	})

	m.storeFaultsRecovered = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_faults_recovered_total",
		Help:      "Total number of storage faults recovered by falling back to defaults",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_errors_total",
			Help:      "Total number of HTTP error responses by endpoint and error type",
		},
		[]string{"endpoint", "method", "error_type"},
	)
}

// Package-level helpers operating on the global manager.

// RecordWorkoutLogged increments the logged-workout counter.
func RecordWorkoutLogged() {
	globalManager.workoutsLogged.Inc()
}

// RecordWorkoutRejected increments the rejected-submission counter.
func RecordWorkoutRejected() {
	globalManager.workoutsRejected.Inc()
}

// RecordDecision increments the decision counter for an outcome ("verified" or "flagged").
func RecordDecision(outcome string) {
	globalManager.decisions.WithLabelValues(outcome).Inc()
}

// RecordDecisionRepeat increments the repeat-decision counter.
func RecordDecisionRepeat() {
	globalManager.decisionRepeats.Inc()
}

// RecordWatchlistToggle increments the watchlist toggle counter.
func RecordWatchlistToggle() {
	globalManager.watchlistToggles.Inc()
}

// RecordExport increments the export counter.
func RecordExport() {
	globalManager.exportsServed.Inc()
}

// UpdateReviewQueueSize sets the current pending review queue size.
func UpdateReviewQueueSize(size int) {
	globalManager.reviewQueueSize.Set(float64(size))
}

// UpdateRosterSize sets the current roster size.
func UpdateRosterSize(count int) {
	globalManager.rosterSize.Set(float64(count))
}

// RecordStoreWrite increments the persistence write counter.
func RecordStoreWrite() {
	globalManager.storeWrites.Inc()
}

// RecordStoreFaultRecovered increments the recovered-fault counter.
func RecordStoreFaultRecovered() {
	globalManager.storeFaultsRecovered.Inc()
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordHTTPError records an HTTP error response.
func RecordHTTPError(endpoint, method, errorType string) {
	globalManager.httpErrors.WithLabelValues(endpoint, method, errorType).Inc()
}

// GetRegistry returns the custom Prometheus registry used by the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
