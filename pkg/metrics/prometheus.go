// Package metrics provides Prometheus metrics for the evaluation engine.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns the Prometheus metrics for the evaluation pipeline.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	// Evaluation throughput
	evaluationsTotal   prometheus.Counter
	evaluationDuration prometheus.Histogram

	// Alignment quality counters, aggregated across result files
	eventsMatched  prometheus.Counter
	falsePositives prometheus.Counter
	falseNegatives prometheus.Counter

	// Clock coverage: matched pairings where both clocks parsed
	clockSamples prometheus.Counter

	// Store activity
	resultFilesRead prometheus.Counter
	storeErrors     prometheus.Counter
}

// Global metrics manager on a custom registry, keeping the default Go
// collectors out of the scrape output.
var globalManager *Manager                    //nolint:gochecknoglobals // singleton metrics manager
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // registry backing the singleton

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "matscore",
		subsystem:        "evaluation",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.evaluationsTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "runs_total",
		Help:      "Total number of result files evaluated",
	})
	m.evaluationDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "duration_seconds",
		Help:      "Histogram of single-file evaluation duration in seconds",
		Buckets:   m.histogramBuckets,
	})
	m.eventsMatched = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "events_matched_total",
		Help:      "Total matched event pairings across evaluations",
	})
	m.falsePositives = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "false_positives_total",
		Help:      "Total predicted events with no ground-truth counterpart",
	})
	m.falseNegatives = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "false_negatives_total",
		Help:      "Total ground-truth events the prediction missed",
	})
	m.clockSamples = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "clock_samples_total",
		Help:      "Total matched pairings where both match clocks parsed",
	})
	m.resultFilesRead = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "result_files_read_total",
		Help:      "Total result documents loaded from the match store",
	})
	m.storeErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_errors_total",
		Help:      "Total match store read failures",
	})
}

// RecordEvaluation records one completed single-file evaluation.
func RecordEvaluation(durationSeconds float64) {
	globalManager.evaluationsTotal.Inc()
	globalManager.evaluationDuration.Observe(durationSeconds)
}

// RecordAlignment records the detection counts of one alignment.
func RecordAlignment(matched, falsePositives, falseNegatives int) {
	globalManager.eventsMatched.Add(float64(matched))
	globalManager.falsePositives.Add(float64(falsePositives))
	globalManager.falseNegatives.Add(float64(falseNegatives))
}

// RecordClockSamples records how many matched pairings carried two
// parseable clocks.
func RecordClockSamples(count int) {
	globalManager.clockSamples.Add(float64(count))
}

// RecordResultFileRead records one result document load.
func RecordResultFileRead() {
	globalManager.resultFilesRead.Inc()
}

// RecordStoreError records one match store failure.
func RecordStoreError() {
	globalManager.storeErrors.Inc()
}

// Handler returns an HTTP handler exposing the global registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(customRegistry, promhttp.HandlerOpts{})
}

// GetRegistry returns the global registry, mainly for tests.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
