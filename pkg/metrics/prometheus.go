// Package metrics provides Prometheus metrics for envelope computations.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label values for the kind label.
const (
	KindGeotherm  = "geotherm"
	KindFriction  = "friction"
	KindQuartz    = "quartz_creep"
	KindOlivine   = "olivine_creep"
	KindBorehole  = "borehole"
	KindEnvelope  = "envelope"
	KindPiezo     = "piezometer"
	KindReference = "reference"
)

// latencyBuckets covers sub-millisecond single profiles up to full envelopes
// on dense meshes.
var latencyBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25, 50, 100, 250} //nolint:gochecknoglobals // bucket table

// Manager manages all Prometheus metrics for envelope computations.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	customLabels     map[string]string
	registry         *prometheus.Registry

	profilesComputed     *prometheus.CounterVec
	profilePoints        *prometheus.GaugeVec
	computationLatency   *prometheus.HistogramVec
	errorRateByComponent *prometheus.CounterVec

	mohoTemperature prometheus.Gauge
	labTemperature  prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager()
}

// NewManager creates a new metrics manager. Without WithPrometheusRegistry
// it registers on a fresh private registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "envelopes",
		subsystem:        "lithosphere",
		histogramBuckets: latencyBuckets,
		enabled:          true,
		customLabels:     make(map[string]string),
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)
	labels := prometheus.Labels(m.customLabels)

	m.profilesComputed = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "profiles_computed_total",
			Help:        "Total number of depth profiles computed by kind",
			ConstLabels: labels,
		},
		[]string{"kind"},
	)

	m.profilePoints = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "profile_points",
			Help:        "Number of samples in the last computed profile by kind",
			ConstLabels: labels,
		},
		[]string{"kind"},
	)

	m.computationLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "computation_latency_milliseconds",
			Help:        "Histogram of computation latency in milliseconds by kind",
			Buckets:     m.histogramBuckets,
			ConstLabels: labels,
		},
		[]string{"kind"},
	)

	m.errorRateByComponent = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "errors_by_component_total",
			Help:        "Total number of errors by component",
			ConstLabels: labels,
		},
		[]string{"component", "error_type"},
	)

	m.mohoTemperature = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "moho_temperature_celsius",
		Help:        "Temperature at the Moho of the last computed geotherm",
		ConstLabels: labels,
	})

	m.labTemperature = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "lab_temperature_celsius",
		Help:        "Temperature at the LAB of the last computed geotherm",
		ConstLabels: labels,
	})
}

// RecordProfile counts one computed profile of the given kind and stores its size.
func (m *Manager) RecordProfile(kind string, points int) {
	if !m.enabled {
		return
	}
	m.profilesComputed.WithLabelValues(kind).Inc()
	m.profilePoints.WithLabelValues(kind).Set(float64(points))
}

// RecordLatency records a computation latency in milliseconds.
func (m *Manager) RecordLatency(kind string, latencyMs float64) {
	if !m.enabled {
		return
	}
	m.computationLatency.WithLabelValues(kind).Observe(latencyMs)
}

// RecordError records an error with component and type labels.
func (m *Manager) RecordError(component, errorType string) {
	if !m.enabled {
		return
	}
	m.errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

// UpdateHorizonTemperatures sets the Moho and LAB temperature gauges (°C).
func (m *Manager) UpdateHorizonTemperatures(moho, lab float64) {
	if !m.enabled {
		return
	}
	m.mohoTemperature.Set(moho)
	m.labTemperature.Set(lab)
}

// WriteTextfile dumps the manager's registry in the text exposition format,
// suitable for the node_exporter textfile collector.
func (m *Manager) WriteTextfile(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty textfile path", ErrObserveFailed)
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("%w: %w", ErrObserveFailed, err)
	}
	return nil
}

// Default returns the global manager.
func Default() *Manager {
	return globalManager
}
