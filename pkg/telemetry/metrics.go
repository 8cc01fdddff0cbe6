package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus recorder.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "arbor").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for region swap duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus recorder.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "arbor",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Recorder holds the lifecycle collectors.
type Recorder struct {
	materialized    *prometheus.CounterVec
	teardowns       prometheus.Counter
	sweeps          prometheus.Counter
	regionSwaps     prometheus.Counter
	swapDuration    prometheus.Histogram
	reconciliations prometheus.Counter
	invalidChildren prometheus.Counter
	activeMounts    prometheus.Gauge
}

// NewRecorder registers the lifecycle collectors and returns a Recorder.
// Registering twice against the same registry panics, as with promauto.
func NewRecorder(opts ...MetricsOption) *Recorder {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Recorder{
		materialized: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "nodes_materialized_total",
			Help:        "Total number of widgets produced, by description kind",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		teardowns: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "teardowns_total",
			Help:        "Total number of cleanup callbacks invoked",
			ConstLabels: config.ConstLabels,
		}),

		sweeps: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "sweeps_total",
			Help:        "Total number of cleanup sweeps started",
			ConstLabels: config.ConstLabels,
		}),

		regionSwaps: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "region_swaps_total",
			Help:        "Total number of reactive region replacements",
			ConstLabels: config.ConstLabels,
		}),

		swapDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "region_swap_duration_seconds",
			Help:        "Time spent replacing a reactive region in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		reconciliations: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "reconciliations_total",
			Help:        "Total number of reactive properties restored by the reconciliation guard",
			ConstLabels: config.ConstLabels,
		}),

		invalidChildren: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "invalid_children_total",
			Help:        "Total number of function values found where content was expected",
			ConstLabels: config.ConstLabels,
		}),

		activeMounts: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "active_mounts",
			Help:        "Number of trees currently mounted into a target",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// Materialized records n widgets produced for a description kind.
func (r *Recorder) Materialized(kind string, n int) {
	if r == nil || n == 0 {
		return
	}
	r.materialized.WithLabelValues(kind).Add(float64(n))
}

// Teardown records one cleanup callback invocation.
func (r *Recorder) Teardown() {
	if r == nil {
		return
	}
	r.teardowns.Inc()
}

// Sweep records one sweep started at a root widget.
func (r *Recorder) Sweep() {
	if r == nil {
		return
	}
	r.sweeps.Inc()
}

// RegionSwap records a completed region replacement.
func (r *Recorder) RegionSwap(d time.Duration) {
	if r == nil {
		return
	}
	r.regionSwaps.Inc()
	r.swapDuration.Observe(d.Seconds())
}

// Reconciled records a property restored to its source value.
func (r *Recorder) Reconciled() {
	if r == nil {
		return
	}
	r.reconciliations.Inc()
}

// InvalidChild records a function value found as content.
func (r *Recorder) InvalidChild() {
	if r == nil {
		return
	}
	r.invalidChildren.Inc()
}

// MountOpened records a tree mounted into a target.
func (r *Recorder) MountOpened() {
	if r == nil {
		return
	}
	r.activeMounts.Inc()
}

// MountClosed records a tree removed from a target.
func (r *Recorder) MountClosed() {
	if r == nil {
		return
	}
	r.activeMounts.Dec()
}
