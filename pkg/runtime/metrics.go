package runtime

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus metrics for a runtime process.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "lumen").
	Namespace string

	// Subsystem is the metrics subsystem (default: "runtime").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for frame duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures MetricsConfig.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) { c.Namespace = namespace }
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) { c.ConstLabels = labels }
}

// WithBuckets sets the frame duration histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) { c.Buckets = buckets }
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) { c.Registry = registry }
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "lumen",
		Subsystem: "runtime",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus metrics a process reports. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	framesTotal        prometheus.Counter
	messagesDispatched prometheus.Counter
	dispatchMisses     prometheus.Counter
	syncMutations      prometheus.Counter
	syncSkips          prometheus.Counter
	frameDuration      prometheus.Histogram
}

// NewMetrics registers and returns the runtime metrics.
//
// Metrics collected:
//   - lumen_runtime_frames_total: Counter of frames executed
//   - lumen_runtime_messages_dispatched_total: Counter of mailbox messages folded into the model
//   - lumen_runtime_dispatch_misses_total: Counter of drained entries with no matching handler
//   - lumen_runtime_sync_mutations_total: Counter of surface mutations applied
//   - lumen_runtime_sync_skips_total: Counter of subtrees skipped on shape or count mismatch
//   - lumen_runtime_frame_duration_seconds: Histogram of frame duration
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		framesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "frames_total",
			Help:        "Total number of frames executed",
			ConstLabels: config.ConstLabels,
		}),

		messagesDispatched: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "messages_dispatched_total",
			Help:        "Total number of mailbox messages folded into the model",
			ConstLabels: config.ConstLabels,
		}),

		dispatchMisses: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "dispatch_misses_total",
			Help:        "Total number of drained mailbox entries with no matching handler",
			ConstLabels: config.ConstLabels,
		}),

		syncMutations: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "sync_mutations_total",
			Help:        "Total number of surface mutations applied during sync",
			ConstLabels: config.ConstLabels,
		}),

		syncSkips: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "sync_skips_total",
			Help:        "Total number of subtrees skipped on shape or child count mismatch",
			ConstLabels: config.ConstLabels,
		}),

		frameDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "frame_duration_seconds",
			Help:        "Frame duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),
	}
}

func (m *Metrics) recordFrame(seconds float64) {
	if m == nil {
		return
	}
	m.framesTotal.Inc()
	m.frameDuration.Observe(seconds)
}

func (m *Metrics) recordDispatch(messages, misses int) {
	if m == nil {
		return
	}
	m.messagesDispatched.Add(float64(messages))
	m.dispatchMisses.Add(float64(misses))
}

func (m *Metrics) recordSync(mutations, skips int) {
	if m == nil {
		return
	}
	m.syncMutations.Add(float64(mutations))
	m.syncSkips.Add(float64(skips))
}
