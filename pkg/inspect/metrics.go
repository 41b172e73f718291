package inspect

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the registry metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "vx").
	Namespace string

	// Subsystem is the metrics subsystem (default: "registry").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// MetricsOption configures the registry metrics.
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

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// Metrics holds Prometheus instruments for registry operations.
type Metrics struct {
	mounts          prometheus.Counter
	removals        prometheus.Counter
	borrows         *prometheus.CounterVec
	borrowConflicts prometheus.Counter
	emits           prometheus.Counter
	listeners       prometheus.Counter
	updates         prometheus.Counter
}

// NewMetrics creates and registers the registry metrics.
func NewMetrics(opts ...MetricsOption) *Metrics {
	cfg := &MetricsConfig{
		Namespace: "vx",
		Subsystem: "registry",
		Registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	factory := promauto.With(cfg.Registry)
	return &Metrics{
		mounts: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "mounts_total",
			Help:        "Total number of components mounted.",
			ConstLabels: cfg.ConstLabels,
		}),
		removals: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "removals_total",
			Help:        "Total number of nodes removed.",
			ConstLabels: cfg.ConstLabels,
		}),
		borrows: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "borrows_total",
			Help:        "Total number of successful checkouts by mode.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"mode"}),
		borrowConflicts: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "borrow_conflicts_total",
			Help:        "Total number of checkouts rejected with node-in-use.",
			ConstLabels: cfg.ConstLabels,
		}),
		emits: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "emits_total",
			Help:        "Total number of slot fires.",
			ConstLabels: cfg.ConstLabels,
		}),
		listeners: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "listeners_notified_total",
			Help:        "Total number of listener callbacks dispatched.",
			ConstLabels: cfg.ConstLabels,
		}),
		updates: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "updates_total",
			Help:        "Total number of explicit update calls.",
			ConstLabels: cfg.ConstLabels,
		}),
	}
}
