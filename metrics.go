package vtl

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig controls how the registry collectors are named and where
// they are registered.
type MetricsConfig struct {
	Namespace   string // default "vtl"
	Subsystem   string
	ConstLabels prometheus.Labels

	// Registry defaults to a fresh private registry so parallel test
	// binaries never register twice.
	Registry prometheus.Registerer
}

// MetricsOption configures EnableMetrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metric namespace.
func WithNamespace(ns string) MetricsOption {
	return func(c *MetricsConfig) { c.Namespace = ns }
}

// WithSubsystem sets the metric subsystem.
func WithSubsystem(sub string) MetricsOption {
	return func(c *MetricsConfig) { c.Subsystem = sub }
}

// WithConstLabels adds labels to every collector.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) { c.ConstLabels = labels }
}

// WithRegistry registers the collectors with r instead of a private registry.
func WithRegistry(r prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) { c.Registry = r }
}

// Collector holds the registry collectors.
type Collector struct {
	// MountsTotal counts registrations by kind: render, hook or custom.
	MountsTotal *prometheus.CounterVec

	// ActiveMounts is the number of registrations not yet cleaned up.
	ActiveMounts prometheus.Gauge

	// CleanupFailures counts disposers that panicked during a sweep.
	CleanupFailures prometheus.Counter
}

var activeCollector atomic.Pointer[Collector]

// EnableMetrics registers the collectors and starts recording. With the
// defaults the series are vtl_mounts_total, vtl_active_mounts and
// vtl_cleanup_failures_total. Calling it again replaces the collectors.
func EnableMetrics(opts ...MetricsOption) *Collector {
	cfg := MetricsConfig{Namespace: "vtl"}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.NewRegistry()
	}

	f := promauto.With(cfg.Registry)
	c := &Collector{
		MountsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			ConstLabels: cfg.ConstLabels,
			Name:        "mounts_total",
			Help:        "Registered mounts by kind.",
		}, []string{"kind"}),
		ActiveMounts: f.NewGauge(prometheus.GaugeOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			ConstLabels: cfg.ConstLabels,
			Name:        "active_mounts",
			Help:        "Mounts registered and not yet cleaned up.",
		}),
		CleanupFailures: f.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			ConstLabels: cfg.ConstLabels,
			Name:        "cleanup_failures_total",
			Help:        "Disposers that panicked during cleanup.",
		}),
	}
	activeCollector.Store(c)
	return c
}

// DisableMetrics stops recording. Registered collectors keep their values.
func DisableMetrics() { activeCollector.Store(nil) }

// GetMetrics returns the active collectors, or nil when metrics are off.
func GetMetrics() *Collector { return activeCollector.Load() }

func recordMount(kind string) {
	c := activeCollector.Load()
	if c == nil {
		return
	}
	if kind == "" {
		kind = "custom"
	}
	c.MountsTotal.WithLabelValues(kind).Inc()
	c.ActiveMounts.Inc()
}

func recordUnmount() {
	if c := activeCollector.Load(); c != nil {
		c.ActiveMounts.Dec()
	}
}

func recordCleanupFailure() {
	if c := activeCollector.Load(); c != nil {
		c.CleanupFailures.Inc()
	}
}
