// Package metrics exports toast queue activity as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/wisp-ui/wisp/internal/toast"
)

// Config configures the collector.
type Config struct {
	// Namespace prefixes every metric name (default: "wisp").
	Namespace string
	// ConstLabels are added to all metrics, e.g. to tell providers apart.
	ConstLabels prometheus.Labels
	// Registry receives the collectors (default: prometheus.DefaultRegisterer).
	Registry prometheus.Registerer
}

// Option configures a Collector.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registerer.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

// Collector tracks queue throughput and occupancy:
//   - wisp_toasts_enqueued_total{variant}
//   - wisp_toasts_removed_total{reason}
//   - wisp_toasts_active
type Collector struct {
	enqueued *prometheus.CounterVec
	removed  *prometheus.CounterVec
	active   prometheus.Gauge
}

// New registers the toast collectors. Registering twice on the same registry
// panics, as with promauto.
func New(opts ...Option) *Collector {
	cfg := Config{
		Namespace: "wisp",
		Registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	factory := promauto.With(cfg.Registry)
	return &Collector{
		enqueued: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "toasts_enqueued_total",
			Help:        "Total number of toasts enqueued, by variant",
			ConstLabels: cfg.ConstLabels,
		}, []string{"variant"}),
		removed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "toasts_removed_total",
			Help:        "Total number of toasts removed from the queue, by reason",
			ConstLabels: cfg.ConstLabels,
		}, []string{"reason"}),
		active: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   cfg.Namespace,
			Name:        "toasts_active",
			Help:        "Number of toasts currently queued",
			ConstLabels: cfg.ConstLabels,
		}),
	}
}

// Observe updates the metrics for one queue event. It has the toast.Observer
// signature so it can be passed to toast.WithObserver directly.
func (c *Collector) Observe(ev toast.Event) {
	if c == nil {
		return
	}
	if ev.Type == toast.EventEnqueued {
		c.enqueued.WithLabelValues(string(ev.Record.Variant)).Inc()
		c.active.Inc()
		return
	}
	c.removed.WithLabelValues(string(ev.Type)).Inc()
	c.active.Dec()
}

var _ toast.Observer = (*Collector)(nil).Observe
