package attrs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus collectors created by NewMetrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "vango").
	Namespace string

	// Subsystem is the metrics subsystem (default: "attrs").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Metrics counts input the stores drop silently, plus renders.
//
// Create one Metrics per registry and share it between stores through
// Config.Metrics; registering twice on the same registry panics. The
// collectors are safe for concurrent use. A nil *Metrics records nothing.
type Metrics struct {
	droppedNames  prometheus.Counter
	ignoredValues *prometheus.CounterVec
	renders       prometheus.Counter
}

// NewMetrics creates and registers the attribute engine collectors:
//   - vango_attrs_dropped_names_total: names that sanitised to nothing
//   - vango_attrs_ignored_values_total: values of unsupported types, by Go type
//   - vango_attrs_renders_total: Render calls
func NewMetrics(config MetricsConfig) *Metrics {
	if config.Namespace == "" {
		config.Namespace = "vango"
	}
	if config.Subsystem == "" {
		config.Subsystem = "attrs"
	}
	if config.Registry == nil {
		config.Registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		droppedNames: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "dropped_names_total",
			Help:        "Attribute names dropped because nothing was left after sanitising",
			ConstLabels: config.ConstLabels,
		}),

		ignoredValues: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "ignored_values_total",
			Help:        "Attribute values ignored because their type is unsupported",
			ConstLabels: config.ConstLabels,
		}, []string{"type"}),

		renders: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "renders_total",
			Help:        "Total number of attribute strings rendered",
			ConstLabels: config.ConstLabels,
		}),
	}
}

func (m *Metrics) droppedName() {
	if m != nil {
		m.droppedNames.Inc()
	}
}

func (m *Metrics) ignoredValue(typ string) {
	if m != nil {
		m.ignoredValues.WithLabelValues(typ).Inc()
	}
}

func (m *Metrics) rendered() {
	if m != nil {
		m.renders.Inc()
	}
}
