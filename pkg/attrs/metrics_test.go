package attrs

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsCountDrops(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(MetricsConfig{Registry: reg})

	a := NewWithConfig(Config{ID: "a", Metrics: m})
	b := NewWithConfig(Config{ID: "b", Metrics: m})

	a.Add("e", "!!!", "x").Add("e", "class", []any{"ok", map[string]int{}})
	b.Set("e", "  ", "y").Add("e", "data-x", struct{}{})
	a.Render("e")
	b.Render("e")
	b.Render("missing")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.droppedNames))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ignoredValues.WithLabelValues("map[string]int")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ignoredValues.WithLabelValues("struct {}")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.renders))

	assert.Equal(t, `class="ok"`, a.Render("e"))
	assert.Equal(t, "", b.Render("e"))
}

func TestMetricsNames(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(MetricsConfig{Registry: reg, Namespace: "app", ConstLabels: prometheus.Labels{"svc": "web"}})
	NewWithConfig(Config{Metrics: m}).Add("e", "?", "x").Add("e", "x", func() {}).Render("e")

	families, err := reg.Gather()
	require.NoError(t, err)

	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{
		"app_attrs_dropped_names_total",
		"app_attrs_ignored_values_total",
		"app_attrs_renders_total",
	}, names)
}

func TestMetricsDuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(MetricsConfig{Registry: reg})
	assert.Panics(t, func() { NewMetrics(MetricsConfig{Registry: reg}) })
}

func TestNilMetricsRecordNothing(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.droppedName()
		m.ignoredValue("x")
		m.rendered()
	})
	s := New()
	assert.Equal(t, "", s.Add("e", "!!!").Render("e"))
}
