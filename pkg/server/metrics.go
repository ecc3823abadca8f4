package server

import (
	"net/http"
	"time"

	"github.com/gridpolicy/gridpolicy/pkg/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricPrefix = "gridpolicy_"

// metrics bundles the decision metrics. Each Server gets its own registry so
// tests can build as many servers as they like.
type metrics struct {
	registry *prometheus.Registry

	decisionsTotal      *prometheus.CounterVec
	degradedInputsTotal *prometheus.CounterVec
	decideDuration      prometheus.Histogram
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		decisionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "decisions_total",
				Help: "Total decisions by action, solar mode and matched rule",
			},
			[]string{"action", "solar", "rule"},
		),
		degradedInputsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "degraded_inputs_total",
				Help: "Total input variables replaced by defaults, by variable",
			},
			[]string{"field"},
		),
		decideDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    metricPrefix + "decide_duration_seconds",
			Help:    "Decision latency in seconds",
			Buckets: []float64{.00005, .0001, .00025, .0005, .001, .0025, .005, .01, .05},
		}),
	}
	m.registry.MustRegister(
		m.decisionsTotal,
		m.degradedInputsTotal,
		m.decideDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *metrics) observe(d types.Decision, elapsed time.Duration) {
	m.decisionsTotal.WithLabelValues(string(d.Action), string(d.Solar), string(d.Rule)).Inc()
	for _, f := range d.Degraded {
		m.degradedInputsTotal.WithLabelValues(f).Inc()
	}
	m.decideDuration.Observe(elapsed.Seconds())
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{DisableCompression: true})
}
