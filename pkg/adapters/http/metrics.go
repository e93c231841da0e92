package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Normalize request outcomes, used as the result label.
const (
	resultOK       = "ok"
	resultTooShort = "too_short"
	resultInvalid  = "invalid"
)

// Metrics holds the API collectors on a private registry, so several handlers can coexist
// in one process (and in tests).
type Metrics struct {
	registry           *prometheus.Registry
	normalizeRequests  *prometheus.CounterVec
	generatedSequences prometheus.Counter
	underYield         prometheus.Histogram
}

// NewMetrics creates and registers the API collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		normalizeRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "todi_normalize_requests_total",
				Help: "Total number of normalize requests by result",
			},
			[]string{"result"},
		),
		generatedSequences: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "todi_generated_sequences_total",
				Help: "Total number of alternative sequences returned",
			},
		),
		underYield: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "todi_generate_underyield",
				Help:    "Requested minus returned sequences per generate request",
				Buckets: []float64{0, 1, 2, 5, 10, 25, 50},
			},
		),
	}
	m.registry.MustRegister(m.normalizeRequests, m.generatedSequences, m.underYield)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
