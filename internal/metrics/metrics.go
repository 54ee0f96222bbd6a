// Package metrics holds the Prometheus counters shared by the bot and CLI.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
)

// Generation sources.
const (
	SourceRand = "rand"
	SourceAI   = "ai"
)

type Metrics struct {
	reg *prometheus.Registry

	SetsGenerated      *prometheus.CounterVec
	Comparisons        prometheus.Counter
	ValidationFailures prometheus.Counter
	DrawChecks         prometheus.Counter
	ParabolaRenders    prometheus.Counter
}

// New registers a fresh set of counters on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		reg: reg,
		SetsGenerated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lotto645_sets_generated_total",
			Help: "Number sets generated, by source.",
		}, []string{"source"}),
		Comparisons: f.NewCounter(prometheus.CounterOpts{
			Name: "lotto645_comparisons_total",
			Help: "Successful winning-number comparisons.",
		}),
		ValidationFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "lotto645_validation_failures_total",
			Help: "Rejected winning-number inputs.",
		}),
		DrawChecks: f.NewCounter(prometheus.CounterOpts{
			Name: "lotto645_draw_checks_total",
			Help: "Batches checked against a historical draw.",
		}),
		ParabolaRenders: f.NewCounter(prometheus.CounterOpts{
			Name: "lotto645_parabola_renders_total",
			Help: "Parabola charts rendered.",
		}),
	}
}

func (m *Metrics) AddGenerated(source string, n int) {
	m.SetsGenerated.WithLabelValues(source).Add(float64(n))
}

// Generated reads back the number of sets generated from source.
func (m *Metrics) Generated(source string) uint64 {
	return counterValue(m.SetsGenerated.WithLabelValues(source))
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

func counterValue(c prometheus.Counter) uint64 {
	var pb dto.Metric
	if err := c.Write(&pb); err != nil {
		return 0
	}
	return uint64(pb.GetCounter().GetValue())
}
