package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Run outcomes used as the "outcome" label.
const (
	OutcomeOK         = "ok"
	OutcomeInvalid    = "invalid"
	OutcomeUnsolvable = "unsolvable"
	OutcomeUnknown    = "unknown"
	OutcomeError      = "error"
)

// Metrics groups the service collectors.
type Metrics struct {
	Runs         *prometheus.CounterVec
	RunDuration  *prometheus.HistogramVec
	TraceSteps   *prometheus.HistogramVec
	HTTPRequests *prometheus.CounterVec
}

// New creates the collectors and registers them with reg. A nil reg skips
// registration, which is convenient in tests.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "algoviz_runs_total",
			Help: "Algorithm runs by algorithm id and outcome.",
		}, []string{"algorithm", "outcome"}),
		RunDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "algoviz_run_duration_seconds",
			Help:    "Wall time of algorithm runs, decoding included.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"algorithm"}),
		TraceSteps: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "algoviz_trace_steps",
			Help:    "Number of trace lines produced per run.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 9),
		}, []string{"algorithm"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "algoviz_http_requests_total",
			Help: "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
	}
	if reg != nil {
		reg.MustRegister(m.Runs, m.RunDuration, m.TraceSteps, m.HTTPRequests)
	}

	return m
}

// ObserveRun records one finished run. steps is ignored when negative.
func (m *Metrics) ObserveRun(algorithm, outcome string, elapsed time.Duration, steps int) {
	if m == nil {
		return
	}
	m.Runs.WithLabelValues(algorithm, outcome).Inc()
	m.RunDuration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
	if steps >= 0 {
		m.TraceSteps.WithLabelValues(algorithm).Observe(float64(steps))
	}
}
