package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/internal/metrics"
)

func TestNew_Registers(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	m.ObserveRun("dijkstra", metrics.OutcomeOK, time.Millisecond, 12)
	m.HTTPRequests.WithLabelValues("run", "200").Inc()

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{
		"algoviz_runs_total",
		"algoviz_run_duration_seconds",
		"algoviz_trace_steps",
		"algoviz_http_requests_total",
	}, names)
}

func TestObserveRun(t *testing.T) {
	m := metrics.New(nil)
	m.ObserveRun("kruskal", metrics.OutcomeUnsolvable, time.Millisecond, 3)
	m.ObserveRun("kruskal", metrics.OutcomeUnsolvable, time.Millisecond, -1)
	m.ObserveRun("kruskal", metrics.OutcomeOK, time.Millisecond, 5)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Runs.WithLabelValues("kruskal", metrics.OutcomeUnsolvable)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues("kruskal", metrics.OutcomeOK)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.TraceSteps), "one series per algorithm")
}

func TestObserveRun_NilSafe(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() { m.ObserveRun("x", metrics.OutcomeOK, 0, 0) })
}
