package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Turn("SearchSongIntent")
	m.Turn("SearchSongIntent")
	m.UpstreamError(UpstreamPage)
	m.HandlerFailure()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.turns.WithLabelValues("SearchSongIntent")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.upstreamErrors.WithLabelValues(UpstreamPage)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.handlerFailures))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Turn("x")
		m.UpstreamError(UpstreamSearch)
		m.HandlerFailure()
	})
}
