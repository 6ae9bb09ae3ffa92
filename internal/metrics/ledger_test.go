package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerMetricsCountsSuccessAndFailure(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewLedgerMetrics(reg)

	m.Observe("record_sale", time.Now().Add(-250*time.Millisecond), nil)
	m.Observe("record_sale", time.Now(), nil)
	m.Observe("record_sale", time.Now(), errors.New("boom"))
	m.Observe("", time.Now(), nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.success.WithLabelValues("record_sale")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.failure.WithLabelValues("record_sale")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.success.WithLabelValues("unknown")))

	mfs, err := reg.Gather()
	require.NoError(t, err)
	var found bool
	for _, mf := range mfs {
		if mf.GetName() != "shopledger_operation_duration_seconds" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "operation" && label.GetValue() == "record_sale" {
					found = true
					assert.Equal(t, uint64(3), metric.GetHistogram().GetSampleCount())
					assert.Greater(t, metric.GetHistogram().GetSampleSum(), 0.2)
				}
			}
		}
	}
	assert.True(t, found, "duration histogram for record_sale should be exported")
}

func TestLedgerMetricsNilSafe(t *testing.T) {
	var m *LedgerMetrics
	assert.NotPanics(t, func() { m.Observe("transfer", time.Now(), nil) })

	unregistered := NewLedgerMetrics(nil)
	assert.NotPanics(t, func() { unregistered.Observe("transfer", time.Now(), errors.New("x")) })
}
