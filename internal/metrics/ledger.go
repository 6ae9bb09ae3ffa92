package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// LedgerMetrics records outcomes of ledger and transfer operations.
// A nil *LedgerMetrics is valid and records nothing.
type LedgerMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

// NewLedgerMetrics registers the ledger metrics on the provided registerer.
func NewLedgerMetrics(reg prometheus.Registerer) *LedgerMetrics {
	if reg == nil {
		return &LedgerMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "shopledger_operation_duration_seconds",
		Help:    "Duration of ledger operations in seconds, including the storage transaction.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shopledger_operation_success_total",
		Help: "Ledger operations that committed.",
	}, []string{"operation"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shopledger_operation_failure_total",
		Help: "Ledger operations that failed validation or rolled back.",
	}, []string{"operation"})
	reg.MustRegister(duration, success, failure)
	return &LedgerMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
	}
}

// Observe records one finished operation. err decides which counter is incremented.
func (m *LedgerMetrics) Observe(operation string, started time.Time, err error) {
	if m == nil || m.duration == nil {
		return
	}
	op := normalizeLabel(operation)
	m.duration.WithLabelValues(op).Observe(time.Since(started).Seconds())
	if err != nil {
		m.failure.WithLabelValues(op).Inc()
		return
	}
	m.success.WithLabelValues(op).Inc()
}

func normalizeLabel(operation string) string {
	if operation == "" {
		return "unknown"
	}
	return operation
}
