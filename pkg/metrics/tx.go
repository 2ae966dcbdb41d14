package metrics

import "github.com/prometheus/client_golang/prometheus"

const (
	OutcomeCommit   = "commit"
	OutcomeRollback = "rollback"
)

// TxMetrics counts write transactions by operation and outcome.
type TxMetrics struct {
	total *prometheus.CounterVec
}

// NewTxMetrics registers the transaction counter on the provided registerer.
func NewTxMetrics(reg prometheus.Registerer) *TxMetrics {
	if reg == nil {
		return &TxMetrics{}
	}
	total := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "db_transactions_total",
		Help: "Write transactions, by operation and outcome.",
	}, []string{"operation", "outcome"})
	reg.MustRegister(total)
	return &TxMetrics{total: total}
}

// Record counts a finished transaction; a nil err is a commit.
func (m *TxMetrics) Record(operation string, err error) {
	if m == nil || m.total == nil {
		return
	}
	outcome := OutcomeCommit
	if err != nil {
		outcome = OutcomeRollback
	}
	m.total.WithLabelValues(normalizeLabel(operation), outcome).Inc()
}
