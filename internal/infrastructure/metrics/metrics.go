package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/iho/bankledger/internal/domain"
	"github.com/iho/bankledger/internal/usecase"
)

// Metrics holds the ledger Prometheus metrics. It implements
// usecase.LedgerMetrics.
type Metrics struct {
	// Deposit metrics
	DepositsApplied  prometheus.Counter
	DepositsRejected *prometheus.CounterVec
	DepositAmount    prometheus.Histogram

	// Interest metrics
	InterestOutcomes     *prometheus.CounterVec
	InterestCredited     prometheus.Counter
	InterestRuns         prometheus.Counter
	InterestRunDuration  prometheus.Histogram
	InterestLastRunStart prometheus.Gauge

	// Consistency metrics
	ConsistencyChecks   *prometheus.CounterVec
	AccountBalanceTotal prometheus.Gauge
	ShardBalanceTotal   prometheus.Gauge
}

// New creates the ledger metrics and registers them with the default registerer.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer creates the ledger metrics and registers them with reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		DepositsApplied: f.NewCounter(prometheus.CounterOpts{
			Name: "bankledger_deposits_applied_total",
			Help: "Total number of balance changes committed",
		}),
		DepositsRejected: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankledger_deposits_rejected_total",
				Help: "Total number of balance changes rejected by reason",
			},
			[]string{"reason"},
		),
		DepositAmount: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "bankledger_deposit_amount_cents",
			Help:    "Absolute value of committed balance changes in cents",
			Buckets: []float64{1, 100, 1000, 10000, 100000, 1000000, 10000000},
		}),

		InterestOutcomes: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankledger_interest_outcomes_total",
				Help: "Interest applies by outcome",
			},
			[]string{"outcome"},
		),
		InterestCredited: f.NewCounter(prometheus.CounterOpts{
			Name: "bankledger_interest_credited_cents_total",
			Help: "Total interest credited in cents",
		}),
		InterestRuns: f.NewCounter(prometheus.CounterOpts{
			Name: "bankledger_interest_runs_total",
			Help: "Total number of completed interest runs",
		}),
		InterestRunDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "bankledger_interest_run_duration_seconds",
			Help:    "Duration of completed interest runs",
			Buckets: []float64{.1, .5, 1, 5, 15, 60, 300, 900},
		}),
		InterestLastRunStart: f.NewGauge(prometheus.GaugeOpts{
			Name: "bankledger_interest_last_run_timestamp_seconds",
			Help: "Start time of the last completed interest run",
		}),

		ConsistencyChecks: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankledger_consistency_checks_total",
				Help: "Consistency checks by result",
			},
			[]string{"result"},
		),
		AccountBalanceTotal: f.NewGauge(prometheus.GaugeOpts{
			Name: "bankledger_account_balance_total_cents",
			Help: "Sum of account balances at the last consistency check",
		}),
		ShardBalanceTotal: f.NewGauge(prometheus.GaugeOpts{
			Name: "bankledger_shard_balance_total_cents",
			Help: "Sum of aggregate shard balances at the last consistency check",
		}),
	}
}

// DepositApplied implements usecase.LedgerMetrics.
func (m *Metrics) DepositApplied(cents int64) {
	m.DepositsApplied.Inc()
	if cents < 0 {
		cents = -cents
	}
	m.DepositAmount.Observe(float64(cents))
}

// DepositRejected implements usecase.LedgerMetrics.
func (m *Metrics) DepositRejected(reason string) {
	m.DepositsRejected.WithLabelValues(reason).Inc()
}

// InterestOutcome implements usecase.LedgerMetrics.
func (m *Metrics) InterestOutcome(outcome domain.InterestOutcome, cents int64) {
	m.InterestOutcomes.WithLabelValues(outcome.String()).Inc()
	m.InterestCredited.Add(float64(cents))
}

// InterestRunCompleted implements usecase.LedgerMetrics.
func (m *Metrics) InterestRunCompleted(run *domain.InterestRun) {
	m.InterestRuns.Inc()
	m.InterestRunDuration.Observe(run.FinishedAt.Sub(run.StartedAt).Seconds())
	m.InterestLastRunStart.Set(float64(run.StartedAt.Unix()))
}

// ConsistencyChecked implements usecase.LedgerMetrics.
func (m *Metrics) ConsistencyChecked(report *usecase.ConsistencyReport) {
	switch {
	case report.Skipped:
		m.ConsistencyChecks.WithLabelValues("skipped").Inc()
		return
	case report.Consistent:
		m.ConsistencyChecks.WithLabelValues("consistent").Inc()
	default:
		m.ConsistencyChecks.WithLabelValues("mismatch").Inc()
	}
	m.AccountBalanceTotal.Set(float64(report.AccountTotal))
	m.ShardBalanceTotal.Set(float64(report.ShardTotal))
}

var _ usecase.LedgerMetrics = (*Metrics)(nil)
