package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ContractMetrics holds the pawn contract metrics.
type ContractMetrics struct {
	// Originations
	ContractsCreatedTotal *prometheus.CounterVec
	PrincipalIssuedTotal  *prometheus.CounterVec
	ContractNumberRetries prometheus.Counter

	// Ledger
	TransactionsTotal      *prometheus.CounterVec
	TransactionAmountTotal *prometheus.CounterVec

	// Lifecycle
	StatusTransitionsTotal *prometheus.CounterVec
	OverdueSweepMarked     prometheus.Gauge
	OverdueSweepDuration   prometheus.Histogram

	// Processing time
	OperationDuration *prometheus.HistogramVec

	// Errors
	ContractErrorsTotal *prometheus.CounterVec
}

// NewContractMetrics registers the metrics on reg.
func NewContractMetrics(reg prometheus.Registerer) *ContractMetrics {
	factory := promauto.With(reg)

	return &ContractMetrics{
		ContractsCreatedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pawn_contracts_created_total",
				Help: "Number of pawn contracts created",
			},
			[]string{"store_id", "item_type"},
		),

		PrincipalIssuedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pawn_principal_issued_total",
				Help: "Principal handed out at contract creation",
			},
			[]string{"store_id"},
		),

		ContractNumberRetries: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "pawn_contract_number_retries_total",
				Help: "Contract number collisions that required a new number",
			},
		),

		TransactionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pawn_transactions_total",
				Help: "Ledger entries appended, by transaction type",
			},
			[]string{"store_id", "type"},
		),

		TransactionAmountTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pawn_transaction_amount_total",
				Help: "Sum of ledger entry amounts, by transaction type",
			},
			[]string{"store_id", "type"},
		),

		StatusTransitionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pawn_status_transitions_total",
				Help: "Contract status changes",
			},
			[]string{"from", "to"},
		),

		OverdueSweepMarked: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "pawn_overdue_sweep_marked",
				Help: "Contracts marked overdue by the most recent sweep",
			},
		),

		OverdueSweepDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "pawn_overdue_sweep_duration_seconds",
				Help:    "Duration of overdue sweeps",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
			},
		),

		OperationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pawn_operation_duration_seconds",
				Help:    "Duration of contract operations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),

		ContractErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pawn_contract_errors_total",
				Help: "Failed contract operations by error kind",
			},
			[]string{"operation", "error_type"},
		),
	}
}

func (m *ContractMetrics) RecordContractCreated(storeID, itemType string, principal float64) {
	m.ContractsCreatedTotal.WithLabelValues(storeID, itemType).Inc()
	m.PrincipalIssuedTotal.WithLabelValues(storeID).Add(principal)
}

func (m *ContractMetrics) RecordContractNumberRetry() {
	m.ContractNumberRetries.Inc()
}

func (m *ContractMetrics) RecordTransaction(storeID, txType string, amount float64) {
	m.TransactionsTotal.WithLabelValues(storeID, txType).Inc()
	if amount > 0 {
		m.TransactionAmountTotal.WithLabelValues(storeID, txType).Add(amount)
	}
}

func (m *ContractMetrics) RecordStatusTransition(from, to string) {
	if from == to {
		return
	}
	m.StatusTransitionsTotal.WithLabelValues(from, to).Inc()
}

func (m *ContractMetrics) RecordSweep(marked int, durationSeconds float64) {
	m.OverdueSweepMarked.Set(float64(marked))
	m.OverdueSweepDuration.Observe(durationSeconds)
}

func (m *ContractMetrics) RecordOperationDuration(operation string, durationSeconds float64) {
	m.OperationDuration.WithLabelValues(operation).Observe(durationSeconds)
}

func (m *ContractMetrics) RecordError(operation, errorType string) {
	m.ContractErrorsTotal.WithLabelValues(operation, errorType).Inc()
}
