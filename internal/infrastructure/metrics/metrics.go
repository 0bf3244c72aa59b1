package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the business-level Prometheus metrics. HTTP-level metrics
// live in the router middleware.
type Metrics struct {
	TransactionsCreated  *prometheus.CounterVec
	FailedTransfers      prometheus.Counter
	DuplicateRequests    prometheus.Counter
	LimitRejections      prometheus.Counter
	SettlementDrift      prometheus.Counter
	NotificationFailures prometheus.Counter
	BalanceCheckDuration prometheus.Histogram
}

// New creates and registers all metrics against reg. Pass
// prometheus.DefaultRegisterer in main and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		TransactionsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "txledger_transactions_total",
				Help: "Total number of transactions created",
			},
			[]string{"txn_type"},
		),
		FailedTransfers: factory.NewCounter(prometheus.CounterOpts{
			Name: "txledger_failed_transfers_total",
			Help: "Total failed transfer transactions",
		}),
		DuplicateRequests: factory.NewCounter(prometheus.CounterOpts{
			Name: "txledger_duplicate_requests_total",
			Help: "Total submissions rejected as replays",
		}),
		LimitRejections: factory.NewCounter(prometheus.CounterOpts{
			Name: "txledger_limit_rejections_total",
			Help: "Total submissions rejected by the daily limit",
		}),
		SettlementDrift: factory.NewCounter(prometheus.CounterOpts{
			Name: "txledger_settlement_drift_total",
			Help: "Total settlements that failed after local commit",
		}),
		NotificationFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "txledger_notification_failures_total",
			Help: "Total notification deliveries that failed",
		}),
		BalanceCheckDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "txledger_balance_check_duration_seconds",
			Help:    "Latency of the account service pre-check",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2},
		}),
	}
}
