package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNewRegistersMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()

	m := New(registry)

	if m.TransactionsCreated == nil || m.SettlementDrift == nil || m.BalanceCheckDuration == nil {
		t.Fatalf("expected key metrics to be initialized: %+v", m)
	}

	m.TransactionsCreated.WithLabelValues("deposit").Inc()
	m.DuplicateRequests.Inc()
	m.BalanceCheckDuration.Observe(0.05)

	metricFamilies, err := registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	if len(metricFamilies) == 0 {
		t.Fatalf("expected registered metrics, got none")
	}

	names := make(map[string]bool, len(metricFamilies))
	for _, mf := range metricFamilies {
		names[mf.GetName()] = true
	}

	for _, want := range []string{
		"txledger_transactions_total",
		"txledger_duplicate_requests_total",
		"txledger_balance_check_duration_seconds",
	} {
		if !names[want] {
			t.Errorf("metric %s not registered", want)
		}
	}
}

func TestNewWithFreshRegistries(t *testing.T) {
	// Registering twice against the default registry would panic; fresh
	// registries must not collide.
	_ = New(prometheus.NewRegistry())
	_ = New(prometheus.NewRegistry())
}
