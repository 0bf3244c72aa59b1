package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/iho/txledger/internal/domain"
)

// Account statuses reported by the account service check operation.
const (
	AccountStatusActive = "active"
	AccountStatusFrozen = "frozen"
)

// PartyState is the status and balance of one party as reported by the
// account service.
type PartyState struct {
	Status  string
	Balance decimal.Decimal
}

// AccountCheckResult holds the pre-check state of both transfer parties.
type AccountCheckResult struct {
	Account      PartyState
	Counterparty PartyState
}

// UpdateBalanceInput is the settlement request applied by the account
// service after the local ledger commit.
type UpdateBalanceInput struct {
	AccountID      int64
	CounterpartyID *string
	Amount         decimal.Decimal
	TxnType        string
}

// AccountService is the external account authority. Check is a read-only
// pre-check; UpdateBalance is the authoritative settlement.
type AccountService interface {
	Check(ctx context.Context, accountID int64, counterpartyID string) (*AccountCheckResult, error)
	UpdateBalance(ctx context.Context, input UpdateBalanceInput) error
}

// Notification is a fire-and-forget delivery for one ledger row.
type Notification struct {
	TxnID     int64
	Reference *string
	Status    string
}

// Notifier delivers notifications. Failures never change the submission
// outcome.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// DriftPublisher publishes settlement-drift events for an external
// reconciliation consumer.
type DriftPublisher interface {
	PublishDrift(ctx context.Context, event domain.SettlementDriftEvent) error
}
