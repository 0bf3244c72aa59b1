package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettlementDriftEvent is emitted when ledger rows are committed locally
// but the authoritative balance update at the account service failed.
// No compensating reversal is performed here; an external reconciliation
// process consumes these events.
type SettlementDriftEvent struct {
	EventID       string          `json:"event_id"`
	TxnIDs        []int64         `json:"txn_ids"`
	TxnType       string          `json:"txn_type"`
	Amount        decimal.Decimal `json:"amount"`
	AccountID     *int64          `json:"account_id,omitempty"`
	CorrelationID *string         `json:"correlation_id,omitempty"`
	Reason        string          `json:"reason"`
	OccurredAt    time.Time       `json:"occurred_at"`
}
