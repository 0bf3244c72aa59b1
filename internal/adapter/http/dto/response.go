package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/txledger/internal/domain"
)

// TransactionResponse is the wire form of one ledger row.
type TransactionResponse struct {
	TxnID          int64           `json:"txn_id"`
	AccountID      *int64          `json:"account_id"`
	CounterpartyID *string         `json:"counterparty_id"`
	Amount         decimal.Decimal `json:"amount"`
	TxnType        string          `json:"txn_type"`
	Reference      *string         `json:"reference"`
	CreatedDt      time.Time       `json:"created_dt"`
	FailureStatus  *string         `json:"failure_status"`
	CorrelationID  *string         `json:"correlation_id"`
}

// TransactionFromDomain converts a domain transaction.
func TransactionFromDomain(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TxnID:          txn.TxnID,
		AccountID:      txn.AccountID,
		CounterpartyID: txn.CounterpartyID,
		Amount:         txn.Amount,
		TxnType:        txn.TxnType,
		Reference:      txn.Reference,
		CreatedDt:      txn.CreatedDt,
		FailureStatus:  txn.FailureStatus,
		CorrelationID:  txn.CorrelationID,
	}
}

// TransactionsFromDomain converts a slice of domain transactions.
func TransactionsFromDomain(txns []*domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txns))
	for _, txn := range txns {
		out = append(out, TransactionFromDomain(txn))
	}

	return out
}

// CreatedResponse is the success body for a single-leg submission.
type CreatedResponse struct {
	Message string `json:"message"`
	TxnID   int64  `json:"txn_id"`
}

// TransferCreatedResponse is the success body for a transfer submission.
type TransferCreatedResponse struct {
	Message         string `json:"message"`
	WithdrawalTxnID int64  `json:"withdrawal_txn_id"`
	DepositTxnID    int64  `json:"deposit_txn_id"`
}

// DuplicateResponse is the conflict body for a replayed submission.
type DuplicateResponse struct {
	Message       string `json:"message"`
	OriginalTxnID *int64 `json:"original_txn_id"`
}

// ErrorResponse is the error body. Code is machine-distinguishable.
type ErrorResponse struct {
	Error  string  `json:"error"`
	Code   string  `json:"code"`
	TxnIDs []int64 `json:"txn_ids,omitempty"`
}
