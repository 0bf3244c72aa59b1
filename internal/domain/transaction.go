package domain

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types routed by the submission flow. TxnType is free-form
// for anything else; only "transfer" changes the orchestration path.
const (
	TxnTypeDeposit    = "deposit"
	TxnTypeWithdrawal = "withdrawal"
	TxnTypeTransfer   = "transfer"
)

// Transaction is a single ledger row. A transfer produces two of these:
// one negative (withdrawal leg) and one positive (deposit leg) with the
// account/counterparty pair swapped and a shared correlation id.
type Transaction struct {
	TxnID          int64
	AccountID      *int64
	CounterpartyID *string
	Amount         decimal.Decimal
	TxnType        string
	Reference      *string
	CreatedDt      time.Time
	FailureStatus  *string
	CorrelationID  *string
}

// IdempotencyRecord maps (correlation key, request hash) to the first
// transaction the request produced. Written once, inside the same store
// transaction as the ledger rows, and never mutated.
type IdempotencyRecord struct {
	Key         string
	RequestHash string
	TxnID       *int64
	CreatedAt   time.Time
}

// TransferLegs builds the two rows for a transfer: the withdrawal leg
// debits the sender, the deposit leg credits the receiver. Both carry
// the same reference and correlation id.
func TransferLegs(senderID, receiverID int64, amount decimal.Decimal, reference, correlationID *string, createdDt time.Time) (withdrawal, deposit *Transaction) {
	senderStr := strconv.FormatInt(senderID, 10)
	receiverStr := strconv.FormatInt(receiverID, 10)

	withdrawal = &Transaction{
		AccountID:      &senderID,
		CounterpartyID: &receiverStr,
		Amount:         amount.Abs().Neg(),
		TxnType:        TxnTypeWithdrawal,
		Reference:      reference,
		CreatedDt:      createdDt,
		CorrelationID:  correlationID,
	}

	deposit = &Transaction{
		AccountID:      &receiverID,
		CounterpartyID: &senderStr,
		Amount:         amount.Abs(),
		TxnType:        TxnTypeDeposit,
		Reference:      reference,
		CreatedDt:      createdDt,
		CorrelationID:  correlationID,
	}

	return withdrawal, deposit
}
