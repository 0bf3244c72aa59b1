package dto

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/iho/txledger/internal/usecase"
)

// SubmitRequest represents a transaction submission. Amount and TxnType
// are pointers so absence is distinguishable from zero values.
type SubmitRequest struct {
	Amount         *decimal.Decimal `json:"amount"`
	TxnType        *string          `json:"txn_type"`
	AccountID      *int64           `json:"account_id,omitempty"`
	CounterpartyID *string          `json:"counterparty_id,omitempty"`
	Reference      *string          `json:"reference,omitempty"`
	CorrelationID  *string          `json:"correlation_id,omitempty"`
}

// Validate checks the required fields.
func (r *SubmitRequest) Validate() error {
	if r.Amount == nil || r.TxnType == nil {
		return errors.New("missing required fields: amount and txn_type")
	}

	return nil
}

// ToUseCaseInput converts to use case input. Validate must have passed.
func (r *SubmitRequest) ToUseCaseInput() usecase.SubmitInput {
	return usecase.SubmitInput{
		Amount:         *r.Amount,
		TxnType:        *r.TxnType,
		AccountID:      r.AccountID,
		CounterpartyID: r.CounterpartyID,
		Reference:      r.Reference,
		CorrelationID:  r.CorrelationID,
	}
}
