package domain

import (
	"errors"
	"fmt"
)

var (
	// Submission errors
	ErrValidation          = errors.New("validation failed")
	ErrLimitExceeded       = errors.New("daily transaction limit exceeded")
	ErrDuplicateRequest    = errors.New("duplicate request")
	ErrUpstreamRejected    = errors.New("rejected by account service")
	ErrUpstreamUnavailable = errors.New("account service unavailable")
	ErrLocalPersistence    = errors.New("ledger write failed")
	ErrRemoteSettlement    = errors.New("remote settlement failed")

	// Lookup errors
	ErrTransactionNotFound = errors.New("transaction not found")
)

// DuplicateRequestError is returned when a (correlation key, request hash)
// pair has been seen before. OriginalTxnID is the transaction the first
// submission produced.
type DuplicateRequestError struct {
	OriginalTxnID *int64
}

func (e *DuplicateRequestError) Error() string {
	if e.OriginalTxnID != nil {
		return fmt.Sprintf("duplicate request: original txn %d", *e.OriginalTxnID)
	}

	return "duplicate request"
}

func (e *DuplicateRequestError) Unwrap() error { return ErrDuplicateRequest }

// SettlementError reports a failed balance update after the ledger rows
// were committed. TxnIDs are the committed row ids; they are not rolled
// back, so the local ledger and the account authority drift until an
// external reconciliation process consumes the published event.
type SettlementError struct {
	Cause  error
	TxnIDs []int64
}

func (e *SettlementError) Error() string {
	return fmt.Sprintf("remote settlement failed for txns %v: %v", e.TxnIDs, e.Cause)
}

func (e *SettlementError) Unwrap() error { return ErrRemoteSettlement }
