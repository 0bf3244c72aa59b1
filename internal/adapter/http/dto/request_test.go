package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestSubmitRequest_Validate(t *testing.T) {
	amount := decimal.NewFromInt(100)
	txnType := "deposit"

	tests := []struct {
		name        string
		req         SubmitRequest
		expectError bool
	}{
		{name: "valid", req: SubmitRequest{Amount: &amount, TxnType: &txnType}},
		{name: "missing amount", req: SubmitRequest{TxnType: &txnType}, expectError: true},
		{name: "missing txn_type", req: SubmitRequest{Amount: &amount}, expectError: true},
		{name: "empty", req: SubmitRequest{}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSubmitRequest_DecodesNumericAndStringAmounts(t *testing.T) {
	// decimal accepts both JSON forms; clients send either.
	for _, body := range []string{
		`{"amount": 100.50, "txn_type": "deposit"}`,
		`{"amount": "100.50", "txn_type": "deposit"}`,
	} {
		var req SubmitRequest
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			t.Fatalf("decoding %s: %v", body, err)
		}
		if err := req.Validate(); err != nil {
			t.Fatalf("validating %s: %v", body, err)
		}
		if !req.Amount.Equal(decimal.RequireFromString("100.50")) {
			t.Errorf("amount = %s, want 100.50", req.Amount)
		}
	}
}

func TestSubmitRequest_ToUseCaseInput(t *testing.T) {
	amount := decimal.NewFromInt(100)
	txnType := "transfer"
	accountID := int64(1)
	counterparty := "2"
	reference := "ref-1"
	correlationID := "corr-1"

	req := SubmitRequest{
		Amount:         &amount,
		TxnType:        &txnType,
		AccountID:      &accountID,
		CounterpartyID: &counterparty,
		Reference:      &reference,
		CorrelationID:  &correlationID,
	}

	in := req.ToUseCaseInput()

	if !in.Amount.Equal(amount) || in.TxnType != txnType {
		t.Errorf("input = %+v", in)
	}
	if in.AccountID != &accountID || in.CounterpartyID != &counterparty {
		t.Error("pointer fields not carried through")
	}
	if in.Reference != &reference || in.CorrelationID != &correlationID {
		t.Error("optional fields not carried through")
	}
}
