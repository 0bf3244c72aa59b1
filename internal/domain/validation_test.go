package domain_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/txledger/internal/domain"
)

func TestValidateTransfer(t *testing.T) {
	accountID := int64(10)
	counterparty := "20"
	badCounterparty := "not-a-number"
	empty := ""

	tests := []struct {
		name           string
		accountID      *int64
		counterpartyID *string
		amount         decimal.Decimal
		wantSender     int64
		wantReceiver   int64
		expectError    bool
	}{
		{
			name:           "valid transfer",
			accountID:      &accountID,
			counterpartyID: &counterparty,
			amount:         decimal.NewFromInt(100),
			wantSender:     10,
			wantReceiver:   20,
		},
		{
			name:           "missing account id",
			accountID:      nil,
			counterpartyID: &counterparty,
			amount:         decimal.NewFromInt(100),
			expectError:    true,
		},
		{
			name:           "missing counterparty id",
			accountID:      &accountID,
			counterpartyID: nil,
			amount:         decimal.NewFromInt(100),
			expectError:    true,
		},
		{
			name:           "empty counterparty id",
			accountID:      &accountID,
			counterpartyID: &empty,
			amount:         decimal.NewFromInt(100),
			expectError:    true,
		},
		{
			name:           "zero amount",
			accountID:      &accountID,
			counterpartyID: &counterparty,
			amount:         decimal.Zero,
			expectError:    true,
		},
		{
			name:           "negative amount",
			accountID:      &accountID,
			counterpartyID: &counterparty,
			amount:         decimal.NewFromInt(-5),
			expectError:    true,
		},
		{
			name:           "non-numeric counterparty id",
			accountID:      &accountID,
			counterpartyID: &badCounterparty,
			amount:         decimal.NewFromInt(100),
			expectError:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parties, err := domain.ValidateTransfer(tt.accountID, tt.counterpartyID, tt.amount)

			if tt.expectError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, domain.ErrValidation) {
					t.Errorf("expected ErrValidation, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if parties.SenderID != tt.wantSender || parties.ReceiverID != tt.wantReceiver {
				t.Errorf("parties = (%d, %d), want (%d, %d)",
					parties.SenderID, parties.ReceiverID, tt.wantSender, tt.wantReceiver)
			}
		})
	}
}
