package domain

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// TransferParties holds the validated parties of a transfer request.
type TransferParties struct {
	SenderID   int64
	ReceiverID int64
}

// ValidateTransfer checks the fields a transfer needs before any external
// call is made. The counterparty id must parse as an account number because
// it becomes the account of the deposit leg.
func ValidateTransfer(accountID *int64, counterpartyID *string, amount decimal.Decimal) (*TransferParties, error) {
	if accountID == nil {
		return nil, fmt.Errorf("%w: account_id is required for transfer", ErrValidation)
	}

	if counterpartyID == nil || *counterpartyID == "" {
		return nil, fmt.Errorf("%w: counterparty_id is required for transfer", ErrValidation)
	}

	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: transfer amount must be positive", ErrValidation)
	}

	receiverID, err := strconv.ParseInt(*counterpartyID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: counterparty_id %q is not a valid account number", ErrValidation, *counterpartyID)
	}

	return &TransferParties{SenderID: *accountID, ReceiverID: receiverID}, nil
}
