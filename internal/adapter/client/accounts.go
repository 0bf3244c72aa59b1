package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/txledger/internal/usecase"
)

// AccountsClient implements usecase.AccountService over HTTP. Every call
// carries its own deadline so a stalled account service cannot hold a
// worker past the configured timeout.
type AccountsClient struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

// NewAccountsClient creates a new AccountsClient.
func NewAccountsClient(baseURL string, timeout time.Duration) *AccountsClient {
	return &AccountsClient{
		baseURL:    baseURL,
		timeout:    timeout,
		httpClient: &http.Client{},
	}
}

type checkRequest struct {
	AccountID      int64  `json:"account_id"`
	CounterpartyID string `json:"counterparty_id"`
}

type partyState struct {
	Status  string          `json:"status"`
	Balance decimal.Decimal `json:"balance"`
}

type checkResponse struct {
	Account      partyState `json:"account"`
	Counterparty partyState `json:"counterparty"`
}

// Check fetches status and balance for both parties.
func (c *AccountsClient) Check(ctx context.Context, accountID int64, counterpartyID string) (*usecase.AccountCheckResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var decoded checkResponse
	err := c.post(ctx, "/accounts/check", checkRequest{
		AccountID:      accountID,
		CounterpartyID: counterpartyID,
	}, &decoded)
	if err != nil {
		return nil, err
	}

	return &usecase.AccountCheckResult{
		Account:      usecase.PartyState{Status: decoded.Account.Status, Balance: decoded.Account.Balance},
		Counterparty: usecase.PartyState{Status: decoded.Counterparty.Status, Balance: decoded.Counterparty.Balance},
	}, nil
}

type updateBalanceRequest struct {
	AccountID      int64   `json:"account_id"`
	CounterpartyID *string `json:"counterparty_id,omitempty"`
	Amount         string  `json:"amount"`
	TxnType        string  `json:"txn_type"`
}

// UpdateBalance applies the authoritative balance mutation.
func (c *AccountsClient) UpdateBalance(ctx context.Context, input usecase.UpdateBalanceInput) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	return c.post(ctx, "/accounts/update-balance", updateBalanceRequest{
		AccountID:      input.AccountID,
		CounterpartyID: input.CounterpartyID,
		Amount:         input.Amount.String(),
		TxnType:        input.TxnType,
	}, nil)
}

func (c *AccountsClient) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("account service returned status %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding account service response: %w", err)
		}
	}

	return nil
}
