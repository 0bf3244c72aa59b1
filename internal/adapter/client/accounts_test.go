package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/txledger/internal/usecase"
)

func TestAccountsClient_Check(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(map[string]any{
			"account":      map[string]any{"status": "active", "balance": "1500.25"},
			"counterparty": map[string]any{"status": "frozen", "balance": "0"},
		})
	}))
	defer srv.Close()

	c := NewAccountsClient(srv.URL, 5*time.Second)

	result, err := c.Check(context.Background(), 1, "2")
	require.NoError(t, err)

	assert.Equal(t, "/accounts/check", gotPath)
	assert.Equal(t, float64(1), gotBody["account_id"])
	assert.Equal(t, "2", gotBody["counterparty_id"])

	assert.Equal(t, usecase.AccountStatusActive, result.Account.Status)
	assert.True(t, result.Account.Balance.Equal(decimal.RequireFromString("1500.25")))
	assert.Equal(t, usecase.AccountStatusFrozen, result.Counterparty.Status)
}

func TestAccountsClient_CheckServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewAccountsClient(srv.URL, 5*time.Second)

	_, err := c.Check(context.Background(), 1, "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestAccountsClient_CheckUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewAccountsClient(srv.URL, time.Second)

	_, err := c.Check(context.Background(), 1, "2")
	require.Error(t, err)
}

func TestAccountsClient_CheckTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewAccountsClient(srv.URL, 20*time.Millisecond)

	start := time.Now()
	_, err := c.Check(context.Background(), 1, "2")
	require.Error(t, err)
	assert.Less(t, time.Since(start), 150*time.Millisecond)
}

func TestAccountsClient_UpdateBalance(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewAccountsClient(srv.URL, 5*time.Second)
	counterparty := "2"

	err := c.UpdateBalance(context.Background(), usecase.UpdateBalanceInput{
		AccountID:      1,
		CounterpartyID: &counterparty,
		Amount:         decimal.RequireFromString("100.50"),
		TxnType:        "transfer",
	})
	require.NoError(t, err)

	assert.Equal(t, "/accounts/update-balance", gotPath)
	assert.Equal(t, float64(1), gotBody["account_id"])
	assert.Equal(t, "2", gotBody["counterparty_id"])
	assert.Equal(t, "100.5", gotBody["amount"])
	assert.Equal(t, "transfer", gotBody["txn_type"])
}

func TestAccountsClient_UpdateBalanceRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	c := NewAccountsClient(srv.URL, 5*time.Second)

	err := c.UpdateBalance(context.Background(), usecase.UpdateBalanceInput{
		AccountID: 1,
		Amount:    decimal.NewFromInt(100),
		TxnType:   "deposit",
	})
	require.Error(t, err)
}
