package events

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/txledger/internal/domain"
)

func TestLogPublisher_PublishDrift(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	accountID := int64(1)
	event := domain.SettlementDriftEvent{
		EventID:    "evt-1",
		TxnIDs:     []int64{10, 11},
		TxnType:    "transfer",
		Amount:     decimal.NewFromInt(100),
		AccountID:  &accountID,
		Reason:     "balance update timed out",
		OccurredAt: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}

	err := NewLogPublisher(logger).PublishDrift(context.Background(), event)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "evt-1", entry["event_id"])
	assert.Equal(t, "transfer", entry["txn_type"])
	assert.Equal(t, "100", entry["amount"])
	assert.Equal(t, "balance update timed out", entry["reason"])
	assert.Len(t, entry["txn_ids"], 2)
}

func TestULIDGenerator_Generate(t *testing.T) {
	gen := NewULIDGenerator()

	first := gen.Generate()
	second := gen.Generate()

	assert.Len(t, first, 26)
	assert.NotEqual(t, first, second)
}

func TestSettlementDriftEvent_JSON(t *testing.T) {
	event := domain.SettlementDriftEvent{
		EventID:    "evt-1",
		TxnIDs:     []int64{10, 11},
		TxnType:    "transfer",
		Amount:     decimal.RequireFromString("100.50"),
		Reason:     "balance update timed out",
		OccurredAt: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}

	encoded, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	assert.Equal(t, "evt-1", decoded["event_id"])
	assert.Equal(t, "transfer", decoded["txn_type"])
	assert.Equal(t, "balance update timed out", decoded["reason"])

	// Optional fields absent from the payload when unset.
	_, hasAccount := decoded["account_id"]
	assert.False(t, hasAccount)
	_, hasCorrelation := decoded["correlation_id"]
	assert.False(t, hasCorrelation)
}
