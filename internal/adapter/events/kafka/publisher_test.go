package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/txledger/internal/domain"
)

type stubWriter struct {
	messages []kafka.Message
	writeErr error
	closed   bool
}

func (s *stubWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.messages = append(s.messages, msgs...)
	return nil
}

func (s *stubWriter) Close() error {
	s.closed = true
	return nil
}

func TestPublisher_PublishDrift(t *testing.T) {
	writer := &stubWriter{}
	pub := newPublisherWithWriter(writer)

	event := domain.SettlementDriftEvent{
		EventID:    "evt-1",
		TxnIDs:     []int64{10, 11},
		TxnType:    "transfer",
		Amount:     decimal.NewFromInt(100),
		Reason:     "balance update timed out",
		OccurredAt: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, pub.PublishDrift(context.Background(), event))
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, "evt-1", string(msg.Key))

	var decoded domain.SettlementDriftEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, event.EventID, decoded.EventID)
	assert.Equal(t, event.TxnIDs, decoded.TxnIDs)
	assert.Equal(t, event.Reason, decoded.Reason)
	assert.True(t, decoded.Amount.Equal(event.Amount))
}

func TestPublisher_PublishDriftWriteError(t *testing.T) {
	writer := &stubWriter{writeErr: errors.New("broker unreachable")}
	pub := newPublisherWithWriter(writer)

	err := pub.PublishDrift(context.Background(), domain.SettlementDriftEvent{EventID: "evt-1"})
	require.Error(t, err)
}

func TestPublisher_Close(t *testing.T) {
	writer := &stubWriter{}
	pub := newPublisherWithWriter(writer)

	require.NoError(t, pub.Close())
	assert.True(t, writer.closed)
}
