package kafka

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"github.com/iho/txledger/internal/domain"
)

// Topic carrying settlement-drift events for the reconciliation consumer.
const driftTopic = "ledger.settlement_drift"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher implements usecase.DriftPublisher on top of a Kafka writer.
type Publisher struct {
	writer messageWriter
}

// NewPublisher creates a new Publisher.
func NewPublisher(brokers []string) *Publisher {
	return newPublisherWithWriter(&kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    driftTopic,
		Balancer: &kafka.LeastBytes{},
	})
}

func newPublisherWithWriter(writer messageWriter) *Publisher {
	return &Publisher{writer: writer}
}

// PublishDrift writes one event, keyed by event id.
func (p *Publisher) PublishDrift(ctx context.Context, event domain.SettlementDriftEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	})
}

// Close closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
