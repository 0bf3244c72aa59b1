package events

import (
	"context"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/iho/txledger/internal/domain"
)

// LogPublisher records settlement-drift events in the structured log. It
// is the fallback when no broker is configured; reconciliation tooling can
// still scrape the events from the log stream.
type LogPublisher struct {
	logger zerolog.Logger
}

// NewLogPublisher creates a new LogPublisher.
func NewLogPublisher(logger zerolog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// PublishDrift logs the event.
func (p *LogPublisher) PublishDrift(_ context.Context, event domain.SettlementDriftEvent) error {
	p.logger.Warn().
		Str("event_id", event.EventID).
		Ints64("txn_ids", event.TxnIDs).
		Str("txn_type", event.TxnType).
		Str("amount", event.Amount.String()).
		Str("reason", event.Reason).
		Time("occurred_at", event.OccurredAt).
		Msg("settlement drift event")

	return nil
}

// ULIDGenerator generates ULID-based event ids.
type ULIDGenerator struct{}

// NewULIDGenerator creates a new ULIDGenerator.
func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{}
}

// Generate generates a new ULID.
func (g *ULIDGenerator) Generate() string {
	return ulid.Make().String()
}
