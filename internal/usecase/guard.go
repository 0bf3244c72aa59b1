package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/iho/txledger/internal/domain"
)

// IdempotencyGuard detects request replays via (correlation key, request
// hash) pairs. It runs before validation and before any network call.
type IdempotencyGuard struct {
	repo IdempotencyRepository
}

// NewIdempotencyGuard creates a new IdempotencyGuard.
func NewIdempotencyGuard(repo IdempotencyRepository) *IdempotencyGuard {
	return &IdempotencyGuard{repo: repo}
}

// Hash computes the canonical digest of a submission, excluding the
// correlation key. Absent optional fields are omitted and encoding/json
// marshals map keys in sorted order, so semantically identical bodies hash
// identically regardless of field order.
func (g *IdempotencyGuard) Hash(in SubmitInput) string {
	fields := map[string]any{
		"amount":   in.Amount.String(),
		"txn_type": in.TxnType,
	}

	if in.AccountID != nil {
		fields["account_id"] = *in.AccountID
	}

	if in.CounterpartyID != nil {
		fields["counterparty_id"] = *in.CounterpartyID
	}

	if in.Reference != nil {
		fields["reference"] = *in.Reference
	}

	payload, _ := json.Marshal(fields)
	sum := sha256.Sum256(payload)

	return hex.EncodeToString(sum[:])
}

// Check looks up a prior mapping for (key, requestHash). A hit returns the
// stored record; the same key with a different hash is a new request, not a
// collision, and returns nil.
func (g *IdempotencyGuard) Check(ctx context.Context, key, requestHash string) (*domain.IdempotencyRecord, error) {
	record, err := g.repo.Get(ctx, key, requestHash)
	if err != nil {
		return nil, fmt.Errorf("idempotency lookup: %w", err)
	}

	return record, nil
}
