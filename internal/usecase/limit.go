package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/txledger/internal/domain"
)

// LimitEnforcer rejects submissions that would push an account over the
// fixed daily cap. The sum is over the raw signed stored amounts and the
// incoming amount is used as-is, so a withdrawal leg's negative amount
// reduces the day's total.
type LimitEnforcer struct {
	txnRepo    TransactionRepository
	dailyLimit decimal.Decimal
}

// NewLimitEnforcer creates a new LimitEnforcer.
func NewLimitEnforcer(txnRepo TransactionRepository, dailyLimit decimal.Decimal) *LimitEnforcer {
	return &LimitEnforcer{txnRepo: txnRepo, dailyLimit: dailyLimit}
}

// Check sums the account's committed amounts for the current UTC day and
// rejects when sum + amount exceeds the cap. now is truncated to the UTC
// day boundary, so the cap resets at UTC midnight.
func (e *LimitEnforcer) Check(ctx context.Context, accountID int64, amount decimal.Decimal, now time.Time) error {
	now = now.UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	endOfDay := startOfDay.AddDate(0, 0, 1)

	total, err := e.txnRepo.SumForAccountBetween(ctx, accountID, startOfDay, endOfDay)
	if err != nil {
		return fmt.Errorf("daily limit check: %w", err)
	}

	if total.Add(amount).GreaterThan(e.dailyLimit) {
		return fmt.Errorf("%w: daily limit of %s exceeded for account %d",
			domain.ErrLimitExceeded, e.dailyLimit.String(), accountID)
	}

	return nil
}
