package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/txledger/internal/domain"
	"github.com/iho/txledger/internal/infrastructure/metrics"
)

// SubmissionUseCase orchestrates transaction submissions: replay detection,
// limit enforcement, the atomic ledger write, remote settlement against the
// account service and best-effort notification. Transfers walk the full
// two-party sequence; everything else takes the single-leg path.
type SubmissionUseCase struct {
	guard     *IdempotencyGuard
	limiter   *LimitEnforcer
	txManager TransactionManager
	txnRepo   TransactionRepository
	idemRepo  IdempotencyRepository
	retrier   Retrier
	accounts  AccountService
	notifier  Notifier
	drift     DriftPublisher
	idGen     IDGenerator
	metrics   *metrics.Metrics
	logger    zerolog.Logger
}

// SubmissionConfig holds dependencies for a SubmissionUseCase.
type SubmissionConfig struct {
	TxManager       TransactionManager
	TransactionRepo TransactionRepository
	IdempotencyRepo IdempotencyRepository
	Retrier         Retrier
	Accounts        AccountService
	Notifier        Notifier
	Drift           DriftPublisher
	IDGen           IDGenerator
	DailyLimit      decimal.Decimal
	Metrics         *metrics.Metrics
	Logger          zerolog.Logger
}

// NewSubmissionUseCase creates a new SubmissionUseCase.
func NewSubmissionUseCase(cfg SubmissionConfig) *SubmissionUseCase {
	return &SubmissionUseCase{
		guard:     NewIdempotencyGuard(cfg.IdempotencyRepo),
		limiter:   NewLimitEnforcer(cfg.TransactionRepo, cfg.DailyLimit),
		txManager: cfg.TxManager,
		txnRepo:   cfg.TransactionRepo,
		idemRepo:  cfg.IdempotencyRepo,
		retrier:   cfg.Retrier,
		accounts:  cfg.Accounts,
		notifier:  cfg.Notifier,
		drift:     cfg.Drift,
		idGen:     cfg.IDGen,
		metrics:   cfg.Metrics,
		logger:    cfg.Logger,
	}
}

// SubmitInput represents a transaction submission.
type SubmitInput struct {
	Amount         decimal.Decimal
	TxnType        string
	AccountID      *int64
	CounterpartyID *string
	Reference      *string
	CorrelationID  *string
}

// SubmitResult carries the created identifiers: TxnID for a single leg,
// the withdrawal/deposit pair for a transfer.
type SubmitResult struct {
	TxnID           *int64
	WithdrawalTxnID *int64
	DepositTxnID    *int64
}

func (in SubmitInput) correlationKey() string {
	if in.CorrelationID == nil {
		return ""
	}

	return *in.CorrelationID
}

// Submit processes one submission. The idempotency check runs first, before
// validation and before any network call; the limit check follows; the
// surviving request is routed by txn_type.
func (uc *SubmissionUseCase) Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error) {
	requestHash := uc.guard.Hash(in)

	if key := in.correlationKey(); key != "" {
		record, err := uc.guard.Check(ctx, key, requestHash)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrLocalPersistence, err)
		}

		if record != nil {
			uc.metrics.DuplicateRequests.Inc()
			return nil, &domain.DuplicateRequestError{OriginalTxnID: record.TxnID}
		}
	}

	if in.AccountID != nil {
		if err := uc.limiter.Check(ctx, *in.AccountID, in.Amount, time.Now().UTC()); err != nil {
			if errors.Is(err, domain.ErrLimitExceeded) {
				uc.metrics.LimitRejections.Inc()
				return nil, err
			}

			return nil, fmt.Errorf("%w: %v", domain.ErrLocalPersistence, err)
		}
	}

	if in.TxnType == domain.TxnTypeTransfer {
		return uc.submitTransfer(ctx, in, requestHash)
	}

	return uc.submitSingleLeg(ctx, in, requestHash)
}

// submitTransfer drives the transfer state machine: validate, pre-check
// both parties, commit both legs atomically, settle remotely, notify.
func (uc *SubmissionUseCase) submitTransfer(ctx context.Context, in SubmitInput, requestHash string) (*SubmitResult, error) {
	parties, err := domain.ValidateTransfer(in.AccountID, in.CounterpartyID, in.Amount)
	if err != nil {
		return nil, err
	}

	if err := uc.precheck(ctx, parties.SenderID, *in.CounterpartyID, in.Amount); err != nil {
		return nil, err
	}

	withdrawal, deposit := domain.TransferLegs(
		parties.SenderID, parties.ReceiverID, in.Amount,
		in.Reference, in.CorrelationID, time.Now().UTC(),
	)

	if err := uc.commit(ctx, in.correlationKey(), requestHash, withdrawal, deposit); err != nil {
		uc.metrics.FailedTransfers.Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrLocalPersistence, err)
	}

	uc.metrics.TransactionsCreated.WithLabelValues(domain.TxnTypeWithdrawal).Inc()
	uc.metrics.TransactionsCreated.WithLabelValues(domain.TxnTypeDeposit).Inc()

	// The legs are committed from here on. A settlement failure is surfaced
	// as a distinct error but never rolls the rows back; a retry under the
	// same correlation key comes back as a duplicate.
	if err := uc.settle(ctx, UpdateBalanceInput{
		AccountID:      parties.SenderID,
		CounterpartyID: in.CounterpartyID,
		Amount:         in.Amount,
		TxnType:        domain.TxnTypeTransfer,
	}, in, withdrawal.TxnID, deposit.TxnID); err != nil {
		uc.metrics.FailedTransfers.Inc()
		return nil, err
	}

	uc.notify(ctx, withdrawal)
	uc.notify(ctx, deposit)

	return &SubmitResult{
		WithdrawalTxnID: &withdrawal.TxnID,
		DepositTxnID:    &deposit.TxnID,
	}, nil
}

// submitSingleLeg writes one row and settles it. The same drift hazard as
// the transfer path applies: the row is committed before the settlement
// call, and a failed settlement does not remove it.
func (uc *SubmissionUseCase) submitSingleLeg(ctx context.Context, in SubmitInput, requestHash string) (*SubmitResult, error) {
	txn := &domain.Transaction{
		AccountID:      in.AccountID,
		CounterpartyID: in.CounterpartyID,
		Amount:         in.Amount,
		TxnType:        in.TxnType,
		Reference:      in.Reference,
		CreatedDt:      time.Now().UTC(),
		CorrelationID:  in.CorrelationID,
	}

	if err := uc.commit(ctx, in.correlationKey(), requestHash, txn); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLocalPersistence, err)
	}

	uc.metrics.TransactionsCreated.WithLabelValues(in.TxnType).Inc()

	if in.AccountID != nil {
		if err := uc.settle(ctx, UpdateBalanceInput{
			AccountID:      *in.AccountID,
			CounterpartyID: in.CounterpartyID,
			Amount:         in.Amount,
			TxnType:        in.TxnType,
		}, in, txn.TxnID); err != nil {
			return nil, err
		}
	}

	uc.notify(ctx, txn)

	return &SubmitResult{TxnID: &txn.TxnID}, nil
}

// precheck validates both parties' status and the sender's balance against
// the account service. Nothing is persisted before or during this step, so
// every failure here is safe to retry.
func (uc *SubmissionUseCase) precheck(ctx context.Context, senderID int64, counterpartyID string, amount decimal.Decimal) error {
	timer := prometheus.NewTimer(uc.metrics.BalanceCheckDuration)
	result, err := uc.accounts.Check(ctx, senderID, counterpartyID)
	timer.ObserveDuration()

	if err != nil {
		return fmt.Errorf("%w: contacting account service: %v", domain.ErrUpstreamUnavailable, err)
	}

	if result.Account.Status == AccountStatusFrozen || result.Counterparty.Status == AccountStatusFrozen {
		return fmt.Errorf("%w: account or counterparty is frozen", domain.ErrUpstreamRejected)
	}

	if result.Account.Status != AccountStatusActive || result.Counterparty.Status != AccountStatusActive {
		return fmt.Errorf("%w: account or counterparty is not active", domain.ErrUpstreamRejected)
	}

	if result.Account.Balance.LessThan(amount) {
		return fmt.Errorf("%w: insufficient balance; overdraft not allowed", domain.ErrUpstreamRejected)
	}

	return nil
}

// commit persists the given rows plus, when a correlation key is present,
// the idempotency mapping, as one store transaction. The mapping records
// the id of the first row created so a later replay can reference it
// without joining on the non-unique correlation_id.
func (uc *SubmissionUseCase) commit(ctx context.Context, correlationKey, requestHash string, txns ...*domain.Transaction) error {
	return uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		for _, txn := range txns {
			if err := uc.txnRepo.Create(ctx, tx, txn); err != nil {
				return err
			}
		}

		if correlationKey != "" {
			if err := uc.idemRepo.Create(ctx, tx, &domain.IdempotencyRecord{
				Key:         correlationKey,
				RequestHash: requestHash,
				TxnID:       &txns[0].TxnID,
				CreatedAt:   time.Now().UTC(),
			}); err != nil {
				return err
			}
		}

		return tx.Commit(ctx)
	})
}

// settle applies the authoritative balance mutation. The submission is past
// the point of no return: the context is detached from caller cancellation
// and a failure publishes a drift event instead of rolling anything back.
func (uc *SubmissionUseCase) settle(ctx context.Context, input UpdateBalanceInput, in SubmitInput, txnIDs ...int64) error {
	ctx = context.WithoutCancel(ctx)

	err := uc.accounts.UpdateBalance(ctx, input)
	if err == nil {
		return nil
	}

	uc.metrics.SettlementDrift.Inc()
	uc.logger.Error().
		Err(err).
		Ints64("txn_ids", txnIDs).
		Str("txn_type", in.TxnType).
		Msg("remote settlement failed after local commit")

	event := domain.SettlementDriftEvent{
		EventID:       uc.idGen.Generate(),
		TxnIDs:        txnIDs,
		TxnType:       in.TxnType,
		Amount:        in.Amount,
		AccountID:     in.AccountID,
		CorrelationID: in.CorrelationID,
		Reason:        err.Error(),
		OccurredAt:    time.Now().UTC(),
	}
	if pubErr := uc.drift.PublishDrift(ctx, event); pubErr != nil {
		uc.logger.Error().Err(pubErr).Str("event_id", event.EventID).Msg("failed to publish settlement drift event")
	}

	return &domain.SettlementError{TxnIDs: txnIDs, Cause: err}
}

// notify delivers one notification. Delivery failures are recorded and
// never alter the persisted state or the response.
func (uc *SubmissionUseCase) notify(ctx context.Context, txn *domain.Transaction) {
	err := uc.notifier.Notify(ctx, Notification{
		TxnID:     txn.TxnID,
		Reference: txn.Reference,
		Status:    "completed",
	})
	if err != nil {
		uc.metrics.NotificationFailures.Inc()
		uc.logger.Warn().Err(err).Int64("txn_id", txn.TxnID).Msg("notification delivery failed")
	}
}
