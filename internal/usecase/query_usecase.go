package usecase

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/txledger/internal/domain"
)

// QueryUseCase serves the read-only lookups: all rows in insertion order
// and a single row by id, with a read-through cache on the latter.
type QueryUseCase struct {
	txnRepo  TransactionRepository
	cache    Cache
	cacheTTL time.Duration
	logger   zerolog.Logger
}

// NewQueryUseCase creates a new QueryUseCase. cache may be nil.
func NewQueryUseCase(txnRepo TransactionRepository, cache Cache, cacheTTL time.Duration, logger zerolog.Logger) *QueryUseCase {
	return &QueryUseCase{txnRepo: txnRepo, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// List returns all transactions in insertion order.
func (uc *QueryUseCase) List(ctx context.Context) ([]*domain.Transaction, error) {
	return uc.txnRepo.List(ctx)
}

// Get returns one transaction by id. Cache misses and cache errors fall
// through to the store.
func (uc *QueryUseCase) Get(ctx context.Context, id int64) (*domain.Transaction, error) {
	key := "txn:" + strconv.FormatInt(id, 10)

	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, key); err == nil && cached != nil {
			var txn domain.Transaction
			if err := json.Unmarshal(cached, &txn); err == nil {
				return &txn, nil
			}
		}
	}

	txn, err := uc.txnRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if encoded, err := json.Marshal(txn); err == nil {
			if err := uc.cache.Set(ctx, key, encoded, uc.cacheTTL); err != nil {
				uc.logger.Debug().Err(err).Int64("txn_id", id).Msg("cache set failed")
			}
		}
	}

	return txn, nil
}
