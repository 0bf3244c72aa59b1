package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/txledger/internal/domain"
)

// TransactionRepository defines data access for ledger transactions.
type TransactionRepository interface {
	// Create inserts a row within tx and sets txn.TxnID from the store.
	Create(ctx context.Context, tx Transaction, txn *domain.Transaction) error
	GetByID(ctx context.Context, id int64) (*domain.Transaction, error)
	List(ctx context.Context) ([]*domain.Transaction, error)
	// SumForAccountBetween sums the raw signed amounts of committed rows for
	// an account with created_dt in [from, to).
	SumForAccountBetween(ctx context.Context, accountID int64, from, to time.Time) (decimal.Decimal, error)
}

// IdempotencyRepository defines data access for idempotency mappings.
type IdempotencyRepository interface {
	// Get returns the record for (key, requestHash), or nil when absent.
	Get(ctx context.Context, key, requestHash string) (*domain.IdempotencyRecord, error)
	Create(ctx context.Context, tx Transaction, record *domain.IdempotencyRecord) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier retries an operation on transient store failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
