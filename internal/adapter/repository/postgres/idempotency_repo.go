package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/txledger/internal/domain"
	"github.com/iho/txledger/internal/usecase"
)

// IdempotencyRepository implements usecase.IdempotencyRepository.
type IdempotencyRepository struct {
	pool *pgxpool.Pool
}

// NewIdempotencyRepository creates a new IdempotencyRepository.
func NewIdempotencyRepository(pool *pgxpool.Pool) *IdempotencyRepository {
	return &IdempotencyRepository{pool: pool}
}

// Get returns the record for (key, requestHash), or nil when absent.
func (r *IdempotencyRepository) Get(ctx context.Context, key, requestHash string) (*domain.IdempotencyRecord, error) {
	query := `
		SELECT key, request_hash, txn_id, created_at
		FROM idempotency
		WHERE key = $1 AND request_hash = $2
	`

	var record domain.IdempotencyRecord
	err := r.pool.QueryRow(ctx, query, key, requestHash).Scan(
		&record.Key,
		&record.RequestHash,
		&record.TxnID,
		&record.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return &record, nil
}

// Create inserts a mapping within tx. Rows are written once and never
// mutated.
func (r *IdempotencyRepository) Create(ctx context.Context, tx usecase.Transaction, record *domain.IdempotencyRecord) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		INSERT INTO idempotency (key, request_hash, txn_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := pgxTx.Exec(ctx, query,
		record.Key,
		record.RequestHash,
		record.TxnID,
		record.CreatedAt,
	)

	return err
}
