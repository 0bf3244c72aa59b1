package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/txledger/internal/domain"
	"github.com/iho/txledger/internal/usecase"
)

// TransactionRepository implements usecase.TransactionRepository.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// Create inserts a transaction within tx and sets txn.TxnID.
func (r *TransactionRepository) Create(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		INSERT INTO transactions (account_id, counterparty_id, amount, txn_type, reference, created_dt, failure_status, correlation_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING txn_id
	`

	return pgxTx.QueryRow(ctx, query,
		txn.AccountID,
		txn.CounterpartyID,
		txn.Amount.String(),
		txn.TxnType,
		txn.Reference,
		txn.CreatedDt,
		txn.FailureStatus,
		txn.CorrelationID,
	).Scan(&txn.TxnID)
}

// GetByID retrieves a transaction by id.
func (r *TransactionRepository) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	query := `
		SELECT txn_id, account_id, counterparty_id, amount::text, txn_type, reference, created_dt, failure_status, correlation_id
		FROM transactions
		WHERE txn_id = $1
	`

	txn, err := scanTransaction(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}

		return nil, err
	}

	return txn, nil
}

// List returns all transactions in insertion order.
func (r *TransactionRepository) List(ctx context.Context) ([]*domain.Transaction, error) {
	query := `
		SELECT txn_id, account_id, counterparty_id, amount::text, txn_type, reference, created_dt, failure_status, correlation_id
		FROM transactions
		ORDER BY txn_id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txns []*domain.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}

		txns = append(txns, txn)
	}

	return txns, rows.Err()
}

// SumForAccountBetween sums the signed amounts for an account with
// created_dt in [from, to).
func (r *TransactionRepository) SumForAccountBetween(ctx context.Context, accountID int64, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)::text
		FROM transactions
		WHERE account_id = $1 AND created_dt >= $2 AND created_dt < $3
	`

	var total string
	if err := r.pool.QueryRow(ctx, query, accountID, from, to).Scan(&total); err != nil {
		return decimal.Zero, err
	}

	sum, err := decimal.NewFromString(total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount sum %q: %w", total, err)
	}

	return sum, nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var (
		txn    domain.Transaction
		amount string
	)

	err := row.Scan(
		&txn.TxnID,
		&txn.AccountID,
		&txn.CounterpartyID,
		&amount,
		&txn.TxnType,
		&txn.Reference,
		&txn.CreatedDt,
		&txn.FailureStatus,
		&txn.CorrelationID,
	)
	if err != nil {
		return nil, err
	}

	txn.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("parsing amount %q: %w", amount, err)
	}

	return &txn, nil
}
