package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

func newFastRetrier() *Retrier {
	r := NewRetrier()
	r.maxRetries = 2
	r.initialInterval = 1 * time.Millisecond
	r.maxInterval = 2 * time.Millisecond
	r.maxElapsedTime = 50 * time.Millisecond

	return r
}

func TestRetrier_RetriesOnDeadlock(t *testing.T) {
	r := newFastRetrier()

	attempts := 0
	err := r.Retry(context.Background(), func() error {
		attempts++
		if attempts < 2 {
			return &pgconn.PgError{Code: pgErrDeadlock}
		}
		return nil
	})

	if err != nil {
		t.Fatalf("expected success after retry, got %v", err)
	}
	if attempts != 2 {
		t.Fatalf("expected 2 attempts, got %d", attempts)
	}
}

func TestRetrier_StopsOnPermanentError(t *testing.T) {
	r := newFastRetrier()

	attempts := 0
	uniqueViolation := &pgconn.PgError{Code: "23505"}

	err := r.Retry(context.Background(), func() error {
		attempts++
		return uniqueViolation
	})

	if !errors.Is(err, error(uniqueViolation)) {
		t.Fatalf("expected unique violation to surface, got %v", err)
	}
	if attempts != 1 {
		t.Fatalf("constraint violations must not retry, got %d attempts", attempts)
	}
}

func TestRetrier_GivesUpAfterMaxRetries(t *testing.T) {
	r := newFastRetrier()

	attempts := 0
	err := r.Retry(context.Background(), func() error {
		attempts++
		return &pgconn.PgError{Code: pgErrSerializationFailure}
	})

	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	// First attempt plus maxRetries retries.
	if attempts != r.maxRetries+1 {
		t.Fatalf("expected %d attempts, got %d", r.maxRetries+1, attempts)
	}
}

func TestIsRetryableError(t *testing.T) {
	if !isRetryableError(&pgconn.PgError{Code: pgErrDeadlock}) {
		t.Error("deadlock must be retryable")
	}
	if !isRetryableError(&pgconn.PgError{Code: pgErrSerializationFailure}) {
		t.Error("serialization failure must be retryable")
	}
	if isRetryableError(&pgconn.PgError{Code: "23505"}) {
		t.Error("unique violation must not be retryable")
	}
	if isRetryableError(errors.New("other")) {
		t.Error("generic error must not be retryable")
	}
}
