package database

import (
	"context"
	"fmt"
	"time"

	"github.com/autodiag/refinery/ent"
)

const (
	txMaxAttempts = 2
	txRetryDelay  = 500 * time.Millisecond
)

// WithTx runs fn inside a transaction, committing on success and rolling
// back on error or panic. Transient failures are retried once after a short
// delay; each attempt gets a fresh transaction.
func WithTx(ctx context.Context, client *ent.Client, fn func(tx *ent.Tx) error) error {
	var lastErr error
	for attempt := 1; attempt <= txMaxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(txRetryDelay):
			}
		}
		lastErr = runInTx(ctx, client, fn)
		if lastErr == nil {
			return nil
		}
	}
	return fmt.Errorf("transaction failed after %d attempts: %w", txMaxAttempts, lastErr)
}

func runInTx(ctx context.Context, client *ent.Client, fn func(tx *ent.Tx) error) error {
	tx, err := client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()

	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rerr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
