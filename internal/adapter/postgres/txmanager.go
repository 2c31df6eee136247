package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TxManager runs snapshot writes inside a transaction carried by the context.
type TxManager struct {
	pool *pgxpool.Pool
}

func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{pool: pool}
}

// RunInTx executes fn within a Read Committed transaction. The transaction
// is committed when fn returns nil and rolled back on error or panic.
// A call made with a context that already carries a transaction joins it.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, "", fn)
}

// RunLocked is RunInTx holding a transaction-scoped advisory lock on key.
// Two CLI processes replacing the same owner's snapshot are serialized
// instead of failing on the position primary key.
func (m *TxManager) RunLocked(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	return m.run(ctx, key, fn)
}

func (m *TxManager) run(ctx context.Context, lockKey string, fn func(ctx context.Context) error) (err error) {
	if tx, ok := txFromCtx(ctx); ok {
		if err := lock(ctx, tx, lockKey); err != nil {
			return err
		}
		return fn(ctx)
	}

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := lock(ctx, tx, lockKey); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

func lock(ctx context.Context, tx pgx.Tx, key string) error {
	if key == "" {
		return nil
	}
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, key); err != nil {
		return fmt.Errorf("advisory lock %q: %w", key, err)
	}
	return nil
}
