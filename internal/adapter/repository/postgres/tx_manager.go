package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/bankledger/internal/usecase"
)

type pgxPool interface {
	BeginTx(context.Context, pgx.TxOptions) (pgx.Tx, error)
}

// TxManager implements usecase.TransactionManager on SERIALIZABLE
// transactions, re-running the callback on serialization failures.
type TxManager struct {
	pool    pgxPool
	retrier *Retrier
	opts    pgx.TxOptions
}

// NewTxManager creates a new TxManager.
func NewTxManager(pool *pgxpool.Pool, retrier *Retrier) *TxManager {
	return newTxManagerWithPool(pool, retrier)
}

func newTxManagerWithPool(pool pgxPool, retrier *Retrier) *TxManager {
	if retrier == nil {
		retrier = NewRetrier()
	}
	return &TxManager{
		pool:    pool,
		retrier: retrier,
		opts:    pgx.TxOptions{IsoLevel: pgx.Serializable},
	}
}

// RunInTx runs fn in a serializable transaction.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context, tx usecase.Transaction) error) error {
	return m.retrier.Retry(ctx, func() error {
		return m.runOnce(ctx, fn)
	})
}

func (m *TxManager) runOnce(ctx context.Context, fn func(ctx context.Context, tx usecase.Transaction) error) (err error) {
	pgxTx, err := m.pool.BeginTx(ctx, m.opts)
	if err != nil {
		return err
	}

	tx := &Tx{tx: pgxTx}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				err = errors.Join(err, rbErr)
			}
		}
	}()

	if err = fn(ctx, tx); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Tx wraps a pgx transaction.
type Tx struct {
	tx pgx.Tx
}

// Commit commits the transaction.
func (t *Tx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction.
func (t *Tx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// PgxTx returns the underlying pgx.Tx.
func (t *Tx) PgxTx() pgx.Tx {
	return t.tx
}
