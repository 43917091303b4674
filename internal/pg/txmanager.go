package pg

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

//go:generate mockgen -source=txmanager.go -destination=mock_txmanager.go -package=pg

type TransactionalFn func(ctx context.Context) error

// TXManager runs fn as one atomic unit. A Begin inside an open unit joins it.
type TXManager interface {
	Begin(ctx context.Context, fn TransactionalFn) error
}

type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type txKey struct{}

func withTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func txFromContext(ctx context.Context) (pgx.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(pgx.Tx)
	return tx, ok
}

type TxManager struct {
	pool        Beginner
	lockTimeout time.Duration
}

func NewTXManager(pool Beginner, lockTimeout time.Duration) *TxManager {
	return &TxManager{
		pool:        pool,
		lockTimeout: lockTimeout,
	}
}

func (m *TxManager) Begin(ctx context.Context, fn TransactionalFn) (err error) {
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		zap.L().Error("can't begin transaction", zap.Error(err))
		return Classify(fmt.Errorf("begin transaction: %w", err))
	}
	defer func() {
		if p := recover(); p != nil {
			m.rollback(tx)
			panic(p)
		}
	}()

	if m.lockTimeout > 0 {
		query := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", m.lockTimeout.Milliseconds())
		if _, err := tx.Exec(ctx, query); err != nil {
			m.rollback(tx)
			return Classify(fmt.Errorf("set lock timeout: %w", err))
		}
	}

	if err := fn(withTx(ctx, tx)); err != nil {
		m.rollback(tx)
		return Classify(err)
	}

	if err := tx.Commit(ctx); err != nil {
		zap.L().Error("can't commit transaction", zap.Error(err))
		return Classify(fmt.Errorf("commit transaction: %w", err))
	}
	return nil
}

// rollback runs on a fresh context so a cancelled request still releases its locks.
func (m *TxManager) rollback(tx pgx.Tx) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		zap.L().Error("can't rollback transaction", zap.Error(err))
	}
}
