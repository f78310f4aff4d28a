package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/harborops/charter_accounting_app/internal/core/ports/repositories"
)

// txKey carries an open pgx transaction through the context so every
// repository call inside a unit of work lands on the same transaction.
type txKey struct{}

// querier is the subset of pgx operations shared by a pool and a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// BaseRepository provides shared access to the connection pool and the
// context-carried transaction.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// q returns the transaction from the context when one is open, otherwise the
// pool. Repositories route every statement through this so they work both
// standalone and inside a unit of work.
func (r *BaseRepository) q(ctx context.Context) querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return r.Pool
}

// PgxUnitOfWork implements the unit-of-work port on a pgx pool.
type PgxUnitOfWork struct {
	pool *pgxpool.Pool
}

// NewPgxUnitOfWork creates a unit of work bound to the pool.
func NewPgxUnitOfWork(pool *pgxpool.Pool) portsrepo.UnitOfWork {
	return &PgxUnitOfWork{pool: pool}
}

var _ portsrepo.UnitOfWork = (*PgxUnitOfWork)(nil)

// WithinTx runs fn inside a single database transaction. A nested call joins
// the transaction already on the context instead of opening a second one.
func (u *PgxUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := u.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txCtx := context.WithValue(ctx, txKey{}, tx)
	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return fmt.Errorf("rollback failed: %v (original: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
