package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type ctxKey string

const txKey ctxKey = "tx"

// TransactionManager groups store calls into one database transaction. The
// discovery pass uses it to keep a ledger insert and its seen-skater record
// atomic, and the publication pass to upsert a digest and mark its recap rows
// published together.
type TransactionManager struct {
	db *sqlx.DB
}

func NewTransactionManager(db *sqlx.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// WithTransaction runs fn inside a transaction carried through the context.
// Store methods called with that context pick the transaction up via
// GetExecutor. Any error from fn rolls everything back.
func (tm *TransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := tm.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(context.WithValue(ctx, txKey, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func txFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

// GetExecutor returns the context's transaction when one is in flight,
// falling back to the plain connection pool otherwise.
func GetExecutor(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := txFromContext(ctx); tx != nil {
		return tx
	}
	return db
}
