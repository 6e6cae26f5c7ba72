// Package txmanager runs functions inside database transactions opened on
// the metrics-wrapped DB. The transaction travels to repositories through
// the context (see pkg/dbmetrics).
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/petlink/PetLink-BookingService/pkg/dbmetrics"
)

// serializationFailure is the PostgreSQL SQLSTATE raised when a
// serializable transaction must be retried.
const serializationFailure = "40001"

// maxSerializableRetries bounds retries of serialization failures.
const maxSerializableRetries = 3

// ErrTransaction wraps begin/commit/rollback failures.
var ErrTransaction = errors.New("txmanager: transaction error")

// TransactionManager runs functions inside transactions on a
// metrics-wrapped database handle.
type TransactionManager struct {
	db *dbmetrics.DB
}

// NewTransactionManager creates a TransactionManager over the wrapped DB.
func NewTransactionManager(db *dbmetrics.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do runs fn inside a transaction with the default isolation level.
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoSerializable runs fn inside a SERIALIZABLE transaction, retrying a
// bounded number of times on serialization failures (SQLSTATE 40001).
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var err error
	for attempt := 0; attempt <= maxSerializableRetries; attempt++ {
		err = m.run(ctx, opts, fn)
		if !IsSerializationFailure(err) {
			return err
		}
	}
	return err
}

// DoReadOnly runs fn inside a read-only transaction.
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", ErrTransaction, err)
	}

	txCtx := dbmetrics.WithTx(ctx, tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return fmt.Errorf("%w: rollback after %v: %v", ErrTransaction, err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", ErrTransaction, err)
	}
	return nil
}

// IsSerializationFailure reports whether err is a PostgreSQL
// serialization failure anywhere in its chain.
func IsSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == serializationFailure
	}
	return false
}
