// Package simpletxmanager mirrors pkg/txmanager over a plain *sql.DB,
// used when metrics collection is disabled.
package simpletxmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/petlink/PetLink-BookingService/pkg/dbmetrics"
	"github.com/petlink/PetLink-BookingService/pkg/txmanager"
)

const maxSerializableRetries = 3

// ErrTransaction wraps begin/commit/rollback failures.
var ErrTransaction = errors.New("simpletxmanager: transaction error")

// TransactionManager runs functions inside transactions on a plain *sql.DB.
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager creates a TransactionManager over db.
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do runs fn inside a transaction with the default isolation level.
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoSerializable runs fn inside a SERIALIZABLE transaction, retrying a
// bounded number of times on serialization failures.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var err error
	for attempt := 0; attempt <= maxSerializableRetries; attempt++ {
		err = m.run(ctx, opts, fn)
		if !txmanager.IsSerializationFailure(err) {
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

	wrapped := &dbmetrics.SqlTxWrapper{Tx: tx}
	txCtx := dbmetrics.WithTx(ctx, wrapped)

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
