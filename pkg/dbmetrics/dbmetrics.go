// Package dbmetrics wraps database/sql with query timing metrics and
// carries the active transaction through context so that repositories
// stay transaction-agnostic: they call GetExecutor and transparently run
// inside whatever transaction the use case opened.
package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/petlink/PetLink-BookingService/pkg/metrics"
)

// DBExecutor is the query surface shared by *sql.DB, *sql.Tx and the
// metric wrappers. Repositories depend on this interface only.
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// TxExecutor is a DBExecutor bound to an open transaction.
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

type txContextKey struct{}

// WithTx returns a context carrying the given transaction.
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// IsInTransaction reports whether the context carries an open transaction.
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txContextKey{}).(TxExecutor)
	return ok
}

// GetExecutor returns the transaction from the context if present,
// otherwise the fallback executor.
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txContextKey{}).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// SqlTxWrapper adapts a plain *sql.Tx to TxExecutor.
type SqlTxWrapper struct {
	Tx *sql.Tx
}

func (w *SqlTxWrapper) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return w.Tx.QueryContext(ctx, query, args...)
}

func (w *SqlTxWrapper) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return w.Tx.QueryRowContext(ctx, query, args...)
}

func (w *SqlTxWrapper) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return w.Tx.ExecContext(ctx, query, args...)
}

func (w *SqlTxWrapper) Commit() error   { return w.Tx.Commit() }
func (w *SqlTxWrapper) Rollback() error { return w.Tx.Rollback() }

// DB wraps *sql.DB with query timing metrics.
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
	name    string
}

// WrapWithDefault wraps db with metrics collection and starts a goroutine
// publishing connection pool stats until stopCh is closed.
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, serviceName string, stopCh <-chan struct{}) *DB {
	wrapped := &DB{db: db, metrics: m, name: serviceName}

	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				stats := db.Stats()
				m.DBOpenConnections.WithLabelValues(serviceName).Set(float64(stats.OpenConnections))
				m.DBIdleConnections.WithLabelValues(serviceName).Set(float64(stats.Idle))
				m.DBInUseConnections.WithLabelValues(serviceName).Set(float64(stats.InUse))
			}
		}
	}()

	return wrapped
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe("query", start, err)
	return rows, err
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe("query_row", start, nil)
	return row
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe("exec", start, err)
	return res, err
}

// BeginTx opens a transaction; queries on the returned executor are
// timed like direct queries.
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &metricTx{tx: tx, db: d}, nil
}

func (d *DB) observe(operation string, start time.Time, err error) {
	d.metrics.DBQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		d.metrics.DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

type metricTx struct {
	tx *sql.Tx
	db *DB
}

func (t *metricTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.db.observe("tx_query", start, err)
	return rows, err
}

func (t *metricTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.db.observe("tx_query_row", start, nil)
	return row
}

func (t *metricTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.db.observe("tx_exec", start, err)
	return res, err
}

func (t *metricTx) Commit() error   { return t.tx.Commit() }
func (t *metricTx) Rollback() error { return t.tx.Rollback() }
