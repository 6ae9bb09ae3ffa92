// Package sqlstore implements the repository ports on database/sql for SQLite and PostgreSQL.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/shopledger/shopledger/internal/apperrors"
	portsrepo "github.com/shopledger/shopledger/internal/core/ports/repositories"
	"github.com/shopledger/shopledger/pkg/database"
	"go.uber.org/multierr"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// baseRepository binds a repository to a handle and dialect.
type baseRepository struct {
	q querier
	d dialect
}

func (r baseRepository) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return r.q.ExecContext(ctx, r.d.rebind(query), args...)
}

func (r baseRepository) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return r.q.QueryContext(ctx, r.d.rebind(query), args...)
}

func (r baseRepository) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return r.q.QueryRowContext(ctx, r.d.rebind(query), args...)
}

// Store owns the database handle and hands out repositories.
// Write units of work are serialized by mu for the whole life of their transaction.
type Store struct {
	db      *sql.DB
	dialect dialect
	txOpts  *sql.TxOptions
	mu      sync.Mutex
}

// New wraps db, which must already be migrated. driver is "sqlite3" or "pgx".
func New(db *sql.DB, driver string) (*Store, error) {
	d, err := dialectFor(driver)
	if err != nil {
		return nil, err
	}
	s := &Store{db: db, dialect: d}
	if d.isPostgres() {
		s.txOpts = &sql.TxOptions{Isolation: sql.LevelSerializable}
	}
	return s, nil
}

// Open connects to databaseURL, applies migrations and returns a store owning the handle.
func Open(ctx context.Context, driver, databaseURL string) (*Store, error) {
	db, err := database.Open(ctx, driver, databaseURL)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db, driver, databaseURL); err != nil {
		return nil, multierr.Append(err, database.Close(db))
	}
	s, err := New(db, driver)
	if err != nil {
		return nil, multierr.Append(err, database.Close(db))
	}
	return s, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return database.Close(s.db)
}

// Provider returns repositories that run each call directly against the pool.
func (s *Store) Provider() portsrepo.RepositoryProvider {
	return newProvider(baseRepository{q: s.db, d: s.dialect})
}

// Ping checks the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// WithinTx implements portsrepo.TxManager.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, repos portsrepo.RepositoryProvider) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	txCtx := context.WithoutCancel(ctx)
	tx, err := s.db.BeginTx(txCtx, s.txOpts)
	if err != nil {
		return apperrors.NewAppError(nil, "failed to begin transaction", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(txCtx, newProvider(baseRepository{q: tx, d: s.dialect})); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return multierr.Append(err, apperrors.NewAppError(nil, "failed to rollback transaction", rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return translateError(err, "transaction", "commit transaction")
	}
	return nil
}

func newProvider(base baseRepository) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProductRepo:         &productRepository{base},
		CustomerRepo:        &customerRepository{base},
		SaleRepo:            &saleRepository{base},
		PaymentRepo:         &paymentRepository{base},
		SupplierRepo:        &supplierRepository{base},
		PurchaseRepo:        &purchaseRepository{base},
		SupplierPaymentRepo: &supplierPaymentRepository{base},
		ExpenseRepo:         &expenseRepository{base},
		ResetRepo:           &resetRepository{base},
	}
}

var _ portsrepo.TxManager = (*Store)(nil)
