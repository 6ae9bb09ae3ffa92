package repositories

import "context"

// TxManager runs a unit of work inside one storage transaction.
// The repositories handed to fn are bound to that transaction. If fn returns an error
// (or panics) the transaction is rolled back before WithinTx returns.
// Cancelling ctx stops the work only before the transaction begins; the ctx passed to fn
// keeps ctx's values but is never cancelled.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos RepositoryProvider) error) error
}

// ResetRepository wipes all persisted business data.
type ResetRepository interface {
	// DeleteAll removes every row from every table in foreign-key-safe order.
	DeleteAll(ctx context.Context) error
}
