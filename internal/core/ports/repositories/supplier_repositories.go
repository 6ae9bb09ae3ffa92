package repositories

import (
	"context"

	"github.com/shopledger/shopledger/internal/core/domain"
)

// SupplierReader defines read operations for supplier data
type SupplierReader interface {
	FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
}

// SupplierWriter defines write operations for supplier data
type SupplierWriter interface {
	SaveSupplier(ctx context.Context, supplier domain.Supplier) error

	// UpdateSupplier writes only the profile fields set in update. Balances are left alone.
	UpdateSupplier(ctx context.Context, supplierID string, update domain.SupplierUpdate) error

	DeleteSupplier(ctx context.Context, supplierID string) error
}

// SupplierTransactionSupport defines operations used by ledger units of work
type SupplierTransactionSupport interface {
	FindSupplierByIDForUpdate(ctx context.Context, supplierID string) (*domain.Supplier, error)

	// UpdateSupplierBalances persists balance, totalPurchased, totalPaid and nextPaymentDate.
	UpdateSupplierBalances(ctx context.Context, supplier domain.Supplier) error
}

// SupplierRepositoryFacade combines all supplier-related repository interfaces
type SupplierRepositoryFacade interface {
	SupplierReader
	SupplierWriter
	SupplierTransactionSupport
}
