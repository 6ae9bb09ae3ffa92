package repositories

import (
	"context"

	"github.com/shopledger/shopledger/internal/core/domain"
)

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}

// CustomerWriter defines write operations for customer data
type CustomerWriter interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error

	// UpdateCustomer updates profile fields. Balances are left alone.
	UpdateCustomer(ctx context.Context, customer domain.Customer) error

	DeleteCustomer(ctx context.Context, customerID string) error
}

// CustomerTransactionSupport defines operations used by ledger units of work
type CustomerTransactionSupport interface {
	FindCustomerByIDForUpdate(ctx context.Context, customerID string) (*domain.Customer, error)

	// UpdateCustomerBalances persists balance, totalPurchased and totalPaid.
	UpdateCustomerBalances(ctx context.Context, customer domain.Customer) error
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
	CustomerTransactionSupport
}
