package repositories

import (
	"context"

	"github.com/shopledger/shopledger/internal/core/domain"
)

// PaymentRepositoryFacade defines persistence for customer payments
type PaymentRepositoryFacade interface {
	SavePayment(ctx context.Context, payment domain.Payment) error

	// ListPayments lists payments newest first, optionally for one customer.
	ListPayments(ctx context.Context, customerID string) ([]domain.Payment, error)
}

// SupplierPaymentRepositoryFacade defines persistence for supplier payments
type SupplierPaymentRepositoryFacade interface {
	SaveSupplierPayment(ctx context.Context, payment domain.SupplierPayment) error

	// ListSupplierPayments lists supplier payments newest first, optionally for one supplier.
	ListSupplierPayments(ctx context.Context, supplierID string) ([]domain.SupplierPayment, error)
}
