package repositories

import (
	"context"

	"github.com/shopledger/shopledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaleReader defines read operations for sales and their items
type SaleReader interface {
	// FindSaleByID retrieves a sale with its items.
	FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// ListSales returns one page of sales with items, newest first.
	ListSales(ctx context.Context, filter domain.SaleFilter) (*domain.SalePage, error)
}

// SaleWriter defines write operations for sales
type SaleWriter interface {
	// SaveSale inserts the sale header and every item.
	SaveSale(ctx context.Context, sale domain.Sale) error
}

// SaleTransactionSupport defines operations used by ledger units of work
type SaleTransactionSupport interface {
	// MaxNumericSaleID returns the largest sale id made only of decimal digits, or 0.
	MaxNumericSaleID(ctx context.Context) (int64, error)

	FindSaleByIDForUpdate(ctx context.Context, saleID string) (*domain.Sale, error)

	// UpdateSalePayment persists amountPaid, remainingBalance and paymentType.
	UpdateSalePayment(ctx context.Context, saleID string, amountPaid, remaining decimal.Decimal, paymentType domain.PaymentType) error
}

// SaleRepositoryFacade combines all sale-related repository interfaces
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
	SaleTransactionSupport
}
