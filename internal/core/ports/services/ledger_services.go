package services

import (
	"context"

	"github.com/shopledger/shopledger/internal/core/domain"
	"github.com/shopledger/shopledger/internal/dto"
)

// LedgerWriterSvc defines the operations that move stock, balances and payment allocations.
// Each call is one atomic unit of work.
type LedgerWriterSvc interface {
	// RecordSale records a sale or return, allocating the next sequential sale id.
	RecordSale(ctx context.Context, req dto.RecordSaleRequest) (*domain.Sale, error)

	// RecordPayment records money received from a customer, optionally against one sale.
	RecordPayment(ctx context.Context, req dto.RecordPaymentRequest) (*domain.Payment, error)

	// RecordPurchase records a stock delivery from a supplier, and the up-front payment if any.
	RecordPurchase(ctx context.Context, req dto.RecordPurchaseRequest) (*domain.Purchase, error)

	// RecordSupplierPayment records money paid to a supplier.
	RecordSupplierPayment(ctx context.Context, req dto.RecordSupplierPaymentRequest) (*domain.SupplierPayment, error)

	// ResetAll deletes every business row.
	ResetAll(ctx context.Context) error
}

// LedgerReaderSvc defines read operations over ledger records
type LedgerReaderSvc interface {
	GetSale(ctx context.Context, saleID string) (*domain.Sale, error)
	ListSales(ctx context.Context, filter domain.SaleFilter) (*domain.SalePage, error)
	GetPurchase(ctx context.Context, purchaseID string) (*domain.Purchase, error)
	ListPurchases(ctx context.Context, supplierID string) ([]domain.Purchase, error)
	ListPayments(ctx context.Context, customerID string) ([]domain.Payment, error)
	ListSupplierPayments(ctx context.Context, supplierID string) ([]domain.SupplierPayment, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerWriterSvc
	LedgerReaderSvc
}

// TransferSvc moves stock between the two shops.
type TransferSvc interface {
	Transfer(ctx context.Context, req dto.TransferRequest) (*domain.TransferResult, error)
}
