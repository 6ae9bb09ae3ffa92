package repositories

import (
	"context"

	"github.com/shopledger/shopledger/internal/core/domain"
)

// PurchaseReader defines read operations for purchases and their items
type PurchaseReader interface {
	FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error)

	// ListPurchases lists purchases with items, newest first, optionally for one supplier.
	ListPurchases(ctx context.Context, supplierID string) ([]domain.Purchase, error)
}

// PurchaseWriter defines write operations for purchases
type PurchaseWriter interface {
	// SavePurchase inserts the purchase header only.
	SavePurchase(ctx context.Context, purchase domain.Purchase) error

	// SavePurchaseItem inserts one purchase line. position orders lines within the purchase.
	SavePurchaseItem(ctx context.Context, position int, item domain.PurchaseItem) error
}

// PurchaseRepositoryFacade combines all purchase-related repository interfaces
type PurchaseRepositoryFacade interface {
	PurchaseReader
	PurchaseWriter
}
