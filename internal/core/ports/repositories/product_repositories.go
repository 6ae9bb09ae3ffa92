package repositories

import (
	"context"

	"github.com/shopledger/shopledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProductReader defines read operations for product data
type ProductReader interface {
	// FindProductByID retrieves a product by id.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// FindMatchingProduct finds the product in shop that matches sku, or name when sku is empty.
	// Returns apperrors.ErrNotFound when nothing matches.
	FindMatchingProduct(ctx context.Context, shop domain.ShopID, sku, name string) (*domain.Product, error)

	// ListProducts lists products, optionally restricted to one shop.
	ListProducts(ctx context.Context, shop domain.ShopID) ([]domain.Product, error)
}

// ProductWriter defines write operations for product data
type ProductWriter interface {
	SaveProduct(ctx context.Context, product domain.Product) error

	// UpdateProduct writes only the fields set in update.
	UpdateProduct(ctx context.Context, productID string, update domain.ProductUpdate) error

	DeleteProduct(ctx context.Context, productID string) error
}

// ProductTransactionSupport defines operations used by ledger units of work
type ProductTransactionSupport interface {
	// FindProductByIDForUpdate retrieves a product and locks it where the dialect supports row locks.
	FindProductByIDForUpdate(ctx context.Context, productID string) (*domain.Product, error)

	// AdjustProductStock adds delta (which may be negative) to the product's stock.
	AdjustProductStock(ctx context.Context, productID string, delta int64) error

	// ApplyProductPurchase adds quantity to stock and overwrites the purchase price and supplier snapshot.
	ApplyProductPurchase(ctx context.Context, productID string, quantity int64, costPrice decimal.Decimal, supplierID, supplierName string) error
}

// ProductRepositoryFacade combines all product-related repository interfaces
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
	ProductTransactionSupport
}
