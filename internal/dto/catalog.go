package dto

import (
	"time"

	"github.com/shopledger/shopledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the data needed to create a product.
type CreateProductRequest struct {
	Name          string          `json:"name" binding:"required"`
	SKU           string          `json:"sku"`
	PurchasePrice decimal.Decimal `json:"purchasePrice" binding:"dgte0"`
	SalePrice     decimal.Decimal `json:"salePrice" binding:"dgte0"`
	Stock         int64           `json:"stock" binding:"gte=0"`
	Category      string          `json:"category"`
	ShopID        domain.ShopID   `json:"shopId" binding:"shop"`
	SupplierID    string          `json:"supplierId"`
	SupplierName  string          `json:"supplierName"`
	Size          string          `json:"size"`
	Unit          string          `json:"unit"`
}

// UpdateProductRequest defines the fields allowed when updating a product.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateProductRequest struct {
	Name          *string          `json:"name" binding:"omitempty,min=1"`
	SKU           *string          `json:"sku"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice" binding:"omitempty,dgte0"`
	SalePrice     *decimal.Decimal `json:"salePrice" binding:"omitempty,dgte0"`
	Stock         *int64           `json:"stock" binding:"omitempty,gte=0"`
	Category      *string          `json:"category"`
	ShopID        *domain.ShopID   `json:"shopId" binding:"omitempty,shop"`
	SupplierID    *string          `json:"supplierId"`
	SupplierName  *string          `json:"supplierName"`
	Size          *string          `json:"size"`
	Unit          *string          `json:"unit"`
}

// Changes returns the product fields the request sets.
func (r UpdateProductRequest) Changes() domain.ProductUpdate {
	return domain.ProductUpdate{
		Name:          r.Name,
		SKU:           r.SKU,
		PurchasePrice: r.PurchasePrice,
		SalePrice:     r.SalePrice,
		Stock:         r.Stock,
		Category:      r.Category,
		ShopID:        r.ShopID,
		SupplierID:    r.SupplierID,
		SupplierName:  r.SupplierName,
		Size:          r.Size,
		Unit:          r.Unit,
	}
}

// CreateCustomerRequest defines the data needed to create a customer.
type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// UpdateCustomerRequest defines the profile fields allowed when updating a customer.
// Balances only move through the ledger.
type UpdateCustomerRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// CreateSupplierRequest defines the data needed to create a supplier.
type CreateSupplierRequest struct {
	Name            string     `json:"name" binding:"required"`
	Contact         string     `json:"contact"`
	Phone           string     `json:"phone"`
	ShopName        string     `json:"shopName"`
	Address         string     `json:"address"`
	Notes           string     `json:"notes"`
	NextPaymentDate *time.Time `json:"nextPaymentDate"`
}

// UpdateSupplierRequest defines the profile fields allowed when updating a supplier.
type UpdateSupplierRequest struct {
	Name            *string    `json:"name" binding:"omitempty,min=1"`
	Contact         *string    `json:"contact"`
	Phone           *string    `json:"phone"`
	ShopName        *string    `json:"shopName"`
	Address         *string    `json:"address"`
	Notes           *string    `json:"notes"`
	NextPaymentDate *time.Time `json:"nextPaymentDate"`
}

// Changes returns the supplier fields the request sets.
func (r UpdateSupplierRequest) Changes() domain.SupplierUpdate {
	return domain.SupplierUpdate{
		Name:            r.Name,
		Contact:         r.Contact,
		Phone:           r.Phone,
		ShopName:        r.ShopName,
		Address:         r.Address,
		Notes:           r.Notes,
		NextPaymentDate: r.NextPaymentDate,
	}
}

// CreateExpenseRequest defines the data needed to record an expense.
type CreateExpenseRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"dgt0"`
	Category    string          `json:"category"`
	ShopID      domain.ShopID   `json:"shopId" binding:"shop"`
}
