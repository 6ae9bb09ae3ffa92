package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a stock-keeping item held in one shop.
type Product struct {
	ProductID     string          `json:"id"`
	Name          string          `json:"name"`
	SKU           string          `json:"sku"` // Optional; drives transfer matching when set
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	Stock         int64           `json:"stock"`
	Category      string          `json:"category"`
	ShopID        ShopID          `json:"shopId"`
	SupplierID    string          `json:"supplierId"`   // Snapshot of the most recent supplier
	SupplierName  string          `json:"supplierName"` // Snapshot of the most recent supplier
	Size          string          `json:"size"`
	Unit          string          `json:"unit"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// CloneInto copies everything but identity and stock into a new product for the given shop.
func (p Product) CloneInto(shop ShopID, newID string, stock int64, now time.Time) Product {
	clone := p
	clone.ProductID = newID
	clone.ShopID = shop
	clone.Stock = stock
	clone.CreatedAt = now
	return clone
}

// ProductUpdate holds the product fields a catalog edit sets. Nil fields are left as stored.
type ProductUpdate struct {
	Name          *string
	SKU           *string
	PurchasePrice *decimal.Decimal
	SalePrice     *decimal.Decimal
	Stock         *int64
	Category      *string
	ShopID        *ShopID
	SupplierID    *string
	SupplierName  *string
	Size          *string
	Unit          *string
}

// ApplyTo copies the set fields onto p.
func (u ProductUpdate) ApplyTo(p *Product) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.SKU != nil {
		p.SKU = *u.SKU
	}
	if u.PurchasePrice != nil {
		p.PurchasePrice = *u.PurchasePrice
	}
	if u.SalePrice != nil {
		p.SalePrice = *u.SalePrice
	}
	if u.Stock != nil {
		p.Stock = *u.Stock
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.ShopID != nil {
		p.ShopID = *u.ShopID
	}
	if u.SupplierID != nil {
		p.SupplierID = *u.SupplierID
	}
	if u.SupplierName != nil {
		p.SupplierName = *u.SupplierName
	}
	if u.Size != nil {
		p.Size = *u.Size
	}
	if u.Unit != nil {
		p.Unit = *u.Unit
	}
}
