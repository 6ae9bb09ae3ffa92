package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Purchase mirrors a row of the purchases table.
type Purchase struct {
	PurchaseID      string
	SupplierID      string
	SupplierName    string
	TotalAmount     decimal.Decimal
	PaidAmount      decimal.Decimal
	RemainingAmount decimal.Decimal
	CreatedAt       time.Time
	ShopID          string
	DueDate         sql.NullTime
}

// PurchaseItem mirrors a row of the purchase_items table.
// ProductID is nulled if the product is deleted later.
type PurchaseItem struct {
	PurchaseItemID string
	PurchaseID     string
	Position       int
	ProductID      sql.NullString
	ProductName    string
	Quantity       int64
	CostPrice      decimal.Decimal
	Total          decimal.Decimal
}
