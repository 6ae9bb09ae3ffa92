package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Product mirrors a row of the products table.
type Product struct {
	ProductID     string
	Name          string
	SKU           sql.NullString // NULL when the product has no SKU
	PurchasePrice decimal.Decimal
	SalePrice     decimal.Decimal
	Stock         int64
	Category      string
	ShopID        string
	SupplierID    sql.NullString
	SupplierName  string
	Size          string
	Unit          string
	CreatedAt     time.Time
}
