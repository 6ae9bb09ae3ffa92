package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Supplier mirrors a row of the suppliers table.
type Supplier struct {
	SupplierID      string
	Name            string
	Contact         string
	Phone           string
	ShopName        string
	Address         string
	Notes           string
	Balance         decimal.Decimal
	TotalPurchased  decimal.Decimal
	TotalPaid       decimal.Decimal
	CreatedAt       time.Time
	NextPaymentDate sql.NullTime
}
