package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Payment mirrors a row of the payments table.
type Payment struct {
	PaymentID  string
	CustomerID string
	SaleID     sql.NullString
	Amount     decimal.Decimal
	CreatedAt  time.Time
	Method     string
	Note       string
}

// SupplierPayment mirrors a row of the supplier_payments table.
type SupplierPayment struct {
	SupplierPaymentID string
	SupplierID        string
	PurchaseID        sql.NullString
	Amount            decimal.Decimal
	CreatedAt         time.Time
	Method            string
	Note              string
}
