package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Sale mirrors a row of the sales table. Customer fields are a snapshot, not a foreign key.
type Sale struct {
	SaleID           string
	Type             string
	Total            decimal.Decimal
	CreatedAt        time.Time
	CustomerID       sql.NullString
	CustomerName     string
	CustomerPhone    string
	CustomerAddress  string
	PaymentType      string
	AmountPaid       decimal.Decimal
	RemainingBalance decimal.Decimal
	DueDate          sql.NullTime
	ShopID           string
}

// SaleItem mirrors a row of the sale_items table.
type SaleItem struct {
	SaleItemID string
	SaleID     string
	Position   int
	ProductID  string
	Name       string
	SKU        string
	Quantity   int64
	SalePrice  decimal.Decimal
	Unit       string
	Size       string
	LineTotal  decimal.Decimal
}
