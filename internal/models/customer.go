package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer mirrors a row of the customers table.
type Customer struct {
	CustomerID     string
	Name           string
	Phone          string
	Address        string
	Balance        decimal.Decimal
	TotalPurchased decimal.Decimal
	TotalPaid      decimal.Decimal
	CreatedAt      time.Time
}
