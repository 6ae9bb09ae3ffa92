package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense mirrors a row of the expenses table.
type Expense struct {
	ExpenseID   string
	Description string
	Amount      decimal.Decimal
	Category    string
	CreatedAt   time.Time
	ShopID      string
}
