package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a shop running cost. It is outside the ledger graph.
type Expense struct {
	ExpenseID   string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	CreatedAt   time.Time       `json:"createdAt"`
	ShopID      ShopID          `json:"shopId"`
}
