package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a buyer with a running balance.
// Balance is maintained incrementally by sales and payments, never recomputed.
type Customer struct {
	CustomerID     string          `json:"id"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone"`
	Address        string          `json:"address"`
	Balance        decimal.Decimal `json:"balance"`        // Amount the customer owes
	TotalPurchased decimal.Decimal `json:"totalPurchased"` // Lifetime sales total
	TotalPaid      decimal.Decimal `json:"totalPaid"`      // Lifetime payments received
	CreatedAt      time.Time       `json:"createdAt"`
}

// ApplySale records an unpaid/paid sale against the customer.
func (c *Customer) ApplySale(total, amountPaid, remaining decimal.Decimal) {
	c.TotalPurchased = c.TotalPurchased.Add(total)
	c.TotalPaid = c.TotalPaid.Add(amountPaid)
	c.Balance = c.Balance.Add(remaining)
}

// ApplyReturn reduces the balance by the returned remaining amount.
func (c *Customer) ApplyReturn(remaining decimal.Decimal) {
	c.Balance = c.Balance.Sub(remaining)
}

// ApplyPayment records money received from the customer.
func (c *Customer) ApplyPayment(amount decimal.Decimal) {
	c.Balance = c.Balance.Sub(amount)
	c.TotalPaid = c.TotalPaid.Add(amount)
}
