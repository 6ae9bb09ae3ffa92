package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier is a vendor with a running balance owed to them.
type Supplier struct {
	SupplierID      string          `json:"id"`
	Name            string          `json:"name"`
	Contact         string          `json:"contact"`
	Phone           string          `json:"phone"`
	ShopName        string          `json:"shopName"`
	Address         string          `json:"address"`
	Notes           string          `json:"notes"`
	Balance         decimal.Decimal `json:"balance"` // Amount owed to the supplier
	TotalPurchased  decimal.Decimal `json:"totalPurchased"`
	TotalPaid       decimal.Decimal `json:"totalPaid"`
	CreatedAt       time.Time       `json:"createdAt"`
	NextPaymentDate *time.Time      `json:"nextPaymentDate,omitempty"`
}

// ApplyPurchase adds a purchase total to what is owed.
func (s *Supplier) ApplyPurchase(total decimal.Decimal) {
	s.TotalPurchased = s.TotalPurchased.Add(total)
	s.Balance = s.Balance.Add(total)
}

// ApplyPayment records money paid to the supplier.
func (s *Supplier) ApplyPayment(amount decimal.Decimal) {
	s.Balance = s.Balance.Sub(amount)
	s.TotalPaid = s.TotalPaid.Add(amount)
}

// SupplierUpdate holds the profile fields a supplier edit sets. Nil fields are left as stored.
type SupplierUpdate struct {
	Name            *string
	Contact         *string
	Phone           *string
	ShopName        *string
	Address         *string
	Notes           *string
	NextPaymentDate *time.Time
}

// ApplyTo copies the set fields onto s.
func (u SupplierUpdate) ApplyTo(s *Supplier) {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Contact != nil {
		s.Contact = *u.Contact
	}
	if u.Phone != nil {
		s.Phone = *u.Phone
	}
	if u.ShopName != nil {
		s.ShopName = *u.ShopName
	}
	if u.Address != nil {
		s.Address = *u.Address
	}
	if u.Notes != nil {
		s.Notes = *u.Notes
	}
	if u.NextPaymentDate != nil {
		due := *u.NextPaymentDate
		s.NextPaymentDate = &due
	}
}
