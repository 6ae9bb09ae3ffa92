package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is money received from a customer, optionally allocated to one sale.
type Payment struct {
	PaymentID  string          `json:"id"`
	CustomerID string          `json:"customerId"`
	SaleID     string          `json:"saleId,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	CreatedAt  time.Time       `json:"createdAt"`
	Method     string          `json:"method"`
	Note       string          `json:"note"`
}

// SupplierPayment is money paid to a supplier.
type SupplierPayment struct {
	SupplierPaymentID string          `json:"id"`
	SupplierID        string          `json:"supplierId"`
	PurchaseID        string          `json:"purchaseId,omitempty"` // Set for payments made at purchase time
	Amount            decimal.Decimal `json:"amount"`
	CreatedAt         time.Time       `json:"createdAt"`
	Method            string          `json:"method"`
	Note              string          `json:"note"`
}

// DefaultSupplierPaymentMethod is used for the payment recorded alongside a purchase.
const DefaultSupplierPaymentMethod = "Cash"
