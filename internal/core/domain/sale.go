package domain

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// SaleType distinguishes a sale from a customer return.
type SaleType string

const (
	SaleTypeSale   SaleType = "Sale"
	SaleTypeReturn SaleType = "Return"
)

// IsValid reports whether the type is Sale or Return.
func (t SaleType) IsValid() bool {
	return t == SaleTypeSale || t == SaleTypeReturn
}

// PaymentType describes how much of a sale has been settled.
type PaymentType string

const (
	PaymentTypeFull    PaymentType = "Full"
	PaymentTypePartial PaymentType = "Partial"
	PaymentTypeCredit  PaymentType = "Credit"
)

// DerivePaymentType picks the payment type for a sale when the caller did not supply one.
func DerivePaymentType(amountPaid, remaining decimal.Decimal) PaymentType {
	switch {
	case remaining.LessThanOrEqual(decimal.Zero):
		return PaymentTypeFull
	case amountPaid.IsZero():
		return PaymentTypeCredit
	default:
		return PaymentTypePartial
	}
}

// CustomerSnapshot is the denormalized copy of the customer stored on a sale.
type CustomerSnapshot struct {
	CustomerID      string `json:"customerId"` // Empty for walk-in sales
	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerAddress string `json:"customerAddress"`
}

// Sale is an invoice. Its ID is a sequential decimal string.
type Sale struct {
	SaleID           string           `json:"id"`
	Type             SaleType         `json:"type"`
	Total            decimal.Decimal  `json:"total"`
	CreatedAt        time.Time        `json:"createdAt"`
	Customer         CustomerSnapshot `json:"customer"`
	PaymentType      PaymentType      `json:"paymentType"`
	AmountPaid       decimal.Decimal  `json:"amountPaid"`
	RemainingBalance decimal.Decimal  `json:"remainingBalance"`
	DueDate          *time.Time       `json:"dueDate,omitempty"`
	ShopID           ShopID           `json:"shopId"`
	Items            []SaleItem       `json:"items"`
}

// ApplyPayment allocates a customer payment to this sale.
func (s *Sale) ApplyPayment(amount decimal.Decimal) {
	s.AmountPaid = s.AmountPaid.Add(amount)
	s.RemainingBalance = s.RemainingBalance.Sub(amount)
	if s.RemainingBalance.LessThanOrEqual(decimal.Zero) {
		s.PaymentType = PaymentTypeFull
	}
}

// StockDelta returns the signed stock movement a line of this sale causes.
func (s Sale) StockDelta(quantity int64) int64 {
	if s.Type == SaleTypeReturn {
		return quantity
	}
	return -quantity
}

// SaleItem is one line of a sale. Owned by the sale and deleted with it.
type SaleItem struct {
	SaleItemID string          `json:"id"`
	SaleID     string          `json:"saleId"`
	ProductID  string          `json:"productId"`
	Name       string          `json:"name"`
	SKU        string          `json:"sku"`
	Quantity   int64           `json:"quantity"`
	SalePrice  decimal.Decimal `json:"salePrice"`
	Unit       string          `json:"unit"`
	Size       string          `json:"size"`
	LineTotal  decimal.Decimal `json:"lineTotal"` // SalePrice x Quantity
}

// LineTotalFor computes price x quantity for a line.
func LineTotalFor(price decimal.Decimal, quantity int64) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(quantity))
}

// FormatSaleID renders the sequence number following maxID as a sale id.
func FormatSaleID(maxID int64) string {
	return strconv.FormatInt(maxID+1, 10)
}
