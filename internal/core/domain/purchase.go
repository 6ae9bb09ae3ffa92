package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is a stock delivery bought from a supplier.
type Purchase struct {
	PurchaseID      string          `json:"id"`
	SupplierID      string          `json:"supplierId"`
	SupplierName    string          `json:"supplierName"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	PaidAmount      decimal.Decimal `json:"paidAmount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	CreatedAt       time.Time       `json:"createdAt"`
	ShopID          ShopID          `json:"shopId"`
	DueDate         *time.Time      `json:"dueDate,omitempty"`
	Items           []PurchaseItem  `json:"items"`
}

// PaymentNote is the note attached to the supplier payment recorded with a purchase.
func (p Purchase) PaymentNote() string {
	return fmt.Sprintf("Payment for purchase %s", p.PurchaseID)
}

// PurchaseItem is one line of a purchase. Owned by the purchase and deleted with it.
type PurchaseItem struct {
	PurchaseItemID string          `json:"id"`
	PurchaseID     string          `json:"purchaseId"`
	ProductID      string          `json:"productId"`
	ProductName    string          `json:"productName"`
	Quantity       int64           `json:"quantity"`
	CostPrice      decimal.Decimal `json:"costPrice"`
	Total          decimal.Decimal `json:"total"`
}

// PurchaseLineTotal returns the declared total when present, else quantity x cost.
func PurchaseLineTotal(declared *decimal.Decimal, quantity int64, cost decimal.Decimal) decimal.Decimal {
	if declared != nil {
		return *declared
	}
	return cost.Mul(decimal.NewFromInt(quantity))
}
