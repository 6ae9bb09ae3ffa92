package dto

import (
	"time"

	"github.com/shopledger/shopledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaleItemRequest is one line of a sale as submitted by the caller.
type SaleItemRequest struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Quantity  int64           `json:"quantity"`
	SalePrice decimal.Decimal `json:"salePrice" binding:"dgte0"`
	Unit      string          `json:"unit"`
	Size      string          `json:"size"`
}

// CustomerDetails carries the customer snapshot and payment terms of a sale.
// CustomerID is empty for walk-in sales.
type CustomerDetails struct {
	CustomerID       string             `json:"customerId"`
	CustomerName     string             `json:"customerName"`
	CustomerPhone    string             `json:"customerPhone"`
	CustomerAddress  string             `json:"customerAddress"`
	PaymentType      domain.PaymentType `json:"paymentType" binding:"omitempty,oneof=Full Partial Credit"`
	AmountPaid       decimal.Decimal    `json:"amountPaid" binding:"dgte0"`
	RemainingBalance *decimal.Decimal   `json:"remainingBalance"` // Defaults to total - amountPaid
	DueDate          *time.Time         `json:"dueDate"`
}

// RecordSaleRequest defines the data needed to record a sale or a return.
type RecordSaleRequest struct {
	Items           []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
	Total           decimal.Decimal   `json:"total" binding:"dgte0"`
	CustomerDetails CustomerDetails   `json:"customerDetails"`
	ShopID          domain.ShopID     `json:"shopId" binding:"shop"`
	Type            domain.SaleType   `json:"type" binding:"omitempty,oneof=Sale Return"`
}

// RecordPaymentRequest defines a payment received from a customer.
type RecordPaymentRequest struct {
	CustomerID string          `json:"customerId" binding:"required"`
	SaleID     string          `json:"saleId"`
	Amount     decimal.Decimal `json:"amount" binding:"dgt0"`
	Method     string          `json:"method"`
	Note       string          `json:"note"`
}

// PurchaseItemRequest is one line of a purchase. Total overrides quantity x costPrice when present.
type PurchaseItemRequest struct {
	ProductID   string           `json:"productId"`
	ProductName string           `json:"productName"`
	Quantity    int64            `json:"quantity"`
	CostPrice   decimal.Decimal  `json:"costPrice"`
	Total       *decimal.Decimal `json:"total"`
}

// RecordPurchaseRequest defines a stock purchase from a supplier.
type RecordPurchaseRequest struct {
	SupplierID string                `json:"supplierId" binding:"required"`
	Items      []PurchaseItemRequest `json:"items" binding:"required,min=1"`
	PaidAmount decimal.Decimal       `json:"paidAmount" binding:"dgte0"`
	ShopID     domain.ShopID         `json:"shopId" binding:"shop"`
	DueDate    *time.Time            `json:"dueDate"`
}

// RecordSupplierPaymentRequest defines a payment made to a supplier.
type RecordSupplierPaymentRequest struct {
	SupplierID string          `json:"supplierId" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"dgt0"`
	Method     string          `json:"method"`
	Note       string          `json:"note"`
}

// TransferRequest moves stock from a product to its counterpart in the other shop.
type TransferRequest struct {
	SourceProductID string `json:"sourceProductId" binding:"required"`
	Quantity        int64  `json:"quantity" binding:"gt=0"`
}

// ListSalesParams defines query parameters for listing sales.
type ListSalesParams struct {
	CustomerID string `form:"customerId"`
	ShopID     string `form:"shopId"`
	Limit      int    `form:"limit"`
	NextToken  string `form:"nextToken"`
}

// ListSalesResponse is one page of sales.
type ListSalesResponse struct {
	Sales     []domain.Sale `json:"sales"`
	NextToken string        `json:"nextToken,omitempty"`
}

// ToListSalesResponse converts a domain.SalePage to its response.
func ToListSalesResponse(page *domain.SalePage) ListSalesResponse {
	return ListSalesResponse{Sales: page.Sales, NextToken: page.NextToken}
}

// TransferResponse reports both sides of a stock transfer.
type TransferResponse struct {
	Source             domain.Product `json:"source"`
	Destination        domain.Product `json:"destination"`
	DestinationCreated bool           `json:"destinationCreated"`
}

// ToTransferResponse converts a domain.TransferResult to its response.
func ToTransferResponse(r *domain.TransferResult) TransferResponse {
	return TransferResponse{
		Source:             r.Source,
		Destination:        r.Destination,
		DestinationCreated: r.DestinationCreated,
	}
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error  string       `json:"error"`
	Item   *ItemProblem `json:"item,omitempty"`
	Detail string       `json:"detail,omitempty"`
}

// ItemProblem points at the line item that failed.
type ItemProblem struct {
	Index     int    `json:"index"`
	ProductID string `json:"productId"`
}
