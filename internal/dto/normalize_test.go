package dto_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopledger/shopledger/internal/apperrors"
	"github.com/shopledger/shopledger/internal/core/domain"
	"github.com/shopledger/shopledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_AcceptsAnyKeyCasing(t *testing.T) {
	body := `{
		"items": [{"ProductId": "p-1", "sale-price": "19.99", "QUANTITY": 3}],
		"total": 59.97,
		"customer_details": {"customer_name": "Ana", "payment_type": "Partial", "amount_paid": "20"},
		"shop_id": "shop-2",
		"type": "Sale"
	}`

	var req dto.RecordSaleRequest
	require.NoError(t, dto.Decode(strings.NewReader(body), &req))

	require.Len(t, req.Items, 1)
	assert.Equal(t, "p-1", req.Items[0].ProductID)
	assert.Equal(t, int64(3), req.Items[0].Quantity)
	assert.True(t, req.Items[0].SalePrice.Equal(decimal.RequireFromString("19.99")))
	assert.True(t, req.Total.Equal(decimal.RequireFromString("59.97")))
	assert.Equal(t, "Ana", req.CustomerDetails.CustomerName)
	assert.Equal(t, domain.PaymentTypePartial, req.CustomerDetails.PaymentType)
	assert.True(t, req.CustomerDetails.AmountPaid.Equal(decimal.NewFromInt(20)))
	assert.Nil(t, req.CustomerDetails.RemainingBalance)
	assert.Equal(t, domain.Shop2, req.ShopID)
	assert.Equal(t, domain.SaleTypeSale, req.Type)
}

func TestDecode_NonNumericValuesBecomeZero(t *testing.T) {
	body := `{"items": [{"productId": "p-1", "quantity": "two", "salePrice": "n/a"}], "total": "", "shopId": "shop-1"}`

	var req dto.RecordSaleRequest
	require.NoError(t, dto.Decode(strings.NewReader(body), &req))

	assert.Equal(t, int64(0), req.Items[0].Quantity)
	assert.True(t, req.Items[0].SalePrice.IsZero())
	assert.True(t, req.Total.IsZero())
}

func TestDecode_Dates(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *time.Time
	}{
		{name: "date only", raw: `"2026-03-04"`, want: ptrTime(time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC))},
		{name: "rfc3339 with offset", raw: `"2026-03-04T10:00:00+02:00"`, want: ptrTime(time.Date(2026, 3, 4, 8, 0, 0, 0, time.UTC))},
		{name: "blank", raw: `""`, want: nil},
		{name: "absent", raw: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := `{"supplierId": "s-1", "items": [{"productId": "p-1", "quantity": 1}], "shopId": "shop-1"`
			if tt.raw != "" {
				body += `, "dueDate": ` + tt.raw
			}
			body += "}"

			var req dto.RecordPurchaseRequest
			require.NoError(t, dto.Decode(strings.NewReader(body), &req))

			if tt.want == nil {
				assert.Nil(t, req.DueDate)
				return
			}
			require.NotNil(t, req.DueDate)
			assert.True(t, tt.want.Equal(*req.DueDate), "got %s", req.DueDate)
		})
	}
}

func TestDecode_InvalidDate(t *testing.T) {
	body := `{"supplierId": "s-1", "items": [{"productId": "p-1"}], "shopId": "shop-1", "dueDate": "next tuesday"}`

	var req dto.RecordPurchaseRequest
	err := dto.Decode(strings.NewReader(body), &req)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestDecode_PurchaseLineTotalOverride(t *testing.T) {
	body := `{"supplierId": "s-1", "items": [
		{"productId": "p-1", "quantity": 2, "costPrice": "5"},
		{"productId": "p-2", "quantity": 2, "costPrice": "5", "total": "9.5"}
	], "shopId": "shop-1"}`

	var req dto.RecordPurchaseRequest
	require.NoError(t, dto.Decode(strings.NewReader(body), &req))

	assert.Nil(t, req.Items[0].Total)
	require.NotNil(t, req.Items[1].Total)
	assert.True(t, req.Items[1].Total.Equal(decimal.RequireFromString("9.5")))
}

func TestDecode_UpdateLeavesAbsentFieldsNil(t *testing.T) {
	var req dto.UpdateProductRequest
	require.NoError(t, dto.Decode(strings.NewReader(`{"stock": "12", "sale_price": 7}`), &req))

	require.NotNil(t, req.Stock)
	assert.Equal(t, int64(12), *req.Stock)
	require.NotNil(t, req.SalePrice)
	assert.True(t, req.SalePrice.Equal(decimal.NewFromInt(7)))
	assert.Nil(t, req.Name)
	assert.Nil(t, req.PurchasePrice)
	assert.Nil(t, req.ShopID)
}

func TestDecode_EmptyBodyIsValidatedAsEmptyObject(t *testing.T) {
	var req dto.CreateCustomerRequest
	err := dto.Decode(strings.NewReader("  "), &req)

	require.ErrorIs(t, err, apperrors.ErrValidation)
	assert.EqualError(t, err, "name is required")
}

func TestDecode_RejectsNonObjectBody(t *testing.T) {
	var req dto.CreateCustomerRequest
	err := dto.Decode(strings.NewReader(`"just a string"`), &req)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestValidate_Messages(t *testing.T) {
	tests := []struct {
		name    string
		req     any
		wantMsg string
	}{
		{
			name:    "missing items",
			req:     &dto.RecordSaleRequest{ShopID: domain.Shop1},
			wantMsg: "items is required",
		},
		{
			name:    "unknown shop",
			req:     &dto.CreateExpenseRequest{Description: "Rent", Amount: decimal.NewFromInt(10), ShopID: "shop-3"},
			wantMsg: "shopId must be shop-1 or shop-2",
		},
		{
			name:    "zero expense",
			req:     &dto.CreateExpenseRequest{Description: "Rent", ShopID: domain.Shop1},
			wantMsg: "amount must be greater than 0",
		},
		{
			name:    "negative paid amount",
			req:     &dto.RecordPurchaseRequest{SupplierID: "s-1", Items: []dto.PurchaseItemRequest{{ProductID: "p-1"}}, PaidAmount: decimal.NewFromInt(-1), ShopID: domain.Shop1},
			wantMsg: "paidAmount must not be negative",
		},
		{
			name: "bad payment type",
			req: &dto.RecordSaleRequest{
				Items:           []dto.SaleItemRequest{{ProductID: "p-1", Quantity: 1}},
				ShopID:          domain.Shop1,
				CustomerDetails: dto.CustomerDetails{PaymentType: "Barter"},
			},
			wantMsg: "customerDetails.paymentType must be one of: Full Partial Credit",
		},
		{
			name:    "negative stock correction",
			req:     &dto.UpdateProductRequest{Stock: ptrInt64(-3)},
			wantMsg: "stock must be at least 0",
		},
		{
			name:    "negative opening stock",
			req:     &dto.CreateProductRequest{Name: "Soap", Stock: -1, ShopID: domain.Shop1},
			wantMsg: "stock must be at least 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := dto.Validate(tt.req)
			require.ErrorIs(t, err, apperrors.ErrValidation)
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestValidate_AcceptsMinimalSale(t *testing.T) {
	req := &dto.RecordSaleRequest{
		Items:  []dto.SaleItemRequest{{ProductID: "p-1", Quantity: 1, SalePrice: decimal.NewFromInt(5)}},
		Total:  decimal.NewFromInt(5),
		ShopID: domain.Shop1,
	}

	assert.NoError(t, dto.Validate(req))
}

func TestValidate_UpdateAllowsZeroOrAbsentStock(t *testing.T) {
	assert.NoError(t, dto.Validate(&dto.UpdateProductRequest{Stock: ptrInt64(0)}))
	assert.NoError(t, dto.Validate(&dto.UpdateProductRequest{}))
}

func TestUpdateRequests_ChangesCarryOnlyProvidedFields(t *testing.T) {
	var product dto.UpdateProductRequest
	require.NoError(t, dto.Decode(strings.NewReader(`{"name": "Soap Bar"}`), &product))
	changes := product.Changes()
	require.NotNil(t, changes.Name)
	assert.Equal(t, "Soap Bar", *changes.Name)
	assert.Nil(t, changes.Stock)
	assert.Nil(t, changes.PurchasePrice)
	assert.Nil(t, changes.SupplierID)
	assert.Nil(t, changes.SupplierName)

	var supplier dto.UpdateSupplierRequest
	require.NoError(t, dto.Decode(strings.NewReader(`{"notes": "ships Mondays"}`), &supplier))
	assert.Nil(t, supplier.Changes().NextPaymentDate)
}

func ptrInt64(v int64) *int64 {
	return &v
}

func ptrTime(t time.Time) *time.Time {
	return &t
}
