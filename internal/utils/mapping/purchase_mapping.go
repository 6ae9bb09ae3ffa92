package mapping

import (
	"github.com/shopledger/shopledger/internal/core/domain"
	"github.com/shopledger/shopledger/internal/models"
)

// ToModelPurchase converts a domain Purchase header to a model Purchase. Items are mapped separately.
func ToModelPurchase(d domain.Purchase) models.Purchase {
	return models.Purchase{
		PurchaseID:      d.PurchaseID,
		SupplierID:      d.SupplierID,
		SupplierName:    d.SupplierName,
		TotalAmount:     d.TotalAmount,
		PaidAmount:      d.PaidAmount,
		RemainingAmount: d.RemainingAmount,
		CreatedAt:       d.CreatedAt.UTC(),
		ShopID:          string(d.ShopID),
		DueDate:         toNullTime(d.DueDate),
	}
}

// ToDomainPurchase converts a model Purchase and its item rows to a domain Purchase.
func ToDomainPurchase(m models.Purchase, items []models.PurchaseItem) domain.Purchase {
	return domain.Purchase{
		PurchaseID:      m.PurchaseID,
		SupplierID:      m.SupplierID,
		SupplierName:    m.SupplierName,
		TotalAmount:     m.TotalAmount,
		PaidAmount:      m.PaidAmount,
		RemainingAmount: m.RemainingAmount,
		CreatedAt:       m.CreatedAt.UTC(),
		ShopID:          domain.ShopID(m.ShopID),
		DueDate:         fromNullTime(m.DueDate),
		Items:           ToDomainPurchaseItemSlice(items),
	}
}

func ToModelPurchaseItem(d domain.PurchaseItem) models.PurchaseItem {
	return models.PurchaseItem{
		PurchaseItemID: d.PurchaseItemID,
		PurchaseID:     d.PurchaseID,
		ProductID:      toNullString(d.ProductID),
		ProductName:    d.ProductName,
		Quantity:       d.Quantity,
		CostPrice:      d.CostPrice,
		Total:          d.Total,
	}
}

func ToDomainPurchaseItem(m models.PurchaseItem) domain.PurchaseItem {
	return domain.PurchaseItem{
		PurchaseItemID: m.PurchaseItemID,
		PurchaseID:     m.PurchaseID,
		ProductID:      m.ProductID.String,
		ProductName:    m.ProductName,
		Quantity:       m.Quantity,
		CostPrice:      m.CostPrice,
		Total:          m.Total,
	}
}

func ToDomainPurchaseItemSlice(ms []models.PurchaseItem) []domain.PurchaseItem {
	ds := make([]domain.PurchaseItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPurchaseItem(m)
	}
	return ds
}
