package mapping

import (
	"github.com/shopledger/shopledger/internal/core/domain"
	"github.com/shopledger/shopledger/internal/models"
)

// ToModelSale converts a domain Sale header to a model Sale. Items are mapped separately.
func ToModelSale(d domain.Sale) models.Sale {
	return models.Sale{
		SaleID:           d.SaleID,
		Type:             string(d.Type),
		Total:            d.Total,
		CreatedAt:        d.CreatedAt.UTC(),
		CustomerID:       toNullString(d.Customer.CustomerID),
		CustomerName:     d.Customer.CustomerName,
		CustomerPhone:    d.Customer.CustomerPhone,
		CustomerAddress:  d.Customer.CustomerAddress,
		PaymentType:      string(d.PaymentType),
		AmountPaid:       d.AmountPaid,
		RemainingBalance: d.RemainingBalance,
		DueDate:          toNullTime(d.DueDate),
		ShopID:           string(d.ShopID),
	}
}

// ToDomainSale converts a model Sale and its item rows to a domain Sale.
func ToDomainSale(m models.Sale, items []models.SaleItem) domain.Sale {
	return domain.Sale{
		SaleID:    m.SaleID,
		Type:      domain.SaleType(m.Type),
		Total:     m.Total,
		CreatedAt: m.CreatedAt.UTC(),
		Customer: domain.CustomerSnapshot{
			CustomerID:      m.CustomerID.String,
			CustomerName:    m.CustomerName,
			CustomerPhone:   m.CustomerPhone,
			CustomerAddress: m.CustomerAddress,
		},
		PaymentType:      domain.PaymentType(m.PaymentType),
		AmountPaid:       m.AmountPaid,
		RemainingBalance: m.RemainingBalance,
		DueDate:          fromNullTime(m.DueDate),
		ShopID:           domain.ShopID(m.ShopID),
		Items:            ToDomainSaleItemSlice(items),
	}
}

// ToModelSaleItem converts a domain SaleItem to a model SaleItem
func ToModelSaleItem(d domain.SaleItem) models.SaleItem {
	return models.SaleItem{
		SaleItemID: d.SaleItemID,
		SaleID:     d.SaleID,
		ProductID:  d.ProductID,
		Name:       d.Name,
		SKU:        d.SKU,
		Quantity:   d.Quantity,
		SalePrice:  d.SalePrice,
		Unit:       d.Unit,
		Size:       d.Size,
		LineTotal:  d.LineTotal,
	}
}

// ToDomainSaleItem converts a model SaleItem to a domain SaleItem
func ToDomainSaleItem(m models.SaleItem) domain.SaleItem {
	return domain.SaleItem{
		SaleItemID: m.SaleItemID,
		SaleID:     m.SaleID,
		ProductID:  m.ProductID,
		Name:       m.Name,
		SKU:        m.SKU,
		Quantity:   m.Quantity,
		SalePrice:  m.SalePrice,
		Unit:       m.Unit,
		Size:       m.Size,
		LineTotal:  m.LineTotal,
	}
}

// ToDomainSaleItemSlice never returns nil so a sale without lines serializes as [].
func ToDomainSaleItemSlice(ms []models.SaleItem) []domain.SaleItem {
	ds := make([]domain.SaleItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSaleItem(m)
	}
	return ds
}
