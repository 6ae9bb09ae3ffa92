package mapping

import (
	"github.com/shopledger/shopledger/internal/core/domain"
	"github.com/shopledger/shopledger/internal/models"
)

// ToModelProduct converts a domain Product to a model Product
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:     d.ProductID,
		Name:          d.Name,
		SKU:           toNullString(d.SKU),
		PurchasePrice: d.PurchasePrice,
		SalePrice:     d.SalePrice,
		Stock:         d.Stock,
		Category:      d.Category,
		ShopID:        string(d.ShopID),
		SupplierID:    toNullString(d.SupplierID),
		SupplierName:  d.SupplierName,
		Size:          d.Size,
		Unit:          d.Unit,
		CreatedAt:     d.CreatedAt.UTC(),
	}
}

// ToDomainProduct converts a model Product to a domain Product
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:     m.ProductID,
		Name:          m.Name,
		SKU:           m.SKU.String,
		PurchasePrice: m.PurchasePrice,
		SalePrice:     m.SalePrice,
		Stock:         m.Stock,
		Category:      m.Category,
		ShopID:        domain.ShopID(m.ShopID),
		SupplierID:    m.SupplierID.String,
		SupplierName:  m.SupplierName,
		Size:          m.Size,
		Unit:          m.Unit,
		CreatedAt:     m.CreatedAt.UTC(),
	}
}

// ToDomainProductSlice converts a slice of model Products to a slice of domain Products
func ToDomainProductSlice(ms []models.Product) []domain.Product {
	ds := make([]domain.Product, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProduct(m)
	}
	return ds
}
