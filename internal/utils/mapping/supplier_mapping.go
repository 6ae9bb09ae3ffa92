package mapping

import (
	"github.com/shopledger/shopledger/internal/core/domain"
	"github.com/shopledger/shopledger/internal/models"
)

// ToModelSupplier converts a domain Supplier to a model Supplier
func ToModelSupplier(d domain.Supplier) models.Supplier {
	return models.Supplier{
		SupplierID:      d.SupplierID,
		Name:            d.Name,
		Contact:         d.Contact,
		Phone:           d.Phone,
		ShopName:        d.ShopName,
		Address:         d.Address,
		Notes:           d.Notes,
		Balance:         d.Balance,
		TotalPurchased:  d.TotalPurchased,
		TotalPaid:       d.TotalPaid,
		CreatedAt:       d.CreatedAt.UTC(),
		NextPaymentDate: toNullTime(d.NextPaymentDate),
	}
}

// ToDomainSupplier converts a model Supplier to a domain Supplier
func ToDomainSupplier(m models.Supplier) domain.Supplier {
	return domain.Supplier{
		SupplierID:      m.SupplierID,
		Name:            m.Name,
		Contact:         m.Contact,
		Phone:           m.Phone,
		ShopName:        m.ShopName,
		Address:         m.Address,
		Notes:           m.Notes,
		Balance:         m.Balance,
		TotalPurchased:  m.TotalPurchased,
		TotalPaid:       m.TotalPaid,
		CreatedAt:       m.CreatedAt.UTC(),
		NextPaymentDate: fromNullTime(m.NextPaymentDate),
	}
}

// ToDomainSupplierSlice converts a slice of model Suppliers to a slice of domain Suppliers
func ToDomainSupplierSlice(ms []models.Supplier) []domain.Supplier {
	ds := make([]domain.Supplier, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSupplier(m)
	}
	return ds
}
