package mapping

import (
	"github.com/shopledger/shopledger/internal/core/domain"
	"github.com/shopledger/shopledger/internal/models"
)

// ToModelCustomer converts a domain Customer to a model Customer
func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID:     d.CustomerID,
		Name:           d.Name,
		Phone:          d.Phone,
		Address:        d.Address,
		Balance:        d.Balance,
		TotalPurchased: d.TotalPurchased,
		TotalPaid:      d.TotalPaid,
		CreatedAt:      d.CreatedAt.UTC(),
	}
}

// ToDomainCustomer converts a model Customer to a domain Customer
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:     m.CustomerID,
		Name:           m.Name,
		Phone:          m.Phone,
		Address:        m.Address,
		Balance:        m.Balance,
		TotalPurchased: m.TotalPurchased,
		TotalPaid:      m.TotalPaid,
		CreatedAt:      m.CreatedAt.UTC(),
	}
}

// ToDomainCustomerSlice converts a slice of model Customers to a slice of domain Customers
func ToDomainCustomerSlice(ms []models.Customer) []domain.Customer {
	ds := make([]domain.Customer, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCustomer(m)
	}
	return ds
}
