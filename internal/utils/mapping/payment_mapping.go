package mapping

import (
	"github.com/shopledger/shopledger/internal/core/domain"
	"github.com/shopledger/shopledger/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:  d.PaymentID,
		CustomerID: d.CustomerID,
		SaleID:     toNullString(d.SaleID),
		Amount:     d.Amount,
		CreatedAt:  d.CreatedAt.UTC(),
		Method:     d.Method,
		Note:       d.Note,
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:  m.PaymentID,
		CustomerID: m.CustomerID,
		SaleID:     m.SaleID.String,
		Amount:     m.Amount,
		CreatedAt:  m.CreatedAt.UTC(),
		Method:     m.Method,
		Note:       m.Note,
	}
}

func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}

// ToModelSupplierPayment converts a domain SupplierPayment to a model SupplierPayment
func ToModelSupplierPayment(d domain.SupplierPayment) models.SupplierPayment {
	return models.SupplierPayment{
		SupplierPaymentID: d.SupplierPaymentID,
		SupplierID:        d.SupplierID,
		PurchaseID:        toNullString(d.PurchaseID),
		Amount:            d.Amount,
		CreatedAt:         d.CreatedAt.UTC(),
		Method:            d.Method,
		Note:              d.Note,
	}
}

// ToDomainSupplierPayment converts a model SupplierPayment to a domain SupplierPayment
func ToDomainSupplierPayment(m models.SupplierPayment) domain.SupplierPayment {
	return domain.SupplierPayment{
		SupplierPaymentID: m.SupplierPaymentID,
		SupplierID:        m.SupplierID,
		PurchaseID:        m.PurchaseID.String,
		Amount:            m.Amount,
		CreatedAt:         m.CreatedAt.UTC(),
		Method:            m.Method,
		Note:              m.Note,
	}
}

func ToDomainSupplierPaymentSlice(ms []models.SupplierPayment) []domain.SupplierPayment {
	ds := make([]domain.SupplierPayment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSupplierPayment(m)
	}
	return ds
}
