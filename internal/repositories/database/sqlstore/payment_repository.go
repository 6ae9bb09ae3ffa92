package sqlstore

import (
	"context"

	"github.com/shopledger/shopledger/internal/core/domain"
	portsrepo "github.com/shopledger/shopledger/internal/core/ports/repositories"
	"github.com/shopledger/shopledger/internal/models"
	"github.com/shopledger/shopledger/internal/utils/mapping"
)

const (
	paymentColumns         = `id, customer_id, sale_id, amount, created_at, method, note`
	supplierPaymentColumns = `id, supplier_id, purchase_id, amount, created_at, method, note`
)

type paymentRepository struct {
	baseRepository
}

var _ portsrepo.PaymentRepositoryFacade = (*paymentRepository)(nil)

func (r *paymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	_, err := r.exec(ctx, `INSERT INTO payments (`+paymentColumns+`) VALUES (`+placeholders(7)+`)`,
		m.PaymentID, m.CustomerID, m.SaleID, m.Amount, m.CreatedAt, m.Method, m.Note)
	return translateError(err, "payment", "save payment "+m.PaymentID)
}

func (r *paymentRepository) ListPayments(ctx context.Context, customerID string) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments`
	args := []any{}
	if customerID != "" {
		query += ` WHERE customer_id = ?`
		args = append(args, customerID)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "payment", "list payments")
	}
	defer rows.Close()

	var ms []models.Payment
	for rows.Next() {
		var m models.Payment
		if err := rows.Scan(&m.PaymentID, &m.CustomerID, &m.SaleID, &m.Amount, &m.CreatedAt, &m.Method, &m.Note); err != nil {
			return nil, translateError(err, "payment", "scan payment")
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "payment", "list payments")
	}
	return mapping.ToDomainPaymentSlice(ms), nil
}

type supplierPaymentRepository struct {
	baseRepository
}

var _ portsrepo.SupplierPaymentRepositoryFacade = (*supplierPaymentRepository)(nil)

func (r *supplierPaymentRepository) SaveSupplierPayment(ctx context.Context, payment domain.SupplierPayment) error {
	m := mapping.ToModelSupplierPayment(payment)
	_, err := r.exec(ctx, `INSERT INTO supplier_payments (`+supplierPaymentColumns+`) VALUES (`+placeholders(7)+`)`,
		m.SupplierPaymentID, m.SupplierID, m.PurchaseID, m.Amount, m.CreatedAt, m.Method, m.Note)
	return translateError(err, "supplier payment", "save supplier payment "+m.SupplierPaymentID)
}

func (r *supplierPaymentRepository) ListSupplierPayments(ctx context.Context, supplierID string) ([]domain.SupplierPayment, error) {
	query := `SELECT ` + supplierPaymentColumns + ` FROM supplier_payments`
	args := []any{}
	if supplierID != "" {
		query += ` WHERE supplier_id = ?`
		args = append(args, supplierID)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "supplier payment", "list supplier payments")
	}
	defer rows.Close()

	var ms []models.SupplierPayment
	for rows.Next() {
		var m models.SupplierPayment
		if err := rows.Scan(&m.SupplierPaymentID, &m.SupplierID, &m.PurchaseID, &m.Amount, &m.CreatedAt, &m.Method, &m.Note); err != nil {
			return nil, translateError(err, "supplier payment", "scan supplier payment")
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "supplier payment", "list supplier payments")
	}
	return mapping.ToDomainSupplierPaymentSlice(ms), nil
}
