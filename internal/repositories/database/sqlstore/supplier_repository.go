package sqlstore

import (
	"context"

	"github.com/shopledger/shopledger/internal/core/domain"
	portsrepo "github.com/shopledger/shopledger/internal/core/ports/repositories"
	"github.com/shopledger/shopledger/internal/models"
	"github.com/shopledger/shopledger/internal/utils/mapping"
)

const supplierColumns = `id, name, contact, phone, shop_name, address, notes, balance, total_purchased, total_paid, created_at, next_payment_date`

type supplierRepository struct {
	baseRepository
}

var _ portsrepo.SupplierRepositoryFacade = (*supplierRepository)(nil)

func scanSupplier(s rowScanner) (models.Supplier, error) {
	var m models.Supplier
	err := s.Scan(
		&m.SupplierID,
		&m.Name,
		&m.Contact,
		&m.Phone,
		&m.ShopName,
		&m.Address,
		&m.Notes,
		&m.Balance,
		&m.TotalPurchased,
		&m.TotalPaid,
		&m.CreatedAt,
		&m.NextPaymentDate,
	)
	return m, err
}

func (r *supplierRepository) findOne(ctx context.Context, query string, args ...any) (*domain.Supplier, error) {
	m, err := scanSupplier(r.queryRow(ctx, query, args...))
	if err != nil {
		return nil, translateError(err, "supplier", "find supplier")
	}
	s := mapping.ToDomainSupplier(m)
	return &s, nil
}

func (r *supplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	return r.findOne(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE id = ?`, supplierID)
}

func (r *supplierRepository) FindSupplierByIDForUpdate(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	return r.findOne(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE id = ?`+r.d.forUpdate(), supplierID)
}

func (r *supplierRepository) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	rows, err := r.query(ctx, `SELECT `+supplierColumns+` FROM suppliers ORDER BY name, id`)
	if err != nil {
		return nil, translateError(err, "supplier", "list suppliers")
	}
	defer rows.Close()

	var ms []models.Supplier
	for rows.Next() {
		m, err := scanSupplier(rows)
		if err != nil {
			return nil, translateError(err, "supplier", "scan supplier")
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "supplier", "list suppliers")
	}
	return mapping.ToDomainSupplierSlice(ms), nil
}

func (r *supplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	m := mapping.ToModelSupplier(supplier)
	_, err := r.exec(ctx, `INSERT INTO suppliers (`+supplierColumns+`) VALUES (`+placeholders(12)+`)`,
		m.SupplierID,
		m.Name,
		m.Contact,
		m.Phone,
		m.ShopName,
		m.Address,
		m.Notes,
		m.Balance,
		m.TotalPurchased,
		m.TotalPaid,
		m.CreatedAt,
		m.NextPaymentDate,
	)
	return translateError(err, "supplier", "save supplier "+m.SupplierID)
}

// UpdateSupplier writes only the profile columns set in update.
func (r *supplierRepository) UpdateSupplier(ctx context.Context, supplierID string, update domain.SupplierUpdate) error {
	var sup domain.Supplier
	update.ApplyTo(&sup)
	m := mapping.ToModelSupplier(sup)

	var set assignments
	set.addIf(update.Name != nil, "name", m.Name)
	set.addIf(update.Contact != nil, "contact", m.Contact)
	set.addIf(update.Phone != nil, "phone", m.Phone)
	set.addIf(update.ShopName != nil, "shop_name", m.ShopName)
	set.addIf(update.Address != nil, "address", m.Address)
	set.addIf(update.Notes != nil, "notes", m.Notes)
	set.addIf(update.NextPaymentDate != nil, "next_payment_date", m.NextPaymentDate)

	query, args := set.update("suppliers", supplierID)
	res, err := r.exec(ctx, query, args...)
	if err != nil {
		return translateError(err, "supplier", "update supplier "+supplierID)
	}
	return expectAffected(res, "supplier", "update supplier")
}

func (r *supplierRepository) UpdateSupplierBalances(ctx context.Context, supplier domain.Supplier) error {
	m := mapping.ToModelSupplier(supplier)
	res, err := r.exec(ctx, `
		UPDATE suppliers
		SET balance = ?, total_purchased = ?, total_paid = ?, next_payment_date = ?
		WHERE id = ?`,
		m.Balance, m.TotalPurchased, m.TotalPaid, m.NextPaymentDate, m.SupplierID)
	if err != nil {
		return translateError(err, "supplier", "update balances of supplier "+m.SupplierID)
	}
	return expectAffected(res, "supplier", "update supplier balances")
}

// DeleteSupplier fails with a constraint error while purchases or payments reference the supplier.
func (r *supplierRepository) DeleteSupplier(ctx context.Context, supplierID string) error {
	res, err := r.exec(ctx, `DELETE FROM suppliers WHERE id = ?`, supplierID)
	if err != nil {
		return translateError(err, "supplier", "delete supplier "+supplierID)
	}
	return expectAffected(res, "supplier", "delete supplier")
}
