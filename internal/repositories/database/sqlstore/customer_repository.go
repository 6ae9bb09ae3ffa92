package sqlstore

import (
	"context"

	"github.com/shopledger/shopledger/internal/core/domain"
	portsrepo "github.com/shopledger/shopledger/internal/core/ports/repositories"
	"github.com/shopledger/shopledger/internal/models"
	"github.com/shopledger/shopledger/internal/utils/mapping"
)

const customerColumns = `id, name, phone, address, balance, total_purchased, total_paid, created_at`

type customerRepository struct {
	baseRepository
}

var _ portsrepo.CustomerRepositoryFacade = (*customerRepository)(nil)

func scanCustomer(s rowScanner) (models.Customer, error) {
	var m models.Customer
	err := s.Scan(&m.CustomerID, &m.Name, &m.Phone, &m.Address, &m.Balance, &m.TotalPurchased, &m.TotalPaid, &m.CreatedAt)
	return m, err
}

func (r *customerRepository) findOne(ctx context.Context, query string, args ...any) (*domain.Customer, error) {
	m, err := scanCustomer(r.queryRow(ctx, query, args...))
	if err != nil {
		return nil, translateError(err, "customer", "find customer")
	}
	c := mapping.ToDomainCustomer(m)
	return &c, nil
}

func (r *customerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	return r.findOne(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = ?`, customerID)
}

func (r *customerRepository) FindCustomerByIDForUpdate(ctx context.Context, customerID string) (*domain.Customer, error) {
	return r.findOne(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = ?`+r.d.forUpdate(), customerID)
}

// ListCustomers lists all customers ordered by name.
func (r *customerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.query(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY name, id`)
	if err != nil {
		return nil, translateError(err, "customer", "list customers")
	}
	defer rows.Close()

	var ms []models.Customer
	for rows.Next() {
		m, err := scanCustomer(rows)
		if err != nil {
			return nil, translateError(err, "customer", "scan customer")
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "customer", "list customers")
	}
	return mapping.ToDomainCustomerSlice(ms), nil
}

func (r *customerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	_, err := r.exec(ctx, `INSERT INTO customers (`+customerColumns+`) VALUES (`+placeholders(8)+`)`,
		m.CustomerID, m.Name, m.Phone, m.Address, m.Balance, m.TotalPurchased, m.TotalPaid, m.CreatedAt)
	return translateError(err, "customer", "save customer "+m.CustomerID)
}

func (r *customerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	res, err := r.exec(ctx, `UPDATE customers SET name = ?, phone = ?, address = ? WHERE id = ?`,
		customer.Name, customer.Phone, customer.Address, customer.CustomerID)
	if err != nil {
		return translateError(err, "customer", "update customer "+customer.CustomerID)
	}
	return expectAffected(res, "customer", "update customer")
}

func (r *customerRepository) UpdateCustomerBalances(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	res, err := r.exec(ctx, `UPDATE customers SET balance = ?, total_purchased = ?, total_paid = ? WHERE id = ?`,
		m.Balance, m.TotalPurchased, m.TotalPaid, m.CustomerID)
	if err != nil {
		return translateError(err, "customer", "update balances of customer "+m.CustomerID)
	}
	return expectAffected(res, "customer", "update customer balances")
}

// DeleteCustomer fails with a constraint error while payments still reference the customer.
func (r *customerRepository) DeleteCustomer(ctx context.Context, customerID string) error {
	res, err := r.exec(ctx, `DELETE FROM customers WHERE id = ?`, customerID)
	if err != nil {
		return translateError(err, "customer", "delete customer "+customerID)
	}
	return expectAffected(res, "customer", "delete customer")
}
