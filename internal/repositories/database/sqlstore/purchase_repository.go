package sqlstore

import (
	"context"

	"github.com/shopledger/shopledger/internal/core/domain"
	portsrepo "github.com/shopledger/shopledger/internal/core/ports/repositories"
	"github.com/shopledger/shopledger/internal/models"
	"github.com/shopledger/shopledger/internal/utils/mapping"
)

const (
	purchaseColumns     = `id, supplier_id, supplier_name, total_amount, paid_amount, remaining_amount, created_at, shop_id, due_date`
	purchaseItemColumns = `id, purchase_id, position, product_id, product_name, quantity, cost_price, total`
)

type purchaseRepository struct {
	baseRepository
}

var _ portsrepo.PurchaseRepositoryFacade = (*purchaseRepository)(nil)

func scanPurchase(s rowScanner) (models.Purchase, error) {
	var m models.Purchase
	err := s.Scan(
		&m.PurchaseID,
		&m.SupplierID,
		&m.SupplierName,
		&m.TotalAmount,
		&m.PaidAmount,
		&m.RemainingAmount,
		&m.CreatedAt,
		&m.ShopID,
		&m.DueDate,
	)
	return m, err
}

func scanPurchaseItem(s rowScanner) (models.PurchaseItem, error) {
	var m models.PurchaseItem
	err := s.Scan(&m.PurchaseItemID, &m.PurchaseID, &m.Position, &m.ProductID, &m.ProductName, &m.Quantity, &m.CostPrice, &m.Total)
	return m, err
}

// SavePurchase inserts the purchase header.
func (r *purchaseRepository) SavePurchase(ctx context.Context, purchase domain.Purchase) error {
	m := mapping.ToModelPurchase(purchase)
	_, err := r.exec(ctx, `INSERT INTO purchases (`+purchaseColumns+`) VALUES (`+placeholders(9)+`)`,
		m.PurchaseID,
		m.SupplierID,
		m.SupplierName,
		m.TotalAmount,
		m.PaidAmount,
		m.RemainingAmount,
		m.CreatedAt,
		m.ShopID,
		m.DueDate,
	)
	return translateError(err, "purchase", "save purchase "+m.PurchaseID)
}

// SavePurchaseItem inserts one line of a purchase.
func (r *purchaseRepository) SavePurchaseItem(ctx context.Context, position int, item domain.PurchaseItem) error {
	m := mapping.ToModelPurchaseItem(item)
	m.Position = position
	_, err := r.exec(ctx, `INSERT INTO purchase_items (`+purchaseItemColumns+`) VALUES (`+placeholders(8)+`)`,
		m.PurchaseItemID, m.PurchaseID, m.Position, m.ProductID, m.ProductName, m.Quantity, m.CostPrice, m.Total)
	return translateError(err, "purchase item", "save purchase item")
}

// FindPurchaseByID retrieves a purchase and its items.
func (r *purchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	m, err := scanPurchase(r.queryRow(ctx, `SELECT `+purchaseColumns+` FROM purchases WHERE id = ?`, purchaseID))
	if err != nil {
		return nil, translateError(err, "purchase", "find purchase "+purchaseID)
	}
	items, err := r.itemsByPurchase(ctx, []string{m.PurchaseID})
	if err != nil {
		return nil, err
	}
	p := mapping.ToDomainPurchase(m, items[m.PurchaseID])
	return &p, nil
}

// ListPurchases lists purchases newest first with their items, optionally for one supplier.
func (r *purchaseRepository) ListPurchases(ctx context.Context, supplierID string) ([]domain.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases`
	args := []any{}
	if supplierID != "" {
		query += ` WHERE supplier_id = ?`
		args = append(args, supplierID)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "purchase", "list purchases")
	}
	var headers []models.Purchase
	for rows.Next() {
		m, err := scanPurchase(rows)
		if err != nil {
			rows.Close()
			return nil, translateError(err, "purchase", "scan purchase")
		}
		headers = append(headers, m)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, translateError(err, "purchase", "list purchases")
	}

	ids := make([]string, len(headers))
	for i, h := range headers {
		ids[i] = h.PurchaseID
	}
	items, err := r.itemsByPurchase(ctx, ids)
	if err != nil {
		return nil, err
	}

	purchases := make([]domain.Purchase, len(headers))
	for i, h := range headers {
		purchases[i] = mapping.ToDomainPurchase(h, items[h.PurchaseID])
	}
	return purchases, nil
}

func (r *purchaseRepository) itemsByPurchase(ctx context.Context, purchaseIDs []string) (map[string][]models.PurchaseItem, error) {
	grouped := make(map[string][]models.PurchaseItem, len(purchaseIDs))
	if len(purchaseIDs) == 0 {
		return grouped, nil
	}

	args := make([]any, len(purchaseIDs))
	for i, id := range purchaseIDs {
		args[i] = id
	}
	rows, err := r.query(ctx,
		`SELECT `+purchaseItemColumns+` FROM purchase_items WHERE purchase_id IN (`+placeholders(len(purchaseIDs))+`) ORDER BY purchase_id, position`,
		args...)
	if err != nil {
		return nil, translateError(err, "purchase item", "list purchase items")
	}
	defer rows.Close()

	for rows.Next() {
		m, err := scanPurchaseItem(rows)
		if err != nil {
			return nil, translateError(err, "purchase item", "scan purchase item")
		}
		grouped[m.PurchaseID] = append(grouped[m.PurchaseID], m)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "purchase item", "list purchase items")
	}
	return grouped, nil
}
