package sqlstore

import (
	"context"
	"strings"

	"github.com/shopledger/shopledger/internal/apperrors"
	"github.com/shopledger/shopledger/internal/core/domain"
	portsrepo "github.com/shopledger/shopledger/internal/core/ports/repositories"
	"github.com/shopledger/shopledger/internal/models"
	"github.com/shopledger/shopledger/internal/utils/mapping"
	"github.com/shopledger/shopledger/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

const (
	saleColumns     = `id, type, total, created_at, customer_id, customer_name, customer_phone, customer_address, payment_type, amount_paid, remaining_balance, due_date, shop_id`
	saleItemColumns = `id, sale_id, position, product_id, name, sku, quantity, sale_price, unit, size, line_total`
)

type saleRepository struct {
	baseRepository
}

var _ portsrepo.SaleRepositoryFacade = (*saleRepository)(nil)

func scanSale(s rowScanner) (models.Sale, error) {
	var m models.Sale
	err := s.Scan(
		&m.SaleID,
		&m.Type,
		&m.Total,
		&m.CreatedAt,
		&m.CustomerID,
		&m.CustomerName,
		&m.CustomerPhone,
		&m.CustomerAddress,
		&m.PaymentType,
		&m.AmountPaid,
		&m.RemainingBalance,
		&m.DueDate,
		&m.ShopID,
	)
	return m, err
}

func scanSaleItem(s rowScanner) (models.SaleItem, error) {
	var m models.SaleItem
	err := s.Scan(
		&m.SaleItemID,
		&m.SaleID,
		&m.Position,
		&m.ProductID,
		&m.Name,
		&m.SKU,
		&m.Quantity,
		&m.SalePrice,
		&m.Unit,
		&m.Size,
		&m.LineTotal,
	)
	return m, err
}

// MaxNumericSaleID returns the highest purely numeric sale id, ignoring anything else.
func (r *saleRepository) MaxNumericSaleID(ctx context.Context) (int64, error) {
	var maxID int64
	if err := r.queryRow(ctx, r.d.maxNumericSaleIDQuery()).Scan(&maxID); err != nil {
		return 0, translateError(err, "sale", "read sale sequence")
	}
	return maxID, nil
}

// SaveSale inserts the header and all items of a sale.
func (r *saleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	m := mapping.ToModelSale(sale)
	_, err := r.exec(ctx, `INSERT INTO sales (`+saleColumns+`) VALUES (`+placeholders(13)+`)`,
		m.SaleID,
		m.Type,
		m.Total,
		m.CreatedAt,
		m.CustomerID,
		m.CustomerName,
		m.CustomerPhone,
		m.CustomerAddress,
		m.PaymentType,
		m.AmountPaid,
		m.RemainingBalance,
		m.DueDate,
		m.ShopID,
	)
	if err != nil {
		return translateError(err, "sale", "save sale "+m.SaleID)
	}

	for i, item := range sale.Items {
		im := mapping.ToModelSaleItem(item)
		im.Position = i
		_, err := r.exec(ctx, `INSERT INTO sale_items (`+saleItemColumns+`) VALUES (`+placeholders(11)+`)`,
			im.SaleItemID,
			im.SaleID,
			im.Position,
			im.ProductID,
			im.Name,
			im.SKU,
			im.Quantity,
			im.SalePrice,
			im.Unit,
			im.Size,
			im.LineTotal,
		)
		if err != nil {
			return &apperrors.ItemError{Index: i, ProductID: item.ProductID, Err: translateError(err, "sale item", "save sale item")}
		}
	}
	return nil
}

// UpdateSalePayment records a payment allocation against a sale.
func (r *saleRepository) UpdateSalePayment(ctx context.Context, saleID string, amountPaid, remaining decimal.Decimal, paymentType domain.PaymentType) error {
	res, err := r.exec(ctx, `UPDATE sales SET amount_paid = ?, remaining_balance = ?, payment_type = ? WHERE id = ?`,
		amountPaid, remaining, string(paymentType), saleID)
	if err != nil {
		return translateError(err, "sale", "update payment of sale "+saleID)
	}
	return expectAffected(res, "sale", "update sale payment")
}

func (r *saleRepository) findOne(ctx context.Context, query string, saleID string) (*domain.Sale, error) {
	m, err := scanSale(r.queryRow(ctx, query, saleID))
	if err != nil {
		return nil, translateError(err, "sale", "find sale "+saleID)
	}
	items, err := r.itemsBySale(ctx, []string{m.SaleID})
	if err != nil {
		return nil, err
	}
	s := mapping.ToDomainSale(m, items[m.SaleID])
	return &s, nil
}

// FindSaleByID retrieves a sale and its items.
func (r *saleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	return r.findOne(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = ?`, saleID)
}

func (r *saleRepository) FindSaleByIDForUpdate(ctx context.Context, saleID string) (*domain.Sale, error) {
	return r.findOne(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = ?`+r.d.forUpdate(), saleID)
}

// ListSales returns one page of sales, newest first, using a (created_at, id) cursor.
// Items for the whole page are loaded with a single second query.
func (r *saleRepository) ListSales(ctx context.Context, filter domain.SaleFilter) (*domain.SalePage, error) {
	limit := filter.NormalizedLimit()

	var (
		conds []string
		args  []any
	)
	if filter.CustomerID != "" {
		conds = append(conds, "customer_id = ?")
		args = append(args, filter.CustomerID)
	}
	if filter.ShopID != "" {
		conds = append(conds, "shop_id = ?")
		args = append(args, string(filter.ShopID))
	}
	if filter.NextToken != "" {
		createdAt, lastID, err := pagination.DecodeToken(filter.NextToken)
		if err != nil {
			return nil, apperrors.NewAppError(apperrors.ErrValidation, "invalid nextToken", err)
		}
		conds = append(conds, "(created_at < ? OR (created_at = ? AND id < ?))")
		args = append(args, createdAt, createdAt, lastID)
	}

	query := `SELECT ` + saleColumns + ` FROM sales`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, limit+1)

	rows, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "sale", "list sales")
	}
	var headers []models.Sale
	for rows.Next() {
		m, err := scanSale(rows)
		if err != nil {
			rows.Close()
			return nil, translateError(err, "sale", "scan sale")
		}
		headers = append(headers, m)
	}
	// Close before the item query; SQLite runs on a single connection.
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, translateError(err, "sale", "list sales")
	}

	page := &domain.SalePage{Sales: []domain.Sale{}}
	if len(headers) > limit {
		headers = headers[:limit]
		last := headers[len(headers)-1]
		page.NextToken = pagination.EncodeToken(last.CreatedAt, last.SaleID)
	}

	ids := make([]string, len(headers))
	for i, h := range headers {
		ids[i] = h.SaleID
	}
	items, err := r.itemsBySale(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, h := range headers {
		page.Sales = append(page.Sales, mapping.ToDomainSale(h, items[h.SaleID]))
	}
	return page, nil
}

// itemsBySale loads the items of every listed sale and groups them by sale id.
func (r *saleRepository) itemsBySale(ctx context.Context, saleIDs []string) (map[string][]models.SaleItem, error) {
	grouped := make(map[string][]models.SaleItem, len(saleIDs))
	if len(saleIDs) == 0 {
		return grouped, nil
	}

	args := make([]any, len(saleIDs))
	for i, id := range saleIDs {
		args[i] = id
	}
	rows, err := r.query(ctx,
		`SELECT `+saleItemColumns+` FROM sale_items WHERE sale_id IN (`+placeholders(len(saleIDs))+`) ORDER BY sale_id, position`,
		args...)
	if err != nil {
		return nil, translateError(err, "sale item", "list sale items")
	}
	defer rows.Close()

	for rows.Next() {
		m, err := scanSaleItem(rows)
		if err != nil {
			return nil, translateError(err, "sale item", "scan sale item")
		}
		grouped[m.SaleID] = append(grouped[m.SaleID], m)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "sale item", "list sale items")
	}
	return grouped, nil
}
