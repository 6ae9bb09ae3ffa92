package sqlstore

import (
	"context"
	"fmt"

	"github.com/shopledger/shopledger/internal/core/domain"
	portsrepo "github.com/shopledger/shopledger/internal/core/ports/repositories"
	"github.com/shopledger/shopledger/internal/models"
	"github.com/shopledger/shopledger/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

const productColumns = `id, name, sku, purchase_price, sale_price, stock, category, shop_id, supplier_id, supplier_name, size, unit, created_at`

type productRepository struct {
	baseRepository
}

var _ portsrepo.ProductRepositoryFacade = (*productRepository)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(s rowScanner) (models.Product, error) {
	var m models.Product
	err := s.Scan(
		&m.ProductID,
		&m.Name,
		&m.SKU,
		&m.PurchasePrice,
		&m.SalePrice,
		&m.Stock,
		&m.Category,
		&m.ShopID,
		&m.SupplierID,
		&m.SupplierName,
		&m.Size,
		&m.Unit,
		&m.CreatedAt,
	)
	return m, err
}

func (r *productRepository) findOne(ctx context.Context, query string, args ...any) (*domain.Product, error) {
	m, err := scanProduct(r.queryRow(ctx, query, args...))
	if err != nil {
		return nil, translateError(err, "product", "find product")
	}
	p := mapping.ToDomainProduct(m)
	return &p, nil
}

// FindProductByID retrieves a product by its ID.
func (r *productRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	return r.findOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = ?`, productID)
}

// FindProductByIDForUpdate retrieves a product and locks its row on PostgreSQL.
func (r *productRepository) FindProductByIDForUpdate(ctx context.Context, productID string) (*domain.Product, error) {
	return r.findOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = ?`+r.d.forUpdate(), productID)
}

// FindMatchingProduct finds the oldest product in shop with the given sku, or with the given
// name when sku is empty.
func (r *productRepository) FindMatchingProduct(ctx context.Context, shop domain.ShopID, sku, name string) (*domain.Product, error) {
	column, value := "sku", sku
	if sku == "" {
		column, value = "name", name
	}
	query := fmt.Sprintf(`SELECT %s FROM products WHERE shop_id = ? AND %s = ? ORDER BY created_at, id LIMIT 1`, productColumns, column)
	return r.findOne(ctx, query+r.d.forUpdate(), string(shop), value)
}

// ListProducts lists products ordered by name. An empty shop lists both shops.
func (r *productRepository) ListProducts(ctx context.Context, shop domain.ShopID) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	args := []any{}
	if shop != "" {
		query += ` WHERE shop_id = ?`
		args = append(args, string(shop))
	}
	query += ` ORDER BY name, id`

	rows, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "product", "list products")
	}
	defer rows.Close()

	var ms []models.Product
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, translateError(err, "product", "scan product")
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "product", "list products")
	}
	return mapping.ToDomainProductSlice(ms), nil
}

// SaveProduct inserts a new product.
func (r *productRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	_, err := r.exec(ctx, `INSERT INTO products (`+productColumns+`) VALUES (`+placeholders(13)+`)`,
		m.ProductID,
		m.Name,
		m.SKU,
		m.PurchasePrice,
		m.SalePrice,
		m.Stock,
		m.Category,
		m.ShopID,
		m.SupplierID,
		m.SupplierName,
		m.Size,
		m.Unit,
		m.CreatedAt,
	)
	return translateError(err, "product", "save product "+m.ProductID)
}

// UpdateProduct writes only the columns set in update.
func (r *productRepository) UpdateProduct(ctx context.Context, productID string, update domain.ProductUpdate) error {
	var p domain.Product
	update.ApplyTo(&p)
	m := mapping.ToModelProduct(p)

	var set assignments
	set.addIf(update.Name != nil, "name", m.Name)
	set.addIf(update.SKU != nil, "sku", m.SKU)
	set.addIf(update.PurchasePrice != nil, "purchase_price", m.PurchasePrice)
	set.addIf(update.SalePrice != nil, "sale_price", m.SalePrice)
	set.addIf(update.Stock != nil, "stock", m.Stock)
	set.addIf(update.Category != nil, "category", m.Category)
	set.addIf(update.ShopID != nil, "shop_id", m.ShopID)
	set.addIf(update.SupplierID != nil, "supplier_id", m.SupplierID)
	set.addIf(update.SupplierName != nil, "supplier_name", m.SupplierName)
	set.addIf(update.Size != nil, "size", m.Size)
	set.addIf(update.Unit != nil, "unit", m.Unit)

	query, args := set.update("products", productID)
	res, err := r.exec(ctx, query, args...)
	if err != nil {
		return translateError(err, "product", "update product "+productID)
	}
	return expectAffected(res, "product", "update product")
}

// DeleteProduct removes a product. Purchase lines keep their snapshot with a NULL product id.
// Products referenced by sale lines cannot be deleted.
func (r *productRepository) DeleteProduct(ctx context.Context, productID string) error {
	res, err := r.exec(ctx, `DELETE FROM products WHERE id = ?`, productID)
	if err != nil {
		return translateError(err, "product", "delete product "+productID)
	}
	return expectAffected(res, "product", "delete product")
}

// AdjustProductStock adds delta to the stock column in place.
func (r *productRepository) AdjustProductStock(ctx context.Context, productID string, delta int64) error {
	res, err := r.exec(ctx, `UPDATE products SET stock = stock + ? WHERE id = ?`, delta, productID)
	if err != nil {
		return translateError(err, "product", "adjust stock of product "+productID)
	}
	return expectAffected(res, "product", "adjust stock")
}

// ApplyProductPurchase receives purchased stock and records the latest cost and supplier.
func (r *productRepository) ApplyProductPurchase(ctx context.Context, productID string, quantity int64, costPrice decimal.Decimal, supplierID, supplierName string) error {
	res, err := r.exec(ctx, `
		UPDATE products
		SET stock = stock + ?, purchase_price = ?, supplier_id = ?, supplier_name = ?
		WHERE id = ?`,
		quantity, costPrice, supplierID, supplierName, productID)
	if err != nil {
		return translateError(err, "product", "apply purchase to product "+productID)
	}
	return expectAffected(res, "product", "apply purchase")
}
