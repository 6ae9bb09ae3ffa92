package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopledger/shopledger/internal/apperrors"
	"github.com/shopledger/shopledger/internal/core/domain"
	portsrepo "github.com/shopledger/shopledger/internal/core/ports/repositories"
	"github.com/shopledger/shopledger/migrations"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *Store
	repos portsrepo.RepositoryProvider
	now   time.Time
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	store, err := Open(s.ctx, "sqlite3", ":memory:")
	s.Require().NoError(err)
	s.store = store
	s.repos = store.Provider()
	s.now = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
}

func (s *StoreTestSuite) TearDownTest() {
	s.NoError(s.store.Close())
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) newCustomer(name string) domain.Customer {
	c := domain.Customer{
		CustomerID:     uuid.NewString(),
		Name:           name,
		Balance:        decimal.Zero,
		TotalPurchased: decimal.Zero,
		TotalPaid:      decimal.Zero,
		CreatedAt:      s.now,
	}
	s.Require().NoError(s.repos.CustomerRepo.SaveCustomer(s.ctx, c))
	return c
}

func (s *StoreTestSuite) newProduct(name string, stock int64) domain.Product {
	p := domain.Product{
		ProductID:     uuid.NewString(),
		Name:          name,
		PurchasePrice: decimal.NewFromInt(2),
		SalePrice:     decimal.NewFromInt(5),
		Stock:         stock,
		ShopID:        domain.Shop1,
		SupplierID:    "s-1",
		SupplierName:  "Acme",
		CreatedAt:     s.now,
	}
	s.Require().NoError(s.repos.ProductRepo.SaveProduct(s.ctx, p))
	return p
}

func (s *StoreTestSuite) newSale(id string, createdAt time.Time, items int) domain.Sale {
	sale := domain.Sale{
		SaleID:           id,
		Type:             domain.SaleTypeSale,
		Total:            decimal.NewFromInt(10),
		CreatedAt:        createdAt,
		PaymentType:      domain.PaymentTypeFull,
		AmountPaid:       decimal.NewFromInt(10),
		RemainingBalance: decimal.Zero,
		ShopID:           domain.Shop1,
	}
	for i := 0; i < items; i++ {
		product := s.newProduct(fmt.Sprintf("Item %d", i), 10)
		sale.Items = append(sale.Items, domain.SaleItem{
			SaleItemID: uuid.NewString(),
			SaleID:     id,
			ProductID:  product.ProductID,
			Name:       fmt.Sprintf("Item %d", i),
			Quantity:   1,
			SalePrice:  decimal.NewFromInt(5),
			LineTotal:  decimal.NewFromInt(5),
		})
	}
	s.Require().NoError(s.repos.SaleRepo.SaveSale(s.ctx, sale))
	return sale
}

func (s *StoreTestSuite) count(table string) int {
	var n int
	s.Require().NoError(s.store.db.QueryRowContext(s.ctx, `SELECT COUNT(*) FROM `+table).Scan(&n))
	return n
}

func (s *StoreTestSuite) TestMaxNumericSaleID_EmptyTable() {
	maxID, err := s.repos.SaleRepo.MaxNumericSaleID(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(0), maxID)
	s.Equal("1", domain.FormatSaleID(maxID))
}

func (s *StoreTestSuite) TestMaxNumericSaleID_IgnoresNonNumericIDs() {
	for _, id := range []string{"2", "10", "9", "INV-99", "12a", "abc", ""} {
		s.newSale(id, s.now, 0)
	}

	maxID, err := s.repos.SaleRepo.MaxNumericSaleID(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(10), maxID, "only ids made of digits count, compared numerically")
}

func (s *StoreTestSuite) TestSaveSale_DuplicateIDIsConstraintError() {
	s.newSale("1", s.now, 0)

	err := s.repos.SaleRepo.SaveSale(s.ctx, domain.Sale{
		SaleID:      "1",
		Type:        domain.SaleTypeSale,
		CreatedAt:   s.now,
		PaymentType: domain.PaymentTypeFull,
		ShopID:      domain.Shop1,
	})
	s.Require().Error(err)
	s.True(errors.Is(err, apperrors.ErrConstraint))
}

func (s *StoreTestSuite) TestFindSaleByID_ReturnsItemsInOrder() {
	saved := s.newSale("7", s.now, 3)

	got, err := s.repos.SaleRepo.FindSaleByID(s.ctx, "7")
	s.Require().NoError(err)
	s.Require().Len(got.Items, 3)
	for i := range saved.Items {
		s.Equal(saved.Items[i].SaleItemID, got.Items[i].SaleItemID)
	}
	s.True(got.CreatedAt.Equal(s.now))
	s.True(got.Total.Equal(decimal.NewFromInt(10)))
}

func (s *StoreTestSuite) TestFindSaleByID_NotFound() {
	_, err := s.repos.SaleRepo.FindSaleByID(s.ctx, "404")
	s.True(errors.Is(err, apperrors.ErrNotFound))
}

func (s *StoreTestSuite) TestDeletingSaleCascadesToItems() {
	s.newSale("1", s.now, 2)
	s.Equal(2, s.count("sale_items"))

	_, err := s.store.db.ExecContext(s.ctx, `DELETE FROM sales WHERE id = '1'`)
	s.Require().NoError(err)
	s.Equal(0, s.count("sale_items"))
}

func (s *StoreTestSuite) TestDeletingSaleNullsPaymentSaleID() {
	c := s.newCustomer("Ana")
	s.newSale("1", s.now, 0)
	s.Require().NoError(s.repos.PaymentRepo.SavePayment(s.ctx, domain.Payment{
		PaymentID:  uuid.NewString(),
		CustomerID: c.CustomerID,
		SaleID:     "1",
		Amount:     decimal.NewFromInt(3),
		CreatedAt:  s.now,
	}))

	_, err := s.store.db.ExecContext(s.ctx, `DELETE FROM sales WHERE id = '1'`)
	s.Require().NoError(err)

	payments, err := s.repos.PaymentRepo.ListPayments(s.ctx, c.CustomerID)
	s.Require().NoError(err)
	s.Require().Len(payments, 1)
	s.Empty(payments[0].SaleID)
}

func (s *StoreTestSuite) TestDeleteCustomerWithPaymentsIsConstraintError() {
	c := s.newCustomer("Ana")
	s.Require().NoError(s.repos.PaymentRepo.SavePayment(s.ctx, domain.Payment{
		PaymentID:  uuid.NewString(),
		CustomerID: c.CustomerID,
		Amount:     decimal.NewFromInt(3),
		CreatedAt:  s.now,
	}))

	err := s.repos.CustomerRepo.DeleteCustomer(s.ctx, c.CustomerID)
	s.True(errors.Is(err, apperrors.ErrConstraint), "got %v", err)

	_, err = s.repos.CustomerRepo.FindCustomerByID(s.ctx, c.CustomerID)
	s.NoError(err)
}

func (s *StoreTestSuite) TestDeleteMissingRowsAreNotFound() {
	s.True(errors.Is(s.repos.CustomerRepo.DeleteCustomer(s.ctx, "nope"), apperrors.ErrNotFound))
	s.True(errors.Is(s.repos.ProductRepo.DeleteProduct(s.ctx, "nope"), apperrors.ErrNotFound))
	s.True(errors.Is(s.repos.ExpenseRepo.DeleteExpense(s.ctx, "nope"), apperrors.ErrNotFound))
	s.True(errors.Is(s.repos.ProductRepo.AdjustProductStock(s.ctx, "nope", 1), apperrors.ErrNotFound))
}

func (s *StoreTestSuite) TestDecimalAmountsRoundTripExactly() {
	c := s.newCustomer("Ana")
	c.Balance = decimal.RequireFromString("1234.56")
	c.TotalPurchased = decimal.RequireFromString("0.1")
	c.TotalPaid = decimal.RequireFromString("0.2")
	s.Require().NoError(s.repos.CustomerRepo.UpdateCustomerBalances(s.ctx, c))

	got, err := s.repos.CustomerRepo.FindCustomerByID(s.ctx, c.CustomerID)
	s.Require().NoError(err)
	s.Equal("1234.56", got.Balance.String())
	s.True(got.TotalPurchased.Add(got.TotalPaid).Equal(decimal.RequireFromString("0.3")))

	c.Balance = decimal.RequireFromString("0.125")
	s.Require().NoError(s.repos.CustomerRepo.UpdateCustomerBalances(s.ctx, c))
	got, err = s.repos.CustomerRepo.FindCustomerByID(s.ctx, c.CustomerID)
	s.Require().NoError(err)
	s.Equal("0.125", got.Balance.String())
}

func TestPostgresMoneyColumnsKeepEveryDigit(t *testing.T) {
	schema, err := fs.ReadFile(migrations.FS, "postgres/000001_init_schema.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(schema), "NUMERIC")
	assert.NotRegexp(t, `NUMERIC\s*\(`, string(schema))
}

func (s *StoreTestSuite) TestSaleReferencesAreEnforced() {
	c := s.newCustomer("Ana")
	sale := s.newSale("1", s.now, 1)
	_, err := s.store.db.ExecContext(s.ctx, `UPDATE sales SET customer_id = ? WHERE id = '1'`, c.CustomerID)
	s.Require().NoError(err)

	err = s.repos.CustomerRepo.DeleteCustomer(s.ctx, c.CustomerID)
	s.True(errors.Is(err, apperrors.ErrConstraint), "got %v", err)

	err = s.repos.ProductRepo.DeleteProduct(s.ctx, sale.Items[0].ProductID)
	s.True(errors.Is(err, apperrors.ErrConstraint), "got %v", err)

	err = s.repos.SaleRepo.SaveSale(s.ctx, domain.Sale{
		SaleID:      "2",
		Type:        domain.SaleTypeSale,
		CreatedAt:   s.now,
		PaymentType: domain.PaymentTypeFull,
		ShopID:      domain.Shop1,
		Customer:    domain.CustomerSnapshot{CustomerID: "ghost"},
	})
	s.True(errors.Is(err, apperrors.ErrConstraint), "got %v", err)
}

func (s *StoreTestSuite) TestUpdateProduct_WritesOnlyProvidedColumns() {
	p := s.newProduct("Soap", 20)
	s.Require().NoError(s.repos.ProductRepo.AdjustProductStock(s.ctx, p.ProductID, -5))

	name := "Soap Bar"
	s.Require().NoError(s.repos.ProductRepo.UpdateProduct(s.ctx, p.ProductID, domain.ProductUpdate{Name: &name}))

	got, err := s.repos.ProductRepo.FindProductByID(s.ctx, p.ProductID)
	s.Require().NoError(err)
	s.Equal("Soap Bar", got.Name)
	s.Equal(int64(15), got.Stock)
	s.True(got.PurchasePrice.Equal(decimal.NewFromInt(2)))
	s.Equal("s-1", got.SupplierID)
	s.Equal("Acme", got.SupplierName)

	stock := int64(0)
	sku := ""
	s.Require().NoError(s.repos.ProductRepo.UpdateProduct(s.ctx, p.ProductID, domain.ProductUpdate{Stock: &stock, SKU: &sku}))
	got, err = s.repos.ProductRepo.FindProductByID(s.ctx, p.ProductID)
	s.Require().NoError(err)
	s.Equal(int64(0), got.Stock)
	s.Empty(got.SKU)
	s.Equal("Soap Bar", got.Name)
}

func (s *StoreTestSuite) TestUpdateProduct_MissingRowIsNotFound() {
	name := "x"
	s.True(errors.Is(s.repos.ProductRepo.UpdateProduct(s.ctx, "nope", domain.ProductUpdate{Name: &name}), apperrors.ErrNotFound))
	s.True(errors.Is(s.repos.ProductRepo.UpdateProduct(s.ctx, "nope", domain.ProductUpdate{}), apperrors.ErrNotFound))
}

func (s *StoreTestSuite) TestUpdateSupplier_KeepsNextPaymentDateUnlessSet() {
	due := time.Date(2026, 11, 30, 0, 0, 0, 0, time.UTC)
	sup := domain.Supplier{SupplierID: uuid.NewString(), Name: "Acme", CreatedAt: s.now, NextPaymentDate: &due}
	s.Require().NoError(s.repos.SupplierRepo.SaveSupplier(s.ctx, sup))

	notes := "ships Mondays"
	s.Require().NoError(s.repos.SupplierRepo.UpdateSupplier(s.ctx, sup.SupplierID, domain.SupplierUpdate{Notes: &notes}))
	got, err := s.repos.SupplierRepo.FindSupplierByID(s.ctx, sup.SupplierID)
	s.Require().NoError(err)
	s.Equal(notes, got.Notes)
	s.Equal("Acme", got.Name)
	s.Require().NotNil(got.NextPaymentDate)
	s.True(due.Equal(*got.NextPaymentDate))

	later := due.AddDate(0, 1, 0)
	s.Require().NoError(s.repos.SupplierRepo.UpdateSupplier(s.ctx, sup.SupplierID, domain.SupplierUpdate{NextPaymentDate: &later}))
	got, err = s.repos.SupplierRepo.FindSupplierByID(s.ctx, sup.SupplierID)
	s.Require().NoError(err)
	s.Require().NotNil(got.NextPaymentDate)
	s.True(later.Equal(*got.NextPaymentDate))
	s.Equal(notes, got.Notes)
}

func (s *StoreTestSuite) TestFindMatchingProduct() {
	base := domain.Product{
		Name:      "Cotton Shirt",
		SalePrice: decimal.NewFromInt(20),
		CreatedAt: s.now,
	}
	withSKU := base
	withSKU.ProductID = uuid.NewString()
	withSKU.SKU = "SKU-1"
	withSKU.ShopID = domain.Shop2
	s.Require().NoError(s.repos.ProductRepo.SaveProduct(s.ctx, withSKU))

	noSKU := base
	noSKU.ProductID = uuid.NewString()
	noSKU.Name = "Loose Socks"
	noSKU.ShopID = domain.Shop2
	s.Require().NoError(s.repos.ProductRepo.SaveProduct(s.ctx, noSKU))

	got, err := s.repos.ProductRepo.FindMatchingProduct(s.ctx, domain.Shop2, "SKU-1", "whatever")
	s.Require().NoError(err)
	s.Equal(withSKU.ProductID, got.ProductID)

	got, err = s.repos.ProductRepo.FindMatchingProduct(s.ctx, domain.Shop2, "", "Loose Socks")
	s.Require().NoError(err)
	s.Equal(noSKU.ProductID, got.ProductID)

	_, err = s.repos.ProductRepo.FindMatchingProduct(s.ctx, domain.Shop1, "SKU-1", "")
	s.True(errors.Is(err, apperrors.ErrNotFound))
}

func (s *StoreTestSuite) TestDeletingProductNullsPurchaseItemProduct() {
	supplier := domain.Supplier{SupplierID: uuid.NewString(), Name: "Acme", CreatedAt: s.now}
	s.Require().NoError(s.repos.SupplierRepo.SaveSupplier(s.ctx, supplier))
	product := domain.Product{ProductID: uuid.NewString(), Name: "Bolt", ShopID: domain.Shop1, CreatedAt: s.now}
	s.Require().NoError(s.repos.ProductRepo.SaveProduct(s.ctx, product))

	purchase := domain.Purchase{PurchaseID: uuid.NewString(), SupplierID: supplier.SupplierID, ShopID: domain.Shop1, CreatedAt: s.now}
	s.Require().NoError(s.repos.PurchaseRepo.SavePurchase(s.ctx, purchase))
	s.Require().NoError(s.repos.PurchaseRepo.SavePurchaseItem(s.ctx, 0, domain.PurchaseItem{
		PurchaseItemID: uuid.NewString(),
		PurchaseID:     purchase.PurchaseID,
		ProductID:      product.ProductID,
		ProductName:    "Bolt",
		Quantity:       4,
	}))

	s.Require().NoError(s.repos.ProductRepo.DeleteProduct(s.ctx, product.ProductID))

	got, err := s.repos.PurchaseRepo.FindPurchaseByID(s.ctx, purchase.PurchaseID)
	s.Require().NoError(err)
	s.Require().Len(got.Items, 1)
	s.Empty(got.Items[0].ProductID)
	s.Equal("Bolt", got.Items[0].ProductName)
}

func (s *StoreTestSuite) TestListSales_PaginatesNewestFirst() {
	for i := 1; i <= 5; i++ {
		s.newSale(fmt.Sprint(i), s.now.Add(time.Duration(i)*time.Minute), 1)
	}

	page, err := s.repos.SaleRepo.ListSales(s.ctx, domain.SaleFilter{Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(page.Sales, 2)
	s.Equal("5", page.Sales[0].SaleID)
	s.Equal("4", page.Sales[1].SaleID)
	s.Len(page.Sales[0].Items, 1)
	s.Require().NotEmpty(page.NextToken)

	page, err = s.repos.SaleRepo.ListSales(s.ctx, domain.SaleFilter{Limit: 2, NextToken: page.NextToken})
	s.Require().NoError(err)
	s.Require().Len(page.Sales, 2)
	s.Equal("3", page.Sales[0].SaleID)
	s.Equal("2", page.Sales[1].SaleID)

	page, err = s.repos.SaleRepo.ListSales(s.ctx, domain.SaleFilter{Limit: 2, NextToken: page.NextToken})
	s.Require().NoError(err)
	s.Require().Len(page.Sales, 1)
	s.Equal("1", page.Sales[0].SaleID)
	s.Empty(page.NextToken)
}

func (s *StoreTestSuite) TestListSales_InvalidTokenIsValidationError() {
	_, err := s.repos.SaleRepo.ListSales(s.ctx, domain.SaleFilter{NextToken: "%%%"})
	s.True(errors.Is(err, apperrors.ErrValidation))
}

func (s *StoreTestSuite) TestWithinTx_RollsBackOnError() {
	boom := errors.New("boom")
	var id string

	err := s.store.WithinTx(s.ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		id = uuid.NewString()
		if err := repos.CustomerRepo.SaveCustomer(ctx, domain.Customer{CustomerID: id, Name: "Ghost", CreatedAt: s.now}); err != nil {
			return err
		}
		return boom
	})
	s.ErrorIs(err, boom)

	_, err = s.repos.CustomerRepo.FindCustomerByID(s.ctx, id)
	s.True(errors.Is(err, apperrors.ErrNotFound))
}

func (s *StoreTestSuite) TestWithinTx_RollsBackOnPanic() {
	id := uuid.NewString()

	s.Panics(func() {
		_ = s.store.WithinTx(s.ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
			s.Require().NoError(repos.CustomerRepo.SaveCustomer(ctx, domain.Customer{CustomerID: id, Name: "Ghost", CreatedAt: s.now}))
			panic("kaboom")
		})
	})

	_, err := s.repos.CustomerRepo.FindCustomerByID(s.ctx, id)
	s.True(errors.Is(err, apperrors.ErrNotFound))

	// The store is usable after the panic.
	s.NoError(s.store.WithinTx(s.ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		return nil
	}))
}

func (s *StoreTestSuite) TestWithinTx_CancelledContextNeverBegins() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	called := false
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		called = true
		return nil
	})
	s.ErrorIs(err, context.Canceled)
	s.False(called)
}

func (s *StoreTestSuite) TestDeleteAll_EmptiesEveryTable() {
	c := s.newCustomer("Ana")
	s.newSale("1", s.now, 2)
	s.Require().NoError(s.repos.PaymentRepo.SavePayment(s.ctx, domain.Payment{
		PaymentID: uuid.NewString(), CustomerID: c.CustomerID, SaleID: "1", Amount: decimal.NewFromInt(1), CreatedAt: s.now,
	}))
	s.Require().NoError(s.repos.ExpenseRepo.SaveExpense(s.ctx, domain.Expense{
		ExpenseID: uuid.NewString(), Description: "Rent", Amount: decimal.NewFromInt(100), ShopID: domain.Shop1, CreatedAt: s.now,
	}))

	err := s.store.WithinTx(s.ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		return repos.ResetRepo.DeleteAll(ctx)
	})
	s.Require().NoError(err)

	for _, table := range resetOrder {
		s.Equal(0, s.count(table), table)
	}
}

func TestRebind(t *testing.T) {
	q := `SELECT a FROM t WHERE x = ? AND y IN (` + placeholders(3) + `)`

	assert.Equal(t, q, sqliteDialect.rebind(q))
	assert.Equal(t, `SELECT a FROM t WHERE x = $1 AND y IN ($2, $3, $4)`, postgresDialect.rebind(q))
	assert.Equal(t, "", placeholders(0))
}

func TestDialectFor(t *testing.T) {
	d, err := dialectFor("pgx")
	require.NoError(t, err)
	assert.Equal(t, " FOR UPDATE", d.forUpdate())
	assert.Contains(t, d.maxNumericSaleIDQuery(), "~ '^[0-9]+$'")

	d, err = dialectFor("sqlite3")
	require.NoError(t, err)
	assert.Equal(t, "", d.forUpdate())
	assert.Contains(t, d.maxNumericSaleIDQuery(), "NOT GLOB")

	_, err = dialectFor("mysql")
	assert.Error(t, err)
}
