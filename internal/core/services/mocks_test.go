package services_test

import (
	"context"

	"github.com/shopledger/shopledger/internal/core/domain"
	portsrepo "github.com/shopledger/shopledger/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock TxManager ---
type MockTxManager struct {
	mock.Mock
}

var _ portsrepo.TxManager = (*MockTxManager)(nil)

func (m *MockTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context, repos portsrepo.RepositoryProvider) error) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}

// inlineTx runs the unit of work directly against a fixed set of repositories.
type inlineTx struct {
	repos portsrepo.RepositoryProvider
}

var _ portsrepo.TxManager = inlineTx{}

func (t inlineTx) WithinTx(ctx context.Context, fn func(ctx context.Context, repos portsrepo.RepositoryProvider) error) error {
	return fn(ctx, t.repos)
}

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

var _ portsrepo.ProductRepositoryFacade = (*MockProductRepository)(nil)

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindMatchingProduct(ctx context.Context, shop domain.ShopID, sku, name string) (*domain.Product, error) {
	args := m.Called(ctx, shop, sku, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context, shop domain.ShopID) ([]domain.Product, error) {
	args := m.Called(ctx, shop)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, productID string, update domain.ProductUpdate) error {
	args := m.Called(ctx, productID, update)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func (m *MockProductRepository) FindProductByIDForUpdate(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) AdjustProductStock(ctx context.Context, productID string, delta int64) error {
	args := m.Called(ctx, productID, delta)
	return args.Error(0)
}

func (m *MockProductRepository) ApplyProductPurchase(ctx context.Context, productID string, quantity int64, costPrice decimal.Decimal, supplierID, supplierName string) error {
	args := m.Called(ctx, productID, quantity, costPrice, supplierID, supplierName)
	return args.Error(0)
}
