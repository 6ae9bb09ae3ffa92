package services

import (
	"context"

	"github.com/shopledger/shopledger/internal/core/domain"
	"github.com/shopledger/shopledger/internal/dto"
)

// ProductReaderSvc defines read operations for products
type ProductReaderSvc interface {
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)
	// ListProducts lists products, optionally for one shop.
	ListProducts(ctx context.Context, shop domain.ShopID) ([]domain.Product, error)
}

// ProductWriterSvc defines write operations for products
type ProductWriterSvc interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error)
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
}

// ProductSvcFacade combines all product-related service interfaces
type ProductSvcFacade interface {
	ProductReaderSvc
	ProductWriterSvc
}

// CustomerReaderSvc defines read operations for customers
type CustomerReaderSvc interface {
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}

// CustomerWriterSvc defines write operations for customer profiles
type CustomerWriterSvc interface {
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, customerID string) error
}

// CustomerSvcFacade combines all customer-related service interfaces
type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerWriterSvc
}

// SupplierReaderSvc defines read operations for suppliers
type SupplierReaderSvc interface {
	GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
}

// SupplierWriterSvc defines write operations for supplier profiles
type SupplierWriterSvc interface {
	CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest) (*domain.Supplier, error)
	DeleteSupplier(ctx context.Context, supplierID string) error
}

// SupplierSvcFacade combines all supplier-related service interfaces
type SupplierSvcFacade interface {
	SupplierReaderSvc
	SupplierWriterSvc
}

// ExpenseSvcFacade defines operations for shop expenses
type ExpenseSvcFacade interface {
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error)
	ListExpenses(ctx context.Context, shop domain.ShopID) ([]domain.Expense, error)
	DeleteExpense(ctx context.Context, expenseID string) error
}
