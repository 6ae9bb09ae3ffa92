package services

import "context"

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Ledger   LedgerSvcFacade
	Transfer TransferSvc
	Product  ProductSvcFacade
	Customer CustomerSvcFacade
	Supplier SupplierSvcFacade
	Expense  ExpenseSvcFacade
	Health   HealthChecker
}

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
