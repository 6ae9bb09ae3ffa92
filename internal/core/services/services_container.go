package services

import (
	portsrepo "github.com/shopledger/shopledger/internal/core/ports/repositories"
	portssvc "github.com/shopledger/shopledger/internal/core/ports/services"
	"github.com/shopledger/shopledger/internal/metrics"
	"github.com/shopledger/shopledger/internal/platform/config"
)

// Store is what the container needs from the storage layer.
type Store interface {
	portsrepo.TxManager
	portssvc.HealthChecker
	Provider() portsrepo.RepositoryProvider
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, store Store, ledgerMetrics *metrics.LedgerMetrics) *portssvc.ServiceContainer {
	repos := store.Provider()
	engineOptions := []EngineOption{
		WithMetrics(ledgerMetrics),
		WithNegativeStock(cfg.AllowNegativeStock),
	}

	return &portssvc.ServiceContainer{
		Ledger:   NewLedgerService(store, repos, engineOptions...),
		Transfer: NewTransferService(store, engineOptions...),
		Product:  NewProductService(store, repos.ProductRepo),
		Customer: NewCustomerService(repos.CustomerRepo),
		Supplier: NewSupplierService(store, repos.SupplierRepo),
		Expense:  NewExpenseService(repos.ExpenseRepo),
		Health:   store,
	}
}
