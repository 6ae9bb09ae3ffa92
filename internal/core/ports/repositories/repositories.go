package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// The same shape is used for plain reads and for the transaction-bound set passed by TxManager.
type RepositoryProvider struct {
	ProductRepo         ProductRepositoryFacade
	CustomerRepo        CustomerRepositoryFacade
	SaleRepo            SaleRepositoryFacade
	PaymentRepo         PaymentRepositoryFacade
	SupplierRepo        SupplierRepositoryFacade
	PurchaseRepo        PurchaseRepositoryFacade
	SupplierPaymentRepo SupplierPaymentRepositoryFacade
	ExpenseRepo         ExpenseRepositoryFacade
	ResetRepo           ResetRepository
}
