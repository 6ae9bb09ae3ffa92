package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopledger/shopledger/internal/apperrors"
	"github.com/shopledger/shopledger/internal/core/domain"
	portsrepo "github.com/shopledger/shopledger/internal/core/ports/repositories"
	portssvc "github.com/shopledger/shopledger/internal/core/ports/services"
	"github.com/shopledger/shopledger/internal/dto"
	"github.com/shopspring/decimal"
)

// ledgerService runs the operations that move stock, balances and payment allocations.
// Every write runs inside exactly one TxManager.WithinTx call.
type ledgerService struct {
	BaseService
	engineConfig
	txm   portsrepo.TxManager
	repos portsrepo.RepositoryProvider
}

// NewLedgerService creates a new ledger service. repos serves reads outside transactions.
func NewLedgerService(txm portsrepo.TxManager, repos portsrepo.RepositoryProvider, options ...EngineOption) portssvc.LedgerSvcFacade {
	return &ledgerService{
		engineConfig: newEngineConfig(options),
		txm:          txm,
		repos:        repos,
	}
}

// Ensure ledgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// validateSaleItems checks the per-line rules of a sale. A missing product id is fatal;
// a missing name or non-positive quantity only produces a warning.
func validateSaleItems(items []dto.SaleItemRequest) ([]domain.Warning, error) {
	var warnings []domain.Warning
	for i, item := range items {
		if item.ProductID == "" {
			return nil, &apperrors.ItemError{Index: i, Err: apperrors.NewValidationError("productId is required")}
		}
		if item.Name == "" {
			warnings = append(warnings, domain.Warning{Index: i, Field: "name", Message: "is missing"})
		}
		if item.Quantity <= 0 {
			warnings = append(warnings, domain.Warning{Index: i, Field: "quantity", Message: "is not positive"})
		}
	}
	return warnings, nil
}

// buildSale turns a validated request into an unsaved sale without an id.
func (s *ledgerService) buildSale(req dto.RecordSaleRequest) domain.Sale {
	details := req.CustomerDetails
	saleType := req.Type
	if saleType == "" {
		saleType = domain.SaleTypeSale
	}
	remaining := req.Total.Sub(details.AmountPaid)
	if details.RemainingBalance != nil {
		remaining = *details.RemainingBalance
	}
	paymentType := details.PaymentType
	if paymentType == "" {
		paymentType = domain.DerivePaymentType(details.AmountPaid, remaining)
	}

	sale := domain.Sale{
		Type:      saleType,
		Total:     req.Total,
		CreatedAt: s.now(),
		Customer: domain.CustomerSnapshot{
			CustomerID:      details.CustomerID,
			CustomerName:    details.CustomerName,
			CustomerPhone:   details.CustomerPhone,
			CustomerAddress: details.CustomerAddress,
		},
		PaymentType:      paymentType,
		AmountPaid:       details.AmountPaid,
		RemainingBalance: remaining,
		DueDate:          details.DueDate,
		ShopID:           req.ShopID,
		Items:            make([]domain.SaleItem, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		sale.Items = append(sale.Items, domain.SaleItem{
			SaleItemID: s.newID(),
			ProductID:  item.ProductID,
			Name:       item.Name,
			SKU:        item.SKU,
			Quantity:   item.Quantity,
			SalePrice:  item.SalePrice,
			Unit:       item.Unit,
			Size:       item.Size,
			LineTotal:  domain.LineTotalFor(item.SalePrice, item.Quantity),
		})
	}
	return sale
}

// RecordSale records a sale or return with the next sequential id, moves stock for every
// line and updates the customer's running totals.
func (s *ledgerService) RecordSale(ctx context.Context, req dto.RecordSaleRequest) (result *domain.Sale, err error) {
	const operation = "record_sale"
	started := time.Now()
	defer func() {
		s.metrics.Observe(operation, started, err)
		logOutcome(ctx, &s.BaseService, operation, err)
	}()

	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if req.Type != "" && !req.Type.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("type must be %s or %s", domain.SaleTypeSale, domain.SaleTypeReturn))
	}
	warnings, err := validateSaleItems(req.Items)
	if err != nil {
		return nil, err
	}
	logWarnings(ctx, &s.BaseService, operation, warnings)

	sale := s.buildSale(req)

	err = s.txm.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		maxID, err := repos.SaleRepo.MaxNumericSaleID(ctx)
		if err != nil {
			return fmt.Errorf("failed to allocate sale id: %w", err)
		}
		sale.SaleID = domain.FormatSaleID(maxID)
		for i := range sale.Items {
			sale.Items[i].SaleID = sale.SaleID
		}

		var customer *domain.Customer
		if sale.Customer.CustomerID != "" {
			customer, err = repos.CustomerRepo.FindCustomerByIDForUpdate(ctx, sale.Customer.CustomerID)
			if err != nil {
				return err
			}
			fillSnapshot(&sale.Customer, customer)
		}

		// Stock first: an unknown product is reported per line before the sale lines reference it.
		for i, item := range sale.Items {
			if err := s.moveSaleStock(ctx, repos, sale, i, item); err != nil {
				return err
			}
		}

		if err := repos.SaleRepo.SaveSale(ctx, sale); err != nil {
			return err
		}

		if customer != nil {
			if sale.Type == domain.SaleTypeReturn {
				customer.ApplyReturn(sale.RemainingBalance)
			} else {
				customer.ApplySale(sale.Total, sale.AmountPaid, sale.RemainingBalance)
			}
			if err := repos.CustomerRepo.UpdateCustomerBalances(ctx, *customer); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Sale recorded",
		slog.String("sale_id", sale.SaleID),
		slog.String("type", string(sale.Type)),
		slog.String("total", sale.Total.String()),
		slog.Int("items", len(sale.Items)))
	return &sale, nil
}

// moveSaleStock applies one sale line to its product's stock.
func (s *ledgerService) moveSaleStock(ctx context.Context, repos portsrepo.RepositoryProvider, sale domain.Sale, index int, item domain.SaleItem) error {
	product, err := repos.ProductRepo.FindProductByIDForUpdate(ctx, item.ProductID)
	if err != nil {
		return &apperrors.ItemError{Index: index, ProductID: item.ProductID, Err: err}
	}
	delta := sale.StockDelta(item.Quantity)
	if delta < 0 && product.Stock+delta < 0 {
		if !s.allowNegativeStock {
			return &apperrors.ItemError{Index: index, ProductID: item.ProductID, Err: apperrors.NewAppError(
				apperrors.ErrInsufficientStock,
				fmt.Sprintf("only %d in stock, %d requested", product.Stock, item.Quantity), nil)}
		}
		s.LogWarn(ctx, "Sale takes product stock below zero",
			slog.String("product_id", item.ProductID),
			slog.Int64("stock", product.Stock),
			slog.Int64("quantity", item.Quantity))
	}
	if err := repos.ProductRepo.AdjustProductStock(ctx, item.ProductID, delta); err != nil {
		return &apperrors.ItemError{Index: index, ProductID: item.ProductID, Err: err}
	}
	return nil
}

// fillSnapshot copies customer fields the caller left blank onto the sale snapshot.
func fillSnapshot(snapshot *domain.CustomerSnapshot, customer *domain.Customer) {
	if snapshot.CustomerName == "" {
		snapshot.CustomerName = customer.Name
	}
	if snapshot.CustomerPhone == "" {
		snapshot.CustomerPhone = customer.Phone
	}
	if snapshot.CustomerAddress == "" {
		snapshot.CustomerAddress = customer.Address
	}
}

// RecordPayment records money received from a customer and, when a sale is named,
// allocates it to that sale.
func (s *ledgerService) RecordPayment(ctx context.Context, req dto.RecordPaymentRequest) (result *domain.Payment, err error) {
	const operation = "record_payment"
	started := time.Now()
	defer func() {
		s.metrics.Observe(operation, started, err)
		logOutcome(ctx, &s.BaseService, operation, err, slog.String("customer_id", req.CustomerID))
	}()

	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	payment := domain.Payment{
		PaymentID:  s.newID(),
		CustomerID: req.CustomerID,
		SaleID:     req.SaleID,
		Amount:     req.Amount,
		CreatedAt:  s.now(),
		Method:     req.Method,
		Note:       req.Note,
	}

	err = s.txm.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		customer, err := repos.CustomerRepo.FindCustomerByIDForUpdate(ctx, payment.CustomerID)
		if err != nil {
			return err
		}

		var sale *domain.Sale
		if payment.SaleID != "" {
			sale, err = repos.SaleRepo.FindSaleByIDForUpdate(ctx, payment.SaleID)
			if err != nil {
				return err
			}
			if sale.Customer.CustomerID != "" && sale.Customer.CustomerID != customer.CustomerID {
				s.LogWarn(ctx, "Payment allocated to a sale of another customer",
					slog.String("sale_id", sale.SaleID),
					slog.String("sale_customer_id", sale.Customer.CustomerID))
			}
		}

		if err := repos.PaymentRepo.SavePayment(ctx, payment); err != nil {
			return err
		}

		customer.ApplyPayment(payment.Amount)
		if err := repos.CustomerRepo.UpdateCustomerBalances(ctx, *customer); err != nil {
			return err
		}

		if sale != nil {
			sale.ApplyPayment(payment.Amount)
			if err := repos.SaleRepo.UpdateSalePayment(ctx, sale.SaleID, sale.AmountPaid, sale.RemainingBalance, sale.PaymentType); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("customer_id", payment.CustomerID),
		slog.String("amount", payment.Amount.String()))
	return &payment, nil
}

// validatePurchaseItems rejects lines without a product and collects warnings for the rest.
func validatePurchaseItems(items []dto.PurchaseItemRequest) ([]domain.Warning, error) {
	var warnings []domain.Warning
	for i, item := range items {
		if item.ProductID == "" {
			return nil, &apperrors.ItemError{Index: i, Err: apperrors.NewValidationError("productId is required")}
		}
		if item.Quantity <= 0 {
			warnings = append(warnings, domain.Warning{Index: i, Field: "quantity", Message: "is not positive"})
		}
	}
	return warnings, nil
}

// buildPurchase computes line and purchase totals for validated lines.
func (s *ledgerService) buildPurchase(req dto.RecordPurchaseRequest) domain.Purchase {
	purchase := domain.Purchase{
		PurchaseID: s.newID(),
		SupplierID: req.SupplierID,
		PaidAmount: req.PaidAmount,
		CreatedAt:  s.now(),
		ShopID:     req.ShopID,
		DueDate:    req.DueDate,
		Items:      make([]domain.PurchaseItem, 0, len(req.Items)),
	}
	total := decimal.Zero
	for _, item := range req.Items {
		lineTotal := domain.PurchaseLineTotal(item.Total, item.Quantity, item.CostPrice)
		total = total.Add(lineTotal)
		purchase.Items = append(purchase.Items, domain.PurchaseItem{
			PurchaseItemID: s.newID(),
			PurchaseID:     purchase.PurchaseID,
			ProductID:      item.ProductID,
			ProductName:    item.ProductName,
			Quantity:       item.Quantity,
			CostPrice:      item.CostPrice,
			Total:          lineTotal,
		})
	}
	purchase.TotalAmount = total
	purchase.RemainingAmount = total.Sub(req.PaidAmount)
	return purchase
}

// RecordPurchase records a delivery from a supplier. Stock, purchase prices and supplier
// snapshots of every product move with it, as does the supplier balance.
func (s *ledgerService) RecordPurchase(ctx context.Context, req dto.RecordPurchaseRequest) (result *domain.Purchase, err error) {
	const operation = "record_purchase"
	started := time.Now()
	defer func() {
		s.metrics.Observe(operation, started, err)
		logOutcome(ctx, &s.BaseService, operation, err, slog.String("supplier_id", req.SupplierID))
	}()

	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	warnings, err := validatePurchaseItems(req.Items)
	if err != nil {
		return nil, err
	}
	logWarnings(ctx, &s.BaseService, operation, warnings)
	purchase := s.buildPurchase(req)

	err = s.txm.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		supplier, err := repos.SupplierRepo.FindSupplierByIDForUpdate(ctx, purchase.SupplierID)
		if err != nil {
			return err
		}
		purchase.SupplierName = supplier.Name

		if err := repos.PurchaseRepo.SavePurchase(ctx, purchase); err != nil {
			return err
		}

		for i := range purchase.Items {
			item := &purchase.Items[i]
			if err := s.receivePurchaseItem(ctx, repos, i, item, supplier); err != nil {
				return &apperrors.ItemError{Index: i, ProductID: item.ProductID, Err: err}
			}
		}

		supplier.ApplyPurchase(purchase.TotalAmount)
		if purchase.DueDate != nil {
			supplier.NextPaymentDate = purchase.DueDate
		}

		if purchase.PaidAmount.IsPositive() {
			payment := domain.SupplierPayment{
				SupplierPaymentID: s.newID(),
				SupplierID:        supplier.SupplierID,
				PurchaseID:        purchase.PurchaseID,
				Amount:            purchase.PaidAmount,
				CreatedAt:         purchase.CreatedAt,
				Method:            domain.DefaultSupplierPaymentMethod,
				Note:              purchase.PaymentNote(),
			}
			if err := repos.SupplierPaymentRepo.SaveSupplierPayment(ctx, payment); err != nil {
				return err
			}
			supplier.ApplyPayment(purchase.PaidAmount)
		}

		return repos.SupplierRepo.UpdateSupplierBalances(ctx, *supplier)
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Purchase recorded",
		slog.String("purchase_id", purchase.PurchaseID),
		slog.String("supplier_id", purchase.SupplierID),
		slog.String("total", purchase.TotalAmount.String()))
	return &purchase, nil
}

// receivePurchaseItem persists one purchase line and applies it to the product.
func (s *ledgerService) receivePurchaseItem(ctx context.Context, repos portsrepo.RepositoryProvider, position int, item *domain.PurchaseItem, supplier *domain.Supplier) error {
	product, err := repos.ProductRepo.FindProductByIDForUpdate(ctx, item.ProductID)
	if err != nil {
		return err
	}
	if item.ProductName == "" {
		item.ProductName = product.Name
	}
	if err := repos.PurchaseRepo.SavePurchaseItem(ctx, position, *item); err != nil {
		return err
	}
	return repos.ProductRepo.ApplyProductPurchase(ctx, item.ProductID, item.Quantity, item.CostPrice, supplier.SupplierID, supplier.Name)
}

// RecordSupplierPayment records money paid to a supplier.
func (s *ledgerService) RecordSupplierPayment(ctx context.Context, req dto.RecordSupplierPaymentRequest) (result *domain.SupplierPayment, err error) {
	const operation = "record_supplier_payment"
	started := time.Now()
	defer func() {
		s.metrics.Observe(operation, started, err)
		logOutcome(ctx, &s.BaseService, operation, err, slog.String("supplier_id", req.SupplierID))
	}()

	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	method := req.Method
	if method == "" {
		method = domain.DefaultSupplierPaymentMethod
	}
	payment := domain.SupplierPayment{
		SupplierPaymentID: s.newID(),
		SupplierID:        req.SupplierID,
		Amount:            req.Amount,
		CreatedAt:         s.now(),
		Method:            method,
		Note:              req.Note,
	}

	err = s.txm.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		supplier, err := repos.SupplierRepo.FindSupplierByIDForUpdate(ctx, payment.SupplierID)
		if err != nil {
			return err
		}
		if err := repos.SupplierPaymentRepo.SaveSupplierPayment(ctx, payment); err != nil {
			return err
		}
		supplier.ApplyPayment(payment.Amount)
		return repos.SupplierRepo.UpdateSupplierBalances(ctx, *supplier)
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Supplier payment recorded",
		slog.String("supplier_payment_id", payment.SupplierPaymentID),
		slog.String("supplier_id", payment.SupplierID),
		slog.String("amount", payment.Amount.String()))
	return &payment, nil
}

// ResetAll deletes every business row in one transaction.
func (s *ledgerService) ResetAll(ctx context.Context) (err error) {
	const operation = "reset_all"
	started := time.Now()
	defer func() {
		s.metrics.Observe(operation, started, err)
		logOutcome(ctx, &s.BaseService, operation, err)
	}()

	err = s.txm.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		return repos.ResetRepo.DeleteAll(ctx)
	})
	if err != nil {
		return err
	}
	s.LogWarn(ctx, "All business data deleted")
	return nil
}

func (s *ledgerService) GetSale(ctx context.Context, saleID string) (*domain.Sale, error) {
	return s.repos.SaleRepo.FindSaleByID(ctx, saleID)
}

func (s *ledgerService) ListSales(ctx context.Context, filter domain.SaleFilter) (*domain.SalePage, error) {
	if filter.ShopID != "" && !filter.ShopID.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("shopId must be %s or %s", domain.Shop1, domain.Shop2))
	}
	page, err := s.repos.SaleRepo.ListSales(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales",
			slog.String("customer_id", filter.CustomerID),
			slog.String("shop_id", string(filter.ShopID)))
		return nil, err
	}
	return page, nil
}

func (s *ledgerService) GetPurchase(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	return s.repos.PurchaseRepo.FindPurchaseByID(ctx, purchaseID)
}

func (s *ledgerService) ListPurchases(ctx context.Context, supplierID string) ([]domain.Purchase, error) {
	purchases, err := s.repos.PurchaseRepo.ListPurchases(ctx, supplierID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list purchases", slog.String("supplier_id", supplierID))
		return nil, err
	}
	if purchases == nil {
		return []domain.Purchase{}, nil
	}
	return purchases, nil
}

func (s *ledgerService) ListPayments(ctx context.Context, customerID string) ([]domain.Payment, error) {
	payments, err := s.repos.PaymentRepo.ListPayments(ctx, customerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments", slog.String("customer_id", customerID))
		return nil, err
	}
	if payments == nil {
		return []domain.Payment{}, nil
	}
	return payments, nil
}

func (s *ledgerService) ListSupplierPayments(ctx context.Context, supplierID string) ([]domain.SupplierPayment, error) {
	payments, err := s.repos.SupplierPaymentRepo.ListSupplierPayments(ctx, supplierID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list supplier payments", slog.String("supplier_id", supplierID))
		return nil, err
	}
	if payments == nil {
		return []domain.SupplierPayment{}, nil
	}
	return payments, nil
}
