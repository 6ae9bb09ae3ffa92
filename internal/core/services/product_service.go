package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopledger/shopledger/internal/apperrors"
	"github.com/shopledger/shopledger/internal/core/domain"
	portsrepo "github.com/shopledger/shopledger/internal/core/ports/repositories"
	portssvc "github.com/shopledger/shopledger/internal/core/ports/services"
	"github.com/shopledger/shopledger/internal/dto"
)

type productService struct {
	BaseService
	txm         portsrepo.TxManager
	productRepo portsrepo.ProductRepositoryFacade
}

// NewProductService creates a new ProductSvcFacade. Edits run in txm so they serialize with
// ledger writes; reads, creates and deletes go straight to productRepo.
func NewProductService(txm portsrepo.TxManager, productRepo portsrepo.ProductRepositoryFacade) portssvc.ProductSvcFacade {
	return &productService{txm: txm, productRepo: productRepo}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	product := domain.Product{
		ProductID:     uuid.NewString(),
		Name:          req.Name,
		SKU:           req.SKU,
		PurchasePrice: req.PurchasePrice,
		SalePrice:     req.SalePrice,
		Stock:         req.Stock,
		Category:      req.Category,
		ShopID:        req.ShopID,
		SupplierID:    req.SupplierID,
		SupplierName:  req.SupplierName,
		Size:          req.Size,
		Unit:          req.Unit,
		CreatedAt:     defaultNow(),
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to save product", slog.String("product_id", product.ProductID))
		return nil, err
	}

	s.LogInfo(ctx, "Product created",
		slog.String("product_id", product.ProductID),
		slog.String("shop_id", string(product.ShopID)))
	return &product, nil
}

func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find product by ID", slog.String("product_id", productID))
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, shop domain.ShopID) ([]domain.Product, error) {
	if shop != "" && !shop.IsValid() {
		return nil, apperrors.NewValidationError("shopId must be shop-1 or shop-2")
	}
	products, err := s.productRepo.ListProducts(ctx, shop)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products", slog.String("shop_id", string(shop)))
		return nil, err
	}
	if products == nil {
		return []domain.Product{}, nil
	}
	return products, nil
}

// UpdateProduct writes only the provided fields against a locked read of the row, so
// stock moved by a concurrent sale or purchase is kept. Stock edits here are manual
// corrections outside the ledger and are logged as such.
func (s *productService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*domain.Product, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	update := req.Changes()

	var product *domain.Product
	err := s.txm.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		current, err := repos.ProductRepo.FindProductByIDForUpdate(ctx, productID)
		if err != nil {
			return err
		}
		if update.Stock != nil && *update.Stock != current.Stock {
			s.LogWarn(ctx, "Manual stock correction",
				slog.String("product_id", productID),
				slog.Int64("from", current.Stock),
				slog.Int64("to", *update.Stock))
		}
		if err := repos.ProductRepo.UpdateProduct(ctx, productID, update); err != nil {
			return err
		}
		update.ApplyTo(current)
		product = current
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update product", slog.String("product_id", productID))
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, productID string) error {
	if err := s.productRepo.DeleteProduct(ctx, productID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete product", slog.String("product_id", productID))
		}
		return err
	}
	s.LogInfo(ctx, "Product deleted", slog.String("product_id", productID))
	return nil
}
