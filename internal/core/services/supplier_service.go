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

type supplierService struct {
	BaseService
	txm          portsrepo.TxManager
	supplierRepo portsrepo.SupplierRepositoryFacade
}

// NewSupplierService creates a new SupplierSvcFacade. Profile edits run in txm.
func NewSupplierService(txm portsrepo.TxManager, supplierRepo portsrepo.SupplierRepositoryFacade) portssvc.SupplierSvcFacade {
	return &supplierService{txm: txm, supplierRepo: supplierRepo}
}

var _ portssvc.SupplierSvcFacade = (*supplierService)(nil)

func (s *supplierService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*domain.Supplier, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	supplier := domain.Supplier{
		SupplierID:      uuid.NewString(),
		Name:            req.Name,
		Contact:         req.Contact,
		Phone:           req.Phone,
		ShopName:        req.ShopName,
		Address:         req.Address,
		Notes:           req.Notes,
		CreatedAt:       defaultNow(),
		NextPaymentDate: req.NextPaymentDate,
	}
	if err := s.supplierRepo.SaveSupplier(ctx, supplier); err != nil {
		s.LogError(ctx, err, "Failed to save supplier", slog.String("supplier_id", supplier.SupplierID))
		return nil, err
	}

	s.LogInfo(ctx, "Supplier created", slog.String("supplier_id", supplier.SupplierID))
	return &supplier, nil
}

func (s *supplierService) GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find supplier by ID", slog.String("supplier_id", supplierID))
		}
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	suppliers, err := s.supplierRepo.ListSuppliers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list suppliers")
		return nil, err
	}
	if suppliers == nil {
		return []domain.Supplier{}, nil
	}
	return suppliers, nil
}

// UpdateSupplier writes only the provided profile fields. The next payment date is kept
// unless the request sets it, so a due date set by a concurrent purchase survives.
func (s *supplierService) UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest) (*domain.Supplier, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	update := req.Changes()

	var supplier *domain.Supplier
	err := s.txm.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		current, err := repos.SupplierRepo.FindSupplierByIDForUpdate(ctx, supplierID)
		if err != nil {
			return err
		}
		if err := repos.SupplierRepo.UpdateSupplier(ctx, supplierID, update); err != nil {
			return err
		}
		update.ApplyTo(current)
		supplier = current
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update supplier", slog.String("supplier_id", supplierID))
		}
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) DeleteSupplier(ctx context.Context, supplierID string) error {
	if err := s.supplierRepo.DeleteSupplier(ctx, supplierID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete supplier", slog.String("supplier_id", supplierID))
		}
		return err
	}
	s.LogInfo(ctx, "Supplier deleted", slog.String("supplier_id", supplierID))
	return nil
}
