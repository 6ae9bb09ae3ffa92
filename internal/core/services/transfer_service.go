package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopledger/shopledger/internal/apperrors"
	"github.com/shopledger/shopledger/internal/core/domain"
	portsrepo "github.com/shopledger/shopledger/internal/core/ports/repositories"
	portssvc "github.com/shopledger/shopledger/internal/core/ports/services"
	"github.com/shopledger/shopledger/internal/dto"
)

// transferService moves stock between the two shops.
type transferService struct {
	BaseService
	engineConfig
	txm portsrepo.TxManager
}

// NewTransferService creates a new TransferSvc.
func NewTransferService(txm portsrepo.TxManager, options ...EngineOption) portssvc.TransferSvc {
	return &transferService{
		engineConfig: newEngineConfig(options),
		txm:          txm,
	}
}

var _ portssvc.TransferSvc = (*transferService)(nil)

// Transfer decrements the source product and credits its counterpart in the other shop,
// matched by SKU when the source has one and by name otherwise. A missing counterpart
// is created as a clone of the source.
func (s *transferService) Transfer(ctx context.Context, req dto.TransferRequest) (result *domain.TransferResult, err error) {
	const operation = "transfer_stock"
	started := time.Now()
	defer func() {
		s.metrics.Observe(operation, started, err)
		logOutcome(ctx, &s.BaseService, operation, err,
			slog.String("source_product_id", req.SourceProductID),
			slog.Int64("quantity", req.Quantity))
	}()

	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	res := &domain.TransferResult{}
	err = s.txm.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		source, err := repos.ProductRepo.FindProductByIDForUpdate(ctx, req.SourceProductID)
		if err != nil {
			return err
		}
		if source.Stock < req.Quantity {
			return apperrors.NewAppError(apperrors.ErrInsufficientStock,
				fmt.Sprintf("only %d in stock, %d requested", source.Stock, req.Quantity), nil)
		}
		if err := repos.ProductRepo.AdjustProductStock(ctx, source.ProductID, -req.Quantity); err != nil {
			return err
		}
		source.Stock -= req.Quantity
		res.Source = *source

		destShop := source.ShopID.Opposite()
		dest, err := repos.ProductRepo.FindMatchingProduct(ctx, destShop, source.SKU, source.Name)
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			clone := source.CloneInto(destShop, s.newID(), req.Quantity, s.now())
			if err := repos.ProductRepo.SaveProduct(ctx, clone); err != nil {
				return err
			}
			res.Destination = clone
			res.DestinationCreated = true
			return nil
		case err != nil:
			return err
		}

		if err := repos.ProductRepo.AdjustProductStock(ctx, dest.ProductID, req.Quantity); err != nil {
			return err
		}
		dest.Stock += req.Quantity
		res.Destination = *dest
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Stock transferred",
		slog.String("source_product_id", res.Source.ProductID),
		slog.String("destination_product_id", res.Destination.ProductID),
		slog.String("destination_shop", string(res.Destination.ShopID)),
		slog.Bool("destination_created", res.DestinationCreated),
		slog.Int64("quantity", req.Quantity))
	return res, nil
}
