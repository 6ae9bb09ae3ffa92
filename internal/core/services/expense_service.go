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

type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

// NewExpenseService creates a new ExpenseSvcFacade.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{expenseRepo: expenseRepo}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		CreatedAt:   defaultNow(),
		ShopID:      req.ShopID,
	}
	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("expense_id", expense.ExpenseID))
		return nil, err
	}

	s.LogInfo(ctx, "Expense recorded",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("amount", expense.Amount.String()))
	return &expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, shop domain.ShopID) ([]domain.Expense, error) {
	if shop != "" && !shop.IsValid() {
		return nil, apperrors.NewValidationError("shopId must be shop-1 or shop-2")
	}
	expenses, err := s.expenseRepo.ListExpenses(ctx, shop)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses", slog.String("shop_id", string(shop)))
		return nil, err
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete expense", slog.String("expense_id", expenseID))
		}
		return err
	}
	s.LogInfo(ctx, "Expense deleted", slog.String("expense_id", expenseID))
	return nil
}
