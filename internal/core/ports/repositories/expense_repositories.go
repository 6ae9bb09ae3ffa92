package repositories

import (
	"context"

	"github.com/shopledger/shopledger/internal/core/domain"
)

// ExpenseRepositoryFacade defines persistence for expenses. Expenses never touch the ledger.
type ExpenseRepositoryFacade interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, shop domain.ShopID) ([]domain.Expense, error)
	DeleteExpense(ctx context.Context, expenseID string) error
}
