package mapping

import (
	"github.com/shopledger/shopledger/internal/core/domain"
	"github.com/shopledger/shopledger/internal/models"
)

func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:   d.ExpenseID,
		Description: d.Description,
		Amount:      d.Amount,
		Category:    d.Category,
		CreatedAt:   d.CreatedAt.UTC(),
		ShopID:      string(d.ShopID),
	}
}

func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:   m.ExpenseID,
		Description: m.Description,
		Amount:      m.Amount,
		Category:    m.Category,
		CreatedAt:   m.CreatedAt.UTC(),
		ShopID:      domain.ShopID(m.ShopID),
	}
}

func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}
