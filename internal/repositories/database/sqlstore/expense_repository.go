package sqlstore

import (
	"context"

	"github.com/shopledger/shopledger/internal/core/domain"
	portsrepo "github.com/shopledger/shopledger/internal/core/ports/repositories"
	"github.com/shopledger/shopledger/internal/models"
	"github.com/shopledger/shopledger/internal/utils/mapping"
)

const expenseColumns = `id, description, amount, category, created_at, shop_id`

type expenseRepository struct {
	baseRepository
}

var _ portsrepo.ExpenseRepositoryFacade = (*expenseRepository)(nil)

func scanExpense(s rowScanner) (models.Expense, error) {
	var m models.Expense
	err := s.Scan(&m.ExpenseID, &m.Description, &m.Amount, &m.Category, &m.CreatedAt, &m.ShopID)
	return m, err
}

func (r *expenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	_, err := r.exec(ctx, `INSERT INTO expenses (`+expenseColumns+`) VALUES (`+placeholders(6)+`)`,
		m.ExpenseID, m.Description, m.Amount, m.Category, m.CreatedAt, m.ShopID)
	return translateError(err, "expense", "save expense "+m.ExpenseID)
}

func (r *expenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	m, err := scanExpense(r.queryRow(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE id = ?`, expenseID))
	if err != nil {
		return nil, translateError(err, "expense", "find expense "+expenseID)
	}
	e := mapping.ToDomainExpense(m)
	return &e, nil
}

// ListExpenses lists expenses newest first. An empty shop lists both shops.
func (r *expenseRepository) ListExpenses(ctx context.Context, shop domain.ShopID) ([]domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses`
	args := []any{}
	if shop != "" {
		query += ` WHERE shop_id = ?`
		args = append(args, string(shop))
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "expense", "list expenses")
	}
	defer rows.Close()

	var ms []models.Expense
	for rows.Next() {
		m, err := scanExpense(rows)
		if err != nil {
			return nil, translateError(err, "expense", "scan expense")
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "expense", "list expenses")
	}
	return mapping.ToDomainExpenseSlice(ms), nil
}

func (r *expenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	res, err := r.exec(ctx, `DELETE FROM expenses WHERE id = ?`, expenseID)
	if err != nil {
		return translateError(err, "expense", "delete expense "+expenseID)
	}
	return expectAffected(res, "expense", "delete expense")
}
