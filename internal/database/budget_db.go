package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/smartexpense/expense-manager/models"
)

// GetBudgets lists the user's budgets for a month and year with the category
// name and the realized spend for that window.
func GetBudgets(ctx context.Context, pool *pgxpool.Pool, userID, month, year int) ([]models.Budget, error) {
	query := `
		SELECT b.id, b.user_id, b.category_id, b.month, b.year, b.amount,
		       c.name AS category_name,
		       COALESCE(SUM(t.amount), 0) AS spent
		FROM budgets b
		JOIN categories c ON b.category_id = c.id
		LEFT JOIN transactions t ON t.category_id = b.category_id
		  AND t.user_id = $1
		  AND EXTRACT(MONTH FROM t.transaction_date) = $2
		  AND EXTRACT(YEAR FROM t.transaction_date) = $3
		WHERE b.user_id = $1 AND b.month = $2 AND b.year = $3
		GROUP BY b.id, c.name
		ORDER BY c.name`
	rows, err := pool.Query(ctx, query, userID, month, year)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	defer rows.Close()

	var budgets []models.Budget
	for rows.Next() {
		var b models.Budget
		if err := rows.Scan(&b.ID, &b.UserID, &b.CategoryID, &b.Month, &b.Year,
			&b.Amount, &b.CategoryName, &b.Spent); err != nil {
			return nil, err
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

// SetBudget upserts on the (user, category, month, year) key: an existing row
// gets its amount replaced, otherwise a new row is inserted.
func SetBudget(ctx context.Context, pool *pgxpool.Pool, budget *models.Budget) error {
	query := `
		INSERT INTO budgets (user_id, category_id, month, year, amount)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, category_id, month, year)
		DO UPDATE SET amount = EXCLUDED.amount
		RETURNING id`
	err := pool.QueryRow(ctx, query,
		budget.UserID,
		budget.CategoryID,
		budget.Month,
		budget.Year,
		budget.Amount).Scan(&budget.ID)
	if err != nil {
		return fmt.Errorf("upsert budget: %w", err)
	}
	return nil
}

// UpdateBudgetAmount replaces the ceiling of a budget owned by the user.
func UpdateBudgetAmount(ctx context.Context, pool *pgxpool.Pool, id, userID int, amount decimal.Decimal) error {
	result, err := pool.Exec(ctx,
		`UPDATE budgets SET amount = $1 WHERE id = $2 AND user_id = $3`,
		amount, id, userID)
	if err != nil {
		return fmt.Errorf("update budget: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
