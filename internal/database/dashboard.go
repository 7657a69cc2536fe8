package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/smartexpense/expense-manager/models"
)

// GetMonthlySummary returns income and expense totals for the 6 most recent
// calendar months with any activity, newest first. Amounts are classified by
// the category's type.
func GetMonthlySummary(ctx context.Context, pool *pgxpool.Pool, userID int) ([]models.MonthlySummary, error) {
	query := `
		SELECT DATE_TRUNC('month', t.transaction_date) AS month,
		       SUM(CASE WHEN c.type = 'income' THEN t.amount ELSE 0 END) AS total_income,
		       SUM(CASE WHEN c.type = 'expense' THEN t.amount ELSE 0 END) AS total_expense
		FROM transactions t
		JOIN categories c ON t.category_id = c.id
		WHERE t.user_id = $1
		GROUP BY month
		ORDER BY month DESC
		LIMIT 6`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("monthly summary: %w", err)
	}
	defer rows.Close()

	var summary []models.MonthlySummary
	for rows.Next() {
		var s models.MonthlySummary
		if err := rows.Scan(&s.Month, &s.TotalIncome, &s.TotalExpense); err != nil {
			return nil, err
		}
		summary = append(summary, s)
	}
	return summary, rows.Err()
}

// GetBudgetAlerts returns, for every budget row of the given month and year,
// the configured ceiling and the realized spend in its category, so the
// caller can flag overage.
func GetBudgetAlerts(ctx context.Context, pool *pgxpool.Pool, userID, month, year int) ([]models.BudgetAlert, error) {
	query := `
		SELECT c.name,
		       COALESCE(SUM(t.amount), 0) AS spent,
		       b.amount AS budget
		FROM budgets b
		JOIN categories c ON b.category_id = c.id
		LEFT JOIN transactions t ON t.category_id = c.id
		  AND t.user_id = $1
		  AND EXTRACT(MONTH FROM t.transaction_date) = $2
		  AND EXTRACT(YEAR FROM t.transaction_date) = $3
		WHERE b.user_id = $1
		  AND b.month = $2
		  AND b.year = $3
		GROUP BY c.name, b.amount`
	rows, err := pool.Query(ctx, query, userID, month, year)
	if err != nil {
		return nil, fmt.Errorf("budget alerts: %w", err)
	}
	defer rows.Close()

	var alerts []models.BudgetAlert
	for rows.Next() {
		var a models.BudgetAlert
		if err := rows.Scan(&a.Name, &a.Spent, &a.Budget); err != nil {
			return nil, err
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

// GetCategorySpend returns per-category totals for the given month and year,
// largest first.
func GetCategorySpend(ctx context.Context, pool *pgxpool.Pool, userID, month, year int) ([]models.CategorySpend, error) {
	query := `
		SELECT c.name, c.type, SUM(t.amount) AS total
		FROM transactions t
		JOIN categories c ON t.category_id = c.id
		WHERE t.user_id = $1
		  AND EXTRACT(MONTH FROM t.transaction_date) = $2
		  AND EXTRACT(YEAR FROM t.transaction_date) = $3
		GROUP BY c.name, c.type
		ORDER BY total DESC`
	rows, err := pool.Query(ctx, query, userID, month, year)
	if err != nil {
		return nil, fmt.Errorf("category spend: %w", err)
	}
	defer rows.Close()

	var spend []models.CategorySpend
	for rows.Next() {
		var s models.CategorySpend
		if err := rows.Scan(&s.Name, &s.Type, &s.Total); err != nil {
			return nil, err
		}
		spend = append(spend, s)
	}
	return spend, rows.Err()
}

// GetRecentTransactions returns the 5 most recent transactions with resolved
// category name and type, ordered by date then creation time descending.
func GetRecentTransactions(ctx context.Context, pool *pgxpool.Pool, userID int) ([]models.Transaction, error) {
	query := `
		SELECT t.id, t.user_id, t.category_id, t.amount, t.description,
		       t.transaction_date, t.created_at, c.name, c.type
		FROM transactions t
		JOIN categories c ON t.category_id = c.id
		WHERE t.user_id = $1
		ORDER BY t.transaction_date DESC, t.created_at DESC
		LIMIT 5`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("recent transactions: %w", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.CategoryID, &t.Amount, &t.Description,
			&t.Date, &t.CreatedAt, &t.CategoryName, &t.CategoryType); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

// GetDashboard assembles the four aggregates for the acting user. The reads
// are independent and run concurrently, each on its own pooled connection;
// they are deliberately not wrapped in one transaction, so a concurrent write
// can skew totals across aggregates slightly.
func GetDashboard(ctx context.Context, pool *pgxpool.Pool, userID int, now time.Time) (*models.Dashboard, error) {
	month := int(now.Month())
	year := now.Year()

	dash := &models.Dashboard{
		CurrentMonth: month,
		CurrentYear:  year,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		summary, err := GetMonthlySummary(gctx, pool, userID)
		dash.Summary = summary
		return err
	})
	g.Go(func() error {
		alerts, err := GetBudgetAlerts(gctx, pool, userID, month, year)
		dash.BudgetAlerts = alerts
		return err
	})
	g.Go(func() error {
		spend, err := GetCategorySpend(gctx, pool, userID, month, year)
		dash.CategorySpend = spend
		return err
	})
	g.Go(func() error {
		recent, err := GetRecentTransactions(gctx, pool, userID)
		dash.RecentTransactions = recent
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	dash.CurrentSummary = models.CurrentMonthSummary(dash.Summary, now)
	return dash, nil
}
