package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartexpense/expense-manager/models"
)

// GetTransactions lists the user's transactions for the filter's month and
// year, optionally narrowed to one category. The optional predicate is a fixed
// clause with its own parameter slot, never interpolated.
func GetTransactions(ctx context.Context, pool *pgxpool.Pool, userID int, filter models.TransactionFilter) ([]models.Transaction, error) {
	query := `
		SELECT t.id, t.user_id, t.category_id, t.amount, t.description,
		       t.transaction_date, t.created_at, c.name, c.type
		FROM transactions t
		JOIN categories c ON t.category_id = c.id
		WHERE t.user_id = $1
		  AND EXTRACT(MONTH FROM t.transaction_date) = $2
		  AND EXTRACT(YEAR FROM t.transaction_date) = $3`
	params := []interface{}{userID, filter.Month, filter.Year}

	if filter.CategoryID != 0 {
		query += fmt.Sprintf(" AND t.category_id = $%d", len(params)+1)
		params = append(params, filter.CategoryID)
	}

	query += ` ORDER BY t.transaction_date DESC, t.created_at DESC`

	rows, err := pool.Query(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
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

func CreateTransaction(ctx context.Context, pool *pgxpool.Pool, transaction *models.Transaction) error {
	query := `
		INSERT INTO transactions (user_id, category_id, amount, description, transaction_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	err := pool.QueryRow(ctx, query,
		transaction.UserID,
		transaction.CategoryID,
		transaction.Amount,
		transaction.Description,
		transaction.Date).Scan(&transaction.ID, &transaction.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// UpdateTransaction is scoped to (id, owning user); a wrong owner or missing
// id is ErrNotFound and never touches another user's row.
func UpdateTransaction(ctx context.Context, pool *pgxpool.Pool, transaction *models.Transaction) error {
	query := `
		UPDATE transactions
		SET category_id = $1, amount = $2, description = $3, transaction_date = $4
		WHERE id = $5 AND user_id = $6`
	result, err := pool.Exec(ctx, query,
		transaction.CategoryID,
		transaction.Amount,
		transaction.Description,
		transaction.Date,
		transaction.ID,
		transaction.UserID)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteTransaction(ctx context.Context, pool *pgxpool.Pool, id, userID int) error {
	result, err := pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// GetTransactionsForExport selects the month's ledger slice with resolved
// category name and type, ordered by date descending, for the CSV transform.
func GetTransactionsForExport(ctx context.Context, pool *pgxpool.Pool, userID, month, year int) ([]models.Transaction, error) {
	query := `
		SELECT t.transaction_date, c.name, c.type, t.amount, t.description
		FROM transactions t
		JOIN categories c ON t.category_id = c.id
		WHERE t.user_id = $1
		  AND EXTRACT(MONTH FROM t.transaction_date) = $2
		  AND EXTRACT(YEAR FROM t.transaction_date) = $3
		ORDER BY t.transaction_date DESC`
	rows, err := pool.Query(ctx, query, userID, month, year)
	if err != nil {
		return nil, fmt.Errorf("list transactions for export: %w", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.Date, &t.CategoryName, &t.CategoryType, &t.Amount, &t.Description); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}
