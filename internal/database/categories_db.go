package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartexpense/expense-manager/models"
)

// GetCategoriesByUser lists the user's categories ordered by type, then name.
func GetCategoriesByUser(ctx context.Context, pool *pgxpool.Pool, userID int) ([]models.Category, error) {
	query := `
		SELECT id, user_id, name, type, created_at
		FROM categories
		WHERE user_id = $1
		ORDER BY type, name`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Type, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetExpenseCategoriesByUser lists only the expense buckets, used by the
// budget form.
func GetExpenseCategoriesByUser(ctx context.Context, pool *pgxpool.Pool, userID int) ([]models.Category, error) {
	query := `
		SELECT id, user_id, name, type, created_at
		FROM categories
		WHERE user_id = $1 AND type = 'expense'
		ORDER BY name`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list expense categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Type, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func CreateCategory(ctx context.Context, pool *pgxpool.Pool, category *models.Category) error {
	query := `
		INSERT INTO categories (user_id, name, type)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`
	err := pool.QueryRow(ctx, query, category.UserID, category.Name, category.Type).Scan(&category.ID, &category.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// DeleteCategory removes the category when it belongs to the user. A category
// still referenced by transactions fails with ErrCategoryInUse (foreign key
// violation from the store); a wrong owner or missing id is ErrNotFound.
func DeleteCategory(ctx context.Context, pool *pgxpool.Pool, id, userID int) error {
	result, err := pool.Exec(ctx, `DELETE FROM categories WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return ErrCategoryInUse
		}
		return fmt.Errorf("delete category: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SeedDefaultCategories inserts the 12 default buckets for a new user.
func SeedDefaultCategories(ctx context.Context, pool *pgxpool.Pool, userID int) error {
	for _, c := range models.DefaultCategories {
		_, err := pool.Exec(ctx,
			`INSERT INTO categories (user_id, name, type) VALUES ($1, $2, $3)`,
			userID, c.Name, c.Type)
		if err != nil {
			return fmt.Errorf("seed category %q: %w", c.Name, err)
		}
	}
	return nil
}
