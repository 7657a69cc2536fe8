package database_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/smartexpense/expense-manager/internal/database"
	"github.com/smartexpense/expense-manager/models"
)

// testPool connects to the database named by DATABASE_URL and ensures the
// schema is migrated. Tests are skipped when no database is configured.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	_ = godotenv.Load()

	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set, skipping database tests")
	}

	if err := database.RunMigrations(url); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	pool, err := database.Connect(context.Background(), url)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

// createTestUser registers a fresh user (with seeded default categories)
// under a unique email.
func createTestUser(t *testing.T, pool *pgxpool.Pool) *models.User {
	t.Helper()
	user := &models.User{
		Name:  "Test User",
		Email: fmt.Sprintf("user%d@example.com", time.Now().UnixNano()),
	}
	if err := database.RegisterUser(context.Background(), pool, user, "password1"); err != nil {
		t.Fatalf("register test user: %v", err)
	}
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, user.ID)
	})
	return user
}

// categoryByName finds one of the user's categories.
func categoryByName(t *testing.T, pool *pgxpool.Pool, userID int, name string) models.Category {
	t.Helper()
	categories, err := database.GetCategoriesByUser(context.Background(), pool, userID)
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	for _, c := range categories {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("category %q not found for user %d", name, userID)
	return models.Category{}
}
