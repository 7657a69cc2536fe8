package database_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smartexpense/expense-manager/internal/database"
	"github.com/smartexpense/expense-manager/models"
)

func TestGetCategoriesByUserOrder(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)

	categories, err := database.GetCategoriesByUser(context.Background(), pool, user.ID)
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	for i := 1; i < len(categories); i++ {
		prev, cur := categories[i-1], categories[i]
		if prev.Type > cur.Type || (prev.Type == cur.Type && prev.Name > cur.Name) {
			t.Fatalf("categories out of (type, name) order: %q/%q before %q/%q",
				prev.Type, prev.Name, cur.Type, cur.Name)
		}
	}
}

func TestCreateCategory(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)

	category := &models.Category{UserID: user.ID, Name: "Pets", Type: models.CategoryTypeExpense}
	if err := database.CreateCategory(context.Background(), pool, category); err != nil {
		t.Fatalf("create category: %v", err)
	}
	if category.ID == 0 {
		t.Error("expected an id after insert")
	}
}

// A category still referenced by a transaction must survive the delete with a
// distinguishable conflict error.
func TestDeleteCategoryInUse(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)
	food := categoryByName(t, pool, user.ID, "Food & Dining")

	tr := &models.Transaction{
		UserID:     user.ID,
		CategoryID: food.ID,
		Amount:     decimal.NewFromInt(50),
		Date:       time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC),
	}
	if err := database.CreateTransaction(context.Background(), pool, tr); err != nil {
		t.Fatalf("create transaction: %v", err)
	}

	err := database.DeleteCategory(context.Background(), pool, food.ID, user.ID)
	if !errors.Is(err, database.ErrCategoryInUse) {
		t.Fatalf("expected ErrCategoryInUse, got %v", err)
	}

	// category must be intact
	categoryByName(t, pool, user.ID, "Food & Dining")
}

func TestDeleteCategoryUnused(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)
	entertainment := categoryByName(t, pool, user.ID, "Entertainment")

	if err := database.DeleteCategory(context.Background(), pool, entertainment.ID, user.ID); err != nil {
		t.Fatalf("delete unused category: %v", err)
	}
	if err := database.DeleteCategory(context.Background(), pool, entertainment.ID, user.ID); !errors.Is(err, database.ErrNotFound) {
		t.Fatalf("second delete should be ErrNotFound, got %v", err)
	}
}

func TestDeleteCategoryWrongOwner(t *testing.T) {
	pool := testPool(t)
	owner := createTestUser(t, pool)
	intruder := createTestUser(t, pool)
	shopping := categoryByName(t, pool, owner.ID, "Shopping")

	err := database.DeleteCategory(context.Background(), pool, shopping.ID, intruder.ID)
	if !errors.Is(err, database.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for wrong owner, got %v", err)
	}
}
