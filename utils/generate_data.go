package utils

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/smartexpense/expense-manager/internal/database"
	"github.com/smartexpense/expense-manager/models"
)

// GenerateDemoUser registers a demo account with seeded default categories
// and returns it. The password is always "password1" so the account is usable
// from the login form.
func GenerateDemoUser(ctx context.Context, pool *pgxpool.Pool) (*models.User, error) {
	user := &models.User{
		Name:  gofakeit.Name(),
		Email: gofakeit.Email(),
	}
	if err := database.RegisterUser(ctx, pool, user, "password1"); err != nil {
		return nil, fmt.Errorf("generate demo user: %w", err)
	}
	return user, nil
}

// GenerateDemoTransactions spreads random ledger entries across the user's
// categories over the trailing six months.
func GenerateDemoTransactions(ctx context.Context, pool *pgxpool.Pool, userID, count int) error {
	categories, err := database.GetCategoriesByUser(ctx, pool, userID)
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		return fmt.Errorf("user %d has no categories", userID)
	}

	for i := 0; i < count; i++ {
		category := categories[rand.Intn(len(categories))]
		transaction := &models.Transaction{
			UserID:      userID,
			CategoryID:  category.ID,
			Amount:      decimal.NewFromFloat(gofakeit.Price(10, 25000)),
			Description: gofakeit.Sentence(4),
			Date:        time.Now().AddDate(0, 0, -rand.Intn(180)),
		}
		if err := database.CreateTransaction(ctx, pool, transaction); err != nil {
			return fmt.Errorf("generate demo transaction: %w", err)
		}
	}
	return nil
}

// GenerateDemoBudgets upserts a current-month ceiling for each of the user's
// expense categories.
func GenerateDemoBudgets(ctx context.Context, pool *pgxpool.Pool, userID int) error {
	categories, err := database.GetExpenseCategoriesByUser(ctx, pool, userID)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, category := range categories {
		budget := &models.Budget{
			UserID:     userID,
			CategoryID: category.ID,
			Month:      int(now.Month()),
			Year:       now.Year(),
			Amount:     decimal.NewFromFloat(gofakeit.Price(1000, 20000)),
		}
		if err := database.SetBudget(ctx, pool, budget); err != nil {
			return fmt.Errorf("generate demo budget: %w", err)
		}
	}
	return nil
}
