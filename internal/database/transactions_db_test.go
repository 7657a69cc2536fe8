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

func TestTransactionRoundTrip(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)
	food := categoryByName(t, pool, user.ID, "Food & Dining")
	salary := categoryByName(t, pool, user.ID, "Salary")

	lunch := &models.Transaction{
		UserID:      user.ID,
		CategoryID:  food.ID,
		Amount:      decimal.RequireFromString("500"),
		Description: "team lunch",
		Date:        time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
	}
	if err := database.CreateTransaction(context.Background(), pool, lunch); err != nil {
		t.Fatalf("create transaction: %v", err)
	}

	pay := &models.Transaction{
		UserID:     user.ID,
		CategoryID: salary.ID,
		Amount:     decimal.RequireFromString("10000"),
		Date:       time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	}
	if err := database.CreateTransaction(context.Background(), pool, pay); err != nil {
		t.Fatalf("create transaction: %v", err)
	}

	got, err := database.GetTransactions(context.Background(), pool, user.ID,
		models.TransactionFilter{Month: 1, Year: 2024})
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(got))
	}

	// date desc: 2024-01-10 before 2024-01-05
	if got[0].Date.Format("2006-01-02") != "2024-01-10" || got[1].Date.Format("2006-01-02") != "2024-01-05" {
		t.Errorf("unexpected order: %s, %s", got[0].Date, got[1].Date)
	}
	if !got[0].Amount.Equal(pay.Amount) || got[0].CategoryName != "Salary" || got[0].CategoryType != "income" {
		t.Errorf("unexpected first row: %+v", got[0])
	}
	if !got[1].Amount.Equal(lunch.Amount) || got[1].Description != "team lunch" || got[1].CategoryType != "expense" {
		t.Errorf("unexpected second row: %+v", got[1])
	}
}

func TestGetTransactionsCategoryFilter(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)
	food := categoryByName(t, pool, user.ID, "Food & Dining")
	rent := categoryByName(t, pool, user.ID, "Rent")

	for _, tr := range []*models.Transaction{
		{UserID: user.ID, CategoryID: food.ID, Amount: decimal.NewFromInt(250), Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)},
		{UserID: user.ID, CategoryID: rent.ID, Amount: decimal.NewFromInt(15000), Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	} {
		if err := database.CreateTransaction(context.Background(), pool, tr); err != nil {
			t.Fatalf("create transaction: %v", err)
		}
	}

	got, err := database.GetTransactions(context.Background(), pool, user.ID,
		models.TransactionFilter{Month: 3, Year: 2024, CategoryID: rent.ID})
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	if len(got) != 1 || got[0].CategoryID != rent.ID {
		t.Fatalf("expected only the rent transaction, got %+v", got)
	}
}

func TestUpdateTransactionWrongOwner(t *testing.T) {
	pool := testPool(t)
	owner := createTestUser(t, pool)
	intruder := createTestUser(t, pool)
	food := categoryByName(t, pool, owner.ID, "Food & Dining")

	tr := &models.Transaction{
		UserID:     owner.ID,
		CategoryID: food.ID,
		Amount:     decimal.NewFromInt(100),
		Date:       time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := database.CreateTransaction(context.Background(), pool, tr); err != nil {
		t.Fatalf("create transaction: %v", err)
	}

	stolen := *tr
	stolen.UserID = intruder.ID
	stolen.Amount = decimal.NewFromInt(1)
	err := database.UpdateTransaction(context.Background(), pool, &stolen)
	if !errors.Is(err, database.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for wrong owner, got %v", err)
	}

	if err := database.DeleteTransaction(context.Background(), pool, tr.ID, intruder.ID); !errors.Is(err, database.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for wrong-owner delete, got %v", err)
	}

	// row must be unchanged
	got, err := database.GetTransactions(context.Background(), pool, owner.ID,
		models.TransactionFilter{Month: 2, Year: 2024})
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	if len(got) != 1 || !got[0].Amount.Equal(decimal.NewFromInt(100)) {
		t.Errorf("row changed after wrong-owner attempts: %+v", got)
	}
}

func TestDeleteTransaction(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)
	food := categoryByName(t, pool, user.ID, "Food & Dining")

	tr := &models.Transaction{
		UserID:     user.ID,
		CategoryID: food.ID,
		Amount:     decimal.NewFromInt(75),
		Date:       time.Date(2024, 4, 20, 0, 0, 0, 0, time.UTC),
	}
	if err := database.CreateTransaction(context.Background(), pool, tr); err != nil {
		t.Fatalf("create transaction: %v", err)
	}
	if err := database.DeleteTransaction(context.Background(), pool, tr.ID, user.ID); err != nil {
		t.Fatalf("delete transaction: %v", err)
	}
	if err := database.DeleteTransaction(context.Background(), pool, tr.ID, user.ID); !errors.Is(err, database.ErrNotFound) {
		t.Fatalf("second delete should be ErrNotFound, got %v", err)
	}
}
