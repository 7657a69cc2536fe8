package models

import "time"

const (
	CategoryTypeIncome  = "income"
	CategoryTypeExpense = "expense"
)

type Category struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidCategoryType reports whether t is one of the two closed category types.
// Validated once at the request boundary, not re-checked per query.
func ValidCategoryType(t string) bool {
	return t == CategoryTypeIncome || t == CategoryTypeExpense
}

// DefaultCategories are seeded for every new user at registration:
// 4 income and 8 expense buckets.
var DefaultCategories = []Category{
	{Name: "Salary", Type: CategoryTypeIncome},
	{Name: "Freelance", Type: CategoryTypeIncome},
	{Name: "Business", Type: CategoryTypeIncome},
	{Name: "Investment", Type: CategoryTypeIncome},
	{Name: "Food & Dining", Type: CategoryTypeExpense},
	{Name: "Transportation", Type: CategoryTypeExpense},
	{Name: "Shopping", Type: CategoryTypeExpense},
	{Name: "Bills & Utilities", Type: CategoryTypeExpense},
	{Name: "Healthcare", Type: CategoryTypeExpense},
	{Name: "Entertainment", Type: CategoryTypeExpense},
	{Name: "Education", Type: CategoryTypeExpense},
	{Name: "Rent", Type: CategoryTypeExpense},
}
