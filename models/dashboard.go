package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlySummary is one row of the last-six-months aggregate: income and
// expense totals for a single truncated calendar month.
type MonthlySummary struct {
	Month        time.Time       `json:"month"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
}

// BudgetAlert pairs a budget ceiling with the realized spend for its category
// in the budget's month, so the caller can flag overage.
type BudgetAlert struct {
	Name   string          `json:"name"`
	Spent  decimal.Decimal `json:"spent"`
	Budget decimal.Decimal `json:"budget"`
}

// CategorySpend is the per-category total for the current month.
type CategorySpend struct {
	Name  string          `json:"name"`
	Type  string          `json:"type"`
	Total decimal.Decimal `json:"total"`
}

// Dashboard bundles the four independent aggregates rendered on the home view.
type Dashboard struct {
	Summary            []MonthlySummary `json:"summary"`
	BudgetAlerts       []BudgetAlert    `json:"budget_alerts"`
	CategorySpend      []CategorySpend  `json:"category_spend"`
	RecentTransactions []Transaction    `json:"recent_transactions"`
	CurrentSummary     MonthlySummary   `json:"current_summary"`
	CurrentMonth       int              `json:"current_month"`
	CurrentYear        int              `json:"current_year"`
}

// CurrentMonthSummary picks the entry matching (year, month) of now from the
// trailing-months aggregate. The comparison is on both year and month to avoid
// cross-year aliasing when two years share a month number in the window. A
// missing entry means no activity yet this month and yields zero totals.
func CurrentMonthSummary(summary []MonthlySummary, now time.Time) MonthlySummary {
	for _, s := range summary {
		if s.Month.Year() == now.Year() && s.Month.Month() == now.Month() {
			return s
		}
	}
	return MonthlySummary{
		Month:        time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC),
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}
}
