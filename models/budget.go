package models

import "github.com/shopspring/decimal"

type Budget struct {
	ID         int             `json:"id" db:"id"`
	UserID     int             `json:"user_id" db:"user_id"`
	CategoryID int             `json:"category_id" db:"category_id"`
	Month      int             `json:"month" db:"month"`
	Year       int             `json:"year" db:"year"`
	Amount     decimal.Decimal `json:"amount" db:"amount"`

	// resolved on list queries
	CategoryName string          `json:"category_name,omitempty"`
	Spent        decimal.Decimal `json:"spent"`
}
