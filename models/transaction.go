package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Transaction struct {
	ID          int             `json:"id" db:"id"`
	UserID      int             `json:"user_id" db:"user_id"`
	CategoryID  int             `json:"category_id" db:"category_id"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Description string          `json:"description" db:"description"`
	Date        time.Time       `json:"transaction_date" db:"transaction_date"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`

	// resolved from the categories join on list queries
	CategoryName string `json:"category_name,omitempty"`
	CategoryType string `json:"category_type,omitempty"`
}

// TransactionFilter narrows a ledger listing. Month and Year are always set
// (defaulted to the current month by the handler); CategoryID is optional.
type TransactionFilter struct {
	Month      int
	Year       int
	CategoryID int
}
