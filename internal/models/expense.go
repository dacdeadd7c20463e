package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ExpenseCategory string

const (
	CategoryFood          ExpenseCategory = "food"
	CategoryTransport     ExpenseCategory = "transport"
	CategoryUtilities     ExpenseCategory = "utilities"
	CategoryShopping      ExpenseCategory = "shopping"
	CategoryEntertainment ExpenseCategory = "entertainment"
	CategoryHealthcare    ExpenseCategory = "healthcare"
	CategoryEducation     ExpenseCategory = "education"
	CategoryOther         ExpenseCategory = "other"
)

// ValidCategory reports whether s names a known expense category.
func ValidCategory(s string) bool {
	switch ExpenseCategory(s) {
	case CategoryFood, CategoryTransport, CategoryUtilities, CategoryShopping,
		CategoryEntertainment, CategoryHealthcare, CategoryEducation, CategoryOther:
		return true
	}
	return false
}

// Expense is one recorded spending. For micro expenses DailyCeiling holds
// the limit returned by the spending policy at recording time; it is kept
// alongside the expense and never re-validated afterwards.
type Expense struct {
	ID           uuid.UUID       `db:"id"`
	UserID       uuid.UUID       `db:"user_id"`
	Description  string          `db:"description"`
	Category     ExpenseCategory `db:"category"`
	Amount       decimal.Decimal `db:"amount"`
	Currency     string          `db:"currency"`
	Micro        bool            `db:"micro"`
	DailyCeiling decimal.Decimal `db:"daily_ceiling"`
	OccurredAt   time.Time       `db:"occurred_at"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}
