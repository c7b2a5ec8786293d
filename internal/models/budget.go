package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidMonth         = errors.New("budget month must be the first day of a month")
	ErrNegativeBudgetAmount = errors.New("budget amount cannot be negative")
)

// Budget is a monthly spending target. A nil Category marks the overall budget.
type Budget struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Category  *Category       `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Month     time.Time       `json:"month"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (b *Budget) Validate() error {
	if b.Category != nil && !b.Category.IsValid() {
		return ErrInvalidCategory
	}

	if b.Amount.IsNegative() {
		return ErrNegativeBudgetAmount
	}

	if b.Month.IsZero() || b.Month.Day() != 1 {
		return ErrInvalidMonth
	}

	return nil
}

// IsOverall reports whether the budget bounds total monthly spend
func (b *Budget) IsOverall() bool {
	return b.Category == nil
}

// CategoryLabel returns the category name, or "Overall" for the overall budget
func (b *Budget) CategoryLabel() string {
	if b.Category == nil {
		return "Overall"
	}
	return string(*b.Category)
}

// MonthKey returns the budget period as YYYY-MM
func (b *Budget) MonthKey() string {
	return b.Month.Format(MonthLayout)
}

// CategoryPtr is a convenience for building category-scoped budgets
func CategoryPtr(c Category) *Category {
	return &c
}
