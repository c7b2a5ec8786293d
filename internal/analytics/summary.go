package analytics

import (
	"household-expenses/internal/models"

	"github.com/shopspring/decimal"
)

// Summary holds the headline dashboard numbers for one set of expenses
type Summary struct {
	TotalSpend         decimal.Decimal `json:"total_spend"`
	PreviousSpend      decimal.Decimal `json:"previous_spend"`
	ChangePercent      float64         `json:"change_percent"`
	SharedTotal        decimal.Decimal `json:"shared_total"`
	SharedPercent      float64         `json:"shared_percent"`
	UniqueContributors int             `json:"unique_contributors"`
	ExpenseCount       int             `json:"expense_count"`
	AveragePerExpense  decimal.Decimal `json:"average_per_expense"`
}

// Summarize compares current against the preceding period. ChangePercent is 0 when the
// previous period had no spend.
func Summarize(current, previous []models.Expense) Summary {
	s := Summary{
		TotalSpend:        decimal.Zero,
		SharedTotal:       decimal.Zero,
		AveragePerExpense: decimal.Zero,
		PreviousSpend:     TotalSpend(previous),
		ExpenseCount:      len(current),
	}

	payers := make(map[models.FamilyMember]struct{})
	for i := range current {
		s.TotalSpend = s.TotalSpend.Add(current[i].Amount)
		if current[i].IsShared() {
			s.SharedTotal = s.SharedTotal.Add(current[i].Amount)
		}
		payers[current[i].PaidBy] = struct{}{}
	}
	s.UniqueContributors = len(payers)

	if s.PreviousSpend.IsPositive() {
		s.ChangePercent = percentOf(s.TotalSpend.Sub(s.PreviousSpend), s.PreviousSpend)
	}

	s.SharedPercent = percentOf(s.SharedTotal, s.TotalSpend)

	if s.ExpenseCount > 0 {
		s.AveragePerExpense = s.TotalSpend.Div(decimal.NewFromInt(int64(s.ExpenseCount))).Round(2)
	}

	return s
}
