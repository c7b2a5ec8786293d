package analytics

import (
	"fmt"
	"time"

	"household-expenses/internal/models"
)

// Period selects which month of data a dashboard view covers
type Period string

const (
	PeriodCurrent  Period = "current"
	PeriodPrevious Period = "previous"
	PeriodAll      Period = "all"
)

func ParsePeriod(raw string) (Period, error) {
	switch Period(raw) {
	case "":
		return PeriodCurrent, nil
	case PeriodCurrent, PeriodPrevious, PeriodAll:
		return Period(raw), nil
	default:
		return "", fmt.Errorf("unknown period %q", raw)
	}
}

// Bounds returns the first and last day of the period relative to now. ok is false for PeriodAll.
func (p Period) Bounds(now time.Time) (from, to time.Time, ok bool) {
	start := models.MonthStart(now)
	switch p {
	case PeriodCurrent:
		return start, start.AddDate(0, 1, -1), true
	case PeriodPrevious:
		prev := start.AddDate(0, -1, 0)
		return prev, start.AddDate(0, 0, -1), true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// ComparisonBounds returns the month before the period's month, used for month-over-month change.
// For PeriodAll the comparison month is the one before now's month.
func (p Period) ComparisonBounds(now time.Time) (from, to time.Time) {
	ref := models.MonthStart(now)
	if p == PeriodPrevious {
		ref = ref.AddDate(0, -1, 0)
	}
	return ref.AddDate(0, -1, 0), ref.AddDate(0, 0, -1)
}

// BudgetMonth is the month whose budgets a dashboard for p measures. PeriodAll uses now's month.
func (p Period) BudgetMonth(now time.Time) time.Time {
	start := models.MonthStart(now)
	if p == PeriodPrevious {
		return start.AddDate(0, -1, 0)
	}
	return start
}

// ExpensesInRange keeps expenses dated within [from, to]
func ExpensesInRange(expenses []models.Expense, from, to time.Time) []models.Expense {
	out := make([]models.Expense, 0, len(expenses))
	for i := range expenses {
		if expenses[i].InRange(from, to) {
			out = append(out, expenses[i])
		}
	}
	return out
}

// ExpensesForPeriod applies Period.Bounds to expenses
func ExpensesForPeriod(expenses []models.Expense, p Period, now time.Time) []models.Expense {
	from, to, ok := p.Bounds(now)
	if !ok {
		return expenses
	}
	return ExpensesInRange(expenses, from, to)
}

// ExpensesForMember keeps expenses member paid for or benefits from. A nil member keeps everything.
func ExpensesForMember(expenses []models.Expense, member *models.FamilyMember) []models.Expense {
	if member == nil {
		return expenses
	}
	out := make([]models.Expense, 0, len(expenses))
	for i := range expenses {
		if expenses[i].Involves(*member) {
			out = append(out, expenses[i])
		}
	}
	return out
}

// TransactionsForPeriod applies Period.Bounds to bank transactions
func TransactionsForPeriod(transactions []models.BankTransaction, p Period, now time.Time) []models.BankTransaction {
	from, to, ok := p.Bounds(now)
	if !ok {
		return transactions
	}
	out := make([]models.BankTransaction, 0, len(transactions))
	for i := range transactions {
		d := models.NormalizeDate(transactions[i].Date)
		if !d.Before(from) && !d.After(to) {
			out = append(out, transactions[i])
		}
	}
	return out
}

// RecentDeposits returns up to n deposits from a list already ordered newest first
func RecentDeposits(transactions []models.BankTransaction, n int) []models.BankTransaction {
	out := make([]models.BankTransaction, 0, n)
	for i := range transactions {
		if len(out) == n {
			break
		}
		if transactions[i].IsDeposit() {
			out = append(out, transactions[i])
		}
	}
	return out
}
