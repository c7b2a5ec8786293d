// Package analytics derives dashboard figures from expense, budget and bank transaction lists.
// Every function is pure: no I/O, no retained state, and defined for empty input.
package analytics

import (
	"household-expenses/internal/models"

	"github.com/shopspring/decimal"
)

// BalanceSummary breaks a bank balance down into its components
type BalanceSummary struct {
	TotalDeposits    decimal.Decimal `json:"total_deposits"`
	TotalWithdrawals decimal.Decimal `json:"total_withdrawals"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	Balance          decimal.Decimal `json:"balance"`
	DepositCount     int             `json:"deposit_count"`
	WithdrawalCount  int             `json:"withdrawal_count"`
}

// Balance returns deposits minus withdrawals minus expenses. Negative results are kept as is.
func Balance(transactions []models.BankTransaction, expenses []models.Expense) decimal.Decimal {
	return Reconcile(transactions, expenses).Balance
}

// Reconcile computes the balance together with its deposit, withdrawal and expense totals
func Reconcile(transactions []models.BankTransaction, expenses []models.Expense) BalanceSummary {
	s := BalanceSummary{
		TotalDeposits:    decimal.Zero,
		TotalWithdrawals: decimal.Zero,
	}

	for i := range transactions {
		switch transactions[i].Type {
		case models.BankTransactionDeposit:
			s.TotalDeposits = s.TotalDeposits.Add(transactions[i].Amount)
			s.DepositCount++
		case models.BankTransactionWithdrawal:
			s.TotalWithdrawals = s.TotalWithdrawals.Add(transactions[i].Amount)
			s.WithdrawalCount++
		}
	}

	s.TotalExpenses = TotalSpend(expenses)
	s.Balance = s.TotalDeposits.Sub(s.TotalWithdrawals).Sub(s.TotalExpenses)
	return s
}

// TotalSpend sums expense amounts
func TotalSpend(expenses []models.Expense) decimal.Decimal {
	total := decimal.Zero
	for i := range expenses {
		total = total.Add(expenses[i].Amount)
	}
	return total
}

// percentOf returns part/total*100, or 0 when total is zero
func percentOf(part, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}
	return part.Div(total).Mul(decimal.NewFromInt(100)).InexactFloat64()
}
