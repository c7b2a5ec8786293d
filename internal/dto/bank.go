package dto

import (
	"time"

	"household-expenses/internal/analytics"
	"household-expenses/internal/models"
)

// CreateBankTransactionRequest records a deposit or withdrawal. Date defaults to today.
type CreateBankTransactionRequest struct {
	Amount      string `json:"amount" validate:"required,positive_amount"`
	Type        string `json:"type" validate:"required,bank_tx_type"`
	Description string `json:"description" validate:"max=255"`
	FromMember  string `json:"from_member" validate:"omitempty,deposit_source"`
	Date        string `json:"date" validate:"omitempty,date"`
}

// BankTransactionResponse is a stored deposit or withdrawal
type BankTransactionResponse struct {
	ID              string    `json:"id"`
	Amount          string    `json:"amount"`
	FormattedAmount string    `json:"formatted_amount"`
	Type            string    `json:"type"`
	Description     string    `json:"description,omitempty"`
	FromMember      string    `json:"from_member,omitempty"`
	Date            string    `json:"date"`
	CreatedAt       time.Time `json:"created_at"`
}

// ListBankTransactionsResponse is the bank transactions of a period
type ListBankTransactionsResponse struct {
	Period       string                    `json:"period"`
	Transactions []BankTransactionResponse `json:"transactions"`
	Count        int                       `json:"count"`
}

// BankBalanceResponse summarises the household account. Balance is lifetime; the totals cover Period.
type BankBalanceResponse struct {
	Period           string                    `json:"period"`
	Balance          string                    `json:"balance"`
	FormattedBalance string                    `json:"formatted_balance"`
	TotalDeposits    string                    `json:"total_deposits"`
	TotalWithdrawals string                    `json:"total_withdrawals"`
	TotalExpenses    string                    `json:"total_expenses"`
	TransactionCount int                       `json:"transaction_count"`
	RecentDeposits   []BankTransactionResponse `json:"recent_deposits"`
}

func NewBankTransactionResponse(t models.BankTransaction, currency string) BankTransactionResponse {
	return BankTransactionResponse{
		ID:              t.ID.String(),
		Amount:          t.Amount.StringFixed(2),
		FormattedAmount: models.FormatCurrency(t.Amount, currency),
		Type:            string(t.Type),
		Description:     t.Description,
		FromMember:      t.FromMember,
		Date:            models.DateKey(t.Date),
		CreatedAt:       t.CreatedAt,
	}
}

func NewBankTransactionResponses(transactions []models.BankTransaction, currency string) []BankTransactionResponse {
	out := make([]BankTransactionResponse, len(transactions))
	for i := range transactions {
		out[i] = NewBankTransactionResponse(transactions[i], currency)
	}
	return out
}

// NewBankBalanceResponse renders a lifetime balance with the period's deposit and withdrawal totals
func NewBankBalanceResponse(period analytics.Period, lifetime, periodSummary analytics.BalanceSummary, count int, recent []models.BankTransaction, currency string) BankBalanceResponse {
	return BankBalanceResponse{
		Period:           string(period),
		Balance:          lifetime.Balance.StringFixed(2),
		FormattedBalance: models.FormatCurrency(lifetime.Balance, currency),
		TotalDeposits:    periodSummary.TotalDeposits.StringFixed(2),
		TotalWithdrawals: periodSummary.TotalWithdrawals.StringFixed(2),
		TotalExpenses:    lifetime.TotalExpenses.StringFixed(2),
		TransactionCount: count,
		RecentDeposits:   NewBankTransactionResponses(recent, currency),
	}
}
