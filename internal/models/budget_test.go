package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudget_Validate(t *testing.T) {
	march := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	bad := Category("Travel")

	tests := []struct {
		name    string
		budget  Budget
		wantErr error
	}{
		{"overall budget", Budget{Amount: decimal.NewFromInt(50000), Month: march}, nil},
		{"category budget", Budget{Category: CategoryPtr(CategoryFuel), Amount: decimal.NewFromInt(8000), Month: march}, nil},
		{"zero amount allowed", Budget{Amount: decimal.Zero, Month: march}, nil},
		{"unknown category", Budget{Category: &bad, Amount: decimal.NewFromInt(1), Month: march}, ErrInvalidCategory},
		{"negative amount", Budget{Amount: decimal.NewFromInt(-1), Month: march}, ErrNegativeBudgetAmount},
		{"mid-month period", Budget{Amount: decimal.NewFromInt(1), Month: march.AddDate(0, 0, 4)}, ErrInvalidMonth},
		{"missing period", Budget{Amount: decimal.NewFromInt(1)}, ErrInvalidMonth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.budget.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBudget_Labels(t *testing.T) {
	overall := Budget{Month: time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)}
	assert.True(t, overall.IsOverall())
	assert.Equal(t, "Overall", overall.CategoryLabel())
	assert.Equal(t, "2024-11", overall.MonthKey())

	kids := Budget{Category: CategoryPtr(CategoryKids)}
	assert.False(t, kids.IsOverall())
	assert.Equal(t, "Kids", kids.CategoryLabel())
}

func TestBankTransaction_Validate(t *testing.T) {
	today := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		tx      BankTransaction
		wantErr error
	}{
		{"deposit from member", BankTransaction{Type: BankTransactionDeposit, Amount: decimal.NewFromInt(100), FromMember: "Father", Date: today}, nil},
		{"deposit from other", BankTransaction{Type: BankTransactionDeposit, Amount: decimal.NewFromInt(100), FromMember: "Other", Date: today}, nil},
		{"withdrawal", BankTransaction{Type: BankTransactionWithdrawal, Amount: decimal.NewFromInt(100), Date: today}, nil},
		{"zero amount", BankTransaction{Type: BankTransactionDeposit, Amount: decimal.Zero, Date: today}, ErrInvalidAmount},
		{"bad type", BankTransaction{Type: "transfer", Amount: decimal.NewFromInt(1), Date: today}, ErrInvalidBankTransactionType},
		{"source on withdrawal", BankTransaction{Type: BankTransactionWithdrawal, Amount: decimal.NewFromInt(1), FromMember: "Father", Date: today}, ErrSourceOnWithdrawal},
		{"unknown source", BankTransaction{Type: BankTransactionDeposit, Amount: decimal.NewFromInt(1), FromMember: "Neighbour", Date: today}, ErrInvalidDepositSource},
		{"missing date", BankTransaction{Type: BankTransactionDeposit, Amount: decimal.NewFromInt(1)}, ErrMissingDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tx.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseBankTransactionType(t *testing.T) {
	deposit, err := ParseBankTransactionType("deposit")
	require.NoError(t, err)
	assert.Equal(t, BankTransactionDeposit, deposit)

	withdrawal, err := ParseBankTransactionType("withdrawal")
	require.NoError(t, err)
	assert.True(t, (&BankTransaction{Type: withdrawal}).IsWithdrawal())

	for _, raw := range []string{"", "Deposit", "transfer"} {
		_, err := ParseBankTransactionType(raw)
		assert.ErrorIs(t, err, ErrInvalidBankTransactionType, raw)
	}
}
