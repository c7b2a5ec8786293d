package models

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpenseRecord_RoundTrip(t *testing.T) {
	e := validExpense()
	e.Notes = ""

	rec := NewExpenseRecord(&e)
	assert.Nil(t, rec.Notes, "empty notes are stored as NULL")
	require.NotNil(t, rec.SubCategory)

	back, err := rec.ToExpense()
	require.NoError(t, err)
	assert.Equal(t, e.ID, back.ID)
	assert.Equal(t, e.Category, back.Category)
	assert.Equal(t, e.SubCategory, back.SubCategory)
	assert.True(t, e.Amount.Equal(back.Amount))
	assert.Equal(t, e.DateKey(), back.DateKey())
}

func TestExpenseRecord_DecodeFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *ExpenseRecord)
		field  string
	}{
		{"unknown category", func(r *ExpenseRecord) { r.Category = "Travel" }, "category"},
		{"foreign sub-category", func(r *ExpenseRecord) { s := "Diesel"; r.SubCategory = &s }, "sub_category"},
		{"unknown payer", func(r *ExpenseRecord) { r.PaidBy = "Shared" }, "paid_by"},
		{"unknown beneficiary", func(r *ExpenseRecord) { r.ForWhom = "" }, "for_whom"},
		{"missing date", func(r *ExpenseRecord) { r.Date = time.Time{} }, "date"},
		{"negative amount", func(r *ExpenseRecord) { r.Amount = decimal.NewFromInt(-5) }, "amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validExpense()
			rec := NewExpenseRecord(&e)
			tt.mutate(rec)

			_, err := rec.ToExpense()
			require.Error(t, err)

			var decodeErr *DecodeError
			require.True(t, errors.As(err, &decodeErr))
			assert.Equal(t, "expenses", decodeErr.Table)
			assert.Equal(t, tt.field, decodeErr.Field)
			assert.Equal(t, e.ID, decodeErr.ID)
		})
	}
}

func TestBankTransactionRecord_Decode(t *testing.T) {
	tx := BankTransaction{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		Amount:     decimal.NewFromInt(5000),
		Type:       BankTransactionDeposit,
		FromMember: "Other",
		Date:       time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}

	back, err := NewBankTransactionRecord(&tx).ToBankTransaction()
	require.NoError(t, err)
	assert.Equal(t, "Other", back.FromMember)
	assert.Empty(t, back.Description)

	rec := NewBankTransactionRecord(&tx)
	rec.Type = "refund"
	_, err = rec.ToBankTransaction()
	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "type", decodeErr.Field)
	assert.ErrorIs(t, err, ErrInvalidBankTransactionType)

	rec = NewBankTransactionRecord(&tx)
	rec.Amount = decimal.Zero
	_, err = rec.ToBankTransaction()
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestBudgetRecord_Decode(t *testing.T) {
	b := Budget{ID: uuid.New(), Amount: decimal.NewFromInt(100), Month: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)}

	rec := NewBudgetRecord(&b)
	assert.Nil(t, rec.Category)
	back, err := rec.ToBudget()
	require.NoError(t, err)
	assert.True(t, back.IsOverall())

	bad := "Holidays"
	rec.Category = &bad
	_, err = rec.ToBudget()
	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "category", decodeErr.Field)

	rec = NewBudgetRecord(&b)
	rec.Month = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	_, err = rec.ToBudget()
	assert.ErrorIs(t, err, ErrInvalidMonth)
}
