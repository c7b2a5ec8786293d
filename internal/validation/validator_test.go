package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type expenseInput struct {
	Date     string `json:"date" validate:"required,date"`
	Category string `json:"category" validate:"required,category"`
	Amount   string `json:"amount" validate:"required,amount"`
	PaidBy   string `json:"paid_by" validate:"required,family_member"`
	ForWhom  string `json:"for_whom" validate:"required,beneficiary"`
}

type depositInput struct {
	Amount     string `json:"amount" validate:"required,positive_amount"`
	Type       string `json:"type" validate:"required,bank_tx_type"`
	FromMember string `json:"from_member" validate:"omitempty,deposit_source"`
}

type passwordInput struct {
	Password string `json:"password" validate:"required,min=8,password"`
	Month    string `json:"month" validate:"omitempty,month"`
}

func validExpense() expenseInput {
	return expenseInput{
		Date:     "2025-03-10",
		Category: "House Maintenance",
		Amount:   "1500.50",
		PaidBy:   "Saif Wife",
		ForWhom:  "Shared",
	}
}

func TestValidator_ExpenseRules(t *testing.T) {
	v := NewValidator()

	require.NoError(t, v.Struct(validExpense()))

	testCases := []struct {
		name   string
		mutate func(*expenseInput)
		field  string
	}{
		{"bad date", func(in *expenseInput) { in.Date = "10/03/2025" }, "date"},
		{"unknown category", func(in *expenseInput) { in.Category = "Travel" }, "category"},
		{"negative amount", func(in *expenseInput) { in.Amount = "-1" }, "amount"},
		{"three decimals", func(in *expenseInput) { in.Amount = "1.234" }, "amount"},
		{"not a number", func(in *expenseInput) { in.Amount = "abc" }, "amount"},
		{"shared cannot pay", func(in *expenseInput) { in.PaidBy = "Shared" }, "paid_by"},
		{"unknown beneficiary", func(in *expenseInput) { in.ForWhom = "Neighbour" }, "for_whom"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in := validExpense()
			tc.mutate(&in)

			fields := FieldErrors(v.Struct(in))
			require.NotNil(t, fields)
			assert.Contains(t, fields, tc.field)
		})
	}
}

func TestValidator_ZeroAmountAllowedForExpenses(t *testing.T) {
	in := validExpense()
	in.Amount = "0"
	assert.NoError(t, NewValidator().Struct(in))
}

func TestValidator_DepositRules(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Struct(depositInput{Amount: "100", Type: "deposit", FromMember: "Other"}))
	assert.NoError(t, v.Struct(depositInput{Amount: "0.01", Type: "withdrawal"}))

	fields := FieldErrors(v.Struct(depositInput{Amount: "0", Type: "transfer", FromMember: "Neighbour"}))
	assert.Equal(t, "must be greater than 0 with up to 2 decimal places", fields["amount"])
	assert.Equal(t, "must be deposit or withdrawal", fields["type"])
	assert.Equal(t, "must be a family member or Other", fields["from_member"])
}

func TestValidator_PasswordAndMonth(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Struct(passwordInput{Password: "household1", Month: "2025-03"}))

	fields := FieldErrors(v.Struct(passwordInput{Password: "short1"}))
	assert.Equal(t, "must be at least 8 characters long", fields["password"])

	fields = FieldErrors(v.Struct(passwordInput{Password: "lettersonly"}))
	assert.Equal(t, "must contain at least one letter and one digit", fields["password"])

	fields = FieldErrors(v.Struct(passwordInput{Password: "household1", Month: "March"}))
	assert.Equal(t, "must be a month in YYYY-MM format", fields["month"])
}

func TestFieldErrors_NonValidationError(t *testing.T) {
	assert.Nil(t, FieldErrors(errors.New("boom")))
	assert.Nil(t, FieldErrors(nil))
}

func TestGetValidator_Shared(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}
