package analytics

import (
	"testing"

	"household-expenses/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestBalance(t *testing.T) {
	march := day(2024, 3, 10)

	tests := []struct {
		name         string
		transactions []models.BankTransaction
		expenses     []models.Expense
		expected     int64
	}{
		{
			name:     "empty inputs",
			expected: 0,
		},
		{
			name: "deposits minus withdrawals minus expenses",
			transactions: []models.BankTransaction{
				deposit(600, march), deposit(400, march), withdrawal(200, march),
			},
			expenses: []models.Expense{
				expense(100, models.CategoryFood, models.MemberFather, models.BeneficiaryShared, march),
				expense(200, models.CategoryFuel, models.MemberMother, models.BeneficiaryShared, march),
			},
			expected: 500,
		},
		{
			name:         "deficit is not clamped",
			transactions: []models.BankTransaction{deposit(100, march)},
			expenses: []models.Expense{
				expense(350, models.CategoryMedical, models.MemberFather, models.BeneficiaryShared, march),
			},
			expected: -250,
		},
		{
			name: "expenses only",
			expenses: []models.Expense{
				expense(75, models.CategoryMisc, models.MemberKids, models.Beneficiary(models.MemberKids), march),
			},
			expected: -75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, dec(tt.expected).Equal(Balance(tt.transactions, tt.expenses)),
				"expected %d, got %s", tt.expected, Balance(tt.transactions, tt.expenses))
		})
	}
}

func TestBalance_OrderIndependent(t *testing.T) {
	d := day(2024, 1, 1)
	txs := []models.BankTransaction{deposit(1000, d), withdrawal(200, d), deposit(50, d)}
	reversed := []models.BankTransaction{txs[2], txs[1], txs[0]}
	exp := []models.Expense{expense(300, models.CategoryFood, models.MemberFather, models.BeneficiaryShared, d)}

	assert.True(t, Balance(txs, exp).Equal(Balance(reversed, exp)))
}

func TestReconcile(t *testing.T) {
	d := day(2024, 1, 1)
	s := Reconcile(
		[]models.BankTransaction{deposit(1000, d), withdrawal(200, d)},
		[]models.Expense{expense(300, models.CategoryFood, models.MemberFather, models.BeneficiaryShared, d)},
	)

	assert.True(t, dec(1000).Equal(s.TotalDeposits))
	assert.True(t, dec(200).Equal(s.TotalWithdrawals))
	assert.True(t, dec(300).Equal(s.TotalExpenses))
	assert.True(t, dec(500).Equal(s.Balance))
	assert.Equal(t, 1, s.DepositCount)
	assert.Equal(t, 1, s.WithdrawalCount)
}
