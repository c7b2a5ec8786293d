package analytics

import (
	"testing"

	"household-expenses/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSummarize_Example(t *testing.T) {
	d := day(2024, 3, 1)
	current := []models.Expense{
		expense(100, models.CategoryFood, models.MemberFather, models.BeneficiaryShared, d),
		expense(200, models.CategoryFood, models.MemberMother, models.Beneficiary(models.MemberFather), d),
	}

	s := Summarize(current, nil)

	assert.True(t, dec(300).Equal(s.TotalSpend))
	assert.True(t, dec(100).Equal(s.SharedTotal))
	assert.InDelta(t, 33.3333, s.SharedPercent, 0.001)
	assert.Equal(t, 2, s.UniqueContributors)
	assert.Equal(t, 2, s.ExpenseCount)
	assert.True(t, dec(150).Equal(s.AveragePerExpense))
	assert.Equal(t, 0.0, s.ChangePercent)
}

func TestSummarize_ChangePercent(t *testing.T) {
	d := day(2024, 3, 1)
	prev := day(2024, 2, 1)

	tests := []struct {
		name     string
		current  int64
		previous []int64
		expected float64
	}{
		{"no previous spend is guarded", 500, nil, 0},
		{"previous zero amounts are guarded", 500, []int64{0}, 0},
		{"increase", 150, []int64{100}, 50},
		{"decrease", 50, []int64{60, 40}, -50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current := []models.Expense{expense(tt.current, models.CategoryFood, models.MemberFather, models.BeneficiaryShared, d)}
			var previous []models.Expense
			for _, a := range tt.previous {
				previous = append(previous, expense(a, models.CategoryFood, models.MemberFather, models.BeneficiaryShared, prev))
			}
			assert.InDelta(t, tt.expected, Summarize(current, previous).ChangePercent, 0.0001)
		})
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, nil)
	assert.True(t, s.TotalSpend.IsZero())
	assert.True(t, s.AveragePerExpense.IsZero())
	assert.Equal(t, 0.0, s.SharedPercent)
	assert.Equal(t, 0, s.UniqueContributors)
}
