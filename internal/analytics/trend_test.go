package analytics

import (
	"testing"
	"time"

	"household-expenses/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyTrend_EmptyInput(t *testing.T) {
	points := DailyTrend(nil, day(2024, 3, 30))

	require.Len(t, points, TrendDays)
	assert.Equal(t, "2024-03-01", points[0].Date)
	assert.Equal(t, "2024-03-30", points[TrendDays-1].Date)
	for _, p := range points {
		assert.True(t, p.Amount.IsZero())
	}
}

func TestDailyTrend_AttributesByDateKey(t *testing.T) {
	today := time.Date(2024, 3, 30, 18, 45, 0, 0, time.UTC)
	expenses := []models.Expense{
		expense(100, models.CategoryFood, models.MemberFather, models.BeneficiaryShared, day(2024, 3, 30)),
		expense(50, models.CategoryFood, models.MemberMother, models.BeneficiaryShared, day(2024, 3, 30)),
		expense(70, models.CategoryFuel, models.MemberFather, models.BeneficiaryShared, day(2024, 3, 1)),
		expense(999, models.CategoryFuel, models.MemberFather, models.BeneficiaryShared, day(2024, 2, 29)),
		expense(999, models.CategoryFuel, models.MemberFather, models.BeneficiaryShared, day(2024, 3, 31)),
	}

	points := DailyTrend(expenses, today)

	require.Len(t, points, TrendDays)
	assert.True(t, dec(70).Equal(points[0].Amount))
	assert.True(t, dec(150).Equal(points[TrendDays-1].Amount))

	sum := dec(0)
	for i, p := range points {
		sum = sum.Add(p.Amount)
		if i > 0 {
			assert.Less(t, points[i-1].Date, p.Date, "points must be chronological")
		}
	}
	assert.True(t, dec(220).Equal(sum), "out-of-window expenses are ignored")
}

func TestDailyTrendWindow_CustomLength(t *testing.T) {
	points := DailyTrendWindow(nil, day(2024, 1, 3), 7)
	require.Len(t, points, 7)
	assert.Equal(t, "2023-12-28", points[0].Date)

	assert.Len(t, DailyTrendWindow(nil, day(2024, 1, 3), 0), TrendDays)
}
