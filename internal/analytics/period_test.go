package analytics

import (
	"testing"
	"time"

	"household-expenses/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("")
	require.NoError(t, err)
	assert.Equal(t, PeriodCurrent, p)

	p, err = ParsePeriod("previous")
	require.NoError(t, err)
	assert.Equal(t, PeriodPrevious, p)

	_, err = ParsePeriod("last-year")
	assert.Error(t, err)
}

func TestPeriodBounds(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	from, to, ok := PeriodCurrent.Bounds(now)
	require.True(t, ok)
	assert.Equal(t, day(2024, 3, 1), from)
	assert.Equal(t, day(2024, 3, 31), to)

	from, to, ok = PeriodPrevious.Bounds(now)
	require.True(t, ok)
	assert.Equal(t, day(2024, 2, 1), from)
	assert.Equal(t, day(2024, 2, 29), to)

	_, _, ok = PeriodAll.Bounds(now)
	assert.False(t, ok)

	from, to = PeriodPrevious.ComparisonBounds(now)
	assert.Equal(t, day(2024, 1, 1), from)
	assert.Equal(t, day(2024, 1, 31), to)

	from, to = PeriodCurrent.ComparisonBounds(now)
	assert.Equal(t, day(2024, 2, 1), from)
	assert.Equal(t, day(2024, 2, 29), to)
}

func TestExpenseFilters(t *testing.T) {
	now := day(2024, 3, 15)
	expenses := []models.Expense{
		expense(10, models.CategoryFood, models.MemberFather, models.BeneficiaryShared, day(2024, 3, 2)),
		expense(20, models.CategoryFood, models.MemberMother, models.Beneficiary(models.MemberDaughter), day(2024, 2, 20)),
		expense(30, models.CategoryFood, models.MemberSaif, models.Beneficiary(models.MemberFather), day(2024, 3, 31)),
	}

	assert.Len(t, ExpensesForPeriod(expenses, PeriodCurrent, now), 2)
	assert.Len(t, ExpensesForPeriod(expenses, PeriodPrevious, now), 1)
	assert.Len(t, ExpensesForPeriod(expenses, PeriodAll, now), 3)

	father := models.MemberFather
	assert.Len(t, ExpensesForMember(expenses, &father), 2, "matches payer or beneficiary")
	daughter := models.MemberDaughter
	assert.Len(t, ExpensesForMember(expenses, &daughter), 1)
	assert.Len(t, ExpensesForMember(expenses, nil), 3)
}

func TestTransactionsForPeriodAndRecentDeposits(t *testing.T) {
	now := day(2024, 3, 15)
	txs := []models.BankTransaction{
		deposit(100, day(2024, 3, 10)),
		withdrawal(40, day(2024, 3, 9)),
		deposit(200, day(2024, 3, 1)),
		deposit(300, day(2024, 2, 28)),
		deposit(400, day(2024, 2, 1)),
	}

	assert.Len(t, TransactionsForPeriod(txs, PeriodCurrent, now), 3)

	recent := RecentDeposits(txs, 3)
	require.Len(t, recent, 3)
	assert.True(t, dec(100).Equal(recent[0].Amount))
	assert.True(t, dec(300).Equal(recent[2].Amount))
}
