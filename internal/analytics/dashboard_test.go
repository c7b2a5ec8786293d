package analytics

import (
	"testing"

	"household-expenses/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dashboardFixture() DashboardInput {
	march := day(2024, 3, 1)
	saif := models.Beneficiary(models.MemberSaif)

	return DashboardInput{
		Expenses: []models.Expense{
			expense(1000, models.CategoryFood, models.MemberFather, models.BeneficiaryShared, day(2024, 3, 14)),
			expense(500, models.CategoryFuel, models.MemberSaif, saif, day(2024, 3, 2)),
			expense(2000, models.CategoryGroceries, models.MemberMother, models.BeneficiaryShared, day(2024, 2, 20)),
			expense(300, models.CategoryFood, models.MemberFather, models.Beneficiary(models.MemberFather), day(2023, 12, 1)),
		},
		Budgets: []models.Budget{
			{Amount: dec(5000), Month: march},
			{Category: models.CategoryPtr(models.CategoryFood), Amount: dec(1000), Month: march},
		},
		Transactions: []models.BankTransaction{
			deposit(10000, day(2024, 3, 1)),
			withdrawal(1000, day(2024, 2, 10)),
		},
		Period: PeriodCurrent,
		Now:    day(2024, 3, 15),
	}
}

func TestBuildDashboard_CurrentPeriod(t *testing.T) {
	d := BuildDashboard(dashboardFixture())

	assert.Equal(t, PeriodCurrent, d.Period)
	assert.True(t, d.Summary.TotalSpend.Equal(dec(1500)))
	assert.True(t, d.Summary.PreviousSpend.Equal(dec(2000)))
	assert.InDelta(t, -25.0, d.Summary.ChangePercent, 0.001)
	assert.True(t, d.Summary.SharedTotal.Equal(dec(1000)))

	require.Len(t, d.Categories, 2)
	assert.Equal(t, models.CategoryFood, d.Categories[0].Name)
	assert.Equal(t, models.CategoryFuel, d.Categories[1].Name)

	require.Len(t, d.Members, 2)
	assert.Equal(t, models.MemberFather, d.Members[0].Name)

	require.Len(t, d.RecentExpenses, 2)
	assert.Equal(t, "2024-03-14", d.RecentExpenses[0].DateKey())
}

func TestBuildDashboard_TrendCoversAllExpenses(t *testing.T) {
	in := dashboardFixture()
	member := models.MemberSaif
	in.Member = &member

	d := BuildDashboard(in)

	require.Len(t, d.Trend, TrendDays)
	assert.Equal(t, "2024-02-15", d.Trend[0].Date)
	assert.Equal(t, "2024-03-15", d.Trend[TrendDays-1].Date)

	total := dec(0)
	for _, p := range d.Trend {
		total = total.Add(p.Amount)
	}
	// the December expense falls outside the window; the member filter does not apply
	assert.True(t, total.Equal(dec(3500)), total.String())
}

func TestBuildDashboard_BudgetsAndBalance(t *testing.T) {
	d := BuildDashboard(dashboardFixture())

	require.NotNil(t, d.Budgets.Overall)
	assert.True(t, d.Budgets.Overall.Spent.Equal(dec(1500)))
	assert.InDelta(t, 30.0, d.Budgets.Overall.Progress, 0.001)
	require.Len(t, d.Budgets.Categories, 1)
	assert.Equal(t, BudgetStatusOver, d.Budgets.Categories[0].Status)

	assert.True(t, d.Balance.Balance.Equal(dec(5200)), d.Balance.Balance.String())
}

func TestBuildDashboard_PreviousPeriodBudgets(t *testing.T) {
	february := day(2024, 2, 1)
	in := dashboardFixture()
	in.Period = PeriodPrevious
	in.Budgets = []models.Budget{
		{Amount: dec(4000), Month: february},
		{Category: models.CategoryPtr(models.CategoryGroceries), Amount: dec(1500), Month: february},
	}

	d := BuildDashboard(in)

	require.NotNil(t, d.Budgets.Overall)
	assert.True(t, d.Budgets.Overall.Spent.Equal(dec(2000)), d.Budgets.Overall.Spent.String())
	assert.InDelta(t, 50.0, d.Budgets.Overall.Progress, 0.001)
	require.Len(t, d.Budgets.Categories, 1)
	assert.True(t, d.Budgets.Categories[0].Spent.Equal(dec(2000)))
	assert.Equal(t, BudgetStatusOver, d.Budgets.Categories[0].Status)

	assert.True(t, d.Summary.TotalSpend.Equal(dec(2000)))
	assert.True(t, d.Summary.PreviousSpend.IsZero())
	assert.Zero(t, d.Summary.ChangePercent)
}

func TestBuildDashboard_BudgetsFollowMemberFilter(t *testing.T) {
	in := dashboardFixture()
	member := models.MemberSaif
	in.Member = &member

	d := BuildDashboard(in)

	require.NotNil(t, d.Budgets.Overall)
	assert.True(t, d.Budgets.Overall.Spent.Equal(dec(500)))
	assert.InDelta(t, 10.0, d.Budgets.Overall.Progress, 0.001)
	require.Len(t, d.Budgets.Categories, 1)
	assert.True(t, d.Budgets.Categories[0].Spent.IsZero())
	assert.Equal(t, BudgetStatusNormal, d.Budgets.Categories[0].Status)
}

func TestPeriodBudgetMonth(t *testing.T) {
	now := day(2024, 1, 20)

	assert.Equal(t, day(2024, 1, 1), PeriodCurrent.BudgetMonth(now))
	assert.Equal(t, day(2023, 12, 1), PeriodPrevious.BudgetMonth(now))
	assert.Equal(t, day(2024, 1, 1), PeriodAll.BudgetMonth(now))
}

func TestBuildDashboard_MemberFilter(t *testing.T) {
	in := dashboardFixture()
	member := models.MemberSaif
	in.Member = &member

	d := BuildDashboard(in)

	assert.Equal(t, &member, d.Member)
	assert.Equal(t, 1, d.Summary.ExpenseCount)
	assert.True(t, d.Summary.TotalSpend.Equal(dec(500)))
	assert.True(t, d.Summary.PreviousSpend.IsZero())
	require.Len(t, d.RecentExpenses, 1)
}

func TestBuildDashboard_RecentLimit(t *testing.T) {
	in := dashboardFixture()
	in.Period = PeriodAll
	in.RecentExpenses = 3

	d := BuildDashboard(in)

	assert.Equal(t, 4, d.Summary.ExpenseCount)
	assert.Len(t, d.RecentExpenses, 3)
}

func TestBuildDashboard_Empty(t *testing.T) {
	d := BuildDashboard(DashboardInput{Period: PeriodCurrent, Now: day(2024, 3, 15)})

	assert.True(t, d.Summary.TotalSpend.IsZero())
	assert.Empty(t, d.Categories)
	assert.Empty(t, d.RecentExpenses)
	assert.Len(t, d.Trend, TrendDays)
	assert.Nil(t, d.Budgets.Overall)
	assert.True(t, d.Balance.Balance.IsZero())
}
